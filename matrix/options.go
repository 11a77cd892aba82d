// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for kernel execution and
// randomness. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness —
//     the shuffle generator is injected, never ambient.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - Parallelism is strictly a performance switch. Kernels validate before
//     any fan-out, workers write disjoint output rows, and no shared
//     accumulator exists, so serial and parallel runs are bit-identical.

package matrix

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"runtime"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultParallelThreshold is the element count above which element-wise
	// kernels, transpose, and multiplication may fan out across workers.
	// At or below it every kernel runs serially.
	DefaultParallelThreshold = 10000

	// DefaultWorkers (0) means "use runtime.GOMAXPROCS(0) workers".
	DefaultWorkers = 0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicThresholdInvalid = "matrix: WithParallelThreshold: threshold must be >= 0"
	panicWorkersInvalid   = "matrix: WithWorkers: workers must be >= 1"
	panicRandNil          = "matrix: WithRand: source must be non-nil"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// It is intentionally opaque: fields are unexported to prevent external
// mutation; public entry points accept `...Option` and resolve them via
// gatherOptions.
type Options struct {
	// execution policy
	parallelThreshold int         // >= 0; DefaultParallelThreshold
	workers           int         // resolved worker count, >= 1
	src               rand.Source // shuffle randomness; nil ⇒ entropy-seeded
}

// ---------- Constructors (WithX) ----------

// WithParallelThreshold sets the element count above which kernels may run
// data-parallel. A threshold of 0 parallelizes every eligible kernel.
// Panics if threshold < 0.
func WithParallelThreshold(threshold int) Option {
	if threshold < 0 {
		panic(panicThresholdInvalid)
	}

	return func(o *Options) { o.parallelThreshold = threshold }
}

// WithWorkers fixes the number of parallel workers. Panics if workers < 1.
func WithWorkers(workers int) Option {
	if workers < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = workers }
}

// WithShuffleSeed makes ShuffleRows reproducible: identical seeds on
// identical inputs produce identical row orders.
func WithShuffleSeed(seed int64) Option {
	return func(o *Options) { o.src = rand.NewSource(seed) }
}

// WithRand injects a randomness source wholesale, letting tests substitute
// a fixed generator even on the conceptually "unseeded" path.
// Panics if src is nil.
func WithRand(src rand.Source) Option {
	if src == nil {
		panic(panicRandNil)
	}

	return func(o *Options) { o.src = src }
}

// ---------- Internal resolution ----------

// gatherOptions applies opts over the documented defaults and resolves the
// worker count. Deterministic and allocation-light; called once per operation.
func gatherOptions(opts ...Option) Options {
	o := Options{
		parallelThreshold: DefaultParallelThreshold,
		workers:           DefaultWorkers,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.workers == DefaultWorkers {
		o.workers = runtime.GOMAXPROCS(0)
	}

	return o
}

// rng resolves the shuffle generator: the injected source when present,
// otherwise a fresh generator seeded from the operating system's entropy
// pool (the non-deterministic path).
func (o Options) rng() *rand.Rand {
	if o.src != nil {
		return rand.New(o.src)
	}

	return rand.New(rand.NewSource(entropySeed()))
}

// entropySeed draws 8 bytes from crypto/rand and folds them into an int64.
// Falling back on failure is deliberately absent: a broken entropy source is
// an environment fault, and masking it with a time-based seed would silently
// weaken the "non-deterministic" contract.
func entropySeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		panic("matrix: entropy source unavailable: " + err.Error())
	}

	return int64(binary.LittleEndian.Uint64(b[:]))
}
