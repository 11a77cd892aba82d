// SPDX-License-Identifier: MIT
// matbench is a wall-clock benchmark harness for the matrix package.
//
// It times the dense kernels (multiply, add, transpose, determinant,
// inverse) on square matrices of configurable size, serially and with the
// data-parallel fan-out enabled, and prints a small throughput report.
//
// Usage:
//
//	matbench -size 256 -reps 20 -workers 4
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/katalvlaran/dense/matrix"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"k8s.io/klog/v2"
)

var (
	flagSize      = flag.Int("size", 256, "square matrix dimension n (matrices are n×n)")
	flagReps      = flag.Int("reps", 10, "repetitions per kernel; the report shows the mean")
	flagWorkers   = flag.Int("workers", 4, "worker goroutines for the parallel runs")
	flagThreshold = flag.Int("threshold", matrix.DefaultParallelThreshold, "element count above which the parallel runs fan out")
	flagSeed      = flag.Int64("seed", 42, "seed for the deterministic random fill")
)

// kernel is one timed operation of the report.
type kernel struct {
	name string
	run  func() error
}

// randomDense builds an n×n matrix filled with values in [-1, 1).
func randomDense(n int, rng *rand.Rand) (*matrix.Dense, error) {
	m, err := matrix.NewConstant(n, n, 0)
	if err != nil {
		return nil, errors.Wrapf(err, "building %dx%d matrix", n, n)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if err := m.Set(i, j, rng.Float64()*2-1); err != nil {
				return nil, errors.Wrap(err, "filling matrix")
			}
		}
	}

	return m, nil
}

// dominateDiagonal shifts the diagonal so elimination kernels never hit a
// singular pivot on random input.
func dominateDiagonal(m *matrix.Dense) error {
	n := m.Rows()
	for i := 0; i < n; i++ {
		v, err := m.At(i, i)
		if err != nil {
			return errors.Wrap(err, "reading diagonal")
		}
		if err := m.Set(i, i, v+float64(n)); err != nil {
			return errors.Wrap(err, "writing diagonal")
		}
	}

	return nil
}

// timeKernel runs k.run reps times behind a progress bar and returns the
// mean wall-clock duration.
func timeKernel(k kernel, reps int) (time.Duration, error) {
	bar := progressbar.NewOptions(reps,
		progressbar.OptionSetDescription(fmt.Sprintf("%-22s", k.name)),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("reps"),
		progressbar.OptionClearOnFinish(),
	)

	start := time.Now()
	for i := 0; i < reps; i++ {
		if err := k.run(); err != nil {
			return 0, errors.Wrapf(err, "kernel %s, rep %d", k.name, i)
		}
		_ = bar.Add(1)
	}
	_ = bar.Finish()

	return time.Since(start) / time.Duration(reps), nil
}

func run() error {
	n := *flagSize
	if n < 1 {
		return errors.Errorf("-size must be >= 1, got %d", n)
	}
	if *flagReps < 1 {
		return errors.Errorf("-reps must be >= 1, got %d", *flagReps)
	}

	rng := rand.New(rand.NewSource(*flagSeed))
	a, err := randomDense(n, rng)
	if err != nil {
		return err
	}
	b, err := randomDense(n, rng)
	if err != nil {
		return err
	}
	sq := a.Clone()
	if err := dominateDiagonal(sq); err != nil {
		return err
	}

	parallel := []matrix.Option{
		matrix.WithParallelThreshold(*flagThreshold),
		matrix.WithWorkers(*flagWorkers),
	}

	klog.Infof("matbench: n=%d (%s elements), reps=%d, workers=%d, threshold=%s",
		n, humanize.Comma(int64(n*n)), *flagReps, *flagWorkers,
		humanize.Comma(int64(*flagThreshold)))

	kernels := []kernel{
		{"Add/serial", func() error { _, err := matrix.Add(a, b); return err }},
		{"Add/parallel", func() error { _, err := matrix.Add(a, b, parallel...); return err }},
		{"Scale/serial", func() error { _, err := matrix.Scale(a, 2.5); return err }},
		{"Scale/parallel", func() error { _, err := matrix.Scale(a, 2.5, parallel...); return err }},
		{"Mul/serial", func() error { _, err := matrix.Mul(a, b); return err }},
		{"Mul/parallel", func() error { _, err := matrix.Mul(a, b, parallel...); return err }},
		{"Transpose", func() error { _, err := matrix.Transpose(a); return err }},
		{"Determinant", func() error { _, err := matrix.Determinant(sq); return err }},
		{"Inverse", func() error { _, err := matrix.Inverse(sq); return err }},
	}

	fmt.Printf("%-22s %14s %16s\n", "kernel", "mean time", "elements/s")
	elems := float64(n * n)
	for _, k := range kernels {
		mean, err := timeKernel(k, *flagReps)
		if err != nil {
			return err
		}
		rate := elems / mean.Seconds()
		fmt.Printf("%-22s %14s %16s\n", k.name, mean.Round(time.Microsecond),
			humanize.SIWithDigits(rate, 2, ""))
	}

	return nil
}

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	if err := run(); err != nil {
		klog.Errorf("Error:\n%+v", err)
		os.Exit(1)
	}
}
