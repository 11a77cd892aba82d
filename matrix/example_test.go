// Package matrix_test contains runnable documentation examples.
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/dense/matrix"
)

// ExampleNewDense builds a matrix from a grid and prints it.
func ExampleNewDense() {
	m, err := matrix.NewDense([][]float64{{1, 2}, {3, 4}})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(m)
	// Output:
	// [
	//   [1, 2],
	//   [3, 4]
	// ]
}

// ExampleMul multiplies two 2x2 matrices.
func ExampleMul() {
	a, _ := matrix.NewDense([][]float64{{1, 2}, {3, 4}})
	b, _ := matrix.NewDense([][]float64{{2, 0}, {1, 2}})

	prod, err := matrix.Mul(a, b)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(prod)
	// Output:
	// [
	//   [4, 4],
	//   [10, 8]
	// ]
}

// ExampleDeterminant computes a 3x3 determinant.
func ExampleDeterminant() {
	m, _ := matrix.NewDense([][]float64{{6, 1, 1}, {4, -2, 5}, {2, 8, 7}})

	det, err := matrix.Determinant(m)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("det = %.0f\n", det)
	// Output:
	// det = -306
}

// ExampleInverse inverts a 2x2 matrix and shows the singular failure mode.
func ExampleInverse() {
	m, _ := matrix.NewDense([][]float64{{4, 7}, {2, 6}})
	inv, _ := matrix.Inverse(m)

	want, _ := matrix.NewDense([][]float64{{0.6, -0.7}, {-0.2, 0.4}})
	fmt.Println("matches closed form:", matrix.Equal(want, inv))

	singular, _ := matrix.NewDense([][]float64{{1, 2}, {2, 4}})
	if _, err := matrix.Inverse(singular); err != nil {
		fmt.Println("singular input rejected")
	}
	// Output:
	// matches closed form: true
	// singular input rejected
}

// ExampleShuffleRows shows a seeded, reproducible permutation.
func ExampleShuffleRows() {
	m, _ := matrix.NewDense([][]float64{{1, 1}, {2, 2}, {3, 3}})
	twin, _ := matrix.NewDense([][]float64{{1, 1}, {2, 2}, {3, 3}})

	_ = matrix.ShuffleRows(m, matrix.WithShuffleSeed(12345))
	_ = matrix.ShuffleRows(twin, matrix.WithShuffleSeed(12345))

	fmt.Println("same order:", matrix.Equal(m, twin))
	// Output:
	// same order: true
}
