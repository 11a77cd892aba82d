// SPDX-License-Identifier: MIT
// Package matrix: human-readable formatting helpers.
//
// Formatting consumes only the matrix's shape and row data; it is a
// presentation collaborator, not part of the numeric correctness surface.

package matrix

import (
	"fmt"
	"strings"
)

// Format renders m as a bracketed multi-line grid:
//
//	[
//	  [1, 2],
//	  [3, 4]
//	]
//
// Values use %g so integral floats print without trailing zeros.
// A nil matrix renders as "[]". Complexity: O(r*c).
func Format(m *Dense) string {
	if m == nil {
		return "[]"
	}

	var sb strings.Builder
	sb.WriteString("[\n")
	for i := 0; i < m.rows; i++ {
		sb.WriteString("  [")
		row := m.row(i)
		for j, v := range row {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", v)
		}
		if i < m.rows-1 {
			sb.WriteString("],\n")
		} else {
			sb.WriteString("]\n")
		}
	}
	sb.WriteString("]")

	return sb.String()
}

// String implements fmt.Stringer via Format.
func (m *Dense) String() string {
	return Format(m)
}

// ShapeString renders a (rows, cols) pair, e.g. "(3, 4)". Handy for error
// messages and harness output. Complexity: O(1).
func (m *Dense) ShapeString() string {
	return fmt.Sprintf("(%d, %d)", m.rows, m.cols)
}
