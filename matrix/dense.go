// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & read-only accessors.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula i*cols + j.
//   - Validate exactly once, at construction; expose no mutators afterwards.
//   - Own the backing storage: New copies its input, Data/Row return copies.
//
// Complexity quicksheet:
//   - New: O(r*c) copy; At: O(1); Row: O(c); Data: O(r*c); Render: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtCell     = "%*.*f" // width, precision, value
	_fmtRowOpen  = "["
	_fmtRowClose = "]"
	_fmtSep      = " "
	_fmtRowSep   = "\n"

	cellWidth     = 8 // fixed cell width, right-aligned
	cellPrecision = 2 // digits after the decimal point
)

// Dense is an immutable row-major matrix of T.
//   - r,c hold dimensions (both >= 1 for any Dense built by New).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// The zero value is not a valid matrix; operations reject it with ErrEmpty.
// A *Dense is safe for concurrent reads.
type Dense[T Number] struct {
	r, c int // row and column counts
	data []T // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for fmt conformance.
var (
	_ fmt.Stringer   = (*Dense[float64])(nil)
	_ fmt.GoStringer = (*Dense[int])(nil)
)

// New builds a matrix from a non-empty rectangular nested sequence.
// MAIN DESCRIPTION:
//   - Public constructor; the only place where shape validation happens.
//
// Implementation:
//   - Stage 1: ValidateRows (empty outer, empty first row, jagged rows).
//   - Stage 2: copy rows into a single flat buffer.
//
// Behavior highlights:
//   - The input is copied; later changes to data do not affect the matrix.
//   - Never panics on user errors.
//
// Errors:
//   - *ValidationError wrapping ErrEmpty or ErrJagged.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New[T Number](data [][]T) (*Dense[T], error) {
	if err := ValidateRows(data); err != nil {
		return nil, err
	}
	rows, cols := len(data), len(data[0])
	buf := make([]T, 0, rows*cols)
	for _, row := range data {
		buf = append(buf, row...)
	}

	return &Dense[T]{r: rows, c: cols, data: buf}, nil
}

// newDense wraps an already shaped flat buffer (len(buf) == rows*cols).
// Internal: callers guarantee rows, cols >= 1.
func newDense[T Number](rows, cols int, buf []T) *Dense[T] {
	return &Dense[T]{r: rows, c: cols, data: buf}
}

// Identity returns the n×n identity matrix (ones on the diagonal).
// Errors: *ValidationError wrapping ErrEmpty when n < 1.
// Complexity: O(n^2).
func Identity[T Number](n int) (*Dense[T], error) {
	if n < 1 {
		return nil, validationErrorf(ErrEmpty)
	}
	buf := make([]T, n*n)
	for i := 0; i < n; i++ {
		buf[i*n+i] = 1
	}

	return newDense(n, n, buf), nil
}

// Convert returns a copy of m with every cell converted to U.
// Use it to promote integer operands before mixing them with floats,
// e.g. Convert[float64](ints).
//
// Errors: *ValidationError for nil or zero-value m.
// Complexity: O(r*c).
func Convert[U, T Number](m *Dense[T]) (*Dense[U], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	buf := make([]U, len(m.data))
	for i, v := range m.data {
		buf[i] = U(v)
	}

	return newDense(m.r, m.c, buf), nil
}

// Read accessors below accept a nil receiver and report it as 0×0.

// Rows returns the row count. Complexity: O(1).
func (m *Dense[T]) Rows() int {
	if m == nil {
		return 0
	}

	return m.r
}

// Cols returns the column count. Complexity: O(1).
func (m *Dense[T]) Cols() int {
	if m == nil {
		return 0
	}

	return m.c
}

// Dimensions returns (rows, cols). Complexity: O(1).
func (m *Dense[T]) Dimensions() (rows, cols int) { return m.Rows(), m.Cols() }

// Shape packs the dimensions into a Shape value. Complexity: O(1).
func (m *Dense[T]) Shape() Shape { return Shape{Rows: m.Rows(), Cols: m.Cols()} }

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	if row < 0 || row >= m.Rows() || col < 0 || col >= m.Cols() {
		return 0, fmt.Errorf("Dense.At(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return m.data[row*m.c+col], nil
}

// Row returns a copy of row i or ErrOutOfRange.
// Complexity: O(c).
func (m *Dense[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.Rows() {
		return nil, fmt.Errorf("Dense.Row(%d): %w", i, ErrOutOfRange)
	}
	out := make([]T, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Data returns a deep copy of the cells as a nested sequence of rows
// (nil for a nil receiver).
// Complexity: O(r*c).
func (m *Dense[T]) Data() [][]T {
	if m == nil {
		return nil
	}
	out := make([][]T, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]T, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// Equal reports whether m and other have the same shape and identical cells.
// Two nil matrices are equal.
// Complexity: O(r*c).
func (m *Dense[T]) Equal(other *Dense[T]) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.r != other.r || m.c != other.c {
		return false
	}
	for i := range m.data {
		if m.data[i] != other.data[i] {
			return false
		}
	}

	return true
}

// Render returns a human-readable grid for diagnostics.
// MAIN DESCRIPTION:
//   - Each cell is printed right-aligned, width 8, two decimals ("%8.2f").
//   - Cells are separated by one space, each row is bracketed, rows are
//     joined by newlines (no trailing newline).
//
// Behavior highlights:
//   - Integers are rendered through float64 so every cell has two decimals.
//   - Intended for printing and logs, not for parsing.
//   - A nil or zero-value matrix renders as "".
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense[T]) Render() string {
	if m == nil {
		return ""
	}
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		if i > 0 {
			b.WriteString(_fmtRowSep)
		}
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			fmt.Fprintf(&b, _fmtCell, cellWidth, cellPrecision, float64(m.data[base+j]))
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// String implements fmt.Stringer via Render.
func (m *Dense[T]) String() string { return m.Render() }

// GoString implements fmt.GoStringer with a compact shape summary,
// e.g. "Matrix(rows=2, cols=3)"; used by %#v. A nil receiver prints "Matrix(nil)".
func (m *Dense[T]) GoString() string {
	if m == nil {
		return "Matrix(nil)"
	}

	return fmt.Sprintf("Matrix(rows=%d, cols=%d)", m.r, m.c)
}
