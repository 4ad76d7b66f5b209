// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by Dense storage and the multiplier.
// This file contains ONLY domain-facing types (element constraint, shape).
// Errors live in errors.go, validation in validators.go.
package matrix

import "fmt"

// Number is the element constraint of a Dense matrix.
// Every integer and floating-point kind is allowed; arithmetic follows the
// native semantics of the chosen kind (integers wrap on overflow).
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Shape is a (rows, cols) pair. It formats as "RxC".
type Shape struct {
	Rows int // number of rows
	Cols int // number of columns
}

// String renders the shape as "RxC" (e.g. "2x3").
// Complexity: O(1).
func (s Shape) String() string {
	return fmt.Sprintf("%dx%d", s.Rows, s.Cols)
}

// MulCompatible reports whether a matrix of shape s can be multiplied on the
// left of a matrix of shape other, i.e. s.Cols == other.Rows.
// Complexity: O(1).
func (s Shape) MulCompatible(other Shape) bool {
	return s.Cols == other.Rows
}
