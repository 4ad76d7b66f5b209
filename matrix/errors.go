// SPDX-License-Identifier: MIT
// Package matrix: sentinel errors and the two typed error kinds.
// Construction failures are *ValidationError, multiplication failures are
// *MultiplicationError. Both unwrap to a package sentinel, so callers can
// match with errors.Is and recover details with errors.As.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency.
// Typed errors are returned to the caller unchanged; operations never wrap
// them, the message is meant for direct user display.

var (
	// ErrEmpty is returned when the outer sequence or its first row is empty.
	ErrEmpty = errors.New("matrix: matrix cannot be empty")

	// ErrJagged is returned when a row length differs from the first row.
	ErrJagged = errors.New("matrix: inconsistent row length")

	// ErrNilMatrix indicates that a nil *Dense (or nil Operand) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrImmutable is returned when decoding into a matrix that was already
	// constructed; a Dense is never rewritten after construction.
	ErrImmutable = errors.New("matrix: matrix already constructed")

	// ErrDimensionMismatch indicates A.Cols != B.Rows for a product A×B.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")
)

// noRow marks a ValidationError that is not tied to a specific row.
const noRow = -1

// ValidationError reports why a matrix could not be constructed.
//   - Err is one of ErrEmpty, ErrJagged, ErrNilMatrix.
//   - Row, Want, Got are set for ErrJagged: the offending row index, the
//     expected length (first row) and the observed length.
type ValidationError struct {
	Row  int   // offending row index, or -1
	Want int   // expected row length (ErrJagged only)
	Got  int   // actual row length (ErrJagged only)
	Err  error // underlying sentinel
}

// Error implements error.
func (e *ValidationError) Error() string {
	if errors.Is(e.Err, ErrJagged) {
		return fmt.Sprintf("%v at row %d: expected %d, got %d", e.Err, e.Row, e.Want, e.Got)
	}

	return e.Err.Error()
}

// Unwrap exposes the sentinel for errors.Is.
func (e *ValidationError) Unwrap() error { return e.Err }

// validationErrorf builds a ValidationError for a non row-specific failure.
func validationErrorf(sentinel error) *ValidationError {
	return &ValidationError{Row: noRow, Err: sentinel}
}

// ErrorKind classifies a MultiplicationError.
type ErrorKind int

const (
	// KindGeneral is the unspecific classification (zero value).
	// No current operation produces it.
	KindGeneral ErrorKind = iota

	// KindDimensionMismatch marks A.Cols != B.Rows.
	KindDimensionMismatch
)

// String returns the classification tag ("general", "dimension_mismatch").
func (k ErrorKind) String() string {
	switch k {
	case KindDimensionMismatch:
		return "dimension_mismatch"
	default:
		return "general"
	}
}

// MultiplicationError is returned when a product (or a result-shape query)
// is attempted on incompatible operands. A and B are the operand shapes.
type MultiplicationError struct {
	Kind ErrorKind // classification tag
	A    Shape     // left operand shape
	B    Shape     // right operand shape
}

// Error implements error. The dimension mismatch message names both shapes
// and the rule that was violated.
func (e *MultiplicationError) Error() string {
	if e.Kind == KindDimensionMismatch {
		return fmt.Sprintf(
			"matrix: multiplication failed due to dimension mismatch: "+
				"matrix A is %s, matrix B is %s; "+
				"number of columns in matrix A must equal number of rows in matrix B",
			e.A, e.B)
	}

	return fmt.Sprintf("matrix: multiplication failed: matrix A is %s, matrix B is %s", e.A, e.B)
}

// Unwrap returns ErrDimensionMismatch for KindDimensionMismatch, nil otherwise.
func (e *MultiplicationError) Unwrap() error {
	if e.Kind == KindDimensionMismatch {
		return ErrDimensionMismatch
	}

	return nil
}

// dimensionMismatch builds the canonical mismatch error for shapes a, b.
func dimensionMismatch(a, b Shape) *MultiplicationError {
	return &MultiplicationError{Kind: KindDimensionMismatch, A: a, B: b}
}
