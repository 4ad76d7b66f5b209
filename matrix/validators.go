// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for construction and
//    operand checks.
//  - Keep the constructor and the multiplier minimal by delegating
//    shape/nil checks here.
//
// Determinism & Performance:
//  - All checks are pure and deterministic; only failures allocate.
//  - Row validation runs O(rows) and stops at the first offending row.

package matrix

// ValidateRows ensures data is a non-empty rectangular nested sequence.
//
// Implementation:
//   - Stage 1: reject an empty outer sequence or an empty first row (ErrEmpty).
//   - Stage 2: compare every row length with the first row (ErrJagged).
//
// Returns:
//   - nil, or a *ValidationError naming the first offending row and both lengths.
//
// Complexity: O(rows).
func ValidateRows[T Number](data [][]T) error {
	if len(data) == 0 || len(data[0]) == 0 {
		return validationErrorf(ErrEmpty)
	}
	want := len(data[0])
	for i, row := range data {
		if len(row) != want {
			return &ValidationError{Row: i, Want: want, Got: len(row), Err: ErrJagged}
		}
	}

	return nil
}

// ValidateNotNil ensures m is a usable matrix: non-nil and constructed.
// A zero-value Dense (never passed through New) is reported as ErrEmpty.
//
// Complexity: O(1).
func ValidateNotNil[T Number](m *Dense[T]) error {
	if m == nil {
		return validationErrorf(ErrNilMatrix)
	}
	if m.r == 0 || m.c == 0 {
		return validationErrorf(ErrEmpty)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows, inputs usable.
//
// Errors: *ValidationError (nil/zero operand), *MultiplicationError
// tagged KindDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible[T Number](a, b *Dense[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if !a.Shape().MulCompatible(b.Shape()) {
		return dimensionMismatch(a.Shape(), b.Shape())
	}

	return nil
}
