// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin entry points so callers need not name Multiplier[T].
//   - Avoid any logic duplication: each facade delegates to Multiplier or New.
//   - *Dense variants infer T from their arguments; *Data variants accept raw
//     rows and run construction validation once per operand.

package matrix

// CreateMatrix builds a matrix from raw rows. Thin alias of New.
func CreateMatrix[T Number](data [][]T) (*Dense[T], error) { return New(data) }

// MultiplyMatrices multiplies two raw nested sequences. Thin alias of MultiplyData.
func MultiplyMatrices[T Number](a, b [][]T) (*Dense[T], error) { return MultiplyData(a, b) }

// Multiply returns a × b. See Multiplier.Multiply.
func Multiply[T Number](a, b *Dense[T]) (*Dense[T], error) {
	return Multiplier[T]{}.Multiply(a, b)
}

// CanMultiply reports whether a.Cols == b.Rows. See Multiplier.CanMultiply.
func CanMultiply[T Number](a, b *Dense[T]) (bool, error) {
	return Multiplier[T]{}.CanMultiply(a, b)
}

// ResultDimensions returns the shape of a × b. See Multiplier.ResultDimensions.
func ResultDimensions[T Number](a, b *Dense[T]) (rows, cols int, err error) {
	return Multiplier[T]{}.ResultDimensions(a, b)
}

// MultiplyData multiplies raw rows a and b.
func MultiplyData[T Number](a, b [][]T) (*Dense[T], error) {
	return Multiplier[T]{}.Multiply(Raw[T](a), Raw[T](b))
}

// CanMultiplyData is CanMultiply over raw rows.
func CanMultiplyData[T Number](a, b [][]T) (bool, error) {
	return Multiplier[T]{}.CanMultiply(Raw[T](a), Raw[T](b))
}

// ResultDimensionsData is ResultDimensions over raw rows.
func ResultDimensionsData[T Number](a, b [][]T) (rows, cols int, err error) {
	return Multiplier[T]{}.ResultDimensions(Raw[T](a), Raw[T](b))
}
