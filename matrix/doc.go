// Package matrix offers an immutable dense matrix type and matrix
// multiplication with dimension validation and descriptive errors.
//
// The matrix package provides:
//
//   - Dense[T], a row-major matrix over any integer or float kind, validated
//     once at construction (New) and never mutated afterwards.
//   - Multiplier[T], a stateless set of operations (Multiply, CanMultiply,
//     ResultDimensions) that accept either a *Dense or raw rows (Raw).
//   - Generic facades (Multiply, MultiplyData, CreateMatrix, ...) that infer
//     the element type from their arguments.
//   - YAML encoding of matrices as a sequence of rows (Encode, Decode).
//
// Errors:
//
//   - *ValidationError for empty or jagged input (errors.Is ErrEmpty/ErrJagged).
//   - *MultiplicationError for incompatible shapes, tagged "dimension_mismatch"
//     (errors.Is ErrDimensionMismatch); its message names both shapes.
//
// The package favours clarity over speed: products use a plain triple loop,
// O(m*n*p) for an m×n by n×p product.
package matrix
