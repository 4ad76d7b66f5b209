// SPDX-License-Identifier: MIT
// Package matrix: the stateless multiplier.
//
// Purpose:
//   - Multiply, CanMultiply and ResultDimensions over Dense operands.
//   - Accept either a constructed *Dense or raw rows (Raw) for each operand;
//     raw rows pass through the same validation as New exactly once.
//
// Notes:
//   - Every operation is a pure function of its inputs; nothing is retained.
//   - Failure is all-or-nothing: no partial results are ever returned.

package matrix

// zeroSum is the initial value of every dot-product accumulator.
const zeroSum = 0

// Operand is anything the multiplier can turn into a validated matrix.
// *Dense[T] and Raw[T] implement it.
type Operand[T Number] interface {
	AsMatrix() (*Dense[T], error)
}

// Raw is an unvalidated nested sequence of rows.
// Wrap literal data in Raw to pass it where an Operand is expected:
//
//	Multiplier[int]{}.Multiply(Raw[int]{{1, 2}}, b)
type Raw[T Number] [][]T

// AsMatrix constructs a Dense from r via New.
func (r Raw[T]) AsMatrix() (*Dense[T], error) { return New([][]T(r)) }

// AsMatrix returns m itself after checking it is usable (non-nil, constructed).
func (m *Dense[T]) AsMatrix() (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return m, nil
}

// AsMatrix converts any Operand into a validated *Dense.
// A nil Operand is reported as ErrNilMatrix.
func AsMatrix[T Number](op Operand[T]) (*Dense[T], error) {
	if op == nil {
		return nil, validationErrorf(ErrNilMatrix)
	}

	return op.AsMatrix()
}

// Multiplier groups the multiplication operations for element type T.
// It has no state; the zero value is ready to use and safe for concurrent use.
type Multiplier[T Number] struct{}

// operands converts both operands, left first. A failure on either side is
// returned unchanged.
func operands[T Number](a, b Operand[T]) (*Dense[T], *Dense[T], error) {
	ma, err := AsMatrix(a)
	if err != nil {
		return nil, nil, err
	}
	mb, err := AsMatrix(b)
	if err != nil {
		return nil, nil, err
	}

	return ma, mb, nil
}

// Multiply computes C = A × B.
// MAIN DESCRIPTION:
//   - C[i][j] = Σ_k A[i][k] * B[k][j], for i < A.Rows, j < B.Cols, k < A.Cols.
//
// Implementation:
//   - Stage 1: convert operands (AsMatrix), then ValidateMulCompatible.
//   - Stage 2: fixed i→j→k triple loop over both flat buffers, one
//     accumulator per cell.
//
// Behavior highlights:
//   - Inputs are never mutated; C is a fresh matrix of shape (A.Rows, B.Cols).
//   - Arithmetic stays in T: integer products stay integer (native overflow),
//     floats follow IEEE-754.
//
// Errors:
//   - *ValidationError       (malformed raw operand, nil or zero-value Dense).
//   - *MultiplicationError   (KindDimensionMismatch when A.Cols != B.Rows).
//
// Complexity:
//   - Time O(A.Rows*A.Cols*B.Cols), Space O(A.Rows*B.Cols).
func (Multiplier[T]) Multiply(a, b Operand[T]) (*Dense[T], error) {
	ma, mb, err := operands(a, b)
	if err != nil {
		return nil, err
	}
	if err = ValidateMulCompatible(ma, mb); err != nil {
		return nil, err
	}

	return mul(ma, mb), nil
}

// CanMultiply reports whether A.Cols == B.Rows.
// Raw operands are validated first, so malformed input yields a
// *ValidationError rather than false.
// Complexity: O(1) for *Dense operands, O(rows*cols) to copy Raw ones.
func (Multiplier[T]) CanMultiply(a, b Operand[T]) (bool, error) {
	ma, mb, err := operands(a, b)
	if err != nil {
		return false, err
	}

	return ma.Shape().MulCompatible(mb.Shape()), nil
}

// ResultDimensions returns the shape (A.Rows, B.Cols) of A × B without
// computing it. Incompatible operands fail with the same
// *MultiplicationError as Multiply.
// Complexity: O(1) for *Dense operands.
func (Multiplier[T]) ResultDimensions(a, b Operand[T]) (rows, cols int, err error) {
	ma, mb, err := operands(a, b)
	if err != nil {
		return 0, 0, err
	}
	if err = ValidateMulCompatible(ma, mb); err != nil {
		return 0, 0, err
	}

	return ma.r, mb.c, nil
}

// mul is the product kernel. Callers guarantee a.c == b.r and both non-empty.
func mul[T Number](a, b *Dense[T]) *Dense[T] {
	rows, inner, cols := a.r, a.c, b.c
	out := make([]T, rows*cols)
	var (
		i, j, k    int // loop iterators
		rowOffsetA int // i*inner
		sum        T
	)
	for i = 0; i < rows; i++ {
		rowOffsetA = i * inner
		for j = 0; j < cols; j++ {
			sum = zeroSum
			for k = 0; k < inner; k++ {
				// a.data layout: i*inner + k; b.data layout: k*cols + j
				sum += a.data[rowOffsetA+k] * b.data[k*cols+j]
			}
			out[i*cols+j] = sum
		}
	}

	return newDense(rows, cols, out)
}
