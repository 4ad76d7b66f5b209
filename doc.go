// Package alumath is a small, educational matrix library.
//
// What is inside?
//
//	matrix/ — immutable Dense matrices over any integer or float kind,
//	          multiplication with dimension validation, YAML encoding.
//
// Quick example:
//
//	| 1 2 |   | 5 6 |   | 19 22 |
//	| 3 4 | × | 7 8 | = | 43 50 |
//
//	c, err := matrix.MultiplyData([][]int{{1, 2}, {3, 4}}, [][]int{{5, 6}, {7, 8}})
//
// Correctness and clear error messages come before speed: products use a
// plain triple loop and every failure names the shapes involved.
//
//	go get github.com/katalvlaran/alumath/matrix
package alumath
