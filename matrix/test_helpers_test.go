// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for Dense and the multiplier.
//   • Keep random data reproducible via explicit seeds.

package matrix_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/katalvlaran/alumath/matrix"
)

// MustNew BUILDS a matrix from rows or fails the test (fatal on error).
func MustNew[T matrix.Number](t testing.TB, data [][]T) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.New(data)
	if err != nil {
		t.Fatalf("New(%v): %v", data, err)
	}

	return m
}

// MustIdentity RETURNS an n×n identity matrix or fails the test.
func MustIdentity[T matrix.Number](t testing.TB, n int) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.Identity[T](n)
	if err != nil {
		t.Fatalf("Identity(%d): %v", n, err)
	}

	return m
}

// RandRows BUILDS r×c rows of integers in [-9, 9] from rng.
// Deterministic for a given rng seed.
func RandRows(rng *rand.Rand, r, c int) [][]int {
	out := make([][]int, r)
	var i, j int
	for i = 0; i < r; i++ {
		out[i] = make([]int, c)
		for j = 0; j < c; j++ {
			out[i][j] = rng.Intn(19) - 9
		}
	}

	return out
}

// Dot RETURNS Σ_k a[i][k]*b[k][j] computed directly on raw rows.
func Dot(a, b [][]int, i, j int) int {
	sum := 0
	for k := range a[i] {
		sum += a[i][k] * b[k][j]
	}

	return sum
}

// AssertErrorIs FAILS the test unless errors.Is(err, target).
func AssertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want errors.Is(err, %v), got: %v", target, err)
	}
}
