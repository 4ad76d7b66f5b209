// SPDX-License-Identifier: MIT
// Package matrix: YAML encoding of Dense as a sequence of rows.
//
//	- [1, 2]
//	- [3, 4]
//
// Decoding is a construction path: it runs the same validation as New.

package matrix

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Compile-time assertions for yaml conformance.
var (
	_ yaml.Marshaler   = (*Dense[float64])(nil)
	_ yaml.Unmarshaler = (*Dense[float64])(nil)
)

// MarshalYAML encodes m as its nested rows.
func (m *Dense[T]) MarshalYAML() (interface{}, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return m.Data(), nil
}

// UnmarshalYAML decodes a sequence of rows into m.
// Only a zero-value Dense may be decoded into; a constructed matrix fails
// with ErrImmutable and is left untouched.
// Node-level decode failures are wrapped; validation failures are returned
// unchanged as *ValidationError. m is only written on success.
func (m *Dense[T]) UnmarshalYAML(value *yaml.Node) error {
	if m.r != 0 || m.c != 0 {
		return fmt.Errorf("Dense.UnmarshalYAML(%s): %w", m.Shape(), ErrImmutable)
	}
	var rows [][]T
	if err := value.Decode(&rows); err != nil {
		return fmt.Errorf("matrix: decode yaml: %w", err)
	}
	d, err := New(rows)
	if err != nil {
		return err
	}
	*m = *d

	return nil
}

// Decode reads one YAML document from r and builds a matrix from it.
// An empty or null document fails with ErrEmpty; an empty stream returns io.EOF.
func Decode[T Number](r io.Reader) (*Dense[T], error) {
	var m Dense[T]
	if err := yaml.NewDecoder(r).Decode(&m); err != nil {
		return nil, err
	}
	if err := ValidateNotNil(&m); err != nil {
		return nil, err
	}

	return &m, nil
}

// Encode writes m to w as a YAML document.
func Encode[T Number](w io.Writer, m *Dense[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(m); err != nil {
		return err
	}

	return enc.Close()
}
