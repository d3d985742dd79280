// Copyright 2026 The chull Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package matrix provides the exact-rational matrix kit that the convex hull
// core treats as an external collaborator in spec.md sec. 6: right-inverse
// of a non-square matrix, row/column drops, products and preimage
// (substitution through a linear change of variables).
package matrix

import "github.com/go-polyhedra/chull/pkg/rat"

// Matrix is a dense row-major matrix of exact rationals.
type Matrix struct {
	rows, cols uint
	data       [][]rat.Rat
}

// New allocates a zero matrix of the given shape.
func New(rows, cols uint) Matrix {
	data := make([][]rat.Rat, rows)
	for i := range data {
		data[i] = make([]rat.Rat, cols)
		for j := range data[i] {
			data[i][j] = rat.Zero()
		}
	}

	return Matrix{rows, cols, data}
}

// FromRows builds a matrix from a set of rows (forms or plain rational
// slices); every row must have the same length.
func FromRows(rows ...[]rat.Rat) Matrix {
	if len(rows) == 0 {
		return New(0, 0)
	}

	m := New(uint(len(rows)), uint(len(rows[0])))
	for i, row := range rows {
		copy(m.data[i], row)
	}

	return m
}

// Rows returns the number of rows.
func (m Matrix) Rows() uint { return m.rows }

// Cols returns the number of columns.
func (m Matrix) Cols() uint { return m.cols }

// Row returns a copy of the ith row.
func (m Matrix) Row(i uint) []rat.Rat {
	row := make([]rat.Rat, m.cols)
	copy(row, m.data[i])

	return row
}

// At returns the (i,j) entry.
func (m Matrix) At(i, j uint) rat.Rat { return m.data[i][j] }

// Set assigns the (i,j) entry, returning a clone (copy-on-write).
func (m Matrix) Set(i, j uint, v rat.Rat) Matrix {
	n := m.clone()
	n.data[i][j] = v

	return n
}

// SetRow assigns an entire row, returning a clone.
func (m Matrix) SetRow(i uint, row []rat.Rat) Matrix {
	n := m.clone()
	copy(n.data[i], row)

	return n
}

func (m Matrix) clone() Matrix {
	n := New(m.rows, m.cols)
	for i := range m.data {
		copy(n.data[i], m.data[i])
	}

	return n
}

// AppendRow returns a new matrix with row appended.
func (m Matrix) AppendRow(row []rat.Rat) Matrix {
	n := New(m.rows+1, m.cols)
	for i := range m.data {
		copy(n.data[i], m.data[i])
	}

	copy(n.data[m.rows], row)

	return n
}

// DropRow returns a new matrix with row i removed.
func (m Matrix) DropRow(i uint) Matrix {
	n := New(m.rows-1, m.cols)
	k := uint(0)

	for r := uint(0); r < m.rows; r++ {
		if r == i {
			continue
		}

		copy(n.data[k], m.data[r])
		k++
	}

	return n
}

// DropRows returns a new matrix with all rows whose index is in drop removed.
func (m Matrix) DropRows(drop map[uint]bool) Matrix {
	n := uint(0)
	for r := uint(0); r < m.rows; r++ {
		if !drop[r] {
			n++
		}
	}

	out := New(n, m.cols)
	k := uint(0)

	for r := uint(0); r < m.rows; r++ {
		if drop[r] {
			continue
		}

		copy(out.data[k], m.data[r])
		k++
	}

	return out
}

// DropCol returns a new matrix with column j removed.
func (m Matrix) DropCol(j uint) Matrix {
	return m.DropCols(map[uint]bool{j: true})
}

// DropCols returns a new matrix with all columns whose index is in drop
// removed.
func (m Matrix) DropCols(drop map[uint]bool) Matrix {
	n := uint(0)
	for c := uint(0); c < m.cols; c++ {
		if !drop[c] {
			n++
		}
	}

	out := New(m.rows, n)

	for r := uint(0); r < m.rows; r++ {
		k := uint(0)

		for c := uint(0); c < m.cols; c++ {
			if drop[c] {
				continue
			}

			out.data[r][k] = m.data[r][c]
			k++
		}
	}

	return out
}

// Product returns m*o.
func (m Matrix) Product(o Matrix) Matrix {
	if m.cols != o.rows {
		panic("matrix: dimension mismatch in product")
	}

	out := New(m.rows, o.cols)

	for i := uint(0); i < m.rows; i++ {
		for j := uint(0); j < o.cols; j++ {
			acc := rat.Zero()

			for k := uint(0); k < m.cols; k++ {
				acc = acc.Add(m.data[i][k].Mul(o.data[k][j]))
			}

			out.data[i][j] = acc
		}
	}

	return out
}

// ApplyRow returns m * row^T as a column vector flattened to a slice, i.e.
// applies m to a single row vector of length m.cols.
func (m Matrix) ApplyRow(row []rat.Rat) []rat.Rat {
	out := make([]rat.Rat, m.rows)

	for i := uint(0); i < m.rows; i++ {
		acc := rat.Zero()

		for j := uint(0); j < m.cols; j++ {
			acc = acc.Add(m.data[i][j].Mul(row[j]))
		}

		out[i] = acc
	}

	return out
}

// Identity returns the n x n identity matrix.
func Identity(n uint) Matrix {
	m := New(n, n)
	for i := uint(0); i < n; i++ {
		m.data[i][i] = rat.One()
	}

	return m
}
