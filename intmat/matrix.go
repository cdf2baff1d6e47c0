// Copyright ©2025 The Crystalgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package intmat

// Matrix is a dense row-major matrix of int.
type Matrix struct {
	rows, cols int
	data       []int
}

// New returns a new rows×cols matrix backed by data. If data is nil a
// zero matrix is allocated. New panics if len(data) does not match the
// dimensions.
func New(rows, cols int, data []int) *Matrix {
	if rows <= 0 || cols <= 0 {
		panic("intmat: non-positive dimension")
	}
	if data == nil {
		data = make([]int, rows*cols)
	} else if len(data) != rows*cols {
		panic("intmat: dimension mismatch")
	}
	return &Matrix{rows: rows, cols: cols, data: data}
}

// Eye returns the n×n identity matrix.
func Eye(n int) *Matrix {
	m := New(n, n, nil)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}
	return m
}

// Dims returns the dimensions of m.
func (m *Matrix) Dims() (rows, cols int) { return m.rows, m.cols }

// At returns the element at row i, column j.
func (m *Matrix) At(i, j int) int { return m.data[i*m.cols+j] }

// Set stores v at row i, column j.
func (m *Matrix) Set(i, j, v int) { m.data[i*m.cols+j] = v }

// Clone returns a deep copy of m.
func (m *Matrix) Clone() *Matrix {
	data := make([]int, len(m.data))
	copy(data, m.data)
	return &Matrix{rows: m.rows, cols: m.cols, data: data}
}

// Mul returns the matrix product a·b. Mul panics on dimension
// mismatch.
func Mul(a, b *Matrix) *Matrix {
	if a.cols != b.rows {
		panic("intmat: dimension mismatch")
	}
	p := New(a.rows, b.cols, nil)
	for i := 0; i < a.rows; i++ {
		for k := 0; k < a.cols; k++ {
			aik := a.At(i, k)
			if aik == 0 {
				continue
			}
			for j := 0; j < b.cols; j++ {
				p.data[i*p.cols+j] += aik * b.At(k, j)
			}
		}
	}
	return p
}

// MulVec returns a·x. MulVec panics on dimension mismatch.
func MulVec(a *Matrix, x []int) []int {
	if a.cols != len(x) {
		panic("intmat: dimension mismatch")
	}
	y := make([]int, a.rows)
	for i := 0; i < a.rows; i++ {
		s := 0
		for j := 0; j < a.cols; j++ {
			s += a.At(i, j) * x[j]
		}
		y[i] = s
	}
	return y
}

// Equal reports whether a and b have the same shape and elements.
func Equal(a, b *Matrix) bool {
	if a.rows != b.rows || a.cols != b.cols {
		return false
	}
	for i, v := range a.data {
		if b.data[i] != v {
			return false
		}
	}
	return true
}

func (m *Matrix) swapCols(j1, j2 int) {
	for i := 0; i < m.rows; i++ {
		m.data[i*m.cols+j1], m.data[i*m.cols+j2] = m.data[i*m.cols+j2], m.data[i*m.cols+j1]
	}
}

func (m *Matrix) swapRows(i1, i2 int) {
	for j := 0; j < m.cols; j++ {
		m.data[i1*m.cols+j], m.data[i2*m.cols+j] = m.data[i2*m.cols+j], m.data[i1*m.cols+j]
	}
}

func (m *Matrix) negCol(j int) {
	for i := 0; i < m.rows; i++ {
		m.data[i*m.cols+j] *= -1
	}
}

// addCol adds k times column src into column dst.
func (m *Matrix) addCol(src, dst, k int) {
	for i := 0; i < m.rows; i++ {
		m.data[i*m.cols+dst] += k * m.data[i*m.cols+src]
	}
}

// addRow adds k times row src into row dst.
func (m *Matrix) addRow(src, dst, k int) {
	for j := 0; j < m.cols; j++ {
		m.data[dst*m.cols+j] += k * m.data[src*m.cols+j]
	}
}

// divEuclid returns the quotient of Euclidean division of a by b, so
// that a - q·b is in [0, |b|).
func divEuclid(a, b int) int {
	q := a / b
	if a%b < 0 {
		if b > 0 {
			q--
		} else {
			q++
		}
	}
	return q
}
