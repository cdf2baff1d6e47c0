// Copyright ©2025 The Crystalgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat3

import "math"

// Mat is a 3×3 matrix of float64, stored row-major: Mat[i][j] is the
// element in row i and column j. When a Mat holds a lattice basis, the
// basis vectors are the columns.
type Mat [3][3]float64

// IMat is a 3×3 matrix of int, stored row-major.
type IMat [3][3]int

// Eye returns the 3×3 float64 identity.
func Eye() Mat {
	return Mat{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// IEye returns the 3×3 int identity.
func IEye() IMat {
	return IMat{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// FromCols returns the matrix with columns c0, c1 and c2.
func FromCols(c0, c1, c2 Vec) Mat {
	var m Mat
	for i := 0; i < 3; i++ {
		m[i][0] = c0[i]
		m[i][1] = c1[i]
		m[i][2] = c2[i]
	}
	return m
}

// IFromCols returns the integer matrix with columns c0, c1 and c2.
func IFromCols(c0, c1, c2 IVec) IMat {
	var m IMat
	for i := 0; i < 3; i++ {
		m[i][0] = c0[i]
		m[i][1] = c1[i]
		m[i][2] = c2[i]
	}
	return m
}

// Mul returns the matrix product m·n.
func (m Mat) Mul(n Mat) Mat {
	var p Mat
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			p[i][j] = m[i][0]*n[0][j] + m[i][1]*n[1][j] + m[i][2]*n[2][j]
		}
	}
	return p
}

// MulVec returns m·v.
func (m Mat) MulVec(v Vec) Vec {
	var w Vec
	for i := 0; i < 3; i++ {
		w[i] = m[i][0]*v[0] + m[i][1]*v[1] + m[i][2]*v[2]
	}
	return w
}

// T returns the transpose of m.
func (m Mat) T() Mat {
	return Mat{
		{m[0][0], m[1][0], m[2][0]},
		{m[0][1], m[1][1], m[2][1]},
		{m[0][2], m[1][2], m[2][2]},
	}
}

// Add returns the element-wise sum of m and n.
func (m Mat) Add(n Mat) Mat {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m[i][j] += n[i][j]
		}
	}
	return m
}

// Scale returns m with all elements scaled by f.
func (m Mat) Scale(f float64) Mat {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m[i][j] *= f
		}
	}
	return m
}

// Det returns the determinant of m.
func (m Mat) Det() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Trace returns the trace of m.
func (m Mat) Trace() float64 {
	return m[0][0] + m[1][1] + m[2][2]
}

// Inv returns the inverse of m. Inv panics if m is singular.
func (m Mat) Inv() Mat {
	det := m.Det()
	if det == 0 {
		panic("mat3: singular matrix")
	}
	inv := 1 / det
	var n Mat
	n[0][0] = (m[1][1]*m[2][2] - m[1][2]*m[2][1]) * inv
	n[0][1] = (m[0][2]*m[2][1] - m[0][1]*m[2][2]) * inv
	n[0][2] = (m[0][1]*m[1][2] - m[0][2]*m[1][1]) * inv
	n[1][0] = (m[1][2]*m[2][0] - m[1][0]*m[2][2]) * inv
	n[1][1] = (m[0][0]*m[2][2] - m[0][2]*m[2][0]) * inv
	n[1][2] = (m[0][2]*m[1][0] - m[0][0]*m[1][2]) * inv
	n[2][0] = (m[1][0]*m[2][1] - m[1][1]*m[2][0]) * inv
	n[2][1] = (m[0][1]*m[2][0] - m[0][0]*m[2][1]) * inv
	n[2][2] = (m[0][0]*m[1][1] - m[0][1]*m[1][0]) * inv
	return n
}

// Col returns the j-th column of m.
func (m Mat) Col(j int) Vec {
	return Vec{m[0][j], m[1][j], m[2][j]}
}

// SetCol returns m with the j-th column replaced by v.
func (m Mat) SetCol(j int, v Vec) Mat {
	m[0][j] = v[0]
	m[1][j] = v[1]
	m[2][j] = v[2]
	return m
}

// RoundI returns m with each element rounded to the nearest int.
func (m Mat) RoundI() IMat {
	var n IMat
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			n[i][j] = int(math.Round(m[i][j]))
		}
	}
	return n
}

// Float returns m converted to float64 elements.
func (m IMat) Float() Mat {
	var n Mat
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			n[i][j] = float64(m[i][j])
		}
	}
	return n
}

// Mul returns the matrix product m·n.
func (m IMat) Mul(n IMat) IMat {
	var p IMat
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			p[i][j] = m[i][0]*n[0][j] + m[i][1]*n[1][j] + m[i][2]*n[2][j]
		}
	}
	return p
}

// MulVec returns m·v.
func (m IMat) MulVec(v IVec) IVec {
	var w IVec
	for i := 0; i < 3; i++ {
		w[i] = m[i][0]*v[0] + m[i][1]*v[1] + m[i][2]*v[2]
	}
	return w
}

// MulVecF returns m·v over float64.
func (m IMat) MulVecF(v Vec) Vec {
	var w Vec
	for i := 0; i < 3; i++ {
		w[i] = float64(m[i][0])*v[0] + float64(m[i][1])*v[1] + float64(m[i][2])*v[2]
	}
	return w
}

// T returns the transpose of m.
func (m IMat) T() IMat {
	return IMat{
		{m[0][0], m[1][0], m[2][0]},
		{m[0][1], m[1][1], m[2][1]},
		{m[0][2], m[1][2], m[2][2]},
	}
}

// Add returns the element-wise sum of m and n.
func (m IMat) Add(n IMat) IMat {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m[i][j] += n[i][j]
		}
	}
	return m
}

// Scale returns m with all elements multiplied by k.
func (m IMat) Scale(k int) IMat {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m[i][j] *= k
		}
	}
	return m
}

// Neg returns -m.
func (m IMat) Neg() IMat {
	return m.Scale(-1)
}

// Det returns the determinant of m.
func (m IMat) Det() int {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Trace returns the trace of m.
func (m IMat) Trace() int {
	return m[0][0] + m[1][1] + m[2][2]
}

// Inv returns the exact inverse of a unimodular integer matrix.
// Inv panics if det m is not ±1.
func (m IMat) Inv() IMat {
	det := m.Det()
	if det != 1 && det != -1 {
		panic("mat3: integer matrix is not unimodular")
	}
	var n IMat
	n[0][0] = (m[1][1]*m[2][2] - m[1][2]*m[2][1]) * det
	n[0][1] = (m[0][2]*m[2][1] - m[0][1]*m[2][2]) * det
	n[0][2] = (m[0][1]*m[1][2] - m[0][2]*m[1][1]) * det
	n[1][0] = (m[1][2]*m[2][0] - m[1][0]*m[2][2]) * det
	n[1][1] = (m[0][0]*m[2][2] - m[0][2]*m[2][0]) * det
	n[1][2] = (m[0][2]*m[1][0] - m[0][0]*m[1][2]) * det
	n[2][0] = (m[1][0]*m[2][1] - m[1][1]*m[2][0]) * det
	n[2][1] = (m[0][1]*m[2][0] - m[0][0]*m[2][1]) * det
	n[2][2] = (m[0][0]*m[1][1] - m[0][1]*m[1][0]) * det
	return n
}
