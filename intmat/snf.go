// Copyright ©2025 The Crystalgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package intmat

// SNF returns a diagonal matrix d together with unimodular transforms
// l and r such that d = l·basis·r.
//
// The decomposition stops at diagonal form; the divisibility chain of
// the full Smith normal form is not needed by any caller here.
func SNF(basis *Matrix) (d, l, r *Matrix) {
	m, n := basis.Dims()
	d = basis.Clone()
	l = Eye(m)
	r = Eye(n)

	min := m
	if n < min {
		min = n
	}

	// Process the s-th row and column.
	for s := 0; s < min; s++ {
		for {
			// Choose the pivot with the smallest nonzero absolute
			// value in the lower-right submatrix.
			pi, pj := -1, -1
			for i := s; i < m; i++ {
				for j := s; j < n; j++ {
					v := abs(d.At(i, j))
					if v == 0 {
						continue
					}
					if pi < 0 || v < abs(d.At(pi, pj)) {
						pi, pj = i, j
					}
				}
			}
			if pi < 0 {
				break
			}

			if pi != s {
				d.swapRows(s, pi)
				l.swapRows(s, pi)
			}
			if pj != s {
				d.swapCols(s, pj)
				r.swapCols(s, pj)
			}
			if d.At(s, s) < 0 {
				d.negCol(s)
				r.negCol(s)
			}

			update := false
			// Eliminate below the pivot.
			for i := s + 1; i < m; i++ {
				k := d.At(i, s) / d.At(s, s)
				if k != 0 {
					update = true
					d.addRow(s, i, -k)
					l.addRow(s, i, -k)
				}
			}
			// Eliminate to the right of the pivot.
			for j := s + 1; j < n; j++ {
				k := d.At(s, j) / d.At(s, s)
				if k != 0 {
					update = true
					d.addCol(s, j, -k)
					r.addCol(s, j, -k)
				}
			}
			if !update {
				break
			}
		}
	}

	if !Equal(d, Mul(Mul(l, basis), r)) {
		panic("intmat: snf accumulation mismatch")
	}
	return d, l, r
}

// Rank returns the number of nonzero diagonal entries of the diagonal
// matrix d returned by SNF.
func Rank(d *Matrix) int {
	m, n := d.Dims()
	if n < m {
		m = n
	}
	rank := 0
	for i := 0; i < m; i++ {
		if d.At(i, i) != 0 {
			rank++
		}
	}
	return rank
}
