// Copyright ©2025 The Crystalgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package intmat

// HNF returns the column-wise Hermite normal form h of basis together
// with the unimodular column transform r such that h = basis·r.
//
// Each pivot is chosen as the smallest nonzero absolute value in the
// remaining part of its row, made positive, and used to reduce every
// other column by Euclidean division.
func HNF(basis *Matrix) (h, r *Matrix) {
	m, n := basis.Dims()
	h = basis.Clone()
	r = Eye(n)

	// Process the s-th row.
	for s := 0; s < m; s++ {
		for {
			pivot := -1
			for j := s; j < n; j++ {
				v := h.At(s, j)
				if v == 0 {
					continue
				}
				if v < 0 {
					v = -v
				}
				if pivot < 0 || v < abs(h.At(s, pivot)) {
					pivot = j
				}
			}
			if pivot < 0 {
				break
			}

			if pivot != s {
				h.swapCols(s, pivot)
				r.swapCols(s, pivot)
			}
			if h.At(s, s) < 0 {
				h.negCol(s)
				r.negCol(s)
			}

			// Reduce the other columns against column s.
			update := false
			for j := 0; j < n; j++ {
				if j == s {
					continue
				}
				k := divEuclid(h.At(s, j), h.At(s, s))
				if k != 0 {
					update = true
					h.addCol(s, j, -k)
					r.addCol(s, j, -k)
				}
			}
			if !update {
				break
			}
		}
	}

	if !Equal(h, Mul(basis, r)) {
		panic("intmat: hnf accumulation mismatch")
	}
	return h, r
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
