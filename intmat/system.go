// Copyright ©2025 The Crystalgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package intmat

import (
	"math"

	"github.com/crystalgo/spacegroup/mat3"
)

// Solve solves a·x = b over the integers. It returns a particular
// solution x and an integer basis of the nullspace of a, or ok=false
// when no integer solution exists or when a has full column rank (the
// callers here consume the nullspace, and a full-rank system carries
// none).
func Solve(a *Matrix, b []int) (x []int, nullspace [][]int, ok bool) {
	_, n := a.Dims()
	d, l, r := SNF(a)
	rank := Rank(d)
	if rank == n {
		return nil, nil, false
	}

	// Solve d·y = l·b; then x = r·y.
	lb := MulVec(l, b)
	y := make([]int, n)
	for i := 0; i < rank; i++ {
		if lb[i]%d.At(i, i) != 0 {
			return nil, nil, false
		}
		y[i] = lb[i] / d.At(i, i)
	}
	for i := rank; i < len(lb); i++ {
		if lb[i] != 0 {
			return nil, nil, false
		}
	}
	x = MulVec(r, y)

	// The last n-rank columns of r span the nullspace.
	nullspace = make([][]int, 0, n-rank)
	for j := rank; j < n; j++ {
		col := make([]int, n)
		for i := 0; i < n; i++ {
			col[i] = r.At(i, j)
		}
		nullspace = append(nullspace, col)
	}
	return x, nullspace, true
}

// SolveMod1 solves a·x = b (mod 1) for a real right-hand side, where a
// is m×3. Zero-pivot rows require the corresponding entry of l·b to be
// an integer within eps. The returned solution has components reduced
// by Go's math.Mod into (-1, 1), and the full residual a·x - b is
// verified to be integer within eps.
func SolveMod1(a *Matrix, b []float64, eps float64) (mat3.Vec, bool) {
	m, n := a.Dims()
	if n != 3 {
		panic("intmat: mod-1 system is not 3-column")
	}
	if m != len(b) {
		panic("intmat: dimension mismatch")
	}
	d, l, r := SNF(a)

	// Solve d·y = l·b; then x = r·y.
	var y mat3.Vec
	for i := 0; i < 3; i++ {
		lbi := 0.0
		for j := 0; j < m; j++ {
			lbi += float64(l.At(i, j)) * b[j]
		}
		if d.At(i, i) == 0 {
			if math.Abs(lbi-math.Round(lbi)) > eps {
				return mat3.Vec{}, false
			}
		} else {
			y[i] = lbi / float64(d.At(i, i))
		}
	}

	var x mat3.Vec
	for i := 0; i < 3; i++ {
		s := 0.0
		for j := 0; j < 3; j++ {
			s += float64(r.At(i, j)) * y[j]
		}
		x[i] = math.Mod(s, 1)
	}

	// Verify the residual is integer within eps.
	for i := 0; i < m; i++ {
		res := -b[i]
		for j := 0; j < 3; j++ {
			res += float64(a.At(i, j)) * x[j]
		}
		res -= math.Round(res)
		if math.Abs(res) > eps {
			return mat3.Vec{}, false
		}
	}
	return x, true
}

// Sylvester3 finds an integer basis of matrices P satisfying
// P⁻¹·as[i]·P = bs[i] for all i, by stacking the Kronecker systems
// vec(as[i]·P - P·bs[i]) = 0. It returns ok=false when the stacked
// system has no nontrivial solution.
func Sylvester3(as, bs []mat3.IMat) (basis []mat3.IMat, ok bool) {
	if len(as) != len(bs) {
		panic("intmat: generator count mismatch")
	}
	size := len(as)
	coeffs := New(9*size, 9, nil)
	for g := 0; g < size; g++ {
		// (I ⊗ A) - (Bᵀ ⊗ I) with column-major vectorization:
		// row 3j+i ↔ element (i, j) of A·P - P·B, column 3l+k ↔ P[k][l].
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				for k := 0; k < 3; k++ {
					for l := 0; l < 3; l++ {
						v := 0
						if j == l {
							v += as[g][i][k]
						}
						if i == k {
							v -= bs[g][l][j]
						}
						coeffs.Set(9*g+3*j+i, 3*l+k, v)
					}
				}
			}
		}
	}

	zero := make([]int, 9*size)
	_, nullspace, ok := Solve(coeffs, zero)
	if !ok {
		return nil, false
	}
	basis = make([]mat3.IMat, 0, len(nullspace))
	for _, e := range nullspace {
		var p mat3.IMat
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				// Column-major vectorization.
				p[i][j] = e[3*j+i]
			}
		}
		basis = append(basis, p)
	}
	return basis, true
}
