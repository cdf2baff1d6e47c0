// Copyright ©2025 The Crystalgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reduce

import (
	"math"

	"github.com/crystalgo/spacegroup/intmat"
	"github.com/crystalgo/spacegroup/mat3"
)

const eps = 1e-8

// Minkowski returns the Minkowski-reduced basis of the column-wise
// basis together with the accumulated unimodular transform. The
// greedy algorithm of Nguyen and Stehlé is applied dimension by
// dimension; parity is preserved by negating the whole basis when the
// accumulated transform has negative determinant.
func Minkowski(basis mat3.Mat) (mat3.Mat, mat3.IMat) {
	reduced := basis
	trans := mat3.IEye()
	minkowskiGreedy(&reduced, &trans, 3)

	if trans.Float().Det() < 0 {
		reduced = reduced.Scale(-1)
		trans = trans.Neg()
	}
	return reduced, trans
}

// minkowskiGreedy reduces the first rank columns of basis in place,
// maintaining basis0·trans = basis.
func minkowskiGreedy(basis *mat3.Mat, trans *mat3.IMat, rank int) {
	if rank == 1 {
		return
	}

	cc := intmat.NewCycleChecker()
	for {
		// Sort basis vectors by length.
		lengths := [3]float64{}
		for i := 0; i < rank; i++ {
			lengths[i] = basis.Col(i).Norm()
		}
		for i := 0; i < rank; i++ {
			for j := 0; j < rank-1-i; j++ {
				if lengths[j] > lengths[j+1]+eps {
					lengths[j], lengths[j+1] = lengths[j+1], lengths[j]
					swapCols(basis, trans, j, j+1)
				}
			}
		}

		minkowskiGreedy(basis, trans, rank-1)

		// Solve the closest vector problem for the last column against
		// the sublattice of the first rank-1 columns: round the
		// Gram-Schmidt coefficients, then check the Voronoi-relevant
		// offsets around the rounding.
		d := rank - 1
		var gs [2]float64
		switch d {
		case 1:
			b0 := basis.Col(0)
			gs[0] = b0.Dot(basis.Col(1)) / b0.NormSquared()
		case 2:
			b0, b1, b2 := basis.Col(0), basis.Col(1), basis.Col(2)
			h00 := 1.0
			h01 := b0.Dot(b1) / b0.NormSquared()
			h10 := b1.Dot(b0) / b1.NormSquared()
			h11 := 1.0
			u0 := b0.Dot(b2) / b0.NormSquared()
			u1 := b1.Dot(b2) / b1.NormSquared()
			det := h00*h11 - h01*h10
			gs[0] = (h11*u0 - h01*u1) / det
			gs[1] = (h00*u1 - h10*u0) / det
		}
		var gsRint [2]int
		for i := 0; i < d; i++ {
			gsRint[i] = int(math.Round(gs[i]))
		}

		// Offsets in {-1, 0, 1}^d suffice for a Minkowski-reduced
		// sublattice of dimension at most two.
		cvpMin := math.Inf(1)
		var coeffsArgmin [2]int
		var cArgmin mat3.Vec
		offsets := [3]int{-1, 0, 1}
		iterate := func(c0, c1 int) {
			coeffs := [2]int{gsRint[0] + c0, gsRint[1] + c1}
			var c mat3.Vec
			for i := 0; i < d; i++ {
				c = c.Add(basis.Col(i).Scale(float64(coeffs[i])))
			}
			if cvp := c.Sub(basis.Col(d)).Norm(); cvp < cvpMin {
				cvpMin = cvp
				coeffsArgmin = coeffs
				cArgmin = c
			}
		}
		if d == 1 {
			for _, c0 := range offsets {
				iterate(c0, 0)
			}
		} else {
			for _, c0 := range offsets {
				for _, c1 := range offsets {
					iterate(c0, c1)
				}
			}
		}

		*basis = basis.SetCol(d, basis.Col(d).Sub(cArgmin))
		addMat := mat3.IEye()
		for i := 0; i < d; i++ {
			addMat[i][d] = -coeffsArgmin[i]
		}
		*trans = trans.Mul(addMat)

		// Loop until the length ordering stabilizes.
		if basis.Col(d).Norm()+eps > basis.Col(d-1).Norm() {
			break
		}
		if !cc.Insert(*trans) {
			break
		}
	}
}

func swapCols(basis *mat3.Mat, trans *mat3.IMat, j1, j2 int) {
	cj1, cj2 := basis.Col(j1), basis.Col(j2)
	*basis = basis.SetCol(j1, cj2).SetCol(j2, cj1)
	for i := 0; i < 3; i++ {
		trans[i][j1], trans[i][j2] = trans[i][j2], trans[i][j1]
	}
}

// IsMinkowskiReduced reports whether the column-wise basis satisfies
// the explicit Minkowski conditions: ordered lengths, and no shorter
// representative among the relevant integer combinations.
func IsMinkowskiReduced(basis mat3.Mat) bool {
	n0 := basis.Col(0).Norm()
	n1 := basis.Col(1).Norm()
	n2 := basis.Col(2).Norm()
	if n0 > n1+eps || n1 > n2+eps {
		return false
	}

	for _, coeffs := range [][3]float64{{1, -1, 0}, {1, 1, 0}} {
		if basis.MulVec(mat3.Vec(coeffs)).Norm()+eps < n1 {
			return false
		}
	}
	for _, coeffs := range [][3]float64{
		{1, 0, 1}, {1, 0, -1}, {0, 1, 1}, {0, 1, -1},
		{1, -1, -1}, {1, -1, 1}, {1, 1, -1}, {1, 1, 1},
	} {
		if basis.MulVec(mat3.Vec(coeffs)).Norm()+eps < n2 {
			return false
		}
	}
	return true
}
