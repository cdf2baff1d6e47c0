// Copyright ©2025 The Crystalgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reduce

import (
	"sort"

	"github.com/crystalgo/spacegroup/intmat"
	"github.com/crystalgo/spacegroup/mat3"
)

// Delaunay returns the Delaunay-reduced basis of the column-wise basis
// together with the accumulated unimodular transform. The four-vector
// superbase {b1, b2, b3, -(b1+b2+b3)} is reflected until all pairwise
// dot products are non-positive, then the three shortest vectors are
// selected from the seven-vector candidate list.
func Delaunay(basis mat3.Mat) (mat3.Mat, mat3.IMat) {
	reduced := basis
	trans := mat3.IEye()

	cc := intmat.NewCycleChecker()
	for {
		sb := superbase(reduced)

		update := false
		for i := 0; i < 3 && !update; i++ {
			for j := i + 1; j < 4; j++ {
				if sb[i].Dot(sb[j]) > eps {
					m := mat3.IEye()
					for k := 0; k < 3; k++ {
						if k == i || k == j {
							continue
						}
						add := mat3.IEye()
						add[i][k] = 1
						m = m.Mul(add)
					}
					neg := mat3.IEye()
					neg[i][i] = -1
					m = m.Mul(neg)

					reduced = reduced.Mul(m.Float())
					trans = trans.Mul(m)
					update = true
					break
				}
			}
		}

		if !update || !cc.Insert(trans) {
			break
		}
	}

	// Select the three shortest vectors from
	// {b1, b2, b3, b4, b1+b2, b2+b3, b3+b1}.
	candidates := []mat3.IVec{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
		{-1, -1, -1},
		{1, 1, 0},
		{0, 1, 1},
		{1, 0, 1},
	}
	order := make([]int, len(candidates))
	norms := make([]float64, len(candidates))
	for i, v := range candidates {
		order[i] = i
		norms[i] = reduced.MulVec(v.Float()).Norm()
	}
	sort.SliceStable(order, func(i, j int) bool { return norms[order[i]] < norms[order[j]] })

	shortest := mat3.IFromCols(candidates[order[0]], candidates[order[1]], candidates[order[2]])
	trans = trans.Mul(shortest)
	reduced = reduced.Mul(shortest.Float())

	if trans.Float().Det() < 0 {
		reduced = reduced.Scale(-1)
		trans = trans.Neg()
	}
	return reduced, trans
}

func superbase(basis mat3.Mat) [4]mat3.Vec {
	var sb [4]mat3.Vec
	var sum mat3.Vec
	for i := 0; i < 3; i++ {
		sb[i] = basis.Col(i)
		sum = sum.Add(sb[i])
	}
	sb[3] = sum.Neg()
	return sb
}
