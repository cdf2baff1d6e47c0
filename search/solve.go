// Copyright ©2025 The Crystalgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package search

import (
	"github.com/crystalgo/spacegroup/crystal"
	"github.com/crystalgo/spacegroup/mat3"
)

// pivotSiteIndices returns the indices of the sites whose species has
// the smallest occurrence count, ties broken by species label order.
func pivotSiteIndices(species []int) []int {
	counts := make(map[int]int)
	for _, s := range species {
		counts[s]++
	}
	pivot, best := 0, -1
	for s, n := range counts {
		if best < 0 || n < best || (n == best && s < pivot) {
			pivot, best = s, n
		}
	}
	var indices []int
	for i, s := range species {
		if s == pivot {
			indices = append(indices, i)
		}
	}
	return indices
}

// solveCorrespondence finds the permutation p with newPositions[i]
// matching cell.Positions[p[i]] within the tree tolerance; a symmetry
// candidate producing newPositions then moves site i onto site p[i].
// O(n log n) through the periodic tree.
func solveCorrespondence(t *PeriodicTree, cell crystal.Cell, newPositions []mat3.Vec) (crystal.Permutation, bool) {
	n := t.numSites
	mapping := make(crystal.Permutation, n)
	used := make([]bool, n)

	for i := 0; i < n; i++ {
		j, _, ok := t.Nearest(newPositions[i])
		if !ok {
			return nil, false
		}
		if cell.Species[i] != cell.Species[j] || used[j] {
			return nil, false
		}
		mapping[i] = j
		used[j] = true
	}
	return mapping, true
}

// solveCorrespondenceNaive is the O(n²) reference of
// solveCorrespondence, assuming a Minkowski-reduced cell so that the
// nearest-integer displacement is the torus minimum.
func solveCorrespondenceNaive(cell crystal.Cell, newPositions []mat3.Vec, symprec float64) (crystal.Permutation, bool) {
	n := cell.NumAtoms()
	mapping := make(crystal.Permutation, n)
	visited := make([]bool, n)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if visited[j] || cell.Species[i] != cell.Species[j] {
				continue
			}
			disp := cell.Positions[j].Sub(newPositions[i]).Center()
			if cell.Lattice.Cartesian(disp).Norm() < symprec {
				mapping[i] = j
				visited[j] = true
				break
			}
		}
	}
	for _, v := range visited {
		if !v {
			return nil, false
		}
	}
	return mapping, true
}

// symmetrizeTranslation recomputes the translation of a symmetry
// candidate as the least-squares optimum for its permutation,
//
//	argmin_t Σᵢ |pbc(R·xᵢ + t - x_{p(i)})|²,
//
// and returns it with the largest Cartesian residual. The rough
// translation is subtracted before wrapping and re-added afterwards so
// the averaging is not biased by displacements near the cell boundary.
func symmetrizeTranslation(cell crystal.Cell, perm crystal.Permutation, rotation mat3.IMat, rough mat3.Vec) (mat3.Vec, float64) {
	n := cell.NumAtoms()

	var sum mat3.Vec
	for i := 0; i < n; i++ {
		disp := cell.Positions[perm.Apply(i)].Sub(rotation.MulVecF(cell.Positions[i]))
		disp = disp.Sub(rough).Center().Add(rough)
		sum = sum.Add(disp)
	}
	translation := sum.Scale(1 / float64(n))

	maxDist := 0.0
	for i := 0; i < n; i++ {
		disp := rotation.MulVecF(cell.Positions[i]).Add(translation).
			Sub(cell.Positions[perm.Apply(i)]).Center()
		if d := cell.Lattice.Cartesian(disp).Norm(); d > maxDist {
			maxDist = d
		}
	}
	return translation, maxDist
}
