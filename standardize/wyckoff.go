// Copyright ©2025 The Crystalgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package standardize

import (
	"github.com/crystalgo/spacegroup/crystal"
	"github.com/crystalgo/spacegroup/data"
	"github.com/crystalgo/spacegroup/intmat"
	"github.com/crystalgo/spacegroup/mat3"
)

// assignWyckoffs groups the sites of the standardized conventional
// cell into crystallographic orbits and assigns a Wyckoff position to
// each orbit. Every site of an orbit is tried until one matches a
// coordinate template; orbits with no match report
// ErrWyckoffPosition.
func assignWyckoffs(primStdCell crystal.Cell, primStdPermutations []crystal.Permutation, stdCell crystal.Cell, siteMapping []int, hallNumber int, symprec float64) ([]data.WyckoffPosition, error) {
	orbits := OrbitsInCell(primStdCell.NumAtoms(), primStdPermutations, siteMapping)

	numOrbits := 0
	mapping := make([]int, stdCell.NumAtoms())
	for i := 0; i < stdCell.NumAtoms(); i++ {
		if orbits[i] == i {
			mapping[i] = numOrbits
			numOrbits++
		} else {
			mapping[i] = mapping[orbits[i]]
		}
	}

	multiplicities := make([]int, numOrbits)
	for i := 0; i < stdCell.NumAtoms(); i++ {
		multiplicities[mapping[i]]++
	}

	representatives := make([]*data.WyckoffPosition, numOrbits)
	for i, position := range stdCell.Positions {
		orbit := mapping[i]
		if representatives[orbit] != nil {
			continue
		}
		if w, ok := assignWyckoffPosition(position, multiplicities[orbit], hallNumber, stdCell.Lattice, symprec); ok {
			representatives[orbit] = &w
		}
	}
	for _, w := range representatives {
		if w == nil {
			return nil, crystal.ErrWyckoffPosition
		}
	}

	wyckoffs := make([]data.WyckoffPosition, stdCell.NumAtoms())
	for i := 0; i < stdCell.NumAtoms(); i++ {
		wyckoffs[i] = *representatives[mapping[orbits[i]]]
	}
	return wyckoffs, nil
}

// assignWyckoffPosition finds the first Wyckoff position of the given
// multiplicity whose coordinate space contains the position: free
// parameters y and an integer offset n with
//
//	|lattice·(linear·y + origin - position - n)| < symprec,
//
// solved through the Smith normal form of the template's linear part,
// searching offsets in {-1,0,1}³ and then the shell with a coordinate
// of absolute value two.
func assignWyckoffPosition(position mat3.Vec, multiplicity, hallNumber int, lattice crystal.Lattice, symprec float64) (data.WyckoffPosition, bool) {
	positions, ok := data.WyckoffPositionsFor(hallNumber, multiplicity)
	if !ok {
		return data.WyckoffPosition{}, false
	}
	for _, wyckoff := range positions {
		space := data.ParseWyckoffSpace(wyckoff.Coordinates)

		flat := make([]int, 0, 9)
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				flat = append(flat, space.Linear[i][j])
			}
		}
		d, l, r := intmat.SNF(intmat.New(3, 3, flat))
		var lm, rm mat3.IMat
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				lm[i][j] = l.At(i, j)
				rm[i][j] = r.At(i, j)
			}
		}

		for _, offset := range wyckoffOffsets {
			b := lm.MulVecF(offset.Add(position).Sub(space.Origin))
			var rinvy mat3.Vec
			for i := 0; i < 3; i++ {
				if d.At(i, i) != 0 {
					rinvy[i] = b[i] / float64(d.At(i, i))
				}
			}
			y := rm.MulVecF(rinvy)
			diff := space.Linear.MulVecF(y).Add(space.Origin).Sub(position).Sub(offset)
			if lattice.Cartesian(diff).Norm() < symprec {
				return wyckoff, true
			}
		}
	}
	return data.WyckoffPosition{}, false
}

// wyckoffOffsets lists the integer offsets tried during assignment:
// the {-1,0,1}³ cube first, then the shell where some coordinate has
// absolute value two.
var wyckoffOffsets = func() []mat3.Vec {
	var offsets []mat3.Vec
	for n0 := -1; n0 <= 1; n0++ {
		for n1 := -1; n1 <= 1; n1++ {
			for n2 := -1; n2 <= 1; n2++ {
				offsets = append(offsets, mat3.Vec{float64(n0), float64(n1), float64(n2)})
			}
		}
	}
	for n0 := -2; n0 <= 2; n0++ {
		for n1 := -2; n1 <= 2; n1++ {
			for n2 := -2; n2 <= 2; n2++ {
				if n0 != -2 && n0 != 2 && n1 != -2 && n1 != 2 && n2 != -2 && n2 != 2 {
					continue
				}
				offsets = append(offsets, mat3.Vec{float64(n0), float64(n1), float64(n2)})
			}
		}
	}
	return offsets
}()
