// Copyright ©2025 The Crystalgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package search

import (
	"math"

	"github.com/crystalgo/spacegroup/crystal"
	"github.com/crystalgo/spacegroup/mat3"
)

// Symmetries are the coset representatives of the space group of a
// primitive cell with respect to its translation subgroup, together
// with the site permutation induced by each operation.
type Symmetries struct {
	Operations   []crystal.Operation
	Permutations []crystal.Permutation
}

// FindSymmetries searches the symmetry operations of the given
// primitive, Minkowski-reduced cell. The returned operations are
// guaranteed to form a group; when group closure and the tolerances
// are incompatible, closure wins and the search reports a tolerance
// error instead.
func FindSymmetries(primitive crystal.Cell, symprec float64, angleTolerance crystal.AngleTolerance) (*Symmetries, error) {
	roughSymprec := 2 * symprec
	if roughSymprec > primitive.Lattice.Basis.Col(0).Norm()/2 {
		return nil, crystal.ErrTooLargeTolerance
	}

	tree := NewPeriodicTree(primitive, roughSymprec)
	bravais, err := searchBravaisGroup(primitive.Lattice, symprec, angleTolerance)
	if err != nil {
		return nil, err
	}

	pivots := pivotSiteIndices(primitive.Species)
	src := pivots[0]
	type candidate struct {
		rotation mat3.IMat
		rough    mat3.Vec
		perm     crystal.Permutation
	}
	var candidates []candidate
	for _, rotation := range bravais {
		rotated := make([]mat3.Vec, primitive.NumAtoms())
		for i, p := range primitive.Positions {
			rotated[i] = rotation.MulVecF(p)
		}
		for _, dst := range pivots {
			// Overlap the src-th site onto the dst-th site. Several
			// translations may fit within the rough tolerance; all are
			// kept for purification.
			translation := primitive.Positions[dst].Sub(rotated[src])
			newPositions := make([]mat3.Vec, len(rotated))
			for i, p := range rotated {
				newPositions[i] = p.Add(translation)
			}
			if perm, ok := solveCorrespondence(tree, primitive, newPositions); ok {
				candidates = append(candidates, candidate{rotation, translation, perm})
			}
		}
	}

	type opPerm struct {
		op   crystal.Operation
		perm crystal.Permutation
	}
	var accepted []opPerm
	for _, c := range candidates {
		translation, distance := symmetrizeTranslation(primitive, c.perm, c.rotation, c.rough)
		if distance < symprec {
			accepted = append(accepted, opPerm{
				op:   crystal.Operation{Rotation: c.rotation, Translation: translation},
				perm: c.perm,
			})
		}
	}
	if len(accepted) == 0 {
		return nil, crystal.ErrTooSmallTolerance
	}

	// Complete the group by breadth-first multiplication, considering
	// operations up to the translation subgroup.
	queue := []opPerm{{crystal.Identity(), crystal.IdentityPermutation(primitive.NumAtoms())}}
	seen := make(map[mat3.IMat]struct{})
	var operations []crystal.Operation
	var permutations []crystal.Permutation
	for len(queue) > 0 {
		lhs := queue[0]
		queue = queue[1:]
		if _, ok := seen[lhs.op.Rotation]; ok {
			continue
		}
		seen[lhs.op.Rotation] = struct{}{}
		operations = append(operations, lhs.op)
		permutations = append(permutations, lhs.perm)

		for _, rhs := range accepted {
			op := lhs.op.Mul(rhs.op)
			op.Translation = op.Translation.Center()
			queue = append(queue, opPerm{op, lhs.perm.Mul(rhs.perm)})
		}
	}
	if len(operations) != len(accepted) {
		return nil, crystal.ErrTooLargeTolerance
	}

	if !closes(operations, primitive.Lattice, roughSymprec) {
		return nil, crystal.ErrTooLargeTolerance
	}

	return &Symmetries{Operations: operations, Permutations: permutations}, nil
}

// closes verifies that every pairwise product reproduces the stored
// translation of its rotation within the Cartesian tolerance.
func closes(operations []crystal.Operation, lattice crystal.Lattice, symprec float64) bool {
	translations := make(map[mat3.IMat]mat3.Vec, len(operations))
	for _, op := range operations {
		translations[op.Rotation] = op.Translation
	}
	for _, g1 := range operations {
		for _, g2 := range operations {
			prod := g1.Mul(g2)
			want, ok := translations[prod.Rotation]
			if !ok {
				return false
			}
			diff := want.Sub(prod.Translation).Center()
			if lattice.Cartesian(diff).Norm() > symprec {
				return false
			}
		}
	}
	return true
}

// searchBravaisGroup enumerates the integer automorphisms of the
// Minkowski-reduced lattice: triples of candidate lattice vectors with
// matching lengths, unit determinant and matching metric-tensor
// angles.
func searchBravaisGroup(lattice crystal.Lattice, symprec float64, angleTolerance crystal.AngleTolerance) ([]mat3.IMat, error) {
	lengths := [3]float64{
		lattice.Basis.Col(0).Norm(),
		lattice.Basis.Col(1).Norm(),
		lattice.Basis.Col(2).Norm(),
	}

	// Coefficients in {-1, 0, 1} suffice: the columns of any
	// automorphism of a Minkowski-reduced basis lie in that cube.
	var candidates [3][]mat3.IVec
	for c0 := -1; c0 <= 1; c0++ {
		for c1 := -1; c1 <= 1; c1++ {
			for c2 := -1; c2 <= 1; c2++ {
				coeffs := mat3.IVec{c0, c1, c2}
				norm := lattice.Basis.MulVec(coeffs.Float()).Norm()
				for i, length := range lengths {
					if math.Abs(norm-length) < symprec {
						candidates[i] = append(candidates[i], coeffs)
					}
				}
			}
		}
	}

	var rotations []mat3.IMat
	for _, c0 := range candidates[0] {
		v0 := lattice.Basis.MulVec(c0.Float())
		for _, c1 := range candidates[1] {
			v1 := lattice.Basis.MulVec(c1.Float())
			if !angleMatches(lattice.Basis, v0, v1, 0, 1, symprec, angleTolerance) {
				continue
			}
			for _, c2 := range candidates[2] {
				rotation := mat3.IFromCols(c0, c1, c2)
				if d := rotation.Det(); d != 1 && d != -1 {
					continue
				}
				v2 := lattice.Basis.MulVec(c2.Float())
				if !angleMatches(lattice.Basis, v1, v2, 1, 2, symprec, angleTolerance) {
					continue
				}
				if !angleMatches(lattice.Basis, v2, v0, 2, 0, symprec, angleTolerance) {
					continue
				}
				rotations = append(rotations, rotation)
			}
		}
	}

	// 48 is the order of the full cubic holohedry.
	if len(rotations) == 0 || 48%len(rotations) != 0 {
		return nil, crystal.ErrTooLargeTolerance
	}
	completed := crystal.Traverse(rotations)
	if len(completed) != len(rotations) {
		return nil, crystal.ErrTooLargeTolerance
	}
	return completed, nil
}

// angleMatches compares the angle between basis columns (col1, col2)
// with the angle between (v1, v2), either against the explicit angle
// tolerance or against the length-normalized symprec criterion.
func angleMatches(basis mat3.Mat, v1, v2 mat3.Vec, col1, col2 int, symprec float64, angleTolerance crystal.AngleTolerance) bool {
	thetaOrg := basis.Col(col1).Angle(basis.Col(col2))
	thetaNew := v1.Angle(v2)
	cosDtheta := math.Cos(thetaOrg)*math.Cos(thetaNew) + math.Sin(thetaOrg)*math.Sin(thetaNew)

	if !angleTolerance.IsDefault() {
		return math.Abs(math.Acos(clamp(cosDtheta))) < float64(angleTolerance)
	}
	sinDtheta2 := 1 - cosDtheta*cosDtheta
	lengthAve2 := (basis.Col(col1).Norm() + v1.Norm()) * (basis.Col(col2).Norm() + v2.Norm()) / 4
	return sinDtheta2*lengthAve2 < symprec*symprec
}

func clamp(c float64) float64 {
	switch {
	case c > 1:
		return 1
	case c < -1:
		return -1
	}
	return c
}
