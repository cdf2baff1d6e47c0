// Copyright ©2025 The Crystalgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package standardize

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/crystalgo/spacegroup/crystal"
	"github.com/crystalgo/spacegroup/data"
	"github.com/crystalgo/spacegroup/identify"
	"github.com/crystalgo/spacegroup/mat3"
)

// StandardizedCell is the standardized form of a primitive cell.
type StandardizedCell struct {
	// PrimCell is the standardized primitive cell.
	PrimCell crystal.Cell
	// PrimTransformation maps the input primitive cell onto PrimCell.
	PrimTransformation crystal.UnimodularTransformation

	// Cell is the standardized conventional cell.
	Cell crystal.Cell
	// Wyckoffs are the Wyckoff positions of the sites of Cell.
	Wyckoffs []data.WyckoffPosition
	// Transformation maps the input primitive cell onto Cell.
	Transformation crystal.Transformation

	// RotationMatrix is the orthogonal rotation aligning the input
	// primitive lattice with the standardized lattice.
	RotationMatrix mat3.Mat
	// SiteMapping maps sites of Cell to sites of PrimCell.
	SiteMapping []int
}

// Standardize standardizes the input primitive cell under its
// identified space group. Basis vectors are rotated to an
// upper-triangular standard basis; for triclinic groups only a Niggli
// reduction is applied, and for monoclinic groups the in-plane basis
// is chosen to minimize skewness.
func Standardize(primCell crystal.Cell, primOperations []crystal.Operation, primPermutations []crystal.Permutation, spaceGroup *identify.SpaceGroup, symprec, epsilon float64) (*StandardizedCell, error) {
	entry, ok := data.HallEntryFor(spaceGroup.HallNumber)
	if !ok {
		return nil, crystal.ErrStandardization
	}
	hs, ok := data.HallSymbolFor(spaceGroup.HallNumber)
	if !ok {
		return nil, crystal.ErrStandardization
	}
	convStdOperations := hs.Traverse()
	primStdOperations := hs.PrimitiveTraverse()

	arithmetic, ok := data.ArithmeticEntryFor(entry.ArithmeticNumber)
	if !ok {
		return nil, crystal.ErrStandardization
	}

	var primTransformation crystal.UnimodularTransformation
	var convTransLinear mat3.IMat
	switch arithmetic.LatticeSystem() {
	case data.LatticeTriclinic:
		_, linear := primCell.Lattice.UncheckedNiggliReduce()
		primTransformation = crystal.UnimodularFromLinear(linear)
		convTransLinear = mat3.IEye()
	case data.LatticeMonoclinic:
		primTransformation = spaceGroup.Transformation
		convTransLinear = standardizeMonoclinic(primCell.Lattice, spaceGroup.Transformation, entry.Centering(), hs.Generators, epsilon)
	default:
		primTransformation = spaceGroup.Transformation
		convTransLinear = entry.Centering().Linear()
	}

	primStdCellTmp := primTransformation.TransformCell(primCell)

	// The standardized operations may be ordered differently from the
	// search output; rekey the permutations by rotation part.
	permByRotation := make(map[mat3.IMat]crystal.Permutation, len(primOperations))
	for i, op := range primTransformation.TransformOperations(primOperations) {
		permByRotation[op.Rotation] = primPermutations[i]
	}
	primStdPermutations := make([]crystal.Permutation, len(primStdOperations))
	for i, op := range primStdOperations {
		perm, ok := permByRotation[op.Rotation]
		if !ok {
			return nil, crystal.ErrStandardization
		}
		primStdPermutations[i] = perm
	}

	primStdCell := crystal.NewCell(
		primStdCellTmp.Lattice,
		symmetrizePositions(primStdCellTmp, primStdOperations, primStdPermutations),
		primStdCellTmp.Species,
	)

	stdCell, siteMapping := crystal.FromLinear(convTransLinear).TransformCell(primStdCell)

	rotationMatrix, err := symmetrizeLattice(stdCell.Lattice, crystal.Rotations(convStdOperations))
	if err != nil {
		return nil, err
	}

	rotatedStd := stdCell.Rotate(rotationMatrix)
	wyckoffs, err := assignWyckoffs(primStdCell, primStdPermutations, rotatedStd, siteMapping, spaceGroup.HallNumber, symprec)
	if err != nil {
		return nil, err
	}

	return &StandardizedCell{
		PrimCell:           primStdCell.Rotate(rotationMatrix),
		PrimTransformation: primTransformation,
		Cell:               rotatedStd,
		Wyckoffs:           wyckoffs,
		Transformation: crystal.NewTransformation(
			primTransformation.Linear.Mul(convTransLinear),
			primTransformation.OriginShift,
		),
		RotationMatrix: rotationMatrix,
		SiteMapping:    siteMapping,
	}, nil
}

// OrbitsInCell lifts the primitive-cell orbits through the site
// mapping of an enlarged cell: sites sharing a primitive orbit share
// an orbit representative, the first such site in the enlarged cell.
func OrbitsInCell(primNumAtoms int, primPermutations []crystal.Permutation, siteMapping []int) []int {
	primOrbits := crystal.Orbits(primNumAtoms, primPermutations)

	first := make(map[int]int)
	orbits := make([]int, len(siteMapping))
	for i, prim := range siteMapping {
		key := primOrbits[prim]
		if _, ok := first[key]; !ok {
			first[key] = i
		}
		orbits[i] = first[key]
	}
	return orbits
}

// symmetrizePositions averages each site over its site-symmetry group:
// the mean displacement of g·x_{p_g⁻¹(i)} + t_g from x_i over all
// operations, taken on the torus.
func symmetrizePositions(cell crystal.Cell, operations []crystal.Operation, permutations []crystal.Permutation) []mat3.Vec {
	inverses := make([]crystal.Permutation, len(permutations))
	for i, p := range permutations {
		inverses[i] = p.Inverse()
	}

	positions := make([]mat3.Vec, cell.NumAtoms())
	for i := range positions {
		var acc mat3.Vec
		for k, op := range operations {
			disp := op.Rotation.MulVecF(cell.Positions[inverses[k].Apply(i)]).
				Add(op.Translation).Sub(cell.Positions[i]).Center()
			acc = acc.Add(disp)
		}
		positions[i] = cell.Positions[i].Add(acc.Scale(1 / float64(len(permutations))))
	}
	return positions
}

// symmetrizeLattice averages the metric tensor over the rotations,
// takes the upper-triangular Cholesky basis, and returns the
// orthogonal rotation aligning the input basis with it. The rotation
// is the Q factor of QR(standard·input⁻¹) with the sign freedom of the
// axes removed.
func symmetrizeLattice(lattice crystal.Lattice, rotations []mat3.IMat) (mat3.Mat, error) {
	metric := lattice.MetricTensor()
	var sum mat3.Mat
	for _, r := range rotations {
		sum = sum.Add(r.T().Float().Mul(metric).Mul(r.Float()))
	}
	sum = sum.Scale(1 / float64(len(rotations)))

	sym := mat.NewSymDense(3, nil)
	for i := 0; i < 3; i++ {
		for j := i; j < 3; j++ {
			sym.SetSym(i, j, sum[i][j])
		}
	}
	var chol mat.Cholesky
	if !chol.Factorize(sym) {
		return mat3.Mat{}, crystal.ErrStandardization
	}
	var l mat.TriDense
	chol.LTo(&l)
	var triBasis mat3.Mat
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			triBasis[i][j] = l.At(j, i)
		}
	}

	// triBasis ≈ rotation · lattice.Basis up to strain.
	target := triBasis.Mul(lattice.Basis.Inv())
	var qr mat.QR
	qr.Factorize(mat.NewDense(3, 3, []float64{
		target[0][0], target[0][1], target[0][2],
		target[1][0], target[1][1], target[1][2],
		target[2][0], target[2][1], target[2][2],
	}))
	var qd, rd mat.Dense
	qr.QTo(&qd)
	qr.RTo(&rd)

	var rotation mat3.Mat
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			rotation[i][j] = qd.At(i, j) * sign(rd.At(j, j))
		}
	}
	return rotation, nil
}

func sign(x float64) float64 {
	switch {
	case x > crystal.Eps:
		return 1
	case x < -crystal.Eps:
		return -1
	}
	return 0
}

// unimodularRange1 is the set of determinant-one matrices with entries
// in {-1, 0, 1}, in row-major generation order. The order is part of
// the monoclinic tie-breaking contract.
var unimodularRange1 = func() []mat3.IMat {
	var set []mat3.IMat
	var m mat3.IMat
	var fill func(int)
	fill = func(k int) {
		if k == 9 {
			if m.Det() == 1 {
				set = append(set, m)
			}
			return
		}
		for v := -1; v <= 1; v++ {
			m[k/3][k%3] = v
			fill(k + 1)
		}
	}
	fill(0)
	return set
}()

// standardizeMonoclinic chooses in-plane basis vectors for the
// conventional monoclinic cell, keeping the centering translations and
// the matrix representations of the standard generators while
// minimizing the skewness of the resulting basis. Ties keep the first
// candidate in enumeration order.
func standardizeMonoclinic(primLattice crystal.Lattice, toPrimStd crystal.UnimodularTransformation, centering data.Centering, convStdGenerators []crystal.Operation, epsilon float64) mat3.IMat {
	best := mat3.IEye()
	bestSkewness := math.Inf(1)
	found := false

	for _, corr := range unimodularRange1 {
		if !keepsLatticePoints(corr, centering, epsilon) {
			continue
		}
		if !keepsGenerators(corr, convStdGenerators, epsilon) {
			continue
		}

		linear := toPrimStd.Linear.Mul(centering.Linear()).Mul(corr)
		convLattice := crystal.FromLinear(linear).TransformLattice(primLattice)
		constants := convLattice.Constants()
		skewness := 0.0
		for _, angle := range constants[3:] {
			skewness += math.Abs(math.Cos(angle * math.Pi / 180))
		}
		if skewness < bestSkewness {
			bestSkewness = skewness
			best = centering.Linear().Mul(corr)
			found = true
		}
	}
	if !found {
		return centering.Linear()
	}
	return best
}

func keepsLatticePoints(corr mat3.IMat, centering data.Centering, epsilon float64) bool {
	for _, t := range centering.LatticePoints() {
		diff := corr.MulVecF(t).Sub(t).Center()
		if diff.MaxAbs() > epsilon {
			return false
		}
	}
	return true
}

func keepsGenerators(corr mat3.IMat, generators []crystal.Operation, epsilon float64) bool {
	tr := crystal.UnimodularFromLinear(corr)
	for _, op := range generators {
		got := tr.TransformOperation(op)
		if got.Rotation != op.Rotation {
			return false
		}
		if diff := got.Translation.Sub(op.Translation).Center(); diff.MaxAbs() > epsilon {
			return false
		}
	}
	return true
}
