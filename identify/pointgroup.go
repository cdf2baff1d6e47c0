// Copyright ©2025 The Crystalgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package identify

import (
	"gonum.org/v1/gonum/stat/combin"

	"github.com/crystalgo/spacegroup/crystal"
	"github.com/crystalgo/spacegroup/data"
	"github.com/crystalgo/spacegroup/intmat"
	"github.com/crystalgo/spacegroup/mat3"
)

// PointGroup is an identified arithmetic crystal class together with
// the unimodular transform onto its tabulated representative in the
// primitive basis.
type PointGroup struct {
	ArithmeticNumber int
	PrimTransMat     mat3.IMat
}

// IdentifyPointGroup identifies the arithmetic crystal class of the
// rotations, which must be given in a reduced primitive basis.
func IdentifyPointGroup(primRotations []mat3.IMat) (PointGroup, error) {
	types := make([]rotationType, len(primRotations))
	for i, r := range primRotations {
		types[i] = rotationTypeOf(r)
	}
	class, err := geometricCrystalClassOf(types)
	if err != nil {
		return PointGroup{}, err
	}

	switch class.System() {
	case data.Triclinic:
		// Trivial: nothing to conjugate.
		if class == data.ClassC1 {
			return PointGroup{ArithmeticNumber: 1, PrimTransMat: mat3.IEye()}, nil
		}
		return PointGroup{ArithmeticNumber: 2, PrimTransMat: mat3.IEye()}, nil
	case data.Cubic:
		return matchCubicPointGroup(primRotations, types, class)
	}
	return matchPointGroup(primRotations, types, class)
}

type rotationType int

const (
	rotation1      rotationType = iota // 1
	rotation2                          // 2
	rotation3                          // 3
	rotation4                          // 4
	rotation6                          // 6
	rotoInversion1                     // -1
	rotoInversion2                     // -2 = m
	rotoInversion3                     // -3
	rotoInversion4                     // -4
	rotoInversion6                     // -6
)

// rotationTypeOf classifies a crystallographic rotation by its trace
// and determinant.
func rotationTypeOf(r mat3.IMat) rotationType {
	key := [2]int{r.Trace(), r.Det()}
	switch key {
	case [2]int{3, 1}:
		return rotation1
	case [2]int{-1, 1}:
		return rotation2
	case [2]int{0, 1}:
		return rotation3
	case [2]int{1, 1}:
		return rotation4
	case [2]int{2, 1}:
		return rotation6
	case [2]int{-3, -1}:
		return rotoInversion1
	case [2]int{1, -1}:
		return rotoInversion2
	case [2]int{0, -1}:
		return rotoInversion3
	case [2]int{-1, -1}:
		return rotoInversion4
	case [2]int{-2, -1}:
		return rotoInversion6
	}
	panic("identify: matrix is not a crystallographic rotation")
}

// The histogram bins are ordered (-6, -4, -3, -2, -1, 1, 2, 3, 4, 6).
var histogramTable = map[[10]int]data.GeometricCrystalClass{
	// Triclinic
	{0, 0, 0, 0, 0, 1, 0, 0, 0, 0}: data.ClassC1,
	{0, 0, 0, 0, 1, 1, 0, 0, 0, 0}: data.ClassCi,
	// Monoclinic
	{0, 0, 0, 0, 0, 1, 1, 0, 0, 0}: data.ClassC2,
	{0, 0, 0, 1, 0, 1, 0, 0, 0, 0}: data.ClassC1h,
	{0, 0, 0, 1, 1, 1, 1, 0, 0, 0}: data.ClassC2h,
	// Orthorhombic
	{0, 0, 0, 0, 0, 1, 3, 0, 0, 0}: data.ClassD2,
	{0, 0, 0, 2, 0, 1, 1, 0, 0, 0}: data.ClassC2v,
	{0, 0, 0, 3, 1, 1, 3, 0, 0, 0}: data.ClassD2h,
	// Tetragonal
	{0, 0, 0, 0, 0, 1, 1, 0, 2, 0}: data.ClassC4,
	{0, 2, 0, 0, 0, 1, 1, 0, 0, 0}: data.ClassS4,
	{0, 2, 0, 1, 1, 1, 1, 0, 2, 0}: data.ClassC4h,
	{0, 0, 0, 0, 0, 1, 5, 0, 2, 0}: data.ClassD4,
	{0, 0, 0, 4, 0, 1, 1, 0, 2, 0}: data.ClassC4v,
	{0, 2, 0, 2, 0, 1, 3, 0, 0, 0}: data.ClassD2d,
	{0, 2, 0, 5, 1, 1, 5, 0, 2, 0}: data.ClassD4h,
	// Trigonal
	{0, 0, 0, 0, 0, 1, 0, 2, 0, 0}: data.ClassC3,
	{0, 0, 2, 0, 1, 1, 0, 2, 0, 0}: data.ClassC3i,
	{0, 0, 0, 0, 0, 1, 3, 2, 0, 0}: data.ClassD3,
	{0, 0, 0, 3, 0, 1, 0, 2, 0, 0}: data.ClassC3v,
	{0, 0, 2, 3, 1, 1, 3, 2, 0, 0}: data.ClassD3d,
	// Hexagonal
	{0, 0, 0, 0, 0, 1, 1, 2, 0, 2}: data.ClassC6,
	{2, 0, 0, 1, 0, 1, 0, 2, 0, 0}: data.ClassC3h,
	{2, 0, 2, 1, 1, 1, 1, 2, 0, 2}: data.ClassC6h,
	{0, 0, 0, 0, 0, 1, 7, 2, 0, 2}: data.ClassD6,
	{0, 0, 0, 6, 0, 1, 1, 2, 0, 2}: data.ClassC6v,
	{2, 0, 0, 4, 0, 1, 3, 2, 0, 0}: data.ClassD3h,
	{2, 0, 2, 7, 1, 1, 7, 2, 0, 2}: data.ClassD6h,
	// Cubic
	{0, 0, 0, 0, 0, 1, 3, 8, 0, 0}: data.ClassT,
	{0, 0, 8, 3, 1, 1, 3, 8, 0, 0}: data.ClassTh,
	{0, 0, 0, 0, 0, 1, 9, 8, 6, 0}: data.ClassO,
	{0, 6, 0, 6, 0, 1, 3, 8, 0, 0}: data.ClassTd,
	{0, 6, 8, 9, 1, 1, 9, 8, 6, 0}: data.ClassOh,
}

// geometricCrystalClassOf looks the rotation-type histogram up in the
// 32-row table. An unlisted histogram is a tolerance failure, not an
// unknown class.
func geometricCrystalClassOf(types []rotationType) (data.GeometricCrystalClass, error) {
	var histogram [10]int
	for _, t := range types {
		switch t {
		case rotoInversion6:
			histogram[0]++
		case rotoInversion4:
			histogram[1]++
		case rotoInversion3:
			histogram[2]++
		case rotoInversion2:
			histogram[3]++
		case rotoInversion1:
			histogram[4]++
		case rotation1:
			histogram[5]++
		case rotation2:
			histogram[6]++
		case rotation3:
			histogram[7]++
		case rotation4:
			histogram[8]++
		case rotation6:
			histogram[9]++
		}
	}
	class, ok := histogramTable[histogram]
	if !ok {
		return 0, crystal.ErrGeometricCrystalClass
	}
	return class, nil
}

// generatorCandidates collects, for each reference generator, the
// input rotations of the same rotation type.
func generatorCandidates(types []rotationType, generators []mat3.IMat) [][]int {
	candidates := make([][]int, len(generators))
	for g, gen := range generators {
		want := rotationTypeOf(gen)
		for i, t := range types {
			if t == want {
				candidates[g] = append(candidates[g], i)
			}
		}
	}
	return candidates
}

// matchPointGroup tries every arithmetic class of the geometric class:
// conjugate a tuple of input rotations onto the representative
// generators by the integer Sylvester solve, then search small integer
// combinations of the solution basis for a unimodular transform.
// Coefficients in [-2, 2] are complete for reduced bases.
func matchPointGroup(primRotations []mat3.IMat, types []rotationType, class data.GeometricCrystalClass) (PointGroup, error) {
	for _, entry := range data.ArithmeticEntries() {
		if entry.Class != class {
			continue
		}
		rep := data.RepresentativeFor(entry.Number)
		generators := rep.PrimitiveGenerators()
		candidates := generatorCandidates(types, generators)

		for _, pivot := range cartesianIndex(candidates) {
			picked := make([]mat3.IMat, len(pivot))
			for i, p := range pivot {
				picked[i] = primRotations[candidates[i][p]]
			}
			basis, ok := intmat.Sylvester3(picked, generators)
			if !ok {
				continue
			}
			if trans, ok := unimodularCombination(basis); ok {
				return PointGroup{ArithmeticNumber: entry.Number, PrimTransMat: trans}, nil
			}
		}
	}
	return PointGroup{}, crystal.ErrArithmeticCrystalClass
}

// matchCubicPointGroup is the cubic fast path: conjugate onto the
// single primitive-centering candidate, whose Sylvester solution space
// is one-dimensional, then pick the arithmetic class whose centering
// order matches the determinant.
func matchCubicPointGroup(primRotations []mat3.IMat, types []rotationType, class data.GeometricCrystalClass) (PointGroup, error) {
	type cubicCandidate struct {
		number int
		rep    data.PointGroupRepresentative
	}
	var candidates []cubicCandidate
	primIdx := -1
	for _, entry := range data.ArithmeticEntries() {
		if entry.Class != class {
			continue
		}
		candidates = append(candidates, cubicCandidate{entry.Number, data.RepresentativeFor(entry.Number)})
		if candidates[len(candidates)-1].rep.Centering == data.CenteringP {
			primIdx = len(candidates) - 1
		}
	}
	generators := candidates[primIdx].rep.PrimitiveGenerators()
	pivotSets := generatorCandidates(types, generators)

	for _, pivot := range cartesianIndex(pivotSets) {
		picked := make([]mat3.IMat, len(pivot))
		for i, p := range pivot {
			picked[i] = primRotations[pivotSets[i][p]]
		}
		basis, ok := intmat.Sylvester3(picked, generators)
		if !ok || len(basis) != 1 {
			continue
		}
		conv := basis[0]
		det := conv.Det()
		switch {
		case det < 0:
			conv = conv.Neg()
			det = -det
		case det == 0:
			continue
		}

		for _, c := range candidates {
			centering := c.rep.Centering
			if centering.Order() != det {
				continue
			}
			primTrans := conv.Float().Mul(centering.Inverse()).RoundI()
			if primTrans.Det() != 1 {
				return PointGroup{}, crystal.ErrArithmeticCrystalClass
			}
			return PointGroup{ArithmeticNumber: c.number, PrimTransMat: primTrans}, nil
		}
	}
	return PointGroup{}, crystal.ErrArithmeticCrystalClass
}

// unimodularCombination searches integer combinations of the Sylvester
// basis with coefficients in [-2, 2] for a determinant-one matrix.
func unimodularCombination(basis []mat3.IMat) (mat3.IMat, bool) {
	lens := make([]int, len(basis))
	for i := range lens {
		lens[i] = 5
	}
	for _, comb := range combin.Cartesian(lens) {
		var trans mat3.IMat
		for i, b := range basis {
			trans = trans.Add(b.Scale(comb[i] - 2))
		}
		if trans.Det() == 1 {
			return trans, true
		}
	}
	return mat3.IMat{}, false
}

// cartesianIndex enumerates index tuples over the candidate sets; an
// empty set yields no tuples.
func cartesianIndex(candidates [][]int) [][]int {
	lens := make([]int, len(candidates))
	for i, c := range candidates {
		if len(c) == 0 {
			return nil
		}
		lens[i] = len(c)
	}
	if len(lens) == 0 {
		return nil
	}
	return combin.Cartesian(lens)
}
