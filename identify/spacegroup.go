// Copyright ©2025 The Crystalgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package identify

import (
	"math"

	"github.com/crystalgo/spacegroup/crystal"
	"github.com/crystalgo/spacegroup/data"
	"github.com/crystalgo/spacegroup/intmat"
	"github.com/crystalgo/spacegroup/mat3"
)

// SpaceGroup is an identified space-group type: the ITA number, the
// matched Hall setting, and the transformation from the input
// primitive basis onto that setting's primitive representative.
type SpaceGroup struct {
	Number         int
	HallNumber     int
	Transformation crystal.UnimodularTransformation
}

// IdentifySpaceGroup identifies the space group of the primitive coset
// representatives. epsilon is the fractional tolerance for comparing
// translation parts.
func IdentifySpaceGroup(primOperations []crystal.Operation, setting data.Setting, epsilon float64) (*SpaceGroup, error) {
	pointGroup, err := IdentifyPointGroup(crystal.Rotations(primOperations))
	if err != nil {
		return nil, err
	}

	for _, hallNumber := range setting.HallNumbers() {
		entry, ok := data.HallEntryFor(hallNumber)
		if !ok || entry.ArithmeticNumber != pointGroup.ArithmeticNumber {
			continue
		}
		hs, ok := data.HallSymbolFor(hallNumber)
		if !ok {
			return nil, crystal.ErrSpaceGroupType
		}
		dbPrimGenerators := hs.PrimitiveGenerators()

		// Axis-permuting corrections keep the point group but move the
		// translation parts between equivalent settings.
		for _, correction := range correctionTransformations(entry.ArithmeticNumber) {
			transMat := pointGroup.PrimTransMat.Mul(correction)
			if shift, ok := matchOriginShift(primOperations, transMat, dbPrimGenerators, epsilon); ok {
				return &SpaceGroup{
					Number:         entry.Number,
					HallNumber:     hallNumber,
					Transformation: crystal.NewUnimodularTransformation(transMat, shift),
				}, nil
			}
		}
	}
	return nil, crystal.ErrSpaceGroupType
}

// IdentifySpaceGroupFromLattice reduces the lattice first and composes
// the reduction into the returned transformation. Consumers with
// operations in an unreduced basis use this entry.
func IdentifySpaceGroupFromLattice(lattice crystal.Lattice, primOperations []crystal.Operation, setting data.Setting, epsilon float64) (*SpaceGroup, error) {
	_, reducedTrans, err := lattice.MinkowskiReduce()
	if err != nil {
		return nil, err
	}
	toReduced := crystal.UnimodularFromLinear(reducedTrans)
	reduced, err := IdentifySpaceGroup(toReduced.TransformOperations(primOperations), setting, epsilon)
	if err != nil {
		return nil, err
	}
	return &SpaceGroup{
		Number:         reduced.Number,
		HallNumber:     reduced.HallNumber,
		Transformation: toReduced.Mul(reduced.Transformation),
	}, nil
}

// correctionTransformations enumerates the unimodular transforms that
// permute conventional axes within the lattice system while preserving
// the point-group representation: three for monoclinic, six for
// orthorhombic, two for m-3, and the identity otherwise. The returned
// matrices act in the primitive basis.
func correctionTransformations(arithmeticNumber int) []mat3.IMat {
	entry, ok := data.ArithmeticEntryFor(arithmeticNumber)
	if !ok {
		panic("identify: arithmetic number out of range")
	}

	var convs []mat3.IMat
	switch entry.Class {
	case data.ClassC2, data.ClassC1h, data.ClassC2h:
		convs = []mat3.IMat{
			mat3.IEye(),
			// b2 to b1
			{{0, 0, -1}, {0, 1, 0}, {1, 0, -1}},
			// b3 to b1
			{{-1, 0, 1}, {0, 1, 0}, {-1, 0, 0}},
		}
	case data.ClassD2, data.ClassC2v, data.ClassD2h:
		convs = []mat3.IMat{
			// abc
			mat3.IEye(),
			// ba-c
			{{0, 1, 0}, {1, 0, 0}, {0, 0, -1}},
			// cab
			{{0, 0, 1}, {1, 0, 0}, {0, 1, 0}},
			// -cba
			{{0, 0, -1}, {0, 1, 0}, {1, 0, 0}},
			// bca
			{{0, 1, 0}, {0, 0, 1}, {1, 0, 0}},
			// a-cb
			{{1, 0, 0}, {0, 0, -1}, {0, 1, 0}},
		}
	case data.ClassTh:
		convs = []mat3.IMat{
			mat3.IEye(),
			{{0, 0, 1}, {0, -1, 0}, {1, 0, 0}},
		}
	default:
		convs = []mat3.IMat{mat3.IEye()}
	}

	centering := data.RepresentativeFor(arithmeticNumber).Centering
	var corrections []mat3.IMat
	for _, conv := range convs {
		// primitive -> conventional -> corrected -> primitive
		corr := centering.Linear().Mul(conv).Float().Mul(centering.Inverse()).RoundI()
		if corr.Det() == 1 {
			corrections = append(corrections, corr)
		}
	}
	return corrections
}

// matchOriginShift solves for the origin shift making (transMat, s)
// map the primitive operations onto the reference generators:
// (R - E)·s = t_ref - t_target (mod 1) stacked over all generators.
func matchOriginShift(primOperations []crystal.Operation, transMat mat3.IMat, dbPrimGenerators []crystal.Operation, epsilon float64) (mat3.Vec, bool) {
	transformed := crystal.UnimodularFromLinear(transMat).TransformOperations(primOperations)
	translations := make(map[mat3.IMat]mat3.Vec, len(transformed))
	for _, op := range transformed {
		translations[op.Rotation] = op.Translation
	}

	a := intmat.New(3*len(dbPrimGenerators), 3, nil)
	b := make([]float64, 3*len(dbPrimGenerators))
	for k, op := range dbPrimGenerators {
		// A correction transform need not normalize the point group;
		// a missing rotation means this correction cannot match.
		target, ok := translations[op.Rotation]
		if !ok {
			return mat3.Vec{}, false
		}
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				v := op.Rotation[i][j]
				if i == j {
					v--
				}
				a.Set(3*k+i, j, v)
			}
			b[3*k+i] = op.Translation[i] - target[i]
		}
	}

	s, ok := intmat.SolveMod1(a, b, epsilon)
	if !ok {
		return mat3.Vec{}, false
	}
	shift := transMat.MulVecF(s)
	for i, e := range shift {
		shift[i] = math.Mod(e, 1)
	}
	return shift, true
}
