// Copyright ©2025 The Crystalgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package identify

import (
	"testing"

	"github.com/crystalgo/spacegroup/crystal"
	"github.com/crystalgo/spacegroup/data"
	"github.com/crystalgo/spacegroup/mat3"
)

func TestIdentifyPointGroupAllClasses(t *testing.T) {
	for _, entry := range data.ArithmeticEntries() {
		rep := data.RepresentativeFor(entry.Number)
		rotations := crystal.Traverse(rep.PrimitiveGenerators())

		pointGroup, err := IdentifyPointGroup(rotations)
		if err != nil {
			t.Fatalf("arithmetic class %d (%s): unexpected error: %v", entry.Number, entry.Symbol, err)
		}
		if pointGroup.ArithmeticNumber != entry.Number {
			t.Errorf("arithmetic class %d (%s): identified as %d", entry.Number, entry.Symbol, pointGroup.ArithmeticNumber)
			continue
		}
		if det := pointGroup.PrimTransMat.Det(); det != 1 {
			t.Errorf("arithmetic class %d: transform determinant %d", entry.Number, det)
		}

		// The conjugated rotations must reproduce the group.
		set := make(map[mat3.IMat]bool, len(rotations))
		for _, r := range rotations {
			set[r] = true
		}
		inv := pointGroup.PrimTransMat.Inv()
		for _, r := range rotations {
			if !set[inv.Mul(r).Mul(pointGroup.PrimTransMat)] {
				t.Errorf("arithmetic class %d: conjugation leaves the group", entry.Number)
				break
			}
		}
	}
}

func TestIdentifySpaceGroupAllHallNumbers(t *testing.T) {
	for _, setting := range []data.Setting{data.Spglib, data.Standard} {
		for hall := 1; hall <= 530; hall++ {
			hs, ok := data.HallSymbolFor(hall)
			if !ok {
				t.Fatalf("hall %d failed to parse", hall)
			}
			primOperations := hs.PrimitiveTraverse()

			spaceGroup, err := IdentifySpaceGroup(primOperations, setting, 1e-8)
			if err != nil {
				t.Errorf("hall %d: unexpected error: %v", hall, err)
				continue
			}

			entry, _ := data.HallEntryFor(hall)
			if spaceGroup.Number != entry.Number {
				t.Errorf("hall %d: identified as No. %d want No. %d", hall, spaceGroup.Number, entry.Number)
			}
			if det := spaceGroup.Transformation.Linear.Det(); det != 1 {
				t.Errorf("hall %d: transform determinant %d", hall, det)
			}

			// The transformed operations must match the identified
			// setting's reference operations modulo lattice
			// translations.
			matched, ok := data.HallSymbolFor(spaceGroup.HallNumber)
			if !ok {
				t.Fatalf("hall %d: matched hall %d failed to parse", hall, spaceGroup.HallNumber)
			}
			reference := matched.PrimitiveTraverse()
			refTranslations := make(map[mat3.IMat]mat3.Vec, len(reference))
			for _, op := range reference {
				refTranslations[op.Rotation] = op.Translation
			}
			transformed := spaceGroup.Transformation.TransformOperations(primOperations)
			if len(transformed) != len(reference) {
				t.Errorf("hall %d: operation count changed under transform", hall)
				continue
			}
			for _, op := range transformed {
				want, ok := refTranslations[op.Rotation]
				if !ok {
					t.Errorf("hall %d: rotation missing from reference", hall)
					break
				}
				if diff := want.Sub(op.Translation).Center(); diff.MaxAbs() > 1e-6 {
					t.Errorf("hall %d: translation mismatch %v", hall, diff)
					break
				}
			}
		}
	}
}

func TestIdentifySpaceGroupFromLattice(t *testing.T) {
	// A non-reduced basis of the rutile lattice: identification
	// composes the reduction into the returned transformation.
	lattice := crystal.NewLattice(mat3.Mat{
		{4.603, 0, 0},
		{4.603, 4.603, 0},
		{0, 0, 2.969},
	})
	_, reducedTrans, err := lattice.MinkowskiReduce()
	if err != nil {
		t.Fatalf("unexpected reduction error: %v", err)
	}
	hs, ok := data.HallSymbolFor(419)
	if !ok {
		t.Fatalf("hall 419 failed to parse")
	}
	// Operations in the unreduced basis.
	fromReduced := crystal.UnimodularFromLinear(reducedTrans.Inv())
	primOperations := fromReduced.TransformOperations(hs.PrimitiveTraverse())

	spaceGroup, err := IdentifySpaceGroupFromLattice(lattice, primOperations, data.Spglib, 1e-8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if spaceGroup.Number != 136 {
		t.Errorf("unexpected number: got %d want 136", spaceGroup.Number)
	}
}

func TestCorrectionTransformationsMonoclinic(t *testing.T) {
	// Hall 21 is P 1 c 1; its corrections relabel the glide as c, a
	// and n.
	hs, ok := data.HallSymbolFor(21)
	if !ok {
		t.Fatalf("hall 21 failed to parse")
	}
	primOperations := hs.PrimitiveTraverse()

	entry, _ := data.HallEntryFor(21)
	corrections := correctionTransformations(entry.ArithmeticNumber)
	if len(corrections) != 3 {
		t.Fatalf("unexpected correction count: got %d want 3", len(corrections))
	}
	mirror := mat3.IMat{{1, 0, 0}, {0, -1, 0}, {0, 0, 1}}
	wants := []mat3.Vec{
		{0, 0, 0.5},
		{0.5, 0, 0},
		{-0.5, 0, -0.5},
	}
	for i, corr := range corrections {
		transformed := crystal.UnimodularFromLinear(corr).TransformOperations(primOperations)
		found := false
		for _, op := range transformed {
			if op.Rotation != mirror {
				continue
			}
			found = true
			if diff := op.Translation.Sub(wants[i]); diff.MaxAbs() > 1e-8 {
				t.Errorf("correction %d: unexpected glide translation %v want %v", i, op.Translation, wants[i])
			}
		}
		if !found {
			t.Errorf("correction %d: mirror not present", i)
		}
	}
}
