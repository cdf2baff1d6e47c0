// Copyright ©2025 The Crystalgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package data

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/crystalgo/spacegroup/crystal"
	"github.com/crystalgo/spacegroup/mat3"
)

func TestParseHallSymbolSmall(t *testing.T) {
	cases := []struct {
		symbol        string
		centering     Centering
		numCentering  int
		numGenerators int
		numOperations int // coset representatives, without centerings
	}{
		{"P 2 2ab -1ab", CenteringP, 0, 3, 8},    // No. 59
		{"P 31 2 (0 0 4)", CenteringP, 0, 2, 6},  // No. 151
		{"P 65", CenteringP, 0, 1, 6},            // No. 170
		{"P 61 2 (0 0 5)", CenteringP, 0, 2, 12}, // No. 178
		{"-P 6c 2c", CenteringP, 0, 3, 24},       // No. 194
		{"F 4d 2 3", CenteringF, 3, 3, 24},       // No. 210
	}
	for _, c := range cases {
		hs, err := ParseHallSymbol(c.symbol)
		if err != nil {
			t.Fatalf("unexpected error parsing %q: %v", c.symbol, err)
		}
		if hs.Centering != c.centering {
			t.Errorf("%q: unexpected centering: got %v want %v", c.symbol, hs.Centering, c.centering)
		}
		if got := len(hs.CenteringTranslations); got != c.numCentering {
			t.Errorf("%q: unexpected centering translation count: got %d want %d", c.symbol, got, c.numCentering)
		}
		if got := len(hs.Generators); got != c.numGenerators {
			t.Errorf("%q: unexpected generator count: got %d want %d", c.symbol, got, c.numGenerators)
		}
		if got := len(hs.Traverse()); got != c.numOperations {
			t.Errorf("%q: unexpected operation count: got %d want %d", c.symbol, got, c.numOperations)
		}
	}
}

func TestHallSymbolGenerators(t *testing.T) {
	// No. 178
	hs, err := ParseHallSymbol("P 61 2 (0 0 5)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(hs.Generators) != 2 {
		t.Fatalf("unexpected generator count: got %d want 2", len(hs.Generators))
	}
	want0 := mat3.IMat{{1, -1, 0}, {1, 0, 0}, {0, 0, 1}}
	if hs.Generators[0].Rotation != want0 {
		t.Errorf("unexpected first rotation: got %v want %v", hs.Generators[0].Rotation, want0)
	}
	if tr := hs.Generators[0].Translation; !vecEqualWithin(tr, mat3.Vec{0, 0, 1. / 6}, 1e-12) {
		t.Errorf("unexpected first translation: got %v", tr)
	}
	want1 := mat3.IMat{{0, -1, 0}, {-1, 0, 0}, {0, 0, -1}}
	if hs.Generators[1].Rotation != want1 {
		t.Errorf("unexpected second rotation: got %v want %v", hs.Generators[1].Rotation, want1)
	}
	if tr := hs.Generators[1].Translation; !vecEqualWithin(tr, mat3.Vec{0, 0, 5. / 6}, 1e-12) {
		t.Errorf("unexpected second translation: got %v", tr)
	}
}

func vecEqualWithin(a, b mat3.Vec, tol float64) bool {
	for i := range a {
		if !scalar.EqualWithinAbs(a[i], b[i], tol) {
			return false
		}
	}
	return true
}

func TestAllHallExpansionsCloseAndDivide48(t *testing.T) {
	for hall := 1; hall <= 530; hall++ {
		hs, ok := HallSymbolFor(hall)
		if !ok {
			t.Fatalf("hall number %d failed to parse", hall)
		}
		prim := hs.PrimitiveTraverse()
		if len(prim) == 0 || 48%len(prim) != 0 {
			t.Errorf("hall %d: primitive operation count %d does not divide 48", hall, len(prim))
			continue
		}
		// Closure up to primitive lattice translations.
		translations := make(map[mat3.IMat]mat3.Vec, len(prim))
		for _, op := range prim {
			translations[op.Rotation] = op.Translation
		}
		for _, g1 := range prim {
			for _, g2 := range prim {
				prod := g1.Mul(g2)
				want, ok := translations[prod.Rotation]
				if !ok {
					t.Errorf("hall %d: rotations do not close", hall)
					continue
				}
				diff := prod.Translation.Sub(want).Center()
				if diff.MaxAbs() > 1e-6 {
					t.Errorf("hall %d: translations do not close: residual %v", hall, diff)
				}
			}
		}
	}
}

var classOrders = map[GeometricCrystalClass]int{
	ClassC1: 1, ClassCi: 2,
	ClassC2: 2, ClassC1h: 2, ClassC2h: 4,
	ClassD2: 4, ClassC2v: 4, ClassD2h: 8,
	ClassC4: 4, ClassS4: 4, ClassC4h: 8, ClassD4: 8, ClassC4v: 8, ClassD2d: 8, ClassD4h: 16,
	ClassC3: 3, ClassC3i: 6, ClassD3: 6, ClassC3v: 6, ClassD3d: 12,
	ClassC6: 6, ClassC3h: 6, ClassC6h: 12, ClassD6: 12, ClassC6v: 12, ClassD3h: 12, ClassD6h: 24,
	ClassT: 12, ClassTh: 24, ClassO: 24, ClassTd: 24, ClassOh: 48,
}

func TestRepresentativeOrders(t *testing.T) {
	for _, e := range ArithmeticEntries() {
		rep := RepresentativeFor(e.Number)
		rotations := crystal.Traverse(rep.PrimitiveGenerators())
		if got, want := len(rotations), classOrders[e.Class]; got != want {
			t.Errorf("arithmetic class %d (%s): unexpected order: got %d want %d", e.Number, e.Symbol, got, want)
		}
	}
}

func TestCenteringOrders(t *testing.T) {
	for _, c := range Centerings {
		if got, want := c.Linear().Det(), c.Order(); got != want {
			t.Errorf("centering %v: linear determinant %d does not match order %d", c, got, want)
		}
		if got, want := len(c.LatticePoints()), c.Order(); got != want {
			t.Errorf("centering %v: %d lattice points for order %d", c, got, want)
		}
	}
}

func TestParseWyckoffSpace(t *testing.T) {
	cases := []struct {
		coordinates string
		linear      mat3.IMat
		origin      mat3.Vec
	}{
		{"-y, x, z+1/2", mat3.IMat{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}}, mat3.Vec{0, 0, 0.5}},
		{"x,x-y+1/4,z+1/4", mat3.IMat{{1, 0, 0}, {1, -1, 0}, {0, 0, 1}}, mat3.Vec{0, 0.25, 0.25}},
		{"-x+2z,y,z", mat3.IMat{{-1, 0, 2}, {0, 1, 0}, {0, 0, 1}}, mat3.Vec{}},
		{"1/4,1/4,1/4", mat3.IMat{}, mat3.Vec{0.25, 0.25, 0.25}},
	}
	for _, c := range cases {
		space := ParseWyckoffSpace(c.coordinates)
		if space.Linear != c.linear {
			t.Errorf("%q: unexpected linear part: got %v want %v", c.coordinates, space.Linear, c.linear)
		}
		if !vecEqualWithin(space.Origin, c.origin, 1e-12) {
			t.Errorf("%q: unexpected origin: got %v want %v", c.coordinates, space.Origin, c.origin)
		}
	}
}

func TestSettingHallNumbers(t *testing.T) {
	if got := len(Spglib.HallNumbers()); got != 530 {
		t.Errorf("unexpected spglib order length: got %d want 530", got)
	}
	std := Standard.HallNumbers()
	if got := len(std); got != 230 {
		t.Fatalf("unexpected standard order length: got %d want 230", got)
	}
	seen := make(map[int]bool)
	for _, hall := range std {
		e, ok := HallEntryFor(hall)
		if !ok || seen[e.Number] {
			t.Fatalf("standard order is not one setting per ITA number")
		}
		seen[e.Number] = true
	}
	// Origin choice 2 is preferred where two origins exist.
	for _, hall := range std {
		e, _ := HallEntryFor(hall)
		if e.Number == 227 && e.Setting != "2" {
			t.Errorf("Fd-3m standard setting is %q, want origin choice 2", e.Setting)
		}
	}
	if got := HallNumberSetting(419).HallNumbers(); len(got) != 1 || got[0] != 419 {
		t.Errorf("unexpected explicit hall order: got %v", got)
	}
}

func TestWyckoffCatalogComplete(t *testing.T) {
	for hall := 1; hall <= 530; hall++ {
		all, ok := wyckoffTable[hall]
		if !ok || len(all) == 0 {
			t.Fatalf("hall %d has no wyckoff positions", hall)
		}
		hs, ok := HallSymbolFor(hall)
		if !ok {
			t.Fatalf("hall %d failed to parse", hall)
		}
		order := len(hs.Traverse()) * hs.Centering.Order()

		// The general position comes last with the full group order.
		general := all[len(all)-1]
		if general.Coordinates != "x,y,z" || general.Multiplicity != order {
			t.Errorf("hall %d: unexpected general position %+v want multiplicity %d", hall, general, order)
		}
		for i, w := range all {
			// Letters ascend, rolling over to upper case past 'z'.
			want := byte('a' + i)
			if i >= 26 {
				want = byte('A' + i - 26)
			}
			if w.Letter != want {
				t.Errorf("hall %d: position %d has letter %c want %c", hall, i, w.Letter, want)
			}
			if order%w.Multiplicity != 0 {
				t.Errorf("hall %d%c: multiplicity %d does not divide the group order %d", hall, w.Letter, w.Multiplicity, order)
			}
			if i > 0 && w.Multiplicity < all[i-1].Multiplicity {
				t.Errorf("hall %d: multiplicities are not non-decreasing at %c", hall, w.Letter)
			}
		}
	}
}

func TestHallTableShape(t *testing.T) {
	if len(hallTable) != 530 {
		t.Fatalf("unexpected table length: %d", len(hallTable))
	}
	for i, e := range hallTable {
		if e.HallNumber != i+1 {
			t.Fatalf("entry %d has hall number %d", i, e.HallNumber)
		}
		if e.Number < 1 || e.Number > 230 || e.ArithmeticNumber < 1 || e.ArithmeticNumber > 73 {
			t.Errorf("entry %d has out-of-range numbers: %+v", i, e)
		}
	}
	// Numbers are non-decreasing across the table.
	for i := 1; i < len(hallTable); i++ {
		if hallTable[i].Number < hallTable[i-1].Number {
			t.Errorf("table is not ordered by ITA number at hall %d", i+1)
		}
	}
}
