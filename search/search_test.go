// Copyright ©2025 The Crystalgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package search

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/crystalgo/spacegroup/crystal"
	"github.com/crystalgo/spacegroup/mat3"
)

func fccConventional() crystal.Cell {
	return crystal.NewCell(
		crystal.NewLattice(mat3.Eye()),
		[]mat3.Vec{
			{0, 0, 0},
			{0, 0.5, 0.5},
			{0.5, 0, 0.5},
			{0.5, 0.5, 0},
		},
		[]int{0, 0, 0, 0},
	)
}

func TestPeriodicTreeNearest(t *testing.T) {
	tree := NewPeriodicTree(fccConventional(), 1e-4)
	cases := []struct {
		query mat3.Vec
		want  int
	}{
		{mat3.Vec{0, 0, 0}, 0},
		{mat3.Vec{1, 0.5, 0.5}, 1},
		{mat3.Vec{1.5, -0, -0.5}, 2},
	}
	for _, c := range cases {
		got, _, ok := tree.Nearest(c.query)
		if !ok {
			t.Fatalf("no neighbor for %v", c.query)
		}
		if got != c.want {
			t.Errorf("unexpected neighbor for %v: got %d want %d", c.query, got, c.want)
		}
	}
}

func TestPivotSiteIndices(t *testing.T) {
	got := pivotSiteIndices([]int{0, 1, 1, 1, 2, 0, 2, 2})
	if diff := cmp.Diff([]int{0, 5}, got); diff != "" {
		t.Errorf("unexpected pivots (-want +got):\n%s", diff)
	}
}

func TestSolveCorrespondence(t *testing.T) {
	cell := fccConventional()
	const symprec = 1e-4
	tree := NewPeriodicTree(cell, symprec)

	shifted := []mat3.Vec{
		{0, 0.5, 0.5},
		{0, 1, 1},
		{0.5, 0.5, 1},
		{0.5, 1, 0.5},
	}
	want := crystal.Permutation{1, 0, 3, 2}

	if got, ok := solveCorrespondenceNaive(cell, shifted, symprec); !ok || !got.Equal(want) {
		t.Errorf("unexpected naive correspondence: got %v want %v", got, want)
	}
	if got, ok := solveCorrespondence(tree, cell, shifted); !ok || !got.Equal(want) {
		t.Errorf("unexpected tree correspondence: got %v want %v", got, want)
	}

	// A position off by twice the tolerance must not match.
	broken := []mat3.Vec{
		{0, 0.5, 0.5},
		{0, 1, 1 - 2*symprec},
		{0.5, 0.5, 1},
		{0.5, 1, 0.5},
	}
	if _, ok := solveCorrespondenceNaive(cell, broken, symprec); ok {
		t.Errorf("naive correspondence matched a broken motif")
	}
	if _, ok := solveCorrespondence(tree, cell, broken); ok {
		t.Errorf("tree correspondence matched a broken motif")
	}
}

func TestSymmetrizeTranslation(t *testing.T) {
	const symprec = 1e-2
	distorted := crystal.NewCell(
		crystal.NewLattice(mat3.Eye()),
		[]mat3.Vec{
			{0, 0, 0},
			{0, 0.5, 0.5 + 0.5*symprec},
			{0.5, 0, 0.5},
			{0.5, 0.5, 0},
		},
		[]int{0, 0, 0, 0},
	)
	perm := crystal.Permutation{1, 0, 3, 2}
	rough := mat3.Vec{0, 0.5, 0.5 + 0.5*symprec}
	translation, distance := symmetrizeTranslation(distorted, perm, mat3.IEye(), rough)
	want := mat3.Vec{0, 0.5, 0.5}
	for i := range want {
		if !scalar.EqualWithinAbs(translation[i], want[i], 1e-12) {
			t.Fatalf("unexpected translation: got %v want %v", translation, want)
		}
	}
	if !scalar.EqualWithinAbs(distance, 0.5*symprec, 1e-12) {
		t.Errorf("unexpected residual: got %v want %v", distance, 0.5*symprec)
	}
}

func TestFindPrimitiveCellFcc(t *testing.T) {
	const symprec = 1e-4
	cell := crystal.NewCell(
		crystal.NewLattice(mat3.Eye()),
		[]mat3.Vec{
			{0.5 * symprec, 0, 0},
			{0, 0.5, 0.5 + 0.5*symprec},
			{0.5, 0, 0.5},
			{0.5, 0.5, 0},
		},
		[]int{0, 0, 0, 0},
	)
	result, err := FindPrimitiveCell(cell, symprec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]int{0, 0, 0, 0}, result.SiteMapping); diff != "" {
		t.Errorf("unexpected site mapping (-want +got):\n%s", diff)
	}
	if result.Cell.NumAtoms() != 1 {
		t.Fatalf("unexpected primitive atom count: got %d want 1", result.Cell.NumAtoms())
	}
	if result.Cell.Species[0] != 0 {
		t.Errorf("unexpected primitive species: got %d", result.Cell.Species[0])
	}
}

func TestFindPrimitiveCellBccNonReduced(t *testing.T) {
	const symprec = 1e-4
	cell := crystal.NewCell(
		crystal.NewLattice(mat3.Mat{
			{1, 1, 0},
			{0, 1, 0},
			{0, 0, 1},
		}),
		[]mat3.Vec{{0, 0, 0}, {0.5, 0, 0.5}},
		[]int{0, 0},
	)
	result, err := FindPrimitiveCell(cell, symprec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]int{0, 0}, result.SiteMapping); diff != "" {
		t.Errorf("unexpected site mapping (-want +got):\n%s", diff)
	}
	wantTranslations := []mat3.Vec{{0, 0, 0}, {0.5, 0, 0.5}}
	if len(result.Translations) != 2 {
		t.Fatalf("unexpected translation count: got %d want 2", len(result.Translations))
	}
	for i, want := range wantTranslations {
		got := result.Translations[i]
		for k := range want {
			if !scalar.EqualWithinAbs(got[k], want[k], 1e-8) {
				t.Errorf("unexpected translation %d: got %v want %v", i, got, want)
			}
		}
	}
}

func TestFindPrimitiveCellRhombohedral(t *testing.T) {
	const a, b = 4.0, 7.0
	rhombohedral := crystal.NewLattice(mat3.Mat{
		{math.Sqrt(3) / 2 * a, 0.5 * a, b},
		{-math.Sqrt(3) / 2 * a, 0.5 * a, b},
		{0, -a, b},
	})
	trans := mat3.IMat{
		{1, 0, 1},
		{-1, 1, 1},
		{0, -1, 1},
	}
	lattice := crystal.Lattice{Basis: rhombohedral.Basis.Mul(trans.Float())}
	cell := crystal.NewCell(
		lattice,
		[]mat3.Vec{
			{0, 0, 0},
			{2. / 3, 1. / 3, 1. / 3},
			{1. / 3, 2. / 3, 2. / 3},
			{0, 0, 0.1},
			{2. / 3, 1. / 3, 1./3 + 0.1},
			{1. / 3, 2. / 3, 2./3 + 0.1},
		},
		[]int{0, 0, 0, 0, 0, 0},
	)
	result, err := FindPrimitiveCell(cell, 1e-4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	recovered := result.Cell.Lattice.Basis.Mul(result.Linear.Float())
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if !scalar.EqualWithinAbs(recovered[i][j], cell.Lattice.Basis[i][j], 1e-8) {
				t.Fatalf("linear does not recover the input basis:\ngot %v\nwant %v", recovered, cell.Lattice.Basis)
			}
		}
	}
}

func TestSearchBravaisGroup(t *testing.T) {
	const symprec = 1e-4
	cases := []struct {
		rows  mat3.Mat
		angle crystal.AngleTolerance
		want  int
	}{
		// Primitive fcc, m-3m.
		{mat3.Mat{{0, 0.5, 0.5}, {0.5, 0, 0.5}, {0.5, 0.5, 0}}, crystal.AngleTolerance(1e-2), 48},
		// Hexagonal, 6/mmm.
		{mat3.Mat{{1, 0, 0}, {-0.5, math.Sqrt(3) / 2, 0}, {0, 0, 1}}, crystal.DefaultAngleTolerance, 24},
		{mat3.Mat{{0.5, 0, 0.5}, {0.5, 0.5, 0}, {0, 0.5, 0.5}}, crystal.DefaultAngleTolerance, 48},
	}
	for _, c := range cases {
		rotations, err := searchBravaisGroup(crystal.NewLattice(c.rows), symprec, c.angle)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rotations) != c.want {
			t.Errorf("unexpected group order for %v: got %d want %d", c.rows, len(rotations), c.want)
		}
	}
}

func TestFindSymmetriesFccPrimitive(t *testing.T) {
	primitive := crystal.NewCell(
		crystal.NewLattice(mat3.Mat{
			{0, 0.5, 0.5},
			{0.5, 0, 0.5},
			{0.5, 0.5, 0},
		}),
		[]mat3.Vec{{0, 0, 0}},
		[]int{0},
	)
	_, transI, err := primitive.Lattice.MinkowskiReduce()
	if err != nil {
		t.Fatalf("unexpected reduction error: %v", err)
	}
	cell := crystal.UnimodularFromLinear(transI).TransformCell(primitive)
	symmetries, err := FindSymmetries(cell, 1e-4, crystal.DefaultAngleTolerance)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len(symmetries.Operations); got != 48 {
		t.Errorf("unexpected operation count: got %d want 48", got)
	}
}
