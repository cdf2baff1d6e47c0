// Copyright ©2025 The Crystalgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spacegroup

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/crystalgo/spacegroup/crystal"
	"github.com/crystalgo/spacegroup/data"
	"github.com/crystalgo/spacegroup/mat3"
)

// checkOperations verifies that every returned operation maps the
// motif onto itself within the used tolerance, preserving species.
func checkOperations(t *testing.T, cell crystal.Cell, ds *Dataset) {
	t.Helper()
	for _, op := range ds.Operations {
		used := make([]bool, cell.NumAtoms())
		for i, p := range cell.Positions {
			image := op.Rotation.MulVecF(p).Add(op.Translation)
			found := false
			for j, q := range cell.Positions {
				if used[j] || cell.Species[i] != cell.Species[j] {
					continue
				}
				diff := image.Sub(q).Center()
				if cell.Lattice.Cartesian(diff).Norm() < ds.Symprec {
					used[j] = true
					found = true
					break
				}
			}
			if !found {
				t.Fatalf("operation %v does not map site %d onto the motif", op, i)
			}
		}
	}
}

// checkTransformations verifies the standardization bookkeeping:
// rotation · input basis · linear reproduces the standardized bases.
func checkTransformations(t *testing.T, cell crystal.Cell, ds *Dataset) {
	t.Helper()
	std := ds.StdRotationMatrix.Mul(cell.Lattice.Basis).Mul(ds.StdLinear)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if !scalar.EqualWithinAbs(std[i][j], ds.StdCell.Lattice.Basis[i][j], 1e-8) {
				t.Fatalf("standard basis mismatch:\ngot %v\nwant %v", std, ds.StdCell.Lattice.Basis)
			}
		}
	}
	prim := ds.StdRotationMatrix.Mul(cell.Lattice.Basis).Mul(ds.PrimStdLinear)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if !scalar.EqualWithinAbs(prim[i][j], ds.PrimStdCell.Lattice.Basis[i][j], 1e-8) {
				t.Fatalf("primitive standard basis mismatch:\ngot %v\nwant %v", prim, ds.PrimStdCell.Lattice.Basis)
			}
		}
	}
}

func TestDatasetFcc(t *testing.T) {
	cell := crystal.NewCell(
		crystal.NewLattice(mat3.Eye()),
		[]mat3.Vec{
			{0, 0, 0},
			{0, 0.5, 0.5},
			{0.5, 0, 0.5},
			{0.5, 0.5, 0},
		},
		[]int{0, 0, 0, 0},
	)
	ds, err := New(cell, 1e-4, crystal.DefaultAngleTolerance, data.Spglib)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ds.Number != 225 || ds.HallNumber != 523 {
		t.Fatalf("unexpected identification: got (%d, %d) want (225, 523)", ds.Number, ds.HallNumber)
	}
	if got := ds.NumOperations(); got != 192 {
		t.Errorf("unexpected operation count: got %d want 192", got)
	}
	if diff := cmp.Diff([]int{0, 0, 0, 0}, ds.Orbits); diff != "" {
		t.Errorf("unexpected orbits (-want +got):\n%s", diff)
	}
	for _, w := range ds.Wyckoffs {
		if w != 'a' {
			t.Errorf("unexpected wyckoff letters: %c", w)
		}
	}
	checkOperations(t, cell, ds)
	checkTransformations(t, cell, ds)
}

func TestDatasetRutile(t *testing.T) {
	const x = 0.3046
	cell := crystal.NewCell(
		crystal.NewLattice(mat3.Mat{
			{4.603, 0, 0},
			{0, 4.603, 0},
			{0, 0, 2.969},
		}),
		[]mat3.Vec{
			{0, 0, 0},
			{0.5, 0.5, 0.5},
			{x, x, 0},
			{-x, -x, 0},
			{-x + 0.5, x + 0.5, 0.5},
			{x + 0.5, -x + 0.5, 0.5},
		},
		[]int{0, 0, 1, 1, 1, 1},
	)
	ds, err := New(cell, 1e-4, crystal.DefaultAngleTolerance, data.Spglib)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ds.Number != 136 || ds.HallNumber != 419 {
		t.Fatalf("unexpected identification: got (%d, %d) want (136, 419)", ds.Number, ds.HallNumber)
	}
	if got := ds.NumOperations(); got != 16 {
		t.Errorf("unexpected operation count: got %d want 16", got)
	}
	if diff := cmp.Diff([]int{0, 0, 2, 2, 2, 2}, ds.Orbits); diff != "" {
		t.Errorf("unexpected orbits (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]byte("aaffff"), ds.Wyckoffs); diff != "" {
		t.Errorf("unexpected wyckoff letters (-want +got):\n%s", diff)
	}
	checkOperations(t, cell, ds)
	checkTransformations(t, cell, ds)
}

func hexagonalCell(a, c float64, positions []mat3.Vec, species []int) crystal.Cell {
	return crystal.NewCell(
		crystal.NewLattice(mat3.Mat{
			{a, 0, 0},
			{-a / 2, a * math.Sqrt(3) / 2, 0},
			{0, 0, c},
		}),
		positions,
		species,
	)
}

func TestDatasetHcp(t *testing.T) {
	cell := hexagonalCell(3.17, 5.14,
		[]mat3.Vec{
			{1. / 3, 2. / 3, 0.25},
			{2. / 3, 1. / 3, 0.75},
		},
		[]int{0, 0},
	)
	ds, err := New(cell, 1e-4, crystal.DefaultAngleTolerance, data.Standard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ds.Number != 194 || ds.HallNumber != 488 {
		t.Fatalf("unexpected identification: got (%d, %d) want (194, 488)", ds.Number, ds.HallNumber)
	}
	if got := ds.NumOperations(); got != 24 {
		t.Errorf("unexpected operation count: got %d want 24", got)
	}
	if diff := cmp.Diff([]int{0, 0}, ds.Orbits); diff != "" {
		t.Errorf("unexpected orbits (-want +got):\n%s", diff)
	}
	if ds.Wyckoffs[0] != ds.Wyckoffs[1] || (ds.Wyckoffs[0] != 'c' && ds.Wyckoffs[0] != 'd') {
		t.Errorf("unexpected wyckoff letters: %s", ds.Wyckoffs)
	}
	checkOperations(t, cell, ds)
	checkTransformations(t, cell, ds)
}

func TestDatasetWurtzite(t *testing.T) {
	const z1, z2 = 0.00014, 0.37486
	cell := hexagonalCell(3.81, 6.24,
		[]mat3.Vec{
			{1. / 3, 2. / 3, z1},
			{2. / 3, 1. / 3, z1 + 0.5},
			{1. / 3, 2. / 3, z2},
			{2. / 3, 1. / 3, z2 + 0.5},
		},
		[]int{0, 0, 1, 1},
	)
	ds, err := New(cell, 1e-4, crystal.DefaultAngleTolerance, data.Spglib)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ds.Number != 186 || ds.HallNumber != 480 {
		t.Fatalf("unexpected identification: got (%d, %d) want (186, 480)", ds.Number, ds.HallNumber)
	}
	if got := ds.NumOperations(); got != 12 {
		t.Errorf("unexpected operation count: got %d want 12", got)
	}
	if diff := cmp.Diff([]int{0, 0, 2, 2}, ds.Orbits); diff != "" {
		t.Errorf("unexpected orbits (-want +got):\n%s", diff)
	}
	checkOperations(t, cell, ds)
	checkTransformations(t, cell, ds)
}

func TestDatasetTriclinic(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	var rows mat3.Mat
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			rows[i][j] = rnd.Float64()*2 - 1
		}
		rows[i][i] += 3
	}
	cell := crystal.NewCell(crystal.NewLattice(rows), []mat3.Vec{{0, 0, 0}}, []int{0})
	ds, err := New(cell, 1e-4, crystal.DefaultAngleTolerance, data.Spglib)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ds.Number != 1 || ds.HallNumber != 1 {
		t.Fatalf("unexpected identification: got (%d, %d) want (1, 1)", ds.Number, ds.HallNumber)
	}
	if got := ds.NumOperations(); got != 1 {
		t.Errorf("unexpected operation count: got %d want 1", got)
	}
	checkOperations(t, cell, ds)
	checkTransformations(t, cell, ds)
}

func TestDatasetBccNonReduced(t *testing.T) {
	cell := crystal.NewCell(
		crystal.NewLattice(mat3.Mat{
			{1, 1, 0},
			{0, 1, 0},
			{0, 0, 1},
		}),
		[]mat3.Vec{{0, 0, 0}, {0.5, 0, 0.5}},
		[]int{0, 0},
	)
	ds, err := New(cell, 1e-4, crystal.DefaultAngleTolerance, data.Spglib)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ds.Number != 229 {
		t.Fatalf("unexpected identification: got %d want 229", ds.Number)
	}
	if got := ds.NumOperations(); got != 96 {
		t.Errorf("unexpected operation count: got %d want 96", got)
	}

	// The pure translations in the input basis include the identity
	// and the body-centering translation.
	var haveZero, haveCenter bool
	for _, op := range ds.Operations {
		if op.Rotation != mat3.IEye() {
			continue
		}
		switch {
		case op.Translation.Center().MaxAbs() < 1e-8:
			haveZero = true
		case op.Translation.Sub(mat3.Vec{0.5, 0, 0.5}).Center().MaxAbs() < 1e-8:
			haveCenter = true
		}
	}
	if !haveZero || !haveCenter {
		t.Errorf("pure translations missing: zero=%v center=%v", haveZero, haveCenter)
	}
	checkOperations(t, cell, ds)
	checkTransformations(t, cell, ds)
}

func TestDatasetRoundTrip(t *testing.T) {
	const x = 0.3046
	cell := crystal.NewCell(
		crystal.NewLattice(mat3.Mat{
			{4.603, 0, 0},
			{0, 4.603, 0},
			{0, 0, 2.969},
		}),
		[]mat3.Vec{
			{0, 0, 0},
			{0.5, 0.5, 0.5},
			{x, x, 0},
			{-x, -x, 0},
			{-x + 0.5, x + 0.5, 0.5},
			{x + 0.5, -x + 0.5, 0.5},
		},
		[]int{0, 0, 1, 1, 1, 1},
	)
	first, err := New(cell, 1e-4, crystal.DefaultAngleTolerance, data.Spglib)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := New(first.StdCell, 1e-4, crystal.DefaultAngleTolerance, data.Spglib)
	if err != nil {
		t.Fatalf("unexpected error on round trip: %v", err)
	}
	if first.Number != second.Number || first.HallNumber != second.HallNumber {
		t.Errorf("round trip changed identification: (%d, %d) -> (%d, %d)",
			first.Number, first.HallNumber, second.Number, second.HallNumber)
	}
}
