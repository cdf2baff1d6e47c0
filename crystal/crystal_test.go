// Copyright ©2025 The Crystalgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crystal

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/crystalgo/spacegroup/mat3"
)

func TestMetricTensor(t *testing.T) {
	lattice := NewLattice(mat3.Mat{
		{1, 1, 1},
		{1, 1, 0},
		{1, -1, 0},
	})
	got := lattice.MetricTensor()
	want := mat3.Mat{
		{3, 2, 0},
		{2, 2, 0},
		{0, 0, 2},
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if !scalar.EqualWithinAbs(got[i][j], want[i][j], 1e-12) {
				t.Fatalf("unexpected metric tensor: got %v want %v", got, want)
			}
		}
	}
}

func TestCellMismatchedLengths(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for mismatched lengths")
		}
	}()
	NewCell(NewLattice(mat3.Eye()), []mat3.Vec{{0, 0, 0}, {0.5, 0.5, 0.5}}, []int{1})
}

func TestCartesianRotations(t *testing.T) {
	lattice := NewLattice(mat3.Mat{
		{1, 0, 0},
		{-0.5, math.Sqrt(3) / 2, 0},
		{0, 0, 1},
	})
	ops := []Operation{{
		Rotation: mat3.IMat{{0, -1, 0}, {1, -1, 0}, {0, 0, 1}},
	}}
	got := CartesianRotations(ops, lattice)[0]
	want := mat3.Mat{
		{-0.5, -math.Sqrt(3) / 2, 0},
		{math.Sqrt(3) / 2, -0.5, 0},
		{0, 0, 1},
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if !scalar.EqualWithinAbs(got[i][j], want[i][j], 1e-12) {
				t.Fatalf("unexpected cartesian rotation: got %v want %v", got, want)
			}
		}
	}
}

func TestPermutation(t *testing.T) {
	p := Permutation{1, 2, 0}
	if got := p.Apply(0); got != 1 {
		t.Errorf("unexpected image: got %d want 1", got)
	}
	if diff := cmp.Diff(Permutation{2, 0, 1}, p.Inverse()); diff != "" {
		t.Errorf("unexpected inverse (-want +got):\n%s", diff)
	}
	if !p.Mul(p.Inverse()).Equal(IdentityPermutation(3)) {
		t.Errorf("p∘p⁻¹ is not the identity")
	}
}

func TestOrbits(t *testing.T) {
	cases := []struct {
		n     int
		perms []Permutation
		want  []int
	}{
		{3, []Permutation{{2, 1, 0}}, []int{0, 1, 0}},
		{3, []Permutation{{1, 0, 2}}, []int{0, 0, 2}},
	}
	for _, c := range cases {
		if diff := cmp.Diff(c.want, Orbits(c.n, c.perms)); diff != "" {
			t.Errorf("unexpected orbits (-want +got):\n%s", diff)
		}
	}
}

func TestIncompatibleTransformation(t *testing.T) {
	tr := FromLinear(mat3.IMat{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 2},
	})
	threefold := Operation{Rotation: mat3.IMat{
		{0, 0, 1},
		{1, 0, 0},
		{0, 1, 0},
	}}
	if _, ok := tr.TransformOperation(threefold); ok {
		t.Errorf("threefold axis should not survive a c-doubling sublattice")
	}
}

func TestTransformCellEnlarges(t *testing.T) {
	cell := NewCell(NewLattice(mat3.Eye()), []mat3.Vec{{0.25, 0.25, 0.25}}, []int{7})
	tr := FromLinear(mat3.IMat{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 2},
	})
	enlarged, mapping := tr.TransformCell(cell)
	if got, want := enlarged.NumAtoms(), 2; got != want {
		t.Fatalf("unexpected atom count: got %d want %d", got, want)
	}
	if diff := cmp.Diff([]int{0, 0}, mapping); diff != "" {
		t.Errorf("unexpected site mapping (-want +got):\n%s", diff)
	}
}

func TestToleranceHandler(t *testing.T) {
	h := NewToleranceHandler(1e-4, DefaultAngleTolerance)
	h.Update(ErrTooSmallTolerance)
	if !scalar.EqualWithinAbs(h.Symprec, 2e-4, 1e-12) {
		t.Errorf("unexpected widened symprec: got %v want 2e-4", h.Symprec)
	}
	h.Update(ErrTooLargeTolerance)
	// The failure kind alternated: stride is damped to sqrt(2).
	if !scalar.EqualWithinAbs(h.Symprec, 2e-4/math.Sqrt2, 1e-12) {
		t.Errorf("unexpected shrunk symprec: got %v", h.Symprec)
	}
}
