// Copyright ©2025 The Crystalgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package standardize

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/crystalgo/spacegroup/crystal"
	"github.com/crystalgo/spacegroup/data"
	"github.com/crystalgo/spacegroup/mat3"
)

func TestSymmetrizeLatticeCubic(t *testing.T) {
	lattice := crystal.NewLattice(mat3.Mat{
		{1, 0, 0.0001},
		{0, -0.999, 0},
		{0, 0, -1.0001},
	})
	rep := data.RepresentativeFor(71) // m-3mP
	rotations := crystal.Traverse(rep.Generators)

	rotation, err := symmetrizeLattice(lattice, rotations)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rotated := rotation.Mul(lattice.Basis)

	// The rotated basis must be cubic up to the strain of the input.
	got := crystal.Lattice{Basis: rotated}.Constants()
	if !scalar.EqualWithinAbs(got[0], got[1], 1e-2) || !scalar.EqualWithinAbs(got[1], got[2], 1e-2) {
		t.Errorf("rotated basis is not cubic: constants %v", got)
	}
	for _, angle := range got[3:] {
		if !scalar.EqualWithinAbs(angle, 90, 1e-2) {
			t.Errorf("rotated basis is not orthogonal: constants %v", got)
		}
	}

	// The rotation must be orthogonal.
	qtq := rotation.T().Mul(rotation)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			if !scalar.EqualWithinAbs(qtq[i][j], want, 1e-8) {
				t.Fatalf("rotation is not orthogonal: QᵀQ = %v", qtq)
			}
		}
	}
}

func TestOrbitsInCell(t *testing.T) {
	// Two primitive sites in one orbit, duplicated over two lattice
	// points each.
	perms := []crystal.Permutation{{1, 0}}
	siteMapping := []int{0, 0, 1, 1}
	got := OrbitsInCell(2, perms, siteMapping)
	want := []int{0, 0, 0, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected orbits: got %v want %v", got, want)
		}
	}
}

func TestAssignWyckoffPositionRutile(t *testing.T) {
	lattice := crystal.NewLattice(mat3.Mat{
		{4.603, 0, 0},
		{0, 4.603, 0},
		{0, 0, 2.969},
	})
	const hall = 419 // P42/mnm

	w, ok := assignWyckoffPosition(mat3.Vec{0, 0, 0}, 2, hall, lattice, 1e-4)
	if !ok {
		t.Fatalf("titanium site not assigned")
	}
	if w.Letter != 'a' {
		t.Errorf("unexpected titanium letter: got %c want a", w.Letter)
	}

	const x = 0.3046
	w, ok = assignWyckoffPosition(mat3.Vec{x, x, 0}, 4, hall, lattice, 1e-4)
	if !ok {
		t.Fatalf("oxygen site not assigned")
	}
	if w.Letter != 'f' {
		t.Errorf("unexpected oxygen letter: got %c want f", w.Letter)
	}
}

func TestUnimodularRange1(t *testing.T) {
	for _, m := range unimodularRange1 {
		if m.Det() != 1 {
			t.Fatalf("non-unimodular candidate %v", m)
		}
	}
	if len(unimodularRange1) == 0 {
		t.Fatalf("empty candidate set")
	}
}
