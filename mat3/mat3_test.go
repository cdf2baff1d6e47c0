// Copyright ©2025 The Crystalgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat3

import (
	"testing"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestInv(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for k := 0; k < 100; k++ {
		var m Mat
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				m[i][j] = rnd.Float64()*2 - 1
			}
		}
		if d := m.Det(); d > -1e-3 && d < 1e-3 {
			continue
		}
		got := m.Mul(m.Inv())
		want := Eye()
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				if !scalar.EqualWithinAbs(got[i][j], want[i][j], 1e-10) {
					t.Errorf("unexpected product for m·m⁻¹ at (%d,%d): got %v want %v", i, j, got[i][j], want[i][j])
				}
			}
		}
	}
}

func TestIMatInv(t *testing.T) {
	cases := []IMat{
		IEye(),
		{{0, -1, 0}, {1, -1, 0}, {0, 0, 1}},
		{{0, 1, 0}, {1, 0, 0}, {0, 0, -1}},
		{{1, 0, -1}, {0, 1, 0}, {1, 0, 0}},
	}
	for _, m := range cases {
		if got := m.Mul(m.Inv()); got != IEye() {
			t.Errorf("unexpected product for m·m⁻¹: got %v", got)
		}
		if got := m.Inv().Mul(m); got != IEye() {
			t.Errorf("unexpected product for m⁻¹·m: got %v", got)
		}
	}
}

func TestWrapCenter(t *testing.T) {
	v := Vec{1.25, -0.25, 2}
	if got, want := v.Wrap(), (Vec{0.25, 0.75, 0}); got != want {
		t.Errorf("unexpected wrap: got %v want %v", got, want)
	}
	if got, want := v.Center(), (Vec{0.25, -0.25, 0}); got != want {
		t.Errorf("unexpected center: got %v want %v", got, want)
	}
}

func TestDet(t *testing.T) {
	m := IMat{{2, 0, 0}, {0, 3, 0}, {0, 0, 4}}
	if got := m.Det(); got != 24 {
		t.Errorf("unexpected determinant: got %d want 24", got)
	}
	if got := m.Float().Det(); !scalar.EqualWithinAbs(got, 24, 1e-12) {
		t.Errorf("unexpected float determinant: got %v want 24", got)
	}
}
