// Copyright ©2025 The Crystalgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package intmat

import (
	"testing"

	"golang.org/x/exp/rand"

	"github.com/crystalgo/spacegroup/mat3"
)

func TestHNFSmall(t *testing.T) {
	cases := []struct {
		rows, cols int
		basis      []int
		want       []int
	}{
		{
			rows: 3, cols: 3,
			basis: []int{
				-1, 0, 0,
				1, 2, 2,
				0, -1, -2,
			},
			want: []int{
				1, 0, 0,
				1, 2, 0,
				0, 0, 1,
			},
		},
		{
			rows: 2, cols: 2,
			basis: []int{
				20, -6,
				-2, 1,
			},
			want: []int{
				2, 0,
				1, 4,
			},
		},
		{
			rows: 3, cols: 4,
			basis: []int{
				2, 3, 6, 2,
				5, 6, 1, 6,
				8, 3, 1, 1,
			},
			want: []int{
				1, 0, 0, 0,
				0, 1, 0, 0,
				0, 0, 1, 0,
			},
		},
	}
	for _, c := range cases {
		h, r := HNF(New(c.rows, c.cols, c.basis))
		if !Equal(h, New(c.rows, c.cols, c.want)) {
			t.Errorf("unexpected HNF for %v: got %v want %v", c.basis, h.data, c.want)
		}
		if !Equal(h, Mul(New(c.rows, c.cols, c.basis), r)) {
			t.Errorf("transform does not reproduce HNF for %v", c.basis)
		}
	}
}

func TestHNFRandom(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	shapes := [][2]int{{3, 3}, {5, 7}, {7, 5}}
	for k := 0; k < 256; k++ {
		for _, s := range shapes {
			basis := New(s[0], s[1], nil)
			for i := 0; i < s[0]; i++ {
				for j := 0; j < s[1]; j++ {
					basis.Set(i, j, rnd.Intn(8)-4)
				}
			}
			h, r := HNF(basis)
			if !Equal(h, Mul(basis, r)) {
				t.Fatalf("transform does not reproduce HNF for shape %v", s)
			}
		}
	}
}

func TestSNFSmall(t *testing.T) {
	basis := New(3, 3, []int{
		2, 4, 4,
		-6, 6, 12,
		10, -4, -16,
	})
	d, l, r := SNF(basis)
	want := New(3, 3, []int{
		2, 0, 0,
		0, 6, 0,
		0, 0, 12,
	})
	if !Equal(d, want) {
		t.Errorf("unexpected SNF: got %v want %v", d.data, want.data)
	}
	if !Equal(d, Mul(Mul(l, basis), r)) {
		t.Errorf("transforms do not reproduce SNF")
	}
}

func TestSNFRandom(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	shapes := [][2]int{{3, 3}, {5, 7}, {7, 5}}
	for k := 0; k < 256; k++ {
		for _, s := range shapes {
			basis := New(s[0], s[1], nil)
			for i := 0; i < s[0]; i++ {
				for j := 0; j < s[1]; j++ {
					basis.Set(i, j, rnd.Intn(8)-4)
				}
			}
			d, l, r := SNF(basis)
			if !Equal(d, Mul(Mul(l, basis), r)) {
				t.Fatalf("transforms do not reproduce SNF for shape %v", s)
			}
			for i := 0; i < s[0]; i++ {
				for j := 0; j < s[1]; j++ {
					if i != j && d.At(i, j) != 0 {
						t.Fatalf("SNF is not diagonal for shape %v", s)
					}
				}
			}
		}
	}
}

func TestSolve(t *testing.T) {
	{
		a := New(2, 3, []int{
			6, 4, 10,
			-1, 1, -5,
		})
		b := []int{4, 11}
		x, _, ok := Solve(a, b)
		if !ok {
			t.Fatalf("expected solvable system")
		}
		for i, v := range MulVec(a, x) {
			if v != b[i] {
				t.Errorf("unexpected solution: a·x = %v want %v", MulVec(a, x), b)
				break
			}
		}
	}
	{
		a := New(1, 3, []int{1, 1, 0})
		x, nullspace, ok := Solve(a, []int{2})
		if !ok {
			t.Fatalf("expected solvable system")
		}
		if got := MulVec(a, x)[0]; got != 2 {
			t.Errorf("unexpected solution: a·x = %d want 2", got)
		}
		if len(nullspace) != 2 {
			t.Errorf("unexpected nullspace dimension: got %d want 2", len(nullspace))
		}
	}
	{
		a := New(1, 3, []int{2, 4, 0})
		if _, _, ok := Solve(a, []int{1}); ok {
			t.Errorf("expected unsolvable system")
		}
	}
}

func TestSolveMod1NoSolution(t *testing.T) {
	a := New(6, 3, []int{
		-2, 0, 0,
		0, -2, 0,
		0, 0, -2,
		-2, 0, 0,
		0, 0, 0,
		0, 0, -2,
	})
	b := []float64{0, 0, 0, 0, 0.5, 0}
	if _, ok := SolveMod1(a, b, 1e-8); ok {
		t.Errorf("expected no mod-1 solution")
	}
}

func TestSylvester3Identity(t *testing.T) {
	gen := mat3.IMat{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}} // fourfold rotation
	basis, ok := Sylvester3([]mat3.IMat{gen}, []mat3.IMat{gen})
	if !ok {
		t.Fatalf("expected conjugation solutions")
	}
	if len(basis) == 0 {
		t.Fatalf("expected nonempty basis")
	}
	// Every basis element must commute with the generator.
	for _, p := range basis {
		if gen.Mul(p) != p.Mul(gen) {
			t.Errorf("basis element does not satisfy the conjugation relation: %v", p)
		}
	}
}

func TestCycleChecker(t *testing.T) {
	cc := NewCycleChecker()
	if !cc.Insert(mat3.IEye()) {
		t.Errorf("first insert reported as revisit")
	}
	if cc.Insert(mat3.IEye()) {
		t.Errorf("second insert not reported as revisit")
	}
}
