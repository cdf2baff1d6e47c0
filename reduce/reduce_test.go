// Copyright ©2025 The Crystalgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reduce

import (
	"testing"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"

	"github.com/crystalgo/spacegroup/mat3"
)

func matEqualWithin(a, b mat3.Mat, tol float64) bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if !scalar.EqualWithinAbs(a[i][j], b[i][j], tol) {
				return false
			}
		}
	}
	return true
}

func randomIntBasis(rnd *rand.Rand) mat3.Mat {
	var m mat3.Mat
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m[i][j] = float64(rnd.Intn(256) - 128)
		}
	}
	return m
}

func randomBasis(rnd *rand.Rand) mat3.Mat {
	var m mat3.Mat
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m[i][j] = rnd.Float64()
		}
	}
	return m
}

func TestIsMinkowskiReduced(t *testing.T) {
	if !IsMinkowskiReduced(mat3.Eye()) {
		t.Errorf("identity basis reported as not reduced")
	}
	skew := mat3.FromCols(
		mat3.Vec{0, 1, 0},
		mat3.Vec{1, 1, 0},
		mat3.Vec{1, 1, 1},
	)
	if IsMinkowskiReduced(skew) {
		t.Errorf("skew basis reported as reduced")
	}
}

func TestMinkowskiSmall(t *testing.T) {
	reduced, trans := Minkowski(mat3.Eye())
	if !matEqualWithin(reduced, mat3.Eye(), 1e-12) {
		t.Errorf("identity basis changed by reduction: %v", reduced)
	}
	if trans != mat3.IEye() {
		t.Errorf("identity basis transformed by %v", trans)
	}

	skew := mat3.FromCols(
		mat3.Vec{0, 1, 0},
		mat3.Vec{1, 1, 0},
		mat3.Vec{1, 1, 1},
	)
	reduced, trans = Minkowski(skew)
	if !IsMinkowskiReduced(reduced) {
		t.Errorf("skew basis not reduced: %v", reduced)
	}
	if !matEqualWithin(skew.Mul(trans.Float()), reduced, 1e-12) {
		t.Errorf("transform does not reproduce the reduced basis")
	}

	// Ill-conditioned basis that exercises the cycle checker.
	hard := mat3.FromCols(
		mat3.Vec{-5, -10, 17},
		mat3.Vec{17, 24, 12},
		mat3.Vec{-127, 73, 5},
	)
	reduced, trans = Minkowski(hard)
	if !IsMinkowskiReduced(reduced) {
		t.Errorf("hard basis not reduced: %v", reduced)
	}
	if !matEqualWithin(hard.Mul(trans.Float()), reduced, 1e-8) {
		t.Errorf("transform does not reproduce the reduced basis")
	}
}

func TestMinkowskiRandom(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for k := 0; k < 256; k++ {
		basis := randomIntBasis(rnd)
		if basis.Det() == 0 {
			continue
		}
		reduced, trans := Minkowski(basis)
		if !IsMinkowskiReduced(reduced) {
			t.Fatalf("basis %v not reduced: %v", basis, reduced)
		}
		if !matEqualWithin(basis.Mul(trans.Float()), reduced, 1e-8) {
			t.Fatalf("transform does not reproduce the reduced basis for %v", basis)
		}
	}
	for k := 0; k < 256; k++ {
		basis := randomBasis(rnd)
		reduced, trans := Minkowski(basis)
		if !IsMinkowskiReduced(reduced) {
			t.Fatalf("basis %v not reduced: %v", basis, reduced)
		}
		if !matEqualWithin(basis.Mul(trans.Float()), reduced, 1e-4) {
			t.Fatalf("transform does not reproduce the reduced basis for %v", basis)
		}
	}
}

func TestNiggliSmall(t *testing.T) {
	// Example in Acta Cryst. (1976). A32, 297.
	g := mat.NewSymDense(3, []float64{
		9, -22. / 2, -4. / 2,
		-22. / 2, 27, -5. / 2,
		-4. / 2, -5. / 2, 4,
	})
	var chol mat.Cholesky
	if !chol.Factorize(g) {
		t.Fatalf("metric tensor is not positive definite")
	}
	var l mat.TriDense
	chol.LTo(&l)
	var basis mat3.Mat
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			// Upper-triangular basis from the transposed factor.
			basis[i][j] = l.At(j, i)
		}
	}

	reduced, trans := Niggli(basis)
	if !matEqualWithin(basis.Mul(trans.Float()), reduced, 1e-8) {
		t.Fatalf("transform does not reproduce the reduced basis")
	}
	if det := trans.Det(); det != 1 {
		t.Errorf("unexpected transform determinant: got %d want 1", det)
	}

	p := newNiggliParams(reduced)
	for _, c := range []struct {
		name      string
		got, want float64
	}{
		{"A", p.a, 4},
		{"B", p.b, 9},
		{"C", p.c, 9},
		{"xi", p.xi, 9},
		{"eta", p.eta, 3},
		{"zeta", p.zeta, 4},
	} {
		if !scalar.EqualWithinAbs(c.got, c.want, 1e-6) {
			t.Errorf("unexpected %s: got %v want %v", c.name, c.got, c.want)
		}
	}
	if !IsNiggliReduced(reduced) {
		t.Errorf("result does not satisfy the Niggli conditions")
	}
}

func TestNiggliOscillation(t *testing.T) {
	// Bases known to bounce between steps without the cycle checker.
	cases := []mat3.Mat{
		mat3.FromCols(
			mat3.Vec{-101, 95, 126},
			mat3.Vec{7, 4, 46},
			mat3.Vec{-127, 73, 5},
		),
		mat3.FromCols(
			mat3.Vec{17, -105, -117},
			mat3.Vec{105, -108, -113},
			mat3.Vec{85, 2, 2},
		),
	}
	for _, basis := range cases {
		reduced, _ := Niggli(basis)
		if !IsNiggliReduced(reduced) {
			t.Errorf("basis %v not reduced: %v", basis, reduced)
		}
	}
}

func TestNiggliRandom(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for k := 0; k < 256; k++ {
		basis := randomIntBasis(rnd)
		if basis.Det() == 0 {
			continue
		}
		reduced, trans := Niggli(basis)
		if !IsNiggliReduced(reduced) {
			t.Fatalf("basis %v not reduced: %v", basis, reduced)
		}
		if !matEqualWithin(basis.Mul(trans.Float()), reduced, 1e-8) {
			t.Fatalf("transform does not reproduce the reduced basis for %v", basis)
		}
	}
}

func TestDelaunaySmall(t *testing.T) {
	basis := mat3.FromCols(
		mat3.Vec{-2.2204639179669590, -4.4409278359339179, 179.8575773553236843},
		mat3.Vec{1.2819854407640749, 0, 103.8408207018900669},
		mat3.Vec{10.5158083946732219, 0, 883.3279051525505565},
	)
	reduced, trans := Delaunay(basis)
	if !matEqualWithin(basis.Mul(trans.Float()), reduced, 1e-4) {
		t.Errorf("transform does not reproduce the reduced basis")
	}
}

func TestDelaunayRandom(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for k := 0; k < 256; k++ {
		basis := randomIntBasis(rnd)
		if basis.Det() == 0 {
			continue
		}
		reduced, trans := Delaunay(basis)
		if !matEqualWithin(basis.Mul(trans.Float()), reduced, 1e-4) {
			t.Fatalf("transform does not reproduce the reduced basis for %v", basis)
		}
	}
}
