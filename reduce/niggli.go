// Copyright ©2025 The Crystalgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reduce

import (
	"math"

	"github.com/crystalgo/spacegroup/intmat"
	"github.com/crystalgo/spacegroup/mat3"
)

// Niggli returns the Niggli-reduced basis of the column-wise basis
// together with the accumulated unimodular transform, following the
// eight-step algorithm of Křivý and Gruber with an ε-fuzzy comparator.
// The cycle checker guards against oscillation between steps.
func Niggli(basis mat3.Mat) (mat3.Mat, mat3.IMat) {
	reduced := basis
	trans := mat3.IEye()

	cc := intmat.NewCycleChecker()
	steps := []func(*niggliParams, *mat3.IMat) bool{
		step1, step2, step3, step4, step5, step6, step7, step8,
	}
	step := 1
	for step <= 8 {
		params := newNiggliParams(reduced)
		branch := steps[step-1](&params, &trans)
		reduced = basis.Mul(trans.Float())

		if branch && (step == 2 || step == 5 || step == 6 || step == 7 || step == 8) {
			step = 1
		} else {
			step++
		}

		// Terminate when the transform has already been visited on
		// re-entry to step 1.
		if step == 1 && !cc.Insert(trans) {
			break
		}
	}

	if trans.Float().Det() < 0 {
		reduced = reduced.Scale(-1)
		trans = trans.Neg()
	}
	return reduced, trans
}

// niggliParams are the metric parameters (A, B, C, ξ, η, ζ) of the
// Křivý–Gruber formulation with their fuzzy signs.
type niggliParams struct {
	a, b, c          float64
	xi, eta, zeta    float64
	sXi, sEta, sZeta int
}

func newNiggliParams(basis mat3.Mat) niggliParams {
	g := basis.T().Mul(basis)
	xi := 2 * g[1][2]
	eta := 2 * g[2][0]
	zeta := 2 * g[0][1]
	return niggliParams{
		a: g[0][0], b: g[1][1], c: g[2][2],
		xi: xi, eta: eta, zeta: zeta,
		sXi: fuzzySign(xi), sEta: fuzzySign(eta), sZeta: fuzzySign(zeta),
	}
}

func fuzzySign(x float64) int {
	switch {
	case x > eps:
		return 1
	case x < -eps:
		return -1
	}
	return 0
}

// step1: if A > B or (A = B, |ξ| > |η|), swap a and b.
func step1(p *niggliParams, trans *mat3.IMat) bool {
	if p.a-p.b > eps || (math.Abs(p.a-p.b) < eps && math.Abs(p.xi) > math.Abs(p.eta)) {
		*trans = trans.Mul(mat3.IMat{
			{0, -1, 0},
			{-1, 0, 0},
			{0, 0, -1},
		})
		return true
	}
	return false
}

// step2: if B > C or (B = C, |η| > |ζ|), swap b and c.
func step2(p *niggliParams, trans *mat3.IMat) bool {
	if p.b-p.c > eps || (math.Abs(p.b-p.c) < eps && math.Abs(p.eta) > math.Abs(p.zeta)) {
		*trans = trans.Mul(mat3.IMat{
			{-1, 0, 0},
			{0, 0, -1},
			{0, -1, 0},
		})
		return true
	}
	return false
}

// step3: adjust axis directions for a type-I cell.
func step3(p *niggliParams, trans *mat3.IMat) bool {
	if p.sXi*p.sEta*p.sZeta > 0 {
		m := mat3.IEye()
		if p.sXi == -1 {
			m[0][0] = -1
		}
		if p.sEta == -1 {
			m[1][1] = -1
		}
		if p.sZeta == -1 {
			m[2][2] = -1
		}
		*trans = trans.Mul(m)
		return true
	}
	return false
}

// step4: adjust axis directions for a type-II cell.
func step4(p *niggliParams, trans *mat3.IMat) bool {
	if p.sXi == -1 && p.sEta == -1 && p.sZeta == -1 {
		return false
	}
	if p.sXi*p.sEta*p.sZeta <= 0 {
		i, j, k := 1, 1, 1
		pos := -1
		switch {
		case p.sXi == 1:
			i = -1
		case p.sXi == 0:
			pos = 0
		}
		switch {
		case p.sEta == 1:
			j = -1
		case p.sEta == 0:
			pos = 1
		}
		switch {
		case p.sZeta == 1:
			k = -1
		case p.sZeta == 0:
			pos = 2
		}
		if i*j*k == -1 {
			switch pos {
			case 0:
				i = -1
			case 1:
				j = -1
			case 2:
				k = -1
			default:
				panic("reduce: inconsistent signs in niggli step 4")
			}
		}
		*trans = trans.Mul(mat3.IMat{
			{i, 0, 0},
			{0, j, 0},
			{0, 0, k},
		})
		return true
	}
	return false
}

// step5: if |ξ| > B or (ξ = B, 2η < ζ) or (ξ = -B, ζ < 0).
func step5(p *niggliParams, trans *mat3.IMat) bool {
	if math.Abs(p.xi)-p.b > eps ||
		(math.Abs(p.xi-p.b) < eps && p.zeta-2*p.eta > eps) ||
		(math.Abs(p.xi+p.b) < eps && -p.zeta > eps) {
		m := mat3.IEye()
		m[1][2] = -p.sXi
		*trans = trans.Mul(m)
		return true
	}
	return false
}

// step6: if |η| > A or (η = A, 2ξ < ζ) or (η = -A, ζ < 0).
func step6(p *niggliParams, trans *mat3.IMat) bool {
	if math.Abs(p.eta)-p.a > eps ||
		(math.Abs(p.eta-p.a) < eps && p.zeta-2*p.xi > eps) ||
		(math.Abs(p.eta+p.a) < eps && -p.zeta > eps) {
		m := mat3.IEye()
		m[0][2] = -p.sEta
		*trans = trans.Mul(m)
		return true
	}
	return false
}

// step7: if |ζ| > A or (ζ = A, 2ξ < η) or (ζ = -A, η < 0).
func step7(p *niggliParams, trans *mat3.IMat) bool {
	if math.Abs(p.zeta)-p.a > eps ||
		(math.Abs(p.zeta-p.a) < eps && p.eta-2*p.xi > eps) ||
		(math.Abs(p.zeta+p.a) < eps && -p.eta > eps) {
		m := mat3.IEye()
		m[0][1] = -p.sZeta
		*trans = trans.Mul(m)
		return true
	}
	return false
}

// step8: if ξ+η+ζ+A+B < 0 or (ξ+η+ζ+A+B = 0, 2(A+η)+ζ > 0).
func step8(p *niggliParams, trans *mat3.IMat) bool {
	s := p.xi + p.eta + p.zeta + p.a + p.b
	if s < -eps || (math.Abs(s) < eps && 2*(p.a+p.eta)+p.zeta > eps) {
		*trans = trans.Mul(mat3.IMat{
			{1, 0, 1},
			{0, 1, 1},
			{0, 0, 1},
		})
		return true
	}
	return false
}

// IsNiggliReduced reports whether the column-wise basis satisfies the
// main and special Niggli conditions for its cell type.
func IsNiggliReduced(basis mat3.Mat) bool {
	p := newNiggliParams(basis)

	// Common conditions: A <= B <= C, A >= |η|, B >= |ξ|.
	if p.b-p.a < -eps || p.c-p.b < -eps {
		return false
	}
	if p.a-math.Abs(p.eta) < -eps || p.b-math.Abs(p.xi) < -eps {
		return false
	}

	if p.sXi*p.sEta*p.sZeta > 0 {
		// Type-I cell: ξ, η, ζ all positive.
		if p.xi <= eps || p.eta <= eps || p.zeta <= eps {
			return false
		}
		if math.Abs(p.a-p.b) < eps && p.eta-p.xi < -eps {
			return false
		}
		if math.Abs(p.b-p.c) < eps && p.zeta-p.eta < -eps {
			return false
		}
		if math.Abs(p.b-math.Abs(p.xi)) < eps && 2*p.eta-p.zeta < -eps {
			return false
		}
		if math.Abs(p.a-math.Abs(p.eta)) < eps && 2*p.xi-p.zeta < -eps {
			return false
		}
		if math.Abs(p.a-math.Abs(p.zeta)) < eps && 2*p.xi-p.eta < -eps {
			return false
		}
	} else {
		// Type-II cell: ξ, η, ζ all non-positive.
		if p.xi > eps || p.eta > eps || p.zeta > eps {
			return false
		}
		if math.Abs(p.a-p.b) < eps && math.Abs(p.eta)-math.Abs(p.xi) < -eps {
			return false
		}
		if math.Abs(p.b-p.c) < eps && math.Abs(p.zeta)-math.Abs(p.eta) < -eps {
			return false
		}
		if math.Abs(p.b-math.Abs(p.xi)) < eps && math.Abs(p.zeta) >= eps {
			return false
		}
		if math.Abs(p.a-math.Abs(p.eta)) < eps && math.Abs(p.zeta) >= eps {
			return false
		}
		if math.Abs(p.a-math.Abs(p.zeta)) < eps && math.Abs(p.eta) >= eps {
			return false
		}
		if math.Abs(p.xi+p.eta+p.zeta+p.a+p.b) < eps &&
			2*(p.a+p.eta)+p.zeta > eps {
			return false
		}
	}
	return true
}
