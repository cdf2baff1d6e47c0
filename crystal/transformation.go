// Copyright ©2025 The Crystalgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crystal

import (
	"math"

	"github.com/crystalgo/spacegroup/intmat"
	"github.com/crystalgo/spacegroup/mat3"
)

// UnimodularTransformation is a change of origin and basis (P, p) with
// det P = 1. It acts on lattices by B ↦ B·P, on positions by
// x ↦ P⁻¹(x - p) and on operations by (R, t) ↦ (P⁻¹RP, P⁻¹(Rp + t - p)).
type UnimodularTransformation struct {
	Linear      mat3.IMat
	OriginShift mat3.Vec

	linearInv mat3.IMat
}

// NewUnimodularTransformation returns the transformation (linear,
// originShift). It panics if det linear is not one.
func NewUnimodularTransformation(linear mat3.IMat, originShift mat3.Vec) UnimodularTransformation {
	if linear.Det() != 1 {
		panic("crystal: transformation matrix is not unimodular")
	}
	return UnimodularTransformation{
		Linear:      linear,
		OriginShift: originShift,
		linearInv:   linear.Inv(),
	}
}

// UnimodularFromLinear returns the transformation (linear, 0).
func UnimodularFromLinear(linear mat3.IMat) UnimodularTransformation {
	return NewUnimodularTransformation(linear, mat3.Vec{})
}

// Inverse returns (P, p)⁻¹ = (P⁻¹, -P⁻¹p).
func (t UnimodularTransformation) Inverse() UnimodularTransformation {
	return NewUnimodularTransformation(t.linearInv, t.linearInv.MulVecF(t.OriginShift).Neg())
}

// Mul returns the composition (P₁, p₁)·(P₂, p₂) = (P₁P₂, P₁p₂ + p₁).
func (t UnimodularTransformation) Mul(u UnimodularTransformation) UnimodularTransformation {
	return NewUnimodularTransformation(
		t.Linear.Mul(u.Linear),
		t.Linear.MulVecF(u.OriginShift).Add(t.OriginShift),
	)
}

// TransformLattice returns the lattice with basis B·P.
func (t UnimodularTransformation) TransformLattice(l Lattice) Lattice {
	return Lattice{Basis: l.Basis.Mul(t.Linear.Float())}
}

// TransformOperation conjugates op by the transformation.
func (t UnimodularTransformation) TransformOperation(op Operation) Operation {
	rot := t.linearInv.Mul(op.Rotation).Mul(t.Linear)
	tr := t.linearInv.MulVecF(
		op.Rotation.MulVecF(t.OriginShift).Add(op.Translation).Sub(t.OriginShift))
	return Operation{Rotation: rot, Translation: tr}
}

// TransformOperations conjugates each operation in ops.
func (t UnimodularTransformation) TransformOperations(ops []Operation) []Operation {
	out := make([]Operation, len(ops))
	for i, op := range ops {
		out[i] = t.TransformOperation(op)
	}
	return out
}

// TransformCell returns the cell in the transformed basis. The site
// order is preserved.
func (t UnimodularTransformation) TransformCell(c Cell) Cell {
	positions := make([]mat3.Vec, len(c.Positions))
	for i, pos := range c.Positions {
		positions[i] = t.linearInv.MulVecF(pos.Sub(t.OriginShift))
	}
	species := make([]int, len(c.Species))
	copy(species, c.Species)
	return NewCell(t.TransformLattice(c.Lattice), positions, species)
}

// Transformation is a change of origin and basis (P, p) with integer P
// and det P = k > 0. Applying it to a cell enlarges the atom count by
// k; the produced site mapping records the source of each duplicated
// site.
type Transformation struct {
	Linear      mat3.IMat
	OriginShift mat3.Vec
	// Size is det P, the index of the sublattice.
	Size int

	linearInv mat3.Mat
}

// NewTransformation returns the transformation (linear, originShift).
// It panics if det linear is not positive.
func NewTransformation(linear mat3.IMat, originShift mat3.Vec) Transformation {
	det := linear.Det()
	if det <= 0 {
		panic("crystal: transformation determinant is not positive")
	}
	return Transformation{
		Linear:      linear,
		OriginShift: originShift,
		Size:        det,
		linearInv:   linear.Float().Inv(),
	}
}

// FromLinear returns the transformation (linear, 0).
func FromLinear(linear mat3.IMat) Transformation {
	return NewTransformation(linear, mat3.Vec{})
}

// TransformLattice returns the lattice with basis B·P.
func (t Transformation) TransformLattice(l Lattice) Lattice {
	return Lattice{Basis: l.Basis.Mul(t.Linear.Float())}
}

// InverseTransformLattice returns the lattice with basis B·P⁻¹.
func (t Transformation) InverseTransformLattice(l Lattice) Lattice {
	return Lattice{Basis: l.Basis.Mul(t.linearInv)}
}

// TransformOperation conjugates op by (P, p). It reports ok=false when
// the conjugated rotation is not an integer matrix in the new basis.
func (t Transformation) TransformOperation(op Operation) (Operation, bool) {
	return transformOperation(op, t.Linear.Float(), t.linearInv, t.OriginShift)
}

// TransformOperations conjugates each operation, dropping those that
// are incompatible with the sublattice.
func (t Transformation) TransformOperations(ops []Operation) []Operation {
	out := make([]Operation, 0, len(ops))
	for _, op := range ops {
		if tr, ok := t.TransformOperation(op); ok {
			out = append(out, tr)
		}
	}
	return out
}

// InverseTransformOperation conjugates op by (P, p)⁻¹.
func (t Transformation) InverseTransformOperation(op Operation) (Operation, bool) {
	shift := t.linearInv.MulVec(t.OriginShift).Neg()
	return transformOperation(op, t.linearInv, t.Linear.Float(), shift)
}

// InverseTransformOperations conjugates each operation by (P, p)⁻¹,
// dropping incompatible ones.
func (t Transformation) InverseTransformOperations(ops []Operation) []Operation {
	out := make([]Operation, 0, len(ops))
	for _, op := range ops {
		if tr, ok := t.InverseTransformOperation(op); ok {
			out = append(out, tr)
		}
	}
	return out
}

// TransformCell returns the cell in the transformed basis together
// with the mapping from new sites to source sites. Distinct lattice
// points of the sublattice are generated through the Smith normal form
// of P.
func (t Transformation) TransformCell(c Cell) (Cell, []int) {
	lattice := t.TransformLattice(c.Lattice)

	// D = L·P·R. Distinct lattice points of the sublattice are
	// n = L⁻¹·f with f ranging over Z_D0 × Z_D1 × Z_D2.
	flat := make([]int, 0, 9)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			flat = append(flat, t.Linear[i][j])
		}
	}
	d, l, _ := intmat.SNF(intmat.New(3, 3, flat))
	var lm mat3.IMat
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			lm[i][j] = l.At(i, j)
		}
	}
	linv := lm.Float().Inv()

	var latticePoints []mat3.Vec
	for f0 := 0; f0 < d.At(0, 0); f0++ {
		for f1 := 0; f1 < d.At(1, 1); f1++ {
			for f2 := 0; f2 < d.At(2, 2); f2++ {
				p := linv.MulVec(mat3.Vec{float64(f0), float64(f1), float64(f2)})
				latticePoints = append(latticePoints, p)
			}
		}
	}

	n := c.NumAtoms() * len(latticePoints)
	positions := make([]mat3.Vec, 0, n)
	species := make([]int, 0, n)
	mapping := make([]int, 0, n)
	for i, pos := range c.Positions {
		for _, lp := range latticePoints {
			np := t.linearInv.MulVec(pos.Sub(t.OriginShift).Add(lp))
			for k, e := range np {
				np[k] = math.Mod(e, 1)
			}
			positions = append(positions, np)
			species = append(species, c.Species[i])
			mapping = append(mapping, i)
		}
	}
	return NewCell(lattice, positions, species), mapping
}

// transformOperation conjugates (R, t) by the affine map given through
// linear, its inverse and the origin shift, reporting whether the
// conjugated rotation stays integral.
func transformOperation(op Operation, linear, linearInv mat3.Mat, originShift mat3.Vec) (Operation, bool) {
	rot := linearInv.Mul(op.Rotation.Float()).Mul(linear).RoundI()

	// Reject when the rounded rotation does not recover the original.
	recovered := linear.Mul(rot.Float()).Mul(linearInv).RoundI()
	if recovered != op.Rotation {
		return Operation{}, false
	}

	tr := linearInv.MulVec(
		op.Rotation.MulVecF(originShift).Add(op.Translation).Sub(originShift))
	return Operation{Rotation: rot, Translation: tr}, true
}
