// Copyright ©2025 The Crystalgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crystal

import (
	"math"

	"github.com/crystalgo/spacegroup/mat3"
	"github.com/crystalgo/spacegroup/reduce"
)

// Lattice is a periodic lattice. Basis stores the basis vectors as
// matrix columns, so the Cartesian image of a fractional coordinate v
// is Basis·v.
type Lattice struct {
	Basis mat3.Mat
}

// NewLattice returns the lattice whose basis vectors are the rows of
// rowBasis. The row convention matches the common crystallographic
// way of writing the three vectors one per line.
func NewLattice(rowBasis mat3.Mat) Lattice {
	return Lattice{Basis: rowBasis.T()}
}

// MetricTensor returns Bᵀ·B.
func (l Lattice) MetricTensor() mat3.Mat {
	return l.Basis.T().Mul(l.Basis)
}

// Volume returns |det B|.
func (l Lattice) Volume() float64 {
	return math.Abs(l.Basis.Det())
}

// Cartesian returns the Cartesian coordinates of the fractional
// coordinate v.
func (l Lattice) Cartesian(v mat3.Vec) mat3.Vec {
	return l.Basis.MulVec(v)
}

// Rotate returns the lattice with basis r·B.
func (l Lattice) Rotate(r mat3.Mat) Lattice {
	return Lattice{Basis: r.Mul(l.Basis)}
}

// Constants returns the lattice constants (a, b, c, α, β, γ) with
// angles in degrees.
func (l Lattice) Constants() [6]float64 {
	a := l.Basis.Col(0)
	b := l.Basis.Col(1)
	c := l.Basis.Col(2)
	const toDeg = 180 / math.Pi
	return [6]float64{
		a.Norm(), b.Norm(), c.Norm(),
		b.Angle(c) * toDeg, c.Angle(a) * toDeg, a.Angle(b) * toDeg,
	}
}

// MinkowskiReduce returns the Minkowski-reduced lattice and the
// unimodular transform U with B·U equal to the reduced basis. It
// returns ErrMinkowskiReduction when the result fails the explicit
// reduction predicate.
func (l Lattice) MinkowskiReduce() (Lattice, mat3.IMat, error) {
	basis, trans := reduce.Minkowski(l.Basis)
	reduced := Lattice{Basis: basis}
	if !reduce.IsMinkowskiReduced(basis) {
		return reduced, trans, ErrMinkowskiReduction
	}
	return reduced, trans, nil
}

// NiggliReduce returns the Niggli-reduced lattice and the unimodular
// transform. It returns ErrNiggliReduction when the result fails the
// Niggli conditions.
func (l Lattice) NiggliReduce() (Lattice, mat3.IMat, error) {
	basis, trans := reduce.Niggli(l.Basis)
	reduced := Lattice{Basis: basis}
	if !reduce.IsNiggliReduced(basis) {
		return reduced, trans, ErrNiggliReduction
	}
	return reduced, trans, nil
}

// UncheckedNiggliReduce returns the Niggli-reduced lattice without
// verifying the reduction conditions. Distorted triclinic lattices
// make the check numerically meaningless.
func (l Lattice) UncheckedNiggliReduce() (Lattice, mat3.IMat) {
	basis, trans := reduce.Niggli(l.Basis)
	return Lattice{Basis: basis}, trans
}

// DelaunayReduce returns the Delaunay-reduced lattice and the
// unimodular transform.
func (l Lattice) DelaunayReduce() (Lattice, mat3.IMat) {
	basis, trans := reduce.Delaunay(l.Basis)
	return Lattice{Basis: basis}, trans
}

// MinBasisNorm returns the length of the shortest basis vector.
func (l Lattice) MinBasisNorm() float64 {
	m := l.Basis.Col(0).Norm()
	for j := 1; j < 3; j++ {
		if n := l.Basis.Col(j).Norm(); n < m {
			m = n
		}
	}
	return m
}
