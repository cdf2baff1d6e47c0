// Copyright ©2025 The Crystalgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crystal

import "github.com/crystalgo/spacegroup/mat3"

// Operation is a symmetry operation (R, t) acting on fractional
// coordinates as x ↦ R·x + t. The rotation part is an integer matrix
// in the acting basis.
type Operation struct {
	Rotation    mat3.IMat
	Translation mat3.Vec
}

// Identity returns the identity operation.
func Identity() Operation {
	return Operation{Rotation: mat3.IEye()}
}

// Mul returns the composition o·p, that is (R₁R₂, R₁t₂ + t₁).
func (o Operation) Mul(p Operation) Operation {
	return Operation{
		Rotation:    o.Rotation.Mul(p.Rotation),
		Translation: o.Rotation.MulVecF(p.Translation).Add(o.Translation),
	}
}

// Rotations projects the rotation parts of ops.
func Rotations(ops []Operation) []mat3.IMat {
	rs := make([]mat3.IMat, len(ops))
	for i, op := range ops {
		rs[i] = op.Rotation
	}
	return rs
}

// CartesianRotations returns the rotation parts of ops conjugated into
// the Cartesian frame of lattice: B·R·B⁻¹.
func CartesianRotations(ops []Operation, lattice Lattice) []mat3.Mat {
	inv := lattice.Basis.Inv()
	rs := make([]mat3.Mat, len(ops))
	for i, op := range ops {
		rs[i] = lattice.Basis.Mul(op.Rotation.Float()).Mul(inv)
	}
	return rs
}

// Traverse returns the rotation group generated by generators,
// breadth-first from the identity. The order of the result is
// deterministic: insertion order of the BFS with generators applied in
// the given order.
func Traverse(generators []mat3.IMat) []mat3.IMat {
	queue := []mat3.IMat{mat3.IEye()}
	visited := make(map[mat3.IMat]struct{})
	var group []mat3.IMat

	for len(queue) > 0 {
		element := queue[0]
		queue = queue[1:]
		if _, ok := visited[element]; ok {
			continue
		}
		visited[element] = struct{}{}
		group = append(group, element)

		for _, g := range generators {
			queue = append(queue, element.Mul(g))
		}
	}
	return group
}
