// Copyright ©2025 The Crystalgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package spacegroup is a crystal symmetry finder: given a periodic
// crystal structure it determines the space-group type, the symmetry
// operations acting on the input cell, a standardized form of the
// structure and the Wyckoff position of every site, robustly under
// numerical noise.
//
// The basic usage is to build a crystal.Cell and construct a Dataset
// from it:
//
//	lattice := crystal.NewLattice(mat3.Mat{
//		{4.603, 0, 0},
//		{0, 4.603, 0},
//		{0, 0, 2.969},
//	})
//	const x = 0.3046
//	cell := crystal.NewCell(lattice, []mat3.Vec{
//		{0, 0, 0}, {0.5, 0.5, 0.5},
//		{x, x, 0}, {-x, -x, 0},
//		{-x + 0.5, x + 0.5, 0.5}, {x + 0.5, -x + 0.5, 0.5},
//	}, []int{0, 0, 1, 1, 1, 1})
//
//	ds, err := spacegroup.New(cell, 1e-5, crystal.DefaultAngleTolerance, data.Standard)
//	if err != nil {
//		// ...
//	}
//	fmt.Println(ds.Number) // 136
package spacegroup // import "github.com/crystalgo/spacegroup"
