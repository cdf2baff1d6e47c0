// Copyright ©2025 The Crystalgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package crystal defines the data model of the symmetry finder:
// lattices, decorated cells, symmetry operations, permutations and
// affine changes of basis, together with the error values reported by
// the search pipeline.
//
// A lattice stores its basis vectors as matrix columns. Positions are
// fractional coordinates in the lattice basis. Cells are immutable
// after construction; transformations produce new cells.
package crystal // import "github.com/crystalgo/spacegroup/crystal"
