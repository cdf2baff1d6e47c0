// Copyright ©2025 The Crystalgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crystal

import "github.com/crystalgo/spacegroup/mat3"

// Cell is a crystal structure: a lattice decorated with atomic sites.
// Positions holds fractional coordinates; Species holds integer atomic
// labels compared only by equality.
type Cell struct {
	Lattice   Lattice
	Positions []mat3.Vec
	Species   []int
}

// NewCell returns a cell over the given lattice. NewCell panics if
// positions and species differ in length.
func NewCell(lattice Lattice, positions []mat3.Vec, species []int) Cell {
	if len(positions) != len(species) {
		panic("crystal: positions and species length mismatch")
	}
	return Cell{Lattice: lattice, Positions: positions, Species: species}
}

// NumAtoms returns the number of sites in the cell.
func (c Cell) NumAtoms() int { return len(c.Positions) }

// Rotate returns the cell with its lattice rotated by r. Fractional
// positions are unchanged.
func (c Cell) Rotate(r mat3.Mat) Cell {
	return NewCell(c.Lattice.Rotate(r), c.Positions, c.Species)
}
