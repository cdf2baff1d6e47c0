// Copyright ©2025 The Crystalgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package data

import "github.com/crystalgo/spacegroup/mat3"

// Centering is a lattice centering type.
type Centering byte

const (
	CenteringP Centering = 'P' // primitive
	CenteringA Centering = 'A' // A-face centered
	CenteringB Centering = 'B' // B-face centered
	CenteringC Centering = 'C' // C-face centered
	CenteringI Centering = 'I' // body centered
	CenteringR Centering = 'R' // rhombohedral (obverse setting)
	CenteringF Centering = 'F' // face centered
)

// Centerings lists all centering types in a fixed order.
var Centerings = []Centering{
	CenteringP, CenteringA, CenteringB, CenteringC,
	CenteringI, CenteringR, CenteringF,
}

func (c Centering) String() string { return string(byte(c)) }

// Order returns the index of the conventional lattice over its
// primitive sublattice.
func (c Centering) Order() int {
	switch c {
	case CenteringP:
		return 1
	case CenteringA, CenteringB, CenteringC, CenteringI:
		return 2
	case CenteringR:
		return 3
	case CenteringF:
		return 4
	}
	panic("data: unknown centering")
}

// Linear returns the transformation matrix from the primitive to the
// conventional cell.
func (c Centering) Linear() mat3.IMat {
	switch c {
	case CenteringP:
		return mat3.IEye()
	case CenteringA:
		return mat3.IMat{
			{1, 0, 0},
			{0, 1, 1},
			{0, -1, 1},
		}
	case CenteringB:
		return mat3.IMat{
			{1, 0, -1},
			{0, 1, 0},
			{1, 0, 1},
		}
	case CenteringC:
		return mat3.IMat{
			{1, -1, 0},
			{1, 1, 0},
			{0, 0, 1},
		}
	case CenteringR:
		return mat3.IMat{
			{1, 0, 1},
			{-1, 1, 1},
			{0, -1, 1},
		}
	case CenteringI:
		return mat3.IMat{
			{0, 1, 1},
			{1, 0, 1},
			{1, 1, 0},
		}
	case CenteringF:
		return mat3.IMat{
			{-1, 1, 1},
			{1, -1, 1},
			{1, 1, -1},
		}
	}
	panic("data: unknown centering")
}

// Inverse returns the transformation matrix from the conventional to
// the primitive cell.
func (c Centering) Inverse() mat3.Mat {
	return c.Linear().Float().Inv()
}

// LatticePoints returns the lattice-point translations of the
// centering in the conventional cell, in [0, 1)³.
func (c Centering) LatticePoints() []mat3.Vec {
	switch c {
	case CenteringP:
		return []mat3.Vec{{0, 0, 0}}
	case CenteringA:
		return []mat3.Vec{{0, 0, 0}, {0, 0.5, 0.5}}
	case CenteringB:
		return []mat3.Vec{{0, 0, 0}, {0.5, 0, 0.5}}
	case CenteringC:
		return []mat3.Vec{{0, 0, 0}, {0.5, 0.5, 0}}
	case CenteringI:
		return []mat3.Vec{{0, 0, 0}, {0.5, 0.5, 0.5}}
	case CenteringR:
		// Obverse setting.
		return []mat3.Vec{
			{0, 0, 0},
			{2. / 3, 1. / 3, 1. / 3},
			{1. / 3, 2. / 3, 2. / 3},
		}
	case CenteringF:
		return []mat3.Vec{
			{0, 0, 0},
			{0, 0.5, 0.5},
			{0.5, 0, 0.5},
			{0.5, 0.5, 0},
		}
	}
	panic("data: unknown centering")
}
