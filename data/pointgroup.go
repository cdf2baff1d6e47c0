// Copyright ©2025 The Crystalgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package data

import "github.com/crystalgo/spacegroup/mat3"

// PointGroupRepresentative is the representative crystallographic
// point group of an arithmetic crystal class, given by generators in
// the conventional basis of the representative space group.
type PointGroupRepresentative struct {
	Generators []mat3.IMat
	Centering  Centering
}

// Representative hall numbers per arithmetic crystal class. Rhombohedral
// classes use hexagonal axes.
var arithmeticRepresentativeHall = [73]int{
	// Triclinic
	1, 2,
	// Monoclinic (unique axis b, cell choice 1)
	3, 9, 18, 30, 57, 63,
	// Orthorhombic (setting abc)
	108, 119, 122, 123, 125, 173, 185, 209, 215, 227, 310, 334, 337,
	// Tetragonal
	349, 353, 355, 356, 357, 363, 366, 374, 376, 384, 388, 392, 396, 398, 400, 424,
	// Trigonal
	430, 433, 435, 436, 438, 439, 444, 446, 447, 450, 454, 456, 458,
	// Hexagonal
	462, 468, 469, 471, 477, 483, 481, 485,
	// Cubic
	489, 490, 491, 494, 497, 500, 503, 505, 507, 511, 512, 513, 517, 523, 529,
}

// RepresentativeFor returns the representative point group of the
// arithmetic crystal class. RepresentativeFor panics when number is
// out of range.
func RepresentativeFor(arithmeticNumber int) PointGroupRepresentative {
	if arithmeticNumber < 1 || arithmeticNumber > len(arithmeticRepresentativeHall) {
		panic("data: arithmetic number out of range")
	}
	hs, ok := HallSymbolFor(arithmeticRepresentativeHall[arithmeticNumber-1])
	if !ok {
		panic("data: representative hall symbol failed to parse")
	}
	gens := make([]mat3.IMat, len(hs.Generators))
	for i, op := range hs.Generators {
		gens[i] = op.Rotation
	}
	return PointGroupRepresentative{Generators: gens, Centering: hs.Centering}
}

// PrimitiveGenerators returns the generators conjugated into the
// primitive basis of the centering.
func (p PointGroupRepresentative) PrimitiveGenerators() []mat3.IMat {
	m := p.Centering.Linear().Float()
	minv := p.Centering.Inverse()
	gens := make([]mat3.IMat, len(p.Generators))
	for i, gen := range p.Generators {
		gens[i] = m.Mul(gen.Float()).Mul(minv).RoundI()
	}
	return gens
}
