// Copyright ©2025 The Crystalgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spacegroup

import (
	"math"

	"github.com/crystalgo/spacegroup/crystal"
	"github.com/crystalgo/spacegroup/data"
	"github.com/crystalgo/spacegroup/identify"
	"github.com/crystalgo/spacegroup/mat3"
	"github.com/crystalgo/spacegroup/search"
	"github.com/crystalgo/spacegroup/standardize"
)

// Dataset is the symmetry information of a crystal structure.
type Dataset struct {
	// Number is the ITA space-group number, 1 through 230.
	Number int
	// HallNumber identifies the matched setting, 1 through 530.
	HallNumber int

	// Operations are the symmetry operations in the input cell.
	Operations []crystal.Operation

	// Orbits[i] is the smallest input-site index equivalent to site i.
	Orbits []int
	// Wyckoffs[i] is the Wyckoff letter of site i.
	Wyckoffs []byte
	// SiteSymmetrySymbols[i] is the site-symmetry symbol of site i as
	// listed in the Wyckoff catalog. It is oriented with respect to the
	// standardized cell for the common settings; for settings derived
	// from the Hall expansions it is the unoriented point-group symbol.
	SiteSymmetrySymbols []string

	// StdCell is the standardized conventional cell.
	StdCell crystal.Cell
	// StdLinear and StdOriginShift transform the input cell onto
	// StdCell.
	StdLinear      mat3.Mat
	StdOriginShift mat3.Vec
	// StdRotationMatrix is the orthogonal rotation aligning the input
	// lattice with the standardized lattice.
	StdRotationMatrix mat3.Mat

	// PrimStdCell is the standardized primitive cell, with the
	// analogous transformation and the mapping of input sites onto its
	// sites.
	PrimStdCell        crystal.Cell
	PrimStdLinear      mat3.Mat
	PrimStdOriginShift mat3.Vec
	MappingStdPrim     []int

	// Symprec and AngleTolerance are the tolerances actually used
	// after iterative adjustment.
	Symprec        float64
	AngleTolerance crystal.AngleTolerance
}

// New determines the symmetry of cell. symprec is the Cartesian
// distance tolerance; angleTolerance selects the basis-angle
// criterion of the Bravais search; setting selects the preferred
// space-group settings. When the search fails for every adjusted
// tolerance, the last error is returned.
func New(cell crystal.Cell, symprec float64, angleTolerance crystal.AngleTolerance, setting data.Setting) (*Dataset, error) {
	primCell, symmetries, usedSymprec, usedAngle, err := search.IterativeSearch(cell, symprec, angleTolerance)
	if err != nil {
		return nil, err
	}
	operations := search.OperationsInCell(primCell, symmetries.Operations)

	// Fractional tolerance for comparing translation parts.
	epsilon := usedSymprec / math.Cbrt(primCell.Cell.Lattice.Volume())
	spaceGroup, err := identify.IdentifySpaceGroup(symmetries.Operations, setting, epsilon)
	if err != nil {
		return nil, err
	}

	std, err := standardize.Standardize(primCell.Cell, symmetries.Operations, symmetries.Permutations, spaceGroup, usedSymprec, epsilon)
	if err != nil {
		return nil, err
	}

	orbits := standardize.OrbitsInCell(primCell.Cell.NumAtoms(), symmetries.Permutations, primCell.SiteMapping)

	// The standardized primitive cell keeps the site order of the
	// primitive cell, so the input mapping carries over. Wyckoff data
	// flows back through the conventional cell's site mapping.
	mappingStdPrim := primCell.SiteMapping
	primWyckoffs := make([]*data.WyckoffPosition, primCell.Cell.NumAtoms())
	for i := range std.Wyckoffs {
		j := std.SiteMapping[i]
		if primWyckoffs[j] == nil {
			primWyckoffs[j] = &std.Wyckoffs[i]
		}
	}
	wyckoffs := make([]byte, len(mappingStdPrim))
	symbols := make([]string, len(mappingStdPrim))
	for i, j := range mappingStdPrim {
		w := primWyckoffs[j]
		if w == nil {
			return nil, crystal.ErrWyckoffPosition
		}
		wyckoffs[i] = w.Letter
		symbols[i] = w.SiteSymmetry
	}

	// input <-(primCell.Linear)- primitive -(std transforms)-> standard
	primLinearInv := primCell.Linear.Float().Inv()
	stdLinear := primLinearInv.Mul(std.Transformation.Linear.Float())
	stdOriginShift := primLinearInv.MulVec(std.Transformation.OriginShift)
	primStdLinear := primLinearInv.Mul(std.PrimTransformation.Linear.Float())
	primStdOriginShift := primLinearInv.MulVec(std.PrimTransformation.OriginShift)

	return &Dataset{
		Number:     spaceGroup.Number,
		HallNumber: spaceGroup.HallNumber,

		Operations: operations,

		Orbits:              orbits,
		Wyckoffs:            wyckoffs,
		SiteSymmetrySymbols: symbols,

		StdCell:           std.Cell,
		StdLinear:         stdLinear,
		StdOriginShift:    stdOriginShift,
		StdRotationMatrix: std.RotationMatrix,

		PrimStdCell:        std.PrimCell,
		PrimStdLinear:      primStdLinear,
		PrimStdOriginShift: primStdOriginShift,
		MappingStdPrim:     mappingStdPrim,

		Symprec:        usedSymprec,
		AngleTolerance: usedAngle,
	}, nil
}

// NumOperations returns the number of symmetry operations in the
// input cell.
func (d *Dataset) NumOperations() int { return len(d.Operations) }
