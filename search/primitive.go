// Copyright ©2025 The Crystalgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package search

import (
	"math"

	"github.com/crystalgo/spacegroup/crystal"
	"github.com/crystalgo/spacegroup/intmat"
	"github.com/crystalgo/spacegroup/mat3"
)

// PrimitiveCell is the result of the primitive-cell search.
type PrimitiveCell struct {
	// Cell is the Minkowski-reduced primitive cell.
	Cell crystal.Cell
	// Linear transforms the primitive cell to the input cell:
	// primitive basis · Linear = input basis.
	Linear mat3.IMat
	// SiteMapping maps each input site to its primitive site
	// (many-to-one).
	SiteMapping []int
	// Translations are the pure translations in the input basis.
	Translations []mat3.Vec
	// Permutations record how each translation permutes the input
	// sites.
	Permutations []crystal.Permutation
}

// FindPrimitiveCell finds the pure translations of the cell within
// symprec and builds a Minkowski-reduced primitive cell from them.
func FindPrimitiveCell(cell crystal.Cell, symprec float64) (*PrimitiveCell, error) {
	reducedLattice, reducedTrans, err := cell.Lattice.MinkowskiReduce()
	if err != nil {
		return nil, err
	}
	reducedCell := crystal.UnimodularFromLinear(reducedTrans).TransformCell(cell)

	// A tolerance beyond half the shortest basis makes torus matching
	// ambiguous.
	roughSymprec := 2 * symprec
	if roughSymprec > reducedLattice.MinBasisNorm()/2 {
		return nil, crystal.ErrTooLargeTolerance
	}

	// Try to overlap the first pivot site onto every pivot site. The
	// rough translation may not be the optimum for its permutation, so
	// correspondence runs at the doubled tolerance.
	tree := NewPeriodicTree(reducedCell, roughSymprec)
	pivots := pivotSiteIndices(reducedCell.Species)
	src := pivots[0]
	type candidate struct {
		perm  crystal.Permutation
		rough mat3.Vec
	}
	var candidates []candidate
	for _, dst := range pivots {
		translation := reducedCell.Positions[dst].Sub(reducedCell.Positions[src])
		newPositions := make([]mat3.Vec, reducedCell.NumAtoms())
		for i, p := range reducedCell.Positions {
			newPositions[i] = p.Add(translation)
		}
		if perm, ok := solveCorrespondence(tree, reducedCell, newPositions); ok {
			candidates = append(candidates, candidate{perm, translation})
		}
	}

	// Purify the translations by their permutations.
	var translations []mat3.Vec
	var permutations []crystal.Permutation
	for _, c := range candidates {
		translation, distance := symmetrizeTranslation(reducedCell, c.perm, mat3.IEye(), c.rough)
		if distance < symprec {
			translations = append(translations, translation)
			permutations = append(permutations, c.perm)
		}
	}

	size := len(translations)
	if size == 0 || reducedCell.NumAtoms()%size != 0 {
		return nil, crystal.ErrTooSmallTolerance
	}

	transMat, ok := transformationFromTranslations(translations)
	if !ok {
		return nil, crystal.ErrTooSmallTolerance
	}

	primitive, siteMapping := primitiveFromTransformation(reducedCell, transMat, translations, permutations)
	_, primTrans, err := primitive.Lattice.MinkowskiReduce()
	if err != nil {
		return nil, err
	}
	reducedPrimitive := crystal.UnimodularFromLinear(primTrans).TransformCell(primitive)

	// (input) -[reducedTrans]-> (reduced) <-[transMat]- (primitive)
	//         -[primTrans]-> (reduced primitive)
	linear := primTrans.Inv().Mul(transMat).Mul(reducedTrans.Inv())

	inputTranslations := make([]mat3.Vec, len(translations))
	for i, t := range translations {
		inputTranslations[i] = reducedTrans.Float().MulVec(t)
	}

	return &PrimitiveCell{
		Cell:         reducedPrimitive,
		Linear:       linear,
		SiteMapping:  siteMapping,
		Translations: inputTranslations,
		Permutations: permutations,
	}, nil
}

// transformationFromTranslations recovers the transformation from the
// primitive cell to the reduced cell: stack size·I and the scaled
// translations column-wise, take the Hermite normal form, and invert
// its leading 3×3 block.
func transformationFromTranslations(translations []mat3.Vec) (mat3.IMat, bool) {
	size := len(translations)
	cols := 3 + size
	stack := intmat.New(3, cols, nil)
	for i := 0; i < 3; i++ {
		stack.Set(i, i, size)
	}
	for j, t := range translations {
		for i := 0; i < 3; i++ {
			stack.Set(i, 3+j, int(math.Round(t[i]*float64(size))))
		}
	}
	h, _ := intmat.HNF(stack)

	var inv mat3.Mat
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			inv[i][j] = float64(h.At(i, j)) / float64(size)
		}
	}
	transMat := inv.Inv().RoundI()
	if math.Abs(transMat.Float().Det()-float64(size)) > crystal.Eps {
		return mat3.IMat{}, false
	}
	return transMat, true
}

// primitiveFromTransformation folds the reduced cell into the
// primitive cell given by transMat. Each orbit representative gets the
// torus-centered average of its translated copies, mapped to the
// primitive basis.
func primitiveFromTransformation(cell crystal.Cell, transMat mat3.IMat, translations []mat3.Vec, permutations []crystal.Permutation) (crystal.Cell, []int) {
	lattice := crystal.FromLinear(transMat).InverseTransformLattice(cell.Lattice)

	n := cell.NumAtoms()
	orbits := crystal.Orbits(n, permutations)
	var representatives []int
	for i := 0; i < n; i++ {
		if orbits[i] == i {
			representatives = append(representatives, i)
		}
	}

	inverses := make([]crystal.Permutation, len(permutations))
	for i, p := range permutations {
		inverses[i] = p.Inverse()
	}

	positions := make([]mat3.Vec, len(representatives))
	species := make([]int, len(representatives))
	for k, rep := range representatives {
		var acc mat3.Vec
		for i, inv := range inverses {
			disp := cell.Positions[inv.Apply(rep)].Add(translations[i]).Sub(cell.Positions[rep]).Center()
			acc = acc.Add(disp)
		}
		avg := cell.Positions[rep].Add(acc.Scale(1 / float64(len(translations))))
		positions[k] = transMat.Float().MulVec(avg)
		species[k] = cell.Species[rep]
	}

	siteMapping := make([]int, n)
	index := make(map[int]int)
	for _, rep := range orbits {
		if _, ok := index[rep]; !ok {
			index[rep] = len(index)
		}
	}
	for i, rep := range orbits {
		siteMapping[i] = index[rep]
	}
	return crystal.NewCell(lattice, positions, species), siteMapping
}
