// Copyright ©2025 The Crystalgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package search

import "github.com/crystalgo/spacegroup/crystal"

const (
	maxSymmetrySearchTrials   = 16
	maxToleranceHandlerTrials = 4
)

// IterativeSearch runs the primitive-cell and symmetry searches,
// adjusting the tolerances on failure. It returns the successful
// results together with the actually-used tolerances; after the trial
// budget is exhausted it reports ErrPrimitiveSymmetrySearch.
func IterativeSearch(cell crystal.Cell, symprec float64, angleTolerance crystal.AngleTolerance) (*PrimitiveCell, *Symmetries, float64, crystal.AngleTolerance, error) {
	currentSymprec := symprec
	currentAngle := angleTolerance

	for restart := 0; restart < maxToleranceHandlerTrials; restart++ {
		handler := crystal.NewToleranceHandler(currentSymprec, currentAngle)

		for trial := 0; trial < maxSymmetrySearchTrials; trial++ {
			primitive, err := FindPrimitiveCell(cell, handler.Symprec)
			if err != nil {
				handler.Update(err)
				continue
			}
			symmetries, err := FindSymmetries(primitive.Cell, handler.Symprec, handler.Angle)
			if err != nil {
				handler.Update(err)
				continue
			}
			return primitive, symmetries, handler.Symprec, handler.Angle, nil
		}

		// Restart with a fresh stride from wherever the damped handler
		// ended up.
		currentSymprec = handler.Symprec
		currentAngle = handler.Angle
	}
	return nil, nil, 0, 0, crystal.ErrPrimitiveSymmetrySearch
}

// OperationsInCell lifts the primitive coset representatives into the
// input cell: the operations transformed by the primitive-to-input
// linear map, combined with every pure translation of the input cell.
func OperationsInCell(primitive *PrimitiveCell, primOperations []crystal.Operation) []crystal.Operation {
	inputOperations := crystal.FromLinear(primitive.Linear).TransformOperations(primOperations)
	operations := make([]crystal.Operation, 0, len(primitive.Translations)*len(inputOperations))
	for _, t := range primitive.Translations {
		for _, op := range inputOperations {
			// (E, t₁)·(R, t₂) = (R, t₁ + t₂).
			combined := t.Add(op.Translation)
			for i, e := range combined {
				combined[i] = mod1(e)
			}
			operations = append(operations, crystal.Operation{
				Rotation:    op.Rotation,
				Translation: combined,
			})
		}
	}
	return operations
}

// mod1 reduces like Go's math.Mod, keeping the sign of the argument.
func mod1(e float64) float64 {
	return e - float64(int(e))
}
