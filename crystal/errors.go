// Copyright ©2025 The Crystalgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crystal

import "errors"

// The error values reported by the symmetry search pipeline. The
// tolerance handler inspects these to decide whether to widen or
// shrink the tolerances before retrying.
var (
	ErrMinkowskiReduction      = errors.New("crystal: minkowski reduction failed")
	ErrNiggliReduction         = errors.New("crystal: niggli reduction failed")
	ErrDelaunayReduction       = errors.New("crystal: delaunay reduction failed")
	ErrTooSmallTolerance       = errors.New("crystal: tolerance too small")
	ErrTooLargeTolerance       = errors.New("crystal: tolerance too large")
	ErrPrimitiveCell           = errors.New("crystal: primitive cell search failed")
	ErrPrimitiveSymmetrySearch = errors.New("crystal: primitive symmetry search failed")
	ErrBravaisGroupSearch      = errors.New("crystal: bravais group search failed")
	ErrGeometricCrystalClass   = errors.New("crystal: geometric crystal class identification failed")
	ErrArithmeticCrystalClass  = errors.New("crystal: arithmetic crystal class identification failed")
	ErrSpaceGroupType          = errors.New("crystal: space group type identification failed")
	ErrStandardization         = errors.New("crystal: standardization failed")
	ErrWyckoffPosition         = errors.New("crystal: wyckoff position assignment failed")
	ErrHallSymbolParsing       = errors.New("crystal: hall symbol parsing failed")
)
