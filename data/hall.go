// Copyright ©2025 The Crystalgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package data

import (
	"math"
	"strconv"
	"strings"

	"github.com/crystalgo/spacegroup/crystal"
	"github.com/crystalgo/spacegroup/mat3"
)

// maxDenominator is the fixed rational denominator used to
// canonicalize translations for exact comparisons against the table.
const maxDenominator = 12

// HallSymbol is a parsed Hall symbol. See A1.4.2.3 in ITB (2010).
//
// Extended Backus-Naur form for Hall symbols:
//
//	<Hall symbol>    := <L> <N>+ <V>?
//	<L>              := "-"? <lattice symbol>
//	<lattice symbol> := [PABCIRF]
//	<N>              := <nfold> <A>? <T>*
//	<nfold>          := "-"? ("1" | "2" | "3" | "4" | "6")
//	<A>              := [xyz] | "'" | '"' | "=" | "*"
//	<T>              := [abcnuvwd] | [1-6]
//	<V>              := "(" [0-11] [0-11] [0-11] ")"
type HallSymbol struct {
	// Symbol is the Hall symbol string.
	Symbol string
	// Centering is the lattice symbol.
	Centering Centering
	// CenteringTranslations are the nonzero lattice-point translations
	// of the centering.
	CenteringTranslations []mat3.Vec
	// Generators generate the space group modulo pure translations, in
	// the conventional basis.
	Generators []crystal.Operation
}

// ParseHallSymbol parses symbol. It returns ErrHallSymbolParsing when
// the symbol is malformed.
func ParseHallSymbol(symbol string) (HallSymbol, error) {
	tokens := strings.Fields(symbol)
	if len(tokens) < 2 {
		return HallSymbol{}, crystal.ErrHallSymbolParsing
	}

	inversionAtOrigin, centering, ok := parseLattice(tokens[0])
	if !ok {
		return HallSymbol{}, crystal.ErrHallSymbolParsing
	}

	type rotTrans struct {
		rotation    mat3.IMat
		translation mat3.Vec
	}
	var ns []rotTrans
	var originShift mat3.Vec
	rotationCount := 0
	prevNfold := ""
	prevAxis := ""

	for cursor := 1; cursor < len(tokens); cursor++ {
		if tokens[cursor][0] == '(' {
			shift, ok := parseOriginShift(tokens[cursor:])
			if !ok {
				return HallSymbol{}, crystal.ErrHallSymbolParsing
			}
			originShift = shift
			break
		}
		// The default axis of an operator depends on its position and
		// on the preceding operator, so both are carried along.
		rotation, translation, nfold, axis, ok := parseOperation(tokens[cursor], rotationCount, prevNfold, prevAxis)
		if !ok {
			return HallSymbol{}, crystal.ErrHallSymbolParsing
		}
		ns = append(ns, rotTrans{rotation, translation})
		prevNfold = nfold
		prevAxis = axis
		rotationCount++
	}

	var centeringTranslations []mat3.Vec
	for _, t := range centering.LatticePoints() {
		if t.Norm() > crystal.Eps {
			centeringTranslations = append(centeringTranslations, t)
		}
	}

	// Change of basis by (I, v): (R, τ) ↦ (R, τ + v - Rv).
	var generators []crystal.Operation
	if inversionAtOrigin {
		generators = append(generators, crystal.Operation{
			Rotation:    mat3.IEye().Neg(),
			Translation: originShift.Scale(2).Wrap(),
		})
	}
	for _, n := range ns {
		translation := n.translation.Add(originShift).Sub(n.rotation.MulVecF(originShift)).Wrap()
		generators = append(generators, crystal.Operation{
			Rotation:    n.rotation,
			Translation: translation,
		})
	}

	return HallSymbol{
		Symbol:                symbol,
		Centering:             centering,
		CenteringTranslations: centeringTranslations,
		Generators:            generators,
	}, nil
}

// HallSymbolFor parses the Hall symbol of the table entry with the
// given hall number.
func HallSymbolFor(hallNumber int) (HallSymbol, bool) {
	entry, ok := HallEntryFor(hallNumber)
	if !ok {
		return HallSymbol{}, false
	}
	hs, err := ParseHallSymbol(entry.HallSymbol)
	if err != nil {
		return HallSymbol{}, false
	}
	return hs, true
}

// Traverse returns the coset representatives of the space group with
// respect to its conventional translation subgroup, breadth-first from
// the identity with translations canonicalized to twelfths in [0, 1)³.
// The order is the deterministic BFS insertion order.
func (h HallSymbol) Traverse() []crystal.Operation {
	type state struct {
		rotation    mat3.IMat
		translation mat3.Vec
	}
	queue := []state{{mat3.IEye(), mat3.Vec{}}}
	seen := make(map[mat3.IMat]struct{})
	var operations []crystal.Operation

	for len(queue) > 0 {
		lhs := queue[0]
		queue = queue[1:]
		if _, ok := seen[lhs.rotation]; ok {
			continue
		}
		seen[lhs.rotation] = struct{}{}
		operations = append(operations, crystal.Operation{
			Rotation:    lhs.rotation,
			Translation: lhs.translation,
		})

		for _, g := range h.Generators {
			rotation := lhs.rotation.Mul(g.Rotation)
			if _, ok := seen[rotation]; ok {
				continue
			}
			translation := lhs.rotation.MulVecF(g.Translation).Add(lhs.translation)
			queue = append(queue, state{rotation, snapTwelfths(translation)})
		}
	}
	return operations
}

// PrimitiveGenerators returns the generators transformed into the
// primitive basis of the centering.
func (h HallSymbol) PrimitiveGenerators() []crystal.Operation {
	return crystal.FromLinear(h.Centering.Linear()).InverseTransformOperations(h.Generators)
}

// PrimitiveTraverse returns the coset representatives with respect to
// the primitive translation subgroup, with translations wrapped into
// [0, 1)³ at denominator 12.
func (h HallSymbol) PrimitiveTraverse() []crystal.Operation {
	tr := crystal.FromLinear(h.Centering.Linear())
	conventional := h.Traverse()
	operations := make([]crystal.Operation, 0, len(conventional))
	for _, op := range conventional {
		prim, ok := tr.InverseTransformOperation(op)
		if !ok {
			panic("data: centering transform rejected a table operation")
		}
		prim.Translation = snapTwelfths(prim.Translation)
		operations = append(operations, prim)
	}
	return operations
}

// snapTwelfths wraps each component into [0, 1) on the grid of
// twelfths.
func snapTwelfths(v mat3.Vec) mat3.Vec {
	for i, e := range v {
		n := int(math.Round(e*maxDenominator)) % maxDenominator
		if n < 0 {
			n += maxDenominator
		}
		v[i] = float64(n) / maxDenominator
	}
	return v
}

func parseLattice(token string) (inversion bool, centering Centering, ok bool) {
	pos := 0
	if token[pos] == '-' {
		inversion = true
		pos++
	}
	if pos >= len(token) {
		return false, 0, false
	}
	switch token[pos] {
	case 'P', 'A', 'B', 'C', 'I', 'R', 'F':
		return inversion, Centering(token[pos]), true
	}
	return false, 0, false
}

func parseOriginShift(tokens []string) (mat3.Vec, bool) {
	var fields []string
	for _, tok := range tokens {
		tok = strings.TrimPrefix(tok, "(")
		tok = strings.TrimSuffix(tok, ")")
		if tok != "" {
			fields = append(fields, tok)
		}
	}
	if len(fields) != 3 {
		return mat3.Vec{}, false
	}
	var shift mat3.Vec
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return mat3.Vec{}, false
		}
		shift[i] = v / maxDenominator
	}
	return shift, true
}

func parseOperation(token string, count int, prevNfold, prevAxis string) (rotation mat3.IMat, translation mat3.Vec, nfold, axis string, ok bool) {
	pos := 0

	improper := false
	if token[pos] == '-' {
		improper = true
		pos++
	}
	if pos >= len(token) {
		return mat3.IMat{}, mat3.Vec{}, "", "", false
	}

	nfold = string(token[pos])
	pos++

	if pos < len(token) {
		switch token[pos] {
		case '\'':
			axis += "p"
			pos++
		case '"', '=':
			axis += "pp"
			pos++
		}
	}
	if pos < len(token) {
		switch c := token[pos]; c {
		case 'x', 'y', 'z', '*':
			axis += string(c)
			pos++
		}
	}
	if (axis == "p" || axis == "pp") &&
		(prevAxis == "x" || prevAxis == "y" || prevAxis == "z") {
		// See Table A1.4.2.5 of ITB.
		axis += prevAxis
	}

	if nfold == "1" {
		axis += "z"
	}

	// Default axes, A1.4.2.3.1 of ITB.
	if axis == "" || axis == "p" || axis == "pp" {
		switch count {
		case 0:
			// Axis direction of c.
			axis += "z"
		case 1:
			switch prevNfold {
			case "2", "4":
				// Axis direction of a.
				axis += "x"
			case "3", "6":
				// Axis direction of a-b.
				axis += "pz"
			default:
				return mat3.IMat{}, mat3.Vec{}, "", "", false
			}
		case 2:
			if nfold != "3" {
				return mat3.IMat{}, mat3.Vec{}, "", "", false
			}
			// Axis direction of a+b+c.
			axis += "*"
		default:
			return mat3.IMat{}, mat3.Vec{}, "", "", false
		}
	}

	rotation, ok = rotationMatrixFor(nfold + axis)
	if !ok {
		return mat3.IMat{}, mat3.Vec{}, "", "", false
	}
	if improper {
		rotation = rotation.Neg()
	}

	for pos < len(token) {
		c := token[pos]
		switch {
		case c >= '1' && c <= '6':
			// Subscript translation, always along the z axis.
			n, _ := strconv.ParseFloat(string(c), 64)
			fold, _ := strconv.ParseFloat(nfold, 64)
			translation = mat3.Vec{0, 0, n / fold}
		case strings.ContainsRune("abcnuvwd", rune(c)):
			t, tok := translationVectorFor(c)
			if !tok {
				return mat3.IMat{}, mat3.Vec{}, "", "", false
			}
			translation = translation.Add(t)
		default:
			return mat3.IMat{}, mat3.Vec{}, "", "", false
		}
		pos++
	}

	return rotation, translation, nfold, axis, true
}

func rotationMatrixFor(axis string) (mat3.IMat, bool) {
	switch axis {
	case "1x", "1y", "1z":
		return mat3.IEye(), true
	case "2x":
		return mat3.IMat{{1, 0, 0}, {0, -1, 0}, {0, 0, -1}}, true
	case "2y":
		return mat3.IMat{{-1, 0, 0}, {0, 1, 0}, {0, 0, -1}}, true
	case "2z":
		return mat3.IMat{{-1, 0, 0}, {0, -1, 0}, {0, 0, 1}}, true
	case "3x":
		return mat3.IMat{{1, 0, 0}, {0, 0, -1}, {0, 1, -1}}, true
	case "3y":
		return mat3.IMat{{-1, 0, 1}, {0, 1, 0}, {-1, 0, 0}}, true
	case "3z":
		return mat3.IMat{{0, -1, 0}, {1, -1, 0}, {0, 0, 1}}, true
	case "4x":
		return mat3.IMat{{1, 0, 0}, {0, 0, -1}, {0, 1, 0}}, true
	case "4y":
		return mat3.IMat{{0, 0, 1}, {0, 1, 0}, {-1, 0, 0}}, true
	case "4z":
		return mat3.IMat{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}}, true
	case "6x":
		return mat3.IMat{{1, 0, 0}, {0, 1, -1}, {0, 1, 0}}, true
	case "6y":
		return mat3.IMat{{0, 0, 1}, {0, 1, 0}, {-1, 0, 1}}, true
	case "6z":
		return mat3.IMat{{1, -1, 0}, {1, 0, 0}, {0, 0, 1}}, true
	case "2px":
		return mat3.IMat{{-1, 0, 0}, {0, 0, -1}, {0, -1, 0}}, true
	case "2ppx":
		return mat3.IMat{{-1, 0, 0}, {0, 0, 1}, {0, 1, 0}}, true
	case "2py":
		return mat3.IMat{{0, 0, -1}, {0, -1, 0}, {-1, 0, 0}}, true
	case "2ppy":
		return mat3.IMat{{0, 0, 1}, {0, -1, 0}, {1, 0, 0}}, true
	case "2pz":
		return mat3.IMat{{0, -1, 0}, {-1, 0, 0}, {0, 0, -1}}, true
	case "2ppz":
		return mat3.IMat{{0, 1, 0}, {1, 0, 0}, {0, 0, -1}}, true
	case "3*":
		return mat3.IMat{{0, 0, 1}, {1, 0, 0}, {0, 1, 0}}, true
	}
	return mat3.IMat{}, false
}

func translationVectorFor(symbol byte) (mat3.Vec, bool) {
	switch symbol {
	case 'a':
		return mat3.Vec{0.5, 0, 0}, true
	case 'b':
		return mat3.Vec{0, 0.5, 0}, true
	case 'c':
		return mat3.Vec{0, 0, 0.5}, true
	case 'n':
		return mat3.Vec{0.5, 0.5, 0.5}, true
	case 'u':
		return mat3.Vec{0.25, 0, 0}, true
	case 'v':
		return mat3.Vec{0, 0.25, 0}, true
	case 'w':
		return mat3.Vec{0, 0, 0.25}, true
	case 'd':
		return mat3.Vec{0.25, 0.25, 0.25}, true
	}
	return mat3.Vec{}, false
}
