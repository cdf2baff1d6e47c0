// Copyright ©2025 The Crystalgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package data

import (
	"strconv"
	"strings"

	"github.com/crystalgo/spacegroup/mat3"
)

// WyckoffPosition is one Wyckoff position of a Hall setting.
type WyckoffPosition struct {
	// Letter is the Wyckoff letter.
	Letter byte
	// Multiplicity is the number of equivalent sites in the
	// conventional cell.
	Multiplicity int
	// SiteSymmetry is the site-symmetry symbol: oriented for the
	// common settings, and the unoriented point-group symbol for the
	// settings derived from the Hall expansions.
	SiteSymmetry string
	// Coordinates is the shorthand coordinate template of one
	// representative site, e.g. "x,x,0" or "1/4,1/4,1/4".
	Coordinates string
}

// WyckoffPositionsFor returns the Wyckoff positions of the hall number
// with the given multiplicity, most special letters first. The second
// return is false when the catalog has no data for the hall number.
func WyckoffPositionsFor(hallNumber, multiplicity int) ([]WyckoffPosition, bool) {
	all, ok := wyckoffTable[hallNumber]
	if !ok {
		return nil, false
	}
	var out []WyckoffPosition
	for _, w := range all {
		if w.Multiplicity == multiplicity {
			out = append(out, w)
		}
	}
	return out, true
}

// WyckoffSpace is the affine coordinate space of a Wyckoff position:
// the set {Linear·y + Origin | y ∈ R³}.
type WyckoffSpace struct {
	Linear mat3.IMat
	Origin mat3.Vec
}

// ParseWyckoffSpace parses the shorthand coordinate notation:
//
//	<shorthand>   ::= <term>, <term>, <term>
//	<term>        ::= "-"?<factor> ([+-]<factor>)* ([+-]<translation>)?
//	                | "-"?<translation>
//	<factor>      ::= <integer>? <variable>
//	<variable>    ::= "x" | "y" | "z"
//	<translation> ::= <integer> ("/" <integer>)?
//
// Whitespace is ignored. ParseWyckoffSpace panics on malformed
// templates; the catalog is static data.
func ParseWyckoffSpace(coordinates string) WyckoffSpace {
	coordinates = strings.ReplaceAll(coordinates, " ", "")
	terms := strings.Split(coordinates, ",")
	if len(terms) != 3 {
		panic("data: wyckoff template does not have three terms")
	}

	var space WyckoffSpace
	variables := [3]byte{'x', 'y', 'z'}
	for i, term := range terms {
		type signed struct {
			sign  int
			token string
		}
		var tokens []signed
		sign := 1
		var token []byte
		for k := 0; k < len(term); k++ {
			switch c := term[k]; c {
			case '+':
				tokens = append(tokens, signed{sign, string(token)})
				sign = 1
				token = token[:0]
			case '-':
				if len(token) > 0 {
					tokens = append(tokens, signed{sign, string(token)})
					token = token[:0]
				}
				sign = -1
			default:
				token = append(token, c)
			}
		}
		if len(token) > 0 {
			tokens = append(tokens, signed{sign, string(token)})
		}

		for _, tok := range tokens {
			last := tok.token[len(tok.token)-1]
			if last >= '0' && last <= '9' {
				// Translation.
				nums := strings.Split(tok.token, "/")
				v, err := strconv.ParseFloat(nums[0], 64)
				if err != nil {
					panic("data: malformed wyckoff translation")
				}
				if len(nums) == 2 {
					den, err := strconv.ParseFloat(nums[1], 64)
					if err != nil {
						panic("data: malformed wyckoff translation")
					}
					v /= den
				}
				space.Origin[i] += float64(tok.sign) * v
				continue
			}
			// Variable with an optional integer coefficient.
			for j, v := range variables {
				if last != v {
					continue
				}
				coeff := 1
				if len(tok.token) > 1 {
					c, err := strconv.Atoi(tok.token[:len(tok.token)-1])
					if err != nil {
						panic("data: malformed wyckoff factor")
					}
					coeff = c
				}
				space.Linear[i][j] += tok.sign * coeff
			}
		}
	}
	return space
}
