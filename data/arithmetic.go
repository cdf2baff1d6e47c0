// Copyright ©2025 The Crystalgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package data

// ArithmeticEntry describes one of the 73 arithmetic crystal classes:
// a geometric crystal class paired with a Bravais class.
type ArithmeticEntry struct {
	// Number is the arithmetic crystal class number, 1 through 73.
	Number int
	// Symbol is the arithmetic crystal class symbol.
	Symbol string
	// Class is the geometric crystal class.
	Class GeometricCrystalClass
	// Bravais is the Bravais class.
	Bravais BravaisClass
}

// LatticeSystem returns the lattice system of the entry.
func (e ArithmeticEntry) LatticeSystem() LatticeSystem {
	return e.Bravais.System()
}

// ArithmeticEntryFor returns the entry with the given arithmetic
// number.
func ArithmeticEntryFor(number int) (ArithmeticEntry, bool) {
	if number < 1 || number > len(arithmeticTable) {
		return ArithmeticEntry{}, false
	}
	return arithmeticTable[number-1], true
}

// ArithmeticEntries returns all 73 entries in IUCr order.
func ArithmeticEntries() []ArithmeticEntry {
	return arithmeticTable[:]
}

// Ordered as https://dictionary.iucr.org/Arithmetic_crystal_class.
var arithmeticTable = [73]ArithmeticEntry{
	// Crystal system: triclinic
	{1, "1P", ClassC1, BravaisAP},
	{2, "-1P", ClassCi, BravaisAP},
	// Crystal system: monoclinic
	{3, "2P", ClassC2, BravaisMP},
	{4, "2C", ClassC2, BravaisMC},
	{5, "mP", ClassC1h, BravaisMP},
	{6, "mC", ClassC1h, BravaisMC},
	{7, "2/mP", ClassC2h, BravaisMP},
	{8, "2/mC", ClassC2h, BravaisMC},
	// Crystal system: orthorhombic
	{9, "222P", ClassD2, BravaisOP},
	{10, "222C", ClassD2, BravaisOS},
	{11, "222F", ClassD2, BravaisOF},
	{12, "222I", ClassD2, BravaisOI},
	{13, "mm2P", ClassC2v, BravaisOP},
	{14, "mm2C", ClassC2v, BravaisOS},
	{15, "2mmC", ClassC2v, BravaisOS},
	{16, "mm2F", ClassC2v, BravaisOF},
	{17, "mm2I", ClassC2v, BravaisOI},
	{18, "mmmP", ClassD2h, BravaisOP},
	{19, "mmmC", ClassD2h, BravaisOS},
	{20, "mmmF", ClassD2h, BravaisOF},
	{21, "mmmI", ClassD2h, BravaisOI},
	// Crystal system: tetragonal
	{22, "4P", ClassC4, BravaisTP},
	{23, "4I", ClassC4, BravaisTI},
	{24, "-4P", ClassS4, BravaisTP},
	{25, "-4I", ClassS4, BravaisTI},
	{26, "4/mP", ClassC4h, BravaisTP},
	{27, "4/mI", ClassC4h, BravaisTI},
	{28, "422P", ClassD4, BravaisTP},
	{29, "422I", ClassD4, BravaisTI},
	{30, "4mmP", ClassC4v, BravaisTP},
	{31, "4mmI", ClassC4v, BravaisTI},
	{32, "-42mP", ClassD2d, BravaisTP},
	{33, "-4m2P", ClassD2d, BravaisTP},
	{34, "-4m2I", ClassD2d, BravaisTI},
	{35, "-42mI", ClassD2d, BravaisTI},
	{36, "4/mmmP", ClassD4h, BravaisTP},
	{37, "4/mmmI", ClassD4h, BravaisTI},
	// Crystal system: trigonal
	{38, "3P", ClassC3, BravaisHP},
	{39, "3R", ClassC3, BravaisHR},
	{40, "-3P", ClassC3i, BravaisHP},
	{41, "-3R", ClassC3i, BravaisHR},
	{42, "312P", ClassD3, BravaisHP},
	{43, "321P", ClassD3, BravaisHP},
	{44, "32R", ClassD3, BravaisHR},
	{45, "3m1P", ClassC3v, BravaisHP},
	{46, "31mP", ClassC3v, BravaisHP},
	{47, "3mR", ClassC3v, BravaisHR},
	{48, "-31mP", ClassD3d, BravaisHP},
	{49, "-3m1P", ClassD3d, BravaisHP},
	{50, "-3mR", ClassD3d, BravaisHR},
	// Crystal system: hexagonal
	{51, "6P", ClassC6, BravaisHP},
	{52, "-6P", ClassC3h, BravaisHP},
	{53, "6/mP", ClassC6h, BravaisHP},
	{54, "622P", ClassD6, BravaisHP},
	{55, "6mmP", ClassC6v, BravaisHP},
	{56, "-62mP", ClassD3h, BravaisHP},
	{57, "-6m2P", ClassD3h, BravaisHP},
	{58, "6/mmmP", ClassD6h, BravaisHP},
	// Crystal system: cubic
	{59, "23P", ClassT, BravaisCP},
	{60, "23F", ClassT, BravaisCF},
	{61, "23I", ClassT, BravaisCI},
	{62, "m-3P", ClassTh, BravaisCP},
	{63, "m-3F", ClassTh, BravaisCF},
	{64, "m-3I", ClassTh, BravaisCI},
	{65, "432P", ClassO, BravaisCP},
	{66, "432F", ClassO, BravaisCF},
	{67, "432I", ClassO, BravaisCI},
	{68, "-43mP", ClassTd, BravaisCP},
	{69, "-43mF", ClassTd, BravaisCF},
	{70, "-43mI", ClassTd, BravaisCI},
	{71, "m-3mP", ClassOh, BravaisCP},
	{72, "m-3mF", ClassOh, BravaisCF},
	{73, "m-3mI", ClassOh, BravaisCI},
}
