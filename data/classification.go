// Copyright ©2025 The Crystalgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package data

// GeometricCrystalClass enumerates the 32 crystallographic point
// groups as abstract groups with their action on R³, cf. Table
// 3.2.3.2 of ITA (6th).
type GeometricCrystalClass int

const (
	// Triclinic
	ClassC1 GeometricCrystalClass = iota + 1 // 1
	ClassCi                                  // -1
	// Monoclinic
	ClassC2  // 2
	ClassC1h // m
	ClassC2h // 2/m
	// Orthorhombic
	ClassD2  // 222
	ClassC2v // mm2
	ClassD2h // mmm
	// Tetragonal
	ClassC4  // 4
	ClassS4  // -4
	ClassC4h // 4/m
	ClassD4  // 422
	ClassC4v // 4mm
	ClassD2d // -42m
	ClassD4h // 4/mmm
	// Trigonal
	ClassC3  // 3
	ClassC3i // -3
	ClassD3  // 32
	ClassC3v // 3m
	ClassD3d // -3m
	// Hexagonal
	ClassC6  // 6
	ClassC3h // -6
	ClassC6h // 6/m
	ClassD6  // 622
	ClassC6v // 6mm
	ClassD3h // -6m2
	ClassD6h // 6/mmm
	// Cubic
	ClassT  // 23
	ClassTh // m-3
	ClassO  // 432
	ClassTd // -43m
	ClassOh // m-3m
)

var classSymbols = [...]string{
	ClassC1: "1", ClassCi: "-1",
	ClassC2: "2", ClassC1h: "m", ClassC2h: "2/m",
	ClassD2: "222", ClassC2v: "mm2", ClassD2h: "mmm",
	ClassC4: "4", ClassS4: "-4", ClassC4h: "4/m",
	ClassD4: "422", ClassC4v: "4mm", ClassD2d: "-42m", ClassD4h: "4/mmm",
	ClassC3: "3", ClassC3i: "-3", ClassD3: "32", ClassC3v: "3m", ClassD3d: "-3m",
	ClassC6: "6", ClassC3h: "-6", ClassC6h: "6/m",
	ClassD6: "622", ClassC6v: "6mm", ClassD3h: "-6m2", ClassD6h: "6/mmm",
	ClassT: "23", ClassTh: "m-3", ClassO: "432", ClassTd: "-43m", ClassOh: "m-3m",
}

func (c GeometricCrystalClass) String() string { return classSymbols[c] }

// CrystalSystem enumerates the seven crystal systems.
type CrystalSystem int

const (
	Triclinic CrystalSystem = iota + 1
	Monoclinic
	Orthorhombic
	Tetragonal
	Trigonal
	Hexagonal
	Cubic
)

var crystalSystemNames = [...]string{
	Triclinic: "Triclinic", Monoclinic: "Monoclinic", Orthorhombic: "Orthorhombic",
	Tetragonal: "Tetragonal", Trigonal: "Trigonal", Hexagonal: "Hexagonal", Cubic: "Cubic",
}

func (s CrystalSystem) String() string { return crystalSystemNames[s] }

// System returns the crystal system of the geometric crystal class.
func (c GeometricCrystalClass) System() CrystalSystem {
	switch c {
	case ClassC1, ClassCi:
		return Triclinic
	case ClassC2, ClassC1h, ClassC2h:
		return Monoclinic
	case ClassD2, ClassC2v, ClassD2h:
		return Orthorhombic
	case ClassC4, ClassS4, ClassC4h, ClassD4, ClassC4v, ClassD2d, ClassD4h:
		return Tetragonal
	case ClassC3, ClassC3i, ClassD3, ClassC3v, ClassD3d:
		return Trigonal
	case ClassC6, ClassC3h, ClassC6h, ClassD6, ClassC6v, ClassD3h, ClassD6h:
		return Hexagonal
	case ClassT, ClassTh, ClassO, ClassTd, ClassOh:
		return Cubic
	}
	panic("data: unknown geometric crystal class")
}

// BravaisClass enumerates the 14 Bravais types of lattices.
type BravaisClass int

const (
	BravaisAP BravaisClass = iota + 1 // aP
	BravaisMP                         // mP
	BravaisMC                         // mC
	BravaisOP                         // oP
	BravaisOS                         // oS
	BravaisOF                         // oF
	BravaisOI                         // oI
	BravaisTP                         // tP
	BravaisTI                         // tI
	BravaisHR                         // hR
	BravaisHP                         // hP
	BravaisCP                         // cP
	BravaisCF                         // cF
	BravaisCI                         // cI
)

var bravaisNames = [...]string{
	BravaisAP: "aP", BravaisMP: "mP", BravaisMC: "mC",
	BravaisOP: "oP", BravaisOS: "oS", BravaisOF: "oF", BravaisOI: "oI",
	BravaisTP: "tP", BravaisTI: "tI", BravaisHR: "hR", BravaisHP: "hP",
	BravaisCP: "cP", BravaisCF: "cF", BravaisCI: "cI",
}

func (b BravaisClass) String() string { return bravaisNames[b] }

// LatticeSystem enumerates the seven lattice systems (holohedries).
type LatticeSystem int

const (
	LatticeTriclinic    LatticeSystem = iota + 1 // -1
	LatticeMonoclinic                            // 2/m
	LatticeOrthorhombic                          // mmm
	LatticeTetragonal                            // 4/mmm
	LatticeRhombohedral                          // -3m
	LatticeHexagonal                             // 6/mmm
	LatticeCubic                                 // m-3m
)

// System returns the lattice system of the Bravais class.
func (b BravaisClass) System() LatticeSystem {
	switch b {
	case BravaisAP:
		return LatticeTriclinic
	case BravaisMP, BravaisMC:
		return LatticeMonoclinic
	case BravaisOP, BravaisOS, BravaisOF, BravaisOI:
		return LatticeOrthorhombic
	case BravaisTP, BravaisTI:
		return LatticeTetragonal
	case BravaisHR:
		return LatticeRhombohedral
	case BravaisHP:
		return LatticeHexagonal
	case BravaisCP, BravaisCF, BravaisCI:
		return LatticeCubic
	}
	panic("data: unknown bravais class")
}
