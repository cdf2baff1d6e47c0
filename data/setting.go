// Copyright ©2025 The Crystalgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package data

// Setting selects the preferred space-group settings and the order in
// which Hall entries are tried during identification.
//
// The zero value is Spglib, which iterates all 530 settings in table
// order. Standard tries one preferred entry per ITA number: unique
// axis b with cell choice 1 for monoclinic, the abc setting for
// orthorhombic, origin choice 2 where two origins exist, and
// hexagonal axes for rhombohedral groups. A positive value n selects
// the single Hall number n.
type Setting int

const (
	// Spglib iterates hall numbers 1 through 530 in order.
	Spglib Setting = 0
	// Standard tries the preferred setting of each ITA number.
	Standard Setting = -1
)

// HallNumberSetting pins identification to the single hall number n.
func HallNumberSetting(n int) Setting {
	if n < 1 || n > len(hallTable) {
		panic("data: hall number out of range")
	}
	return Setting(n)
}

// HallNumbers returns the hall numbers to try, in order.
func (s Setting) HallNumbers() []int {
	switch {
	case s > 0:
		return []int{int(s)}
	case s == Spglib:
		ns := make([]int, len(hallTable))
		for i := range ns {
			ns[i] = i + 1
		}
		return ns
	}
	return standardHallNumbers()
}

// standardHallNumbers returns one preferred hall number per ITA
// number, chosen by setting tag.
func standardHallNumbers() []int {
	chosen := make(map[int]int)
	var order []int
	for _, e := range hallTable {
		best, ok := chosen[e.Number]
		if !ok {
			chosen[e.Number] = e.HallNumber
			order = append(order, e.Number)
			continue
		}
		if settingPreference(e) > settingPreference(hallTable[best-1]) {
			chosen[e.Number] = e.HallNumber
		}
	}
	ns := make([]int, 0, len(order))
	for _, number := range order {
		ns = append(ns, chosen[number])
	}
	return ns
}

// settingPreference ranks an entry's setting tag: origin choice 2 and
// hexagonal axes win over their alternatives; otherwise the first
// table entry of the group (unique axis b, cell choice 1, or setting
// abc) is already preferred.
func settingPreference(e HallEntry) int {
	switch e.Setting {
	case "2", "2abc", "h":
		return 2
	case "b1", "abc", "b", "":
		return 1
	}
	return 0
}
