// Copyright ©2025 The Crystalgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package identify classifies the point group and space group of a set
// of symmetry operations given in a reduced primitive basis. The
// geometric crystal class follows from the rotation-type histogram;
// the arithmetic crystal class from an integer Sylvester conjugation
// onto tabulated representatives; the space-group type from matching a
// Hall-table entry with a mod-1 origin-shift solve.
package identify // import "github.com/crystalgo/spacegroup/identify"
