// Copyright ©2025 The Crystalgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package search finds the translational and rotational symmetry of a
// decorated cell: the pure translations and primitive cell, the
// Bravais group of the reduced lattice, and the coset representatives
// of the space group, all under a Cartesian distance tolerance. The
// iterative driver retries the search with adjusted tolerances when a
// stage reports that the tolerance was too small or too large.
package search // import "github.com/crystalgo/spacegroup/search"
