// Copyright ©2025 The Crystalgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reduce implements Minkowski, Niggli and Delaunay lattice
// reduction. Each reduction takes a column-wise basis and returns the
// reduced basis together with the accumulated integer unimodular
// transform U satisfying B·U = B′. The iterative loops memoize visited
// transforms to terminate under floating-point noise.
package reduce // import "github.com/crystalgo/spacegroup/reduce"
