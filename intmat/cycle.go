// Copyright ©2025 The Crystalgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package intmat

import "github.com/crystalgo/spacegroup/mat3"

// CycleChecker records the integer transforms visited by an iterative
// lattice reduction so the loop can terminate on the first revisit.
// Reductions oscillate near decision boundaries under floating-point
// noise; a revisited transform means no further progress is possible.
type CycleChecker struct {
	visited map[mat3.IMat]struct{}
}

// NewCycleChecker returns an empty checker.
func NewCycleChecker() *CycleChecker {
	return &CycleChecker{visited: make(map[mat3.IMat]struct{})}
}

// Insert records m and reports whether it had not been seen before.
func (c *CycleChecker) Insert(m mat3.IMat) bool {
	if _, ok := c.visited[m]; ok {
		return false
	}
	c.visited[m] = struct{}{}
	return true
}
