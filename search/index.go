// Copyright ©2025 The Crystalgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package search

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/gonum/spatial/vptree"

	"github.com/crystalgo/spacegroup/crystal"
	"github.com/crystalgo/spacegroup/mat3"
)

// PeriodicTree answers nearest-site queries for fractional positions
// on the torus of a Minkowski-reduced cell. Sites are replicated over
// the 27 neighboring cells and indexed by a vantage-point tree over
// Cartesian coordinates; for a reduced cell the replication covers
// every ball of radius up to half the shortest basis vector, so the
// nearest replica is the nearest site on the torus.
type PeriodicTree struct {
	numSites int
	lattice  crystal.Lattice
	tree     *vptree.Tree
	symprec  float64
}

// sitePoint is a replicated site in Cartesian coordinates.
type sitePoint struct {
	c     mat3.Vec
	index int
}

// Distance implements vptree.Comparable.
func (p sitePoint) Distance(c vptree.Comparable) float64 {
	q := c.(sitePoint)
	dx := p.c[0] - q.c[0]
	dy := p.c[1] - q.c[1]
	dz := p.c[2] - q.c[2]
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// tiltRotation is a small fixed rotation applied to the basis so that
// no lattice direction stays axis-aligned, which would produce
// degenerate ties in the tree. Distances are rotation-invariant, so
// the tolerance analysis is unaffected.
func tiltRotation() mat3.Mat {
	v := r3.Vec{X: 0.01, Y: 0.02, Z: 0.03}
	alpha := r3.Norm(v)
	rot := r3.NewRotation(alpha, v)
	ex := rot.Rotate(r3.Vec{X: 1})
	ey := rot.Rotate(r3.Vec{Y: 1})
	ez := rot.Rotate(r3.Vec{Z: 1})
	return mat3.FromCols(
		mat3.Vec{ex.X, ex.Y, ex.Z},
		mat3.Vec{ey.X, ey.Y, ey.Z},
		mat3.Vec{ez.X, ez.Y, ez.Z},
	)
}

// NewPeriodicTree builds the index for the given Minkowski-reduced
// cell and tolerance.
func NewPeriodicTree(reducedCell crystal.Cell, symprec float64) *PeriodicTree {
	lattice := reducedCell.Lattice.Rotate(tiltRotation())

	// Replicas further than the padding outside the unit cube cannot
	// be the nearest match for any wrapped query.
	bbt := lattice.Basis.Mul(lattice.Basis.T())
	padding := 2 * symprec / math.Sqrt(3*bbt.Trace())

	var points []vptree.Comparable
	for o0 := -1; o0 <= 1; o0++ {
		for o1 := -1; o1 <= 1; o1++ {
			for o2 := -1; o2 <= 1; o2++ {
				offset := mat3.Vec{float64(o0), float64(o1), float64(o2)}
				for index, position := range reducedCell.Positions {
					p := position.Wrap().Add(offset)
					if p[0] < -padding || p[0] > 1+padding ||
						p[1] < -padding || p[1] > 1+padding ||
						p[2] < -padding || p[2] > 1+padding {
						continue
					}
					c := lattice.Cartesian(p)
					points = append(points, sitePoint{c: c, index: index})
				}
			}
		}
	}

	tree, err := vptree.New(points, 5, rand.NewSource(1))
	if err != nil {
		panic("search: vp-tree construction failed")
	}
	return &PeriodicTree{
		numSites: reducedCell.NumAtoms(),
		lattice:  lattice,
		tree:     tree,
		symprec:  symprec,
	}
}

// Nearest returns the site within symprec of the fractional position,
// if any, together with its Cartesian distance.
func (t *PeriodicTree) Nearest(position mat3.Vec) (index int, distance float64, ok bool) {
	c := t.lattice.Cartesian(position.Wrap())
	got, dist := t.tree.Nearest(sitePoint{c: c})
	if got == nil || dist > t.symprec {
		return 0, 0, false
	}
	return got.(sitePoint).index, dist, true
}
