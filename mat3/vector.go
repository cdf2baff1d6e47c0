// Copyright ©2025 The Crystalgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat3

import "math"

// Vec is a 3-vector of float64.
type Vec [3]float64

// IVec is a 3-vector of int.
type IVec [3]int

// Add returns the vector sum of v and w.
func (v Vec) Add(w Vec) Vec {
	v[0] += w[0]
	v[1] += w[1]
	v[2] += w[2]
	return v
}

// Sub returns the vector sum of v and -w.
func (v Vec) Sub(w Vec) Vec {
	v[0] -= w[0]
	v[1] -= w[1]
	v[2] -= w[2]
	return v
}

// Scale returns the vector v scaled by f.
func (v Vec) Scale(f float64) Vec {
	v[0] *= f
	v[1] *= f
	v[2] *= f
	return v
}

// Neg returns -v.
func (v Vec) Neg() Vec {
	return Vec{-v[0], -v[1], -v[2]}
}

// Dot returns the dot product of v and w.
func (v Vec) Dot(w Vec) float64 {
	return v[0]*w[0] + v[1]*w[1] + v[2]*w[2]
}

// Norm returns the Euclidean norm of v.
func (v Vec) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// NormSquared returns the squared Euclidean norm of v.
func (v Vec) NormSquared() float64 {
	return v.Dot(v)
}

// Wrap returns v with each component wrapped into [0, 1).
func (v Vec) Wrap() Vec {
	for i, e := range v {
		v[i] = e - math.Floor(e)
	}
	return v
}

// Center returns v with each component shifted by an integer into the
// nearest-to-zero representative, in [-0.5, 0.5].
func (v Vec) Center() Vec {
	for i, e := range v {
		v[i] = e - math.Round(e)
	}
	return v
}

// RoundI returns v with each component rounded to the nearest int.
func (v Vec) RoundI() IVec {
	return IVec{
		int(math.Round(v[0])),
		int(math.Round(v[1])),
		int(math.Round(v[2])),
	}
}

// MaxAbs returns the largest absolute component of v.
func (v Vec) MaxAbs() float64 {
	m := math.Abs(v[0])
	if a := math.Abs(v[1]); a > m {
		m = a
	}
	if a := math.Abs(v[2]); a > m {
		m = a
	}
	return m
}

// Angle returns the angle between v and w in radians.
func (v Vec) Angle(w Vec) float64 {
	c := v.Dot(w) / (v.Norm() * w.Norm())
	switch {
	case c > 1:
		c = 1
	case c < -1:
		c = -1
	}
	return math.Acos(c)
}

// Float returns v converted to float64 components.
func (v IVec) Float() Vec {
	return Vec{float64(v[0]), float64(v[1]), float64(v[2])}
}

// Add returns the vector sum of v and w.
func (v IVec) Add(w IVec) IVec {
	v[0] += w[0]
	v[1] += w[1]
	v[2] += w[2]
	return v
}

// Neg returns -v.
func (v IVec) Neg() IVec {
	return IVec{-v[0], -v[1], -v[2]}
}
