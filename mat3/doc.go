// Copyright ©2025 The Crystalgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mat3 provides fixed-size 3-vector and 3×3 matrix arithmetic
// over float64 and int.
//
// The integer variants are exact and are used for lattice
// transformations and rotation parts of symmetry operations, where
// rounding is not acceptable. All values are passed and returned by
// value.
package mat3 // import "github.com/crystalgo/spacegroup/mat3"
