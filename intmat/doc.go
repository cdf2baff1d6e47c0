// Copyright ©2025 The Crystalgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package intmat implements exact linear algebra over the integers:
// Hermite and Smith normal forms, integer and mod-1 linear systems,
// and the Sylvester-type conjugation systems used for point-group
// matching.
package intmat // import "github.com/crystalgo/spacegroup/intmat"
