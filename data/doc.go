// Copyright ©2025 The Crystalgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package data holds the static crystallographic tables and the
// Hall-symbol machinery: the 530 Hall settings, the 73 arithmetic
// crystal classes, centering data, representative point groups, the
// Wyckoff position catalog and the iteration orders of the supported
// settings.
//
// All tables are immutable process-wide state; consumers hold shared
// references for the process lifetime.
package data // import "github.com/crystalgo/spacegroup/data"
