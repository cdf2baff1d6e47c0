// Copyright ©2025 The Crystalgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package standardize builds the standardized primitive and
// conventional cells of an identified space group: canonical basis
// conventions per lattice system, site-symmetry averaging of atomic
// positions, metric-tensor symmetrization with an orthogonal
// alignment rotation, and Wyckoff letter assignment.
package standardize // import "github.com/crystalgo/spacegroup/standardize"
