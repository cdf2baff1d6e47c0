// Copyright ©2025 The Crystalgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crystal

import (
	"errors"
	"math"
)

// Eps is the absolute tolerance for exact comparisons of derived
// quantities such as determinants and canonical translations.
const Eps = 1e-8

// AngleTolerance is the tolerance in radians used when comparing basis
// vector angles during the Bravais group search. The DefaultAngleTolerance
// sentinel selects a length-normalized criterion derived from symprec.
type AngleTolerance float64

// DefaultAngleTolerance derives the angle criterion from symprec.
const DefaultAngleTolerance AngleTolerance = -1

// IsDefault reports whether a selects the symprec-derived criterion.
func (a AngleTolerance) IsDefault() bool { return a < 0 }

const initialStride = 2.0

// ToleranceHandler adjusts (symprec, angle tolerance) between retries
// of the symmetry search. Failures that signal a too-small tolerance
// widen both by the stride; every other failure shrinks them. When the
// failure kind alternates, the stride is damped to its square root.
type ToleranceHandler struct {
	Symprec float64
	Angle   AngleTolerance

	stride  float64
	prevErr error
}

// NewToleranceHandler returns a handler starting from the given
// tolerances with the initial stride.
func NewToleranceHandler(symprec float64, angle AngleTolerance) *ToleranceHandler {
	return &ToleranceHandler{Symprec: symprec, Angle: angle, stride: initialStride}
}

// Update adjusts the tolerances in response to err.
func (h *ToleranceHandler) Update(err error) {
	if h.prevErr != nil && !errors.Is(err, h.prevErr) {
		h.stride = math.Sqrt(h.stride)
	}
	h.prevErr = err

	if errors.Is(err, ErrTooSmallTolerance) {
		h.Symprec *= h.stride
		if !h.Angle.IsDefault() {
			h.Angle = AngleTolerance(float64(h.Angle) * h.stride)
		}
	} else {
		h.Symprec /= h.stride
		if !h.Angle.IsDefault() {
			h.Angle = AngleTolerance(float64(h.Angle) / h.stride)
		}
	}
}
