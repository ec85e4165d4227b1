// Copyright (c) 2026, The Solar System Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package orbit

//go:generate core generate

import (
	"cogentcore.org/core/math32"
)

// RotationModes are the ways the rotation rates of a body
// are turned into its rotation each frame.
type RotationModes int32 //enums:enum -transform lower -accept-lower

const (
	// Set sets the rotation to the rates themselves every frame,
	// so the body holds a fixed orientation.
	Set RotationModes = iota

	// Accumulate adds the rates, scaled by the elapsed time relative
	// to [NominalFrameRate], to the running rotation every frame,
	// so the body spins.
	Accumulate
)

// Next returns the rotation for this frame given the previous rotation,
// the per-frame rates, and the seconds elapsed since the previous frame.
func (m RotationModes) Next(prev, rates math32.Vector3, dt float32) math32.Vector3 {
	if m == Accumulate {
		return prev.Add(rates.MulScalar(dt * NominalFrameRate))
	}
	return rates
}
