// Copyright (c) 2026, The Solar System Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solarview

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/core/xyz"

	"github.com/solarview/solarsystem/orbit"
)

// Handle adapts the group holding a loaded body to [orbit.Pose].
type Handle struct {
	*xyz.Group
}

// PoseOf returns the [orbit.Pose] of a loaded body group.
func PoseOf(gp *xyz.Group) orbit.Pose {
	return Handle{gp}
}

func (h Handle) SetPosition(pos math32.Vector3) {
	h.PoseMu.Lock()
	h.Pose.Pos = pos
	h.PoseMu.Unlock()
}

func (h Handle) SetRotation(euler math32.Vector3) {
	h.PoseMu.Lock()
	h.Pose.SetEulerRotationRad(euler.X, euler.Y, euler.Z)
	h.PoseMu.Unlock()
}

func (h Handle) SetScale(scale math32.Vector3) {
	h.PoseMu.Lock()
	h.Pose.Scale = scale
	h.PoseMu.Unlock()
}
