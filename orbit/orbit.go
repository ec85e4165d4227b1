// Copyright (c) 2026, The Solar System Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package orbit computes the per-frame position and rotation of a body
// and applies them to its loaded representation.
package orbit

import (
	"cogentcore.org/core/math32"

	"github.com/solarview/solarsystem/bodies"
)

// NominalFrameRate is the refresh rate at which the per-frame
// rotation rates of a [bodies.Body] were tuned.
const NominalFrameRate = 60

// Pose is the part of a loaded body representation that the kernel updates.
type Pose interface {

	// SetPosition sets the position of the body in the scene.
	SetPosition(pos math32.Vector3)

	// SetRotation sets the local rotation from euler angles in radians.
	SetRotation(euler math32.Vector3)

	// SetScale sets the per-axis scale.
	SetScale(scale math32.Vector3)
}

// Angle returns the orbit angle of the body at time t in seconds.
func Angle(t float32, b *bodies.Body) float32 {
	return t*b.AngularSpeed + b.Phase
}

// Position returns the position of the body on its circular orbit
// at time t in seconds.
func Position(t float32, b *bodies.Body) math32.Vector3 {
	th := Angle(t, b)
	return math32.Vec3(math32.Cos(th)*b.OrbitRadius, b.PlaneY, math32.Sin(th)*b.OrbitRadius)
}

// Place applies the static scale and the time zero position of the body.
func Place(p Pose, b *bodies.Body) {
	p.SetScale(b.Scale)
	if b.Orbits() {
		p.SetPosition(Position(0, b))
	}
}

// Apply moves the body to its orbit position at time t and sets its
// rotation to rot. The sun is only rotated.
func Apply(p Pose, b *bodies.Body, t float32, rot math32.Vector3) {
	if b.Orbits() {
		p.SetPosition(Position(t, b))
	}
	p.SetRotation(rot)
}
