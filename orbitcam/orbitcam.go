// Copyright (c) 2026, The Solar System Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package orbitcam provides damped orbit controls for a camera that
// looks at a target: drag input is queued as pending motion that is
// handed to the camera a fraction at a time over subsequent frames,
// so the view eases to a stop.
package orbitcam

import (
	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/reflectx"
	"cogentcore.org/core/math32"
)

// Camera is the camera moved by the controls. [xyz.Camera] implements it.
type Camera interface {

	// Orbit moves the camera around its target by the given
	// left/right and up/down angles in degrees.
	Orbit(delX, delY float32)

	// Zoom moves the camera along the view axis by the given
	// fraction of its distance to the target: negative moves closer.
	Zoom(zoomPct float32)

	// LookAtTarget points the camera at its target.
	LookAtTarget()
}

// Orbit queues rotation and zoom input and applies it to a [Camera]
// with exponential damping.
type Orbit struct {

	// DampingFactor is the fraction of the pending motion applied each
	// update; the rest decays by the same factor.
	DampingFactor float32 `default:"0.1"`

	// RotateSpeed converts drag distance in pixels into degrees.
	RotateSpeed float32 `default:"0.3"`

	// ZoomSpeed is the fraction of the distance moved per zoom step.
	ZoomSpeed float32 `default:"0.05"`

	dx, dy, dz float32
}

// New returns controls with default settings.
func New() *Orbit {
	o := &Orbit{}
	o.Defaults()
	return o
}

// Defaults sets the settings from their default tags.
func (o *Orbit) Defaults() {
	errors.Log(reflectx.SetFromDefaultTags(o))
}

// Rotate adds drag input, in pixels, to the pending rotation.
func (o *Orbit) Rotate(dx, dy float32) {
	o.dx -= dx * o.RotateSpeed
	o.dy -= dy * o.RotateSpeed
}

// Zoom adds zoom input to the pending zoom: positive moves closer.
func (o *Orbit) Zoom(steps float32) {
	o.dz -= steps * o.ZoomSpeed
}

// Moving returns whether there is pending motion left to apply.
func (o *Orbit) Moving() bool {
	const eps = 1e-5
	return math32.Abs(o.dx) > eps || math32.Abs(o.dy) > eps || math32.Abs(o.dz) > eps
}

// Update hands one frame of the pending motion to the camera
// and decays the rest. It does nothing when there is no motion.
func (o *Orbit) Update(cam Camera) {
	if !o.Moving() {
		o.dx, o.dy, o.dz = 0, 0, 0
		return
	}
	f := o.DampingFactor
	if f <= 0 || f > 1 {
		f = 1
	}
	if o.dx != 0 || o.dy != 0 {
		cam.Orbit(o.dx*f, o.dy*f)
	}
	if o.dz != 0 {
		cam.Zoom(o.dz * f)
		cam.LookAtTarget()
	}
	o.dx *= 1 - f
	o.dy *= 1 - f
	o.dz *= 1 - f
}
