// Copyright (c) 2026, The Solar System Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bodies defines the static configuration of the bodies
// in the solar system view: which asset each one loads, where it
// orbits, how fast, and how it is scaled and rotated.
package bodies

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
)

// Body is the static description of one visualizable object.
type Body struct {

	// ID is the identifier of the body.
	ID ID

	// Source is the asset path of the body's 3D model,
	// relative to the asset directory.
	Source string

	// OrbitRadius is the distance from the origin in the orbital plane.
	OrbitRadius float32

	// AngularSpeed is the signed revolution rate in radians per second.
	AngularSpeed float32

	// Rotation has the per-axis rotation rates, in radians per nominal frame.
	Rotation math32.Vector3

	// Scale is the per-axis size multiplier.
	Scale math32.Vector3

	// Phase is the orbit angle at time zero, in radians.
	Phase float32

	// PlaneY is the height of the orbital plane.
	PlaneY float32

	// RingRadius is the radius of the orbit ring drawn for the body.
	// Zero means no ring.
	RingRadius float32
}

// Orbits returns whether the body moves on an orbit.
// The sun sits at the origin and only rotates.
func (b *Body) Orbits() bool {
	return b.ID != Sun && b.OrbitRadius > 0
}

// Validate returns an error if the body parameters are not usable.
func (b *Body) Validate() error {
	if !b.ID.IsValid() {
		return fmt.Errorf("bodies: invalid body id %d", int32(b.ID))
	}
	if b.OrbitRadius < 0 {
		return fmt.Errorf("bodies: %s has negative orbit radius %g", b.ID, b.OrbitRadius)
	}
	if b.ID == Sun && b.OrbitRadius != 0 {
		return fmt.Errorf("bodies: sun must sit at the origin, got orbit radius %g", b.OrbitRadius)
	}
	if b.Scale.X == 0 || b.Scale.Y == 0 || b.Scale.Z == 0 {
		return fmt.Errorf("bodies: %s has a zero scale component %v", b.ID, b.Scale)
	}
	if b.Source == "" {
		return fmt.Errorf("bodies: %s has no asset source", b.ID)
	}
	return nil
}

// Table is the ordered list of configured bodies.
type Table []Body

// Lookup returns the body with the given id, or nil if it is not configured.
func (t Table) Lookup(id ID) *Body {
	for i := range t {
		if t[i].ID == id {
			return &t[i]
		}
	}
	return nil
}

// IDs returns the ids of the table in order.
func (t Table) IDs() []ID {
	ids := make([]ID, len(t))
	for i := range t {
		ids[i] = t[i].ID
	}
	return ids
}

// Validate checks every body and that no id is configured twice.
// All problems are reported together.
func (t Table) Validate() error {
	var errs []error
	seen := make(map[ID]bool, len(t))
	for i := range t {
		b := &t[i]
		if err := b.Validate(); err != nil {
			errs = append(errs, err)
			continue
		}
		if seen[b.ID] {
			errs = append(errs, fmt.Errorf("bodies: %s is configured more than once", b.ID))
		}
		seen[b.ID] = true
	}
	return errors.Join(errs...)
}

// uniform returns a vector with all components equal to s.
func uniform(s float32) math32.Vector3 {
	return math32.Vec3(s, s, s)
}

// Reference returns the reference configuration of the sun and
// the eight planets.
func Reference() Table {
	return Table{
		{ID: Sun, Source: "sun.glb", Scale: uniform(1.5), Rotation: math32.Vec3(5, 5, 5)},
		{ID: Mercury, Source: "mercury.glb", OrbitRadius: 20, AngularSpeed: 0.05, Scale: uniform(0.5), Rotation: math32.Vec3(0, 0.0003, 0), RingRadius: 20},
		{ID: Venus, Source: "venus_v1.1.glb", OrbitRadius: 25, AngularSpeed: 0.03, Scale: uniform(0.6), Rotation: math32.Vec3(0, -0.0001, 0.0001), RingRadius: 25},
		{ID: Earth, Source: "earth.glb", OrbitRadius: 30, AngularSpeed: 0.02, Scale: uniform(1.4), Rotation: math32.Vec3(0.02, 0.05, 0), RingRadius: 30},
		{ID: Mars, Source: "mars.glb", OrbitRadius: 35, AngularSpeed: 0.01, Scale: uniform(0.1), Rotation: math32.Vec3(0.02, 0.05, 0.01), RingRadius: 35},
		{ID: Jupiter, Source: "jupiter.glb", OrbitRadius: 45, AngularSpeed: 0.01, Scale: uniform(0.05), Rotation: math32.Vec3(0.01, 0.2, 0), RingRadius: 45},
		{ID: Saturn, Source: "saturn_planet.glb", OrbitRadius: 60, AngularSpeed: 0.01, Scale: uniform(3), Rotation: math32.Vec3(0.02, 0.2, 0.01), RingRadius: 60},
		{ID: Uranus, Source: "urambus.glb", OrbitRadius: 75, AngularSpeed: 0.01, Scale: uniform(0.03), Rotation: math32.Vec3(0.02, 0.2, 0.01), RingRadius: 75},
		{ID: Neptune, Source: "neptune.glb", OrbitRadius: 83, AngularSpeed: 0.01, Scale: uniform(1.2), Rotation: math32.Vec3(0.02, 0.2, 0.01), RingRadius: 85},
	}
}
