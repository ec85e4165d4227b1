// Copyright (c) 2026, The Solar System Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package starfield generates the positions of the backdrop stars.
package starfield

import (
	"cogentcore.org/core/base/errors"
	"cogentcore.org/lab/base/randx"
	"cogentcore.org/core/base/reflectx"
	"cogentcore.org/core/math32"
)

// Field describes a cube of uniformly scattered stars centered on the origin.
type Field struct {

	// Count is the number of stars.
	Count int `default:"200"`

	// HalfSize is half the edge length of the cube.
	HalfSize float32 `default:"100"`

	// Radius is the radius of each star.
	Radius float32 `default:"0.25"`

	// Seed makes the field reproducible.
	Seed int64 `default:"1"`
}

// Defaults sets the reference field, 200 stars in a cube of half size 100,
// from the default tags.
func (f *Field) Defaults() {
	errors.Log(reflectx.SetFromDefaultTags(f))
}

// Positions returns the star positions of the field.
func (f *Field) Positions() []math32.Vector3 {
	return Generate(f.Count, f.HalfSize, randx.NewSysRand(f.Seed))
}

// Generate returns n positions drawn uniformly from the cube [-half, half)^3.
func Generate(n int, half float32, rnd randx.Rand) []math32.Vector3 {
	if n <= 0 {
		return nil
	}
	coord := func() float32 {
		return rnd.Float32()*2*half - half
	}
	ps := make([]math32.Vector3, n)
	for i := range ps {
		x := coord()
		y := coord()
		z := coord()
		ps[i] = math32.Vec3(x, y, z)
	}
	return ps
}
