// Copyright (c) 2026, The Solar System Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package animate

import (
	"testing"
	"time"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solarview/solarsystem/bodies"
	"github.com/solarview/solarsystem/orbit"
	"github.com/solarview/solarsystem/registry"
)

type pose struct {
	pos, rot, scale math32.Vector3
	writes          int
}

func (p *pose) SetPosition(v math32.Vector3) { p.pos = v; p.writes++ }
func (p *pose) SetRotation(v math32.Vector3) { p.rot = v; p.writes++ }
func (p *pose) SetScale(v math32.Vector3)    { p.scale = v; p.writes++ }

type counter struct{ n int }

func (c *counter) Update() { c.n++ }
func (c *counter) Render() { c.n++ }

// frames is a scheduler that runs a fixed number of refreshes.
func frames(n int) SchedulerFunc {
	return func(f func(dt time.Duration) bool) {
		for range n {
			if !f(time.Second / 60) {
				return
			}
		}
	}
}

func identity(p *pose) orbit.Pose { return p }

func newDriver(rg *registry.Registry[*pose]) *Driver[*pose] {
	dr := NewDriver(rg, bodies.Reference(), identity)
	var now time.Duration
	dr.Clock = func() time.Duration {
		now += time.Second / 60
		return now
	}
	return dr
}

func TestAbsentIsNoOp(t *testing.T) {
	ref := bodies.Reference()
	rg := registry.New[*pose](ref.IDs()...)
	dr := newDriver(rg)
	ctl, rnd := &counter{}, &counter{}
	dr.Controls, dr.Renderer = ctl, rnd
	dr.Start(frames(10))
	assert.Equal(t, int64(10), dr.Frames)
	assert.Equal(t, 10, ctl.n)
	assert.Equal(t, 10, rnd.n)
}

func TestVenusFailureThousandFrames(t *testing.T) {
	ref := bodies.Reference()
	rg := registry.New[*pose](ref.IDs()...)
	poses := map[bodies.ID]*pose{}
	for _, id := range ref.IDs() {
		if id == bodies.Venus {
			continue
		}
		poses[id] = &pose{}
		require.NoError(t, rg.Set(id, poses[id]))
	}
	dr := newDriver(rg)
	assert.NotPanics(t, func() { dr.Start(frames(1000)) })
	assert.False(t, rg.Lookup(bodies.Venus).IsPresent())
	assert.Equal(t, int64(1000), dr.Frames)
	assert.Equal(t, 1000, poses[bodies.Sun].writes, "sun only rotates")
	assert.Equal(t, 2000, poses[bodies.Earth].writes)
}

func TestSunGuard(t *testing.T) {
	ref := bodies.Reference()
	rg := registry.New[*pose](ref.IDs()...)
	earth := &pose{}
	require.NoError(t, rg.Set(bodies.Earth, earth))
	dr := newDriver(rg)
	dr.Step()
	assert.Equal(t, 2, earth.writes)

	sun := &pose{}
	require.NoError(t, rg.Set(bodies.Sun, sun))
	dr.Step()
	assert.Equal(t, math32.Vec3(5, 5, 5), sun.rot)
	assert.Equal(t, math32.Vector3{}, sun.pos)
}

func TestSameInstant(t *testing.T) {
	ref := bodies.Reference()
	rg := registry.New[*pose](ref.IDs()...)
	ps := map[bodies.ID]*pose{}
	for _, id := range ref.IDs() {
		ps[id] = &pose{}
		require.NoError(t, rg.Set(id, ps[id]))
	}
	dr := NewDriver(rg, ref, identity)
	reads := 0
	dr.Clock = func() time.Duration {
		reads++
		return 7 * time.Second
	}
	dr.Step()
	assert.Equal(t, 1, reads)
	for _, b := range ref {
		assert.Equal(t, orbit.Position(7, &b), ps[b.ID].pos, b.ID.String())
	}
}

func TestRotationModes(t *testing.T) {
	ref := bodies.Reference()
	rg := registry.New[*pose](ref.IDs()...)
	earth := &pose{}
	require.NoError(t, rg.Set(bodies.Earth, earth))

	dr := newDriver(rg)
	dr.Start(frames(5))
	assert.Equal(t, ref.Lookup(bodies.Earth).Rotation, earth.rot)

	spin := newDriver(rg)
	spin.Rotation = orbit.Accumulate
	for i := range 5 {
		spin.StepAt(time.Duration(i) * time.Second / 60)
	}
	// first frame has no elapsed time
	assert.InDelta(t, 4*0.05, earth.rot.Y, 1e-4)
	assert.InDelta(t, 4*0.02, earth.rot.X, 1e-4)
}

func TestStop(t *testing.T) {
	rg := registry.New[*pose](bodies.IDValues()...)
	dr := newDriver(rg)
	dr.Renderer = RendererFunc(func() {
		if dr.Frames == 2 {
			dr.Stop()
		}
	})
	dr.Start(frames(100))
	assert.Equal(t, int64(3), dr.Frames)
	assert.True(t, dr.Stopped())

	dr.Start(frames(4))
	assert.Equal(t, int64(7), dr.Frames)
}

func TestMonotonicClock(t *testing.T) {
	c := MonotonicClock()
	a := c()
	b := c()
	assert.GreaterOrEqual(t, b, a)
}
