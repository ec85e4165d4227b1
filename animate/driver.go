// Copyright (c) 2026, The Solar System Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package animate drives the per-frame animation of the loaded bodies.
package animate

import (
	"sync/atomic"
	"time"

	"cogentcore.org/core/math32"

	"github.com/solarview/solarsystem/bodies"
	"github.com/solarview/solarsystem/orbit"
	"github.com/solarview/solarsystem/registry"
)

// Scheduler calls the given function once per display refresh for as long
// as it returns true. dt is the time since the previous call.
type Scheduler interface {
	Every(f func(dt time.Duration) bool)
}

// SchedulerFunc adapts a function to the [Scheduler] interface.
type SchedulerFunc func(f func(dt time.Duration) bool)

func (sf SchedulerFunc) Every(f func(dt time.Duration) bool) { sf(f) }

// Controls applies accumulated camera input once per frame.
type Controls interface {
	Update()
}

// Renderer renders the scene from the current camera.
type Renderer interface {
	Render()
}

// RendererFunc adapts a function to the [Renderer] interface.
type RendererFunc func()

func (rf RendererFunc) Render() { rf() }

// Clock returns the time elapsed since a fixed origin, from a monotonic source.
type Clock func() time.Duration

// MonotonicClock returns a [Clock] measuring from now.
func MonotonicClock() Clock {
	start := time.Now()
	return func() time.Duration { return time.Since(start) }
}

// Driver runs the animation step each frame: every loaded body is moved
// along its orbit and rotated, then the camera controls are updated and
// one render is requested. Bodies that are not loaded are skipped.
type Driver[H any] struct {

	// Registry holds the loaded handles.
	Registry *registry.Registry[H]

	// Bodies is the configuration of the animated bodies.
	Bodies bodies.Table

	// Pose returns the pose to update for a loaded handle.
	Pose func(h H) orbit.Pose

	// Rotation is how rotation rates are applied.
	Rotation orbit.RotationModes

	// Clock is the time source, read once per frame.
	Clock Clock

	// Controls is updated after the bodies each frame, if non-nil.
	Controls Controls

	// Renderer is asked to render at the end of each frame, if non-nil.
	Renderer Renderer

	// Frames is the number of steps run so far.
	Frames int64

	spin    map[bodies.ID]math32.Vector3
	last    time.Duration
	started bool
	stopped atomic.Bool
}

// NewDriver returns a driver for the given registry and bodies,
// reading time from a [MonotonicClock].
func NewDriver[H any](rg *registry.Registry[H], t bodies.Table, pose func(h H) orbit.Pose) *Driver[H] {
	return &Driver[H]{Registry: rg, Bodies: t, Pose: pose, Clock: MonotonicClock()}
}

// Step runs one animation frame at the current clock time.
func (dr *Driver[H]) Step() {
	dr.StepAt(dr.Clock())
}

// StepAt runs one animation frame at the given time since the origin.
// All bodies are evaluated at this same instant.
func (dr *Driver[H]) StepAt(now time.Duration) {
	var dt float32
	if dr.started {
		dt = float32((now - dr.last).Seconds())
	}
	dr.last, dr.started = now, true
	t := float32(now.Seconds())
	if dr.spin == nil {
		dr.spin = make(map[bodies.ID]math32.Vector3)
	}
	dr.Registry.Range(func(id bodies.ID, h H) bool {
		b := dr.Bodies.Lookup(id)
		if b == nil {
			return true
		}
		rot := dr.Rotation.Next(dr.spin[id], b.Rotation, dt)
		dr.spin[id] = rot
		orbit.Apply(dr.Pose(h), b, t, rot)
		return true
	})
	if dr.Controls != nil {
		dr.Controls.Update()
	}
	if dr.Renderer != nil {
		dr.Renderer.Render()
	}
	dr.Frames++
}

// Start runs [Driver.Step] on every refresh of the scheduler until [Driver.Stop].
func (dr *Driver[H]) Start(sched Scheduler) {
	dr.stopped.Store(false)
	sched.Every(func(dt time.Duration) bool {
		if dr.stopped.Load() {
			return false
		}
		dr.Step()
		return true
	})
}

// Stop cancels the next scheduled step. It is safe to call from any goroutine.
func (dr *Driver[H]) Stop() {
	dr.stopped.Store(true)
}

// Stopped returns whether [Driver.Stop] has been called since the last start.
func (dr *Driver[H]) Stopped() bool {
	return dr.stopped.Load()
}
