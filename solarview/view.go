// Copyright (c) 2026, The Solar System Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package solarview assembles the animated solar system view:
// an xyz scene with the sun, planets, starfield and orbit rings,
// asynchronous model loading, and the per-frame animation.
package solarview

import (
	"context"
	"io/fs"
	"log/slog"
	"sync"
	"time"

	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
	"cogentcore.org/core/tree"
	"cogentcore.org/core/xyz"
	"cogentcore.org/core/xyz/xyzcore"

	"github.com/solarview/solarsystem/animate"
	"github.com/solarview/solarsystem/assets"
	"github.com/solarview/solarsystem/bodies"
	"github.com/solarview/solarsystem/orbit"
	"github.com/solarview/solarsystem/orbitcam"
	"github.com/solarview/solarsystem/registry"
	"github.com/solarview/solarsystem/starfield"
)

// Options are the settings of a [View].
type Options struct {

	// Rotation is how body rotation rates are applied each frame.
	Rotation orbit.RotationModes

	// Stars is the starfield backdrop.
	Stars starfield.Field

	// MaxConcurrentLoads bounds the number of models decoding at once;
	// 0 means no bound.
	MaxConcurrentLoads int
}

// View is the widget showing the animated solar system.
type View struct {

	// Scene is the widget rendering the 3D scene.
	Scene *xyzcore.Scene

	// Bodies is the configured table of bodies.
	Bodies bodies.Table

	// Registry holds the group of every loaded body.
	Registry *registry.Registry[*xyz.Group]

	// Loads loads the body models.
	Loads *assets.Coordinator[*assets.Model, *xyz.Group]

	// Driver animates the loaded bodies.
	Driver *animate.Driver[*xyz.Group]

	// Camera is the damped orbit control of the camera.
	Camera *orbitcam.Orbit

	cancel context.CancelFunc
	start  sync.Once
}

// New adds a solar system view to the parent, loading the models
// of the given bodies from fsys.
func New(parent tree.Node, t bodies.Table, fsys fs.FS, opts *Options) *View {
	v := &View{Bodies: t}
	v.Scene = xyzcore.NewScene(parent)
	sc := v.Scene.SceneXYZ()
	sc.NoNav = true
	configScene(sc)
	addStars(sc, &opts.Stars)
	addRings(sc, t)

	planets := xyz.NewGroup(sc)
	planets.SetName("bodies")

	v.Registry = registry.New[*xyz.Group](t.IDs()...)
	rz := &Realizer{Scene: sc, Parent: planets}
	v.Loads = assets.NewCoordinator[*assets.Model, *xyz.Group](v.Registry, assets.NewGLTF(fsys), rz.Realize)
	v.Loads.SetLimit(opts.MaxConcurrentLoads)
	v.Loads.Dispatch = func(f func()) {
		v.Scene.AsyncLock()
		defer v.Scene.AsyncUnlock()
		f()
	}

	v.Camera = orbitcam.New()
	v.Driver = animate.NewDriver(v.Registry, t, PoseOf)
	v.Driver.Rotation = opts.Rotation
	v.Driver.Controls = &cameraControls{orbit: v.Camera, scene: sc}
	v.Driver.Renderer = animate.RendererFunc(func() {
		sc.SetNeedsUpdate()
		v.Scene.NeedsRender()
	})
	v.handleEvents()
	return v
}

func (v *View) handleEvents() {
	v.Scene.On(events.SlideMove, func(e events.Event) {
		del := e.PrevDelta()
		v.Camera.Rotate(float32(del.X), float32(del.Y))
		e.SetHandled()
	})
	v.Scene.On(events.Scroll, func(e events.Event) {
		se := e.(*events.MouseScroll)
		v.Camera.Zoom(-se.Delta.Y / 20)
		e.SetHandled()
	})
}

// Start requests the load of every body and starts the animation.
// It must be called once the view is shown; later calls do nothing.
func (v *View) Start(ctx context.Context) {
	v.start.Do(func() { v.startOnce(ctx) })
}

func (v *View) startOnce(ctx context.Context) {
	ctx, v.cancel = context.WithCancel(ctx)
	slog.Info("loading bodies", "count", len(v.Bodies))
	v.Loads.RequestAll(ctx, v.Bodies)
	v.Driver.Start(animate.SchedulerFunc(func(f func(dt time.Duration) bool) {
		v.Scene.Animate(func(a *core.Animation) {
			if !f(a.Delta) {
				a.Done = true
			}
		})
	}))
}

// Stop cancels pending loads and stops the animation.
func (v *View) Stop() {
	if v.cancel != nil {
		v.cancel()
	}
	v.Driver.Stop()
}

// cameraControls applies the damped orbit to the scene camera.
type cameraControls struct {
	orbit *orbitcam.Orbit
	scene *xyz.Scene
}

func (cc *cameraControls) Update() {
	cc.orbit.Update(&cc.scene.Camera)
}
