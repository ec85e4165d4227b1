// Copyright (c) 2026, The Solar System Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package assets loads the 3D models of the bodies asynchronously
// and records each loaded model in a [registry.Registry].
package assets

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/solarview/solarsystem/bodies"
	"github.com/solarview/solarsystem/registry"
)

// ProgressFunc is called with the number of bytes loaded so far
// and the total, which is 0 if unknown.
type ProgressFunc func(loaded, total int64)

// Loader fetches and decodes the asset at a source path into a model M.
type Loader[M any] interface {
	Load(ctx context.Context, source string, progress ProgressFunc) (M, error)
}

// RealizeFunc turns a decoded model into a scene handle for the body.
// It must apply the body's scale and time zero position and add the
// handle to the scene.
type RealizeFunc[M, H any] func(b *bodies.Body, m M) (H, error)

// Coordinator issues one asynchronous load per body and records each
// resulting handle in the registry. Loads are independent: they run
// concurrently, complete in any order, and a failure leaves only that
// body's slot absent. Each body is loaded at most once: repeated
// requests for a body that is loading, loaded or failed are ignored.
type Coordinator[M, H any] struct {

	// Registry receives the loaded handles.
	Registry *registry.Registry[H]

	// Loader fetches and decodes the assets.
	Loader Loader[M]

	// Realize turns a decoded model into a handle.
	Realize RealizeFunc[M, H]

	// Dispatch runs the given function on the thread that owns the scene,
	// returning once it has run. If nil, the function is run directly.
	Dispatch func(f func())

	// Logger is the destination of load reports; slog.Default() if nil.
	Logger *slog.Logger

	group     errgroup.Group
	sem       *semaphore.Weighted
	mu        sync.Mutex
	requested map[bodies.ID]bool
	failures  map[bodies.ID]error
}

// NewCoordinator returns a coordinator loading into the given registry.
func NewCoordinator[M, H any](rg *registry.Registry[H], ld Loader[M], realize RealizeFunc[M, H]) *Coordinator[M, H] {
	return &Coordinator[M, H]{Registry: rg, Loader: ld, Realize: realize}
}

// SetLimit bounds the number of loads fetching at the same time;
// n <= 0 means no bound. It must be called before any request.
func (c *Coordinator[M, H]) SetLimit(n int) *Coordinator[M, H] {
	if n <= 0 {
		c.sem = nil
	} else {
		c.sem = semaphore.NewWeighted(int64(n))
	}
	return c
}

func (c *Coordinator[M, H]) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.Default()
	}
	return c.Logger
}

// RequestLoad schedules the load of the given body and returns immediately.
// It reports whether a load was scheduled: false if the body was
// already requested.
func (c *Coordinator[M, H]) RequestLoad(ctx context.Context, b *bodies.Body) bool {
	if !c.claim(b.ID) {
		c.logger().Debug("body already requested", "body", b.ID.String())
		return false
	}
	bd := *b
	c.group.Go(func() error {
		c.load(ctx, &bd)
		return nil
	})
	return true
}

// claim marks the body as requested, returning false if it already was
// or is already present in the registry.
func (c *Coordinator[M, H]) claim(id bodies.ID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.requested[id] || c.Registry.Lookup(id).IsPresent() {
		return false
	}
	if c.requested == nil {
		c.requested = make(map[bodies.ID]bool)
	}
	c.requested[id] = true
	return true
}

// RequestAll schedules the load of every body in the table
// without waiting for any of them.
func (c *Coordinator[M, H]) RequestAll(ctx context.Context, t bodies.Table) {
	for i := range t {
		c.RequestLoad(ctx, &t[i])
	}
}

// Wait blocks until every requested load has finished.
func (c *Coordinator[M, H]) Wait() {
	c.group.Wait()
}

// Failures returns the load errors recorded so far, by body.
func (c *Coordinator[M, H]) Failures() map[bodies.ID]error {
	c.mu.Lock()
	defer c.mu.Unlock()
	fs := make(map[bodies.ID]error, len(c.failures))
	for id, err := range c.failures {
		fs[id] = err
	}
	return fs
}

func (c *Coordinator[M, H]) load(ctx context.Context, b *bodies.Body) {
	log := c.logger().With("body", b.ID.String(), "source", b.Source)
	if c.sem != nil {
		if err := c.sem.Acquire(ctx, 1); err != nil {
			c.fail(log, b.ID, err)
			return
		}
		defer c.sem.Release(1)
	}
	log.Debug("loading body")
	m, err := c.Loader.Load(ctx, b.Source, func(loaded, total int64) {
		if total > 0 {
			log.Debug("loading progress", "progress", fmt.Sprintf("%.1f%%", 100*float64(loaded)/float64(total)))
		}
	})
	if err != nil {
		c.fail(log, b.ID, err)
		return
	}
	c.dispatch(func() {
		h, err := c.Realize(b, m)
		if err == nil {
			err = c.Registry.Set(b.ID, h)
		}
		if err != nil {
			c.fail(log, b.ID, err)
			return
		}
		log.Info("loaded body")
	})
}

func (c *Coordinator[M, H]) dispatch(f func()) {
	if c.Dispatch == nil {
		f()
		return
	}
	c.Dispatch(f)
}

// fail records and reports a load failure; the body stays absent.
func (c *Coordinator[M, H]) fail(log *slog.Logger, id bodies.ID, err error) {
	c.mu.Lock()
	if c.failures == nil {
		c.failures = make(map[bodies.ID]error)
	}
	c.failures[id] = err
	c.mu.Unlock()
	log.Error("failed to load body", "err", err)
}
