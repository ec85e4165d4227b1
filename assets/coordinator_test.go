// Copyright (c) 2026, The Solar System Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assets

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solarview/solarsystem/bodies"
	"github.com/solarview/solarsystem/registry"
)

// handle is the test stand-in for a scene node.
type handle struct {
	id     bodies.ID
	source string
	placed bool
}

// gatedLoader releases each load only when its gate is closed,
// so tests control the completion order.
type gatedLoader struct {
	gates map[string]chan struct{}
	errs  map[string]error
	mu    sync.Mutex
	calls []string
}

func newGatedLoader(t bodies.Table) *gatedLoader {
	gl := &gatedLoader{gates: map[string]chan struct{}{}, errs: map[string]error{}}
	for _, b := range t {
		gl.gates[b.Source] = make(chan struct{})
	}
	return gl
}

func (gl *gatedLoader) Load(ctx context.Context, source string, progress ProgressFunc) (string, error) {
	gl.mu.Lock()
	gl.calls = append(gl.calls, source)
	gl.mu.Unlock()
	select {
	case <-gl.gates[source]:
	case <-ctx.Done():
		return "", ctx.Err()
	}
	progress(50, 100)
	progress(100, 100)
	if err := gl.errs[source]; err != nil {
		return "", err
	}
	return "model:" + source, nil
}

func realize(b *bodies.Body, m string) (*handle, error) {
	return &handle{id: b.ID, source: m, placed: true}, nil
}

func testLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestReverseCompletionOrder(t *testing.T) {
	ref := bodies.Reference()
	run := func(order []bodies.ID) []registry.Slot[string] {
		gl := newGatedLoader(ref)
		rg := registry.New[string](ref.IDs()...)
		c := NewCoordinator[string, string](rg, gl, func(b *bodies.Body, m string) (string, error) {
			return b.ID.String() + "=" + m, nil
		})
		c.RequestAll(context.Background(), ref)
		for _, id := range order {
			close(gl.gates[ref.Lookup(id).Source])
			require.Eventually(t, func() bool {
				return rg.Lookup(id).IsPresent()
			}, 5*time.Second, time.Millisecond)
		}
		c.Wait()
		return rg.Snapshot()
	}
	fwd := run(ref.IDs())
	rev := slices.Clone(ref.IDs())
	slices.Reverse(rev)
	bwd := run(rev)
	assert.Equal(t, fwd, bwd)
	for _, s := range fwd {
		assert.True(t, s.IsPresent())
	}
}

func TestRequestsDoNotBlock(t *testing.T) {
	ref := bodies.Reference()
	gl := newGatedLoader(ref)
	rg := registry.New[*handle](ref.IDs()...)
	c := NewCoordinator[string, *handle](rg, gl, realize)
	// returns with every gate still closed
	c.RequestAll(context.Background(), ref)
	assert.Equal(t, 0, rg.Loaded())

	close(gl.gates[ref.Lookup(bodies.Earth).Source])
	for _, b := range ref {
		if b.ID != bodies.Earth {
			close(gl.gates[b.Source])
		}
	}
	c.Wait()
	assert.Equal(t, 9, rg.Loaded())
	h, ok := rg.Lookup(bodies.Earth).Get()
	require.True(t, ok)
	assert.True(t, h.placed)
	assert.Equal(t, "model:earth.glb", h.source)
}

func TestLoadFailure(t *testing.T) {
	ref := bodies.Reference()
	gl := newGatedLoader(ref)
	boom := errors.New("boom")
	gl.errs["venus_v1.1.glb"] = boom
	rg := registry.New[*handle](ref.IDs()...)
	var buf bytes.Buffer
	c := NewCoordinator[string, *handle](rg, gl, realize)
	c.Logger = testLogger(&buf)
	c.RequestAll(context.Background(), ref)
	for _, ch := range gl.gates {
		close(ch)
	}
	c.Wait()

	assert.False(t, rg.Lookup(bodies.Venus).IsPresent())
	assert.Equal(t, 8, rg.Loaded())
	fs := c.Failures()
	assert.Len(t, fs, 1)
	assert.ErrorIs(t, fs[bodies.Venus], boom)

	out := buf.String()
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("failed to load body")))
	assert.Contains(t, out, "body=venus")
	assert.Contains(t, out, "err=boom")
	assert.Contains(t, out, "progress=50.0%")
	assert.Equal(t, 9, len(gl.calls), "no retry")
}

func TestRealizeFailureAndDispatch(t *testing.T) {
	tb := bodies.Reference()[:3]
	gl := newGatedLoader(tb)
	for _, ch := range gl.gates {
		close(ch)
	}
	rg := registry.New[*handle](tb.IDs()...)
	var mu sync.Mutex
	dispatched := 0
	c := NewCoordinator[string, *handle](rg, gl, func(b *bodies.Body, m string) (*handle, error) {
		if b.ID == bodies.Mercury {
			return nil, errors.New("bad mesh")
		}
		return realize(b, m)
	})
	c.Dispatch = func(f func()) {
		mu.Lock()
		defer mu.Unlock()
		dispatched++
		f()
	}
	c.Logger = testLogger(&bytes.Buffer{})
	c.SetLimit(1)
	c.RequestAll(context.Background(), tb)
	c.Wait()
	assert.Equal(t, 3, dispatched)
	assert.False(t, rg.Lookup(bodies.Mercury).IsPresent())
	assert.True(t, rg.Lookup(bodies.Sun).IsPresent())
	assert.Contains(t, c.Failures(), bodies.Mercury)
}

func TestCanceled(t *testing.T) {
	tb := bodies.Reference()[:2]
	gl := newGatedLoader(tb)
	rg := registry.New[*handle](tb.IDs()...)
	c := NewCoordinator[string, *handle](rg, gl, realize)
	c.Logger = testLogger(&bytes.Buffer{})
	ctx, cancel := context.WithCancel(context.Background())
	c.RequestAll(ctx, tb)
	cancel()
	c.Wait()
	assert.Equal(t, 0, rg.Loaded())
	assert.Len(t, c.Failures(), 2)
}

func TestDuplicateRequest(t *testing.T) {
	tb := bodies.Reference()[:4]
	gl := newGatedLoader(tb)
	rg := registry.New[*handle](tb.IDs()...)
	var mu sync.Mutex
	realized := 0
	c := NewCoordinator[string, *handle](rg, gl, func(b *bodies.Body, m string) (*handle, error) {
		mu.Lock()
		realized++
		mu.Unlock()
		return realize(b, m)
	})
	c.Logger = testLogger(&bytes.Buffer{})
	earth := tb.Lookup(bodies.Earth)
	assert.True(t, c.RequestLoad(context.Background(), earth))
	// while the first load is in flight
	assert.False(t, c.RequestLoad(context.Background(), earth))
	close(gl.gates[earth.Source])
	c.Wait()
	// and once it is present
	assert.False(t, c.RequestLoad(context.Background(), earth))
	c.Wait()

	assert.Equal(t, 1, realized)
	assert.Len(t, gl.calls, 1)
	assert.True(t, rg.Lookup(bodies.Earth).IsPresent())
	assert.Empty(t, c.Failures())
}

func TestNoRetryAfterFailure(t *testing.T) {
	tb := bodies.Reference()[:3]
	gl := newGatedLoader(tb)
	venus := tb.Lookup(bodies.Venus)
	gl.errs[venus.Source] = errors.New("boom")
	close(gl.gates[venus.Source])
	rg := registry.New[*handle](tb.IDs()...)
	c := NewCoordinator[string, *handle](rg, gl, realize)
	c.Logger = testLogger(&bytes.Buffer{})
	assert.True(t, c.RequestLoad(context.Background(), venus))
	c.Wait()
	assert.False(t, c.RequestLoad(context.Background(), venus))
	c.Wait()
	assert.Len(t, gl.calls, 1)
	assert.Len(t, c.Failures(), 1)
}

func TestLimit(t *testing.T) {
	ref := bodies.Reference()
	gl := newGatedLoader(ref)
	rg := registry.New[*handle](ref.IDs()...)
	c := NewCoordinator[string, *handle](rg, gl, realize).SetLimit(2)
	c.RequestAll(context.Background(), ref)
	calls := func() int {
		gl.mu.Lock()
		defer gl.mu.Unlock()
		return len(gl.calls)
	}
	require.Eventually(t, func() bool { return calls() == 2 }, 5*time.Second, time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 2, calls())
	for _, ch := range gl.gates {
		close(ch)
	}
	c.Wait()
	assert.Equal(t, 9, calls())
	assert.Equal(t, 9, rg.Loaded())
}
