// Copyright (c) 2026, The Solar System Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package registry provides the write-once mapping from body id
// to the loaded representation of that body.
package registry

import (
	"fmt"
	"sync"

	"cogentcore.org/core/base/errors"

	"github.com/solarview/solarsystem/bodies"
)

var (
	// ErrAlreadyLoaded is returned when a handle is set twice for the same body.
	ErrAlreadyLoaded = errors.New("registry: body already loaded")

	// ErrUnknownBody is returned for a body that is not configured in the registry.
	ErrUnknownBody = errors.New("registry: body not configured")
)

// Slot holds either a loaded handle (present) or nothing (absent).
// The zero value is absent.
type Slot[H any] struct {
	handle  H
	present bool
}

// Present returns a slot holding h.
func Present[H any](h H) Slot[H] {
	return Slot[H]{handle: h, present: true}
}

// Absent returns an empty slot.
func Absent[H any]() Slot[H] {
	return Slot[H]{}
}

// Get returns the handle and whether it is present.
func (s Slot[H]) Get() (H, bool) {
	return s.handle, s.present
}

// IsPresent returns whether the slot holds a handle.
func (s Slot[H]) IsPresent() bool {
	return s.present
}

func (s Slot[H]) String() string {
	if !s.present {
		return "absent"
	}
	return fmt.Sprintf("present(%v)", s.handle)
}

// Registry maps each configured body to the [Slot] of its loaded handle.
// Every slot starts absent and becomes present at most once; a present
// handle is never replaced or removed.
type Registry[H any] struct {
	ids   []bodies.ID
	slots map[bodies.ID]Slot[H]
	mu    sync.RWMutex
}

// New returns a registry with an absent slot for each of the given ids,
// kept in the given order.
func New[H any](ids ...bodies.ID) *Registry[H] {
	rg := &Registry[H]{slots: make(map[bodies.ID]Slot[H], len(ids))}
	for _, id := range ids {
		if _, has := rg.slots[id]; has {
			continue
		}
		rg.ids = append(rg.ids, id)
		rg.slots[id] = Absent[H]()
	}
	return rg
}

// Set records the loaded handle for the given body.
func (rg *Registry[H]) Set(id bodies.ID, h H) error {
	rg.mu.Lock()
	defer rg.mu.Unlock()
	s, has := rg.slots[id]
	if !has {
		return fmt.Errorf("%w: %s", ErrUnknownBody, id)
	}
	if s.present {
		return fmt.Errorf("%w: %s", ErrAlreadyLoaded, id)
	}
	rg.slots[id] = Present(h)
	return nil
}

// Lookup returns the slot for the given body, which is absent
// for bodies that are not configured.
func (rg *Registry[H]) Lookup(id bodies.ID) Slot[H] {
	rg.mu.RLock()
	defer rg.mu.RUnlock()
	return rg.slots[id]
}

// Range calls fn for every present handle in configured order,
// stopping if fn returns false. fn must not call Set.
func (rg *Registry[H]) Range(fn func(id bodies.ID, h H) bool) {
	rg.mu.RLock()
	defer rg.mu.RUnlock()
	for _, id := range rg.ids {
		s := rg.slots[id]
		if !s.present {
			continue
		}
		if !fn(id, s.handle) {
			return
		}
	}
}

// IDs returns the configured ids in order.
func (rg *Registry[H]) IDs() []bodies.ID {
	return append([]bodies.ID(nil), rg.ids...)
}

// Len returns the number of configured bodies.
func (rg *Registry[H]) Len() int {
	return len(rg.ids)
}

// Loaded returns the number of present slots.
func (rg *Registry[H]) Loaded() int {
	rg.mu.RLock()
	defer rg.mu.RUnlock()
	n := 0
	for _, s := range rg.slots {
		if s.present {
			n++
		}
	}
	return n
}

// Snapshot returns a copy of all slots in configured order.
func (rg *Registry[H]) Snapshot() []Slot[H] {
	rg.mu.RLock()
	defer rg.mu.RUnlock()
	ss := make([]Slot[H], len(rg.ids))
	for i, id := range rg.ids {
		ss[i] = rg.slots[id]
	}
	return ss
}
