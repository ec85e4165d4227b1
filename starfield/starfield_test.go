// Copyright (c) 2026, The Solar System Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package starfield

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPositions(t *testing.T) {
	var f Field
	f.Defaults()
	assert.Equal(t, float32(0.25), f.Radius)
	assert.Equal(t, int64(1), f.Seed)
	ps := f.Positions()
	assert.Len(t, ps, 200)
	for _, p := range ps {
		for _, c := range []float32{p.X, p.Y, p.Z} {
			assert.GreaterOrEqual(t, c, float32(-100))
			assert.Less(t, c, float32(100))
		}
	}
	assert.Equal(t, ps, f.Positions(), "same seed, same field")

	f.Seed = 2
	assert.NotEqual(t, ps, f.Positions())

	f.Count = 0
	assert.Empty(t, f.Positions())
}
