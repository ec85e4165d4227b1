// Copyright (c) 2026, The Solar System Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bodies

//go:generate core generate

import (
	"fmt"
	"strings"
)

// ID identifies one of the fixed set of visualizable bodies.
type ID int32 //enums:enum -transform lower -accept-lower -is-valid

const (
	Sun ID = iota
	Mercury
	Venus
	Earth
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
)

// ParseID returns the [ID] with the given name, ignoring case
// and surrounding space.
func ParseID(s string) (ID, error) {
	var id ID
	if err := id.SetString(strings.TrimSpace(s)); err != nil {
		return 0, fmt.Errorf("bodies.ParseID: %w", err)
	}
	return id, nil
}
