// Copyright (c) 2026, The Solar System Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !js

package main

import (
	"log/slog"

	"github.com/pkg/profile"
)

// startProfile starts the named profile and returns the function stopping it.
func startProfile(mode string) func() {
	switch mode {
	case "":
		return func() {}
	case "cpu":
		return profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop
	case "mem":
		return profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet).Stop
	}
	slog.Error("unknown profile mode, not profiling", "profile", mode)
	return func() {}
}
