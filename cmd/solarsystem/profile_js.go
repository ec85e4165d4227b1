// Copyright (c) 2026, The Solar System Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import "log/slog"

// startProfile is not supported in the browser.
func startProfile(mode string) func() {
	if mode != "" {
		slog.Warn("profiling is not available on the web", "profile", mode)
	}
	return func() {}
}
