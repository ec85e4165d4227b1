// Copyright (c) 2026, The Solar System Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command solarsystem shows an animated 3D view of the solar system.
package main

import (
	"context"
	"io/fs"
	"log/slog"
	"os"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/cli"
	"cogentcore.org/core/core"
	"cogentcore.org/core/events"

	"github.com/solarview/solarsystem/bodies"
	"github.com/solarview/solarsystem/orbit"
	"github.com/solarview/solarsystem/solarview"
)

// bodiesFile is the body table looked for in the assets directory.
const bodiesFile = "bodies.toml"

// Config is the configuration of the solarsystem command.
type Config struct {

	// Assets is the directory the body models are loaded from.
	Assets string `default:"assets"`

	// Bodies is an optional TOML file overriding the reference bodies.
	// Without it, a bodies.toml file in the assets directory is used
	// if there is one.
	Bodies string

	// Rotation is how body rotation rates are applied: set or accumulate.
	Rotation orbit.RotationModes `default:"set"`

	// Stars is the number of backdrop stars.
	Stars int `default:"200"`

	// Seed seeds the starfield.
	Seed int64 `default:"1"`

	// MaxConcurrentLoads bounds the number of models decoding at once.
	MaxConcurrentLoads int `default:"4"`

	// Verbose enables debug logging, including load progress.
	Verbose bool `flag:"v,verbose"`

	// Profile writes a cpu or mem profile to the current directory.
	Profile string
}

func main() { //types:skip
	opts := cli.DefaultOptions("solarsystem", "An animated 3D view of the solar system.")
	cli.Run(opts, &Config{}, Run)
}

// Run opens the solar system window.
func Run(c *Config) error { //cli:cmd -root
	if c.Verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}
	defer startProfile(c.Profile)()

	fsys := os.DirFS(c.Assets)
	t, err := bodyTable(c, fsys)
	if err != nil {
		return err
	}
	vo := &solarview.Options{Rotation: c.Rotation, MaxConcurrentLoads: c.MaxConcurrentLoads}
	vo.Stars.Defaults()
	vo.Stars.Count = c.Stars
	vo.Stars.Seed = c.Seed

	b := core.NewBody("Solar System")
	v := solarview.New(b, t, fsys, vo)
	v.Scene.OnShow(func(e events.Event) {
		v.Start(context.Background())
	})
	b.RunMainWindow()
	v.Stop()
	return nil
}

// bodyTable returns the bodies to show: those of the configured file,
// else those of bodies.toml in the assets, else the reference bodies.
func bodyTable(c *Config, fsys fs.FS) (bodies.Table, error) {
	if c.Bodies != "" {
		return bodies.Open(c.Bodies)
	}
	t, err := bodies.OpenFS(fsys, bodiesFile)
	if errors.Is(err, fs.ErrNotExist) {
		return bodies.Reference(), nil
	}
	if err == nil {
		slog.Info("using bodies from assets", "file", bodiesFile)
	}
	return t, err
}
