// Copyright (c) 2026, The Solar System Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bodies

import (
	"io/fs"

	"cogentcore.org/core/base/iox/tomlx"
	"cogentcore.org/core/math32"
)

// entry is the TOML form of a [Body]. Omitted fields keep the value
// of the reference body with the same id.
type entry struct {
	ID           string
	Source       string
	OrbitRadius  *float32
	AngularSpeed *float32
	Rotation     *math32.Vector3
	Scale        *math32.Vector3
	Phase        *float32
	PlaneY       *float32
	RingRadius   *float32
}

// file is the TOML document holding a table of bodies.
type file struct {
	Bodies []entry
}

// Open reads a body table from the given TOML file.
func Open(filename string) (Table, error) {
	var f file
	if err := tomlx.Open(&f, filename); err != nil {
		return nil, err
	}
	return f.table()
}

// OpenFS reads a body table from the given TOML file in the filesystem.
func OpenFS(fsys fs.FS, filename string) (Table, error) {
	var f file
	if err := tomlx.OpenFS(&f, fsys, filename); err != nil {
		return nil, err
	}
	return f.table()
}

// ReadBytes reads a body table from TOML data.
func ReadBytes(data []byte) (Table, error) {
	var f file
	if err := tomlx.ReadBytes(&f, data); err != nil {
		return nil, err
	}
	return f.table()
}

func (f *file) table() (Table, error) {
	ref := Reference()
	t := make(Table, 0, len(f.Bodies))
	for _, e := range f.Bodies {
		id, err := ParseID(e.ID)
		if err != nil {
			return nil, err
		}
		b := Body{ID: id, Scale: uniform(1)}
		if rb := ref.Lookup(id); rb != nil {
			b = *rb
		}
		if e.Source != "" {
			b.Source = e.Source
		}
		set(&b.OrbitRadius, e.OrbitRadius)
		set(&b.AngularSpeed, e.AngularSpeed)
		set(&b.Rotation, e.Rotation)
		set(&b.Scale, e.Scale)
		set(&b.Phase, e.Phase)
		set(&b.PlaneY, e.PlaneY)
		set(&b.RingRadius, e.RingRadius)
		t = append(t, b)
	}
	return t, t.Validate()
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
