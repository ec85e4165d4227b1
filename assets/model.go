// Copyright (c) 2026, The Solar System Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assets

import (
	"image/color"

	"cogentcore.org/core/math32"
)

// Model is a decoded 3D model, independent of any GPU state,
// ready to be turned into scene nodes on the render thread.
type Model struct {

	// Name is the source the model was loaded from.
	Name string

	// Primitives are the triangle meshes of the model,
	// with node transforms already applied.
	Primitives []Primitive
}

// Primitive is one triangle mesh with a single material color.
type Primitive struct {

	// Name is unique within the model.
	Name string

	// Vertex has 3 position components per vertex.
	Vertex math32.ArrayF32

	// Normal has 3 normal components per vertex.
	Normal math32.ArrayF32

	// TexCoord has 2 texture coordinates per vertex, or is empty.
	TexCoord math32.ArrayF32

	// Index has 3 vertex indexes per triangle.
	Index math32.ArrayU32

	// Color is the base color of the material.
	Color color.RGBA
}

// NumVertex returns the number of vertices.
func (pr *Primitive) NumVertex() int {
	return len(pr.Vertex) / 3
}

// computeNormals sets smooth per-vertex normals from the triangle faces.
func (pr *Primitive) computeNormals() {
	nv := pr.NumVertex()
	acc := make([]math32.Vector3, nv)
	vert := func(i uint32) math32.Vector3 {
		return math32.Vec3(pr.Vertex[3*i], pr.Vertex[3*i+1], pr.Vertex[3*i+2])
	}
	for t := 0; t+2 < len(pr.Index); t += 3 {
		a, b, c := pr.Index[t], pr.Index[t+1], pr.Index[t+2]
		if int(a) >= nv || int(b) >= nv || int(c) >= nv {
			continue
		}
		va, vb, vc := vert(a), vert(b), vert(c)
		fn := vb.Sub(va).Cross(vc.Sub(va))
		acc[a] = acc[a].Add(fn)
		acc[b] = acc[b].Add(fn)
		acc[c] = acc[c].Add(fn)
	}
	pr.Normal = make(math32.ArrayF32, 3*nv)
	for i, n := range acc {
		n = n.Normal()
		pr.Normal[3*i], pr.Normal[3*i+1], pr.Normal[3*i+2] = n.X, n.Y, n.Z
	}
}
