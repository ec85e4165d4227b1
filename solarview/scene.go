// Copyright (c) 2026, The Solar System Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solarview

import (
	"fmt"
	"image/color"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/xyz"

	"github.com/solarview/solarsystem/assets"
	"github.com/solarview/solarsystem/bodies"
	"github.com/solarview/solarsystem/orbit"
	"github.com/solarview/solarsystem/starfield"
)

const (
	// ringTube is the tube radius of the orbit rings.
	ringTube = 0.05

	// farPlane is the camera far clipping distance.
	farPlane = 4110

	// ambientLumens is the strength of the ambient light.
	ambientLumens = 2
)

// ambientColor is the color of the ambient light.
var ambientColor = color.RGBA{0x88, 0x8a, 0x89, 0xff}

// configScene sets up the camera, lights and background of the scene.
func configScene(sc *xyz.Scene) {
	sc.Background = colors.Uniform(colors.Black)
	sc.Camera.FOV = 75
	sc.Camera.Near = 0.1
	sc.Camera.Far = farPlane
	sc.Camera.Pose.Pos.Set(0, 0, 30)
	sc.Camera.LookAt(math32.Vector3{}, math32.Vec3(0, 1, 0))
	sc.SaveCamera("default")
	configLights(sc)
}

// configLights adds the sun at the origin and a grey ambient light.
func configLights(sc *xyz.Scene) {
	sun := xyz.NewPointLight(sc, "sun", 1, xyz.DirectSun)
	sun.Pos.Set(0, 0, 0)
	amb := xyz.NewAmbientLight(sc, "ambient", ambientLumens, xyz.DirectSun)
	amb.Color = ambientColor
}

// addStars adds the starfield backdrop under its own group.
func addStars(sc *xyz.Scene, f *starfield.Field) {
	gp := xyz.NewGroup(sc)
	gp.SetName("stars")
	sm := xyz.NewSphere(sc, "star", f.Radius, 16)
	for _, p := range f.Positions() {
		xyz.NewSolid(gp).SetMesh(sm).SetColor(colors.White).
			SetEmissive(colors.White).SetPos(p.X, p.Y, p.Z)
	}
}

// addRings adds a flat ring in the orbital plane for each body with a ring radius.
func addRings(sc *xyz.Scene, t bodies.Table) {
	gp := xyz.NewGroup(sc)
	gp.SetName("rings")
	for _, b := range t {
		if b.RingRadius <= 0 {
			continue
		}
		tm := xyz.NewTorus(sc, fmt.Sprintf("ring-%s", b.ID), b.RingRadius, ringTube, 64)
		rs := xyz.NewSolid(gp).SetMesh(tm).SetColor(colors.White)
		rs.SetName(tm.Name)
		placeRing(&rs.Pose, &b)
	}
}

// placeRing lays a torus, which is built in the XY plane,
// flat in the orbital plane of the body.
func placeRing(ps *xyz.Pose, b *bodies.Body) {
	ps.Pos.Set(0, b.PlaneY, 0)
	ps.SetAxisRotation(1, 0, 0, 90)
}

// Realizer turns decoded models into body groups in a scene.
type Realizer struct {

	// Scene holds the meshes.
	Scene *xyz.Scene

	// Parent is the node the body groups are added under.
	Parent *xyz.Group
}

// Realize builds the group of solids for a body from its model, scales
// and places it at its time zero position, and adds it to the scene.
func (rz *Realizer) Realize(b *bodies.Body, md *assets.Model) (*xyz.Group, error) {
	if len(md.Primitives) == 0 {
		return nil, fmt.Errorf("solarview: model %s has no triangle meshes", md.Name)
	}
	gp := xyz.NewGroup(rz.Parent)
	gp.SetName(b.ID.String())
	for i := range md.Primitives {
		pr := &md.Primitives[i]
		ms := &xyz.GenMesh{Vertex: pr.Vertex, Normal: pr.Normal, TexCoord: pr.TexCoord, Index: pr.Index}
		ms.Name = b.ID.String() + ":" + pr.Name
		rz.Scene.SetMesh(ms)
		xyz.NewSolid(gp).SetMesh(ms).SetColor(pr.Color)
	}
	orbit.Place(Handle{gp}, b)
	rz.Scene.SetNeedsUpdate()
	return gp, nil
}
