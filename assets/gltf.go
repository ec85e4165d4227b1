// Copyright (c) 2026, The Solar System Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assets

import (
	"bytes"
	"context"
	"fmt"
	"image/color"
	"io"
	"io/fs"
	"os"
	"path"

	"cogentcore.org/core/math32"
	"github.com/h2non/filetype"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// GLBType is the file type of binary glTF files.
var GLBType = filetype.NewType("glb", "model/gltf-binary")

func init() {
	filetype.AddMatcher(GLBType, func(buf []byte) bool {
		return len(buf) >= 4 && string(buf[:4]) == "glTF"
	})
}

// sniffLen is the number of leading bytes read to detect the file format.
const sniffLen = 32

// GLTF loads binary (.glb) and JSON (.gltf) glTF models.
// Buffers referenced by a .gltf file are resolved relative to it in FS.
type GLTF struct {

	// FS is the filesystem models are read from;
	// if nil, the current directory is used.
	FS fs.FS
}

// NewGLTF returns a loader reading from the given filesystem.
func NewGLTF(fsys fs.FS) *GLTF {
	return &GLTF{FS: fsys}
}

func (gl *GLTF) fsys() fs.FS {
	if gl.FS == nil {
		return os.DirFS(".")
	}
	return gl.FS
}

// Load reads and decodes the model at source, reporting
// byte progress to the given function if it is non-nil.
func (gl *GLTF) Load(ctx context.Context, source string, progress ProgressFunc) (*Model, error) {
	fsys := gl.fsys()
	f, err := fsys.Open(source)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var total int64
	if st, err := f.Stat(); err == nil {
		total = st.Size()
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF {
		return nil, fmt.Errorf("assets: reading %s: %w", source, err)
	}
	head = head[:n]
	if !isGLTF(head) {
		kind, _ := filetype.Match(head)
		return nil, fmt.Errorf("assets: %s is not a glTF model (detected %q)", source, kind.Extension)
	}

	rd := &progressReader{
		r:        io.MultiReader(bytes.NewReader(head), f),
		ctx:      ctx,
		total:    total,
		progress: progress,
	}
	dir, err := fs.Sub(fsys, path.Dir(source))
	if err != nil {
		return nil, err
	}
	doc := new(gltf.Document)
	if err := gltf.NewDecoderFS(rd, dir).Decode(doc); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("assets: decoding %s: %w", source, err)
	}
	return Decode(doc, source)
}

// isGLTF returns whether the leading bytes look like a binary
// glTF file or a JSON document.
func isGLTF(head []byte) bool {
	if filetype.IsType(head, GLBType) {
		return true
	}
	trim := bytes.TrimLeft(bytes.TrimPrefix(head, []byte("\xef\xbb\xbf")), " \t\r\n")
	return len(trim) > 0 && trim[0] == '{'
}

// Decode converts the triangle meshes of a glTF document into a [Model],
// applying the node transforms of the default scene.
func Decode(doc *gltf.Document, name string) (*Model, error) {
	md := &Model{Name: name}
	if len(doc.Scenes) == 0 {
		for mi := range doc.Meshes {
			if err := md.addMesh(doc, uint32(mi), *math32.Identity4()); err != nil {
				return nil, err
			}
		}
		return md, nil
	}
	sci := 0
	if doc.Scene != nil {
		sci = int(*doc.Scene)
	}
	if sci >= len(doc.Scenes) {
		return nil, fmt.Errorf("assets: %s: scene %d out of range", name, sci)
	}
	for _, ni := range doc.Scenes[sci].Nodes {
		if err := md.addNode(doc, ni, *math32.Identity4(), 0); err != nil {
			return nil, err
		}
	}
	return md, nil
}

// maxNodeDepth bounds node recursion against cyclic documents.
const maxNodeDepth = 64

func (md *Model) addNode(doc *gltf.Document, ni uint32, parent math32.Matrix4, depth int) error {
	if depth > maxNodeDepth {
		return fmt.Errorf("assets: %s: node hierarchy deeper than %d", md.Name, maxNodeDepth)
	}
	if int(ni) >= len(doc.Nodes) {
		return fmt.Errorf("assets: %s: node %d out of range", md.Name, ni)
	}
	nd := doc.Nodes[ni]
	local := nodeMatrix(nd)
	world := *parent.Mul(&local)
	if nd.Mesh != nil {
		if err := md.addMesh(doc, *nd.Mesh, world); err != nil {
			return err
		}
	}
	for _, ci := range nd.Children {
		if err := md.addNode(doc, ci, world, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// nodeMatrix returns the local transform of the node.
func nodeMatrix(nd *gltf.Node) math32.Matrix4 {
	var m math32.Matrix4
	if mx := nd.MatrixOrDefault(); mx != gltf.DefaultMatrix {
		for i, v := range mx {
			m[i] = float32(v)
		}
		return m
	}
	t := nd.TranslationOrDefault()
	r := nd.RotationOrDefault()
	s := nd.ScaleOrDefault()
	m.SetTransform(
		math32.Vec3(float32(t[0]), float32(t[1]), float32(t[2])),
		math32.NewQuat(float32(r[0]), float32(r[1]), float32(r[2]), float32(r[3])),
		math32.Vec3(float32(s[0]), float32(s[1]), float32(s[2])))
	return m
}

func (md *Model) addMesh(doc *gltf.Document, mi uint32, world math32.Matrix4) error {
	if int(mi) >= len(doc.Meshes) {
		return fmt.Errorf("assets: %s: mesh %d out of range", md.Name, mi)
	}
	mesh := doc.Meshes[mi]
	for pi, prim := range mesh.Primitives {
		if prim.Mode != gltf.PrimitiveTriangles {
			continue
		}
		pr, err := decodePrimitive(doc, prim, world)
		if err != nil {
			return fmt.Errorf("assets: %s: mesh %d primitive %d: %w", md.Name, mi, pi, err)
		}
		pr.Name = fmt.Sprintf("%s/%d/%d", md.Name, len(md.Primitives), pi)
		md.Primitives = append(md.Primitives, *pr)
	}
	return nil
}

func accessor(doc *gltf.Document, idx uint32) (*gltf.Accessor, error) {
	if int(idx) >= len(doc.Accessors) {
		return nil, fmt.Errorf("accessor %d out of range", idx)
	}
	return doc.Accessors[idx], nil
}

func decodePrimitive(doc *gltf.Document, prim *gltf.Primitive, world math32.Matrix4) (*Primitive, error) {
	posi, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		return nil, fmt.Errorf("no %s attribute", gltf.POSITION)
	}
	acc, err := accessor(doc, posi)
	if err != nil {
		return nil, err
	}
	pos, err := modeler.ReadPosition(doc, acc, nil)
	if err != nil {
		return nil, err
	}
	pr := &Primitive{Color: color.RGBA{255, 255, 255, 255}}
	pr.Vertex = make(math32.ArrayF32, 0, 3*len(pos))
	for _, p := range pos {
		v := math32.Vec3(p[0], p[1], p[2]).MulMatrix4(&world)
		pr.Vertex = append(pr.Vertex, v.X, v.Y, v.Z)
	}

	if prim.Indices != nil {
		acc, err := accessor(doc, *prim.Indices)
		if err != nil {
			return nil, err
		}
		idx, err := modeler.ReadIndices(doc, acc, nil)
		if err != nil {
			return nil, err
		}
		pr.Index = idx
	} else {
		pr.Index = make(math32.ArrayU32, len(pos))
		for i := range pr.Index {
			pr.Index[i] = uint32(i)
		}
	}

	if ni, ok := prim.Attributes[gltf.NORMAL]; ok {
		acc, err := accessor(doc, ni)
		if err != nil {
			return nil, err
		}
		nrm, err := modeler.ReadNormal(doc, acc, nil)
		if err != nil {
			return nil, err
		}
		pr.Normal = make(math32.ArrayF32, 0, 3*len(nrm))
		for i, n := range nrm {
			// transform the direction by mapping a point one unit along it
			p := math32.Vec3(pos[i][0], pos[i][1], pos[i][2])
			d := p.Add(math32.Vec3(n[0], n[1], n[2])).MulMatrix4(&world).Sub(p.MulMatrix4(&world)).Normal()
			pr.Normal = append(pr.Normal, d.X, d.Y, d.Z)
		}
	}
	if len(pr.Normal) != len(pr.Vertex) {
		pr.computeNormals()
	}

	if ti, ok := prim.Attributes[gltf.TEXCOORD_0]; ok {
		acc, err := accessor(doc, ti)
		if err != nil {
			return nil, err
		}
		uv, err := modeler.ReadTextureCoord(doc, acc, nil)
		if err != nil {
			return nil, err
		}
		pr.TexCoord = make(math32.ArrayF32, 0, 2*len(uv))
		for _, c := range uv {
			pr.TexCoord = append(pr.TexCoord, c[0], c[1])
		}
	}

	if prim.Material != nil && int(*prim.Material) < len(doc.Materials) {
		mat := doc.Materials[*prim.Material]
		if pbr := mat.PBRMetallicRoughness; pbr != nil && pbr.BaseColorFactor != nil {
			c := pbr.BaseColorFactor
			pr.Color = color.RGBA{unit8(c[0]), unit8(c[1]), unit8(c[2]), unit8(c[3])}
		}
	}
	return pr, nil
}

// unit8 converts a 0-1 color component to 0-255.
func unit8(v float64) uint8 {
	return uint8(math32.Clamp(float32(v), 0, 1)*255 + 0.5)
}

// progressReader reports the bytes read so far and
// stops reading once its context is done.
type progressReader struct {
	r        io.Reader
	ctx      context.Context
	read     int64
	total    int64
	progress ProgressFunc
}

func (pr *progressReader) Read(p []byte) (int, error) {
	if err := pr.ctx.Err(); err != nil {
		return 0, err
	}
	n, err := pr.r.Read(p)
	pr.read += int64(n)
	if n > 0 && pr.progress != nil {
		pr.progress(pr.read, pr.total)
	}
	return n, err
}
