// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene turns furniture models into xyz scene graphs: lights
// and camera, one group of solids per model, a soft ground shadow, and
// the placement transform applied to the model group.
package scene

import (
	"fmt"
	"image/color"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/tree"
	"cogentcore.org/core/xyz"
	"cogentcore.org/furnish/furniture"
	"cogentcore.org/furnish/placement"
)

const (
	// ShadowY is the height of the ground shadow.
	ShadowY float32 = -1

	// ShadowAlpha is the alpha of the ground shadow color, about 30%.
	ShadowAlpha uint8 = 76
)

// Configure sets up the camera, lights and background of sc for
// showing a model over the camera feed.
func Configure(sc *xyz.Scene) {
	sc.Background = colors.Uniform(color.RGBA{})

	xyz.NewAmbient(sc, "ambient", 0.7, xyz.DirectSun)

	spot := xyz.NewSpot(sc, "spot", 1, xyz.DirectSun)
	spot.Pose.Pos.Set(10, 10, 10)
	spot.CutoffAngle = 9
	spot.LookAtOrigin()

	dir := xyz.NewDirectional(sc, "directional", 0.5, xyz.DirectSun)
	dir.Pos.Set(-10, -10, -5)

	sc.Camera.FOV = 50
	sc.Camera.Pose.Pos.Set(0, 2, 5)
	sc.Camera.LookAt(math32.Vector3{}, math32.Vec3(0, 1, 0))
	sc.SaveCamera("default")
}

// Build adds a group named after the model variant to parent with one
// solid per part of m. An empty model gives an empty group.
func Build(sc *xyz.Scene, parent tree.Node, m *furniture.Model) *xyz.Group {
	gp := xyz.NewGroup(parent)
	if m.IsEmpty() {
		gp.SetName("empty")
		return gp
	}
	gp.SetName(m.Variant.Token())
	for _, pt := range m.Parts {
		sld := xyz.NewSolid(gp)
		sld.SetName(pt.Name)
		sld.SetMesh(Mesh(sc, pt.Primitive))
		SetMaterial(sld, pt.Material)
		sld.Pose.Pos = pt.Pos
		sld.Pose.Quat.SetFromEuler(pt.Rot)
	}
	return gp
}

// Mesh returns the mesh for the primitive, making it if sc does not
// have one with the same parameters yet.
func Mesh(sc *xyz.Scene, p furniture.Primitive) xyz.Mesh {
	name := meshName(p)
	if ms, err := sc.MeshByName(name); err == nil {
		return ms
	}
	switch p.Shape {
	case furniture.ShapeBox:
		return xyz.NewBox(sc, name, p.Size.X, p.Size.Y, p.Size.Z)
	case furniture.ShapeCylinder:
		return xyz.NewCylinderSector(sc, name, p.Height, p.TopRadius, p.BottomRadius,
			p.RadialSegs, p.HeightSegs, 0, 360, true, true)
	}
	sp := &xyz.Sphere{
		Radius:     p.Radius,
		WidthSegs:  p.RadialSegs,
		HeightSegs: p.HeightSegs,
		AngStart:   math32.RadToDeg(p.PhiStart),
		AngLen:     math32.RadToDeg(p.PhiLength),
		ElevStart:  math32.RadToDeg(p.ThetaStart),
		ElevLen:    math32.RadToDeg(p.ThetaLength),
	}
	sp.Name = name
	sc.SetMesh(sp)
	return sp
}

// meshName returns a name that is unique for the primitive parameters,
// so that equal primitives share one mesh.
func meshName(p furniture.Primitive) string {
	switch p.Shape {
	case furniture.ShapeBox:
		return fmt.Sprintf("box-%g-%g-%g", p.Size.X, p.Size.Y, p.Size.Z)
	case furniture.ShapeCylinder:
		return fmt.Sprintf("cylinder-%g-%g-%g-%d", p.TopRadius, p.BottomRadius, p.Height, p.RadialSegs)
	}
	return fmt.Sprintf("sphere-%g-%d-%d-%g-%g-%g-%g", p.Radius, p.RadialSegs, p.HeightSegs,
		p.PhiStart, p.PhiLength, p.ThetaStart, p.ThetaLength)
}

// SetMaterial sets the material of sld from m. Rough surfaces get a broad,
// weak specular highlight and metallic ones a sharper, stronger one.
func SetMaterial(sld *xyz.Solid, m furniture.Material) {
	shiny, reflective := Phong(m)
	sld.SetColor(m.Color).SetShiny(shiny).SetReflective(reflective)
}

// Phong returns the Phong shininess and reflectiveness for m.
func Phong(m furniture.Material) (shiny, reflective float32) {
	smooth := 1 - math32.Clamp(m.Roughness, 0, 1)
	metal := math32.Clamp(m.Metalness, 0, 1)
	shiny = 2 + 126*smooth*smooth
	reflective = 0.05 + 0.6*smooth + 0.35*metal
	return
}

// Shadow adds a translucent disc under the model at [ShadowY] to parent,
// sized from the model bounds. It returns nil for an empty model.
func Shadow(sc *xyz.Scene, parent tree.Node, m *furniture.Model) *xyz.Solid {
	r := ShadowRadius(m)
	if r == 0 {
		return nil
	}
	ms, err := sc.MeshByName("shadow")
	if err != nil {
		ms = xyz.NewCylinder(sc, "shadow", 0.001, 1, 48, 1, true, false)
	}
	sld := xyz.NewSolid(parent)
	sld.SetName("shadow")
	sld.SetMesh(ms).SetColor(color.RGBA{A: ShadowAlpha}).SetShiny(0).SetReflective(0)
	sld.SetPos(0, ShadowY, 0)
	sld.SetScale(r, 1, r)
	return sld
}

// ShadowRadius returns the radius of the ground shadow for m: slightly
// larger than the half diagonal of its footprint.
func ShadowRadius(m *furniture.Model) float32 {
	bb := m.Bounds()
	if bb.IsEmpty() {
		return 0
	}
	sz := bb.Size()
	return 0.6 * math32.Sqrt(sz.X*sz.X+sz.Z*sz.Z)
}

// Apply applies the placement transform to the model group as one
// rigid transform.
func Apply(gp *xyz.Group, t placement.Transform) {
	gp.Pose.Pos = t.Pos
	gp.Pose.Quat.SetFromEuler(t.Rot)
	gp.Pose.Scale.SetScalar(t.Scale)
}

// ApplyShadow keeps the shadow of radius r under the model: it follows
// the horizontal position and scale of t but stays on the ground.
func ApplyShadow(sld *xyz.Solid, r float32, t placement.Transform) {
	sld.Pose.Pos.Set(t.Pos.X, ShadowY, t.Pos.Z)
	sld.Pose.Scale.Set(r*t.Scale, 1, r*t.Scale)
}
