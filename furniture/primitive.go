// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package furniture

import "cogentcore.org/core/math32"

// Shapes are the kinds of primitive solids.
type Shapes int32 //enums:enum -trim-prefix Shape

const (
	// ShapeBox is an axis aligned box centered on the origin.
	ShapeBox Shapes = iota

	// ShapeCylinder is a cylinder along the Y axis centered on the origin,
	// possibly tapered.
	ShapeCylinder

	// ShapeSphere is a sphere or sphere sector centered on the origin.
	ShapeSphere
)

// defaultSegments is the radial segment count used when none is given.
const defaultSegments = 32

// Primitive describes one primitive solid. Which fields apply depends
// on the [Shapes] value; use [Box], [Cylinder] or [Sphere] to make one.
type Primitive struct {
	Shape Shapes

	// Size is the width, height and depth of a box.
	Size math32.Vector3

	// Height is the height of a cylinder.
	Height float32

	// TopRadius and BottomRadius are the radii of a cylinder.
	TopRadius, BottomRadius float32

	// Radius is the radius of a sphere.
	Radius float32

	// RadialSegs is the number of segments around the Y axis.
	RadialSegs int

	// HeightSegs is the number of segments along the Y axis.
	HeightSegs int

	// PhiStart and PhiLength are the horizontal sweep of a sphere in radians.
	PhiStart, PhiLength float32

	// ThetaStart and ThetaLength are the vertical sweep of a sphere in radians,
	// where 0 is the top pole.
	ThetaStart, ThetaLength float32
}

// Box returns a box primitive of the given size.
func Box(width, height, depth float32) Primitive {
	return Primitive{Shape: ShapeBox, Size: math32.Vec3(width, height, depth)}
}

// Cylinder returns a cylinder primitive with the given top and bottom radii.
// segs <= 0 uses the default segment count.
func Cylinder(top, bottom, height float32, segs int) Primitive {
	if segs <= 0 {
		segs = defaultSegments
	}
	return Primitive{Shape: ShapeCylinder, TopRadius: top, BottomRadius: bottom, Height: height, RadialSegs: segs, HeightSegs: 1}
}

// Sphere returns a full sphere primitive.
func Sphere(radius float32, widthSegs, heightSegs int) Primitive {
	return SphereSector(radius, widthSegs, heightSegs, 0, 2*math32.Pi, 0, math32.Pi)
}

// SphereSector returns a partial sphere primitive sweeping
// phiLength radians horizontally from phiStart and thetaLength radians
// down from thetaStart.
func SphereSector(radius float32, widthSegs, heightSegs int, phiStart, phiLength, thetaStart, thetaLength float32) Primitive {
	return Primitive{
		Shape: ShapeSphere, Radius: radius, RadialSegs: widthSegs, HeightSegs: heightSegs,
		PhiStart: phiStart, PhiLength: phiLength, ThetaStart: thetaStart, ThetaLength: thetaLength,
	}
}

// Bounds returns the local bounding box of the primitive. For sphere
// sectors this is the box of the full sphere.
func (p Primitive) Bounds() math32.Box3 {
	switch p.Shape {
	case ShapeBox:
		h := p.Size.MulScalar(0.5)
		return math32.B3(-h.X, -h.Y, -h.Z, h.X, h.Y, h.Z)
	case ShapeCylinder:
		r := max(p.TopRadius, p.BottomRadius)
		h := p.Height / 2
		return math32.B3(-r, -h, -r, r, h, r)
	case ShapeSphere:
		r := p.Radius
		return math32.B3(-r, -r, -r, r, r, r)
	}
	return math32.B3Empty()
}
