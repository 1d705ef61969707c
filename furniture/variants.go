// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package furniture

import "cogentcore.org/core/math32"

const pi = math32.Pi

var (
	shellFabric   = Material{Color: rgb(0xA8B8C8), Roughness: 0.7}
	shellLegs     = Material{Color: rgb(0xD2691E), Roughness: 0.8}
	organicFabric = Material{Color: rgb(0xD2B48C), Roughness: 0.6}
	organicLegs   = Material{Color: rgb(0x8B4513), Roughness: 0.9}
	vintageFabric = Material{Color: rgb(0xD3D3D3), Roughness: 0.6}
	vintageFrame  = Material{Color: rgb(0x8B4513), Roughness: 0.8}
	leather       = Material{Color: rgb(0x2F1B14), Roughness: 0.3, Metalness: 0.1}
	tableWood     = Material{Color: rgb(0x654321), Roughness: 0.8}
	bedFrame      = Material{Color: rgb(0x654321), Roughness: 0.8}
	bedLinen      = Material{Color: rgb(0xFFFFFF), Roughness: 0.9}
	comforter     = Material{Color: rgb(0xF8F8FF), Roughness: 0.8}
	headboard     = Material{Color: rgb(0x4A4A4A), Roughness: 0.7}
)

// legs returns four legs at the given x/z footprint, with per leg rotation.
func legs(prim Primitive, mat Material, y float32, xz [4][2]float32, rot func(i int) math32.Vector3) []Part {
	names := [4]string{"leg-fl", "leg-fr", "leg-bl", "leg-br"}
	parts := make([]Part, 4)
	for i, p := range xz {
		parts[i] = Part{Name: names[i], Primitive: prim, Pos: math32.Vec3(p[0], y, p[1]), Rot: rot(i), Material: mat}
	}
	return parts
}

func shellChair() []Part {
	parts := []Part{
		{Name: "seat", Primitive: SphereSector(0.65, 16, 8, 0, 2*pi, 0, pi*0.7),
			Pos: math32.Vec3(0, 0.45, 0), Rot: math32.Vec3(-0.1, 0, 0), Material: shellFabric},
		{Name: "back", Primitive: SphereSector(0.6, 16, 8, 0, 2*pi, pi*0.3, pi*0.4),
			Pos: math32.Vec3(0, 0.9, -0.3), Rot: math32.Vec3(0.2, 0, 0), Material: shellFabric},
		{Name: "arm-left", Primitive: Cylinder(0.08, 0.1, 0.4, 0),
			Pos: math32.Vec3(-0.45, 0.65, -0.1), Rot: math32.Vec3(0, 0, -0.3), Material: shellFabric},
		{Name: "arm-right", Primitive: Cylinder(0.08, 0.1, 0.4, 0),
			Pos: math32.Vec3(0.45, 0.65, -0.1), Rot: math32.Vec3(0, 0, 0.3), Material: shellFabric},
	}
	xz := [4][2]float32{{-0.3, -0.2}, {0.3, -0.2}, {-0.3, 0.3}, {0.3, 0.3}}
	return append(parts, legs(Cylinder(0.03, 0.04, 0.9, 0), shellLegs, 0, xz, func(i int) math32.Vector3 {
		if i%2 == 0 {
			return math32.Vec3(0.05, 0, 0.05)
		}
		return math32.Vec3(0.05, 0, -0.05)
	})...)
}

func organicChair() []Part {
	parts := []Part{
		{Name: "shell", Primitive: SphereSector(0.7, 16, 12, 0, 2*pi, 0, pi*0.8),
			Pos: math32.Vec3(0, 0.5, 0), Material: organicFabric},
		{Name: "back", Primitive: SphereSector(0.55, 12, 8, 0, 2*pi, pi*0.2, pi*0.4),
			Pos: math32.Vec3(0, 0.8, -0.35), Rot: math32.Vec3(0.3, 0, 0), Material: organicFabric},
	}
	xz := [4][2]float32{{-0.25, -0.15}, {0.25, -0.15}, {-0.25, 0.25}, {0.25, 0.25}}
	return append(parts, legs(Cylinder(0.025, 0.035, 0.85, 0), organicLegs, 0, xz, func(i int) math32.Vector3 {
		return math32.Vec3(0, float32(i)*pi/8, 0)
	})...)
}

func vintageSofa() []Part {
	return []Part{
		{Name: "base", Primitive: Box(2.2, 0.5, 0.9),
			Pos: math32.Vec3(0, 0.35, 0), Material: vintageFabric},
		{Name: "back", Primitive: Cylinder(0.05, 2.2, 0.8, 32),
			Pos: math32.Vec3(0, 0.75, -0.35), Rot: math32.Vec3(0.1, 0, 0), Material: vintageFabric},
		{Name: "arm-left", Primitive: SphereSector(0.35, 12, 8, 0, pi, 0, pi),
			Pos: math32.Vec3(-1.0, 0.7, 0), Rot: math32.Vec3(0, 0, -0.1), Material: vintageFabric},
		{Name: "arm-right", Primitive: SphereSector(0.35, 12, 8, 0, pi, 0, pi),
			Pos: math32.Vec3(1.0, 0.7, 0), Rot: math32.Vec3(0, 0, 0.1), Material: vintageFabric},
		{Name: "frame", Primitive: Box(2.4, 0.1, 0.05),
			Pos: math32.Vec3(0, 0.1, 0.45), Material: vintageFrame},
	}
}

func leatherSofa() []Part {
	parts := []Part{
		{Name: "base", Primitive: Box(2.8, 0.6, 1.1),
			Pos: math32.Vec3(0, 0.4, 0), Material: leather},
		{Name: "back", Primitive: Box(2.8, 1.0, 0.2),
			Pos: math32.Vec3(0, 0.9, -0.45), Material: leather},
		{Name: "arm-left", Primitive: Box(0.3, 0.8, 1.1),
			Pos: math32.Vec3(-1.3, 0.8, 0), Material: leather},
		{Name: "arm-right", Primitive: Box(0.3, 0.8, 1.1),
			Pos: math32.Vec3(1.3, 0.8, 0), Material: leather},
		{Name: "table-top", Primitive: Box(1.2, 0.05, 0.6),
			Pos: math32.Vec3(0, 0.2, 1.8), Material: tableWood},
	}
	xz := [4][2]float32{{-0.5, 0.9}, {0.5, 0.9}, {-0.5, 1.5}, {0.5, 1.5}}
	return append(parts, legs(Cylinder(0.03, 0.03, 0.4, 0), tableWood, 0.1, xz, func(int) math32.Vector3 {
		return math32.Vector3{}
	})...)
}

func platformBed() []Part {
	return []Part{
		{Name: "frame", Primitive: Box(2.1, 0.1, 3.1),
			Pos: math32.Vec3(0, 0.25, 0), Material: bedFrame},
		{Name: "mattress", Primitive: Box(2.0, 0.2, 3.0),
			Pos: math32.Vec3(0, 0.35, 0), Material: bedLinen},
		{Name: "comforter", Primitive: Box(1.95, 0.05, 2.9),
			Pos: math32.Vec3(0, 0.42, 0), Material: comforter},
		{Name: "headboard", Primitive: Box(2.2, 1.2, 0.1),
			Pos: math32.Vec3(0, 0.9, -1.5), Material: headboard},
		{Name: "pillow-left", Primitive: Box(0.4, 0.15, 0.3),
			Pos: math32.Vec3(-0.4, 0.5, -1.2), Material: bedLinen},
		{Name: "pillow-right", Primitive: Box(0.4, 0.15, 0.3),
			Pos: math32.Vec3(0.4, 0.5, -1.2), Material: bedLinen},
	}
}
