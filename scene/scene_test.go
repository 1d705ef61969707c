// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"testing"

	"cogentcore.org/core/math32"
	"cogentcore.org/core/xyz"
	"cogentcore.org/furnish/furniture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeshName(t *testing.T) {
	names := map[string]bool{}
	for _, v := range furniture.VariantsValues() {
		for _, pt := range furniture.Build(v).Parts {
			names[meshName(pt.Primitive)] = true
		}
	}
	// the four legs of each variant share one mesh
	assert.Less(t, len(names), 30)
	assert.Equal(t, "box-2-0.2-3", meshName(furniture.Box(2, 0.2, 3)))
	assert.NotEqual(t, meshName(furniture.Cylinder(1, 1, 1, 8)), meshName(furniture.Cylinder(1, 1, 1, 16)))
	assert.NotEqual(t, meshName(furniture.Sphere(1, 8, 8)), meshName(furniture.SphereSector(1, 8, 8, 0, 1, 0, 1)))
}

func TestPhong(t *testing.T) {
	roughS, roughR := Phong(furniture.Material{Roughness: 0.9})
	leatherS, leatherR := Phong(furniture.Material{Roughness: 0.3, Metalness: 0.1})
	assert.Less(t, roughS, leatherS)
	assert.Less(t, roughR, leatherR)

	s, r := Phong(furniture.Material{Roughness: 5, Metalness: -1})
	assert.Equal(t, float32(2), s)
	assert.InDelta(t, 0.05, r, 1e-6)

	s, r = Phong(furniture.Material{Metalness: 1})
	assert.Equal(t, float32(128), s)
	assert.InDelta(t, 1, r, 1e-6)
}

func TestShadowRadius(t *testing.T) {
	assert.Equal(t, float32(0), ShadowRadius(furniture.Build(furniture.NoVariant)))
	assert.Equal(t, float32(0), ShadowRadius(nil))

	bed := ShadowRadius(furniture.Build(furniture.PlatformBed))
	chair := ShadowRadius(furniture.Build(furniture.ShellChair))
	assert.Greater(t, bed, chair)
	assert.Greater(t, bed, float32(1.55))
}

func TestBuild(t *testing.T) {
	sc := xyz.NewScene()
	Configure(sc)
	m := furniture.Build(furniture.PlatformBed)
	gp := Build(sc, sc, m)
	assert.Equal(t, m.Variant.Token(), gp.Name)
	assert.Equal(t, len(m.Parts), gp.NumChildren())

	ms, err := sc.MeshByName(meshName(m.Parts[0].Primitive))
	require.NoError(t, err)
	assert.Same(t, ms, Mesh(sc, m.Parts[0].Primitive))

	sld := Shadow(sc, sc, m)
	require.NotNil(t, sld)
	assert.Equal(t, ShadowAlpha, sld.Material.Color.A)
	assert.Equal(t, ShadowY, sld.Pose.Pos.Y)
	again := Shadow(sc, sc, m)
	assert.Same(t, sld.Mesh, again.Mesh)

	assert.Nil(t, Shadow(sc, sc, furniture.Build(furniture.NoVariant)))
	assert.Equal(t, "empty", Build(sc, sc, furniture.Build(furniture.NoVariant)).Name)
}

func TestSphereMesh(t *testing.T) {
	sc := xyz.NewScene()
	p := furniture.SphereSector(1, 12, 6, 0, math32.Pi, 0, math32.Pi/2)
	sp, ok := Mesh(sc, p).(*xyz.Sphere)
	require.True(t, ok)
	assert.Equal(t, meshName(p), sp.Name)
	assert.Equal(t, 12, sp.WidthSegs)
	assert.Equal(t, 6, sp.HeightSegs)
	assert.InDelta(t, 180, sp.AngLen, 1e-3)
	assert.InDelta(t, 90, sp.ElevLen, 1e-3)

	ms, err := sc.MeshByName(meshName(p))
	require.NoError(t, err)
	assert.Same(t, sp, ms)
}
