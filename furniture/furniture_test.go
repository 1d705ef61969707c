// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package furniture

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseVariant(t *testing.T) {
	tests := []struct {
		id   string
		want Variants
	}{
		{"chair1", ShellChair},
		{"chair2", OrganicChair},
		{"sofa1", VintageSofa},
		{"sofa2", LeatherSofa},
		{"bed", PlatformBed},
		{"/models/chair1.glb", ShellChair},
		{"models/sofa2.glb", LeatherSofa},
		{" BED ", PlatformBed},
		{"", NoVariant},
		{"chair", NoVariant},
		{"chair12", NoVariant},
		{"bedside-table", NoVariant},
		{"/models/armchair1.glb", NoVariant},
		{"/", NoVariant},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseVariant(tt.id), "ParseVariant(%q)", tt.id)
	}
}

func TestToken(t *testing.T) {
	for _, v := range VariantsValues() {
		if v == NoVariant {
			assert.Equal(t, "", v.Token())
			continue
		}
		assert.Equal(t, v, ParseVariant(v.Token()))
	}
}

func TestBuildKnownTokens(t *testing.T) {
	for _, tok := range []string{"chair1", "chair2", "sofa1", "sofa2", "bed"} {
		m := Build(ParseVariant(tok))
		if assert.False(t, m.IsEmpty(), tok) {
			assert.False(t, m.Bounds().IsEmpty(), tok)
		}
		names := map[string]bool{}
		for _, pt := range m.Parts {
			assert.False(t, names[pt.Name], "%s: duplicate part %q", tok, pt.Name)
			names[pt.Name] = true
			assert.Equal(t, uint8(0xff), pt.Material.Color.A, "%s/%s", tok, pt.Name)
		}
	}
}

func TestBuildUnknown(t *testing.T) {
	for _, s := range []string{"", "lamp", "chair3", "sofa", "table"} {
		m := Build(ParseVariant(s))
		assert.True(t, m.IsEmpty(), s)
		assert.True(t, m.Bounds().IsEmpty(), s)
	}
	assert.True(t, Build(VariantsN).IsEmpty())
	assert.True(t, Build(Variants(-1)).IsEmpty())

	var m *Model
	assert.True(t, m.IsEmpty())
}

func TestBuildIsFresh(t *testing.T) {
	a := Build(PlatformBed)
	b := Build(PlatformBed)
	a.Parts[0].Pos.X = 10
	assert.NotEqual(t, a.Parts[0].Pos, b.Parts[0].Pos)
}

func TestBounds(t *testing.T) {
	bb := Build(PlatformBed).Bounds()
	sz := bb.Size()
	assert.InDelta(t, 2.2, sz.X, 1e-4)
	assert.InDelta(t, 3.1, sz.Z, 1e-4)

	bb = Build(LeatherSofa).Bounds()
	// the coffee table sits in front of the sofa
	assert.Greater(t, bb.Max.Z, float32(2))
}

func TestPrimitiveBounds(t *testing.T) {
	bb := Box(2, 4, 6).Bounds()
	assert.Equal(t, float32(-1), bb.Min.X)
	assert.Equal(t, float32(3), bb.Max.Z)

	bb = Cylinder(0.05, 2.2, 0.8, 0).Bounds()
	assert.Equal(t, float32(2.2), bb.Max.X)
	assert.InDelta(t, 0.4, bb.Max.Y, 1e-6)

	assert.Equal(t, defaultSegments, Cylinder(1, 1, 1, 0).RadialSegs)
	assert.Equal(t, ShapeSphere, Sphere(1, 8, 8).Shape)
	assert.True(t, Primitive{Shape: ShapesN}.Bounds().IsEmpty())
}
