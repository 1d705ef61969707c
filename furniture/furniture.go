// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package furniture provides the procedural stand-in models shown for
// catalog products. Each [Variants] value maps to a fixed composition of
// primitive solids (boxes, cylinders and partial spheres) with fixed
// offsets and materials. No authored 3D assets are loaded.
package furniture

//go:generate core generate

import (
	"image/color"
	"path"
	"strings"

	"cogentcore.org/core/math32"
)

// Variants are the procedural geometry variants that can represent a product.
type Variants int32 //enums:enum

const (
	// NoVariant has no geometry; it is used for unknown model identifiers.
	NoVariant Variants = iota

	// ShellChair is a modern shell chair with arms and wooden legs.
	ShellChair

	// OrganicChair is a curved organic armchair.
	OrganicChair

	// VintageSofa is a light vintage-style sofa with a wooden frame.
	VintageSofa

	// LeatherSofa is a dark leather sofa with a coffee table.
	LeatherSofa

	// PlatformBed is a platform bed with white bedding and a dark headboard.
	PlatformBed
)

// tokens maps model identifier tokens to variants.
var tokens = map[string]Variants{
	"chair1": ShellChair,
	"chair2": OrganicChair,
	"sofa1":  VintageSofa,
	"sofa2":  LeatherSofa,
	"bed":    PlatformBed,
}

// ParseVariant resolves a model identifier to a variant. The identifier
// may be a bare token ("chair1") or an asset style path
// ("/models/chair1.glb"); the base name without extension must match a
// known token exactly. Anything else resolves to [NoVariant].
func ParseVariant(modelID string) Variants {
	base := path.Base(strings.TrimSpace(modelID))
	base = strings.TrimSuffix(base, path.Ext(base))
	return tokens[strings.ToLower(base)]
}

// Token returns the model identifier token for the variant,
// or "" for [NoVariant].
func (v Variants) Token() string {
	for tok, tv := range tokens {
		if tv == v {
			return tok
		}
	}
	return ""
}

// Material is the surface description of a [Part].
type Material struct {

	// Color is the base color of the surface.
	Color color.RGBA

	// Roughness is the microsurface roughness in [0, 1];
	// 1 is fully diffuse.
	Roughness float32

	// Metalness is how metallic the surface is in [0, 1].
	Metalness float32
}

// Part is one primitive solid of a [Model], placed relative to the
// model origin.
type Part struct {

	// Name identifies the part within the model.
	Name string

	// Primitive is the shape of the part.
	Primitive Primitive

	// Pos is the offset of the part from the model origin.
	Pos math32.Vector3

	// Rot is the Euler rotation of the part, in radians.
	Rot math32.Vector3

	// Material is the surface of the part.
	Material Material
}

// Bounds returns the bounding box of the part in model coordinates.
func (pt *Part) Bounds() math32.Box3 {
	var q math32.Quat
	q.SetFromEuler(pt.Rot)
	return pt.Primitive.Bounds().MulQuat(q).Translate(pt.Pos)
}

// Model is a rigid group of parts representing one product.
// The placement transform is always applied to the model as a whole.
type Model struct {

	// Variant is the variant this model was built from.
	Variant Variants

	// Parts are the primitive solids of the model.
	Parts []Part
}

// IsEmpty returns whether the model has no geometry.
func (m *Model) IsEmpty() bool {
	return m == nil || len(m.Parts) == 0
}

// Bounds returns the bounding box of all parts, which is empty
// for an empty model.
func (m *Model) Bounds() math32.Box3 {
	bb := math32.B3Empty()
	if m.IsEmpty() {
		return bb
	}
	for i := range m.Parts {
		bb = bb.Union(m.Parts[i].Bounds())
	}
	return bb
}

// Build returns the model for the given variant. [NoVariant] and
// values outside the known set yield an empty model.
func Build(v Variants) *Model {
	m := &Model{Variant: v}
	if mk, ok := builders[v]; ok {
		m.Parts = mk()
	}
	return m
}

var builders = map[Variants]func() []Part{
	ShellChair:   shellChair,
	OrganicChair: organicChair,
	VintageSofa:  vintageSofa,
	LeatherSofa:  leatherSofa,
	PlatformBed:  platformBed,
}

// rgb returns an opaque color from a 0xRRGGBB value.
func rgb(hex uint32) color.RGBA {
	return color.RGBA{uint8(hex >> 16), uint8(hex >> 8), uint8(hex), 0xff}
}
