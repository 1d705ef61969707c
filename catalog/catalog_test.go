// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catalog

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"

	"cogentcore.org/furnish/furniture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()
	require.Len(t, c.Categories, 3)

	ids := []string{}
	for _, cat := range c.Categories {
		ids = append(ids, cat.ID)
	}
	assert.Equal(t, []string{"chairs", "sofas", "beds"}, ids)

	want := map[string]furniture.Variants{
		"ac001": furniture.ShellChair,
		"ac002": furniture.OrganicChair,
		"sf001": furniture.VintageSofa,
		"sf002": furniture.LeatherSofa,
		"tb001": furniture.PlatformBed,
	}
	n := 0
	for _, cat := range c.Categories {
		for _, p := range cat.Products {
			n++
			assert.Equal(t, want[p.ID], p.Variant, p.ID)
			_, err := fs.Stat(Assets, p.Thumbnail)
			assert.NoError(t, err, p.ID)
		}
	}
	assert.Equal(t, len(want), n)
}

func TestLookup(t *testing.T) {
	c := Default()

	cat, ok := c.CategoryByID("sofas")
	require.True(t, ok)
	assert.Equal(t, "Sofas", cat.Name)

	p, ok := cat.ProductByID("sf002")
	require.True(t, ok)
	assert.Equal(t, "Loveseat Couch", p.Name)

	_, ok = cat.ProductByID("ac001")
	assert.False(t, ok)

	pc, p, ok := c.ProductByID("tb001")
	require.True(t, ok)
	assert.Equal(t, "beds", pc.ID)
	assert.Equal(t, "Platform Bed", p.Name)

	_, ok = c.CategoryByID("lamps")
	assert.False(t, ok)
	_, _, ok = c.ProductByID("zz999")
	assert.False(t, ok)
}

const lampCatalog = `
[[categories]]
id = "lamps"
name = "Lamps"

[[categories.products]]
id = "lp001"
name = "Floor Lamp"
model = "/models/lamp.glb"
`

func TestUnknownModel(t *testing.T) {
	c, err := Parse([]byte(lampCatalog))
	require.NoError(t, err)
	_, p, ok := c.ProductByID("lp001")
	require.True(t, ok)
	assert.Equal(t, furniture.NoVariant, p.Variant)
}

func TestInvalid(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{"empty", ``, ErrInvalid},
		{"unknown key", `
[[categories]]
id = "a"
name = "A"
color = "red"
[[categories.products]]
id = "p"
name = "P"
`, ErrInvalid},
		{"no products", `
[[categories]]
id = "a"
name = "A"
`, ErrInvalid},
		{"missing name", `
[[categories]]
id = "a"
[[categories.products]]
id = "p"
name = "P"
`, ErrInvalid},
		{"missing product id", `
[[categories]]
id = "a"
name = "A"
[[categories.products]]
name = "P"
`, ErrInvalid},
		{"duplicate category", `
[[categories]]
id = "a"
name = "A"
[[categories.products]]
id = "p1"
name = "P"
[[categories]]
id = "a"
name = "B"
[[categories.products]]
id = "p2"
name = "P"
`, ErrDuplicateID},
		{"duplicate product across categories", `
[[categories]]
id = "a"
name = "A"
[[categories.products]]
id = "p"
name = "P"
[[categories]]
id = "b"
name = "B"
[[categories.products]]
id = "p"
name = "P"
`, ErrDuplicateID},
		{"bad syntax", `[[categories`, ErrInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Load(strings.NewReader(tt.src))
			assert.Nil(t, c)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestOpen(t *testing.T) {
	fsys := fstest.MapFS{
		"lamps.toml": {Data: []byte(lampCatalog)},
		"bad.toml":   {Data: []byte(`[[categories]]`)},
	}
	c, err := Open(fsys, "lamps.toml")
	require.NoError(t, err)
	assert.Len(t, c.Categories, 1)

	_, err = Open(fsys, "bad.toml")
	assert.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "bad.toml")

	_, err = Open(fsys, "missing.toml")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

const lampYAML = `
categories:
  - id: lamps
    name: Lamps
    icon: lightbulb
    products:
      - id: lp001
        name: Floor Lamp
        thumbnail: lamp.png
        model: /models/bed.glb
`

func TestLoadYAML(t *testing.T) {
	c, err := LoadYAML(strings.NewReader(lampYAML))
	require.NoError(t, err)
	cat, p, ok := c.ProductByID("lp001")
	require.True(t, ok)
	assert.Equal(t, "lightbulb", cat.Icon)
	assert.Equal(t, "lamp.png", p.Thumbnail)
	assert.Equal(t, furniture.PlatformBed, p.Variant)

	_, err = LoadYAML(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrInvalid)
	_, err = LoadYAML(strings.NewReader("categories:\n  - id: a\n    name: A\n    color: red\n"))
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestOpenAssets(t *testing.T) {
	fsys := fstest.MapFS{
		"shop/lamps.yaml": {Data: []byte(lampYAML)},
		"shop/lamp.png":   {Data: []byte("png")},
		"lamps.toml":      {Data: []byte(lampCatalog)},
	}
	c, err := Open(fsys, "shop/lamps.yaml")
	require.NoError(t, err)
	require.NotNil(t, c.Assets)
	_, err = fs.Stat(c.Assets, "lamp.png")
	assert.NoError(t, err)

	c, err = Open(fsys, "lamps.toml")
	require.NoError(t, err)
	_, err = fs.Stat(c.Assets, "shop/lamp.png")
	assert.NoError(t, err)

	assert.Equal(t, Assets, Default().Assets)
}
