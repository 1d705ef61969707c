// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package catalog provides the static furniture catalog: categories and
// their products, loaded once at startup from TOML or YAML and read-only
// after that.
package catalog

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/furnish/furniture"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.toml
var defaultCatalog []byte

// Assets contains the product thumbnails referenced by the default catalog.
//
//go:embed thumbnails
var Assets embed.FS

var (
	// ErrInvalid is returned for catalogs that fail validation.
	ErrInvalid = errors.New("catalog: invalid catalog")

	// ErrDuplicateID is returned when a category or product id is reused.
	ErrDuplicateID = errors.New("catalog: duplicate id")
)

// Catalog is the full list of categories.
type Catalog struct {

	// Categories are the categories in display order.
	Categories []*Category `toml:"categories" yaml:"categories"`

	// Assets contains the thumbnails of the products, if any.
	Assets fs.FS `toml:"-" yaml:"-"`
}

// Category is a group of products, such as chairs or beds.
type Category struct {

	// ID uniquely identifies the category.
	ID string `toml:"id" yaml:"id"`

	// Name is the display name.
	Name string `toml:"name" yaml:"name"`

	// Icon is the name of the icon shown for the category.
	Icon string `toml:"icon" yaml:"icon"`

	// Products are the products in display order.
	Products []*Product `toml:"products" yaml:"products"`
}

// Product is a catalog entry.
type Product struct {

	// ID uniquely identifies the product across the whole catalog.
	ID string `toml:"id" yaml:"id"`

	// Name is the display name.
	Name string `toml:"name" yaml:"name"`

	// Thumbnail is the path of the thumbnail image in [Catalog.Assets].
	// It may be an SVG file or a PNG, JPEG or WebP image.
	Thumbnail string `toml:"thumbnail" yaml:"thumbnail"`

	// Model is the model identifier used to pick the procedural geometry.
	Model string `toml:"model" yaml:"model"`

	// Variant is the geometry variant resolved from Model at load time.
	Variant furniture.Variants `toml:"-" yaml:"-"`
}

// Default returns the embedded default catalog.
func Default() *Catalog {
	c := errors.Must1(Parse(defaultCatalog))
	c.Assets = Assets
	return c
}

// Parse parses and validates a catalog from TOML bytes.
func Parse(b []byte) (*Catalog, error) {
	return decode(toml.NewDecoder(bytes.NewReader(b)))
}

// Load reads and validates a TOML catalog from the given reader.
func Load(r io.Reader) (*Catalog, error) {
	return decode(toml.NewDecoder(r))
}

// LoadYAML reads and validates a YAML catalog from the given reader.
func LoadYAML(r io.Reader) (*Catalog, error) {
	c := &Catalog{}
	d := yaml.NewDecoder(r)
	d.KnownFields(true)
	if err := d.Decode(c); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := c.resolve(); err != nil {
		return nil, err
	}
	return c, nil
}

// Open loads the catalog file with the given name from the file system.
// Files ending in .yaml or .yml are read as YAML and all others as TOML.
// Thumbnails are looked up relative to the directory of the file.
func Open(fsys fs.FS, name string) (*Catalog, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	load := Load
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		load = LoadYAML
	}
	c, err := load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	c.Assets = fsys
	if dir := path.Dir(name); dir != "." {
		c.Assets = errors.Log1(fs.Sub(fsys, dir))
	}
	return c, nil
}

func decode(d *toml.Decoder) (*Catalog, error) {
	c := &Catalog{}
	if err := d.DisallowUnknownFields().Decode(c); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := c.resolve(); err != nil {
		return nil, err
	}
	return c, nil
}

// resolve validates the catalog and resolves product variants.
func (c *Catalog) resolve() error {
	if len(c.Categories) == 0 {
		return fmt.Errorf("%w: no categories", ErrInvalid)
	}
	cats := map[string]bool{}
	prods := map[string]bool{}
	for ci, cat := range c.Categories {
		if cat == nil || cat.ID == "" || cat.Name == "" {
			return fmt.Errorf("%w: category %d needs an id and a name", ErrInvalid, ci)
		}
		if cats[cat.ID] {
			return fmt.Errorf("%w: category %q", ErrDuplicateID, cat.ID)
		}
		cats[cat.ID] = true
		if len(cat.Products) == 0 {
			return fmt.Errorf("%w: category %q has no products", ErrInvalid, cat.ID)
		}
		for pi, p := range cat.Products {
			if p == nil || p.ID == "" || p.Name == "" {
				return fmt.Errorf("%w: product %d of category %q needs an id and a name", ErrInvalid, pi, cat.ID)
			}
			if prods[p.ID] {
				return fmt.Errorf("%w: product %q", ErrDuplicateID, p.ID)
			}
			prods[p.ID] = true
			p.Variant = furniture.ParseVariant(p.Model)
			if p.Variant == furniture.NoVariant {
				slog.Warn("catalog: unknown model identifier, product will render no geometry", "product", p.ID, "model", p.Model)
			}
		}
	}
	return nil
}

// CategoryByID returns the category with the given id.
func (c *Catalog) CategoryByID(id string) (*Category, bool) {
	for _, cat := range c.Categories {
		if cat.ID == id {
			return cat, true
		}
	}
	return nil, false
}

// ProductByID returns the product with the given id and its category.
func (c *Catalog) ProductByID(id string) (*Category, *Product, bool) {
	for _, cat := range c.Categories {
		if p, ok := cat.ProductByID(id); ok {
			return cat, p, true
		}
	}
	return nil, nil, false
}

// ProductByID returns the product with the given id in this category.
func (cat *Category) ProductByID(id string) (*Product, bool) {
	for _, p := range cat.Products {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}
