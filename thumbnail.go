// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package furnish

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/core"
	"cogentcore.org/core/styles"
	"cogentcore.org/core/styles/units"
	"github.com/h2non/filetype"
	_ "golang.org/x/image/webp"
)

// readThumbnail reads a thumbnail from fsys. It returns a decoded image
// for raster files and the raw data for SVG files.
func readThumbnail(fsys fs.FS, name string) (image.Image, []byte, error) {
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, nil, err
	}
	if !filetype.IsImage(b) {
		return nil, b, nil
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, nil, fmt.Errorf("thumbnail %s: %w", name, err)
	}
	return img, nil, nil
}

// makeThumbnail adds the thumbnail with the given name to p.
// Nothing is added if it can not be read.
func makeThumbnail(p core.Widget, fsys fs.FS, name string) {
	if fsys == nil || name == "" {
		return
	}
	img, svg, err := readThumbnail(fsys, name)
	if errors.Log(err) != nil {
		return
	}
	size := func(s *styles.Style) {
		s.Min.Set(units.Em(10))
	}
	if img != nil {
		core.NewImage(p).SetImage(img).Styler(size)
		return
	}
	sv := core.NewSVG(p)
	sv.Styler(size)
	errors.Log(sv.ReadBytes(svg))
}
