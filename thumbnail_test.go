// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package furnish

import (
	"bytes"
	"image"
	"image/png"
	"io/fs"
	"testing"
	"testing/fstest"

	"cogentcore.org/furnish/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadThumbnail(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 3))))
	fsys := fstest.MapFS{
		"a.png": {Data: buf.Bytes()},
		"b.png": {Data: []byte("\x89PNG\r\n\x1a\nnot really")},
	}

	img, svg, err := readThumbnail(fsys, "a.png")
	require.NoError(t, err)
	assert.Nil(t, svg)
	assert.Equal(t, image.Rect(0, 0, 4, 3), img.Bounds())

	_, _, err = readThumbnail(fsys, "b.png")
	assert.Error(t, err)

	_, _, err = readThumbnail(fsys, "c.png")
	assert.ErrorIs(t, err, fs.ErrNotExist)

	for _, cat := range catalog.Default().Categories {
		for _, p := range cat.Products {
			img, svg, err := readThumbnail(catalog.Assets, p.Thumbnail)
			require.NoError(t, err, p.ID)
			assert.Nil(t, img, p.ID)
			assert.Contains(t, string(svg), "<svg", p.ID)
		}
	}
}
