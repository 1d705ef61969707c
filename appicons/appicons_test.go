// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package appicons

import (
	"strings"
	"testing"

	"cogentcore.org/furnish/catalog"
	"github.com/stretchr/testify/assert"
)

func TestByName(t *testing.T) {
	for _, cat := range catalog.Default().Categories {
		ic := ByName(cat.Icon)
		assert.NotEqual(t, Category, ic, cat.ID)
		assert.True(t, strings.HasPrefix(string(ic), "<svg"), cat.ID)
	}
	assert.Equal(t, Category, ByName("lamp"))
	assert.Equal(t, Category, ByName(""))
}
