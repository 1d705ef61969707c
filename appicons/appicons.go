// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package appicons provides the Material Symbols icons used by furnish
// that are not part of the core icon set.
package appicons

import (
	_ "embed"

	"cogentcore.org/core/icons"
)

var (
	//go:embed svg/bed.svg
	Bed icons.Icon

	//go:embed svg/category.svg
	Category icons.Icon

	//go:embed svg/chair.svg
	Chair icons.Icon

	//go:embed svg/check_circle.svg
	CheckCircle icons.Icon

	//go:embed svg/open_with.svg
	OpenWith icons.Icon

	//go:embed svg/rotate_right.svg
	RotateRight icons.Icon

	//go:embed svg/touch_app.svg
	TouchApp icons.Icon

	//go:embed svg/view_in_ar.svg
	ViewInAR icons.Icon

	//go:embed svg/weekend.svg
	Weekend icons.Icon
)

// byName maps catalog icon names to icons.
var byName = map[string]icons.Icon{
	"bed":      Bed,
	"chair":    Chair,
	"weekend":  Weekend,
	"category": Category,
}

// ByName returns the icon with the given catalog icon name,
// or [Category] if there is none.
func ByName(name string) icons.Icon {
	if ic, ok := byName[name]; ok {
		return ic
	}
	return Category
}
