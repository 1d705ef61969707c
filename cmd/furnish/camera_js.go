// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build js

package main

import (
	"cogentcore.org/core/core"
	"cogentcore.org/furnish"
	"cogentcore.org/furnish/media"
	"cogentcore.org/furnish/media/webcam"
)

// camera returns the browser camera, shown in a video element
// behind the app.
func camera(cfg *Config) furnish.Camera {
	return furnish.Camera{
		Devices:     webcam.Devices{},
		NewSurface:  func(*core.Image) media.Surface { return webcam.NewVideo() },
		Constraints: cfg.Camera,
	}
}
