// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !js

package main

import (
	"cogentcore.org/core/core"
	"cogentcore.org/furnish"
	"cogentcore.org/furnish/media"
	"cogentcore.org/furnish/media/gstcam"
)

// camera returns the GStreamer camera, drawn into the camera layer
// of the AR view.
func camera(cfg *Config) furnish.Camera {
	return furnish.Camera{
		Devices: gstcam.NewDevices(cfg.GStreamer),
		NewSurface: func(im *core.Image) media.Surface {
			return furnish.NewImageSurface(im)
		},
		Constraints: cfg.Camera,
	}
}
