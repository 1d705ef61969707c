// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gstcam implements the media layer on desktop platforms with a
// GStreamer pipeline that decodes the camera into RGBA frames:
//
//	source → videoconvert → videoscale → capsfilter(RGBA) → appsink
package gstcam

import (
	"fmt"
	"time"

	"cogentcore.org/furnish/media"
)

// Config configures the GStreamer pipeline.
type Config struct {

	// Source is the GStreamer source element, such as autovideosrc,
	// v4l2src, avfvideosrc or ksvideosrc.
	Source string `default:"autovideosrc"`

	// Device is the device property of the source element, such as
	// /dev/video0 for v4l2src. It is not set when empty.
	Device string

	// FPS is the maximum frame rate delivered to the app.
	FPS int `default:"30"`

	// StartTimeout is how long to wait for the first frame before the
	// camera is considered unavailable.
	StartTimeout time.Duration `default:"5s"`
}

// Defaults sets default values for the config.
func (c *Config) Defaults() {
	c.Source = "autovideosrc"
	c.FPS = 30
	c.StartTimeout = 5 * time.Second
}

// Devices is the GStreamer media layer. In offscreen builds it has no
// pipeline and every camera is unavailable.
type Devices struct {
	Config Config
}

// NewDevices returns new devices with the given config.
func NewDevices(cfg Config) *Devices {
	return &Devices{Config: cfg}
}

// caps returns the caps string of the final capsfilter.
func caps(c media.Constraints, fps int) string {
	s := fmt.Sprintf("video/x-raw,format=RGBA,width=%d,height=%d", c.Width, c.Height)
	if fps > 0 {
		s += fmt.Sprintf(",framerate=[1/1,%d/1]", fps)
	}
	return s
}

// frameSize returns the number of bytes of one RGBA frame.
func frameSize(w, h int) int {
	return 4 * w * h
}
