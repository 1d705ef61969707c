// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build offscreen && !js

package gstcam

import (
	"context"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/furnish/media"
)

// errOffscreen is the cause of every failed acquisition in offscreen builds.
var errOffscreen = errors.New("gstcam: no camera pipeline in offscreen builds")

// Acquire returns an [media.UnavailableError] with the [media.NoDevice]
// reason, as offscreen builds have no GStreamer pipeline.
func (d *Devices) Acquire(ctx context.Context, c media.Constraints) (media.Stream, error) {
	return nil, &media.UnavailableError{Reason: media.NoDevice, Err: errOffscreen}
}
