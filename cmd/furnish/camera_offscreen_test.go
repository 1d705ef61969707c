// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build offscreen && !js

package main

import (
	"context"
	"testing"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/core"
	"cogentcore.org/furnish"
	"cogentcore.org/furnish/media"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCamera(t *testing.T) {
	cfg := loadConfig()
	cam := camera(cfg)
	require.NotNil(t, cam.Devices)
	assert.Equal(t, cfg.Camera, cam.Constraints)
	_, ok := cam.NewSurface(core.NewImage(core.NewBody())).(*furnish.ImageSurface)
	assert.True(t, ok)

	f := media.NewFeed(cam.Devices, nil, cam.Constraints)
	require.NoError(t, f.Start(context.Background()))
	f.Wait()
	assert.Equal(t, media.FeedUnavailable, f.State())
	var ue *media.UnavailableError
	require.True(t, errors.As(f.Err(), &ue))
	assert.Equal(t, media.NoDevice, ue.Reason)
}
