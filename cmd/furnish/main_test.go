// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"cogentcore.org/core/cli"
	"cogentcore.org/furnish/media"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDefaults(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, cli.SetFromDefaults(cfg))
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, media.DefaultConstraints(), cfg.Camera)
	assert.Equal(t, "autovideosrc", cfg.GStreamer.Source)
	assert.Equal(t, 30, cfg.GStreamer.FPS)
	assert.Equal(t, 5*time.Second, cfg.GStreamer.StartTimeout)
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	user := filepath.Join(dir, "user.toml")
	local := filepath.Join(dir, ConfigFile)
	require.NoError(t, os.WriteFile(user, []byte(`
Catalog = "~/shop/catalog.yaml"

[GStreamer]
Source = "v4l2src"
Device = "/dev/video0"
`), 0666))
	require.NoError(t, os.WriteFile(local, []byte(`
NoCamera = true

[Camera]
Facing = "User"
Width = 1280

[GStreamer]
Device = "/dev/video2"
`), 0666))

	cfg := loadConfig(user, local)
	assert.Equal(t, "~/shop/catalog.yaml", cfg.Catalog)
	assert.True(t, cfg.WatchCatalog)
	assert.True(t, cfg.NoCamera)
	assert.Equal(t, media.FacingUser, cfg.Camera.Facing)
	assert.Equal(t, 1280, cfg.Camera.Width)
	assert.Equal(t, 1080, cfg.Camera.Height)
	assert.Equal(t, "v4l2src", cfg.GStreamer.Source)
	assert.Equal(t, "/dev/video2", cfg.GStreamer.Device)
	assert.Equal(t, 30, cfg.GStreamer.FPS)
}
