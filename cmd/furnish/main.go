// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command furnish runs the furniture preview app.
package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/iox/tomlx"
	"cogentcore.org/core/base/logx"
	"cogentcore.org/core/cli"
	"cogentcore.org/core/core"
	"cogentcore.org/furnish"
	"cogentcore.org/furnish/catalog"
	"cogentcore.org/furnish/media"
	"cogentcore.org/furnish/media/gstcam"
	"github.com/mitchellh/go-homedir"
)

// ConfigFile is the name of the optional config file.
const ConfigFile = "furnish.toml"

// Config is the configuration of the app.
type Config struct {

	// Catalog is a TOML or YAML catalog file that replaces the
	// built-in catalog.
	Catalog string

	// WatchCatalog reloads the Catalog file when it changes.
	WatchCatalog bool `default:"true"`

	// LogLevel is the minimum level of log messages: debug, info, warn or error.
	LogLevel string `default:"info"`

	// NoCamera turns off the camera feed of the AR view.
	NoCamera bool

	// Camera is the requested camera stream properties.
	Camera media.Constraints

	// GStreamer configures the camera pipeline on desktop platforms.
	GStreamer gstcam.Config
}

// configFiles returns the config files that exist, in the order they
// are applied: the one in the user config directory and then the one
// in the working directory.
func configFiles() []string {
	var files []string
	if home, err := homedir.Dir(); err == nil {
		files = append(files, filepath.Join(home, ".config", "furnish", ConfigFile))
	}
	files = append(files, ConfigFile)
	var exist []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			exist = append(exist, f)
		}
	}
	return exist
}

// loadConfig returns the config with defaults and the given files applied.
func loadConfig(files ...string) *Config {
	cfg := &Config{}
	errors.Log(cli.SetFromDefaults(cfg))
	for _, f := range files {
		errors.Log(tomlx.Open(cfg, f))
	}
	return cfg
}

func main() {
	cfg := loadConfig(configFiles()...)
	var level slog.Level
	if errors.Log(level.UnmarshalText([]byte(cfg.LogLevel))) == nil {
		logx.UserLevel = level
	}

	cat := catalog.Default()
	if cfg.Catalog != "" {
		file := errors.Log1(homedir.Expand(cfg.Catalog))
		if c, err := catalog.OpenFile(file); errors.Log(err) == nil {
			cat = c
		}
		cfg.Catalog = file
	}

	var cam furnish.Camera
	if !cfg.NoCamera {
		cam = camera(cfg)
	}
	b := core.NewBody("Furnish")
	app := furnish.NewApp(cat, cam)
	app.Make(b)

	if cfg.Catalog != "" && cfg.WatchCatalog {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		errors.Log(catalog.Watch(ctx, cfg.Catalog, func(c *catalog.Catalog) {
			b.AsyncLock()
			app.SetCatalog(c)
			b.AsyncUnlock()
		}))
	}
	b.RunMainWindow()
}
