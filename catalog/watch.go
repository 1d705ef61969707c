// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catalog

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"cogentcore.org/core/base/errors"
	"github.com/fsnotify/fsnotify"
)

// OpenFile loads the catalog file at the given path of the host file
// system. Thumbnails are looked up relative to its directory.
func OpenFile(file string) (*Catalog, error) {
	dir, name := filepath.Split(file)
	if dir == "" {
		dir = "."
	}
	return Open(os.DirFS(dir), name)
}

// Watch calls fn with the reloaded catalog each time the catalog file
// at the given path is written, until ctx is done. A file that does not
// load is logged and skipped. Watch returns once watching has started;
// fn is called from a separate goroutine.
func Watch(ctx context.Context, file string, fn func(c *Catalog)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	dir := filepath.Dir(file)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return err
	}
	name := filepath.Base(file)
	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) != name ||
					event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				c, err := OpenFile(file)
				if err != nil {
					slog.Warn("catalog: keeping previous catalog", "file", file, "err", err)
					continue
				}
				slog.Info("catalog: reloaded", "file", file)
				fn(c)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				errors.Log(err)
			}
		}
	}()
	return nil
}
