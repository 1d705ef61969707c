// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package furnish

import (
	"image"
	"sync"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/core"
	"cogentcore.org/furnish/media"
)

// ImageSurface is a [media.Surface] that shows the frames of a
// [media.FrameSource] stream in a [core.Image].
type ImageSurface struct {

	// Image is the image widget that shows the frames.
	Image *core.Image

	mu   sync.Mutex
	done chan struct{}
}

// NewImageSurface returns a new surface showing frames in im.
func NewImageSurface(im *core.Image) *ImageSurface {
	return &ImageSurface{Image: im}
}

// Attach starts showing the frames of s, which must be a
// [media.FrameSource].
func (is *ImageSurface) Attach(s media.Stream) error {
	fs, ok := s.(media.FrameSource)
	if !ok {
		return errors.New("furnish: image surface needs a stream of frames")
	}
	is.mu.Lock()
	defer is.mu.Unlock()
	if is.done != nil {
		close(is.done)
	}
	is.done = make(chan struct{})
	go is.show(fs.Frames(), is.done)
	return nil
}

// Detach stops showing frames. It does not wait for a frame that is
// being drawn.
func (is *ImageSurface) Detach() {
	is.mu.Lock()
	defer is.mu.Unlock()
	if is.done != nil {
		close(is.done)
		is.done = nil
	}
}

func (is *ImageSurface) show(frames <-chan *image.RGBA, done chan struct{}) {
	sc := is.Image.Scene
	for {
		select {
		case <-done:
			return
		case img, ok := <-frames:
			if !ok || !is.draw(sc, img, done) {
				return
			}
		}
	}
}

// draw shows img unless the surface has been detached. It locks the
// scene rather than the image, which is deleted with its page.
func (is *ImageSurface) draw(sc *core.Scene, img *image.RGBA, done chan struct{}) bool {
	if detached(done) {
		return false
	}
	sc.AsyncLock()
	defer sc.AsyncUnlock()
	if detached(done) {
		return false
	}
	is.Image.SetImage(img)
	is.Image.NeedsRender()
	return true
}

func detached(done chan struct{}) bool {
	select {
	case <-done:
		return true
	default:
		return false
	}
}
