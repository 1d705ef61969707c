// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !(js || offscreen)

package gstcam

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"sync"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/furnish/media"
	"github.com/google/uuid"
	"github.com/tinyzimmer/go-gst/gst"
	"github.com/tinyzimmer/go-gst/gst/app"
)

var initOnce sync.Once

// Acquire builds and starts the pipeline and waits for the first frame.
// Audio is not supported and is ignored.
func (d *Devices) Acquire(ctx context.Context, c media.Constraints) (media.Stream, error) {
	initOnce.Do(func() { gst.Init(nil) })

	s := &Stream{width: c.Width, height: c.Height, frames: make(chan *image.RGBA, 1), first: make(chan struct{})}
	if err := s.build(d.Config, c); err != nil {
		return nil, err
	}
	s.track = &Track{id: uuid.NewString(), stream: s}

	slog.Info("gstcam: starting pipeline", "source", d.Config.Source, "device", d.Config.Device,
		"resolution", fmt.Sprintf("%dx%d", c.Width, c.Height), "track", s.track.id)
	if err := s.pipeline.SetState(gst.StatePlaying); err != nil {
		s.track.Stop()
		return nil, &media.UnavailableError{Reason: media.NoDevice, Err: err}
	}

	timeout := d.Config.StartTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	select {
	case <-s.first:
		return s, nil
	case <-ctx.Done():
		s.track.Stop()
		return nil, ctx.Err()
	case <-time.After(timeout):
		s.track.Stop()
		return nil, &media.UnavailableError{Reason: media.NoDevice,
			Err: fmt.Errorf("gstcam: no frame from %s within %v", d.Config.Source, timeout)}
	}
}

func (s *Stream) build(cfg Config, c media.Constraints) error {
	pipeline, err := gst.NewPipeline("")
	if err != nil {
		return unavailable("pipeline", err)
	}
	src, err := gst.NewElement(cfg.Source)
	if err != nil {
		return &media.UnavailableError{Reason: media.NoDevice, Err: fmt.Errorf("gstcam: source %s: %w", cfg.Source, err)}
	}
	if cfg.Device != "" {
		errors.Log(src.SetProperty("device", cfg.Device))
	}
	convert, err := gst.NewElement("videoconvert")
	if err != nil {
		return unavailable("videoconvert", err)
	}
	scale, err := gst.NewElement("videoscale")
	if err != nil {
		return unavailable("videoscale", err)
	}
	rate, err := gst.NewElement("videorate")
	if err != nil {
		return unavailable("videorate", err)
	}
	errors.Log(rate.SetProperty("drop-only", true))
	filter, err := gst.NewElement("capsfilter")
	if err != nil {
		return unavailable("capsfilter", err)
	}
	errors.Log(filter.SetProperty("caps", gst.NewCapsFromString(caps(c, cfg.FPS))))

	sink, err := app.NewAppSink()
	if err != nil {
		return unavailable("appsink", err)
	}
	errors.Log(sink.SetProperty("sync", false))
	errors.Log(sink.SetProperty("max-buffers", 1))
	errors.Log(sink.SetProperty("drop", true))
	sink.SetCallbacks(&app.SinkCallbacks{
		NewSampleFunc: s.onSample,
	})

	if err := pipeline.AddMany(src, convert, scale, rate, filter, sink.Element); err != nil {
		return unavailable("add elements", err)
	}
	if err := gst.ElementLinkMany(src, convert, scale, rate, filter, sink.Element); err != nil {
		return unavailable("link elements", err)
	}
	s.pipeline = pipeline
	return nil
}

func unavailable(what string, err error) error {
	return &media.UnavailableError{Reason: media.Other, Err: fmt.Errorf("gstcam: %s: %w", what, err)}
}

// Stream is a running GStreamer camera pipeline with one video track.
type Stream struct {
	pipeline *gst.Pipeline
	track    *Track

	width, height int

	mu        sync.Mutex
	stopped   bool
	frames    chan *image.RGBA
	first     chan struct{}
	firstOnce sync.Once
}

func (s *Stream) Tracks() []media.Track {
	return []media.Track{s.track}
}

// Frames implements [media.FrameSource].
func (s *Stream) Frames() <-chan *image.RGBA {
	return s.frames
}

// onSample copies the frame out of the GStreamer buffer. It runs on the
// streaming thread and must never block.
func (s *Stream) onSample(sink *app.Sink) gst.FlowReturn {
	sample := sink.PullSample()
	if sample == nil {
		return gst.FlowOK
	}
	buffer := sample.GetBuffer()
	if buffer == nil {
		return gst.FlowOK
	}
	mapInfo := buffer.Map(gst.MapRead)
	data := mapInfo.Bytes()
	if len(data) < frameSize(s.width, s.height) {
		buffer.Unmap()
		slog.Warn("gstcam: short frame", "size_bytes", len(data), "track", s.track.id)
		return gst.FlowOK
	}
	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, data)
	buffer.Unmap()

	s.firstOnce.Do(func() { close(s.first) })

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return gst.FlowEOS
	}
	select {
	case s.frames <- img:
	default:
	}
	return gst.FlowOK
}

// Track is the video track of a [Stream]. Stopping it tears down the
// pipeline.
type Track struct {
	id     string
	stream *Stream
}

func (t *Track) ID() string   { return t.id }
func (t *Track) Kind() string { return "video" }

func (t *Track) Live() bool {
	s := t.stream
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.stopped
}

func (t *Track) Stop() {
	s := t.stream
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	close(s.frames)
	s.mu.Unlock()

	if s.pipeline != nil {
		if err := s.pipeline.SetState(gst.StateNull); err != nil {
			slog.Error("gstcam: failed to stop pipeline", "error", err, "track", t.id)
		}
	}
	slog.Info("gstcam: track stopped", "track", t.id)
}
