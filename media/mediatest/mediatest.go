// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mediatest provides a stub media layer for testing code that
// uses the media package without a camera.
package mediatest

import (
	"context"
	"sync"

	"cogentcore.org/furnish/media"
	"github.com/google/uuid"
)

// Devices is a stub [media.Devices] that counts the live tracks it has
// handed out.
type Devices struct {

	// Err, if set, is returned by Acquire instead of a stream.
	Err error

	// Gate, if set, makes Acquire block until it is closed. Acquire does
	// not return early when its context is canceled, like a browser
	// permission prompt that is still open.
	Gate chan struct{}

	// Audio adds an audio track to each stream when requested.
	Audio bool

	mu       sync.Mutex
	live     int
	acquired int
	last     media.Constraints
	entered  chan struct{}
}

// Acquire implements [media.Devices].
func (d *Devices) Acquire(ctx context.Context, c media.Constraints) (media.Stream, error) {
	d.mu.Lock()
	d.last = c
	entered := d.entered
	d.entered = nil
	d.mu.Unlock()
	if entered != nil {
		close(entered)
	}
	if d.Gate != nil {
		<-d.Gate
	}
	if d.Err != nil {
		return nil, d.Err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.acquired++
	s := &Stream{}
	s.tracks = append(s.tracks, d.newTrack("video"))
	if c.Audio && d.Audio {
		s.tracks = append(s.tracks, d.newTrack("audio"))
	}
	return s, nil
}

func (d *Devices) newTrack(kind string) *Track {
	d.live++
	return &Track{id: uuid.NewString(), kind: kind, devices: d}
}

// Entered returns a channel that is closed once the next call to
// Acquire has started.
func (d *Devices) Entered() <-chan struct{} {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.entered = make(chan struct{})
	return d.entered
}

// Live returns the number of tracks that have not been stopped.
func (d *Devices) Live() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.live
}

// Acquired returns the number of streams handed out.
func (d *Devices) Acquired() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.acquired
}

// Constraints returns the constraints of the last Acquire call.
func (d *Devices) Constraints() media.Constraints {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.last
}

// Stream is a stub [media.Stream].
type Stream struct {
	tracks []*Track
}

// Tracks implements [media.Stream].
func (s *Stream) Tracks() []media.Track {
	ts := make([]media.Track, len(s.tracks))
	for i, t := range s.tracks {
		ts[i] = t
	}
	return ts
}

// Track is a stub [media.Track].
type Track struct {
	id      string
	kind    string
	devices *Devices
	stopped bool
}

func (t *Track) ID() string   { return t.id }
func (t *Track) Kind() string { return t.kind }

func (t *Track) Live() bool {
	t.devices.mu.Lock()
	defer t.devices.mu.Unlock()
	return !t.stopped
}

func (t *Track) Stop() {
	t.devices.mu.Lock()
	defer t.devices.mu.Unlock()
	if t.stopped {
		return
	}
	t.stopped = true
	t.devices.live--
}

// Surface is a stub [media.Surface].
type Surface struct {

	// Err, if set, is returned by Attach.
	Err error

	mu       sync.Mutex
	stream   media.Stream
	attaches int
	detaches int
}

// Attach implements [media.Surface].
func (s *Surface) Attach(st media.Stream) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.stream = st
	s.attaches++
	return nil
}

// Detach implements [media.Surface].
func (s *Surface) Detach() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stream = nil
	s.detaches++
}

// Stream returns the attached stream, or nil.
func (s *Surface) Stream() media.Stream {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stream
}

// Counts returns the number of Attach and Detach calls.
func (s *Surface) Counts() (attaches, detaches int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attaches, s.detaches
}
