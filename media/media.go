// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package media manages the live camera feed shown behind the AR view.
// It is independent of the platform media layer, which is supplied
// through the [Devices] and [Surface] interfaces; see the webcam and
// gstcam packages for the web and desktop implementations and the
// mediatest package for a stub.
package media

//go:generate core generate

import (
	"context"
	"image"
)

// Facings are the directions a camera can face.
type Facings int32 //enums:enum -trim-prefix Facing

const (
	// FacingEnvironment is a camera facing away from the user.
	FacingEnvironment Facings = iota

	// FacingUser is a camera facing the user.
	FacingUser
)

// Constraints are the requested properties of a camera stream.
// Width and Height are ideal values; the platform may pick another
// resolution.
type Constraints struct {
	Facing Facings `default:"Environment"`

	Width int `default:"1920"`

	Height int `default:"1080"`

	// Audio requests an audio track.
	Audio bool
}

// DefaultConstraints returns the constraints used for the AR view:
// the environment facing camera at 1920x1080 without audio.
func DefaultConstraints() Constraints {
	return Constraints{Facing: FacingEnvironment, Width: 1920, Height: 1080}
}

// Devices is the platform media layer that grants camera access.
type Devices interface {

	// Acquire requests exclusive access to a camera matching c.
	// It blocks until access is granted or denied. Failures to get a
	// camera should be reported as an [*UnavailableError].
	Acquire(ctx context.Context, c Constraints) (Stream, error)
}

// Stream is a live media stream.
type Stream interface {
	Tracks() []Track
}

// Track is one media track of a [Stream]. A live track holds the
// camera hardware until it is stopped.
type Track interface {
	ID() string

	// Kind is "video" or "audio".
	Kind() string

	// Stop stops the track and releases its hardware. It is safe to
	// call more than once.
	Stop()

	Live() bool
}

// Surface displays a stream.
type Surface interface {

	// Attach binds the stream to the surface and starts muted playback.
	Attach(s Stream) error

	// Detach unbinds the current stream, if any.
	Detach()
}

// FrameSource is implemented by streams that deliver decoded frames to
// Go code rather than to a platform element. The channel is closed when
// the video track is stopped. Frames are dropped while the receiver is
// busy.
type FrameSource interface {
	Frames() <-chan *image.RGBA
}

// Release stops every live track of s and returns how many were stopped.
func Release(s Stream) int {
	if s == nil {
		return 0
	}
	n := 0
	for _, t := range s.Tracks() {
		if t.Live() {
			n++
		}
		t.Stop()
	}
	return n
}
