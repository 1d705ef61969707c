// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build js

package webcam

import (
	"context"
	"syscall/js"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/furnish/media"
	"github.com/cogentcore/webgpu/jsx"
)

// Devices is the browser media layer.
type Devices struct{}

// Acquire calls getUserMedia. The browser offers no way to cancel a
// pending request, so ctx is not consulted; [media.Feed] releases a
// stream that arrives after it has been stopped.
func (Devices) Acquire(ctx context.Context, c media.Constraints) (media.Stream, error) {
	md := js.Global().Get("navigator").Get("mediaDevices")
	if md.IsUndefined() || md.IsNull() || md.Get("getUserMedia").IsUndefined() {
		return nil, &media.UnavailableError{Reason: media.InsecureContext,
			Err: errors.New("navigator.mediaDevices is not available")}
	}
	v, ok := jsx.Await(md.Call("getUserMedia", constraints(c)))
	if !ok {
		return nil, rejection(v)
	}
	return &Stream{Value: v}, nil
}

// rejection converts a rejected getUserMedia promise value to an error.
func rejection(v js.Value) error {
	if v.Type() != js.TypeObject {
		return &media.UnavailableError{Reason: media.Other, Err: errors.New("getUserMedia failed")}
	}
	name := v.Get("name").String()
	return &media.UnavailableError{Reason: Reason(name),
		Err: errors.New(name + ": " + v.Get("message").String())}
}

// Stream wraps a JavaScript MediaStream.
type Stream struct {
	Value js.Value
}

func (s *Stream) Tracks() []media.Track {
	jt := s.Value.Call("getTracks")
	n := jt.Length()
	ts := make([]media.Track, n)
	for i := range n {
		ts[i] = &Track{Value: jt.Index(i)}
	}
	return ts
}

// Track wraps a JavaScript MediaStreamTrack.
type Track struct {
	Value js.Value
}

func (t *Track) ID() string   { return t.Value.Get("id").String() }
func (t *Track) Kind() string { return t.Value.Get("kind").String() }
func (t *Track) Stop()        { t.Value.Call("stop") }
func (t *Track) Live() bool   { return t.Value.Get("readyState").String() == "live" }

// Video is a [media.Surface] that shows the stream in a fixed, muted
// video element stacked below the app canvas. The part of the app that
// should show the camera must have a transparent background.
type Video struct {
	elem js.Value
}

// NewVideo returns a new video surface.
func NewVideo() *Video {
	return &Video{}
}

func (vd *Video) Attach(s media.Stream) error {
	ws, ok := s.(*Stream)
	if !ok {
		return errors.New("webcam: video surface needs a browser stream")
	}
	if vd.elem.IsUndefined() || vd.elem.IsNull() {
		document := js.Global().Get("document")
		vd.elem = document.Call("createElement", "video")
		vd.elem.Call("setAttribute", "playsinline", "")
		vd.elem.Set("muted", true)
		vd.elem.Set("autoplay", true)
		vd.elem.Set("playsInline", true)
		style := vd.elem.Get("style")
		style.Set("position", "fixed")
		style.Set("inset", "0")
		style.Set("width", "100%")
		style.Set("height", "100%")
		style.Set("objectFit", "cover")
		style.Set("zIndex", "-1")
		document.Get("body").Call("prepend", vd.elem)
	}
	vd.elem.Set("srcObject", ws.Value)
	if _, ok := jsx.Await(vd.elem.Call("play")); !ok {
		errors.Log(errors.New("webcam: video playback did not start"))
	}
	return nil
}

func (vd *Video) Detach() {
	if vd.elem.IsUndefined() || vd.elem.IsNull() {
		return
	}
	vd.elem.Set("srcObject", js.Null())
	vd.elem.Call("remove")
	vd.elem = js.Undefined()
}
