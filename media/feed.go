// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package media

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// FeedStates are the states of a [Feed].
type FeedStates int32 //enums:enum -trim-prefix Feed

const (
	// FeedIdle is a feed that has not been started.
	FeedIdle FeedStates = iota

	// FeedAcquiring is waiting for the platform to grant camera access.
	FeedAcquiring

	// FeedLive is showing a live stream on its surface.
	FeedLive

	// FeedUnavailable failed to get a camera. See [Feed.Err].
	FeedUnavailable

	// FeedStopped has been stopped and holds no tracks.
	FeedStopped
)

// Feed is the camera feed of one AR view. It is started once with
// [Feed.Start] and torn down once with [Feed.Stop]; every track it
// ever obtains is stopped by then, including a stream whose acquisition
// completes after Stop.
type Feed struct {

	// Devices is the platform media layer.
	Devices Devices

	// Surface displays the stream. It may be nil.
	Surface Surface

	// Constraints are the requested stream properties.
	Constraints Constraints

	// OnChange, if set, is called after each state change. It may be
	// called from the acquisition goroutine.
	OnChange func(st FeedStates)

	mu     sync.Mutex
	state  FeedStates
	err    *UnavailableError
	stream Stream
	cancel context.CancelFunc
	done   chan struct{}
}

// NewFeed returns a new idle feed.
func NewFeed(d Devices, s Surface, c Constraints) *Feed {
	return &Feed{Devices: d, Surface: s, Constraints: c}
}

// State returns the current state.
func (f *Feed) State() FeedStates {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Err returns the reason the camera is unavailable, or nil.
func (f *Feed) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err == nil {
		return nil
	}
	return f.err
}

// Start begins acquiring the camera in a separate goroutine and returns
// immediately. The acquisition is tied to ctx; [Feed.Stop] cancels it.
func (f *Feed) Start(ctx context.Context) error {
	f.mu.Lock()
	if f.state != FeedIdle {
		st := f.state
		f.mu.Unlock()
		return fmt.Errorf("media: feed already started (%v)", st)
	}
	ctx, f.cancel = context.WithCancel(ctx)
	f.done = make(chan struct{})
	f.state = FeedAcquiring
	f.mu.Unlock()

	slog.Debug("media: acquiring camera", "facing", f.Constraints.Facing,
		"width", f.Constraints.Width, "height", f.Constraints.Height)
	f.changed(FeedAcquiring)
	go f.acquire(ctx)
	return nil
}

func (f *Feed) acquire(ctx context.Context) {
	defer close(f.done)

	s, err := f.Devices.Acquire(ctx, f.Constraints)
	if ctx.Err() != nil && !f.stopped() {
		slog.Debug("media: feed context done during acquisition")
		f.Stop()
	}
	if f.stopped() {
		if n := Release(s); n > 0 {
			slog.Info("media: released stream acquired after stop", "tracks", n)
		}
		return
	}
	if err != nil {
		f.fail(Unavailable(err))
		return
	}
	if f.Surface != nil {
		if err := f.Surface.Attach(s); err != nil {
			Release(s)
			f.fail(&UnavailableError{Reason: Other, Err: err})
			return
		}
	}

	f.mu.Lock()
	if f.state == FeedStopped {
		f.mu.Unlock()
		f.detach()
		n := Release(s)
		slog.Info("media: released stream acquired after stop", "tracks", n)
		return
	}
	f.stream = s
	f.state = FeedLive
	f.mu.Unlock()

	slog.Info("media: camera live", "tracks", len(s.Tracks()))
	f.changed(FeedLive)
}

func (f *Feed) fail(ue *UnavailableError) {
	f.mu.Lock()
	if f.state == FeedStopped {
		f.mu.Unlock()
		return
	}
	f.err = ue
	f.state = FeedUnavailable
	f.mu.Unlock()

	slog.Warn("media: camera unavailable, continuing without live background",
		"reason", ue.Reason, "err", ue.Err)
	f.changed(FeedUnavailable)
}

func (f *Feed) stopped() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state == FeedStopped
}

// Stop tears the feed down: it cancels a pending acquisition, detaches
// the surface and stops every track. It does not wait for a pending
// acquisition; a stream that arrives later is released on arrival.
// Stop is safe to call more than once.
func (f *Feed) Stop() {
	f.mu.Lock()
	if f.state == FeedStopped {
		f.mu.Unlock()
		return
	}
	f.state = FeedStopped
	s := f.stream
	f.stream = nil
	if f.cancel != nil {
		f.cancel()
	}
	f.mu.Unlock()

	if s != nil {
		f.detach()
		n := Release(s)
		slog.Info("media: camera released", "tracks", n)
	}
	f.changed(FeedStopped)
}

// Wait blocks until a started acquisition has finished, including the
// release of a stream that arrived after [Feed.Stop].
func (f *Feed) Wait() {
	f.mu.Lock()
	done := f.done
	f.mu.Unlock()
	if done != nil {
		<-done
	}
}

func (f *Feed) detach() {
	if f.Surface != nil {
		f.Surface.Detach()
	}
}

func (f *Feed) changed(st FeedStates) {
	if f.OnChange != nil {
		f.OnChange(st)
	}
}
