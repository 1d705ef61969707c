// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arview

import (
	"context"
	"testing"

	"cogentcore.org/furnish/catalog"
	"cogentcore.org/furnish/furniture"
	"cogentcore.org/furnish/media"
	"cogentcore.org/furnish/media/mediatest"
	"cogentcore.org/furnish/placement"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(t *testing.T, id string) *catalog.Product {
	t.Helper()
	_, p, ok := catalog.Default().ProductByID(id)
	require.True(t, ok, id)
	return p
}

func TestEnterLeave(t *testing.T) {
	d := &mediatest.Devices{}
	s := &mediatest.Surface{}
	feed := media.NewFeed(d, s, media.DefaultConstraints())
	v := New(product(t, "sf002"), feed)
	assert.Equal(t, furniture.LeatherSofa, v.Model().Variant)
	assert.False(t, v.Model().IsEmpty())

	v.Enter(context.Background())
	feed.Wait()
	assert.Equal(t, media.FeedLive, feed.State())
	assert.Equal(t, 1, d.Live())

	v.Leave()
	assert.True(t, v.Left())
	assert.Equal(t, media.FeedStopped, feed.State())
	assert.Equal(t, 0, d.Live())

	v.Leave()
	v.Enter(context.Background())
	assert.Equal(t, 0, d.Live())
	assert.Equal(t, 1, d.Acquired())
}

func TestLeaveDuringAcquire(t *testing.T) {
	d := &mediatest.Devices{Gate: make(chan struct{})}
	feed := media.NewFeed(d, &mediatest.Surface{}, media.DefaultConstraints())
	v := New(product(t, "ac001"), feed)

	entered := d.Entered()
	v.Enter(context.Background())
	<-entered
	v.Leave()
	close(d.Gate)
	feed.Wait()
	assert.Equal(t, 0, d.Live())
}

func TestParentContextCanceled(t *testing.T) {
	d := &mediatest.Devices{Gate: make(chan struct{})}
	feed := media.NewFeed(d, nil, media.DefaultConstraints())
	v := New(product(t, "ac001"), feed)

	ctx, cancel := context.WithCancel(context.Background())
	entered := d.Entered()
	v.Enter(ctx)
	<-entered
	cancel()
	close(d.Gate)
	feed.Wait()
	assert.Equal(t, media.FeedStopped, feed.State())
	assert.Equal(t, 0, d.Live())
	v.Leave()
}

func TestCameraUnavailable(t *testing.T) {
	d := &mediatest.Devices{Err: &media.UnavailableError{Reason: media.PermissionDenied}}
	feed := media.NewFeed(d, nil, media.DefaultConstraints())
	v := New(product(t, "tb001"), feed)
	v.Enter(context.Background())
	feed.Wait()
	assert.Equal(t, media.FeedUnavailable, feed.State())

	// the rest of the view keeps working
	v.Place()
	v.Bigger()
	assert.InDelta(t, 1.2, v.Placement().Transform.Scale, 1e-6)
	v.Leave()
}

func TestPlacement(t *testing.T) {
	v := New(product(t, "ac002"), nil)
	changes := 0
	v.OnChange = func(*View) { changes++ }

	v.Bigger()
	v.Rotate(placement.Y)
	assert.Equal(t, 0, changes)
	assert.False(t, v.Placement().IsPlaced())

	title, _ := v.Prompt()
	assert.Equal(t, "Find a flat surface", title)
	assert.Equal(t, "Place Classic Wooden Chair", v.PlaceLabel())

	v.Place()
	assert.True(t, v.Placement().IsPlaced())
	assert.Equal(t, 1, changes)

	v.Bigger()
	v.Smaller()
	v.Smaller()
	assert.InDelta(t, 0.8, v.Placement().Transform.Scale, 1e-6)

	v.Rotate(placement.Y)
	assert.InDelta(t, placement.RotateStep, v.Placement().Transform.Rot.Y, 1e-6)

	v.Move(1, 0, -2)
	assert.InDelta(t, 0.1, v.Placement().Transform.Pos.X, 1e-6)
	assert.InDelta(t, -0.2, v.Placement().Transform.Pos.Z, 1e-6)

	n := changes
	v.Reset()
	assert.True(t, v.Placement().Transform.IsDefault())
	assert.True(t, v.Placement().IsPlaced())
	assert.Equal(t, n+1, changes)

	v.Reset()
	assert.Equal(t, n+1, changes, "no change, no callback")

	v.Leave()
	v.Bigger()
	assert.True(t, v.Placement().Transform.IsDefault())
}

func TestUnknownModel(t *testing.T) {
	v := New(&catalog.Product{ID: "x", Name: "Lamp", Model: "lamp"}, nil)
	assert.True(t, v.Model().IsEmpty())
	v.Enter(context.Background())
	v.Place()
	assert.True(t, v.Placement().IsPlaced())
	v.Leave()
}
