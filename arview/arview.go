// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package arview provides the state of one AR view: the product being
// previewed, its model, the placement state, and the camera feed whose
// lifetime is bound to the view.
//
// A View is confined to the GUI goroutine; only its camera feed does
// work in the background.
package arview

import (
	"context"
	"log/slog"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/furnish/catalog"
	"cogentcore.org/furnish/furniture"
	"cogentcore.org/furnish/media"
	"cogentcore.org/furnish/placement"
)

// View is the state of one AR view.
type View struct {

	// Product is the product being previewed.
	Product *catalog.Product

	// Feed is the camera feed shown behind the model. It may be nil.
	Feed *media.Feed

	// OnChange, if set, is called after each placement change.
	OnChange func(v *View)

	state  placement.State
	model  *furniture.Model
	cancel context.CancelFunc
	left   bool
}

// New returns a new unplaced view of the product. The model is built
// once from the product variant.
func New(p *catalog.Product, feed *media.Feed) *View {
	return &View{Product: p, Feed: feed, state: placement.New(), model: furniture.Build(p.Variant)}
}

// Enter starts the camera feed. It returns immediately; the camera is
// acquired in the background for as long as ctx and the view live.
func (v *View) Enter(ctx context.Context) {
	if v.left || v.cancel != nil {
		return
	}
	ctx, v.cancel = context.WithCancel(ctx)
	if v.model.IsEmpty() {
		slog.Warn("arview: no geometry for product", "product", v.Product.ID, "model", v.Product.Model)
	}
	if v.Feed != nil {
		errors.Log(v.Feed.Start(ctx))
	}
}

// Leave tears the view down and releases the camera. It is the one exit
// path for both navigating back and destroying the view, and is safe to
// call more than once.
func (v *View) Leave() {
	if v.left {
		return
	}
	v.left = true
	if v.cancel != nil {
		v.cancel()
	}
	if v.Feed != nil {
		v.Feed.Stop()
	}
}

// Left returns whether [View.Leave] has been called.
func (v *View) Left() bool {
	return v.left
}

// Model returns the model of the product.
func (v *View) Model() *furniture.Model {
	return v.model
}

// Placement returns the placement state.
func (v *View) Placement() placement.State {
	return v.state
}

// Prompt returns the title and text of the placement prompt.
func (v *View) Prompt() (title, text string) {
	return "Find a flat surface", "Point your camera at a flat surface like a floor or table"
}

// PlaceLabel returns the label of the button that confirms placement.
func (v *View) PlaceLabel() string {
	return "Place " + v.Product.Name
}

// Place confirms placement, showing the model and its controls.
func (v *View) Place() { v.update(v.state.Place()) }

// Bigger increases the model scale by one step.
func (v *View) Bigger() { v.update(v.state.Bigger()) }

// Smaller decreases the model scale by one step.
func (v *View) Smaller() { v.update(v.state.Smaller()) }

// Rotate rotates the model one step around the given axis.
func (v *View) Rotate(axis placement.Axes) {
	v.update(v.state.Rotate(axis, placement.RotateStep))
}

// Move moves the model by the given number of steps along each axis.
func (v *View) Move(dx, dy, dz float32) {
	s := placement.MoveStep
	v.update(v.state.Move(dx*s, dy*s, dz*s))
}

// Reset restores the default transform.
func (v *View) Reset() { v.update(v.state.Reset()) }

func (v *View) update(s placement.State) {
	if v.left || s == v.state {
		return
	}
	v.state = s
	if v.OnChange != nil {
		v.OnChange(v)
	}
}
