// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package furnish provides the furniture preview app: a catalog of
// furniture categories and products, and an AR view that shows a 3D
// model of a product over the live camera feed.
package furnish

import (
	"context"
	"log/slog"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
	"cogentcore.org/core/styles"
	"cogentcore.org/furnish/arview"
	"cogentcore.org/furnish/catalog"
	"cogentcore.org/furnish/media"
	"cogentcore.org/furnish/nav"
)

// Camera configures how the AR view gets and shows the camera feed.
type Camera struct {

	// Devices is the platform media layer. The AR view has no camera
	// background when it is nil.
	Devices media.Devices

	// NewSurface returns the surface for the feed of a new AR view.
	// The given image is the camera layer of the view, for surfaces
	// that draw frames in the app itself. It may return nil.
	NewSurface func(layer *core.Image) media.Surface

	// Constraints are the requested stream properties.
	Constraints media.Constraints
}

// App is the furniture preview app.
type App struct {

	// Catalog is the catalog that is browsed.
	Catalog *catalog.Catalog

	// Camera configures the camera feed of the AR view.
	Camera Camera

	// Context is the parent context of camera acquisitions.
	Context context.Context

	state nav.State
	view  *arview.View
	page  *core.Frame
}

// NewApp returns a new app showing the given catalog.
func NewApp(cat *catalog.Catalog, cam Camera) *App {
	return &App{Catalog: cat, Camera: cam, Context: context.Background()}
}

// State returns the navigation state.
func (a *App) State() nav.State {
	return a.state
}

// View returns the current AR view, or nil outside of the AR view.
func (a *App) View() *arview.View {
	return a.view
}

// Make adds the app to the given parent, typically a [core.Body].
// Closing the parent scene leaves the AR view.
func (a *App) Make(parent core.Widget) *core.Frame {
	a.page = core.NewFrame(parent)
	a.page.SetName("page")
	a.page.Styler(func(s *styles.Style) {
		s.Direction = styles.Column
		s.Grow.Set(1, 1)
		s.Overflow.Y = styles.OverflowAuto
	})
	parent.AsWidget().OnClose(func(e events.Event) {
		a.leave()
	})
	a.makePage()
	return a.page
}

// Do applies the navigation action and rebuilds the page. An invalid
// action is logged and leaves the app unchanged.
func (a *App) Do(act nav.Action) {
	st, err := nav.Reduce(a.Catalog, a.state, act)
	if errors.Log(err) != nil {
		return
	}
	if st == a.state {
		return
	}
	slog.Debug("furnish: navigate", "from", a.state, "to", st)
	a.state = st
	a.rebuild()
}

// SetCatalog replaces the catalog and rebuilds the page, keeping the
// current selection where the new catalog still has it.
func (a *App) SetCatalog(cat *catalog.Catalog) {
	a.Catalog = cat
	a.state = nav.Resolve(cat, a.state)
	slog.Info("furnish: catalog changed", "categories", len(cat.Categories), "view", a.state)
	a.rebuild()
}

// rebuild leaves the current AR view and makes the page for the
// current state.
func (a *App) rebuild() {
	a.leave()
	a.page.DeleteChildren()
	a.makePage()
	a.page.Update()
}

// leave leaves the current AR view, if any.
func (a *App) leave() {
	if a.view == nil {
		return
	}
	a.view.Leave()
	a.view = nil
}

func (a *App) makePage() {
	switch a.state.View() {
	case nav.ProductsView:
		a.makeProducts(a.page, a.state.Category())
	case nav.ARView:
		a.makeAR(a.page, a.state.Product())
	default:
		a.makeCategories(a.page)
	}
}
