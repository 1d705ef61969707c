// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package furnish

import (
	"image"
	"image/color"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/colors"
	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
	"cogentcore.org/core/icons"
	"cogentcore.org/core/styles"
	"cogentcore.org/core/styles/abilities"
	"cogentcore.org/core/styles/units"
	"cogentcore.org/core/xyz"
	"cogentcore.org/core/xyz/xyzcore"
	"cogentcore.org/furnish/appicons"
	"cogentcore.org/furnish/arview"
	"cogentcore.org/furnish/catalog"
	"cogentcore.org/furnish/media"
	"cogentcore.org/furnish/nav"
	"cogentcore.org/furnish/placement"
	"cogentcore.org/furnish/scene"
)

// arPage holds the widgets of the AR page.
type arPage struct {
	view *arview.View

	status *core.Text
	stage  *core.Frame
	camera *core.Image
	panel  *core.Frame

	sw     *xyzcore.Scene
	group  *xyz.Group
	shadow *xyz.Solid
	radius float32
}

// makeAR makes the AR page of a product and enters its view.
func (a *App) makeAR(p *core.Frame, pr *catalog.Product) {
	pg := &arPage{}

	bar := core.NewFrame(p)
	bar.SetName("bar")
	bar.Styler(func(s *styles.Style) {
		s.Align.Items = styles.Center
		s.Grow.Set(1, 0)
		s.Gap.Set(units.Em(1))
		s.Padding.Set(units.Em(0.5))
		s.Background = colors.Scheme.SurfaceContainer
	})
	back := core.NewButton(bar).SetText("Back").SetIcon(icons.ArrowBack).SetType(core.ButtonText)
	back.SetName("back")
	back.OnClick(func(e events.Event) {
		a.Do(nav.Back{})
	})
	core.NewText(bar).SetType(core.TextTitleLarge).SetText(pr.Name).Styler(func(s *styles.Style) {
		s.Grow.Set(1, 0)
	})
	pg.status = core.NewText(bar)
	pg.status.SetName("status")
	pg.status.SetType(core.TextLabelLarge)

	pg.stage = core.NewFrame(p)
	pg.stage.SetName("stage")
	pg.stage.Styler(func(s *styles.Style) {
		s.Display = styles.Custom
		s.Grow.Set(1, 1)
		s.Min.Set(units.Em(20), units.Em(15))
	})
	pg.camera = core.NewImage(pg.stage)
	pg.camera.SetName("camera")
	pg.camera.Styler(layer)
	grid := core.NewImage(pg.stage)
	grid.SetName("grid")
	grid.SetImage(surfaceGrid(640, 480, 40))
	grid.Styler(layer)

	pg.panel = core.NewFrame(p)
	pg.panel.SetName("panel")
	pg.panel.Styler(func(s *styles.Style) {
		s.Direction = styles.Column
		s.Align.Items = styles.Center
		s.Grow.Set(1, 0)
		s.Gap.Set(units.Em(0.5))
		s.Padding.Set(units.Em(1))
	})

	var feed *media.Feed
	if a.Camera.Devices != nil {
		var surf media.Surface
		if a.Camera.NewSurface != nil {
			surf = a.Camera.NewSurface(pg.camera)
		}
		feed = media.NewFeed(a.Camera.Devices, surf, a.Camera.Constraints)
		feed.OnChange = pg.feedChanged
	}
	pg.status.Updater(func() {
		pg.status.SetText(cameraStatus(feed))
	})

	pg.view = arview.New(pr, feed)
	pg.view.OnChange = func(v *arview.View) {
		pg.placementChanged()
	}
	a.view = pg.view
	pg.makePanel()
	pg.view.Enter(a.Context)
	pg.status.SetText(cameraStatus(feed))
}

// layer styles a child of the stage to cover the whole stage.
func layer(s *styles.Style) {
	s.Pos.Zero()
	s.Min.Set(units.Pw(100), units.Ph(100))
}

// gridAlpha is the alpha of the surface grid lines, 20% white.
const gridAlpha = 51

// surfaceGrid returns a w by h transparent image with one pixel wide
// grid lines every cell pixels. It is shown over the camera layer as a
// hint of the surface that the model is placed on.
func surfaceGrid(w, h, cell int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	line := color.RGBA{gridAlpha, gridAlpha, gridAlpha, gridAlpha}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x%cell == 0 || y%cell == 0 {
				img.SetRGBA(x, y, line)
			}
		}
	}
	return img
}

// feedChanged updates the camera status for the states that are set
// from the acquisition goroutine. The update runs on its own goroutine,
// so the feed never waits for the window.
func (pg *arPage) feedChanged(st media.FeedStates) {
	if !pg.current(st) {
		return
	}
	go pg.refreshStatus(st)
}

// current returns whether st is a background feed state that the feed
// of the view is still in. It is false once the view has left.
func (pg *arPage) current(st media.FeedStates) bool {
	if st != media.FeedLive && st != media.FeedUnavailable {
		return false
	}
	return pg.view.Feed.State() == st
}

// refreshStatus updates the status text under the scene lock. The scene
// outlives the page, whose widgets are deleted when it is rebuilt.
func (pg *arPage) refreshStatus(st media.FeedStates) {
	sc := pg.status.Scene
	sc.AsyncLock()
	defer sc.AsyncUnlock()
	if !pg.current(st) {
		return
	}
	pg.status.Update()
}

// cameraStatus returns the camera status shown in the top bar.
func cameraStatus(feed *media.Feed) string {
	if feed == nil {
		return "No camera"
	}
	switch feed.State() {
	case media.FeedAcquiring:
		return "Starting camera"
	case media.FeedLive:
		return "Camera on"
	case media.FeedUnavailable:
		var ue *media.UnavailableError
		if errors.As(feed.Err(), &ue) {
			switch ue.Reason {
			case media.PermissionDenied:
				return "Camera permission denied"
			case media.NoDevice:
				return "No camera found"
			case media.InsecureContext:
				return "Camera needs a secure connection"
			}
		}
		return "Camera unavailable"
	}
	return ""
}

// placementChanged shows the model once it is placed and keeps the
// scene in sync with the placement transform.
func (pg *arPage) placementChanged() {
	t := pg.view.Placement()
	if !t.IsPlaced() {
		return
	}
	if pg.sw == nil {
		pg.makeScene()
		pg.stage.Update()
		pg.panel.DeleteChildren()
		pg.makePanel()
		pg.panel.Update()
	}
	scene.Apply(pg.group, t.Transform)
	if pg.shadow != nil {
		scene.ApplyShadow(pg.shadow, pg.radius, t.Transform)
	}
	pg.sw.XYZ.SetNeedsUpdate()
	pg.sw.NeedsRender()
}

// makeScene adds the 3D scene layer with the model to the stage.
func (pg *arPage) makeScene() {
	pg.sw = xyzcore.NewScene(pg.stage)
	pg.sw.SetName("scene")
	pg.sw.Styler(layer)
	sc := pg.sw.XYZ
	scene.Configure(sc)
	m := pg.view.Model()
	pg.group = scene.Build(sc, sc, m)
	pg.shadow = scene.Shadow(sc, sc, m)
	pg.radius = scene.ShadowRadius(m)
}

// makePanel makes the placement prompt before placement and the
// controls after it.
func (pg *arPage) makePanel() {
	v := pg.view
	if !v.Placement().IsPlaced() {
		prompt := card(pg.panel)
		prompt.SetName("prompt")
		core.NewIcon(prompt).SetIcon(appicons.TouchApp).Styler(func(s *styles.Style) {
			s.Min.Set(units.Em(2.5))
			s.Color = colors.Scheme.Primary.Base
		})
		title, text := v.Prompt()
		core.NewText(prompt).SetType(core.TextTitleLarge).SetText(title)
		core.NewText(prompt).SetType(core.TextBodyMedium).SetText(text)
		place := core.NewButton(prompt).SetText(v.PlaceLabel()).SetIcon(appicons.CheckCircle)
		place.SetName("place")
		place.OnClick(func(e events.Event) {
			v.Place()
		})
		return
	}

	model := row(pg.panel, "model")
	button(model, "rotate", "Rotate", appicons.RotateRight, func() { v.Rotate(placement.Y) })
	button(model, "bigger", "Bigger", icons.ZoomIn, v.Bigger)
	button(model, "smaller", "Smaller", icons.ZoomOut, v.Smaller)
	button(model, "reset", "Reset", icons.Refresh, v.Reset)

	move := row(pg.panel, "move")
	core.NewIcon(move).SetIcon(appicons.OpenWith)
	button(move, "left", "", icons.KeyboardArrowLeft, func() { v.Move(-1, 0, 0) })
	button(move, "forward", "", icons.KeyboardArrowUp, func() { v.Move(0, 0, -1) })
	button(move, "backward", "", icons.KeyboardArrowDown, func() { v.Move(0, 0, 1) })
	button(move, "right", "", icons.KeyboardArrowRight, func() { v.Move(1, 0, 0) })
	button(move, "raise", "Raise", icons.None, func() { v.Move(0, 1, 0) })
	button(move, "lower", "Lower", icons.None, func() { v.Move(0, -1, 0) })

	cam := row(pg.panel, "view")
	sc := pg.sw.XYZ
	camera := func(f func()) func() {
		return func() {
			f()
			sc.SetNeedsUpdate()
			pg.sw.NeedsRender()
		}
	}
	button(cam, "view-reset", "", icons.Update, camera(func() { errors.Log(sc.SetCamera("default")) }))
	button(cam, "zoom-in", "", icons.ZoomIn, camera(func() { sc.Camera.Zoom(-.05) }))
	button(cam, "zoom-out", "", icons.ZoomOut, camera(func() { sc.Camera.Zoom(.05) }))
	button(cam, "orbit-left", "", icons.KeyboardArrowLeft, camera(func() { sc.Camera.Orbit(5, 0) }))
	button(cam, "orbit-right", "", icons.KeyboardArrowRight, camera(func() { sc.Camera.Orbit(-5, 0) }))

	core.NewText(pg.panel).SetType(core.TextBodySmall).
		SetText("Drag to orbit • Scroll to zoom • Tap controls to adjust")
}

// row adds a centered row of controls to p.
func row(p core.Widget, name string) *core.Frame {
	fr := core.NewFrame(p)
	fr.SetName(name)
	fr.Styler(func(s *styles.Style) {
		s.Align.Items = styles.Center
		s.Justify.Content = styles.Center
		s.Gap.Set(units.Em(0.5))
		s.Wrap = true
	})
	return fr
}

// button adds a repeat clickable control button to p.
func button(p core.Widget, name, text string, icon icons.Icon, do func()) *core.Button {
	bt := core.NewButton(p).SetText(text).SetIcon(icon).SetType(core.ButtonTonal)
	bt.SetName(name)
	bt.Styler(func(s *styles.Style) {
		s.SetAbilities(true, abilities.RepeatClickable)
	})
	bt.OnClick(func(e events.Event) {
		do()
	})
	return bt
}
