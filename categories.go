// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package furnish

import (
	"fmt"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
	"cogentcore.org/core/icons"
	"cogentcore.org/core/styles"
	"cogentcore.org/core/styles/units"
	"cogentcore.org/furnish/appicons"
	"cogentcore.org/furnish/catalog"
	"cogentcore.org/furnish/nav"
)

// feature is an entry of the features section of the home page.
type feature struct {
	icon  icons.Icon
	title string
	text  string
}

var features = []feature{
	{appicons.ViewInAR, "Real-time placement", "See furniture in your space at true scale"},
	{appicons.RotateRight, "Interactive models", "Rotate, scale and move models to find the right fit"},
	{appicons.Category, "Multiple categories", "Browse chairs, sofas and beds"},
}

// makeCategories makes the home page: a hero section, the category
// cards and the features section.
func (a *App) makeCategories(p *core.Frame) {
	hero := section(p, "hero")
	hero.Styler(func(s *styles.Style) {
		s.Align.Items = styles.Center
		s.Background = colors.Scheme.SurfaceContainerLow
		s.Padding.Set(units.Em(3), units.Em(1))
	})
	core.NewIcon(hero).SetIcon(appicons.ViewInAR).Styler(func(s *styles.Style) {
		s.Min.Set(units.Em(4))
		s.Color = colors.Scheme.Primary.Base
	})
	core.NewText(hero).SetType(core.TextDisplaySmall).SetText("AR Furniture")
	core.NewText(hero).SetType(core.TextBodyLarge).
		SetText("Visualize furniture in your space before you buy. Pick a piece and place it in your room with your camera.").
		Styler(func(s *styles.Style) {
			s.Max.X.Em(40)
		})

	cats := section(p, "categories")
	start := core.NewButton(hero).SetText("Start AR experience").SetIcon(icons.KeyboardArrowDown)
	start.OnClick(func(e events.Event) {
		cats.ScrollToThis()
	})

	core.NewText(cats).SetType(core.TextHeadlineMedium).SetText("Choose a category")
	grid := cardGrid(cats)
	for _, cat := range a.Catalog.Categories {
		a.categoryCard(grid, cat)
	}

	feats := section(p, "features")
	core.NewText(feats).SetType(core.TextHeadlineMedium).SetText("Features")
	fgrid := cardGrid(feats)
	for _, f := range features {
		c := card(fgrid)
		core.NewIcon(c).SetIcon(f.icon).Styler(func(s *styles.Style) {
			s.Min.Set(units.Em(2.5))
			s.Color = colors.Scheme.Primary.Base
		})
		core.NewText(c).SetType(core.TextTitleMedium).SetText(f.title)
		core.NewText(c).SetType(core.TextBodyMedium).SetText(f.text)
	}
}

func (a *App) categoryCard(p *core.Frame, cat *catalog.Category) {
	c := card(p)
	c.SetName("category-" + cat.ID)
	core.NewIcon(c).SetIcon(appicons.ByName(cat.Icon)).Styler(func(s *styles.Style) {
		s.Min.Set(units.Em(3))
		s.Color = colors.Scheme.Primary.Base
	})
	core.NewText(c).SetType(core.TextTitleLarge).SetText(cat.Name)
	core.NewText(c).SetType(core.TextBodyMedium).SetText(itemCount(len(cat.Products)))
	bt := core.NewButton(c).SetText("Browse").SetType(core.ButtonTonal)
	bt.SetName("browse")
	bt.OnClick(func(e events.Event) {
		a.Do(nav.SelectCategory{ID: cat.ID})
	})
}

func itemCount(n int) string {
	if n == 1 {
		return "1 item"
	}
	return fmt.Sprintf("%d items", n)
}

// section adds a full width column to p.
func section(p core.Widget, name string) *core.Frame {
	fr := core.NewFrame(p)
	fr.SetName(name)
	fr.Styler(func(s *styles.Style) {
		s.Direction = styles.Column
		s.Grow.Set(1, 0)
		s.Gap.Set(units.Em(1))
		s.Padding.Set(units.Em(2), units.Em(1))
	})
	return fr
}

// cardGrid adds a wrapping row of cards named "cards" to p.
func cardGrid(p core.Widget) *core.Frame {
	fr := core.NewFrame(p)
	fr.SetName("cards")
	fr.Styler(func(s *styles.Style) {
		s.Wrap = true
		s.Grow.Set(1, 0)
		s.Gap.Set(units.Em(1))
	})
	return fr
}

// card adds a card to p.
func card(p core.Widget) *core.Frame {
	fr := core.NewFrame(p)
	fr.Styler(func(s *styles.Style) {
		s.Direction = styles.Column
		s.Align.Items = styles.Center
		s.Gap.Set(units.Em(0.5))
		s.Padding.Set(units.Em(1.5))
		s.Min.X.Em(14)
		s.Background = colors.Scheme.SurfaceContainer
		s.Border.Radius = styles.BorderRadiusLarge
	})
	return fr
}
