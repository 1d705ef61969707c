// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package furnish

import (
	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
	"cogentcore.org/core/icons"
	"cogentcore.org/furnish/appicons"
	"cogentcore.org/furnish/catalog"
	"cogentcore.org/furnish/nav"
)

// makeProducts makes the product list of a category.
func (a *App) makeProducts(p *core.Frame, cat *catalog.Category) {
	top := section(p, "products")
	back := core.NewButton(top).SetText("Back to categories").SetIcon(icons.ArrowBack).SetType(core.ButtonText)
	back.SetName("back")
	back.OnClick(func(e events.Event) {
		a.Do(nav.Back{})
	})
	core.NewText(top).SetType(core.TextHeadlineLarge).SetText(cat.Name)
	core.NewText(top).SetType(core.TextBodyLarge).SetText("Choose a piece to view in your space")

	grid := cardGrid(top)
	for _, pr := range cat.Products {
		a.productCard(grid, pr)
	}
}

func (a *App) productCard(p *core.Frame, pr *catalog.Product) {
	c := card(p)
	c.SetName("product-" + pr.ID)
	makeThumbnail(c, a.Catalog.Assets, pr.Thumbnail)
	core.NewText(c).SetType(core.TextTitleMedium).SetText(pr.Name)
	bt := core.NewButton(c).SetText("View in AR").SetIcon(appicons.ViewInAR)
	bt.SetName("view")
	bt.OnClick(func(e events.Event) {
		a.Do(nav.SelectProduct{ID: pr.ID})
	})
}
