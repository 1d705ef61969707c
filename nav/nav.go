// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package nav provides the navigation state of the app as a pure
// transition function from a state and an action to a new state.
package nav

//go:generate core generate

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/furnish/catalog"
)

// Views are the top level views of the app.
type Views int32 //enums:enum -trim-prefix View

const (
	// CategoriesView lists all categories. It is the initial view.
	CategoriesView Views = iota

	// ProductsView lists the products of the selected category.
	ProductsView

	// ARView shows the selected product over the camera feed.
	ARView
)

var (
	// ErrUnknownCategory is returned when selecting a category that
	// is not in the catalog.
	ErrUnknownCategory = errors.New("nav: unknown category")

	// ErrUnknownProduct is returned when selecting a product that is
	// not in the selected category.
	ErrUnknownProduct = errors.New("nav: unknown product")

	// ErrInvalidTransition is returned for an action that is not
	// allowed in the current view.
	ErrInvalidTransition = errors.New("nav: invalid transition")
)

// State is the navigation state. The zero value is the initial state.
// A product can only be selected inside a selected category, so a
// product without a category cannot be represented.
type State struct {
	category *catalog.Category
	product  *catalog.Product
}

// View returns the current view.
func (s State) View() Views {
	switch {
	case s.product != nil:
		return ARView
	case s.category != nil:
		return ProductsView
	}
	return CategoriesView
}

// Category returns the selected category, or nil.
func (s State) Category() *catalog.Category {
	return s.category
}

// Product returns the selected product, or nil.
func (s State) Product() *catalog.Product {
	return s.product
}

func (s State) String() string {
	switch s.View() {
	case ARView:
		return fmt.Sprintf("%v(%s/%s)", ARView, s.category.ID, s.product.ID)
	case ProductsView:
		return fmt.Sprintf("%v(%s)", ProductsView, s.category.ID)
	}
	return CategoriesView.String()
}

// Action is a navigation action: [SelectCategory], [SelectProduct] or [Back].
type Action interface {
	isAction()
}

// SelectCategory selects the category with the given id.
type SelectCategory struct {
	ID string
}

// SelectProduct selects the product with the given id in the
// selected category.
type SelectProduct struct {
	ID string
}

// Back returns to the parent view. It has no effect at the root.
type Back struct{}

func (SelectCategory) isAction() {}
func (SelectProduct) isAction()  {}
func (Back) isAction()           {}

// Reduce returns the state that results from applying a to st.
// An invalid action returns st unchanged with an error.
func Reduce(cat *catalog.Catalog, st State, a Action) (State, error) {
	switch a := a.(type) {
	case SelectCategory:
		if st.View() != CategoriesView {
			return st, fmt.Errorf("%w: select category %q in %v", ErrInvalidTransition, a.ID, st.View())
		}
		c, ok := cat.CategoryByID(a.ID)
		if !ok {
			return st, fmt.Errorf("%w: %q", ErrUnknownCategory, a.ID)
		}
		return State{category: c}, nil
	case SelectProduct:
		if st.View() != ProductsView {
			return st, fmt.Errorf("%w: select product %q in %v", ErrInvalidTransition, a.ID, st.View())
		}
		p, ok := st.category.ProductByID(a.ID)
		if !ok {
			return st, fmt.Errorf("%w: %q in category %q", ErrUnknownProduct, a.ID, st.category.ID)
		}
		return State{category: st.category, product: p}, nil
	case Back:
		switch st.View() {
		case ARView:
			return State{category: st.category}, nil
		case ProductsView:
			return State{}, nil
		}
		return st, nil
	}
	return st, fmt.Errorf("%w: %T", ErrInvalidTransition, a)
}

// Resolve returns the state with the same selection as st in cat, such
// as after the catalog is reloaded. A selection that is no longer in
// cat falls back to its parent view.
func Resolve(cat *catalog.Catalog, st State) State {
	if st.category == nil {
		return State{}
	}
	c, ok := cat.CategoryByID(st.category.ID)
	if !ok {
		return State{}
	}
	if st.product == nil {
		return State{category: c}
	}
	p, ok := c.ProductByID(st.product.ID)
	if !ok {
		return State{category: c}
	}
	return State{category: c, product: p}
}
