// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nav

import (
	"testing"

	"cogentcore.org/furnish/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reduceAll(t *testing.T, cat *catalog.Catalog, st State, as ...Action) State {
	t.Helper()
	for _, a := range as {
		var err error
		st, err = Reduce(cat, st, a)
		require.NoError(t, err, "%#v", a)
	}
	return st
}

func TestInitial(t *testing.T) {
	var st State
	assert.Equal(t, CategoriesView, st.View())
	assert.Nil(t, st.Category())
	assert.Nil(t, st.Product())
	assert.Equal(t, "Categories", st.String())
}

func TestSelectAndBack(t *testing.T) {
	cat := catalog.Default()

	st := reduceAll(t, cat, State{}, SelectCategory{"chairs"})
	assert.Equal(t, ProductsView, st.View())
	assert.Equal(t, "chairs", st.Category().ID)

	st = reduceAll(t, cat, st, SelectProduct{"ac002"})
	assert.Equal(t, ARView, st.View())
	assert.Equal(t, "Classic Wooden Chair", st.Product().Name)
	assert.Equal(t, "AR(chairs/ac002)", st.String())

	st = reduceAll(t, cat, st, Back{})
	assert.Equal(t, ProductsView, st.View())
	assert.Equal(t, "chairs", st.Category().ID)
	assert.Nil(t, st.Product())

	st = reduceAll(t, cat, st, Back{})
	assert.Equal(t, State{}, st)

	st = reduceAll(t, cat, st, Back{})
	assert.Equal(t, State{}, st)
}

func TestEveryProduct(t *testing.T) {
	cat := catalog.Default()
	for _, c := range cat.Categories {
		for _, p := range c.Products {
			st := reduceAll(t, cat, State{}, SelectCategory{c.ID}, SelectProduct{p.ID}, Back{}, Back{})
			assert.Equal(t, CategoriesView, st.View(), p.ID)
		}
	}
}

func TestInvalid(t *testing.T) {
	cat := catalog.Default()
	chairs := reduceAll(t, cat, State{}, SelectCategory{"chairs"})
	ar := reduceAll(t, cat, chairs, SelectProduct{"ac001"})

	tests := []struct {
		name string
		st   State
		a    Action
		want error
	}{
		{"unknown category", State{}, SelectCategory{"lamps"}, ErrUnknownCategory},
		{"product at root", State{}, SelectProduct{"ac001"}, ErrInvalidTransition},
		{"product in other category", chairs, SelectProduct{"sf001"}, ErrUnknownProduct},
		{"unknown product", chairs, SelectProduct{"zz"}, ErrUnknownProduct},
		{"category in products", chairs, SelectCategory{"beds"}, ErrInvalidTransition},
		{"category in ar", ar, SelectCategory{"beds"}, ErrInvalidTransition},
		{"product in ar", ar, SelectProduct{"ac002"}, ErrInvalidTransition},
		{"nil action", chairs, nil, ErrInvalidTransition},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, err := Reduce(cat, tt.st, tt.a)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, tt.st, st)
		})
	}
}

const reloaded = `
[[categories]]
id = "chairs"
name = "Seating"

[[categories.products]]
id = "ac001"
name = "Modern Shell Chair"
model = "chair1"
`

func TestResolve(t *testing.T) {
	old := catalog.Default()
	cat, err := catalog.Parse([]byte(reloaded))
	require.NoError(t, err)

	st := Resolve(cat, reduceAll(t, old, State{}, SelectCategory{"chairs"}, SelectProduct{"ac001"}))
	assert.Equal(t, ARView, st.View())
	assert.Equal(t, "Seating", st.Category().Name)
	assert.Same(t, cat.Categories[0].Products[0], st.Product())

	st = Resolve(cat, reduceAll(t, old, State{}, SelectCategory{"chairs"}, SelectProduct{"ac002"}))
	assert.Equal(t, ProductsView, st.View())
	assert.Same(t, cat.Categories[0], st.Category())

	st = Resolve(cat, reduceAll(t, old, State{}, SelectCategory{"beds"}))
	assert.Equal(t, CategoriesView, st.View())

	assert.Equal(t, State{}, Resolve(cat, State{}))
}
