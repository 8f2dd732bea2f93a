package viewmodel

import (
	"context"
	"sync"

	"github.com/sakinah-app/sakinah/internal/adapter"
	"github.com/sakinah-app/sakinah/internal/model"
)

// DuaState is the presentation-facing snapshot of the dua browser. Err stays
// empty in practice: every dua resource has a built-in fallback.
type DuaState struct {
	Categories        []model.DuaCategory `json:"categories"`
	CurrentCategoryID int                 `json:"currentCategoryId"`
	Duas              []model.Dua         `json:"duas"`
	Source            model.Source        `json:"source"`
	Loading           bool                `json:"loading"`
	Err               string              `json:"error"`
}

// Dua drives the dua browser feature.
type Dua struct {
	adapter *adapter.Adapter

	mu    sync.Mutex
	seq   uint64
	state DuaState
}

// NewDua creates the dua view-model.
func NewDua(a *adapter.Adapter) *Dua {
	return &Dua{adapter: a}
}

// State returns a copy of the current snapshot.
func (d *Dua) State() DuaState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Init loads the category list and opens the first category. Never produces
// an error state.
func (d *Dua) Init(ctx context.Context) {
	d.mu.Lock()
	d.state.Loading = true
	d.mu.Unlock()

	listing := d.adapter.ListDuaCategories(ctx)

	d.mu.Lock()
	d.state.Categories = listing.Categories
	d.state.Source = listing.Source
	d.state.Loading = false
	current := d.state.CurrentCategoryID
	d.mu.Unlock()

	if current == 0 && len(listing.Categories) > 0 {
		d.SelectCategory(ctx, listing.Categories[0].ID)
	}
}

// SelectCategory loads one category's duas. A stale response is discarded
// when a newer selection has been made meanwhile.
func (d *Dua) SelectCategory(ctx context.Context, categoryID int) {
	d.mu.Lock()
	d.seq++
	token := d.seq
	d.state.CurrentCategoryID = categoryID
	d.state.Loading = true
	name := categoryName(d.state.Categories, categoryID)
	d.mu.Unlock()

	group := d.adapter.GetDuasByCategory(ctx, categoryID, name)

	d.mu.Lock()
	defer d.mu.Unlock()
	if token != d.seq {
		return
	}
	d.state.Loading = false
	d.state.Duas = group.Duas
	d.state.Source = group.Source
}

// ClearCategory returns the browser to the category list.
func (d *Dua) ClearCategory() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	d.state.CurrentCategoryID = 0
	d.state.Duas = nil
	d.state.Loading = false
}

func categoryName(categories []model.DuaCategory, id int) string {
	for _, category := range categories {
		if category.ID == id {
			return category.Name
		}
	}
	return ""
}
