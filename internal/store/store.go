package store

import "topicboard/internal/model"

// Catalog holds one Collection per category, keyed by category id, with
// a stable category order for display. Categories themselves are fixed
// for the life of the process; there is no category CRUD.
type Catalog struct {
	order []model.Category // id+name only; topics live in the collections
	byID  map[string]*Collection
}

// NewCatalog builds a catalog from seed categories. All collections
// share the given id source, so topic ids stay unique catalog-wide.
func NewCatalog(ids IDSource, seed []model.Category) *Catalog {
	cat := &Catalog{byID: map[string]*Collection{}}
	for _, c := range seed {
		cat.order = append(cat.order, model.Category{ID: c.ID, Name: c.Name})
		cat.byID[c.ID] = NewCollection(ids, c.Topics)
	}
	return cat
}

// Categories returns the categories in display order with their current
// topic lists filled in.
func (c *Catalog) Categories() []model.Category {
	out := make([]model.Category, 0, len(c.order))
	for _, meta := range c.order {
		out = append(out, model.Category{
			ID:     meta.ID,
			Name:   meta.Name,
			Topics: c.byID[meta.ID].Topics(),
		})
	}
	return out
}

// Collection returns the editor for one category.
func (c *Catalog) Collection(categoryID string) (*Collection, bool) {
	col, ok := c.byID[categoryID]
	return col, ok
}

// Category returns one category with its current topics.
func (c *Catalog) Category(id string) (model.Category, bool) {
	col, ok := c.byID[id]
	if !ok {
		return model.Category{}, false
	}
	for _, meta := range c.order {
		if meta.ID == id {
			return model.Category{ID: meta.ID, Name: meta.Name, Topics: col.Topics()}, true
		}
	}
	return model.Category{}, false
}
