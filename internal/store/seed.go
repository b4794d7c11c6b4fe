package store

import "topicboard/internal/model"

// Seed returns the built-in starter catalog. Topic ids are the fixed
// top-1..top-4 so scripts and docs can refer to them; live creation ids
// come from the catalog's IDSource and use a longer random suffix, so
// the two never collide.
func Seed() []model.Category {
	return []model.Category{
		{
			ID:   "cat-webdev",
			Name: "Web Development",
			Topics: []model.Topic{
				{ID: "top-1", Name: "HTML"},
				{ID: "top-2", Name: "CSS"},
				{ID: "top-3", Name: "JavaScript"},
				{ID: "top-4", Name: "React"},
			},
		},
		{
			ID:   "cat-go",
			Name: "Go",
			Topics: []model.Topic{
				{ID: "top-5", Name: "Slices"},
				{ID: "top-6", Name: "Goroutines"},
				{ID: "top-7", Name: "Interfaces"},
			},
		},
	}
}

// NewSeedCatalog is the catalog every surface starts from.
func NewSeedCatalog() *Catalog {
	return NewCatalog(NewRandomIDSource(), Seed())
}
