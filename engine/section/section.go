// Package section holds the fixed catalogue of board sections.
package section

import (
	"fmt"
	"strings"
)

// Section is a channel that holds an ordered list of posts.
type Section struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Category groups sections for display.
type Category struct {
	Name     string    `json:"category"`
	Channels []Section `json:"channels"`
}

// Registry is a read-only catalogue of categories and their sections.
type Registry struct {
	categories []Category
	index      map[string]Section
}

// NewRegistry validates the catalogue and indexes it by section id.
func NewRegistry(categories []Category) (*Registry, error) {
	r := &Registry{
		categories: cloneCategories(categories),
		index:      make(map[string]Section),
	}
	for _, cat := range r.categories {
		if strings.TrimSpace(cat.Name) == "" {
			return nil, fmt.Errorf("section: category name is required")
		}
		for _, ch := range cat.Channels {
			if strings.TrimSpace(ch.ID) == "" {
				return nil, fmt.Errorf("section: empty section id in category %q", cat.Name)
			}
			if _, dup := r.index[ch.ID]; dup {
				return nil, fmt.Errorf("section: duplicate section id %q", ch.ID)
			}
			r.index[ch.ID] = ch
		}
	}
	return r, nil
}

// MustNewRegistry is NewRegistry for catalogues known to be valid.
func MustNewRegistry(categories []Category) *Registry {
	r, err := NewRegistry(categories)
	if err != nil {
		panic(err)
	}
	return r
}

// Categories returns a copy of the catalogue in declaration order.
func (r *Registry) Categories() []Category {
	return cloneCategories(r.categories)
}

// Sections returns every section flattened in catalogue order.
func (r *Registry) Sections() []Section {
	out := make([]Section, 0, len(r.index))
	for _, cat := range r.categories {
		out = append(out, cat.Channels...)
	}
	return out
}

// Exists reports whether id names a known section.
func (r *Registry) Exists(id string) bool {
	_, ok := r.index[id]
	return ok
}

// Get returns the section with the given id.
func (r *Registry) Get(id string) (Section, bool) {
	s, ok := r.index[id]
	return s, ok
}

func cloneCategories(in []Category) []Category {
	out := make([]Category, len(in))
	for i, cat := range in {
		out[i] = Category{
			Name:     cat.Name,
			Channels: append([]Section(nil), cat.Channels...),
		}
		if out[i].Channels == nil {
			out[i].Channels = []Section{}
		}
	}
	return out
}
