package uc

import (
	"context"
	"fmt"

	"github.com/reikouwu/House-Liber-Arce/engine/post"
	"github.com/reikouwu/House-Liber-Arce/pkg/logger"
)

// SectionLookup answers whether a section id is known.
type SectionLookup interface {
	Exists(id string) bool
}

// ListPosts returns a section's posts oldest first.
type ListPosts struct {
	repo      post.Repository
	sections  SectionLookup
	sectionID string
}

func NewListPosts(repo post.Repository, sections SectionLookup, sectionID string) *ListPosts {
	return &ListPosts{repo: repo, sections: sections, sectionID: sectionID}
}

func (uc *ListPosts) Execute(ctx context.Context) ([]post.Post, error) {
	if !uc.sections.Exists(uc.sectionID) {
		return nil, ErrSectionNotFound
	}
	posts, err := uc.repo.ListPosts(ctx, uc.sectionID)
	if err != nil {
		return nil, fmt.Errorf("list posts for %s: %w", uc.sectionID, err)
	}
	if posts == nil {
		posts = []post.Post{}
	}
	logger.FromContext(ctx).Debug("Listed posts", "section_id", uc.sectionID, "count", len(posts))
	return posts, nil
}
