package uc

import (
	"context"
	"fmt"

	"github.com/reikouwu/House-Liber-Arce/engine/post"
	"github.com/reikouwu/House-Liber-Arce/pkg/logger"
)

// SeedPosts appends starter posts to sections that have none yet, so running
// it against a persistent store more than once adds nothing.
type SeedPosts struct {
	repo     post.Repository
	sections SectionLookup
	seeds    []post.Seed
}

func NewSeedPosts(repo post.Repository, sections SectionLookup, seeds []post.Seed) *SeedPosts {
	return &SeedPosts{repo: repo, sections: sections, seeds: seeds}
}

// Execute returns how many posts were appended.
func (uc *SeedPosts) Execute(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)
	empty := make(map[string]bool)
	appended := 0
	for i := range uc.seeds {
		seed := uc.seeds[i]
		if !uc.sections.Exists(seed.SectionID) {
			log.Warn("Skipping seed for unknown section", "section_id", seed.SectionID)
			continue
		}
		isEmpty, checked := empty[seed.SectionID]
		if !checked {
			existing, err := uc.repo.ListPosts(ctx, seed.SectionID)
			if err != nil {
				return appended, fmt.Errorf("seed posts: list %s: %w", seed.SectionID, err)
			}
			isEmpty = len(existing) == 0
			empty[seed.SectionID] = isEmpty
		}
		if !isEmpty {
			continue
		}
		input := &AppendPostInput{Author: seed.Draft.Author, Content: seed.Draft.Content, Tags: seed.Draft.Tags}
		if _, err := NewAppendPost(uc.repo, uc.sections, seed.SectionID, input).Execute(ctx); err != nil {
			return appended, fmt.Errorf("seed posts: %w", err)
		}
		appended++
	}
	log.Info("Seeded posts", "appended", appended)
	return appended, nil
}
