package uc

import (
	"context"
	"fmt"

	"github.com/reikouwu/House-Liber-Arce/engine/post"
	"github.com/reikouwu/House-Liber-Arce/pkg/logger"
)

// AppendPost validates a new post and adds it to a section's log.
type AppendPost struct {
	repo      post.Repository
	sections  SectionLookup
	sectionID string
	input     *AppendPostInput
}

func NewAppendPost(
	repo post.Repository,
	sections SectionLookup,
	sectionID string,
	input *AppendPostInput,
) *AppendPost {
	return &AppendPost{repo: repo, sections: sections, sectionID: sectionID, input: input}
}

// Execute returns a *ValidationError for out-of-bounds input and
// ErrSectionNotFound for an unknown section. Neither stores anything.
func (uc *AppendPost) Execute(ctx context.Context) (*post.Post, error) {
	draft, err := uc.input.Draft()
	if err != nil {
		return nil, err
	}
	if !uc.sections.Exists(uc.sectionID) {
		return nil, ErrSectionNotFound
	}
	created, err := uc.repo.AppendPost(ctx, uc.sectionID, draft)
	if err != nil {
		return nil, fmt.Errorf("append post to %s: %w", uc.sectionID, err)
	}
	logger.FromContext(ctx).Info("Post appended",
		"section_id", uc.sectionID,
		"post_id", created.ID,
		"author", created.Author,
		"tags", len(created.Tags),
	)
	return created, nil
}
