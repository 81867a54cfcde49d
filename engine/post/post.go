// Package post defines the board post model and its storage contract.
package post

import (
	"context"
	"strings"
	"time"
)

// Post is an immutable message appended to a section.
type Post struct {
	ID        int64     `json:"id"         db:"id"`
	SectionID string    `json:"section_id" db:"section_id"`
	Author    string    `json:"author"     db:"author"`
	Content   string    `json:"content"    db:"content"`
	Tags      []string  `json:"tags"       db:"tags"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Draft is the normalized payload a repository stores.
type Draft struct {
	Author  string
	Content string
	Tags    []string
}

// Repository stores the per-section post logs. Implementations assign ids
// and creation timestamps and list posts ordered by (created_at, id).
// They do not check whether a section exists.
type Repository interface {
	ListPosts(ctx context.Context, sectionID string) ([]Post, error)
	AppendPost(ctx context.Context, sectionID string, draft *Draft) (*Post, error)
}

// NormalizeTags trims every tag and drops the empty ones, keeping order.
// The result is never nil.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			out = append(out, tag)
		}
	}
	return out
}

// Clone returns a deep copy of p.
func (p Post) Clone() Post {
	p.Tags = append(make([]string, 0, len(p.Tags)), p.Tags...)
	return p
}
