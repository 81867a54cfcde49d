// Package memory provides a process-local post repository.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/reikouwu/House-Liber-Arce/engine/post"
)

// PostRepo keeps every section's post log in a map guarded by one lock.
// Contents live as long as the process.
type PostRepo struct {
	mu     sync.RWMutex
	logs   map[string][]post.Post
	nextID int64
	now    func() time.Time
}

// Option customizes a PostRepo.
type Option func(*PostRepo)

// WithClock replaces time.Now as the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(r *PostRepo) {
		r.now = now
	}
}

func NewPostRepo(opts ...Option) *PostRepo {
	r := &PostRepo{
		logs: make(map[string][]post.Post),
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *PostRepo) ListPosts(ctx context.Context, sectionID string) ([]post.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("memory: list posts: %w", err)
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	src := r.logs[sectionID]
	out := make([]post.Post, len(src))
	for i := range src {
		out[i] = src[i].Clone()
	}
	return out, nil
}

// AppendPost assigns the id and timestamp under the lock. A clock that steps
// backwards is clamped to the section's newest timestamp.
func (r *PostRepo) AppendPost(ctx context.Context, sectionID string, draft *post.Draft) (*post.Post, error) {
	if draft == nil {
		return nil, fmt.Errorf("memory: draft is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("memory: append post: %w", err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	createdAt := r.now().UTC()
	log := r.logs[sectionID]
	if n := len(log); n > 0 && createdAt.Before(log[n-1].CreatedAt) {
		createdAt = log[n-1].CreatedAt
	}
	r.nextID++
	p := post.Post{
		ID:        r.nextID,
		SectionID: sectionID,
		Author:    draft.Author,
		Content:   draft.Content,
		Tags:      post.NormalizeTags(draft.Tags),
		CreatedAt: createdAt,
	}
	r.logs[sectionID] = append(log, p)
	out := p.Clone()
	return &out, nil
}

// HealthCheck always succeeds.
func (r *PostRepo) HealthCheck(context.Context) error {
	return nil
}

// Close is a no-op.
func (r *PostRepo) Close(context.Context) error {
	return nil
}
