package uc_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/reikouwu/House-Liber-Arce/engine/infra/memory"
	"github.com/reikouwu/House-Liber-Arce/engine/post"
	"github.com/reikouwu/House-Liber-Arce/engine/post/uc"
	"github.com/reikouwu/House-Liber-Arce/engine/section"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFactory(t *testing.T) (*uc.Factory, *memory.PostRepo) {
	t.Helper()
	repo := memory.NewPostRepo()
	return uc.NewFactory(repo, section.DefaultRegistry()), repo
}

type failingRepo struct{ err error }

func (r *failingRepo) ListPosts(context.Context, string) ([]post.Post, error) {
	return nil, r.err
}

func (r *failingRepo) AppendPost(context.Context, string, *post.Draft) (*post.Post, error) {
	return nil, r.err
}

func TestListPosts(t *testing.T) {
	t.Run("Should return not found for an unknown section", func(t *testing.T) {
		f, _ := newFactory(t)
		posts, err := f.ListPosts("does-not-exist").Execute(t.Context())
		assert.ErrorIs(t, err, uc.ErrSectionNotFound)
		assert.Nil(t, posts)
	})

	t.Run("Should return an empty list for a known section without posts", func(t *testing.T) {
		f, _ := newFactory(t)
		posts, err := f.ListPosts("world-repository").Execute(t.Context())
		require.NoError(t, err)
		assert.NotNil(t, posts)
		assert.Empty(t, posts)
	})

	t.Run("Should wrap repository failures", func(t *testing.T) {
		boom := errors.New("boom")
		f := uc.NewFactory(&failingRepo{err: boom}, section.DefaultRegistry())
		_, err := f.ListPosts("npcs").Execute(t.Context())
		assert.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "npcs")
	})
}

func TestAppendPost(t *testing.T) {
	t.Run("Should append a trimmed post with empty tags", func(t *testing.T) {
		f, _ := newFactory(t)
		ctx := t.Context()
		created, err := f.AppendPost("npcs", &uc.AppendPostInput{
			Author:  "  Alice ",
			Content: " hello\n",
			Tags:    []string{" ", ""},
		}).Execute(ctx)
		require.NoError(t, err)
		assert.Equal(t, "npcs", created.SectionID)
		assert.Equal(t, "Alice", created.Author)
		assert.Equal(t, "hello", created.Content)
		assert.Equal(t, []string{}, created.Tags)
		assert.NotZero(t, created.ID)

		posts, err := f.ListPosts("npcs").Execute(ctx)
		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, created.ID, posts[0].ID)
	})

	t.Run("Should list posts in append order with non-decreasing timestamps", func(t *testing.T) {
		f, _ := newFactory(t)
		ctx := t.Context()
		for _, content := range []string{"first", "second", "third"} {
			_, err := f.AppendPost("artifacts", &uc.AppendPostInput{Author: "Bob", Content: content}).Execute(ctx)
			require.NoError(t, err)
		}
		posts, err := f.ListPosts("artifacts").Execute(ctx)
		require.NoError(t, err)
		require.Len(t, posts, 3)
		assert.Equal(t, "first", posts[0].Content)
		assert.Equal(t, "third", posts[2].Content)
		for i := 1; i < len(posts); i++ {
			assert.False(t, posts[i].CreatedAt.Before(posts[i-1].CreatedAt))
		}
	})

	t.Run("Should accept content at the maximum length", func(t *testing.T) {
		f, _ := newFactory(t)
		_, err := f.AppendPost("npcs", &uc.AppendPostInput{
			Author:  "Alice",
			Content: strings.Repeat("x", uc.MaxContentLength),
		}).Execute(t.Context())
		assert.NoError(t, err)
	})

	t.Run("Should reject content over the maximum length", func(t *testing.T) {
		f, repo := newFactory(t)
		ctx := t.Context()
		_, err := f.AppendPost("npcs", &uc.AppendPostInput{
			Author:  "Alice",
			Content: strings.Repeat("x", uc.MaxContentLength+1),
		}).Execute(ctx)
		var vErr *uc.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "content", vErr.Field)
		posts, err := repo.ListPosts(ctx, "npcs")
		require.NoError(t, err)
		assert.Empty(t, posts)
	})

	t.Run("Should reject whitespace-only content", func(t *testing.T) {
		f, _ := newFactory(t)
		_, err := f.AppendPost("npcs", &uc.AppendPostInput{Author: "Alice", Content: "   \n\t"}).Execute(t.Context())
		assert.True(t, uc.IsValidationError(err))
	})

	t.Run("Should reject an author over the maximum length", func(t *testing.T) {
		f, _ := newFactory(t)
		_, err := f.AppendPost("npcs", &uc.AppendPostInput{
			Author:  strings.Repeat("a", uc.MaxAuthorLength+1),
			Content: "hello",
		}).Execute(t.Context())
		var vErr *uc.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "author", vErr.Field)
		assert.Equal(t, "must be between 1 and 64 characters", vErr.Message)
	})

	t.Run("Should count multi-byte characters once", func(t *testing.T) {
		f, _ := newFactory(t)
		_, err := f.AppendPost("npcs", &uc.AppendPostInput{
			Author:  strings.Repeat("é", uc.MaxAuthorLength),
			Content: "hello",
		}).Execute(t.Context())
		assert.NoError(t, err)
	})

	t.Run("Should reject a nil input", func(t *testing.T) {
		f, _ := newFactory(t)
		_, err := f.AppendPost("npcs", nil).Execute(t.Context())
		assert.True(t, uc.IsValidationError(err))
	})

	t.Run("Should not create anything for an unknown section", func(t *testing.T) {
		f, repo := newFactory(t)
		ctx := t.Context()
		_, err := f.AppendPost("nope", &uc.AppendPostInput{Author: "Alice", Content: "hello"}).Execute(ctx)
		assert.ErrorIs(t, err, uc.ErrSectionNotFound)
		posts, err := repo.ListPosts(ctx, "nope")
		require.NoError(t, err)
		assert.Empty(t, posts)
	})

	t.Run("Should validate before checking the section", func(t *testing.T) {
		f, _ := newFactory(t)
		_, err := f.AppendPost("nope", &uc.AppendPostInput{Author: "", Content: "hello"}).Execute(t.Context())
		assert.True(t, uc.IsValidationError(err))
	})
}

func TestSeedPosts(t *testing.T) {
	t.Run("Should seed every default section once", func(t *testing.T) {
		f, _ := newFactory(t)
		ctx := t.Context()
		seeds := post.DefaultSeeds()
		appended, err := f.SeedPosts(seeds).Execute(ctx)
		require.NoError(t, err)
		assert.Equal(t, len(seeds), appended)

		again, err := f.SeedPosts(seeds).Execute(ctx)
		require.NoError(t, err)
		assert.Zero(t, again)

		posts, err := f.ListPosts("npcs").Execute(ctx)
		require.NoError(t, err)
		assert.Len(t, posts, 1)
		empty, err := f.ListPosts("world-repository").Execute(ctx)
		require.NoError(t, err)
		assert.Empty(t, empty)
	})

	t.Run("Should add every seed of an empty section", func(t *testing.T) {
		f, _ := newFactory(t)
		ctx := t.Context()
		seeds := []post.Seed{
			{SectionID: "npcs", Draft: post.Draft{Author: "a", Content: "one"}},
			{SectionID: "npcs", Draft: post.Draft{Author: "a", Content: "two"}},
			{SectionID: "unknown", Draft: post.Draft{Author: "a", Content: "skip"}},
		}
		appended, err := f.SeedPosts(seeds).Execute(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, appended)
	})

	t.Run("Should skip sections that already have posts", func(t *testing.T) {
		f, _ := newFactory(t)
		ctx := t.Context()
		_, err := f.AppendPost("npcs", &uc.AppendPostInput{Author: "Alice", Content: "mine"}).Execute(ctx)
		require.NoError(t, err)
		appended, err := f.SeedPosts(post.DefaultSeeds()).Execute(ctx)
		require.NoError(t, err)
		assert.Equal(t, len(post.DefaultSeeds())-1, appended)
	})
}
