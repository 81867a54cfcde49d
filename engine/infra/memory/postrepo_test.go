package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/reikouwu/House-Liber-Arce/engine/post"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostRepo_AppendPost(t *testing.T) {
	t.Run("Should assign increasing ids and UTC timestamps", func(t *testing.T) {
		repo := NewPostRepo()
		ctx := t.Context()
		before := time.Now().UTC()

		first, err := repo.AppendPost(ctx, "npcs", &post.Draft{Author: "Alice", Content: "hello"})
		require.NoError(t, err)
		second, err := repo.AppendPost(ctx, "artifacts", &post.Draft{Author: "Bob", Content: "hi"})
		require.NoError(t, err)

		assert.Equal(t, int64(1), first.ID)
		assert.Equal(t, int64(2), second.ID)
		assert.Equal(t, time.UTC, first.CreatedAt.Location())
		assert.False(t, first.CreatedAt.Before(before))
		assert.Equal(t, []string{}, first.Tags)
	})

	t.Run("Should clamp a clock that moves backwards", func(t *testing.T) {
		base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
		ticks := []time.Time{base, base.Add(-time.Hour)}
		i := 0
		repo := NewPostRepo(WithClock(func() time.Time {
			tick := ticks[i]
			i++
			return tick
		}))
		ctx := t.Context()
		_, err := repo.AppendPost(ctx, "npcs", &post.Draft{Author: "a", Content: "1"})
		require.NoError(t, err)
		second, err := repo.AppendPost(ctx, "npcs", &post.Draft{Author: "a", Content: "2"})
		require.NoError(t, err)
		assert.Equal(t, base, second.CreatedAt)
	})

	t.Run("Should reject a nil draft", func(t *testing.T) {
		_, err := NewPostRepo().AppendPost(t.Context(), "npcs", nil)
		assert.Error(t, err)
	})

	t.Run("Should fail when the context is canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		cancel()
		_, err := NewPostRepo().AppendPost(ctx, "npcs", &post.Draft{Author: "a", Content: "b"})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestPostRepo_ListPosts(t *testing.T) {
	t.Run("Should return an empty slice for a section without posts", func(t *testing.T) {
		posts, err := NewPostRepo().ListPosts(t.Context(), "npcs")
		require.NoError(t, err)
		assert.NotNil(t, posts)
		assert.Empty(t, posts)
	})

	t.Run("Should return posts in append order", func(t *testing.T) {
		repo := NewPostRepo()
		ctx := t.Context()
		for i := range 3 {
			_, err := repo.AppendPost(ctx, "npcs", &post.Draft{Author: "a", Content: fmt.Sprint(i)})
			require.NoError(t, err)
		}
		posts, err := repo.ListPosts(ctx, "npcs")
		require.NoError(t, err)
		require.Len(t, posts, 3)
		for i, p := range posts {
			assert.Equal(t, fmt.Sprint(i), p.Content)
			if i > 0 {
				assert.False(t, p.CreatedAt.Before(posts[i-1].CreatedAt))
			}
		}
	})

	t.Run("Should hand out copies that cannot change stored posts", func(t *testing.T) {
		repo := NewPostRepo()
		ctx := t.Context()
		_, err := repo.AppendPost(ctx, "npcs", &post.Draft{Author: "a", Content: "b", Tags: []string{"x"}})
		require.NoError(t, err)
		posts, err := repo.ListPosts(ctx, "npcs")
		require.NoError(t, err)
		posts[0].Tags[0] = "mutated"
		posts[0].Author = "mutated"
		again, err := repo.ListPosts(ctx, "npcs")
		require.NoError(t, err)
		assert.Equal(t, "x", again[0].Tags[0])
		assert.Equal(t, "a", again[0].Author)
	})
}

func TestPostRepo_Concurrency(t *testing.T) {
	t.Run("Should keep every concurrent append with unique ids", func(t *testing.T) {
		repo := NewPostRepo()
		ctx := t.Context()
		const writers = 50
		var wg sync.WaitGroup
		for i := range writers {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, err := repo.AppendPost(ctx, "npcs", &post.Draft{Author: "w", Content: fmt.Sprint(i)})
				assert.NoError(t, err)
			}(i)
		}
		wg.Wait()
		posts, err := repo.ListPosts(ctx, "npcs")
		require.NoError(t, err)
		require.Len(t, posts, writers)
		seen := make(map[int64]bool)
		for i, p := range posts {
			assert.False(t, seen[p.ID])
			seen[p.ID] = true
			if i > 0 {
				assert.False(t, p.CreatedAt.Before(posts[i-1].CreatedAt))
				assert.Greater(t, p.ID, posts[i-1].ID)
			}
		}
	})
}
