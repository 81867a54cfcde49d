package sqlite

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/reikouwu/House-Liber-Arce/engine/post"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) (*Store, *PostRepo) {
	t.Helper()
	ctx := context.Background()
	s, err := NewStore(ctx, &Config{Path: filepath.Join(t.TempDir(), "board.db")})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close(context.Background()) })
	require.NoError(t, ApplyMigrations(ctx, s.DB()))
	return s, NewPostRepo(s.DB())
}

func TestBuildDSN(t *testing.T) {
	t.Run("Should build DSN for file path with pragmas", func(t *testing.T) {
		d := buildDSN(&Config{Path: "/tmp/test.db"})
		assert.Contains(t, d, "file:/tmp/test.db")
		assert.Contains(t, d, "_pragma=journal_mode(WAL)")
		assert.Contains(t, d, "_pragma=foreign_keys(ON)")
		assert.Contains(t, d, "_pragma=busy_timeout(5000)")
	})
	t.Run("Should build DSN for in-memory shared cache", func(t *testing.T) {
		d := buildDSN(&Config{Path: ":memory:", BusyTimeout: time.Second})
		assert.Contains(t, d, "file::memory:?cache=shared")
		assert.Contains(t, d, "_pragma=busy_timeout(1000)")
		assert.NotContains(t, d, "journal_mode")
	})
}

func TestNewStore(t *testing.T) {
	t.Run("Should require a path", func(t *testing.T) {
		_, err := NewStore(context.Background(), &Config{})
		assert.Error(t, err)
	})
	t.Run("Should open and pass health checks", func(t *testing.T) {
		s, _ := newTestRepo(t)
		assert.NoError(t, s.HealthCheck(context.Background()))
	})
	t.Run("Should apply migrations twice without error", func(t *testing.T) {
		s, _ := newTestRepo(t)
		assert.NoError(t, ApplyMigrations(context.Background(), s.DB()))
	})
}

func TestPostRepo(t *testing.T) {
	t.Run("Should append and list posts in order", func(t *testing.T) {
		_, repo := newTestRepo(t)
		ctx := context.Background()
		before := time.Now().UTC().Truncate(time.Millisecond)
		first, err := repo.AppendPost(ctx, "npcs", &post.Draft{Author: "Alice", Content: "one", Tags: []string{" npc ", ""}})
		require.NoError(t, err)
		second, err := repo.AppendPost(ctx, "npcs", &post.Draft{Author: "Bob", Content: "two"})
		require.NoError(t, err)
		assert.Greater(t, second.ID, first.ID)
		assert.False(t, first.CreatedAt.Before(before))
		assert.Equal(t, []string{"npc"}, first.Tags)

		posts, err := repo.ListPosts(ctx, "npcs")
		require.NoError(t, err)
		require.Len(t, posts, 2)
		assert.Equal(t, first.ID, posts[0].ID)
		assert.Equal(t, "npcs", posts[0].SectionID)
		assert.Equal(t, []string{"npc"}, posts[0].Tags)
		assert.Equal(t, []string{}, posts[1].Tags)
		assert.True(t, first.CreatedAt.Equal(posts[0].CreatedAt))
	})

	t.Run("Should return an empty slice for an empty section", func(t *testing.T) {
		_, repo := newTestRepo(t)
		posts, err := repo.ListPosts(context.Background(), "artifacts")
		require.NoError(t, err)
		assert.NotNil(t, posts)
		assert.Empty(t, posts)
	})

	t.Run("Should keep sections isolated", func(t *testing.T) {
		_, repo := newTestRepo(t)
		ctx := context.Background()
		_, err := repo.AppendPost(ctx, "npcs", &post.Draft{Author: "a", Content: "b"})
		require.NoError(t, err)
		posts, err := repo.ListPosts(ctx, "artifacts")
		require.NoError(t, err)
		assert.Empty(t, posts)
	})

	t.Run("Should keep every concurrent append", func(t *testing.T) {
		_, repo := newTestRepo(t)
		ctx := context.Background()
		const writers = 10
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
		assert.Len(t, posts, writers)
	})
}

func TestParseTime(t *testing.T) {
	t.Run("Should parse the column default format", func(t *testing.T) {
		ts, err := parseTime("2026-03-01T10:00:00.123Z")
		require.NoError(t, err)
		assert.Equal(t, 123*time.Millisecond, time.Duration(ts.Nanosecond()))
	})
	t.Run("Should reject other formats", func(t *testing.T) {
		_, err := parseTime("yesterday")
		assert.Error(t, err)
	})
}
