package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/reikouwu/House-Liber-Arce/engine/post"
)

const postColumns = "id, section_id, author, content, tags, created_at"

// DB is the minimal database interface PostRepo depends on (pgxpool or pgxmock).
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// PostRepo implements post.Repository on the posts table.
type PostRepo struct {
	db DB
}

func NewPostRepo(db DB) *PostRepo {
	return &PostRepo{db: db}
}

func (r *PostRepo) ListPosts(ctx context.Context, sectionID string) ([]post.Post, error) {
	query, args, err := squirrel.Select(postColumns).
		From("posts").
		Where(squirrel.Eq{"section_id": sectionID}).
		OrderBy("created_at ASC", "id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("postgres: build list query: %w", err)
	}
	posts := make([]post.Post, 0)
	if err := pgxscan.Select(ctx, r.db, &posts, query, args...); err != nil {
		return nil, fmt.Errorf("postgres: list posts: %w", err)
	}
	for i := range posts {
		posts[i].CreatedAt = posts[i].CreatedAt.UTC()
		if posts[i].Tags == nil {
			posts[i].Tags = []string{}
		}
	}
	return posts, nil
}

// AppendPost lets the database assign the id and created_at.
func (r *PostRepo) AppendPost(ctx context.Context, sectionID string, draft *post.Draft) (*post.Post, error) {
	if draft == nil {
		return nil, fmt.Errorf("postgres: draft is required")
	}
	tags := post.NormalizeTags(draft.Tags)
	query, args, err := squirrel.Insert("posts").
		Columns("section_id", "author", "content", "tags").
		Values(sectionID, draft.Author, draft.Content, tags).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("postgres: build insert: %w", err)
	}
	created := &post.Post{
		SectionID: sectionID,
		Author:    draft.Author,
		Content:   draft.Content,
		Tags:      tags,
	}
	if err := r.db.QueryRow(ctx, query, args...).Scan(&created.ID, &created.CreatedAt); err != nil {
		return nil, fmt.Errorf("postgres: insert post: %w", err)
	}
	created.CreatedAt = created.CreatedAt.UTC()
	return created, nil
}
