package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/reikouwu/House-Liber-Arce/engine/post"
)

// timeLayout matches strftime('%Y-%m-%dT%H:%M:%fZ') used by the column default.
const timeLayout = "2006-01-02T15:04:05.000Z"

// PostRepo implements post.Repository on a SQLite *sql.DB.
type PostRepo struct{ db *sql.DB }

func NewPostRepo(db *sql.DB) *PostRepo { return &PostRepo{db: db} }

func (r *PostRepo) ListPosts(ctx context.Context, sectionID string) ([]post.Post, error) {
	query, args, err := squirrel.Select("id", "section_id", "author", "content", "tags", "created_at").
		From("posts").
		Where(squirrel.Eq{"section_id": sectionID}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("sqlite: build list query: %w", err)
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("sqlite: list posts: %w", err)
	}
	defer rows.Close()
	out := make([]post.Post, 0)
	for rows.Next() {
		var (
			p         post.Post
			tagsText  string
			createdAt string
		)
		if err := rows.Scan(&p.ID, &p.SectionID, &p.Author, &p.Content, &tagsText, &createdAt); err != nil {
			return nil, fmt.Errorf("sqlite: scan post: %w", err)
		}
		if p.Tags, err = decodeTags(tagsText); err != nil {
			return nil, err
		}
		if p.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iter posts: %w", err)
	}
	return out, nil
}

func (r *PostRepo) AppendPost(ctx context.Context, sectionID string, draft *post.Draft) (*post.Post, error) {
	if draft == nil {
		return nil, fmt.Errorf("sqlite: draft is required")
	}
	tags := post.NormalizeTags(draft.Tags)
	tagsText, err := json.Marshal(tags)
	if err != nil {
		return nil, fmt.Errorf("sqlite: encode tags: %w", err)
	}
	query, args, err := squirrel.Insert("posts").
		Columns("section_id", "author", "content", "tags").
		Values(sectionID, draft.Author, draft.Content, string(tagsText)).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("sqlite: build insert: %w", err)
	}
	created := &post.Post{
		SectionID: sectionID,
		Author:    draft.Author,
		Content:   draft.Content,
		Tags:      tags,
	}
	var createdAt string
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&created.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("sqlite: insert post: %w", err)
	}
	if created.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	return created, nil
}

func decodeTags(raw string) ([]string, error) {
	tags := []string{}
	if raw == "" {
		return tags, nil
	}
	if err := json.Unmarshal([]byte(raw), &tags); err != nil {
		return nil, fmt.Errorf("sqlite: decode tags: %w", err)
	}
	if tags == nil {
		tags = []string{}
	}
	return tags, nil
}

func parseTime(raw string) (time.Time, error) {
	ts, err := time.Parse(timeLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("sqlite: parse created_at %q: %w", raw, err)
	}
	return ts.UTC(), nil
}
