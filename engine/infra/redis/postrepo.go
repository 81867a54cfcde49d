package redis

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/reikouwu/House-Liber-Arce/engine/post"
)

// appendScript assigns the next id, clamps the timestamp to the section's
// newest score and stores the payload and index entry together. Timestamps
// stay strings inside Lua so microsecond scores keep full precision.
//
// KEYS[1] id sequence, KEYS[2] section index, KEYS[3] section payloads.
// ARGV[1] created_at in unix microseconds, ARGV[2] JSON payload.
var appendScript = goredis.NewScript(`
local id = redis.call('INCR', KEYS[1])
local ts = ARGV[1]
local last = redis.call('ZRANGE', KEYS[2], -1, -1, 'WITHSCORES')
if #last == 2 and tonumber(last[2]) > tonumber(ts) then
  ts = last[2]
end
redis.call('HSET', KEYS[3], id, ARGV[2])
redis.call('ZADD', KEYS[2], ts, id)
return {id, ts}
`)

type payload struct {
	Author  string   `json:"author"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

// PostRepo implements post.Repository with one sorted set per section scored
// by creation time, plus a hash holding the post bodies.
type PostRepo struct {
	client goredis.UniversalClient
	prefix string
	now    func() time.Time
}

func NewPostRepo(client goredis.UniversalClient, prefix string) *PostRepo {
	return &PostRepo{client: client, prefix: prefix, now: time.Now}
}

func (r *PostRepo) seqKey() string { return r.prefix + "posts:seq" }

func (r *PostRepo) indexKey(sectionID string) string {
	return r.prefix + "sections:" + sectionID + ":posts"
}

func (r *PostRepo) dataKey(sectionID string) string {
	return r.prefix + "sections:" + sectionID + ":post-data"
}

func (r *PostRepo) ListPosts(ctx context.Context, sectionID string) ([]post.Post, error) {
	entries, err := r.client.ZRangeWithScores(ctx, r.indexKey(sectionID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("redis: list post index: %w", err)
	}
	out := make([]post.Post, 0, len(entries))
	if len(entries) == 0 {
		return out, nil
	}
	fields := make([]string, len(entries))
	for i, z := range entries {
		member, ok := z.Member.(string)
		if !ok {
			return nil, fmt.Errorf("redis: unexpected index member %v", z.Member)
		}
		fields[i] = member
	}
	values, err := r.client.HMGet(ctx, r.dataKey(sectionID), fields...).Result()
	if err != nil {
		return nil, fmt.Errorf("redis: load post payloads: %w", err)
	}
	for i, z := range entries {
		raw, ok := values[i].(string)
		if !ok {
			continue
		}
		p, err := decodePost(sectionID, fields[i], int64(z.Score), raw)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	slices.SortStableFunc(out, func(a, b post.Post) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out, nil
}

func (r *PostRepo) AppendPost(ctx context.Context, sectionID string, draft *post.Draft) (*post.Post, error) {
	if draft == nil {
		return nil, fmt.Errorf("redis: draft is required")
	}
	body := payload{Author: draft.Author, Content: draft.Content, Tags: post.NormalizeTags(draft.Tags)}
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("redis: encode post: %w", err)
	}
	keys := []string{r.seqKey(), r.indexKey(sectionID), r.dataKey(sectionID)}
	reply, err := appendScript.Run(ctx, r.client, keys, r.now().UTC().UnixMicro(), string(raw)).Slice()
	if err != nil {
		return nil, fmt.Errorf("redis: append post: %w", err)
	}
	if len(reply) != 2 {
		return nil, fmt.Errorf("redis: unexpected append reply %v", reply)
	}
	id, ok := reply[0].(int64)
	if !ok {
		return nil, fmt.Errorf("redis: unexpected post id %v", reply[0])
	}
	micros, err := parseScore(reply[1])
	if err != nil {
		return nil, err
	}
	return &post.Post{
		ID:        id,
		SectionID: sectionID,
		Author:    body.Author,
		Content:   body.Content,
		Tags:      body.Tags,
		CreatedAt: time.UnixMicro(micros).UTC(),
	}, nil
}

// parseScore reads a sorted-set score returned through Lua, which may be an
// integer string or a float formatted with an exponent.
func parseScore(v any) (int64, error) {
	switch score := v.(type) {
	case int64:
		return score, nil
	case string:
		if n, err := strconv.ParseInt(score, 10, 64); err == nil {
			return n, nil
		}
		f, err := strconv.ParseFloat(score, 64)
		if err != nil {
			return 0, fmt.Errorf("redis: parse score %q: %w", score, err)
		}
		return int64(math.Round(f)), nil
	default:
		return 0, fmt.Errorf("redis: unexpected score %v", v)
	}
}

func decodePost(sectionID, member string, micros int64, raw string) (post.Post, error) {
	id, err := strconv.ParseInt(member, 10, 64)
	if err != nil {
		return post.Post{}, fmt.Errorf("redis: parse post id %q: %w", member, err)
	}
	var body payload
	if err := json.Unmarshal([]byte(raw), &body); err != nil {
		return post.Post{}, fmt.Errorf("redis: decode post %d: %w", id, err)
	}
	return post.Post{
		ID:        id,
		SectionID: sectionID,
		Author:    body.Author,
		Content:   body.Content,
		Tags:      post.NormalizeTags(body.Tags),
		CreatedAt: time.UnixMicro(micros).UTC(),
	}, nil
}
