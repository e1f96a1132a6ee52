package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"FormLab/models"

	"github.com/redis/go-redis/v9"
)

// redisRecord carries the password hash, which models.Submission hides from JSON.
type redisRecord struct {
	models.Submission
	PasswordHash string `json:"passwordHash"`
}

// redisRepo keeps one JSON string per variant under "<prefix>:<variant>", no TTL.
type redisRepo struct {
	rdb    *redis.Client
	prefix string
}

// NewRedisRepository stores slots under prefix (default "forms:latest").
func NewRedisRepository(rdb *redis.Client, prefix string) SubmissionRepository {
	if prefix == "" {
		prefix = "forms:latest"
	}
	return &redisRepo{rdb: rdb, prefix: prefix}
}

func (r *redisRepo) key(v models.Variant) string {
	return fmt.Sprintf("%s:%s", r.prefix, v) // e.g. "forms:latest:managed"
}

func (r *redisRepo) Save(s *models.Submission) error {
	b, err := json.Marshal(redisRecord{Submission: *s, PasswordHash: s.PasswordHash})
	if err != nil {
		return fmt.Errorf("encode %s submission: %w", s.Variant, err)
	}
	if err := r.rdb.Set(context.Background(), r.key(s.Variant), b, 0).Err(); err != nil {
		return fmt.Errorf("save %s submission: %w", s.Variant, err)
	}
	return nil
}

func (r *redisRepo) Find(v models.Variant) (*models.Submission, error) {
	val, err := r.rdb.Get(context.Background(), r.key(v)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find %s submission: %w", v, err)
	}
	var rec redisRecord
	if err := json.Unmarshal([]byte(val), &rec); err != nil {
		return nil, fmt.Errorf("decode %s submission: %w", v, err)
	}
	s := rec.Submission
	s.PasswordHash = rec.PasswordHash
	return &s, nil
}

// clearRetries bounds how often ClearNewFlag restarts after a concurrent write to the slot.
const clearRetries = 5

// ClearNewFlag rewrites the slot under WATCH: if another Save lands between the read
// and the write, EXEC fails and the slot is read again.
func (r *redisRepo) ClearNewFlag(v models.Variant, id string) error {
	ctx := context.Background()
	key := r.key(v)

	clear := func(tx *redis.Tx) error {
		val, err := tx.Get(ctx, key).Result()
		if errors.Is(err, redis.Nil) {
			return nil
		}
		if err != nil {
			return err
		}
		var rec redisRecord
		if err := json.Unmarshal([]byte(val), &rec); err != nil {
			return fmt.Errorf("decode %s submission: %w", v, err)
		}
		if rec.ID != id || !rec.IsNew {
			return nil
		}
		rec.IsNew = false
		b, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, b, 0)
			return nil
		})
		return err
	}

	for i := 0; i < clearRetries; i++ {
		err := r.rdb.Watch(ctx, clear, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return fmt.Errorf("clear new flag of %s: %w", v, err)
		}
		return nil
	}
	return fmt.Errorf("clear new flag of %s: %w", v, redis.TxFailedErr)
}

func (r *redisRepo) List() ([]models.Submission, error) {
	items := make([]models.Submission, 0, len(models.Variants))
	for _, v := range models.Variants {
		s, err := r.Find(v)
		if IsNotFound(err) {
			continue
		}
		if err != nil {
			return nil, err
		}
		items = append(items, *s)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Variant < items[j].Variant })
	return items, nil
}
