package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/starfolio/portfolio-backend/internal/contact/domain"
)

// RedisStore persists contact submissions in Redis. Each submission lives
// under {table}:submission:{id}; a sorted set {table}:by_time indexes IDs by
// creation time for counting.
type RedisStore struct {
	client *redis.Client
	table  string
}

// NewRedisStore creates a RedisStore writing under the given table prefix.
func NewRedisStore(client *redis.Client, table string) *RedisStore {
	return &RedisStore{client: client, table: table}
}

// Ensure RedisStore implements Store at compile time.
var _ Store = (*RedisStore)(nil)

// Save writes the submission and its time index entry in one pipeline.
func (s *RedisStore) Save(ctx context.Context, sub *domain.Submission) error {
	data, err := json.Marshal(sub)
	if err != nil {
		return fmt.Errorf("failed to marshal submission: %w", err)
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, s.submissionKey(sub.ID), data, 0)
	pipe.ZAdd(ctx, s.indexKey(), redis.Z{
		Score:  float64(sub.CreatedAt.UnixMilli()),
		Member: strconv.FormatInt(sub.ID, 10),
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save submission: %w", err)
	}
	return nil
}

// Get retrieves a submission by ID.
func (s *RedisStore) Get(ctx context.Context, id int64) (*domain.Submission, error) {
	data, err := s.client.Get(ctx, s.submissionKey(id)).Result()
	if err == redis.Nil {
		return nil, domain.ErrSubmissionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}

	var sub domain.Submission
	if err := json.Unmarshal([]byte(data), &sub); err != nil {
		return nil, fmt.Errorf("failed to unmarshal submission: %w", err)
	}
	return &sub, nil
}

// CountSince counts submissions created at or after since.
func (s *RedisStore) CountSince(ctx context.Context, since time.Time) (int64, error) {
	min := strconv.FormatInt(since.UnixMilli(), 10)
	n, err := s.client.ZCount(ctx, s.indexKey(), min, "+inf").Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count submissions: %w", err)
	}
	return n, nil
}

// Ping reports store reachability.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) submissionKey(id int64) string {
	return fmt.Sprintf("%s:submission:%d", s.table, id)
}

func (s *RedisStore) indexKey() string {
	return fmt.Sprintf("%s:by_time", s.table)
}
