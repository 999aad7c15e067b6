package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/starfolio/portfolio-backend/internal/contact/domain"
	"github.com/starfolio/portfolio-backend/internal/contact/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupService(t *testing.T) *ContactService {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewContactService(repository.NewRedisStore(client, "contact_submissions"))
}

func TestContactService_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("persists a valid submission", func(t *testing.T) {
		svc := setupService(t)

		sub, err := svc.Submit(ctx, &domain.SubmitRequest{
			Name:    "A",
			Email:   "a@b.com",
			Message: "hi",
		})
		require.NoError(t, err)
		assert.Greater(t, sub.ID, int64(0))
		assert.Equal(t, "", sub.Subject)
		assert.False(t, sub.CreatedAt.IsZero())
		assert.Equal(t, sub.CreatedAt.UnixMilli(), sub.ID)
	})

	t.Run("rejects missing required fields", func(t *testing.T) {
		svc := setupService(t)

		for _, req := range []*domain.SubmitRequest{
			{Email: "a@b.com", Message: "hi"},
			{Name: "A", Message: "hi"},
			{Name: "A", Email: "a@b.com"},
			{Name: "   ", Email: "a@b.com", Message: "hi"},
		} {
			_, err := svc.Submit(ctx, req)
			assert.Equal(t, domain.ErrMissingRequiredFields, err)
		}
	})

	t.Run("two identical submissions get distinct ids", func(t *testing.T) {
		svc := setupService(t)
		req := &domain.SubmitRequest{Name: "A", Email: "a@b.com", Message: "hi"}

		first, err := svc.Submit(ctx, req)
		require.NoError(t, err)
		second, err := svc.Submit(ctx, req)
		require.NoError(t, err)

		assert.NotEqual(t, first.ID, second.ID)
	})

	t.Run("same-millisecond submissions still get distinct ids", func(t *testing.T) {
		svc := setupService(t)
		frozen := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
		svc.now = func() time.Time { return frozen }

		req := &domain.SubmitRequest{Name: "A", Email: "a@b.com", Message: "hi"}
		first, err := svc.Submit(ctx, req)
		require.NoError(t, err)
		second, err := svc.Submit(ctx, req)
		require.NoError(t, err)

		assert.Equal(t, frozen.UnixMilli(), first.ID)
		assert.Equal(t, frozen.UnixMilli()+1, second.ID)
	})

	t.Run("surfaces store failures without partial writes", func(t *testing.T) {
		svc := NewContactService(failingStore{})

		_, err := svc.Submit(ctx, &domain.SubmitRequest{
			Name: "A", Email: "a@b.com", Message: "hi",
		})
		assert.Error(t, err)
	})
}

func TestContactService_CountSince(t *testing.T) {
	ctx := context.Background()
	svc := setupService(t)

	req := &domain.SubmitRequest{Name: "A", Email: "a@b.com", Message: "hi"}
	for i := 0; i < 3; i++ {
		_, err := svc.Submit(ctx, req)
		require.NoError(t, err)
	}

	n, err := svc.CountSince(ctx, time.Now().Add(-time.Minute))
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

// failingStore always fails writes.
type failingStore struct{}

func (failingStore) Save(context.Context, *domain.Submission) error {
	return errors.New("store unavailable")
}

func (failingStore) Get(context.Context, int64) (*domain.Submission, error) {
	return nil, domain.ErrSubmissionNotFound
}

func (failingStore) CountSince(context.Context, time.Time) (int64, error) {
	return 0, errors.New("store unavailable")
}

func (failingStore) Ping(context.Context) error {
	return errors.New("store unavailable")
}
