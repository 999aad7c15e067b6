package repository

import (
	"context"
	"time"

	"github.com/starfolio/portfolio-backend/internal/contact/domain"
)

// Store is the managed key-value store contact submissions are written to.
// Two implementations exist (Redis and DynamoDB); which one runs is a
// deployment decision made in configuration.
type Store interface {
	// Save persists one submission as a single write.
	Save(ctx context.Context, sub *domain.Submission) error

	// Get retrieves a submission by its ID.
	Get(ctx context.Context, id int64) (*domain.Submission, error)

	// CountSince counts submissions created at or after the given time.
	CountSince(ctx context.Context, since time.Time) (int64, error)

	// Ping reports whether the store is reachable.
	Ping(ctx context.Context) error
}
