package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/starfolio/portfolio-backend/internal/contact/domain"
	"github.com/starfolio/portfolio-backend/internal/contact/repository"
)

// ContactService validates and persists contact submissions. It is stateless
// across submissions except for the last assigned ID, which guarantees that
// IDs stay distinct even when two submissions land in the same millisecond.
type ContactService struct {
	store repository.Store
	now   func() time.Time

	mu     sync.Mutex
	lastID int64
}

// NewContactService creates a ContactService writing to the given store.
func NewContactService(store repository.Store) *ContactService {
	return &ContactService{
		store: store,
		now:   time.Now,
	}
}

// Submit validates the request, assigns the ID and creation timestamp, and
// persists the submission as a single write. Nothing is written when
// validation fails.
func (s *ContactService) Submit(ctx context.Context, req *domain.SubmitRequest) (*domain.Submission, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	message := strings.TrimSpace(req.Message)
	if name == "" || email == "" || message == "" {
		return nil, domain.ErrMissingRequiredFields
	}

	createdAt := s.now().UTC()
	sub := &domain.Submission{
		ID:        s.nextID(createdAt),
		Name:      name,
		Email:     email,
		Subject:   strings.TrimSpace(req.Subject),
		Message:   message,
		CreatedAt: createdAt,
	}

	if err := s.store.Save(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// CountSince reports how many submissions were created at or after since.
func (s *ContactService) CountSince(ctx context.Context, since time.Time) (int64, error) {
	return s.store.CountSince(ctx, since)
}

// Ping reports whether the backing store is reachable.
func (s *ContactService) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

// nextID returns the creation time in epoch milliseconds, bumped past the
// previously assigned ID when two submissions share a millisecond.
func (s *ContactService) nextID(createdAt time.Time) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := createdAt.UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}
