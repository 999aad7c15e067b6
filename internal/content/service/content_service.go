package service

import (
	"context"
	"sync"

	"github.com/starfolio/portfolio-backend/internal/content/domain"
	"github.com/starfolio/portfolio-backend/internal/content/repository"
)

// ContentService serves the portfolio catalog from an in-memory copy,
// loading through the repository on first use and on Refresh.
type ContentService struct {
	repo repository.Repository

	mu      sync.RWMutex
	catalog *domain.Catalog
}

// NewContentService creates a ContentService over the given repository.
func NewContentService(repo repository.Repository) *ContentService {
	return &ContentService{repo: repo}
}

// Refresh reloads the catalog from the repository. A failed reload keeps
// the previously served catalog.
func (s *ContentService) Refresh(ctx context.Context) error {
	catalog, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.catalog = catalog
	s.mu.Unlock()
	return nil
}

func (s *ContentService) load(ctx context.Context) (*domain.Catalog, error) {
	s.mu.RLock()
	cached := s.catalog
	s.mu.RUnlock()
	if cached != nil {
		return cached, nil
	}
	if err := s.Refresh(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog, nil
}

// Profile returns the biography block.
func (s *ContentService) Profile(ctx context.Context) (domain.Profile, error) {
	c, err := s.load(ctx)
	if err != nil {
		return domain.Profile{}, err
	}
	return c.Profile, nil
}

// Certifications returns all certification cards.
func (s *ContentService) Certifications(ctx context.Context) ([]domain.Certification, error) {
	c, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return c.Certifications, nil
}

// Courses returns all course cards.
func (s *ContentService) Courses(ctx context.Context) ([]domain.Course, error) {
	c, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return c.Courses, nil
}

// Testimonials returns all testimonial quotes.
func (s *ContentService) Testimonials(ctx context.Context) ([]domain.Testimonial, error) {
	c, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return c.Testimonials, nil
}
