package repository

import (
	"context"

	"github.com/starfolio/portfolio-backend/internal/content/domain"
)

// Repository loads the portfolio content catalog.
type Repository interface {
	Load(ctx context.Context) (*domain.Catalog, error)
}
