package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/starfolio/portfolio-backend/internal/content/domain"
)

// PgRepository loads the content catalog from Postgres, for deployments that
// edit content without rebuilding the binary.
type PgRepository struct {
	pool *pgxpool.Pool
}

// NewPgRepository creates a PgRepository backed by the given pool.
func NewPgRepository(pool *pgxpool.Pool) *PgRepository {
	return &PgRepository{pool: pool}
}

var _ Repository = (*PgRepository)(nil)

// Load reads the whole catalog. A missing profile row falls back to the
// embedded seed profile so a half-migrated database still renders.
func (r *PgRepository) Load(ctx context.Context) (*domain.Catalog, error) {
	catalog := &domain.Catalog{
		Certifications: []domain.Certification{},
		Courses:        []domain.Course{},
		Testimonials:   []domain.Testimonial{},
	}

	err := r.pool.QueryRow(ctx,
		`SELECT name, title, bio, email, location FROM profile LIMIT 1`,
	).Scan(&catalog.Profile.Name, &catalog.Profile.Title, &catalog.Profile.Bio,
		&catalog.Profile.Email, &catalog.Profile.Location)
	if err == pgx.ErrNoRows {
		catalog.Profile = seedCatalog.Profile
	} else if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id, name, issuer, year FROM certifications ORDER BY year DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("load certifications: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var c domain.Certification
		if err := rows.Scan(&c.ID, &c.Name, &c.Issuer, &c.Year); err != nil {
			return nil, fmt.Errorf("scan certification: %w", err)
		}
		catalog.Certifications = append(catalog.Certifications, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load certifications: %w", err)
	}

	rows, err = r.pool.Query(ctx,
		`SELECT id, title, provider, year FROM courses ORDER BY year DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("load courses: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var c domain.Course
		if err := rows.Scan(&c.ID, &c.Title, &c.Provider, &c.Year); err != nil {
			return nil, fmt.Errorf("scan course: %w", err)
		}
		catalog.Courses = append(catalog.Courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load courses: %w", err)
	}

	rows, err = r.pool.Query(ctx,
		`SELECT id, author, role, quote FROM testimonials ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("load testimonials: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var tmn domain.Testimonial
		if err := rows.Scan(&tmn.ID, &tmn.Author, &tmn.Role, &tmn.Quote); err != nil {
			return nil, fmt.Errorf("scan testimonial: %w", err)
		}
		catalog.Testimonials = append(catalog.Testimonials, tmn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load testimonials: %w", err)
	}

	return catalog, nil
}
