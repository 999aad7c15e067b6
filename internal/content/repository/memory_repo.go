package repository

import (
	"context"

	"github.com/starfolio/portfolio-backend/internal/content/domain"
)

// MemoryRepository serves the embedded seed catalog. It is the default when
// no DATABASE_URL is configured, keeping the site fully static.
type MemoryRepository struct {
	catalog domain.Catalog
}

// NewMemoryRepository creates a repository serving the built-in content.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{catalog: seedCatalog}
}

var _ Repository = (*MemoryRepository)(nil)

// Load returns a copy of the embedded catalog.
func (r *MemoryRepository) Load(ctx context.Context) (*domain.Catalog, error) {
	c := r.catalog
	c.Certifications = append([]domain.Certification(nil), r.catalog.Certifications...)
	c.Courses = append([]domain.Course(nil), r.catalog.Courses...)
	c.Testimonials = append([]domain.Testimonial(nil), r.catalog.Testimonials...)
	return &c, nil
}

// seedCatalog is the content shipped with the binary.
var seedCatalog = domain.Catalog{
	Profile: domain.Profile{
		Name:     "Marina Duarte",
		Title:    "Digital Marketing Strategist",
		Bio:      "Helping brands find their voice for over a decade, from positioning and campaign strategy to growth analytics. I build marketing programs that compound.",
		Email:    "hello@marinaduarte.example",
		Location: "Lisbon, Portugal",
	},
	Certifications: []domain.Certification{
		{ID: 1, Name: "Professional Certified Marketer", Issuer: "American Marketing Association", Year: 2019},
		{ID: 2, Name: "Google Analytics Individual Qualification", Issuer: "Google", Year: 2021},
		{ID: 3, Name: "Content Marketing Certification", Issuer: "HubSpot Academy", Year: 2022},
		{ID: 4, Name: "Meta Certified Media Buying Professional", Issuer: "Meta", Year: 2023},
	},
	Courses: []domain.Course{
		{ID: 1, Title: "Growth Marketing Fundamentals", Provider: "Reforge", Year: 2021},
		{ID: 2, Title: "Marketing Analytics with SQL", Provider: "CXL Institute", Year: 2022},
		{ID: 3, Title: "Brand Strategy Masterclass", Provider: "Section", Year: 2023},
		{ID: 4, Title: "Storytelling for Business", Provider: "IDEO U", Year: 2024},
	},
	Testimonials: []domain.Testimonial{
		{ID: 1, Author: "Rui Campos", Role: "CEO, Altura Studio", Quote: "Marina rebuilt our positioning from the ground up. Qualified leads doubled within two quarters."},
		{ID: 2, Author: "Sofia Lindgren", Role: "Head of Product, Nordvik", Quote: "The rare strategist who is equally comfortable with brand narrative and attribution models."},
		{ID: 3, Author: "Tomás Ferreira", Role: "Founder, Maré Coffee", Quote: "Our launch campaign outperformed every projection. Working with her was the best decision we made that year."},
	},
}
