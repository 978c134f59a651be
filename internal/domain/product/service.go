// internal/domain/product/service.go
package product

import (
	"context"
	"strings"
)

// CategoryAll is the pseudo-category that disables category filtering.
const CategoryAll = "All"

// Service handles catalog queries and derives the visible product list
type Service struct {
	repo Repository
}

// NewService creates a new product service
func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
	}
}

// Visible derives the product list for the current filter state. It starts
// from the full catalog in original order; a non-empty query keeps products
// whose name or category contains it case-insensitively; a category other
// than "All" further restricts to an exact category match. Both filters are
// conjunctive and an empty result is a valid state.
func (s *Service) Visible(ctx context.Context, query, category string) ([]Product, error) {
	catalog, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	filtered := catalog

	if query != "" {
		q := strings.ToLower(query)
		matched := make([]Product, 0, len(filtered))
		for _, p := range filtered {
			if strings.Contains(strings.ToLower(p.Name), q) ||
				strings.Contains(strings.ToLower(p.Category), q) {
				matched = append(matched, p)
			}
		}
		filtered = matched
	}

	if category != "" && !strings.EqualFold(category, CategoryAll) {
		matched := make([]Product, 0, len(filtered))
		for _, p := range filtered {
			if p.Category == category {
				matched = append(matched, p)
			}
		}
		filtered = matched
	}

	return filtered, nil
}

// Categories returns "All" followed by the distinct catalog categories in
// first-seen order, for the storefront's filter bar.
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	catalog, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	categories := []string{CategoryAll}
	seen := make(map[string]bool)
	for _, p := range catalog {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	return categories, nil
}

// Featured returns the featured subset of the catalog in original order
func (s *Service) Featured(ctx context.Context) ([]Product, error) {
	catalog, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	featured := make([]Product, 0, len(catalog))
	for _, p := range catalog {
		if p.Featured {
			featured = append(featured, p)
		}
	}
	return featured, nil
}

// Get returns one product by ID
func (s *Service) Get(ctx context.Context, id uint) (*Product, error) {
	return s.repo.Get(ctx, id)
}
