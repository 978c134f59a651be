// internal/domain/product/repository.go
package product

import (
	"context"
	"errors"
)

// ErrProductNotFound is returned when a product ID does not exist in the catalog.
var ErrProductNotFound = errors.New("product not found")

// Repository provides read access to the catalog. The catalog is immutable at
// runtime; both backends are seeded with the same sample data.
type Repository interface {
	// List returns the full catalog in its original order.
	List(ctx context.Context) ([]Product, error)

	// Get returns one product by ID, or ErrProductNotFound.
	Get(ctx context.Context, id uint) (*Product, error)
}

// MemoryRepository serves the catalog from memory
type MemoryRepository struct {
	products []Product
}

// NewMemoryRepository creates a catalog repository over the given products.
// Passing nil seeds the sample catalog.
func NewMemoryRepository(products []Product) *MemoryRepository {
	if products == nil {
		products = SampleCatalog()
	}
	return &MemoryRepository{products: products}
}

// List returns the full catalog in original order
func (r *MemoryRepository) List(ctx context.Context) ([]Product, error) {
	out := make([]Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

// Get returns one product by ID
func (r *MemoryRepository) Get(ctx context.Context, id uint) (*Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, ErrProductNotFound
}
