// internal/domain/product/repository_db.go
package product

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// GormRepository serves the catalog from postgres
type GormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates a catalog repository over the given database
func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// List returns the full catalog ordered by ID, matching the seed order
func (r *GormRepository) List(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// Get returns one product by ID
func (r *GormRepository) Get(ctx context.Context, id uint) (*Product, error) {
	var p Product
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product %d: %w", id, err)
	}
	return &p, nil
}
