// internal/infrastructure/database/postgres/migration.go
package postgres

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/domain/product"
	"gorm.io/gorm"
)

// Migration handles catalog schema migration and seeding
type Migration struct {
	db  *gorm.DB
	log *logrus.Logger
}

// NewMigration creates a new migration instance
func NewMigration(db *gorm.DB, log *logrus.Logger) *Migration {
	return &Migration{
		db:  db,
		log: log,
	}
}

// RunAutoMigrations runs GORM auto-migrations for the catalog
func (m *Migration) RunAutoMigrations() error {
	m.log.Info("Running catalog auto-migrations")

	if err := m.db.AutoMigrate(&product.Product{}); err != nil {
		return fmt.Errorf("failed to migrate model %T: %w", &product.Product{}, err)
	}

	m.log.Info("Catalog auto-migrations completed")
	return nil
}

// SeedCatalog inserts the sample catalog if the products table is empty.
// Catalog entries are immutable at runtime, so existing rows are left alone.
func (m *Migration) SeedCatalog() error {
	var count int64
	if err := m.db.Model(&product.Product{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}

	if count > 0 {
		m.log.WithField("products", count).Info("Catalog already seeded")
		return nil
	}

	for _, p := range product.SampleCatalog() {
		if err := m.db.Create(&p).Error; err != nil {
			return fmt.Errorf("failed to seed product %q: %w", p.Name, err)
		}
		m.log.WithField("name", p.Name).Debug("Seeded product")
	}

	m.log.Info("Catalog seeded")
	return nil
}
