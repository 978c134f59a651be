// cmd/api/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/product"
	"github.com/your-org/storefront-backend/internal/domain/session"
	"github.com/your-org/storefront-backend/internal/domain/wishlist"
	"github.com/your-org/storefront-backend/internal/infrastructure/database/postgres"
	"github.com/your-org/storefront-backend/internal/infrastructure/storage"
	httpserver "github.com/your-org/storefront-backend/internal/interfaces/http"
	"github.com/your-org/storefront-backend/internal/interfaces/http/routes"
	"github.com/your-org/storefront-backend/internal/pkg/auth"
	"github.com/your-org/storefront-backend/internal/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logg := logger.New(cfg)
	logg.Infof("Starting %s v%s in %s mode", cfg.App.Name, cfg.App.Version, cfg.App.Environment)

	// Connect the durable session store
	store, err := storage.NewRedisStore(cfg)
	if err != nil {
		logg.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer store.Close()

	if err := store.Health(); err != nil {
		logg.Fatalf("Redis health check failed: %v", err)
	}

	// Pick the catalog backend
	var catalogRepo product.Repository
	switch cfg.Catalog.Backend {
	case "postgres":
		db, err := postgres.NewConnection(cfg)
		if err != nil {
			logg.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()

		if err := db.Health(); err != nil {
			logg.Fatalf("Database health check failed: %v", err)
		}

		migration := postgres.NewMigration(db.GetDB(), logg)
		if err := migration.RunAutoMigrations(); err != nil {
			logg.Fatalf("Database migration failed: %v", err)
		}
		if err := migration.SeedCatalog(); err != nil {
			logg.Fatalf("Catalog seeding failed: %v", err)
		}

		catalogRepo = product.NewGormRepository(db.GetDB())
	default:
		catalogRepo = product.NewMemoryRepository(nil)
	}

	// Wire domain services
	keys := storage.NewKeys(cfg.Session.KeyPrefix)
	tokens := auth.NewTokenManager(cfg)

	sessions := session.NewService(store, keys, tokens, logg)
	products := product.NewService(catalogRepo)
	carts := cart.NewService(store, keys, catalogRepo, sessions, logg)
	wishlists := wishlist.NewService(store, keys, catalogRepo, sessions, logg)

	logg.Info("All systems operational")

	// Create and start HTTP server
	server := httpserver.NewServer(cfg, logg, tokens, routes.Services{
		Sessions:  sessions,
		Products:  products,
		Carts:     carts,
		Wishlists: wishlists,
	}, store.Health)

	go func() {
		if err := server.Start(); err != nil {
			logg.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logg.Info("Shutting down gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		logg.Errorf("Failed to shutdown HTTP server gracefully: %v", err)
	}

	logg.Info("Server shutdown completed")
}
