// internal/domain/wishlist/service.go
package wishlist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/domain/product"
	"github.com/your-org/storefront-backend/internal/domain/session"
	"github.com/your-org/storefront-backend/internal/infrastructure/storage"
)

// ErrSignInRequired is returned for wishlist mutations from anonymous sessions.
var ErrSignInRequired = errors.New("sign in required")

// Service handles wishlist business logic
type Service struct {
	store    storage.Store
	keys     storage.Keys
	products product.Repository
	sessions *session.Service
	log      *logrus.Logger
}

// NewService creates a new wishlist service
func NewService(store storage.Store, keys storage.Keys, products product.Repository, sessions *session.Service, log *logrus.Logger) *Service {
	return &Service{
		store:    store,
		keys:     keys,
		products: products,
		sessions: sessions,
		log:      log,
	}
}

// ToggleResult reports the outcome of a toggle
type ToggleResult struct {
	Product    product.Product `json:"product"`
	Wishlisted bool            `json:"wishlisted"`
}

// Get returns the session's wishlist entries in insertion order
func (s *Service) Get(ctx context.Context, sessionID string) ([]product.Product, error) {
	w, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return w.Items, nil
}

// Toggle flips wishlist membership for a product: removes it when present,
// adds it otherwise. Requires an active session.
func (s *Service) Toggle(ctx context.Context, sessionID string, productID uint) (*ToggleResult, error) {
	user, err := s.sessions.Current(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrSignInRequired
	}

	prod, err := s.products.Get(ctx, productID)
	if err != nil {
		return nil, err
	}

	w, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	wishlisted := w.Toggle(*prod)

	if err := s.save(ctx, sessionID, w); err != nil {
		return nil, err
	}

	return &ToggleResult{Product: *prod, Wishlisted: wishlisted}, nil
}

// Contains reports whether a product is in the session's wishlist
func (s *Service) Contains(ctx context.Context, sessionID string, productID uint) (bool, error) {
	w, err := s.load(ctx, sessionID)
	if err != nil {
		return false, err
	}
	return w.Contains(productID), nil
}

// Clear drops the session's wishlist blob
func (s *Service) Clear(ctx context.Context, sessionID string) error {
	return s.store.Clear(ctx, s.keys.Wishlist(sessionID))
}

// load rehydrates the wishlist blob, falling back to an empty set when the
// blob is absent or corrupt.
func (s *Service) load(ctx context.Context, sessionID string) (*Wishlist, error) {
	data, err := s.store.Load(ctx, s.keys.Wishlist(sessionID))
	if errors.Is(err, storage.ErrNotFound) {
		return &Wishlist{Items: []product.Product{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load wishlist: %w", err)
	}

	// The blob is the ordered product sequence itself, matching the original
	// demo's storage layout.
	var items []product.Product
	if err := json.Unmarshal(data, &items); err != nil {
		s.log.WithError(err).WithField("session_id", sessionID).Warn("Corrupt wishlist blob, starting from empty wishlist")
		return &Wishlist{Items: []product.Product{}}, nil
	}
	if items == nil {
		items = []product.Product{}
	}

	return &Wishlist{Items: items}, nil
}

// save persists the wishlist blob immediately after a mutation
func (s *Service) save(ctx context.Context, sessionID string, w *Wishlist) error {
	data, err := json.Marshal(w.Items)
	if err != nil {
		return fmt.Errorf("failed to encode wishlist: %w", err)
	}
	if err := s.store.Save(ctx, s.keys.Wishlist(sessionID), data); err != nil {
		return fmt.Errorf("failed to persist wishlist: %w", err)
	}
	return nil
}
