// internal/domain/cart/service.go
package cart

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

// Sentinel errors surfaced to the user as notices.
var (
	ErrSignInRequired   = errors.New("sign in required")
	ErrOutOfStock       = errors.New("product is out of stock")
	ErrNegativeQuantity = errors.New("quantity cannot be negative")
	ErrLineNotFound     = errors.New("item not found in cart")
)

// Service handles cart business logic. Every mutation checks for an active
// session first and persists the cart immediately after committing.
type Service struct {
	store    storage.Store
	keys     storage.Keys
	products product.Repository
	sessions *session.Service
	log      *logrus.Logger
}

// NewService creates a new cart service
func NewService(store storage.Store, keys storage.Keys, products product.Repository, sessions *session.Service, log *logrus.Logger) *Service {
	return &Service{
		store:    store,
		keys:     keys,
		products: products,
		sessions: sessions,
		log:      log,
	}
}

// Response represents a cart with its derived totals
type Response struct {
	Lines  []Line `json:"lines"`
	Totals Totals `json:"totals"`
}

// Get returns the session's cart with totals. An absent or corrupt blob
// yields an empty cart.
func (s *Service) Get(ctx context.Context, sessionID string) (*Response, error) {
	c, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.respond(c), nil
}

// Add puts one unit of a product into the cart. An existing line is
// incremented by 1, otherwise a new line with quantity 1 is inserted.
func (s *Service) Add(ctx context.Context, sessionID string, productID uint) (*Response, error) {
	if err := s.requireSession(ctx, sessionID); err != nil {
		return nil, err
	}

	prod, err := s.products.Get(ctx, productID)
	if err != nil {
		return nil, err
	}

	if !prod.InStock {
		return nil, ErrOutOfStock
	}

	c, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if i := c.find(productID); i >= 0 {
		c.Lines[i].Quantity++
	} else {
		c.Lines = append(c.Lines, Line{Product: *prod, Quantity: 1})
	}

	if err := s.save(ctx, sessionID, c); err != nil {
		return nil, err
	}
	return s.respond(c), nil
}

// UpdateQuantity replaces a line's quantity. Zero removes the line; negative
// values are rejected.
func (s *Service) UpdateQuantity(ctx context.Context, sessionID string, productID uint, quantity int) (*Response, error) {
	if err := s.requireSession(ctx, sessionID); err != nil {
		return nil, err
	}

	if quantity < 0 {
		return nil, ErrNegativeQuantity
	}

	if quantity == 0 {
		return s.Remove(ctx, sessionID, productID)
	}

	c, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	i := c.find(productID)
	if i < 0 {
		return nil, ErrLineNotFound
	}
	c.Lines[i].Quantity = quantity

	if err := s.save(ctx, sessionID, c); err != nil {
		return nil, err
	}
	return s.respond(c), nil
}

// Remove deletes a line if present; removing an absent line is a no-op.
func (s *Service) Remove(ctx context.Context, sessionID string, productID uint) (*Response, error) {
	if err := s.requireSession(ctx, sessionID); err != nil {
		return nil, err
	}

	c, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if i := c.find(productID); i >= 0 {
		c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
		if err := s.save(ctx, sessionID, c); err != nil {
			return nil, err
		}
	}

	return s.respond(c), nil
}

// Clear drops the session's cart blob
func (s *Service) Clear(ctx context.Context, sessionID string) error {
	return s.store.Clear(ctx, s.keys.Cart(sessionID))
}

// requireSession rejects mutations from anonymous sessions
func (s *Service) requireSession(ctx context.Context, sessionID string) error {
	user, err := s.sessions.Current(ctx, sessionID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrSignInRequired
	}
	return nil
}

// load rehydrates the cart blob. Absent blobs yield an empty cart; a corrupt
// blob is recoverable and also yields an empty cart.
func (s *Service) load(ctx context.Context, sessionID string) (*Cart, error) {
	data, err := s.store.Load(ctx, s.keys.Cart(sessionID))
	if errors.Is(err, storage.ErrNotFound) {
		return &Cart{Lines: []Line{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	// The blob is the ordered line sequence itself, matching the original
	// demo's storage layout.
	var lines []Line
	if err := json.Unmarshal(data, &lines); err != nil {
		s.log.WithError(err).WithField("session_id", sessionID).Warn("Corrupt cart blob, starting from empty cart")
		return &Cart{Lines: []Line{}}, nil
	}
	if lines == nil {
		lines = []Line{}
	}

	return &Cart{Lines: lines}, nil
}

// save persists the cart blob immediately after a mutation
func (s *Service) save(ctx context.Context, sessionID string, c *Cart) error {
	data, err := json.Marshal(c.Lines)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}
	if err := s.store.Save(ctx, s.keys.Cart(sessionID), data); err != nil {
		return fmt.Errorf("failed to persist cart: %w", err)
	}
	return nil
}

func (s *Service) respond(c *Cart) *Response {
	return &Response{
		Lines:  c.Lines,
		Totals: c.ComputeTotals(),
	}
}
