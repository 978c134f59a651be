package cart_test

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/product"
	"github.com/your-org/storefront-backend/internal/domain/session"
	"github.com/your-org/storefront-backend/internal/infrastructure/storage"
	"github.com/your-org/storefront-backend/internal/pkg/auth"
)

type fixture struct {
	carts    *cart.Service
	sessions *session.Service
	store    *storage.MemoryStore
	keys     storage.Keys
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	cfg := &config.Config{
		App: config.AppConfig{Name: "Storefront Test"},
		Session: config.SessionConfig{
			Secret:      "test-session-secret-test-session-secret",
			TokenExpiry: time.Hour,
			KeyPrefix:   "project123",
		},
	}

	log := logrus.New()
	log.SetOutput(io.Discard)

	store := storage.NewMemoryStore()
	keys := storage.NewKeys(cfg.Session.KeyPrefix)
	repo := product.NewMemoryRepository(nil)
	sessions := session.NewService(store, keys, auth.NewTokenManager(cfg), log)
	carts := cart.NewService(store, keys, repo, sessions, log)

	return &fixture{carts: carts, sessions: sessions, store: store, keys: keys}
}

// signIn opens a session and returns its ID
func (f *fixture) signIn(t *testing.T) string {
	t.Helper()

	resp, err := f.sessions.Login(context.Background(), "shopper@example.com", "pw")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	return resp.SessionID
}

func TestAddRequiresSession(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.carts.Add(ctx, "anonymous", 1); !errors.Is(err, cart.ErrSignInRequired) {
		t.Fatalf("expected ErrSignInRequired, got %v", err)
	}

	// No state change: durable storage has no cart blob
	if _, err := f.store.Load(ctx, f.keys.Cart("anonymous")); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected no cart persisted for rejected add, got err=%v", err)
	}
}

func TestAddSameProductTwiceMergesLines(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sid := f.signIn(t)

	if _, err := f.carts.Add(ctx, sid, 1); err != nil {
		t.Fatalf("first Add: %v", err)
	}
	resp, err := f.carts.Add(ctx, sid, 1)
	if err != nil {
		t.Fatalf("second Add: %v", err)
	}

	if len(resp.Lines) != 1 {
		t.Fatalf("expected one line, got %d", len(resp.Lines))
	}
	if resp.Lines[0].Quantity != 2 {
		t.Errorf("expected quantity 2, got %d", resp.Lines[0].Quantity)
	}
}

func TestAddUnknownProduct(t *testing.T) {
	f := newFixture(t)
	sid := f.signIn(t)

	if _, err := f.carts.Add(context.Background(), sid, 999); !errors.Is(err, product.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestAddOutOfStockProduct(t *testing.T) {
	f := newFixture(t)
	sid := f.signIn(t)

	// Product 5 (Designer Sunglasses) is out of stock in the sample catalog
	if _, err := f.carts.Add(context.Background(), sid, 5); !errors.Is(err, cart.ErrOutOfStock) {
		t.Fatalf("expected ErrOutOfStock, got %v", err)
	}
}

func TestUpdateQuantityToZeroEqualsRemove(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sid := f.signIn(t)

	if _, err := f.carts.Add(ctx, sid, 1); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, err := f.carts.Add(ctx, sid, 2); err != nil {
		t.Fatalf("Add: %v", err)
	}

	viaUpdate, err := f.carts.UpdateQuantity(ctx, sid, 1, 0)
	if err != nil {
		t.Fatalf("UpdateQuantity(1, 0): %v", err)
	}
	viaRemove, err := f.carts.Remove(ctx, sid, 2)
	if err != nil {
		t.Fatalf("Remove(2): %v", err)
	}

	if len(viaUpdate.Lines) != 1 || viaUpdate.Lines[0].ID != 2 {
		t.Errorf("UpdateQuantity to 0 did not remove the line: %+v", viaUpdate.Lines)
	}
	if len(viaRemove.Lines) != 0 {
		t.Errorf("Remove left lines behind: %+v", viaRemove.Lines)
	}
}

func TestUpdateQuantityRejectsNegative(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sid := f.signIn(t)

	if _, err := f.carts.Add(ctx, sid, 1); err != nil {
		t.Fatalf("Add: %v", err)
	}

	if _, err := f.carts.UpdateQuantity(ctx, sid, 1, -1); !errors.Is(err, cart.ErrNegativeQuantity) {
		t.Fatalf("expected ErrNegativeQuantity, got %v", err)
	}

	// Quantity unchanged
	resp, err := f.carts.Get(ctx, sid)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if resp.Lines[0].Quantity != 1 {
		t.Errorf("expected quantity 1 after rejected update, got %d", resp.Lines[0].Quantity)
	}
}

func TestUpdateQuantityReplacesValue(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sid := f.signIn(t)

	if _, err := f.carts.Add(ctx, sid, 1); err != nil {
		t.Fatalf("Add: %v", err)
	}

	resp, err := f.carts.UpdateQuantity(ctx, sid, 1, 5)
	if err != nil {
		t.Fatalf("UpdateQuantity: %v", err)
	}
	if resp.Lines[0].Quantity != 5 {
		t.Errorf("expected quantity 5, got %d", resp.Lines[0].Quantity)
	}
}

func TestUpdateQuantityMissingLine(t *testing.T) {
	f := newFixture(t)
	sid := f.signIn(t)

	if _, err := f.carts.UpdateQuantity(context.Background(), sid, 1, 3); !errors.Is(err, cart.ErrLineNotFound) {
		t.Fatalf("expected ErrLineNotFound, got %v", err)
	}
}

func TestRemoveAbsentLineIsNoOp(t *testing.T) {
	f := newFixture(t)
	sid := f.signIn(t)

	resp, err := f.carts.Remove(context.Background(), sid, 42)
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if len(resp.Lines) != 0 {
		t.Fatalf("expected empty cart, got %+v", resp.Lines)
	}
}

func TestTotals(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sid := f.signIn(t)

	// Product 1 costs 29999, product 4 costs 2499 (cents)
	if _, err := f.carts.Add(ctx, sid, 1); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, err := f.carts.Add(ctx, sid, 1); err != nil {
		t.Fatalf("Add: %v", err)
	}
	resp, err := f.carts.Add(ctx, sid, 4)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	if resp.Totals.ItemCount != 3 {
		t.Errorf("expected item count 3, got %d", resp.Totals.ItemCount)
	}
	if resp.Totals.UniqueItems != 2 {
		t.Errorf("expected 2 unique items, got %d", resp.Totals.UniqueItems)
	}
	if want := int64(2*29999 + 2499); resp.Totals.Subtotal != want {
		t.Errorf("expected subtotal %d, got %d", want, resp.Totals.Subtotal)
	}

	// Totals recomputed after removal
	resp, err = f.carts.Remove(ctx, sid, 1)
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if resp.Totals.ItemCount != 1 || resp.Totals.Subtotal != 2499 {
		t.Errorf("expected item count 1 / subtotal 2499, got %d / %d", resp.Totals.ItemCount, resp.Totals.Subtotal)
	}
}

func TestEmptyCartTotalsAreZero(t *testing.T) {
	f := newFixture(t)
	sid := f.signIn(t)

	resp, err := f.carts.Get(context.Background(), sid)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if resp.Totals.ItemCount != 0 {
		t.Errorf("expected item count 0, got %d", resp.Totals.ItemCount)
	}
	if resp.Totals.Subtotal != 0 {
		t.Errorf("expected subtotal 0, got %d", resp.Totals.Subtotal)
	}
}

func TestCorruptCartBlobFallsBackToEmpty(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sid := f.signIn(t)

	if err := f.store.Save(ctx, f.keys.Cart(sid), []byte("{broken")); err != nil {
		t.Fatalf("Save: %v", err)
	}

	resp, err := f.carts.Get(ctx, sid)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(resp.Lines) != 0 {
		t.Fatalf("expected empty cart after corrupt blob, got %+v", resp.Lines)
	}
}

func TestMutationsPersistImmediately(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sid := f.signIn(t)

	if _, err := f.carts.Add(ctx, sid, 1); err != nil {
		t.Fatalf("Add: %v", err)
	}

	// A fresh service over the same store sees the mutation
	log := logrus.New()
	log.SetOutput(io.Discard)
	reloaded := cart.NewService(f.store, f.keys, product.NewMemoryRepository(nil), f.sessions, log)

	resp, err := reloaded.Get(ctx, sid)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(resp.Lines) != 1 || resp.Lines[0].ID != 1 {
		t.Fatalf("expected rehydrated cart with product 1, got %+v", resp.Lines)
	}
}
