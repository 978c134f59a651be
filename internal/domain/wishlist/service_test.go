package wishlist_test

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/product"
	"github.com/your-org/storefront-backend/internal/domain/session"
	"github.com/your-org/storefront-backend/internal/domain/wishlist"
	"github.com/your-org/storefront-backend/internal/infrastructure/storage"
	"github.com/your-org/storefront-backend/internal/pkg/auth"
)

type fixture struct {
	wishlists *wishlist.Service
	sessions  *session.Service
	store     *storage.MemoryStore
	keys      storage.Keys
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
	wishlists := wishlist.NewService(store, keys, repo, sessions, log)

	return &fixture{wishlists: wishlists, sessions: sessions, store: store, keys: keys}
}

func (f *fixture) signIn(t *testing.T) string {
	t.Helper()

	resp, err := f.sessions.Login(context.Background(), "shopper@example.com", "pw")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	return resp.SessionID
}

func TestToggleRequiresSession(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.wishlists.Toggle(ctx, "anonymous", 1); !errors.Is(err, wishlist.ErrSignInRequired) {
		t.Fatalf("expected ErrSignInRequired, got %v", err)
	}

	if _, err := f.store.Load(ctx, f.keys.Wishlist("anonymous")); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected no wishlist persisted for rejected toggle, got err=%v", err)
	}
}

func TestToggleFlipsMembership(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sid := f.signIn(t)

	result, err := f.wishlists.Toggle(ctx, sid, 1)
	if err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if !result.Wishlisted {
		t.Error("expected product to be wishlisted after first toggle")
	}

	wishlisted, err := f.wishlists.Contains(ctx, sid, 1)
	if err != nil {
		t.Fatalf("Contains: %v", err)
	}
	if !wishlisted {
		t.Error("expected Contains to report membership")
	}

	result, err = f.wishlists.Toggle(ctx, sid, 1)
	if err != nil {
		t.Fatalf("second Toggle: %v", err)
	}
	if result.Wishlisted {
		t.Error("expected product removed after second toggle")
	}

	wishlisted, err = f.wishlists.Contains(ctx, sid, 1)
	if err != nil {
		t.Fatalf("Contains: %v", err)
	}
	if wishlisted {
		t.Error("expected Contains to report no membership")
	}
}

func TestWishlistIsASet(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sid := f.signIn(t)

	// Odd number of toggles leaves exactly one entry
	for i := 0; i < 3; i++ {
		if _, err := f.wishlists.Toggle(ctx, sid, 2); err != nil {
			t.Fatalf("Toggle %d: %v", i, err)
		}
	}

	items, err := f.wishlists.Get(ctx, sid)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(items) != 1 || items[0].ID != 2 {
		t.Fatalf("expected exactly one entry for product 2, got %+v", items)
	}
}

func TestTogglePreservesInsertionOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sid := f.signIn(t)

	for _, id := range []uint{3, 1, 4} {
		if _, err := f.wishlists.Toggle(ctx, sid, id); err != nil {
			t.Fatalf("Toggle(%d): %v", id, err)
		}
	}

	items, err := f.wishlists.Get(ctx, sid)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	want := []uint{3, 1, 4}
	if len(items) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(items))
	}
	for i := range want {
		if items[i].ID != want[i] {
			t.Fatalf("expected order %v, got %+v", want, items)
		}
	}
}

func TestToggleUnknownProduct(t *testing.T) {
	f := newFixture(t)
	sid := f.signIn(t)

	if _, err := f.wishlists.Toggle(context.Background(), sid, 999); !errors.Is(err, product.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestCorruptWishlistBlobFallsBackToEmpty(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sid := f.signIn(t)

	if err := f.store.Save(ctx, f.keys.Wishlist(sid), []byte("[broken")); err != nil {
		t.Fatalf("Save: %v", err)
	}

	items, err := f.wishlists.Get(ctx, sid)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty wishlist after corrupt blob, got %+v", items)
	}
}
