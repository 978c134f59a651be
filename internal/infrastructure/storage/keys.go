// internal/infrastructure/storage/keys.go
package storage

import "fmt"

// Keys resolves the storage key layout for one session. Three independent
// keys per session: the signed-in user, the cart lines and the wishlist
// entries, each a JSON blob. The prefix is carried over from the original
// demo's local storage keys.
type Keys struct {
	prefix string
}

// NewKeys creates a key resolver with the given prefix
func NewKeys(prefix string) Keys {
	return Keys{prefix: prefix}
}

// User returns the key holding the session's user blob
func (k Keys) User(sessionID string) string {
	return fmt.Sprintf("%s:%s:user", k.prefix, sessionID)
}

// Cart returns the key holding the session's cart blob
func (k Keys) Cart(sessionID string) string {
	return fmt.Sprintf("%s:%s:cart", k.prefix, sessionID)
}

// Wishlist returns the key holding the session's wishlist blob
func (k Keys) Wishlist(sessionID string) string {
	return fmt.Sprintf("%s:%s:wishlist", k.prefix, sessionID)
}
