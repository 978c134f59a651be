// internal/domain/wishlist/entity.go
package wishlist

import (
	"github.com/your-org/storefront-backend/internal/domain/product"
)

// Wishlist is a set of products keyed by product ID. Items keep their
// insertion order for display, but Toggle and Contains enforce set semantics
// so duplicates cannot exist.
type Wishlist struct {
	Items []product.Product `json:"items"`
}

// Contains reports membership by product ID
func (w *Wishlist) Contains(productID uint) bool {
	return w.find(productID) >= 0
}

// Toggle flips membership for p and reports whether p is now in the set
func (w *Wishlist) Toggle(p product.Product) bool {
	if i := w.find(p.ID); i >= 0 {
		w.Items = append(w.Items[:i], w.Items[i+1:]...)
		return false
	}
	w.Items = append(w.Items, p)
	return true
}

func (w *Wishlist) find(productID uint) int {
	for i := range w.Items {
		if w.Items[i].ID == productID {
			return i
		}
	}
	return -1
}
