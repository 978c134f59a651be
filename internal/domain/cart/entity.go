// internal/domain/cart/entity.go
package cart

import (
	"github.com/your-org/storefront-backend/internal/domain/product"
)

// Line is one cart entry: a product snapshot plus a quantity. Quantity is
// always >= 1; setting it to 0 removes the line. At most one line exists per
// product ID.
type Line struct {
	product.Product
	Quantity int `json:"quantity"`
}

// Cart is the session's cart blob as persisted to storage
type Cart struct {
	Lines []Line `json:"lines"`
}

// Totals represents derived cart figures, recomputed eagerly from the lines
type Totals struct {
	ItemCount   int   `json:"item_count"`   // Sum of all quantities
	UniqueItems int   `json:"unique_items"` // Number of lines
	Subtotal    int64 `json:"subtotal"`     // Sum of price*quantity, in cents
}

// ComputeTotals derives totals from the current lines
func (c *Cart) ComputeTotals() Totals {
	var totals Totals
	totals.UniqueItems = len(c.Lines)
	for _, line := range c.Lines {
		totals.ItemCount += line.Quantity
		totals.Subtotal += line.Price * int64(line.Quantity)
	}
	return totals
}

// find returns the index of the line for productID, or -1
func (c *Cart) find(productID uint) int {
	for i := range c.Lines {
		if c.Lines[i].ID == productID {
			return i
		}
	}
	return -1
}
