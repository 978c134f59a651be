// internal/domain/product/entity.go
package product

// Product represents a catalog entry. Catalog entries are immutable for this
// demo; prices are stored in cents.
type Product struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"not null;size:255" json:"name"`
	Price       int64   `gorm:"not null" json:"price"`
	Category    string  `gorm:"not null;size:100;index" json:"category"`
	Rating      float64 `gorm:"default:0" json:"rating"`
	Reviews     int     `gorm:"default:0" json:"reviews"`
	Image       string  `gorm:"size:500" json:"image"`
	Description string  `gorm:"type:text" json:"description"`
	InStock     bool    `gorm:"default:true" json:"in_stock"`
	Featured    bool    `gorm:"default:false" json:"featured"`
}

// TableName overrides the table name
func (Product) TableName() string {
	return "products"
}

// SampleCatalog returns the demo catalog seeded into every backend
func SampleCatalog() []Product {
	return []Product{
		{
			ID:          1,
			Name:        "Premium Wireless Headphones",
			Price:       29999,
			Category:    "Electronics",
			Rating:      4.8,
			Reviews:     124,
			Image:       "Premium wireless headphones with noise cancellation",
			Description: "Experience crystal-clear audio with our premium wireless headphones featuring active noise cancellation.",
			InStock:     true,
			Featured:    true,
		},
		{
			ID:          2,
			Name:        "Luxury Leather Wallet",
			Price:       8999,
			Category:    "Accessories",
			Rating:      4.9,
			Reviews:     89,
			Image:       "Elegant leather wallet in brown",
			Description: "Handcrafted genuine leather wallet with RFID protection and multiple card slots.",
			InStock:     true,
			Featured:    false,
		},
		{
			ID:          3,
			Name:        "Smart Fitness Watch",
			Price:       19999,
			Category:    "Electronics",
			Rating:      4.7,
			Reviews:     203,
			Image:       "Modern smartwatch with fitness tracking",
			Description: "Track your fitness goals with this advanced smartwatch featuring heart rate monitoring.",
			InStock:     true,
			Featured:    true,
		},
		{
			ID:          4,
			Name:        "Organic Coffee Beans",
			Price:       2499,
			Category:    "Food",
			Rating:      4.6,
			Reviews:     67,
			Image:       "Premium organic coffee beans",
			Description: "Single-origin organic coffee beans roasted to perfection for the ultimate coffee experience.",
			InStock:     true,
			Featured:    false,
		},
		{
			ID:          5,
			Name:        "Designer Sunglasses",
			Price:       15999,
			Category:    "Accessories",
			Rating:      4.8,
			Reviews:     156,
			Image:       "Stylish designer sunglasses",
			Description: "UV protection designer sunglasses with polarized lenses and titanium frame.",
			InStock:     false,
			Featured:    true,
		},
		{
			ID:          6,
			Name:        "Wireless Charging Pad",
			Price:       4999,
			Category:    "Electronics",
			Rating:      4.5,
			Reviews:     92,
			Image:       "Sleek wireless charging pad",
			Description: "Fast wireless charging pad compatible with all Qi-enabled devices.",
			InStock:     true,
			Featured:    false,
		},
	}
}
