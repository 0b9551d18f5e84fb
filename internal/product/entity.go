// AngelaMos | 2026
// entity.go

package product

import "time"

const (
	TypeQuantity = "quantity"
	TypeSize     = "size"
)

type Product struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Type      string    `db:"type"`
	IsActive  bool      `db:"is_active"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Catalog is what a fresh install offers on the order form.
var Catalog = []Product{
	{Name: "LED", Type: TypeSize},
	{Name: "Mixer", Type: TypeQuantity},
	{Name: "Plasma", Type: TypeQuantity},
	{Name: "Drone", Type: TypeQuantity},
	{Name: "Camera", Type: TypeQuantity},
	{Name: "LED Flooring", Type: TypeSize},
	{Name: "Wireless", Type: TypeQuantity},
	{Name: "Youtube Live", Type: TypeQuantity},
}
