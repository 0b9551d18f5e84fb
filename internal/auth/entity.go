// AngelaMos | 2026
// entity.go

package auth

import (
	"time"
)

type Shop struct {
	ID           string    `db:"id"`
	Name         string    `db:"name"`
	Description  string    `db:"description"`
	BusinessType string    `db:"business_type"`
	CreatedBy    string    `db:"created_by"`
	IsActive     bool      `db:"is_active"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

const (
	BusinessVideoEditing = "video_editing"
	BusinessLEDWalls     = "led_walls"
	BusinessDrones       = "drones"
	BusinessMixed        = "mixed"
)

// DefaultShops is the catalogue offered on a fresh install.
var DefaultShops = []Shop{
	{Name: "Creative Studios", BusinessType: BusinessVideoEditing},
	{Name: "Event Productions", BusinessType: BusinessMixed},
	{Name: "Digital Media House", BusinessType: BusinessVideoEditing},
	{Name: "Wedding Films Co.", BusinessType: BusinessVideoEditing},
	{Name: "LED Vision Pro", BusinessType: BusinessLEDWalls},
	{Name: "Drone Masters", BusinessType: BusinessDrones},
}

// ShopOwner is the owner account already bound to a shop name.
type ShopOwner struct {
	ID       string `db:"id"`
	Email    string `db:"email"`
	ShopName string `db:"shop_name"`
}
