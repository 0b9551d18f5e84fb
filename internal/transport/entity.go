// AngelaMos | 2026
// entity.go

package transport

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	StatusPending   = "pending"
	StatusDelivered = "delivered"
)

type Transport struct {
	ID               string          `db:"id"`
	RelatedOrderID   *string         `db:"related_order_id"`
	RelatedProjectID *string         `db:"related_project_id"`
	ClientID         *string         `db:"client_id"`
	TransporterID    *string         `db:"transporter_id"`
	PickupLocation   string          `db:"pickup_location"`
	DeliveryLocation string          `db:"delivery_location"`
	Distance         decimal.Decimal `db:"distance"`
	TransportFee     decimal.Decimal `db:"transport_fee"`
	EquipmentList    string          `db:"equipment_list"`
	TransportDate    time.Time       `db:"transport_date"`
	Instructions     string          `db:"instructions"`
	Status           string          `db:"status"`
	CompletedDate    *time.Time      `db:"completed_date"`
	ShopName         string          `db:"shop_name"`
	CreatedBy        string          `db:"created_by"`
	CreatedAt        time.Time       `db:"created_at"`
	UpdatedAt        time.Time       `db:"updated_at"`
}

func (t *Transport) Participants() []string {
	if t.TransporterID == nil {
		return nil
	}
	return []string{*t.TransporterID}
}

// CanTransport reports whether a user role includes driving duties,
// e.g. transporter or transporter_worker.
func CanTransport(role string) bool {
	return strings.Contains(role, "transporter")
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
