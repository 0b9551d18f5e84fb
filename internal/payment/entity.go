// AngelaMos | 2026
// entity.go

package payment

import (
	"time"

	"github.com/shopspring/decimal"
)

const DefaultMethod = "cash"

// Payment records money received against an order. The amount is
// already reflected in the order and client totals while the row exists.
type Payment struct {
	ID            string          `db:"id"`
	OrderID       string          `db:"order_id"`
	ClientID      string          `db:"client_id"`
	Amount        decimal.Decimal `db:"amount"`
	PaymentDate   time.Time       `db:"payment_date"`
	PaymentMethod string          `db:"payment_method"`
	ReceivedBy    string          `db:"received_by"`
	Notes         string          `db:"notes"`
	ShopName      string          `db:"shop_name"`
	CreatedAt     time.Time       `db:"created_at"`
}

// Receipt is a payment joined with who took it and, for client
// listings, the order it was for.
type Receipt struct {
	Payment
	FirstName string     `db:"first_name"`
	LastName  string     `db:"last_name"`
	Role      string     `db:"role"`
	OrderName string     `db:"order_name"`
	OrderDate *time.Time `db:"order_date"`
}
