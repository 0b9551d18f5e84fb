// AngelaMos | 2026
// entity.go

package order

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/carterperez-dev/studio-ledger/internal/ledger"
)

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

// Order holds its own payment balance. RemainingPayment is always
// TotalAmount minus ReceivedPayment.
type Order struct {
	ID               string          `db:"id"`
	ClientID         string          `db:"client_id"`
	OrderName        string          `db:"order_name"`
	VenuePlace       string          `db:"venue_place"`
	Description      string          `db:"description"`
	TotalAmount      decimal.Decimal `db:"total_amount"`
	ReceivedPayment  decimal.Decimal `db:"received_payment"`
	RemainingPayment decimal.Decimal `db:"remaining_payment"`
	OrderDate        time.Time       `db:"order_date"`
	CompletionDate   *time.Time      `db:"completion_date"`
	Status           string          `db:"status"`
	CreatedBy        string          `db:"created_by"`
	ShopName         string          `db:"shop_name"`
	CreatedAt        time.Time       `db:"created_at"`
	UpdatedAt        time.Time       `db:"updated_at"`
}

// ClientDelta is what this order contributed to its client's totals.
func (o *Order) ClientDelta() ledger.ClientDelta {
	return ledger.ClientDelta{
		Due:      o.TotalAmount,
		Received: o.ReceivedPayment,
		Orders:   1,
		ShopName: o.ShopName,
	}
}

type Item struct {
	ID       string          `db:"id"`
	OrderID  string          `db:"order_id"`
	Name     string          `db:"name"`
	Quantity int             `db:"quantity"`
	Price    decimal.Decimal `db:"price"`
	SizeInfo string          `db:"size_info"`
}

// Assignment is a worker or transporter on an order with the payment
// they earn for it. Names are filled in on reads.
type Assignment struct {
	ID        string          `db:"id"`
	OrderID   string          `db:"order_id"`
	UserID    string          `db:"user_id"`
	Payment   decimal.Decimal `db:"payment"`
	FirstName string          `db:"first_name"`
	LastName  string          `db:"last_name"`
	ShopName  string          `db:"shop_name"`
}

type ClientSummary struct {
	ID    string `db:"id"`
	Name  string `db:"name"`
	Email string `db:"email"`
	Phone string `db:"phone"`
}

type Detail struct {
	Order
	Client       *ClientSummary
	Products     []Item
	Workers      []Assignment
	Transporters []Assignment
}

func (d *Detail) Participants() []string {
	ids := make([]string, 0, len(d.Workers)+len(d.Transporters))
	for _, a := range d.Workers {
		ids = append(ids, a.UserID)
	}
	for _, a := range d.Transporters {
		ids = append(ids, a.UserID)
	}
	return ids
}

// Payouts sums the listed payments per employee across both crews.
func Payouts(crews ...[]Assignment) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal)
	for _, crew := range crews {
		for _, a := range crew {
			out[a.UserID] = out[a.UserID].Add(a.Payment)
		}
	}
	return out
}
