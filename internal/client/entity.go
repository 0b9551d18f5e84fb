// AngelaMos | 2026
// entity.go

package client

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	DefaultClientType       = "individual"
	DefaultBusinessCategory = "mixed"
	DefaultPriorityLevel    = "normal"
)

// Client carries running payment totals that orders, projects and
// payments keep current through the client ledger.
type Client struct {
	ID                      string          `db:"id"`
	ShopName                string          `db:"shop_name"`
	Name                    string          `db:"name"`
	Email                   string          `db:"email"`
	Phone                   string          `db:"phone"`
	Address                 string          `db:"address"`
	ClientType              string          `db:"client_type"`
	BusinessCategory        string          `db:"business_category"`
	PriorityLevel           string          `db:"priority_level"`
	Notes                   string          `db:"notes"`
	TotalPaymentsDue        decimal.Decimal `db:"total_payments_due"`
	ReceivedPayments        decimal.Decimal `db:"received_payments"`
	PendingPayments         decimal.Decimal `db:"pending_payments"`
	LifetimeOrders          int             `db:"lifetime_orders"`
	LifetimeEditingProjects int             `db:"lifetime_editing_projects"`
	CreatedAt               time.Time       `db:"created_at"`
	UpdatedAt               time.Time       `db:"updated_at"`
}

const (
	WorkOrder   = "order"
	WorkProject = "project"
)

// WorkItem is an order or an editing project seen from the client side.
type WorkItem struct {
	ID               string          `db:"id"`
	Type             string          `db:"type"`
	Name             string          `db:"name"`
	TotalAmount      decimal.Decimal `db:"total_amount"`
	ReceivedPayment  decimal.Decimal `db:"received_payment"`
	RemainingPayment decimal.Decimal `db:"remaining_payment"`
	Status           string          `db:"status"`
	Date             time.Time       `db:"date"`
}

func (w WorkItem) IsPaid() bool {
	return w.ReceivedPayment.GreaterThanOrEqual(w.TotalAmount)
}
