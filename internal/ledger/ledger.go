// AngelaMos | 2026
// ledger.go

//go:generate mockgen -source=ledger.go -destination=mocks/mocks.go -package=mocks

// Package ledger describes the denormalized running totals that order,
// project, payment and salary writes must keep in step. Implementations
// live next to the tables they own; callers always pass the transaction
// they are running in.
package ledger

import (
	"context"

	"github.com/shopspring/decimal"
)

// ClientDelta is added to a client's running totals. Negative values
// reverse an earlier delta. Pending is always recomputed as due minus
// received, and received never drops below zero. A non-empty ShopName
// limits the update to a client of that shop; any other client is
// reported as not found.
type ClientDelta struct {
	Due      decimal.Decimal
	Received decimal.Decimal
	Orders   int
	Projects int
	ShopName string
}

func (d ClientDelta) Negate() ClientDelta {
	return ClientDelta{
		Due:      d.Due.Neg(),
		Received: d.Received.Neg(),
		Orders:   -d.Orders,
		Projects: -d.Projects,
		ShopName: d.ShopName,
	}
}

type ClientAggregates interface {
	ApplyClientDelta(ctx context.Context, clientID string, delta ClientDelta) error
}

// Employee is the salary-relevant slice of a user row.
type Employee struct {
	ID              string          `db:"id"`
	FirstName       string          `db:"first_name"`
	LastName        string          `db:"last_name"`
	Role            string          `db:"role"`
	ShopName        string          `db:"shop_name"`
	TotalEarnings   decimal.Decimal `db:"total_earnings"`
	PaidSalary      decimal.Decimal `db:"paid_salary"`
	RemainingSalary decimal.Decimal `db:"remaining_salary"`
}

type EmployeeAggregates interface {
	Employee(ctx context.Context, id string) (*Employee, error)
	// LockEmployee reads the row FOR UPDATE, serializing payouts per employee.
	LockEmployee(ctx context.Context, id string) (*Employee, error)
	// AddEarnings moves total_earnings and remaining_salary together.
	AddEarnings(ctx context.Context, id string, amount decimal.Decimal) error
	// RecordPayout moves paid_salary up and remaining_salary down.
	RecordPayout(ctx context.Context, id string, amount decimal.Decimal) error
}

// OrderRef identifies the order a receipt was applied to.
type OrderRef struct {
	ID       string `db:"id"`
	ClientID string `db:"client_id"`
	ShopName string `db:"shop_name"`
}

type OrderReceipts interface {
	// ApplyReceipt adds amount to received_payment (floored at zero) and
	// recomputes remaining_payment from total_amount.
	ApplyReceipt(ctx context.Context, orderID string, amount decimal.Decimal) (*OrderRef, error)
}
