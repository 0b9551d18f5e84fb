// AngelaMos | 2026
// entity.go

package dashboard

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	AlertUrgent = "urgent"
	AlertInfo   = "info"

	statusCompleted = "completed"
)

type Alert struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Icon    string `json:"icon"`
	Count   int    `json:"count"`
}

type DueOrder struct {
	ID              string          `db:"id"`
	OrderName       string          `db:"order_name"`
	ClientName      string          `db:"client_name"`
	VenuePlace      string          `db:"venue_place"`
	TotalAmount     decimal.Decimal `db:"total_amount"`
	ReceivedPayment decimal.Decimal `db:"received_payment"`
}

func (o DueOrder) Remaining() decimal.Decimal {
	return o.TotalAmount.Sub(o.ReceivedPayment)
}

type DueProject struct {
	ID               string          `db:"id"`
	ProjectName      string          `db:"project_name"`
	TotalAmount      decimal.Decimal `db:"total_amount"`
	CommissionAmount decimal.Decimal `db:"commission_amount"`
}

type ShopTotals struct {
	RemainingOrders         int             `db:"remaining_orders"`
	DoneOrders              int             `db:"done_orders"`
	TotalPayment            decimal.Decimal `db:"total_payment"`
	ReceivedPayment         decimal.Decimal `db:"received_payment"`
	ActiveProjects          int             `db:"active_projects"`
	CompletedProjects       int             `db:"completed_projects"`
	RemainingClientPayments decimal.Decimal `db:"remaining_client_payments"`
	WorkerPayments          decimal.Decimal `db:"worker_payments"`
}

type MemberTotals struct {
	ActiveOrders      int             `db:"active_orders"`
	CompletedOrders   int             `db:"completed_orders"`
	ActiveProjects    int             `db:"active_projects"`
	CompletedProjects int             `db:"completed_projects"`
	TotalEarnings     decimal.Decimal `db:"total_earnings"`
	PaidSalary        decimal.Decimal `db:"paid_salary"`
}

// Stats carries every counter the dashboard shows. Fields that do not
// apply to the caller's role stay zero.
type Stats struct {
	RemainingOrders         int             `json:"remainingOrders"`
	DoneOrders              int             `json:"doneOrders"`
	TotalPayment            decimal.Decimal `json:"totalPayment"`
	ReceivedPayment         decimal.Decimal `json:"receivedPayment"`
	ActiveOrders            int             `json:"activeOrders"`
	CompletedOrders         int             `json:"completedOrders"`
	ActiveProjects          int             `json:"activeProjects"`
	CompletedProjects       int             `json:"completedProjects"`
	TotalEarnings           decimal.Decimal `json:"totalEarnings"`
	PaidSalary              decimal.Decimal `json:"paidSalary"`
	RemainingSalary         decimal.Decimal `json:"remainingSalary"`
	RemainingClientPayments decimal.Decimal `json:"remainingClientPayments"`
	WorkerPayments          decimal.Decimal `json:"workerPayments"`
	UserRole                string          `json:"userRole"`
}

func emptyStats(role string) Stats {
	if role == "" {
		role = "unknown"
	}
	return Stats{
		TotalPayment:            decimal.Zero,
		ReceivedPayment:         decimal.Zero,
		TotalEarnings:           decimal.Zero,
		PaidSalary:              decimal.Zero,
		RemainingSalary:         decimal.Zero,
		RemainingClientPayments: decimal.Zero,
		WorkerPayments:          decimal.Zero,
		UserRole:                role,
	}
}

// Day is the half-open window [Start, End) of the calendar day that
// contains now in loc.
type Day struct {
	Start time.Time
	End   time.Time
}

func DayOf(now time.Time, loc *time.Location) Day {
	local := now.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return Day{Start: start, End: start.AddDate(0, 0, 1)}
}
