// AngelaMos | 2026
// entity.go

package editing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/carterperez-dev/studio-ledger/internal/ledger"
)

const (
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

var hundred = decimal.NewFromInt(100)

// Project is an editing job with a single editor. CommissionAmount is
// fixed when the project is created.
type Project struct {
	ID                   string          `db:"id"`
	ClientID             string          `db:"client_id"`
	EditorID             string          `db:"editor_id"`
	ProjectName          string          `db:"project_name"`
	Description          string          `db:"description"`
	EditingValue         decimal.Decimal `db:"editing_value"`
	PendriveIncluded     bool            `db:"pendrive_included"`
	PendriveValue        decimal.Decimal `db:"pendrive_value"`
	TotalAmount          decimal.Decimal `db:"total_amount"`
	ReceivedPayment      decimal.Decimal `db:"received_payment"`
	RemainingPayment     decimal.Decimal `db:"remaining_payment"`
	CommissionPercentage decimal.Decimal `db:"commission_percentage"`
	CommissionAmount     decimal.Decimal `db:"commission_amount"`
	StartDate            time.Time       `db:"start_date"`
	EndDate              time.Time       `db:"end_date"`
	CompletionDate       *time.Time      `db:"completion_date"`
	Status               string          `db:"status"`
	CreatedBy            string          `db:"created_by"`
	ShopName             string          `db:"shop_name"`
	CreatedAt            time.Time       `db:"created_at"`
	UpdatedAt            time.Time       `db:"updated_at"`
}

// Commission rounds editingValue * percentage / 100 to whole currency
// units, half away from zero.
func Commission(editingValue, percentage decimal.Decimal) decimal.Decimal {
	return editingValue.Mul(percentage).Div(hundred).Round(0)
}

func (p *Project) ClientDelta() ledger.ClientDelta {
	return ledger.ClientDelta{
		Due:      p.TotalAmount,
		Received: p.ReceivedPayment,
		Projects: 1,
		ShopName: p.ShopName,
	}
}

func (p *Project) Participants() []string {
	return []string{p.EditorID}
}
