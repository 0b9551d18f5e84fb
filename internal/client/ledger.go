// AngelaMos | 2026
// ledger.go

package client

import (
	"context"
	"fmt"

	"github.com/carterperez-dev/studio-ledger/internal/core"
	"github.com/carterperez-dev/studio-ledger/internal/ledger"
)

type clientLedger struct {
	db core.DBTX
}

// NewLedger keeps the payment totals on the clients table.
func NewLedger(db core.DBTX) ledger.ClientAggregates {
	return &clientLedger{db: db}
}

// ApplyClientDelta updates every total in one statement. The SET
// expressions see the old row, so pending is derived from the new due
// and the floored new received amount. A client outside delta.ShopName
// matches no row.
func (l *clientLedger) ApplyClientDelta(
	ctx context.Context,
	clientID string,
	delta ledger.ClientDelta,
) error {
	if !core.ValidID(clientID) {
		return fmt.Errorf("apply client delta: %w", core.ErrNotFound)
	}

	query := `
		UPDATE clients
		SET total_payments_due = total_payments_due + $2,
		    received_payments = GREATEST(received_payments + $3, 0),
		    pending_payments = (total_payments_due + $2) - GREATEST(received_payments + $3, 0),
		    lifetime_orders = GREATEST(lifetime_orders + $4, 0),
		    lifetime_editing_projects = GREATEST(lifetime_editing_projects + $5, 0),
		    updated_at = NOW()
		WHERE id = $1 AND ($6 = '' OR shop_name = $6)`

	result, err := l.db.ExecContext(ctx, query,
		clientID,
		delta.Due,
		delta.Received,
		delta.Orders,
		delta.Projects,
		delta.ShopName,
	)
	if err != nil {
		return fmt.Errorf("apply client delta: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("apply client delta: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("apply client delta: %w", core.ErrNotFound)
	}

	return nil
}
