// AngelaMos | 2026
// receipts.go

package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/carterperez-dev/studio-ledger/internal/core"
	"github.com/carterperez-dev/studio-ledger/internal/ledger"
)

type receipts struct {
	db core.DBTX
}

// NewReceipts lets payment records move an order's received balance.
func NewReceipts(db core.DBTX) ledger.OrderReceipts {
	return &receipts{db: db}
}

func (r *receipts) ApplyReceipt(
	ctx context.Context,
	orderID string,
	amount decimal.Decimal,
) (*ledger.OrderRef, error) {
	if !core.ValidID(orderID) {
		return nil, fmt.Errorf("apply receipt: %w", core.ErrNotFound)
	}

	query := `
		UPDATE orders
		SET received_payment = GREATEST(received_payment + $2, 0),
		    remaining_payment = total_amount - GREATEST(received_payment + $2, 0),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING id, client_id, shop_name`

	var ref ledger.OrderRef
	err := r.db.GetContext(ctx, &ref, query, orderID, amount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("apply receipt: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("apply receipt: %w", err)
	}

	return &ref, nil
}
