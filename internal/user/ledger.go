// AngelaMos | 2026
// ledger.go

package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/carterperez-dev/studio-ledger/internal/core"
	"github.com/carterperez-dev/studio-ledger/internal/ledger"
)

type employeeLedger struct {
	db core.DBTX
}

// NewLedger keeps the salary aggregates on the users table.
func NewLedger(db core.DBTX) ledger.EmployeeAggregates {
	return &employeeLedger{db: db}
}

const employeeColumns = `
	id, first_name, last_name, role, shop_name,
	total_earnings, paid_salary, remaining_salary`

func (l *employeeLedger) Employee(
	ctx context.Context,
	id string,
) (*ledger.Employee, error) {
	return l.get(ctx, `SELECT `+employeeColumns+` FROM users WHERE id = $1`, id)
}

func (l *employeeLedger) LockEmployee(
	ctx context.Context,
	id string,
) (*ledger.Employee, error) {
	return l.get(ctx, `SELECT `+employeeColumns+` FROM users WHERE id = $1 FOR UPDATE`, id)
}

func (l *employeeLedger) get(
	ctx context.Context,
	query, id string,
) (*ledger.Employee, error) {
	if !core.ValidID(id) {
		return nil, fmt.Errorf("get employee: %w", core.ErrNotFound)
	}

	var e ledger.Employee
	err := l.db.GetContext(ctx, &e, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get employee: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return &e, nil
}

func (l *employeeLedger) AddEarnings(
	ctx context.Context,
	id string,
	amount decimal.Decimal,
) error {
	query := `
		UPDATE users
		SET total_earnings = total_earnings + $2,
		    remaining_salary = remaining_salary + $2,
		    updated_at = NOW()
		WHERE id = $1`

	return l.exec(ctx, "add earnings", query, id, amount)
}

func (l *employeeLedger) RecordPayout(
	ctx context.Context,
	id string,
	amount decimal.Decimal,
) error {
	query := `
		UPDATE users
		SET paid_salary = paid_salary + $2,
		    remaining_salary = remaining_salary - $2,
		    updated_at = NOW()
		WHERE id = $1`

	return l.exec(ctx, "record payout", query, id, amount)
}

func (l *employeeLedger) exec(
	ctx context.Context,
	op, query string,
	args ...any,
) error {
	if id, ok := args[0].(string); ok && !core.ValidID(id) {
		return fmt.Errorf("%s: %w", op, core.ErrNotFound)
	}

	result, err := l.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if rows == 0 {
		return fmt.Errorf("%s: %w", op, core.ErrNotFound)
	}

	return nil
}
