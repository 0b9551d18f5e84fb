// AngelaMos | 2026
// repository.go

//go:generate mockgen -source=repository.go -destination=mocks/mocks.go -package=mocks

package salary

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carterperez-dev/studio-ledger/internal/access"
	"github.com/carterperez-dev/studio-ledger/internal/core"
)

type Repository interface {
	Create(ctx context.Context, s *Salary) error
	GetByID(ctx context.Context, id string) (*Salary, error)
	GetByIDForUpdate(ctx context.Context, id string) (*Salary, error)
	ListUnpaidForUpdate(ctx context.Context, employeeID string) ([]Salary, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Salary, error)
	List(ctx context.Context, filter access.ListFilter) ([]SalaryWithEmployee, error)
	MarkPaid(ctx context.Context, ids []string, at time.Time) error
	Reduce(ctx context.Context, id string, amount decimal.Decimal) error
	DeleteByOrder(ctx context.Context, orderID string) error
	DeleteByProject(ctx context.Context, projectID string) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const salaryColumns = `
	s.id, s.seq, s.employee_id, s.amount, s.salary_type, s.related_order_id,
	s.related_project_id, s.description, s.work_date, s.is_paid, s.paid_date,
	s.created_at, s.updated_at`

func (r *repository) Create(ctx context.Context, s *Salary) error {
	query := `
		INSERT INTO salaries (
			id, employee_id, amount, salary_type, related_order_id,
			related_project_id, description, work_date, is_paid, paid_date
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING seq, created_at, updated_at`

	workDate := s.WorkDate
	if workDate.IsZero() {
		workDate = time.Now()
		s.WorkDate = workDate
	}

	err := r.db.GetContext(ctx, s, query,
		s.ID,
		s.EmployeeID,
		s.Amount,
		s.SalaryType,
		s.RelatedOrderID,
		s.RelatedProjectID,
		s.Description,
		workDate,
		s.IsPaid,
		s.PaidDate,
	)
	if err != nil {
		return fmt.Errorf("create salary: %w", err)
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Salary, error) {
	return r.get(ctx, `SELECT `+salaryColumns+` FROM salaries s WHERE s.id = $1`, id)
}

func (r *repository) GetByIDForUpdate(ctx context.Context, id string) (*Salary, error) {
	return r.get(ctx, `SELECT `+salaryColumns+` FROM salaries s WHERE s.id = $1 FOR UPDATE`, id)
}

func (r *repository) get(ctx context.Context, query, id string) (*Salary, error) {
	if !core.ValidID(id) {
		return nil, fmt.Errorf("get salary: %w", core.ErrNotFound)
	}

	var s Salary
	err := r.db.GetContext(ctx, &s, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get salary: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get salary: %w", err)
	}
	return &s, nil
}

func (r *repository) ListUnpaidForUpdate(
	ctx context.Context,
	employeeID string,
) ([]Salary, error) {
	query := `
		SELECT ` + salaryColumns + `
		FROM salaries s
		WHERE s.employee_id = $1 AND NOT s.is_paid
		ORDER BY s.created_at, s.seq
		FOR UPDATE`

	rows := []Salary{}
	if err := r.db.SelectContext(ctx, &rows, query, employeeID); err != nil {
		return nil, fmt.Errorf("list unpaid salaries: %w", err)
	}
	return rows, nil
}

func (r *repository) ListByEmployee(
	ctx context.Context,
	employeeID string,
) ([]Salary, error) {
	if !core.ValidID(employeeID) {
		return []Salary{}, nil
	}

	query := `
		SELECT ` + salaryColumns + `
		FROM salaries s
		WHERE s.employee_id = $1
		ORDER BY s.created_at DESC, s.seq DESC`

	rows := []Salary{}
	if err := r.db.SelectContext(ctx, &rows, query, employeeID); err != nil {
		return nil, fmt.Errorf("list employee salaries: %w", err)
	}
	return rows, nil
}

func (r *repository) List(
	ctx context.Context,
	filter access.ListFilter,
) ([]SalaryWithEmployee, error) {
	base := `
		SELECT ` + salaryColumns + `,
		       COALESCE(u.first_name, '') AS first_name,
		       COALESCE(u.last_name, '') AS last_name,
		       COALESCE(u.role, '') AS role,
		       COALESCE(u.shop_name, '') AS shop_name
		FROM salaries s
		LEFT JOIN users u ON u.id = s.employee_id`

	var (
		query string
		args  []any
	)

	switch filter.Scope {
	case access.ScopeShop:
		query = base + ` WHERE u.shop_name = $1`
		args = []any{filter.ShopName}
	case access.ScopeParticipant:
		query = base + ` WHERE s.employee_id = $1`
		args = []any{filter.UserID}
	default:
		return []SalaryWithEmployee{}, nil
	}

	query += ` ORDER BY s.created_at DESC, s.seq DESC`

	rows := []SalaryWithEmployee{}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list salaries: %w", err)
	}
	return rows, nil
}

func (r *repository) MarkPaid(ctx context.Context, ids []string, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	for _, id := range ids {
		if !core.ValidID(id) {
			return fmt.Errorf("mark salaries paid: %s: %w", id, core.ErrConflict)
		}
	}

	query := `
		UPDATE salaries
		SET is_paid = TRUE, paid_date = $2, updated_at = NOW()
		WHERE id = ANY($1::uuid[]) AND NOT is_paid`

	result, err := r.db.ExecContext(ctx, query, ids, at)
	if err != nil {
		return fmt.Errorf("mark salaries paid: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("mark salaries paid: %w", err)
	}
	if int(n) != len(ids) {
		return fmt.Errorf("mark salaries paid: %d of %d rows: %w", n, len(ids), core.ErrConflict)
	}

	return nil
}

// Reduce shrinks an unpaid row. It refuses to take a row to zero or below.
func (r *repository) Reduce(ctx context.Context, id string, amount decimal.Decimal) error {
	if !core.ValidID(id) {
		return fmt.Errorf("reduce salary: %w", core.ErrConflict)
	}

	query := `
		UPDATE salaries
		SET amount = amount - $2, updated_at = NOW()
		WHERE id = $1 AND NOT is_paid AND amount > $2`

	result, err := r.db.ExecContext(ctx, query, id, amount)
	if err != nil {
		return fmt.Errorf("reduce salary: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("reduce salary: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("reduce salary: %w", core.ErrConflict)
	}

	return nil
}

func (r *repository) DeleteByOrder(ctx context.Context, orderID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM salaries WHERE related_order_id = $1`, orderID); err != nil {
		return fmt.Errorf("delete order salaries: %w", err)
	}
	return nil
}

func (r *repository) DeleteByProject(ctx context.Context, projectID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM salaries WHERE related_project_id = $1`, projectID); err != nil {
		return fmt.Errorf("delete project salaries: %w", err)
	}
	return nil
}
