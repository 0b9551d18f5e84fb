// AngelaMos | 2026
// repository.go

package editing

//go:generate mockgen -source=repository.go -destination=mocks/mocks.go -package=mocks

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
	Create(ctx context.Context, p *Project) error
	GetByID(ctx context.Context, id string) (*Project, error)
	GetByIDForUpdate(ctx context.Context, id string) (*Project, error)
	List(ctx context.Context, filter access.ListFilter) ([]Project, error)
	UpdateStatus(ctx context.Context, id, status string, at time.Time) (*Project, error)
	SetReceived(ctx context.Context, id string, amount decimal.Decimal) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const projectColumns = `
	id, client_id, editor_id, project_name, description, editing_value,
	pendrive_included, pendrive_value, total_amount, received_payment,
	remaining_payment, commission_percentage, commission_amount, start_date,
	end_date, completion_date, status, created_by, shop_name, created_at,
	updated_at`

func (r *repository) Create(ctx context.Context, p *Project) error {
	query := `
		INSERT INTO editing_projects (
			id, client_id, editor_id, project_name, description, editing_value,
			pendrive_included, pendrive_value, total_amount, received_payment,
			remaining_payment, commission_percentage, commission_amount,
			start_date, end_date, status, created_by, shop_name
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, p, query,
		p.ID,
		p.ClientID,
		p.EditorID,
		p.ProjectName,
		p.Description,
		p.EditingValue,
		p.PendriveIncluded,
		p.PendriveValue,
		p.TotalAmount,
		p.ReceivedPayment,
		p.RemainingPayment,
		p.CommissionPercentage,
		p.CommissionAmount,
		p.StartDate,
		p.EndDate,
		p.Status,
		p.CreatedBy,
		p.ShopName,
	)
	if err != nil {
		return fmt.Errorf("create editing project: %w", err)
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Project, error) {
	return r.get(ctx, `SELECT `+projectColumns+` FROM editing_projects WHERE id = $1`, id)
}

func (r *repository) GetByIDForUpdate(ctx context.Context, id string) (*Project, error) {
	return r.get(ctx, `SELECT `+projectColumns+` FROM editing_projects WHERE id = $1 FOR UPDATE`, id)
}

func (r *repository) get(ctx context.Context, query, id string) (*Project, error) {
	if !core.ValidID(id) {
		return nil, fmt.Errorf("get editing project: %w", core.ErrNotFound)
	}

	var p Project
	err := r.db.GetContext(ctx, &p, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get editing project: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get editing project: %w", err)
	}
	return &p, nil
}

// List returns the shop's projects for owners and the caller's own
// projects for editors.
func (r *repository) List(ctx context.Context, filter access.ListFilter) ([]Project, error) {
	var (
		query string
		args  []any
	)

	switch filter.Scope {
	case access.ScopeShop:
		query = `SELECT ` + projectColumns + `
			FROM editing_projects
			WHERE shop_name = $1
			ORDER BY created_at DESC`
		args = []any{filter.ShopName}
	case access.ScopeParticipant:
		if !core.ValidID(filter.UserID) {
			return []Project{}, nil
		}
		query = `SELECT ` + projectColumns + `
			FROM editing_projects
			WHERE shop_name = $1 AND editor_id = $2
			ORDER BY created_at DESC`
		args = []any{filter.ShopName, filter.UserID}
	default:
		return []Project{}, nil
	}

	projects := []Project{}
	if err := r.db.SelectContext(ctx, &projects, query, args...); err != nil {
		return nil, fmt.Errorf("list editing projects: %w", err)
	}
	return projects, nil
}

func (r *repository) UpdateStatus(
	ctx context.Context,
	id, status string,
	at time.Time,
) (*Project, error) {
	if !core.ValidID(id) {
		return nil, fmt.Errorf("update project status: %w", core.ErrNotFound)
	}

	query := `
		UPDATE editing_projects
		SET status = $2,
		    completion_date = CASE WHEN $2 = '` + StatusCompleted + `' THEN $3 ELSE completion_date END,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + projectColumns

	var p Project
	err := r.db.GetContext(ctx, &p, query, id, status, at)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("update project status: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("update project status: %w", err)
	}
	return &p, nil
}

func (r *repository) SetReceived(ctx context.Context, id string, amount decimal.Decimal) error {
	query := `
		UPDATE editing_projects
		SET received_payment = $2,
		    remaining_payment = total_amount - $2,
		    updated_at = NOW()
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id, amount)
	if err != nil {
		return fmt.Errorf("set project payment: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("set project payment: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("set project payment: %w", core.ErrNotFound)
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM editing_projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete editing project: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete editing project: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("delete editing project: %w", core.ErrNotFound)
	}
	return nil
}
