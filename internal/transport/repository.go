// AngelaMos | 2026
// repository.go

package transport

//go:generate mockgen -source=repository.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/carterperez-dev/studio-ledger/internal/access"
	"github.com/carterperez-dev/studio-ledger/internal/core"
)

type Repository interface {
	Create(ctx context.Context, t *Transport) error
	GetByID(ctx context.Context, id string) (*Transport, error)
	List(ctx context.Context, filter access.ListFilter) ([]Transport, error)
	UpdateStatus(ctx context.Context, id, status string, at time.Time) (*Transport, error)
	Assign(ctx context.Context, id, transporterID string) error
	SoftDelete(ctx context.Context, id string) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const transportColumns = `
	id, related_order_id, related_project_id, client_id, transporter_id,
	pickup_location, delivery_location, distance, transport_fee,
	equipment_list, transport_date, instructions, status, completed_date,
	shop_name, created_by, created_at, updated_at`

func (r *repository) Create(ctx context.Context, t *Transport) error {
	query := `
		INSERT INTO transportation (
			id, related_order_id, related_project_id, client_id, transporter_id,
			pickup_location, delivery_location, distance, transport_fee,
			equipment_list, transport_date, instructions, status, shop_name,
			created_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, t, query,
		t.ID,
		t.RelatedOrderID,
		t.RelatedProjectID,
		t.ClientID,
		t.TransporterID,
		t.PickupLocation,
		t.DeliveryLocation,
		t.Distance,
		t.TransportFee,
		t.EquipmentList,
		t.TransportDate,
		t.Instructions,
		t.Status,
		t.ShopName,
		t.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("create transport: %w", err)
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Transport, error) {
	if !core.ValidID(id) {
		return nil, fmt.Errorf("get transport: %w", core.ErrNotFound)
	}

	query := `SELECT ` + transportColumns + `
		FROM transportation
		WHERE id = $1 AND deleted_at IS NULL`

	var t Transport
	err := r.db.GetContext(ctx, &t, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get transport: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get transport: %w", err)
	}
	return &t, nil
}

func (r *repository) List(ctx context.Context, filter access.ListFilter) ([]Transport, error) {
	var (
		query string
		args  []any
	)

	switch filter.Scope {
	case access.ScopeShop:
		query = `SELECT ` + transportColumns + `
			FROM transportation
			WHERE shop_name = $1 AND deleted_at IS NULL
			ORDER BY created_at DESC`
		args = []any{filter.ShopName}
	case access.ScopeParticipant:
		if !core.ValidID(filter.UserID) {
			return []Transport{}, nil
		}
		query = `SELECT ` + transportColumns + `
			FROM transportation
			WHERE shop_name = $1 AND transporter_id = $2 AND deleted_at IS NULL
			ORDER BY created_at DESC`
		args = []any{filter.ShopName, filter.UserID}
	default:
		return []Transport{}, nil
	}

	rows := []Transport{}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list transports: %w", err)
	}
	return rows, nil
}

// UpdateStatus stamps completed_date when the status becomes delivered.
func (r *repository) UpdateStatus(
	ctx context.Context,
	id, status string,
	at time.Time,
) (*Transport, error) {
	query := `
		UPDATE transportation
		SET status = $2,
		    completed_date = CASE WHEN $2 = '` + StatusDelivered + `' THEN $3 ELSE completed_date END,
		    updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING ` + transportColumns

	var t Transport
	err := r.db.GetContext(ctx, &t, query, id, status, at)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("update transport status: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("update transport status: %w", err)
	}
	return &t, nil
}

func (r *repository) Assign(ctx context.Context, id, transporterID string) error {
	return r.exec(ctx, "assign transporter", `
		UPDATE transportation
		SET transporter_id = $2, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL`, id, transporterID)
}

func (r *repository) SoftDelete(ctx context.Context, id string) error {
	return r.exec(ctx, "delete transport", `
		UPDATE transportation
		SET deleted_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL`, id)
}

func (r *repository) exec(ctx context.Context, op, query string, args ...any) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, core.ErrNotFound)
	}
	return nil
}
