// AngelaMos | 2026
// repository.go

package client

//go:generate mockgen -source=repository.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/carterperez-dev/studio-ledger/internal/core"
)

type Repository interface {
	Create(ctx context.Context, c *Client) error
	GetByID(ctx context.Context, id string) (*Client, error)
	ListByShop(ctx context.Context, shopName string) ([]Client, error)
	UpdateContact(ctx context.Context, c *Client) error
	Delete(ctx context.Context, id string) error
	WorkHistory(ctx context.Context, clientID string) ([]WorkItem, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const clientColumns = `
	id, shop_name, name, email, phone, address, client_type,
	business_category, priority_level, notes, total_payments_due,
	received_payments, pending_payments, lifetime_orders,
	lifetime_editing_projects, created_at, updated_at`

func (r *repository) Create(ctx context.Context, c *Client) error {
	query := `
		INSERT INTO clients (
			id, shop_name, name, email, phone, address, client_type,
			business_category, priority_level, notes
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + clientColumns

	err := r.db.GetContext(ctx, c, query,
		c.ID,
		c.ShopName,
		c.Name,
		c.Email,
		c.Phone,
		c.Address,
		c.ClientType,
		c.BusinessCategory,
		c.PriorityLevel,
		c.Notes,
	)
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Client, error) {
	if !core.ValidID(id) {
		return nil, fmt.Errorf("get client: %w", core.ErrNotFound)
	}

	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`

	var c Client
	err := r.db.GetContext(ctx, &c, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get client: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get client: %w", err)
	}

	return &c, nil
}

func (r *repository) ListByShop(ctx context.Context, shopName string) ([]Client, error) {
	query := `
		SELECT ` + clientColumns + `
		FROM clients
		WHERE shop_name = $1
		ORDER BY created_at DESC`

	clients := []Client{}
	if err := r.db.SelectContext(ctx, &clients, query, shopName); err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}

	return clients, nil
}

// UpdateContact rewrites the contact fields only. The payment totals
// belong to the ledger.
func (r *repository) UpdateContact(ctx context.Context, c *Client) error {
	query := `
		UPDATE clients
		SET name = $2, email = $3, phone = $4, address = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + clientColumns

	err := r.db.GetContext(ctx, c, query, c.ID, c.Name, c.Email, c.Phone, c.Address)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update client: %w", core.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("delete client: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) WorkHistory(ctx context.Context, clientID string) ([]WorkItem, error) {
	query := `
		SELECT id, 'order' AS type, order_name AS name, total_amount,
		       received_payment, remaining_payment, status, order_date AS date
		FROM orders
		WHERE client_id = $1
		UNION ALL
		SELECT id, 'project' AS type, project_name AS name, total_amount,
		       received_payment, remaining_payment, status, start_date AS date
		FROM editing_projects
		WHERE client_id = $1
		ORDER BY date DESC`

	items := []WorkItem{}
	if err := r.db.SelectContext(ctx, &items, query, clientID); err != nil {
		return nil, fmt.Errorf("client work history: %w", err)
	}

	return items, nil
}
