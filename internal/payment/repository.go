// AngelaMos | 2026
// repository.go

package payment

//go:generate mockgen -source=repository.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/carterperez-dev/studio-ledger/internal/core"
)

type Repository interface {
	Create(ctx context.Context, p *Payment) error
	GetByIDForUpdate(ctx context.Context, id string) (*Payment, error)
	ListByOrder(ctx context.Context, orderID, shopName string) ([]Receipt, error)
	ListByClient(ctx context.Context, clientID, shopName string) ([]Receipt, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const receiptColumns = `
	p.id, p.order_id, p.client_id, p.amount, p.payment_date, p.payment_method,
	p.received_by, p.notes, p.shop_name, p.created_at,
	COALESCE(u.first_name, '') AS first_name,
	COALESCE(u.last_name, '') AS last_name,
	COALESCE(u.role, '') AS role,
	COALESCE(o.order_name, '') AS order_name,
	o.order_date`

func (r *repository) Create(ctx context.Context, p *Payment) error {
	query := `
		INSERT INTO payments (
			id, order_id, client_id, amount, payment_date, payment_method,
			received_by, notes, shop_name
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at`

	err := r.db.GetContext(ctx, &p.CreatedAt, query,
		p.ID,
		p.OrderID,
		p.ClientID,
		p.Amount,
		p.PaymentDate,
		p.PaymentMethod,
		p.ReceivedBy,
		p.Notes,
		p.ShopName,
	)
	if err != nil {
		return fmt.Errorf("create payment: %w", err)
	}

	return nil
}

func (r *repository) GetByIDForUpdate(ctx context.Context, id string) (*Payment, error) {
	if !core.ValidID(id) {
		return nil, fmt.Errorf("get payment: %w", core.ErrNotFound)
	}

	query := `
		SELECT id, order_id, client_id, amount, payment_date, payment_method,
		       received_by, notes, shop_name, created_at
		FROM payments
		WHERE id = $1
		FOR UPDATE`

	var p Payment
	err := r.db.GetContext(ctx, &p, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get payment: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return &p, nil
}

func (r *repository) ListByOrder(ctx context.Context, orderID, shopName string) ([]Receipt, error) {
	return r.list(ctx, "p.order_id", orderID, shopName)
}

func (r *repository) ListByClient(ctx context.Context, clientID, shopName string) ([]Receipt, error) {
	return r.list(ctx, "p.client_id", clientID, shopName)
}

func (r *repository) list(ctx context.Context, column, id, shopName string) ([]Receipt, error) {
	receipts := []Receipt{}
	if !core.ValidID(id) {
		return receipts, nil
	}

	query := `
		SELECT ` + receiptColumns + `
		FROM payments p
		LEFT JOIN users u ON u.id = p.received_by
		LEFT JOIN orders o ON o.id = p.order_id
		WHERE ` + column + ` = $1 AND p.shop_name = $2
		ORDER BY p.payment_date DESC`

	if err := r.db.SelectContext(ctx, &receipts, query, id, shopName); err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	return receipts, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM payments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete payment: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete payment: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("delete payment: %w", core.ErrNotFound)
	}
	return nil
}
