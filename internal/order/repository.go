// AngelaMos | 2026
// repository.go

package order

//go:generate mockgen -source=repository.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/carterperez-dev/studio-ledger/internal/access"
	"github.com/carterperez-dev/studio-ledger/internal/core"
)

type Repository interface {
	Create(ctx context.Context, o *Order) error
	AddItems(ctx context.Context, orderID string, items []Item) error
	AddWorkers(ctx context.Context, orderID string, crew []Assignment) error
	AddTransporters(ctx context.Context, orderID string, crew []Assignment) error
	GetByID(ctx context.Context, id string) (*Order, error)
	GetByIDForUpdate(ctx context.Context, id string) (*Order, error)
	List(ctx context.Context, filter access.ListFilter) ([]Order, error)
	Items(ctx context.Context, orderIDs []string) ([]Item, error)
	Workers(ctx context.Context, orderIDs []string) ([]Assignment, error)
	Transporters(ctx context.Context, orderIDs []string) ([]Assignment, error)
	Clients(ctx context.Context, clientIDs []string) ([]ClientSummary, error)
	UpdateStatus(ctx context.Context, id, status string, at time.Time) (*Order, error)
	SetReceived(ctx context.Context, id string, amount decimal.Decimal) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const orderColumns = `
	o.id, o.client_id, o.order_name, o.venue_place, o.description,
	o.total_amount, o.received_payment, o.remaining_payment, o.order_date,
	o.completion_date, o.status, o.created_by, o.shop_name, o.created_at,
	o.updated_at`

func (r *repository) Create(ctx context.Context, o *Order) error {
	query := `
		INSERT INTO orders (
			id, client_id, order_name, venue_place, description, total_amount,
			received_payment, remaining_payment, order_date, status,
			created_by, shop_name
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, o, query,
		o.ID,
		o.ClientID,
		o.OrderName,
		o.VenuePlace,
		o.Description,
		o.TotalAmount,
		o.ReceivedPayment,
		o.RemainingPayment,
		o.OrderDate,
		o.Status,
		o.CreatedBy,
		o.ShopName,
	)
	if err != nil {
		return fmt.Errorf("create order: %w", err)
	}

	return nil
}

func (r *repository) AddItems(ctx context.Context, orderID string, items []Item) error {
	query := `
		INSERT INTO order_products (id, order_id, name, quantity, price, size_info)
		VALUES ($1, $2, $3, $4, $5, $6)`

	for i := range items {
		items[i].ID = uuid.New().String()
		items[i].OrderID = orderID
		it := items[i]
		if _, err := r.db.ExecContext(ctx, query,
			it.ID, orderID, it.Name, it.Quantity, it.Price, it.SizeInfo,
		); err != nil {
			return fmt.Errorf("add order product: %w", err)
		}
	}

	return nil
}

func (r *repository) AddWorkers(ctx context.Context, orderID string, crew []Assignment) error {
	return r.addCrew(ctx, "order_workers", "worker_id", orderID, crew)
}

func (r *repository) AddTransporters(ctx context.Context, orderID string, crew []Assignment) error {
	return r.addCrew(ctx, "order_transporters", "transporter_id", orderID, crew)
}

func (r *repository) addCrew(
	ctx context.Context,
	table, column, orderID string,
	crew []Assignment,
) error {
	query := fmt.Sprintf(
		`INSERT INTO %s (id, order_id, %s, payment) VALUES ($1, $2, $3, $4)`,
		table, column,
	)

	for i := range crew {
		crew[i].ID = uuid.New().String()
		crew[i].OrderID = orderID
		if _, err := r.db.ExecContext(ctx, query,
			crew[i].ID, orderID, crew[i].UserID, crew[i].Payment,
		); err != nil {
			return fmt.Errorf("add %s: %w", table, err)
		}
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Order, error) {
	return r.get(ctx, `SELECT `+orderColumns+` FROM orders o WHERE o.id = $1`, id)
}

func (r *repository) GetByIDForUpdate(ctx context.Context, id string) (*Order, error) {
	return r.get(ctx, `SELECT `+orderColumns+` FROM orders o WHERE o.id = $1 FOR UPDATE`, id)
}

func (r *repository) get(ctx context.Context, query, id string) (*Order, error) {
	if !core.ValidID(id) {
		return nil, fmt.Errorf("get order: %w", core.ErrNotFound)
	}

	var o Order
	err := r.db.GetContext(ctx, &o, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get order: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &o, nil
}

// List returns the shop's orders for owners and, for everyone else,
// only the orders they work or drive on.
func (r *repository) List(ctx context.Context, filter access.ListFilter) ([]Order, error) {
	var (
		query string
		args  []any
	)

	switch filter.Scope {
	case access.ScopeShop:
		query = `
			SELECT ` + orderColumns + `
			FROM orders o
			WHERE o.shop_name = $1
			ORDER BY o.created_at DESC`
		args = []any{filter.ShopName}
	case access.ScopeParticipant:
		if !core.ValidID(filter.UserID) {
			return []Order{}, nil
		}
		query = `
			SELECT ` + orderColumns + `
			FROM orders o
			WHERE o.shop_name = $1
			  AND (
				EXISTS (SELECT 1 FROM order_workers ow WHERE ow.order_id = o.id AND ow.worker_id = $2)
				OR EXISTS (SELECT 1 FROM order_transporters ot WHERE ot.order_id = o.id AND ot.transporter_id = $2)
			  )
			ORDER BY o.created_at DESC`
		args = []any{filter.ShopName, filter.UserID}
	default:
		return []Order{}, nil
	}

	orders := []Order{}
	if err := r.db.SelectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

func (r *repository) Items(ctx context.Context, orderIDs []string) ([]Item, error) {
	items := []Item{}
	if len(orderIDs) == 0 {
		return items, nil
	}

	query, args, err := sqlx.In(
		`SELECT id, order_id, name, quantity, price, size_info
		 FROM order_products WHERE order_id IN (?) ORDER BY name`,
		orderIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("build items query: %w", err)
	}

	if err := r.db.SelectContext(ctx, &items, sqlx.Rebind(sqlx.DOLLAR, query), args...); err != nil {
		return nil, fmt.Errorf("list order products: %w", err)
	}
	return items, nil
}

func (r *repository) Workers(ctx context.Context, orderIDs []string) ([]Assignment, error) {
	return r.crew(ctx, "order_workers", "worker_id", orderIDs)
}

func (r *repository) Transporters(ctx context.Context, orderIDs []string) ([]Assignment, error) {
	return r.crew(ctx, "order_transporters", "transporter_id", orderIDs)
}

func (r *repository) crew(
	ctx context.Context,
	table, column string,
	orderIDs []string,
) ([]Assignment, error) {
	crew := []Assignment{}
	if len(orderIDs) == 0 {
		return crew, nil
	}

	base := fmt.Sprintf(`
		SELECT a.id, a.order_id, a.%[2]s AS user_id, a.payment,
		       COALESCE(u.first_name, '') AS first_name,
		       COALESCE(u.last_name, '') AS last_name,
		       COALESCE(u.shop_name, '') AS shop_name
		FROM %[1]s a
		LEFT JOIN users u ON u.id = a.%[2]s
		WHERE a.order_id IN (?)`, table, column)

	query, args, err := sqlx.In(base, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", table, err)
	}

	if err := r.db.SelectContext(ctx, &crew, sqlx.Rebind(sqlx.DOLLAR, query), args...); err != nil {
		return nil, fmt.Errorf("list %s: %w", table, err)
	}
	return crew, nil
}

func (r *repository) Clients(ctx context.Context, clientIDs []string) ([]ClientSummary, error) {
	clients := []ClientSummary{}
	if len(clientIDs) == 0 {
		return clients, nil
	}

	query, args, err := sqlx.In(
		`SELECT id, name, email, phone FROM clients WHERE id IN (?)`,
		clientIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("build clients query: %w", err)
	}

	if err := r.db.SelectContext(ctx, &clients, sqlx.Rebind(sqlx.DOLLAR, query), args...); err != nil {
		return nil, fmt.Errorf("list order clients: %w", err)
	}
	return clients, nil
}

// UpdateStatus stamps completion_date when the new status is completed
// and leaves it alone otherwise.
func (r *repository) UpdateStatus(
	ctx context.Context,
	id, status string,
	at time.Time,
) (*Order, error) {
	if !core.ValidID(id) {
		return nil, fmt.Errorf("update order status: %w", core.ErrNotFound)
	}

	query := `
		UPDATE orders o
		SET status = $2,
		    completion_date = CASE WHEN $2 = '` + StatusCompleted + `' THEN $3 ELSE o.completion_date END,
		    updated_at = NOW()
		WHERE o.id = $1
		RETURNING ` + orderColumns

	var o Order
	err := r.db.GetContext(ctx, &o, query, id, status, at)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("update order status: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}
	return &o, nil
}

func (r *repository) SetReceived(ctx context.Context, id string, amount decimal.Decimal) error {
	query := `
		UPDATE orders
		SET received_payment = $2,
		    remaining_payment = total_amount - $2,
		    updated_at = NOW()
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id, amount)
	if err != nil {
		return fmt.Errorf("set order payment: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("set order payment: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("set order payment: %w", core.ErrNotFound)
	}
	return nil
}

// Delete removes the child rows and recorded payments before the order
// itself. Payments are already folded into the order's received amount.
func (r *repository) Delete(ctx context.Context, id string) error {
	for _, table := range []string{"order_products", "order_workers", "order_transporters", "payments"} {
		query := fmt.Sprintf(`DELETE FROM %s WHERE order_id = $1`, table)
		if _, err := r.db.ExecContext(ctx, query, id); err != nil {
			return fmt.Errorf("delete %s: %w", table, err)
		}
	}

	result, err := r.db.ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("delete order: %w", core.ErrNotFound)
	}
	return nil
}
