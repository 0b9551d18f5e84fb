// AngelaMos | 2026
// repository.go

package dashboard

//go:generate mockgen -source=repository.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/carterperez-dev/studio-ledger/internal/access"
	"github.com/carterperez-dev/studio-ledger/internal/core"
)

// Repository answers read-only aggregate queries. Participant filters
// match order crew rows and the project editor.
type Repository interface {
	OrdersDue(ctx context.Context, filter access.ListFilter, day Day) ([]DueOrder, error)
	ProjectsDue(ctx context.Context, filter access.ListFilter, day Day) ([]DueProject, error)
	ShopTotals(ctx context.Context, shopName string) (*ShopTotals, error)
	MemberTotals(ctx context.Context, shopName, userID string) (*MemberTotals, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const participantOrder = `(
	EXISTS (SELECT 1 FROM order_workers ow WHERE ow.order_id = o.id AND ow.worker_id = $5)
	OR EXISTS (SELECT 1 FROM order_transporters ot WHERE ot.order_id = o.id AND ot.transporter_id = $5)
)`

func (r *repository) OrdersDue(
	ctx context.Context,
	filter access.ListFilter,
	day Day,
) ([]DueOrder, error) {
	orders := []DueOrder{}

	query := `
		SELECT o.id, o.order_name, o.venue_place, o.total_amount,
		       o.received_payment, COALESCE(c.name, '') AS client_name
		FROM orders o
		LEFT JOIN clients c ON c.id = o.client_id
		WHERE o.shop_name = $1
		  AND o.order_date >= $2 AND o.order_date < $3
		  AND o.status <> $4`
	args := []any{filter.ShopName, day.Start, day.End, statusCompleted}

	switch filter.Scope {
	case access.ScopeShop:
	case access.ScopeParticipant:
		if !core.ValidID(filter.UserID) {
			return orders, nil
		}
		query += ` AND ` + participantOrder
		args = append(args, filter.UserID)
	default:
		return orders, nil
	}

	query += ` ORDER BY o.order_date`

	if err := r.db.SelectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("orders due: %w", err)
	}
	return orders, nil
}

func (r *repository) ProjectsDue(
	ctx context.Context,
	filter access.ListFilter,
	day Day,
) ([]DueProject, error) {
	projects := []DueProject{}

	query := `
		SELECT id, project_name, total_amount, commission_amount
		FROM editing_projects
		WHERE shop_name = $1
		  AND end_date >= $2 AND end_date < $3
		  AND status <> $4`
	args := []any{filter.ShopName, day.Start, day.End, statusCompleted}

	switch filter.Scope {
	case access.ScopeShop:
	case access.ScopeParticipant:
		if !core.ValidID(filter.UserID) {
			return projects, nil
		}
		query += ` AND editor_id = $5`
		args = append(args, filter.UserID)
	default:
		return projects, nil
	}

	query += ` ORDER BY end_date`

	if err := r.db.SelectContext(ctx, &projects, query, args...); err != nil {
		return nil, fmt.Errorf("projects due: %w", err)
	}
	return projects, nil
}

func (r *repository) ShopTotals(ctx context.Context, shopName string) (*ShopTotals, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM orders WHERE shop_name = $1 AND status <> $2) AS remaining_orders,
			(SELECT COUNT(*) FROM orders WHERE shop_name = $1 AND status = $2) AS done_orders,
			(SELECT COALESCE(SUM(total_amount), 0) FROM orders WHERE shop_name = $1) AS total_payment,
			(SELECT COALESCE(SUM(received_payment), 0) FROM orders WHERE shop_name = $1) AS received_payment,
			(SELECT COUNT(*) FROM editing_projects WHERE shop_name = $1 AND status <> $2) AS active_projects,
			(SELECT COUNT(*) FROM editing_projects WHERE shop_name = $1 AND status = $2) AS completed_projects,
			(SELECT COALESCE(SUM(pending_payments), 0) FROM clients WHERE shop_name = $1) AS remaining_client_payments,
			(SELECT COALESCE(SUM(s.amount), 0)
			   FROM salaries s
			   JOIN users u ON u.id = s.employee_id
			  WHERE u.shop_name = $1 AND NOT s.is_paid) AS worker_payments`

	var totals ShopTotals
	if err := r.db.GetContext(ctx, &totals, query, shopName, statusCompleted); err != nil {
		return nil, fmt.Errorf("shop totals: %w", err)
	}
	return &totals, nil
}

func (r *repository) MemberTotals(ctx context.Context, shopName, userID string) (*MemberTotals, error) {
	if !core.ValidID(userID) {
		return &MemberTotals{}, nil
	}

	crew := `(
		EXISTS (SELECT 1 FROM order_workers ow WHERE ow.order_id = o.id AND ow.worker_id = $2)
		OR EXISTS (SELECT 1 FROM order_transporters ot WHERE ot.order_id = o.id AND ot.transporter_id = $2)
	)`

	query := `
		SELECT
			(SELECT COUNT(*) FROM orders o WHERE o.shop_name = $1 AND o.status <> $3 AND ` + crew + `) AS active_orders,
			(SELECT COUNT(*) FROM orders o WHERE o.shop_name = $1 AND o.status = $3 AND ` + crew + `) AS completed_orders,
			(SELECT COUNT(*) FROM editing_projects WHERE shop_name = $1 AND editor_id = $2 AND status <> $3) AS active_projects,
			(SELECT COUNT(*) FROM editing_projects WHERE shop_name = $1 AND editor_id = $2 AND status = $3) AS completed_projects,
			(SELECT COALESCE(SUM(amount), 0) FROM salaries WHERE employee_id = $2) AS total_earnings,
			(SELECT COALESCE(SUM(amount), 0) FROM salaries WHERE employee_id = $2 AND is_paid) AS paid_salary`

	var totals MemberTotals
	if err := r.db.GetContext(ctx, &totals, query, shopName, userID, statusCompleted); err != nil {
		return nil, fmt.Errorf("member totals: %w", err)
	}
	return &totals, nil
}
