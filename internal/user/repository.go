// AngelaMos | 2026
// repository.go

package user

//go:generate mockgen -source=repository.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/carterperez-dev/studio-ledger/internal/core"
)

type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	TouchLastLogin(ctx context.Context, id string) error
	ListByShop(ctx context.Context, shopName, excludeID string) ([]User, error)
	ListByRoles(ctx context.Context, shopName string, roles []string) ([]User, error)
	UpdateAccuracy(ctx context.Context, id string, rating decimal.Decimal) error
	WorkStats(ctx context.Context, id string) (WorkStats, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const userColumns = `
	id, first_name, last_name, email, password_hash, shop_name, role, phone,
	is_from_worker, original_worker_id, is_from_editor, original_editor_id,
	profile_complete, total_earnings, paid_salary, remaining_salary,
	accuracy_rating, token_version, last_login, created_at, updated_at`

func (r *repository) Create(ctx context.Context, user *User) error {
	query := `
		INSERT INTO users (
			id, first_name, last_name, email, password_hash, shop_name, role,
			phone, is_from_worker, original_worker_id, is_from_editor,
			original_editor_id, profile_complete
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING created_at, updated_at, token_version`

	err := r.db.GetContext(ctx, user, query,
		user.ID,
		user.FirstName,
		user.LastName,
		user.Email,
		user.PasswordHash,
		user.ShopName,
		user.Role,
		user.Phone,
		user.IsFromWorker,
		user.OriginalWorkerID,
		user.IsFromEditor,
		user.OriginalEditorID,
		user.ProfileComplete,
	)
	if err != nil {
		if core.IsDuplicateKey(err) {
			return fmt.Errorf("create user: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*User, error) {
	if !core.ValidID(id) {
		return nil, fmt.Errorf("get user: %w", core.ErrNotFound)
	}

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	var user User
	err := r.db.GetContext(ctx, &user, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get user: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	return &user, nil
}

func (r *repository) GetByEmail(
	ctx context.Context,
	email string,
) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	var user User
	err := r.db.GetContext(ctx, &user, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get user by email: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}

	return &user, nil
}

func (r *repository) ExistsByEmail(
	ctx context.Context,
	email string,
) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, email); err != nil {
		return false, fmt.Errorf("check email exists: %w", err)
	}

	return exists, nil
}

func (r *repository) UpdatePassword(
	ctx context.Context,
	id, passwordHash string,
) error {
	query := `
		UPDATE users
		SET password_hash = $2, updated_at = NOW()
		WHERE id = $1`

	return r.execOne(ctx, "update password", query, id, passwordHash)
}

func (r *repository) TouchLastLogin(ctx context.Context, id string) error {
	query := `UPDATE users SET last_login = NOW() WHERE id = $1`

	return r.execOne(ctx, "touch last login", query, id)
}

func (r *repository) ListByShop(
	ctx context.Context,
	shopName, excludeID string,
) ([]User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE shop_name = $1 AND ($2 = '' OR id::text <> $2)
		ORDER BY created_at DESC`

	users := []User{}
	if err := r.db.SelectContext(ctx, &users, query, shopName, excludeID); err != nil {
		return nil, fmt.Errorf("list users by shop: %w", err)
	}

	return users, nil
}

func (r *repository) ListByRoles(
	ctx context.Context,
	shopName string,
	roles []string,
) ([]User, error) {
	query, args, err := sqlx.In(`
		SELECT `+userColumns+`
		FROM users
		WHERE shop_name = ? AND role IN (?)
		ORDER BY first_name, last_name`, shopName, roles)
	if err != nil {
		return nil, fmt.Errorf("list users by role: %w", err)
	}

	users := []User{}
	if err := r.db.SelectContext(ctx, &users, sqlx.Rebind(sqlx.DOLLAR, query), args...); err != nil {
		return nil, fmt.Errorf("list users by role: %w", err)
	}

	return users, nil
}

func (r *repository) UpdateAccuracy(
	ctx context.Context,
	id string,
	rating decimal.Decimal,
) error {
	query := `
		UPDATE users
		SET accuracy_rating = $2, updated_at = NOW()
		WHERE id = $1`

	return r.execOne(ctx, "update accuracy", query, id, rating)
}

// WorkStats counts a user's order and project assignments and sums their
// salary rows. Earnings come from the rows, not the cached columns.
func (r *repository) WorkStats(ctx context.Context, id string) (WorkStats, error) {
	if !core.ValidID(id) {
		return WorkStats{}, nil
	}

	query := `
		SELECT
			(SELECT COUNT(DISTINCT o.id) FROM orders o
			 WHERE o.id IN (SELECT order_id FROM order_workers WHERE worker_id = $1
			                UNION SELECT order_id FROM order_transporters WHERE transporter_id = $1)
			) AS total_orders,
			(SELECT COUNT(DISTINCT o.id) FROM orders o
			 WHERE o.status = 'completed'
			   AND o.id IN (SELECT order_id FROM order_workers WHERE worker_id = $1
			                UNION SELECT order_id FROM order_transporters WHERE transporter_id = $1)
			) AS completed_orders,
			(SELECT COUNT(*) FROM editing_projects WHERE editor_id = $1) AS total_projects,
			(SELECT COUNT(*) FROM editing_projects
			 WHERE editor_id = $1 AND status = 'completed') AS completed_projects,
			(SELECT COALESCE(SUM(amount), 0) FROM salaries WHERE employee_id = $1) AS total_earnings,
			(SELECT COALESCE(SUM(amount), 0) FROM salaries
			 WHERE employee_id = $1 AND is_paid) AS paid_salary`

	var stats WorkStats
	if err := r.db.GetContext(ctx, &stats, query, id); err != nil {
		return WorkStats{}, fmt.Errorf("work stats: %w", err)
	}

	return stats, nil
}

func (r *repository) execOne(
	ctx context.Context,
	op, query string,
	args ...any,
) error {
	if id, ok := args[0].(string); ok && !core.ValidID(id) {
		return fmt.Errorf("%s: %w", op, core.ErrNotFound)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
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
