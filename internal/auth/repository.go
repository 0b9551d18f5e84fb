// AngelaMos | 2026
// repository.go

package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/carterperez-dev/studio-ledger/internal/core"
)

type shopRepository struct {
	db core.DBTX
}

func NewShopRepository(db core.DBTX) ShopRepository {
	return &shopRepository{db: db}
}

func (r *shopRepository) ListActiveNames(ctx context.Context) ([]string, error) {
	names := []string{}
	query := `SELECT name FROM shops WHERE is_active ORDER BY name`
	if err := r.db.SelectContext(ctx, &names, query); err != nil {
		return nil, fmt.Errorf("list shops: %w", err)
	}
	return names, nil
}

func (r *shopRepository) ListUserShopNames(ctx context.Context) ([]string, error) {
	names := []string{}
	query := `
		SELECT DISTINCT shop_name
		FROM users
		WHERE shop_name <> ''
		ORDER BY shop_name`
	if err := r.db.SelectContext(ctx, &names, query); err != nil {
		return nil, fmt.Errorf("list user shops: %w", err)
	}
	return names, nil
}

// SeedDefaults skips names that already exist, so concurrent first
// requests cannot fail on the unique index.
func (r *shopRepository) SeedDefaults(ctx context.Context, shops []Shop) error {
	query := `
		INSERT INTO shops (id, name, business_type)
		VALUES ($1, $2, $3)
		ON CONFLICT DO NOTHING`

	for _, s := range shops {
		if _, err := r.db.ExecContext(ctx, query, uuid.New().String(), s.Name, s.BusinessType); err != nil {
			return fmt.Errorf("seed shop %q: %w", s.Name, err)
		}
	}

	return nil
}

func (r *shopRepository) FindByName(ctx context.Context, name string) (*Shop, error) {
	query := `
		SELECT id, name, description, business_type, created_by, is_active,
		       created_at, updated_at
		FROM shops
		WHERE LOWER(name) = LOWER($1)`

	var shop Shop
	err := r.db.GetContext(ctx, &shop, query, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("find shop: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find shop: %w", err)
	}

	return &shop, nil
}

func (r *shopRepository) FindOwner(ctx context.Context, shopName string) (*ShopOwner, error) {
	query := `
		SELECT id, email, shop_name
		FROM users
		WHERE LOWER(shop_name) = LOWER($1) AND role = 'owner'
		LIMIT 1`

	var owner ShopOwner
	err := r.db.GetContext(ctx, &owner, query, shopName)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("find shop owner: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find shop owner: %w", err)
	}

	return &owner, nil
}

func (r *shopRepository) Create(ctx context.Context, shop *Shop) error {
	query := `
		INSERT INTO shops (id, name, description, business_type, created_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING is_active, created_at, updated_at`

	err := r.db.GetContext(ctx, shop, query,
		shop.ID,
		shop.Name,
		shop.Description,
		shop.BusinessType,
		shop.CreatedBy,
	)
	if err != nil {
		if core.IsDuplicateKey(err) {
			return fmt.Errorf("create shop: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("create shop: %w", err)
	}

	return nil
}
