// AngelaMos | 2026
// repository.go

package product

//go:generate mockgen -source=repository.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/carterperez-dev/studio-ledger/internal/core"
)

type Repository interface {
	ListActive(ctx context.Context) ([]Product, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, p *Product) error
	Update(ctx context.Context, p *Product) error
	Deactivate(ctx context.Context, id string) (*Product, error)
	// CreateMissing inserts the products whose name is not taken yet and
	// returns only the rows it created.
	CreateMissing(ctx context.Context, products []Product) ([]Product, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const productColumns = `id, name, type, is_active, created_at, updated_at`

func (r *repository) ListActive(ctx context.Context) ([]Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE is_active ORDER BY name`

	products := []Product{}
	if err := r.db.SelectContext(ctx, &products, query); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func (r *repository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM products WHERE name = $1)`, name)
	if err != nil {
		return false, fmt.Errorf("check product name: %w", err)
	}
	return exists, nil
}

func (r *repository) Create(ctx context.Context, p *Product) error {
	query := `
		INSERT INTO products (id, name, type, is_active)
		VALUES ($1, $2, $3, TRUE)
		RETURNING ` + productColumns

	if err := r.db.GetContext(ctx, p, query, p.ID, p.Name, p.Type); err != nil {
		if core.IsDuplicateKey(err) {
			return fmt.Errorf("create product: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("create product: %w", err)
	}
	return nil
}

func (r *repository) Update(ctx context.Context, p *Product) error {
	query := `
		UPDATE products
		SET name = $2, type = $3, is_active = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + productColumns

	err := r.db.GetContext(ctx, p, query, p.ID, p.Name, p.Type, p.IsActive)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update product: %w", core.ErrNotFound)
	}
	if err != nil {
		if core.IsDuplicateKey(err) {
			return fmt.Errorf("update product: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

func (r *repository) Deactivate(ctx context.Context, id string) (*Product, error) {
	query := `
		UPDATE products
		SET is_active = FALSE, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + productColumns

	var p Product
	err := r.db.GetContext(ctx, &p, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("deactivate product: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("deactivate product: %w", err)
	}
	return &p, nil
}

func (r *repository) CreateMissing(ctx context.Context, products []Product) ([]Product, error) {
	query := `
		INSERT INTO products (id, name, type, is_active)
		VALUES ($1, $2, $3, TRUE)
		ON CONFLICT (name) DO NOTHING
		RETURNING ` + productColumns

	created := []Product{}
	for _, p := range products {
		var row Product
		err := r.db.GetContext(ctx, &row, query, p.ID, p.Name, p.Type)
		if errors.Is(err, sql.ErrNoRows) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("seed product %q: %w", p.Name, err)
		}
		created = append(created, row)
	}
	return created, nil
}
