// AngelaMos | 2026
// service.go

package product

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/carterperez-dev/studio-ledger/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Product, error) {
	return s.repo.ListActive(ctx)
}

func (s *Service) Create(ctx context.Context, req CreateProductRequest) (*Product, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, core.ValidationError("Product name is required")
	}

	exists, err := s.repo.ExistsByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, core.ValidationError("Product already exists")
	}

	p := &Product{
		ID:   uuid.New().String(),
		Name: name,
		Type: req.Type,
	}
	if p.Type == "" {
		p.Type = TypeQuantity
	}

	if err := s.repo.Create(ctx, p); err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			return nil, core.ValidationError("Product already exists")
		}
		return nil, err
	}

	return p, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdateProductRequest) (*Product, error) {
	p := &Product{
		ID:       id,
		Name:     strings.TrimSpace(req.Name),
		Type:     req.Type,
		IsActive: req.IsActive,
	}

	if err := s.repo.Update(ctx, p); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, core.NotFoundError("Product")
		}
		if errors.Is(err, core.ErrDuplicateKey) {
			return nil, core.ValidationError("Product already exists")
		}
		return nil, err
	}

	return p, nil
}

func (s *Service) Deactivate(ctx context.Context, id string) (*Product, error) {
	p, err := s.repo.Deactivate(ctx, id)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, core.NotFoundError("Product")
		}
		return nil, err
	}
	return p, nil
}

// Initialize seeds the default catalog. Running it twice creates nothing
// the second time.
func (s *Service) Initialize(ctx context.Context) ([]Product, error) {
	seed := make([]Product, 0, len(Catalog))
	for _, p := range Catalog {
		p.ID = uuid.New().String()
		seed = append(seed, p)
	}

	created, err := s.repo.CreateMissing(ctx, seed)
	if err != nil {
		return nil, err
	}

	slog.Info("product catalog initialized", "created", len(created))
	return created, nil
}
