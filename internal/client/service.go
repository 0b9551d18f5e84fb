// AngelaMos | 2026
// service.go

package client

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/carterperez-dev/studio-ledger/internal/access"
	"github.com/carterperez-dev/studio-ledger/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List is owner-only. Everyone else gets an empty list.
func (s *Service) List(ctx context.Context, actor access.Actor) ([]Client, error) {
	filter := access.ListScope(actor)
	if filter.Scope != access.ScopeShop {
		return []Client{}, nil
	}

	return s.repo.ListByShop(ctx, filter.ShopName)
}

func (s *Service) Create(
	ctx context.Context,
	actor access.Actor,
	req CreateClientRequest,
) (*Client, error) {
	shopName := req.ShopName
	if shopName == "" {
		shopName = actor.ShopName
	}
	if shopName == "" {
		return nil, core.ValidationError("Shop name is required")
	}
	if !access.CanAccess(actor, access.Resource{ShopName: shopName}) {
		return nil, core.ForbiddenError("")
	}

	c := &Client{
		ID:               uuid.New().String(),
		ShopName:         shopName,
		Name:             strings.TrimSpace(req.Name),
		Email:            strings.TrimSpace(req.Email),
		Phone:            req.Phone,
		Address:          req.Address,
		ClientType:       orDefault(req.ClientType, DefaultClientType),
		BusinessCategory: orDefault(req.BusinessCategory, DefaultBusinessCategory),
		PriorityLevel:    orDefault(req.PriorityLevel, DefaultPriorityLevel),
		Notes:            req.Notes,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func (s *Service) Update(
	ctx context.Context,
	actor access.Actor,
	id string,
	req UpdateClientRequest,
) (*Client, error) {
	c, err := s.authorized(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	c.Name = strings.TrimSpace(req.Name)
	c.Email = strings.TrimSpace(req.Email)
	c.Phone = req.Phone
	c.Address = req.Address

	if err := s.repo.UpdateContact(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) Delete(ctx context.Context, actor access.Actor, id string) error {
	if _, err := s.authorized(ctx, actor, id); err != nil {
		return err
	}

	return s.repo.Delete(ctx, id)
}

// WorkHistory merges the client's orders and projects, newest first.
func (s *Service) WorkHistory(
	ctx context.Context,
	actor access.Actor,
	id string,
) (*Client, []WorkItem, error) {
	c, err := s.authorized(ctx, actor, id)
	if err != nil {
		return nil, nil, err
	}

	items, err := s.repo.WorkHistory(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	return c, items, nil
}

func (s *Service) authorized(ctx context.Context, actor access.Actor, id string) (*Client, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, core.NotFoundError("Client")
		}
		return nil, err
	}

	if !access.CanAccess(actor, access.Resource{ShopName: c.ShopName}) {
		return nil, core.ForbiddenError("")
	}

	return c, nil
}
