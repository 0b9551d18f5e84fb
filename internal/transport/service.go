// AngelaMos | 2026
// service.go

package transport

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/carterperez-dev/studio-ledger/internal/access"
	"github.com/carterperez-dev/studio-ledger/internal/core"
	"github.com/carterperez-dev/studio-ledger/internal/ledger"
)

const invalidTransporter = "Transporter not found or invalid role"

type Service struct {
	repo      Repository
	employees ledger.EmployeeAggregates
	now       func() time.Time
}

func NewService(repo Repository, employees ledger.EmployeeAggregates) *Service {
	return &Service{
		repo:      repo,
		employees: employees,
		now:       time.Now,
	}
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) List(ctx context.Context, actor access.Actor) ([]Transport, error) {
	return s.repo.List(ctx, access.ListScope(actor))
}

func (s *Service) Create(
	ctx context.Context,
	actor access.Actor,
	req CreateTransportRequest,
) (*Transport, error) {
	if !access.CanAccess(actor, access.Resource{ShopName: req.ShopName}) {
		return nil, core.ForbiddenError("")
	}

	if req.TransporterID != "" {
		if err := s.checkTransporter(ctx, req.TransporterID, req.ShopName); err != nil {
			return nil, err
		}
	}

	date := s.now()
	if req.TransportDate != nil && !req.TransportDate.IsZero() {
		date = *req.TransportDate
	}

	t := &Transport{
		ID:               uuid.New().String(),
		RelatedOrderID:   optional(req.RelatedOrder),
		RelatedProjectID: optional(req.RelatedProject),
		ClientID:         optional(req.ClientID),
		TransporterID:    optional(req.TransporterID),
		PickupLocation:   req.PickupLocation,
		DeliveryLocation: req.DeliveryLocation,
		Distance:         req.Distance,
		TransportFee:     req.TransportFee,
		EquipmentList:    req.EquipmentList,
		TransportDate:    date,
		Instructions:     req.Instructions,
		Status:           StatusPending,
		ShopName:         req.ShopName,
		CreatedBy:        req.CreatedBy,
	}

	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}

	return t, nil
}

func (s *Service) get(ctx context.Context, actor access.Actor, id string) (*Transport, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, core.NotFoundError("Transportation record")
		}
		return nil, err
	}

	if !access.CanAccess(actor, access.Resource{ShopName: t.ShopName, Participants: t.Participants()}) {
		return nil, core.ForbiddenError("")
	}

	return t, nil
}

func (s *Service) UpdateStatus(
	ctx context.Context,
	actor access.Actor,
	id, status string,
) (*Transport, error) {
	if _, err := s.get(ctx, actor, id); err != nil {
		return nil, err
	}

	t, err := s.repo.UpdateStatus(ctx, id, status, s.now())
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, core.NotFoundError("Transportation record")
		}
		return nil, err
	}

	return t, nil
}

func (s *Service) Assign(ctx context.Context, actor access.Actor, id, transporterID string) error {
	t, err := s.get(ctx, actor, id)
	if err != nil {
		return err
	}

	if err := s.checkTransporter(ctx, transporterID, t.ShopName); err != nil {
		return err
	}

	if err := s.repo.Assign(ctx, id, transporterID); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return core.NotFoundError("Transportation record")
		}
		return err
	}

	slog.Info("transporter assigned",
		"transport_id", id,
		"transporter_id", transporterID,
	)
	return nil
}

func (s *Service) Delete(ctx context.Context, actor access.Actor, id string) error {
	if _, err := s.get(ctx, actor, id); err != nil {
		return err
	}

	if err := s.repo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return core.NotFoundError("Transportation record")
		}
		return err
	}
	return nil
}

func (s *Service) checkTransporter(ctx context.Context, userID, shopName string) error {
	e, err := s.employees.Employee(ctx, userID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return core.ValidationError(invalidTransporter)
		}
		return err
	}

	if !CanTransport(e.Role) || e.ShopName != shopName {
		return core.ValidationError(invalidTransporter)
	}
	return nil
}
