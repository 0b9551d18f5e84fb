// AngelaMos | 2026
// service.go

package editing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"

	"github.com/carterperez-dev/studio-ledger/internal/access"
	"github.com/carterperez-dev/studio-ledger/internal/core"
	"github.com/carterperez-dev/studio-ledger/internal/ledger"
	"github.com/carterperez-dev/studio-ledger/internal/salary"
)

type Stores struct {
	Projects  func(db core.DBTX) Repository
	Salaries  func(db core.DBTX) salary.Repository
	Employees func(db core.DBTX) ledger.EmployeeAggregates
	Clients   func(db core.DBTX) ledger.ClientAggregates
}

type Service struct {
	tx     core.Transactor
	db     core.DBTX
	stores Stores
	now    func() time.Time
}

func NewService(tx core.Transactor, db core.DBTX, stores Stores) *Service {
	return &Service{
		tx:     tx,
		db:     db,
		stores: stores,
		now:    time.Now,
	}
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) List(ctx context.Context, actor access.Actor) ([]Project, error) {
	return s.stores.Projects(s.db).List(ctx, access.ListScope(actor))
}

func (s *Service) Get(ctx context.Context, actor access.Actor, id string) (*Project, error) {
	p, err := s.stores.Projects(s.db).GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, core.NotFoundError("Project")
		}
		return nil, err
	}

	if !access.CanAccess(actor, access.Resource{ShopName: p.ShopName, Participants: p.Participants()}) {
		return nil, core.ForbiddenError("")
	}

	return p, nil
}

// Create stores the project, accrues the editor's commission and moves
// the client totals in one transaction.
func (s *Service) Create(
	ctx context.Context,
	actor access.Actor,
	req CreateProjectRequest,
) (*Project, error) {
	if !access.CanAccess(actor, access.Resource{ShopName: req.ShopName}) {
		return nil, core.ForbiddenError("")
	}

	start := s.now()
	if req.StartDate != nil && !req.StartDate.IsZero() {
		start = *req.StartDate
	}

	p := &Project{
		ID:                   uuid.New().String(),
		ClientID:             req.ClientID,
		EditorID:             req.EditorID,
		ProjectName:          req.ProjectName,
		Description:          req.Description,
		EditingValue:         req.EditingValue,
		PendriveIncluded:     req.PendriveIncluded,
		PendriveValue:        req.PendriveValue,
		TotalAmount:          req.TotalAmount,
		ReceivedPayment:      req.ReceivedPayment,
		RemainingPayment:     req.TotalAmount.Sub(req.ReceivedPayment),
		CommissionPercentage: req.CommissionPercentage,
		CommissionAmount:     Commission(req.EditingValue, req.CommissionPercentage),
		StartDate:            start,
		EndDate:              *req.EndDate,
		Status:               StatusInProgress,
		CreatedBy:            req.CreatedBy,
		ShopName:             req.ShopName,
	}

	ctx, span := core.StartSpan(ctx, "editing.create",
		attribute.String("project.id", p.ID),
		attribute.String("shop", p.ShopName),
	)
	defer span.End()

	err := s.tx.WithinTx(ctx, func(tx core.DBTX) error {
		if err := s.stores.Projects(tx).Create(ctx, p); err != nil {
			return err
		}

		entry := salary.Earned(p.EditorID, p.CommissionAmount, salary.TypeEditingWork,
			"Editing project: "+p.ProjectName, p.StartDate).ForProject(p.ID)
		if err := salary.Accrue(ctx, s.stores.Salaries(tx), s.stores.Employees(tx), p.ShopName, entry); err != nil {
			return err
		}

		err := s.stores.Clients(tx).ApplyClientDelta(ctx, p.ClientID, p.ClientDelta())
		if errors.Is(err, core.ErrNotFound) {
			return core.ValidationError(fmt.Sprintf("Client %s not found", p.ClientID))
		}
		return err
	})
	if err != nil {
		core.SetSpanError(ctx, err)
		return nil, err
	}

	return p, nil
}

func (s *Service) UpdateStatus(
	ctx context.Context,
	actor access.Actor,
	id, status string,
) (*Project, error) {
	if _, err := s.Get(ctx, actor, id); err != nil {
		return nil, err
	}

	p, err := s.stores.Projects(s.db).UpdateStatus(ctx, id, status, s.now())
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, core.NotFoundError("Project")
		}
		return nil, err
	}

	return p, nil
}

// UpdatePayment overwrites the received amount and moves the client's
// received total by the difference.
func (s *Service) UpdatePayment(
	ctx context.Context,
	actor access.Actor,
	id string,
	received decimal.Decimal,
) error {
	if received.IsNegative() {
		return core.ValidationError("Received payment cannot be negative")
	}

	return s.tx.WithinTx(ctx, func(tx core.DBTX) error {
		projects := s.stores.Projects(tx)

		p, err := projects.GetByIDForUpdate(ctx, id)
		if err != nil {
			if errors.Is(err, core.ErrNotFound) {
				return core.NotFoundError("Project")
			}
			return err
		}

		if !access.CanAccess(actor, access.Resource{ShopName: p.ShopName}) {
			return core.ForbiddenError("")
		}

		if err := projects.SetReceived(ctx, id, received); err != nil {
			return err
		}

		delta := ledger.ClientDelta{Received: received.Sub(p.ReceivedPayment), ShopName: p.ShopName}
		if delta.Received.IsZero() {
			return nil
		}

		err = s.stores.Clients(tx).ApplyClientDelta(ctx, p.ClientID, delta)
		if errors.Is(err, core.ErrNotFound) {
			return nil
		}
		return err
	})
}

// Delete reverses Create. The editor loses the full commission even if
// part of it was already paid out.
func (s *Service) Delete(ctx context.Context, actor access.Actor, id string) error {
	ctx, span := core.StartSpan(ctx, "editing.delete", attribute.String("project.id", id))
	defer span.End()

	err := s.tx.WithinTx(ctx, func(tx core.DBTX) error {
		projects := s.stores.Projects(tx)

		p, err := projects.GetByIDForUpdate(ctx, id)
		if err != nil {
			if errors.Is(err, core.ErrNotFound) {
				return core.NotFoundError("Project")
			}
			return err
		}

		if !access.CanAccess(actor, access.Resource{ShopName: p.ShopName}) {
			return core.ForbiddenError("")
		}

		if err := s.stores.Salaries(tx).DeleteByProject(ctx, id); err != nil {
			return err
		}

		payouts := map[string]decimal.Decimal{p.EditorID: p.CommissionAmount}
		if err := salary.Clawback(ctx, s.stores.Employees(tx), payouts); err != nil {
			return err
		}

		err = s.stores.Clients(tx).ApplyClientDelta(ctx, p.ClientID, p.ClientDelta().Negate())
		if err != nil && !errors.Is(err, core.ErrNotFound) {
			return err
		}

		return projects.Delete(ctx, id)
	})
	if err != nil {
		core.SetSpanError(ctx, err)
	}
	return err
}
