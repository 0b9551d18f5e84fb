// AngelaMos | 2026
// service.go

package payment

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/carterperez-dev/studio-ledger/internal/access"
	"github.com/carterperez-dev/studio-ledger/internal/core"
	"github.com/carterperez-dev/studio-ledger/internal/ledger"
)

type Stores struct {
	Payments func(db core.DBTX) Repository
	Receipts func(db core.DBTX) ledger.OrderReceipts
	Clients  func(db core.DBTX) ledger.ClientAggregates
}

type Service struct {
	tx     core.Transactor
	db     core.DBTX
	stores Stores
}

func NewService(tx core.Transactor, db core.DBTX, stores Stores) *Service {
	return &Service{
		tx:     tx,
		db:     db,
		stores: stores,
	}
}

func (s *Service) ListByOrder(ctx context.Context, actor access.Actor, orderID string) ([]Receipt, error) {
	if actor.ShopName == "" {
		return []Receipt{}, nil
	}
	return s.stores.Payments(s.db).ListByOrder(ctx, orderID, actor.ShopName)
}

func (s *Service) ListByClient(ctx context.Context, actor access.Actor, clientID string) ([]Receipt, error) {
	if actor.ShopName == "" {
		return []Receipt{}, nil
	}
	return s.stores.Payments(s.db).ListByClient(ctx, clientID, actor.ShopName)
}

// Record stores the payment and adds its amount to the order and the
// order's client in one transaction.
func (s *Service) Record(
	ctx context.Context,
	actor access.Actor,
	req CreatePaymentRequest,
) (*Payment, error) {
	if !access.CanAccess(actor, access.Resource{ShopName: req.ShopName}) {
		return nil, core.ForbiddenError("")
	}

	method := req.PaymentMethod
	if method == "" {
		method = DefaultMethod
	}

	p := &Payment{
		ID:            uuid.New().String(),
		OrderID:       req.OrderID,
		ClientID:      req.ClientID,
		Amount:        req.Amount,
		PaymentDate:   *req.PaymentDate,
		PaymentMethod: method,
		ReceivedBy:    req.ReceivedBy,
		Notes:         req.Notes,
		ShopName:      req.ShopName,
	}

	ctx, span := core.StartSpan(ctx, "payment.record",
		attribute.String("payment.id", p.ID),
		attribute.String("order.id", p.OrderID),
	)
	defer span.End()

	err := s.tx.WithinTx(ctx, func(tx core.DBTX) error {
		ref, err := s.stores.Receipts(tx).ApplyReceipt(ctx, p.OrderID, p.Amount)
		if err != nil {
			if errors.Is(err, core.ErrNotFound) {
				return core.NotFoundError("Order")
			}
			return err
		}

		if ref.ShopName != p.ShopName {
			return core.ForbiddenError("")
		}
		if ref.ClientID != p.ClientID {
			return core.ValidationError("Client does not match the order")
		}

		if err := s.stores.Payments(tx).Create(ctx, p); err != nil {
			return err
		}

		err = s.stores.Clients(tx).ApplyClientDelta(ctx, p.ClientID, ledger.ClientDelta{Received: p.Amount, ShopName: p.ShopName})
		if errors.Is(err, core.ErrNotFound) {
			return nil
		}
		return err
	})
	if err != nil {
		core.SetSpanError(ctx, err)
		return nil, err
	}

	return p, nil
}

// Delete removes the payment and takes its amount back off the order and
// client, never letting either received total drop below zero.
func (s *Service) Delete(ctx context.Context, actor access.Actor, id string) error {
	ctx, span := core.StartSpan(ctx, "payment.delete", attribute.String("payment.id", id))
	defer span.End()

	err := s.tx.WithinTx(ctx, func(tx core.DBTX) error {
		payments := s.stores.Payments(tx)

		p, err := payments.GetByIDForUpdate(ctx, id)
		if err != nil {
			if errors.Is(err, core.ErrNotFound) {
				return core.NotFoundError("Payment")
			}
			return err
		}

		if !access.CanAccess(actor, access.Resource{ShopName: p.ShopName}) {
			return core.ForbiddenError("")
		}

		if _, err := s.stores.Receipts(tx).ApplyReceipt(ctx, p.OrderID, p.Amount.Neg()); err != nil &&
			!errors.Is(err, core.ErrNotFound) {
			return err
		}

		err = s.stores.Clients(tx).ApplyClientDelta(ctx, p.ClientID, ledger.ClientDelta{
			Received: p.Amount.Neg(),
			ShopName: p.ShopName,
		})
		if err != nil && !errors.Is(err, core.ErrNotFound) {
			return err
		}

		return payments.Delete(ctx, id)
	})
	if err != nil {
		core.SetSpanError(ctx, err)
	}
	return err
}
