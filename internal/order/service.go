// AngelaMos | 2026
// service.go

package order

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
	Orders    func(db core.DBTX) Repository
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

func (s *Service) List(ctx context.Context, actor access.Actor) ([]Detail, error) {
	repo := s.stores.Orders(s.db)

	orders, err := repo.List(ctx, access.ListScope(actor))
	if err != nil {
		return nil, err
	}

	return hydrate(ctx, repo, orders)
}

func (s *Service) Get(ctx context.Context, actor access.Actor, id string) (*Detail, error) {
	repo := s.stores.Orders(s.db)

	o, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, core.NotFoundError("Order")
		}
		return nil, err
	}

	details, err := hydrate(ctx, repo, []Order{*o})
	if err != nil {
		return nil, err
	}

	d := &details[0]
	if !access.CanAccess(actor, access.Resource{ShopName: d.ShopName, Participants: d.Participants()}) {
		return nil, core.ForbiddenError("")
	}

	return d, nil
}

// hydrate loads children for a page of orders in four queries total.
func hydrate(ctx context.Context, repo Repository, orders []Order) ([]Detail, error) {
	details := make([]Detail, len(orders))
	if len(orders) == 0 {
		return details, nil
	}

	ids := make([]string, 0, len(orders))
	clientIDs := make([]string, 0, len(orders))
	index := make(map[string]int, len(orders))
	for i, o := range orders {
		details[i] = Detail{Order: o, Products: []Item{}, Workers: []Assignment{}, Transporters: []Assignment{}}
		ids = append(ids, o.ID)
		clientIDs = append(clientIDs, o.ClientID)
		index[o.ID] = i
	}

	items, err := repo.Items(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		d := &details[index[it.OrderID]]
		d.Products = append(d.Products, it)
	}

	workers, err := repo.Workers(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, a := range workers {
		d := &details[index[a.OrderID]]
		d.Workers = append(d.Workers, a)
	}

	transporters, err := repo.Transporters(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, a := range transporters {
		d := &details[index[a.OrderID]]
		d.Transporters = append(d.Transporters, a)
	}

	clients, err := repo.Clients(ctx, clientIDs)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*ClientSummary, len(clients))
	for i := range clients {
		byID[clients[i].ID] = &clients[i]
	}
	for i := range details {
		details[i].Client = byID[details[i].ClientID]
	}

	return details, nil
}

// Create writes the order, its children, one salary entry per crew member
// and the client totals in a single transaction.
func (s *Service) Create(
	ctx context.Context,
	actor access.Actor,
	req CreateOrderRequest,
) (*Order, error) {
	if !access.CanAccess(actor, access.Resource{ShopName: req.ShopName}) {
		return nil, core.ForbiddenError("")
	}

	orderDate := s.now()
	if req.OrderDate != nil && !req.OrderDate.IsZero() {
		orderDate = *req.OrderDate
	}

	o := &Order{
		ID:               uuid.New().String(),
		ClientID:         req.ClientID,
		OrderName:        req.OrderName,
		VenuePlace:       req.VenuePlace,
		Description:      req.Description,
		TotalAmount:      req.TotalAmount,
		ReceivedPayment:  req.ReceivedPayment,
		RemainingPayment: req.TotalAmount.Sub(req.ReceivedPayment),
		OrderDate:        orderDate,
		Status:           StatusPending,
		CreatedBy:        req.CreatedBy,
		ShopName:         req.ShopName,
	}

	items := make([]Item, 0, len(req.Products))
	for _, p := range req.Products {
		items = append(items, Item{Name: p.Name, Quantity: p.Quantity, Price: p.Price, SizeInfo: p.SizeInfo})
	}
	workers := make([]Assignment, 0, len(req.Workers))
	for _, w := range req.Workers {
		workers = append(workers, Assignment{UserID: w.Worker, Payment: w.Payment})
	}
	transporters := make([]Assignment, 0, len(req.Transporters))
	for _, t := range req.Transporters {
		transporters = append(transporters, Assignment{UserID: t.Transporter, Payment: t.Payment})
	}

	ctx, span := core.StartSpan(ctx, "order.create",
		attribute.String("order.id", o.ID),
		attribute.String("shop", o.ShopName),
	)
	defer span.End()

	err := s.tx.WithinTx(ctx, func(tx core.DBTX) error {
		orders := s.stores.Orders(tx)
		salaries := s.stores.Salaries(tx)
		employees := s.stores.Employees(tx)

		if err := orders.Create(ctx, o); err != nil {
			return err
		}
		if err := orders.AddItems(ctx, o.ID, items); err != nil {
			return err
		}
		if err := orders.AddWorkers(ctx, o.ID, workers); err != nil {
			return err
		}
		if err := orders.AddTransporters(ctx, o.ID, transporters); err != nil {
			return err
		}

		for _, w := range workers {
			entry := salary.Earned(w.UserID, w.Payment, salary.TypeOrderWork,
				"Order work: "+o.OrderName, o.OrderDate).ForOrder(o.ID)
			if err := salary.Accrue(ctx, salaries, employees, o.ShopName, entry); err != nil {
				return err
			}
		}
		for _, t := range transporters {
			entry := salary.Earned(t.UserID, t.Payment, salary.TypeTransportWork,
				"Transport work: "+o.OrderName, o.OrderDate).ForOrder(o.ID)
			if err := salary.Accrue(ctx, salaries, employees, o.ShopName, entry); err != nil {
				return err
			}
		}

		err := s.stores.Clients(tx).ApplyClientDelta(ctx, o.ClientID, o.ClientDelta())
		if errors.Is(err, core.ErrNotFound) {
			return core.ValidationError(fmt.Sprintf("Client %s not found", o.ClientID))
		}
		return err
	})
	if err != nil {
		core.SetSpanError(ctx, err)
		return nil, err
	}

	return o, nil
}

func (s *Service) UpdateStatus(
	ctx context.Context,
	actor access.Actor,
	id, status string,
) (*Order, error) {
	if _, err := s.Get(ctx, actor, id); err != nil {
		return nil, err
	}

	o, err := s.stores.Orders(s.db).UpdateStatus(ctx, id, status, s.now())
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, core.NotFoundError("Order")
		}
		return nil, err
	}

	return o, nil
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
		orders := s.stores.Orders(tx)

		o, err := orders.GetByIDForUpdate(ctx, id)
		if err != nil {
			if errors.Is(err, core.ErrNotFound) {
				return core.NotFoundError("Order")
			}
			return err
		}

		if !access.CanAccess(actor, access.Resource{ShopName: o.ShopName}) {
			return core.ForbiddenError("")
		}

		if err := orders.SetReceived(ctx, id, received); err != nil {
			return err
		}

		delta := ledger.ClientDelta{Received: received.Sub(o.ReceivedPayment), ShopName: o.ShopName}
		if delta.Received.IsZero() {
			return nil
		}

		err = s.stores.Clients(tx).ApplyClientDelta(ctx, o.ClientID, delta)
		if errors.Is(err, core.ErrNotFound) {
			return nil
		}
		return err
	})
}

// Delete reverses everything Create did. Employees lose the payment
// listed on the order even if part of it was already paid out.
func (s *Service) Delete(ctx context.Context, actor access.Actor, id string) error {
	ctx, span := core.StartSpan(ctx, "order.delete", attribute.String("order.id", id))
	defer span.End()

	err := s.tx.WithinTx(ctx, func(tx core.DBTX) error {
		orders := s.stores.Orders(tx)

		o, err := orders.GetByIDForUpdate(ctx, id)
		if err != nil {
			if errors.Is(err, core.ErrNotFound) {
				return core.NotFoundError("Order")
			}
			return err
		}

		if !access.CanAccess(actor, access.Resource{ShopName: o.ShopName}) {
			return core.ForbiddenError("")
		}

		workers, err := orders.Workers(ctx, []string{id})
		if err != nil {
			return err
		}
		transporters, err := orders.Transporters(ctx, []string{id})
		if err != nil {
			return err
		}

		if err := s.stores.Salaries(tx).DeleteByOrder(ctx, id); err != nil {
			return err
		}
		if err := salary.Clawback(ctx, s.stores.Employees(tx), Payouts(workers, transporters)); err != nil {
			return err
		}

		err = s.stores.Clients(tx).ApplyClientDelta(ctx, o.ClientID, o.ClientDelta().Negate())
		if err != nil && !errors.Is(err, core.ErrNotFound) {
			return err
		}

		return orders.Delete(ctx, id)
	})
	if err != nil {
		core.SetSpanError(ctx, err)
	}
	return err
}
