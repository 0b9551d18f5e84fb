// AngelaMos | 2026
// service_test.go

package order_test

import (
	"context"
	"errors"
	"maps"
	"slices"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/carterperez-dev/studio-ledger/internal/access"
	"github.com/carterperez-dev/studio-ledger/internal/core"
	"github.com/carterperez-dev/studio-ledger/internal/ledger/ledgertest"
	"github.com/carterperez-dev/studio-ledger/internal/order"
)

const shop = "Creative Studios"

// memOrders is an in-memory order.Repository.
type memOrders struct {
	orders       map[string]order.Order
	items        map[string][]order.Item
	workers      map[string][]order.Assignment
	transporters map[string][]order.Assignment
	failOn       string
}

func newMemOrders() *memOrders {
	return &memOrders{
		orders:       map[string]order.Order{},
		items:        map[string][]order.Item{},
		workers:      map[string][]order.Assignment{},
		transporters: map[string][]order.Assignment{},
	}
}

func (m *memOrders) snapshot() func() {
	orders := maps.Clone(m.orders)
	items := maps.Clone(m.items)
	workers := maps.Clone(m.workers)
	transporters := maps.Clone(m.transporters)
	return func() {
		m.orders, m.items, m.workers, m.transporters = orders, items, workers, transporters
	}
}

func (m *memOrders) Create(_ context.Context, o *order.Order) error {
	m.orders[o.ID] = *o
	return nil
}

func (m *memOrders) AddItems(_ context.Context, id string, items []order.Item) error {
	m.items[id] = slices.Clone(items)
	return nil
}

func (m *memOrders) AddWorkers(_ context.Context, id string, crew []order.Assignment) error {
	m.workers[id] = slices.Clone(crew)
	return nil
}

func (m *memOrders) AddTransporters(_ context.Context, id string, crew []order.Assignment) error {
	if m.failOn == "transporters" {
		return errors.New("disk full")
	}
	m.transporters[id] = slices.Clone(crew)
	return nil
}

func (m *memOrders) GetByID(_ context.Context, id string) (*order.Order, error) {
	o, ok := m.orders[id]
	if !ok {
		return nil, core.ErrNotFound
	}
	return &o, nil
}

func (m *memOrders) GetByIDForUpdate(ctx context.Context, id string) (*order.Order, error) {
	return m.GetByID(ctx, id)
}

func (m *memOrders) List(_ context.Context, filter access.ListFilter) ([]order.Order, error) {
	out := []order.Order{}
	for _, o := range m.orders {
		if filter.Scope == access.ScopeShop && o.ShopName == filter.ShopName {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *memOrders) Items(_ context.Context, ids []string) ([]order.Item, error) {
	out := []order.Item{}
	for _, id := range ids {
		for _, it := range m.items[id] {
			it.OrderID = id
			out = append(out, it)
		}
	}
	return out, nil
}

func (m *memOrders) Workers(_ context.Context, ids []string) ([]order.Assignment, error) {
	return m.crew(m.workers, ids), nil
}

func (m *memOrders) Transporters(_ context.Context, ids []string) ([]order.Assignment, error) {
	return m.crew(m.transporters, ids), nil
}

func (m *memOrders) crew(src map[string][]order.Assignment, ids []string) []order.Assignment {
	out := []order.Assignment{}
	for _, id := range ids {
		for _, a := range src[id] {
			a.OrderID = id
			out = append(out, a)
		}
	}
	return out
}

func (m *memOrders) Clients(context.Context, []string) ([]order.ClientSummary, error) {
	return []order.ClientSummary{}, nil
}

func (m *memOrders) UpdateStatus(_ context.Context, id, status string, at time.Time) (*order.Order, error) {
	o, ok := m.orders[id]
	if !ok {
		return nil, core.ErrNotFound
	}
	o.Status = status
	if status == order.StatusCompleted {
		o.CompletionDate = &at
	}
	m.orders[id] = o
	return &o, nil
}

func (m *memOrders) SetReceived(_ context.Context, id string, amount decimal.Decimal) error {
	o, ok := m.orders[id]
	if !ok {
		return core.ErrNotFound
	}
	o.ReceivedPayment = amount
	o.RemainingPayment = o.TotalAmount.Sub(amount)
	m.orders[id] = o
	return nil
}

func (m *memOrders) Delete(_ context.Context, id string) error {
	if _, ok := m.orders[id]; !ok {
		return core.ErrNotFound
	}
	delete(m.orders, id)
	delete(m.items, id)
	delete(m.workers, id)
	delete(m.transporters, id)
	return nil
}

type OrderLedgerTestSuite struct {
	suite.Suite
	book    *ledgertest.Book
	orders  *memOrders
	service *order.Service
	owner   access.Actor
	now     time.Time
}

func TestOrderLedgerSuite(t *testing.T) {
	suite.Run(t, new(OrderLedgerTestSuite))
}

func (s *OrderLedgerTestSuite) SetupTest() {
	s.book = ledgertest.NewBook()
	s.book.AddEmployee("w1", shop)
	s.book.AddEmployee("w2", shop)
	s.book.AddEmployee("t1", shop)
	s.book.AddClient("c1", shop)

	s.orders = newMemOrders()
	s.book.Track(s.orders.snapshot)

	s.now = time.Date(2026, 7, 10, 12, 0, 0, 0, time.UTC)
	s.owner = access.Actor{UserID: "owner-1", Role: access.RoleOwner, ShopName: shop}

	s.service = order.NewService(s.book, nil, order.Stores{
		Orders:    func(core.DBTX) order.Repository { return s.orders },
		Salaries:  s.book.SalaryFactory,
		Employees: s.book.EmployeeStore,
		Clients:   s.book.ClientStore,
	}).WithClock(func() time.Time { return s.now })
}

func (s *OrderLedgerTestSuite) request() order.CreateOrderRequest {
	return order.CreateOrderRequest{
		ClientID:        "c1",
		OrderName:       "Wedding LED wall",
		VenuePlace:      "Grand Hall",
		TotalAmount:     decimal.NewFromInt(1000),
		ReceivedPayment: decimal.NewFromInt(300),
		ShopName:        shop,
		CreatedBy:       "owner-1",
		Products:        []order.ProductLine{{Name: "LED", Quantity: 2, Price: decimal.NewFromInt(400)}},
		Workers: []order.WorkerLine{
			{Worker: "w1", Payment: decimal.NewFromInt(120)},
			{Worker: "w2", Payment: decimal.NewFromInt(80)},
		},
		Transporters: []order.TransporterLine{{Transporter: "t1", Payment: decimal.NewFromInt(50)}},
	}
}

func (s *OrderLedgerTestSuite) TestCreateUpdatesEveryLedger() {
	o, err := s.service.Create(s.T().Context(), s.owner, s.request())
	s.Require().NoError(err)

	s.Equal(order.StatusPending, o.Status)
	s.True(o.RemainingPayment.Equal(decimal.NewFromInt(700)))

	c := s.book.Clients["c1"]
	s.Equal(1, c.Orders)
	s.True(c.Due.Equal(decimal.NewFromInt(1000)))
	s.True(c.Received.Equal(decimal.NewFromInt(300)))
	s.True(c.Pending.Equal(decimal.NewFromInt(700)))

	s.True(s.book.Employees["w1"].TotalEarnings.Equal(decimal.NewFromInt(120)))
	s.True(s.book.Employees["w2"].RemainingSalary.Equal(decimal.NewFromInt(80)))
	s.True(s.book.Employees["t1"].TotalEarnings.Equal(decimal.NewFromInt(50)))

	s.Require().Len(s.book.Salaries, 3)
	for _, row := range s.book.Salaries {
		s.False(row.IsPaid)
		s.Require().NotNil(row.RelatedOrderID)
		s.Equal(o.ID, *row.RelatedOrderID)
	}
	s.Equal("Order work: Wedding LED wall", s.book.Salaries[0].Description)
	s.Equal("Transport work: Wedding LED wall", s.book.Salaries[2].Description)
}

func (s *OrderLedgerTestSuite) TestCreateThenDeleteRestoresEverything() {
	before := s.snapshot()

	o, err := s.service.Create(s.T().Context(), s.owner, s.request())
	s.Require().NoError(err)

	s.Require().NoError(s.service.Delete(s.T().Context(), s.owner, o.ID))

	s.Equal(before, s.snapshot())
	s.Empty(s.book.Salaries)
	s.Empty(s.orders.orders)
}

func (s *OrderLedgerTestSuite) TestUnknownWorkerRollsBackEverything() {
	before := s.snapshot()

	req := s.request()
	req.Workers = append(req.Workers, order.WorkerLine{Worker: "ghost", Payment: decimal.NewFromInt(10)})

	_, err := s.service.Create(s.T().Context(), s.owner, req)

	appErr, ok := core.AsAppError(err)
	s.Require().True(ok)
	s.Equal(400, appErr.StatusCode)
	s.Equal(before, s.snapshot())
	s.Empty(s.orders.orders)
	s.Empty(s.book.Salaries)
}

func (s *OrderLedgerTestSuite) TestUnknownClientRollsBack() {
	req := s.request()
	req.ClientID = "nobody"

	_, err := s.service.Create(s.T().Context(), s.owner, req)

	appErr, ok := core.AsAppError(err)
	s.Require().True(ok)
	s.Equal("Client nobody not found", appErr.Message)
	s.True(s.book.Employees["w1"].TotalEarnings.IsZero())
}

func (s *OrderLedgerTestSuite) TestForeignWorkerForbiddenAndRolledBack() {
	s.book.AddEmployee("foreign", "Other Shop")
	before := s.snapshot()

	req := s.request()
	req.Workers = append(req.Workers, order.WorkerLine{Worker: "foreign", Payment: decimal.NewFromInt(500)})

	_, err := s.service.Create(s.T().Context(), s.owner, req)

	s.True(errors.Is(err, core.ErrForbidden))
	s.Equal(before, s.snapshot())
	s.True(s.book.Employees["foreign"].TotalEarnings.IsZero())
	s.Empty(s.orders.orders)
	s.Empty(s.book.Salaries)
}

func (s *OrderLedgerTestSuite) TestForeignClientRejectedAndRolledBack() {
	s.book.AddClient("c9", "Other Shop")
	before := s.snapshot()

	req := s.request()
	req.ClientID = "c9"

	_, err := s.service.Create(s.T().Context(), s.owner, req)

	appErr, ok := core.AsAppError(err)
	s.Require().True(ok)
	s.Equal("Client c9 not found", appErr.Message)
	s.Equal(before, s.snapshot())
	s.Zero(s.book.Clients["c9"].Orders)
	s.Empty(s.orders.orders)
}

func (s *OrderLedgerTestSuite) TestStorageFailureRollsBack() {
	s.orders.failOn = "transporters"

	_, err := s.service.Create(s.T().Context(), s.owner, s.request())

	s.Require().Error(err)
	s.Empty(s.orders.orders)
	s.Empty(s.book.Salaries)
}

func (s *OrderLedgerTestSuite) TestUpdatePaymentMovesClientByDifference() {
	o, err := s.service.Create(s.T().Context(), s.owner, s.request())
	s.Require().NoError(err)

	s.Require().NoError(s.service.UpdatePayment(s.T().Context(), s.owner, o.ID, decimal.NewFromInt(900)))

	stored := s.orders.orders[o.ID]
	s.True(stored.RemainingPayment.Equal(decimal.NewFromInt(100)))

	c := s.book.Clients["c1"]
	s.True(c.Received.Equal(decimal.NewFromInt(900)))
	s.True(c.Pending.Equal(decimal.NewFromInt(100)))

	s.Require().NoError(s.service.Delete(s.T().Context(), s.owner, o.ID))
	c = s.book.Clients["c1"]
	s.True(c.Due.IsZero())
	s.True(c.Received.IsZero())
	s.True(c.Pending.IsZero())
	s.Zero(c.Orders)
}

func (s *OrderLedgerTestSuite) TestStatusCompletedStampsDate() {
	o, err := s.service.Create(s.T().Context(), s.owner, s.request())
	s.Require().NoError(err)

	updated, err := s.service.UpdateStatus(s.T().Context(), s.owner, o.ID, "in_progress")
	s.Require().NoError(err)
	s.Nil(updated.CompletionDate)

	updated, err = s.service.UpdateStatus(s.T().Context(), s.owner, o.ID, order.StatusCompleted)
	s.Require().NoError(err)
	s.Require().NotNil(updated.CompletionDate)
	s.Equal(s.now, *updated.CompletionDate)
}

func (s *OrderLedgerTestSuite) TestGetIsScopedToParticipants() {
	o, err := s.service.Create(s.T().Context(), s.owner, s.request())
	s.Require().NoError(err)

	crew := access.Actor{UserID: "w2", Role: "worker", ShopName: shop}
	d, err := s.service.Get(s.T().Context(), crew, o.ID)
	s.Require().NoError(err)
	s.Len(d.Workers, 2)
	s.Len(d.Products, 1)

	outsider := access.Actor{UserID: "w9", Role: "worker", ShopName: shop}
	_, err = s.service.Get(s.T().Context(), outsider, o.ID)
	s.True(errors.Is(err, core.ErrForbidden))

	otherShop := access.Actor{UserID: "x", Role: access.RoleOwner, ShopName: "Elsewhere"}
	_, err = s.service.Get(s.T().Context(), otherShop, o.ID)
	s.True(errors.Is(err, core.ErrForbidden))
}

func (s *OrderLedgerTestSuite) TestDeleteMissingOrder() {
	err := s.service.Delete(s.T().Context(), s.owner, "missing")

	appErr, ok := core.AsAppError(err)
	s.Require().True(ok)
	s.Equal("Order not found", appErr.Message)
}

type ledgerState struct {
	Employees map[string][3]string
	Clients   map[string][5]string
	Salaries  int
}

// snapshot renders amounts as strings so 0 and 0.00 compare equal.
func (s *OrderLedgerTestSuite) snapshot() ledgerState {
	st := ledgerState{
		Employees: map[string][3]string{},
		Clients:   map[string][5]string{},
		Salaries:  len(s.book.Salaries),
	}
	for id, e := range s.book.Employees {
		st.Employees[id] = [3]string{
			e.TotalEarnings.StringFixed(2),
			e.PaidSalary.StringFixed(2),
			e.RemainingSalary.StringFixed(2),
		}
	}
	for id, c := range s.book.Clients {
		st.Clients[id] = [5]string{
			c.Due.StringFixed(2),
			c.Received.StringFixed(2),
			c.Pending.StringFixed(2),
			decimal.NewFromInt(int64(c.Orders)).String(),
			decimal.NewFromInt(int64(c.Projects)).String(),
		}
	}
	return st
}
