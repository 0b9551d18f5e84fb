// AngelaMos | 2026
// service_test.go

package editing_test

import (
	"context"
	"errors"
	"maps"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/carterperez-dev/studio-ledger/internal/access"
	"github.com/carterperez-dev/studio-ledger/internal/core"
	"github.com/carterperez-dev/studio-ledger/internal/editing"
	"github.com/carterperez-dev/studio-ledger/internal/ledger/ledgertest"
	"github.com/carterperez-dev/studio-ledger/internal/salary"
)

const shop = "Creative Studios"

type memProjects struct {
	rows map[string]editing.Project
}

func (m *memProjects) snapshot() func() {
	rows := maps.Clone(m.rows)
	return func() { m.rows = rows }
}

func (m *memProjects) Create(_ context.Context, p *editing.Project) error {
	m.rows[p.ID] = *p
	return nil
}

func (m *memProjects) GetByID(_ context.Context, id string) (*editing.Project, error) {
	p, ok := m.rows[id]
	if !ok {
		return nil, core.ErrNotFound
	}
	return &p, nil
}

func (m *memProjects) GetByIDForUpdate(ctx context.Context, id string) (*editing.Project, error) {
	return m.GetByID(ctx, id)
}

func (m *memProjects) List(_ context.Context, filter access.ListFilter) ([]editing.Project, error) {
	out := []editing.Project{}
	for _, p := range m.rows {
		switch {
		case filter.Scope == access.ScopeShop && p.ShopName == filter.ShopName:
			out = append(out, p)
		case filter.Scope == access.ScopeParticipant && p.ShopName == filter.ShopName && p.EditorID == filter.UserID:
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memProjects) UpdateStatus(_ context.Context, id, status string, at time.Time) (*editing.Project, error) {
	p, ok := m.rows[id]
	if !ok {
		return nil, core.ErrNotFound
	}
	p.Status = status
	if status == editing.StatusCompleted {
		p.CompletionDate = &at
	}
	m.rows[id] = p
	return &p, nil
}

func (m *memProjects) SetReceived(_ context.Context, id string, amount decimal.Decimal) error {
	p, ok := m.rows[id]
	if !ok {
		return core.ErrNotFound
	}
	p.ReceivedPayment = amount
	p.RemainingPayment = p.TotalAmount.Sub(amount)
	m.rows[id] = p
	return nil
}

func (m *memProjects) Delete(_ context.Context, id string) error {
	if _, ok := m.rows[id]; !ok {
		return core.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

type EditingServiceTestSuite struct {
	suite.Suite
	book     *ledgertest.Book
	projects *memProjects
	service  *editing.Service
	owner    access.Actor
	now      time.Time
}

func TestEditingServiceSuite(t *testing.T) {
	suite.Run(t, new(EditingServiceTestSuite))
}

func (s *EditingServiceTestSuite) SetupTest() {
	s.book = ledgertest.NewBook()
	s.book.AddEmployee("ed-1", shop)
	s.book.AddClient("c1", shop)

	s.projects = &memProjects{rows: map[string]editing.Project{}}
	s.book.Track(s.projects.snapshot)

	s.now = time.Date(2026, 8, 3, 10, 0, 0, 0, time.UTC)
	s.owner = access.Actor{UserID: "owner-1", Role: access.RoleOwner, ShopName: shop}

	s.service = editing.NewService(s.book, nil, editing.Stores{
		Projects:  func(core.DBTX) editing.Repository { return s.projects },
		Salaries:  s.book.SalaryFactory,
		Employees: s.book.EmployeeStore,
		Clients:   s.book.ClientStore,
	}).WithClock(func() time.Time { return s.now })
}

func (s *EditingServiceTestSuite) request() editing.CreateProjectRequest {
	end := s.now.AddDate(0, 0, 14)
	return editing.CreateProjectRequest{
		ClientID:             "c1",
		EditorID:             "ed-1",
		ProjectName:          "Wedding film",
		EditingValue:         decimal.NewFromInt(1250),
		TotalAmount:          decimal.NewFromInt(1500),
		CommissionPercentage: decimal.NewFromInt(15),
		ReceivedPayment:      decimal.NewFromInt(500),
		EndDate:              &end,
		ShopName:             shop,
		CreatedBy:            "owner-1",
	}
}

func (s *EditingServiceTestSuite) TestCreateAccruesCommission() {
	p, err := s.service.Create(s.T().Context(), s.owner, s.request())
	s.Require().NoError(err)

	s.Equal(editing.StatusInProgress, p.Status)
	s.True(p.CommissionAmount.Equal(decimal.NewFromInt(188)))
	s.Equal(s.now, p.StartDate)

	e := s.book.Employees["ed-1"]
	s.True(e.TotalEarnings.Equal(decimal.NewFromInt(188)))
	s.True(e.RemainingSalary.Equal(decimal.NewFromInt(188)))

	s.Require().Len(s.book.Salaries, 1)
	row := s.book.Salaries[0]
	s.Equal(salary.TypeEditingWork, row.SalaryType)
	s.Equal("Editing project: Wedding film", row.Description)
	s.Require().NotNil(row.RelatedProjectID)
	s.Equal(p.ID, *row.RelatedProjectID)
	s.Nil(row.RelatedOrderID)

	c := s.book.Clients["c1"]
	s.Equal(1, c.Projects)
	s.Zero(c.Orders)
	s.True(c.Pending.Equal(decimal.NewFromInt(1000)))
}

func (s *EditingServiceTestSuite) TestCreateThenDeleteRestoresLedgers() {
	_, err := s.service.Create(s.T().Context(), s.owner, s.request())
	s.Require().NoError(err)

	employee := s.book.Employees["ed-1"]
	client := s.book.Clients["c1"]

	p, err := s.service.Create(s.T().Context(), s.owner, s.request())
	s.Require().NoError(err)
	s.Require().NoError(s.service.Delete(s.T().Context(), s.owner, p.ID))

	after := s.book.Employees["ed-1"]
	s.True(after.TotalEarnings.Equal(employee.TotalEarnings))
	s.True(after.RemainingSalary.Equal(employee.RemainingSalary))
	s.True(after.PaidSalary.Equal(employee.PaidSalary))

	c := s.book.Clients["c1"]
	s.True(c.Due.Equal(client.Due))
	s.True(c.Received.Equal(client.Received))
	s.True(c.Pending.Equal(client.Pending))
	s.Equal(client.Projects, c.Projects)

	s.Len(s.book.Salaries, 1)
	s.Len(s.projects.rows, 1)
}

func (s *EditingServiceTestSuite) TestDeleteRemovesSalaryRow() {
	p, err := s.service.Create(s.T().Context(), s.owner, s.request())
	s.Require().NoError(err)

	s.Require().NoError(s.service.Delete(s.T().Context(), s.owner, p.ID))
	s.Empty(s.book.Salaries)

	e := s.book.Employees["ed-1"]
	s.True(e.TotalEarnings.IsZero())
	s.True(e.RemainingSalary.Equal(e.TotalEarnings.Sub(e.PaidSalary)))
}

func (s *EditingServiceTestSuite) TestUnknownEditorRollsBack() {
	req := s.request()
	req.EditorID = "ghost"

	_, err := s.service.Create(s.T().Context(), s.owner, req)

	appErr, ok := core.AsAppError(err)
	s.Require().True(ok)
	s.Equal(400, appErr.StatusCode)
	s.Empty(s.projects.rows)
	s.Zero(s.book.Clients["c1"].Projects)
}

func (s *EditingServiceTestSuite) TestUnknownClientRollsBack() {
	req := s.request()
	req.ClientID = "nobody"

	_, err := s.service.Create(s.T().Context(), s.owner, req)

	appErr, ok := core.AsAppError(err)
	s.Require().True(ok)
	s.Equal("Client nobody not found", appErr.Message)
	s.Empty(s.book.Salaries)
	s.True(s.book.Employees["ed-1"].TotalEarnings.IsZero())
}

func (s *EditingServiceTestSuite) TestForeignEditorForbidden() {
	s.book.AddEmployee("ed-9", "Other Shop")

	req := s.request()
	req.EditorID = "ed-9"

	_, err := s.service.Create(s.T().Context(), s.owner, req)

	s.True(errors.Is(err, core.ErrForbidden))
	s.Empty(s.projects.rows)
	s.Empty(s.book.Salaries)
	s.True(s.book.Employees["ed-9"].TotalEarnings.IsZero())
	s.Zero(s.book.Clients["c1"].Projects)
}

func (s *EditingServiceTestSuite) TestForeignClientRejected() {
	s.book.AddClient("c9", "Other Shop")

	req := s.request()
	req.ClientID = "c9"

	_, err := s.service.Create(s.T().Context(), s.owner, req)

	appErr, ok := core.AsAppError(err)
	s.Require().True(ok)
	s.Equal("Client c9 not found", appErr.Message)
	s.Empty(s.projects.rows)
	s.Zero(s.book.Clients["c9"].Projects)
	s.True(s.book.Employees["ed-1"].TotalEarnings.IsZero())
}

func (s *EditingServiceTestSuite) TestCreateForOtherShopForbidden() {
	req := s.request()
	req.ShopName = "Elsewhere"

	_, err := s.service.Create(s.T().Context(), s.owner, req)

	s.True(errors.Is(err, core.ErrForbidden))
	s.Zero(s.book.Commits)
}

func (s *EditingServiceTestSuite) TestUpdatePaymentKeepsClientBalanced() {
	p, err := s.service.Create(s.T().Context(), s.owner, s.request())
	s.Require().NoError(err)

	s.Require().NoError(s.service.UpdatePayment(s.T().Context(), s.owner, p.ID, decimal.NewFromInt(200)))

	s.True(s.projects.rows[p.ID].RemainingPayment.Equal(decimal.NewFromInt(1300)))

	c := s.book.Clients["c1"]
	s.True(c.Received.Equal(decimal.NewFromInt(200)))
	s.True(c.Pending.Equal(c.Due.Sub(c.Received)))
}

func (s *EditingServiceTestSuite) TestUpdatePaymentMissingProject() {
	err := s.service.UpdatePayment(s.T().Context(), s.owner, "missing", decimal.NewFromInt(10))

	appErr, ok := core.AsAppError(err)
	s.Require().True(ok)
	s.Equal("Project not found", appErr.Message)
}

func (s *EditingServiceTestSuite) TestEditorSeesOnlyOwnProjects() {
	s.book.AddEmployee("ed-2", shop)

	_, err := s.service.Create(s.T().Context(), s.owner, s.request())
	s.Require().NoError(err)

	req := s.request()
	req.EditorID = "ed-2"
	other, err := s.service.Create(s.T().Context(), s.owner, req)
	s.Require().NoError(err)

	editor := access.Actor{UserID: "ed-2", Role: "editor", ShopName: shop}
	projects, err := s.service.List(s.T().Context(), editor)
	s.Require().NoError(err)
	s.Require().Len(projects, 1)
	s.Equal(other.ID, projects[0].ID)

	all, err := s.service.List(s.T().Context(), s.owner)
	s.Require().NoError(err)
	s.Len(all, 2)

	stranger := access.Actor{UserID: "ed-1", Role: "editor", ShopName: shop}
	_, err = s.service.UpdateStatus(s.T().Context(), stranger, other.ID, editing.StatusCompleted)
	s.True(errors.Is(err, core.ErrForbidden))

	done, err := s.service.UpdateStatus(s.T().Context(), editor, other.ID, editing.StatusCompleted)
	s.Require().NoError(err)
	s.Require().NotNil(done.CompletionDate)
	s.Equal(s.now, *done.CompletionDate)
}
