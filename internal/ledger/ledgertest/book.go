// AngelaMos | 2026
// book.go

// Package ledgertest keeps employee, client and salary state in memory
// with the same update rules as the SQL implementations. WithinTx
// snapshots the book and restores it when fn fails, so rollback
// behaviour can be asserted without a database.
package ledgertest

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carterperez-dev/studio-ledger/internal/access"
	"github.com/carterperez-dev/studio-ledger/internal/core"
	"github.com/carterperez-dev/studio-ledger/internal/ledger"
	"github.com/carterperez-dev/studio-ledger/internal/salary"
)

type ClientTotals struct {
	ShopName string
	Due      decimal.Decimal
	Received decimal.Decimal
	Pending  decimal.Decimal
	Orders   int
	Projects int
}

type Book struct {
	Employees map[string]ledger.Employee
	Clients   map[string]ClientTotals
	Salaries  []salary.Salary

	seq     int64
	extra   []func() func()
	Commits int
}

func NewBook() *Book {
	return &Book{
		Employees: make(map[string]ledger.Employee),
		Clients:   make(map[string]ClientTotals),
	}
}

func (b *Book) AddEmployee(id, shopName string) {
	b.Employees[id] = ledger.Employee{
		ID:              id,
		Role:            "worker",
		ShopName:        shopName,
		TotalEarnings:   decimal.Zero,
		PaidSalary:      decimal.Zero,
		RemainingSalary: decimal.Zero,
	}
}

func (b *Book) AddClient(id, shopName string) {
	b.Clients[id] = ClientTotals{
		ShopName: shopName,
		Due:      decimal.Zero,
		Received: decimal.Zero,
		Pending:  decimal.Zero,
	}
}

// Track registers extra state for rollback. snapshot is called at the
// start of every transaction and returns a restore func.
func (b *Book) Track(snapshot func() func()) {
	b.extra = append(b.extra, snapshot)
}

func (b *Book) WithinTx(ctx context.Context, fn func(tx core.DBTX) error) error {
	employees := make(map[string]ledger.Employee, len(b.Employees))
	for k, v := range b.Employees {
		employees[k] = v
	}
	clients := make(map[string]ClientTotals, len(b.Clients))
	for k, v := range b.Clients {
		clients[k] = v
	}
	salaries := slices.Clone(b.Salaries)
	seq := b.seq

	restores := make([]func(), 0, len(b.extra))
	for _, snap := range b.extra {
		restores = append(restores, snap())
	}

	if err := fn(nil); err != nil {
		b.Employees = employees
		b.Clients = clients
		b.Salaries = salaries
		b.seq = seq
		for _, restore := range restores {
			restore()
		}
		return err
	}

	b.Commits++
	return nil
}

func (b *Book) Employee(_ context.Context, id string) (*ledger.Employee, error) {
	e, ok := b.Employees[id]
	if !ok {
		return nil, core.ErrNotFound
	}
	return &e, nil
}

func (b *Book) LockEmployee(ctx context.Context, id string) (*ledger.Employee, error) {
	return b.Employee(ctx, id)
}

func (b *Book) AddEarnings(_ context.Context, id string, amount decimal.Decimal) error {
	e, ok := b.Employees[id]
	if !ok {
		return core.ErrNotFound
	}
	e.TotalEarnings = e.TotalEarnings.Add(amount)
	e.RemainingSalary = e.RemainingSalary.Add(amount)
	b.Employees[id] = e
	return nil
}

func (b *Book) RecordPayout(_ context.Context, id string, amount decimal.Decimal) error {
	e, ok := b.Employees[id]
	if !ok {
		return core.ErrNotFound
	}
	e.PaidSalary = e.PaidSalary.Add(amount)
	e.RemainingSalary = e.RemainingSalary.Sub(amount)
	b.Employees[id] = e
	return nil
}

func (b *Book) ApplyClientDelta(_ context.Context, clientID string, d ledger.ClientDelta) error {
	c, ok := b.Clients[clientID]
	if !ok || (d.ShopName != "" && d.ShopName != c.ShopName) {
		return core.ErrNotFound
	}
	c.Due = c.Due.Add(d.Due)
	c.Received = decimal.Max(c.Received.Add(d.Received), decimal.Zero)
	c.Pending = c.Due.Sub(c.Received)
	c.Orders = max(c.Orders+d.Orders, 0)
	c.Projects = max(c.Projects+d.Projects, 0)
	b.Clients[clientID] = c
	return nil
}

// SalaryStore exposes the book's salary rows as a salary.Repository.
func (b *Book) SalaryStore() salary.Repository {
	return &salaryStore{b: b}
}

type salaryStore struct {
	b *Book
}

func (s *salaryStore) Create(_ context.Context, row *salary.Salary) error {
	s.b.seq++
	row.Seq = s.b.seq
	if row.WorkDate.IsZero() {
		row.WorkDate = time.Now()
	}
	s.b.Salaries = append(s.b.Salaries, *row)
	return nil
}

func (s *salaryStore) find(id string) (int, error) {
	for i := range s.b.Salaries {
		if s.b.Salaries[i].ID == id {
			return i, nil
		}
	}
	return -1, core.ErrNotFound
}

func (s *salaryStore) GetByID(_ context.Context, id string) (*salary.Salary, error) {
	i, err := s.find(id)
	if err != nil {
		return nil, err
	}
	row := s.b.Salaries[i]
	return &row, nil
}

func (s *salaryStore) GetByIDForUpdate(ctx context.Context, id string) (*salary.Salary, error) {
	return s.GetByID(ctx, id)
}

func (s *salaryStore) ListUnpaidForUpdate(_ context.Context, employeeID string) ([]salary.Salary, error) {
	rows := []salary.Salary{}
	for _, row := range s.b.Salaries {
		if row.EmployeeID == employeeID && !row.IsPaid {
			rows = append(rows, row)
		}
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Seq < rows[j].Seq })
	return rows, nil
}

func (s *salaryStore) ListByEmployee(_ context.Context, employeeID string) ([]salary.Salary, error) {
	rows := []salary.Salary{}
	for _, row := range s.b.Salaries {
		if row.EmployeeID == employeeID {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

func (s *salaryStore) List(_ context.Context, filter access.ListFilter) ([]salary.SalaryWithEmployee, error) {
	rows := []salary.SalaryWithEmployee{}
	for _, row := range s.b.Salaries {
		e := s.b.Employees[row.EmployeeID]
		switch filter.Scope {
		case access.ScopeShop:
			if e.ShopName != filter.ShopName {
				continue
			}
		case access.ScopeParticipant:
			if row.EmployeeID != filter.UserID {
				continue
			}
		default:
			continue
		}
		rows = append(rows, salary.SalaryWithEmployee{Salary: row, ShopName: e.ShopName, Role: e.Role})
	}
	return rows, nil
}

func (s *salaryStore) MarkPaid(_ context.Context, ids []string, at time.Time) error {
	for _, id := range ids {
		i, err := s.find(id)
		if err != nil || s.b.Salaries[i].IsPaid {
			return fmt.Errorf("mark paid %s: %w", id, core.ErrConflict)
		}
		paidAt := at
		s.b.Salaries[i].IsPaid = true
		s.b.Salaries[i].PaidDate = &paidAt
	}
	return nil
}

func (s *salaryStore) Reduce(_ context.Context, id string, amount decimal.Decimal) error {
	i, err := s.find(id)
	if err != nil {
		return err
	}
	row := &s.b.Salaries[i]
	if row.IsPaid || !row.Amount.GreaterThan(amount) {
		return fmt.Errorf("reduce %s: %w", id, core.ErrConflict)
	}
	row.Amount = row.Amount.Sub(amount)
	return nil
}

func (s *salaryStore) DeleteByOrder(_ context.Context, orderID string) error {
	s.b.Salaries = slices.DeleteFunc(s.b.Salaries, func(row salary.Salary) bool {
		return row.RelatedOrderID != nil && *row.RelatedOrderID == orderID
	})
	return nil
}

func (s *salaryStore) DeleteByProject(_ context.Context, projectID string) error {
	s.b.Salaries = slices.DeleteFunc(s.b.Salaries, func(row salary.Salary) bool {
		return row.RelatedProjectID != nil && *row.RelatedProjectID == projectID
	})
	return nil
}

// EmployeeStore, ClientStore and SalaryFactory have the store factory
// signatures services take.
func (b *Book) EmployeeStore(core.DBTX) ledger.EmployeeAggregates { return b }

func (b *Book) ClientStore(core.DBTX) ledger.ClientAggregates { return b }

func (b *Book) SalaryFactory(core.DBTX) salary.Repository { return b.SalaryStore() }
