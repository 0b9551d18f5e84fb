// AngelaMos | 2026
// service.go

package salary

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
)

// Stores binds the repositories to whatever connection or transaction
// the service is currently using.
type Stores struct {
	Salaries  func(db core.DBTX) Repository
	Employees func(db core.DBTX) ledger.EmployeeAggregates
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

// WithClock replaces the time source used for paid dates.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Accrue inserts an unpaid entry and raises the employee's earnings in
// the caller's transaction. Order and project creation use it too. The
// employee has to belong to shopName.
func Accrue(
	ctx context.Context,
	salaries Repository,
	employees ledger.EmployeeAggregates,
	shopName string,
	entry *Salary,
) error {
	e, err := employees.Employee(ctx, entry.EmployeeID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return core.ValidationError(fmt.Sprintf("Employee %s not found", entry.EmployeeID))
		}
		return err
	}
	if e.ShopName != shopName {
		return core.ForbiddenError(fmt.Sprintf("Employee %s belongs to another shop", entry.EmployeeID))
	}

	if err := employees.AddEarnings(ctx, entry.EmployeeID, entry.Amount); err != nil {
		return err
	}

	return salaries.Create(ctx, entry)
}

func (s *Service) List(
	ctx context.Context,
	actor access.Actor,
) ([]SalaryWithEmployee, error) {
	return s.stores.Salaries(s.db).List(ctx, access.ListScope(actor))
}

// MySalary answers with an empty summary for unknown employees.
func (s *Service) MySalary(
	ctx context.Context,
	actor access.Actor,
	employeeID string,
) (Summary, error) {
	if employeeID == "" {
		return Summarize(nil), nil
	}

	employee, err := s.stores.Employees(s.db).Employee(ctx, employeeID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return Summarize(nil), nil
		}
		return Summary{}, err
	}

	if !actor.IsOwner() && !access.CanAccess(actor, access.Resource{ShopName: employee.ShopName}) {
		return Summary{}, core.ForbiddenError("")
	}

	rows, err := s.stores.Salaries(s.db).ListByEmployee(ctx, employeeID)
	if err != nil {
		return Summary{}, err
	}

	return Summarize(rows), nil
}

// Create adds a manual entry. Only an owner may do it, and only for an
// employee of the owner's shop.
func (s *Service) Create(
	ctx context.Context,
	actor access.Actor,
	req CreateSalaryRequest,
) (*Salary, error) {
	if actor.ShopName == "" || (actor.Role != "" && !actor.IsOwner()) {
		return nil, core.ForbiddenError("")
	}

	salaryType := req.SalaryType
	if salaryType == "" {
		salaryType = TypeManual
	}

	entry := Earned(req.EmployeeID, req.Amount, salaryType, req.Description, s.now())
	if req.RelatedOrder != "" {
		entry.ForOrder(req.RelatedOrder)
	}
	if req.RelatedProject != "" {
		entry.ForProject(req.RelatedProject)
	}

	err := s.tx.WithinTx(ctx, func(tx core.DBTX) error {
		return Accrue(ctx, s.stores.Salaries(tx), s.stores.Employees(tx), actor.ShopName, entry)
	})
	if err != nil {
		return nil, err
	}

	return entry, nil
}

// Pay spends req.Amount on the employee's unpaid entries, oldest first.
// The employee row is locked for the whole transaction so two payouts
// for the same person cannot interleave.
func (s *Service) Pay(
	ctx context.Context,
	actor access.Actor,
	req PayRequest,
) (*PayResult, error) {
	if req.EmployeeID == "" || !req.Amount.IsPositive() {
		return nil, core.ValidationError("Employee ID and amount are required")
	}

	if actor.Role != "" && !actor.IsOwner() {
		return nil, core.ForbiddenError("")
	}

	ctx, span := core.StartSpan(ctx, "salary.pay",
		attribute.String("employee.id", req.EmployeeID),
		attribute.String("amount", req.Amount.String()),
	)
	defer span.End()

	shopName := req.ShopName
	if shopName == "" {
		shopName = actor.ShopName
	}

	var result PayResult
	err := s.tx.WithinTx(ctx, func(tx core.DBTX) error {
		employees := s.stores.Employees(tx)
		salaries := s.stores.Salaries(tx)

		employee, err := employees.LockEmployee(ctx, req.EmployeeID)
		if err != nil {
			if errors.Is(err, core.ErrNotFound) {
				return core.NotFoundError("Employee")
			}
			return err
		}

		if shopName != "" && employee.ShopName != shopName {
			return core.ForbiddenError("")
		}

		unpaid, err := salaries.ListUnpaidForUpdate(ctx, employee.ID)
		if err != nil {
			return err
		}

		alloc := Allocate(unpaid, req.Amount)
		paidAt := s.now()

		if err := salaries.MarkPaid(ctx, alloc.PaidIDs(), paidAt); err != nil {
			return err
		}

		if alloc.Split != nil {
			if err := applySplit(ctx, salaries, *alloc.Split, paidAt); err != nil {
				return err
			}
		}

		if alloc.Applied.IsPositive() {
			if err := employees.RecordPayout(ctx, employee.ID, alloc.Applied); err != nil {
				return err
			}
		}

		result = PayResult{PaidAmount: alloc.Applied, PaidSalaries: alloc.Count()}
		return nil
	})
	if err != nil {
		core.SetSpanError(ctx, err)
		return nil, err
	}

	core.AddSpanEvent(ctx, "salary.paid",
		attribute.String("applied", result.PaidAmount.String()),
		attribute.Int("rows", result.PaidSalaries),
	)

	return &result, nil
}

func applySplit(ctx context.Context, salaries Repository, split Split, paidAt time.Time) error {
	src := split.Source

	paid := &Salary{
		ID:               uuid.New().String(),
		EmployeeID:       src.EmployeeID,
		Amount:           split.Covered,
		SalaryType:       src.SalaryType,
		RelatedOrderID:   src.RelatedOrderID,
		RelatedProjectID: src.RelatedProjectID,
		Description:      "Partial payment: " + src.Description,
		WorkDate:         src.WorkDate,
		IsPaid:           true,
		PaidDate:         &paidAt,
	}

	if err := salaries.Create(ctx, paid); err != nil {
		return err
	}

	return salaries.Reduce(ctx, src.ID, split.Covered)
}

// PayEntry settles one entry as a whole, with no splitting.
func (s *Service) PayEntry(
	ctx context.Context,
	actor access.Actor,
	id string,
) error {
	if actor.Role != "" && !actor.IsOwner() {
		return core.ForbiddenError("")
	}

	return s.tx.WithinTx(ctx, func(tx core.DBTX) error {
		employees := s.stores.Employees(tx)
		salaries := s.stores.Salaries(tx)

		entry, err := salaries.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, core.ErrNotFound) {
				return core.NotFoundError("Salary entry")
			}
			return err
		}

		employee, err := employees.LockEmployee(ctx, entry.EmployeeID)
		if err != nil {
			if errors.Is(err, core.ErrNotFound) {
				return core.NotFoundError("Employee")
			}
			return err
		}

		if !access.CanAccess(actor, access.Resource{ShopName: employee.ShopName}) {
			return core.ForbiddenError("")
		}

		entry, err = salaries.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}

		if entry.IsPaid {
			return core.ValidationError("Salary already paid")
		}

		if err := salaries.MarkPaid(ctx, []string{entry.ID}, s.now()); err != nil {
			return err
		}

		return employees.RecordPayout(ctx, entry.EmployeeID, entry.Amount)
	})
}

// Clawback removes the entries tied to an order or project and takes the
// listed amounts back out of each employee's earnings.
func Clawback(
	ctx context.Context,
	employees ledger.EmployeeAggregates,
	payouts map[string]decimal.Decimal,
) error {
	for employeeID, amount := range payouts {
		if amount.IsZero() {
			continue
		}
		err := employees.AddEarnings(ctx, employeeID, amount.Neg())
		if err != nil && !errors.Is(err, core.ErrNotFound) {
			return err
		}
	}
	return nil
}
