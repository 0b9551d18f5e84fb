// AngelaMos | 2026
// entity.go

package salary

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	TypeOrderWork     = "order_work"
	TypeTransportWork = "transport_work"
	TypeEditingWork   = "editing_work"
	TypeManual        = "manual"
)

// Salary is one unit of owed compensation. Seq breaks ties between rows
// created in the same instant so payouts stay oldest first.
type Salary struct {
	ID               string          `db:"id"`
	Seq              int64           `db:"seq"`
	EmployeeID       string          `db:"employee_id"`
	Amount           decimal.Decimal `db:"amount"`
	SalaryType       string          `db:"salary_type"`
	RelatedOrderID   *string         `db:"related_order_id"`
	RelatedProjectID *string         `db:"related_project_id"`
	Description      string          `db:"description"`
	WorkDate         time.Time       `db:"work_date"`
	IsPaid           bool            `db:"is_paid"`
	PaidDate         *time.Time      `db:"paid_date"`
	CreatedAt        time.Time       `db:"created_at"`
	UpdatedAt        time.Time       `db:"updated_at"`
}

type SalaryWithEmployee struct {
	Salary
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
	Role      string `db:"role"`
	ShopName  string `db:"shop_name"`
}

// Earned builds an unpaid entry for work done on workDate.
func Earned(
	employeeID string,
	amount decimal.Decimal,
	salaryType, description string,
	workDate time.Time,
) *Salary {
	return &Salary{
		ID:          uuid.New().String(),
		EmployeeID:  employeeID,
		Amount:      amount,
		SalaryType:  salaryType,
		Description: description,
		WorkDate:    workDate,
	}
}

func (s *Salary) ForOrder(orderID string) *Salary {
	s.RelatedOrderID = &orderID
	return s
}

func (s *Salary) ForProject(projectID string) *Salary {
	s.RelatedProjectID = &projectID
	return s
}

// Summary totals are computed from the rows, never from the cached
// columns on the user.
type Summary struct {
	TotalEarnings   decimal.Decimal
	PaidSalary      decimal.Decimal
	RemainingSalary decimal.Decimal
	Salaries        []Salary
}

func Summarize(rows []Salary) Summary {
	sum := Summary{
		TotalEarnings: decimal.Zero,
		PaidSalary:    decimal.Zero,
		Salaries:      rows,
	}

	for _, r := range rows {
		sum.TotalEarnings = sum.TotalEarnings.Add(r.Amount)
		if r.IsPaid {
			sum.PaidSalary = sum.PaidSalary.Add(r.Amount)
		}
	}
	sum.RemainingSalary = sum.TotalEarnings.Sub(sum.PaidSalary)

	if sum.Salaries == nil {
		sum.Salaries = []Salary{}
	}

	return sum
}
