// AngelaMos | 2026
// dto.go

package salary

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateSalaryRequest struct {
	EmployeeID     string          `json:"employeeId"     validate:"required,uuid"`
	Amount         decimal.Decimal `json:"amount"         validate:"gt=0"`
	SalaryType     string          `json:"salaryType"`
	RelatedOrder   string          `json:"relatedOrder"   validate:"omitempty,uuid"`
	RelatedProject string          `json:"relatedProject" validate:"omitempty,uuid"`
	Description    string          `json:"description"    validate:"max=500"`
}

type PayRequest struct {
	EmployeeID string          `json:"employeeId"`
	Amount     decimal.Decimal `json:"amount"`
	ShopName   string          `json:"shopName"`
}

type PayResult struct {
	PaidAmount   decimal.Decimal
	PaidSalaries int
}

type SalaryResponse struct {
	ID               string          `json:"id"`
	EmployeeID       string          `json:"employee_id"`
	Amount           decimal.Decimal `json:"amount"`
	SalaryType       string          `json:"salary_type"`
	RelatedOrderID   *string         `json:"related_order_id"`
	RelatedProjectID *string         `json:"related_project_id"`
	Description      string          `json:"description"`
	WorkDate         time.Time       `json:"work_date"`
	IsPaid           bool            `json:"is_paid"`
	PaidDate         *time.Time      `json:"paid_date"`
	CreatedAt        time.Time       `json:"created_at"`
	FirstName        string          `json:"first_name,omitempty"`
	LastName         string          `json:"last_name,omitempty"`
	Role             string          `json:"role,omitempty"`
	ShopName         string          `json:"shop_name,omitempty"`
}

type SummaryResponse struct {
	TotalEarnings   decimal.Decimal  `json:"totalEarnings"`
	PaidSalary      decimal.Decimal  `json:"paidSalary"`
	RemainingSalary decimal.Decimal  `json:"remainingSalary"`
	Salaries        []SalaryResponse `json:"salaries"`
}

func ToSalaryResponse(s *Salary) SalaryResponse {
	return SalaryResponse{
		ID:               s.ID,
		EmployeeID:       s.EmployeeID,
		Amount:           s.Amount,
		SalaryType:       s.SalaryType,
		RelatedOrderID:   s.RelatedOrderID,
		RelatedProjectID: s.RelatedProjectID,
		Description:      s.Description,
		WorkDate:         s.WorkDate,
		IsPaid:           s.IsPaid,
		PaidDate:         s.PaidDate,
		CreatedAt:        s.CreatedAt,
	}
}

func ToSalaryResponseList(rows []SalaryWithEmployee) []SalaryResponse {
	out := make([]SalaryResponse, 0, len(rows))
	for i := range rows {
		resp := ToSalaryResponse(&rows[i].Salary)
		resp.FirstName = rows[i].FirstName
		resp.LastName = rows[i].LastName
		resp.Role = rows[i].Role
		resp.ShopName = rows[i].ShopName
		out = append(out, resp)
	}
	return out
}

func ToSummaryResponse(sum Summary) SummaryResponse {
	salaries := make([]SalaryResponse, 0, len(sum.Salaries))
	for i := range sum.Salaries {
		salaries = append(salaries, ToSalaryResponse(&sum.Salaries[i]))
	}

	return SummaryResponse{
		TotalEarnings:   sum.TotalEarnings,
		PaidSalary:      sum.PaidSalary,
		RemainingSalary: sum.RemainingSalary,
		Salaries:        salaries,
	}
}
