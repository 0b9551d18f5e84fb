// AngelaMos | 2026
// dto.go

package user

import (
	"time"

	"github.com/shopspring/decimal"
)

type UpdatePerformanceRequest struct {
	AccuracyRating decimal.Decimal `json:"accuracyRating" validate:"gte=0,lte=100"`
}

type UserResponse struct {
	ID              string          `json:"id"`
	FirstName       string          `json:"first_name"`
	LastName        string          `json:"last_name"`
	Email           string          `json:"email"`
	Role            string          `json:"role"`
	ShopName        string          `json:"shop_name"`
	Phone           string          `json:"phone"`
	TotalEarnings   decimal.Decimal `json:"total_earnings"`
	PaidSalary      decimal.Decimal `json:"paid_salary"`
	RemainingSalary decimal.Decimal `json:"remaining_salary"`
	AccuracyRating  decimal.Decimal `json:"accuracy_rating"`
	CreatedAt       time.Time       `json:"created_at"`
}

// StaffResponse is the short form used by assignment pickers.
type StaffResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
	ShopName  string `json:"shop_name"`
}

type Counter struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Remaining int `json:"remaining"`
}

func newCounter(total, completed int) Counter {
	return Counter{Total: total, Completed: completed, Remaining: total - completed}
}

type StatisticsResponse struct {
	User struct {
		ID   string `json:"id"`
		Name string `json:"name"`
		Role string `json:"role"`
	} `json:"user"`
	Orders   Counter `json:"orders"`
	Projects Counter `json:"projects"`
	Work     Counter `json:"work"`
	Payments struct {
		TotalEarnings   decimal.Decimal `json:"totalEarnings"`
		PaidSalary      decimal.Decimal `json:"paidSalary"`
		RemainingSalary decimal.Decimal `json:"remainingSalary"`
	} `json:"payments"`
}

func ToUserResponse(u *User) UserResponse {
	return UserResponse{
		ID:              u.ID,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		Email:           u.Email,
		Role:            u.Role,
		ShopName:        u.ShopName,
		Phone:           u.Phone,
		TotalEarnings:   u.TotalEarnings,
		PaidSalary:      u.PaidSalary,
		RemainingSalary: u.RemainingSalary,
		AccuracyRating:  u.AccuracyRating,
		CreatedAt:       u.CreatedAt,
	}
}

func ToUserResponseList(users []User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, ToUserResponse(&users[i]))
	}
	return responses
}

func ToStaffResponseList(users []User) []StaffResponse {
	responses := make([]StaffResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, StaffResponse{
			ID:        u.ID,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Role:      u.Role,
			ShopName:  u.ShopName,
		})
	}
	return responses
}

func ToStatisticsResponse(u *User, s WorkStats) StatisticsResponse {
	var resp StatisticsResponse
	resp.User.ID = u.ID
	resp.User.Name = u.FullName()
	resp.User.Role = u.Role

	resp.Orders = newCounter(s.TotalOrders, s.CompletedOrders)
	resp.Projects = newCounter(s.TotalProjects, s.CompletedProjects)
	resp.Work = newCounter(
		s.TotalOrders+s.TotalProjects,
		s.CompletedOrders+s.CompletedProjects,
	)

	resp.Payments.TotalEarnings = s.TotalEarnings
	resp.Payments.PaidSalary = s.PaidSalary
	resp.Payments.RemainingSalary = s.TotalEarnings.Sub(s.PaidSalary)

	return resp
}
