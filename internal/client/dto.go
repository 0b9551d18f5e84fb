// AngelaMos | 2026
// dto.go

package client

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateClientRequest struct {
	Name             string `json:"name"             validate:"required,max=200"`
	Email            string `json:"email"            validate:"omitempty,email"`
	Phone            string `json:"phone"            validate:"max=40"`
	Address          string `json:"address"          validate:"max=500"`
	ShopName         string `json:"shopName"`
	ClientType       string `json:"clientType"`
	BusinessCategory string `json:"businessCategory"`
	PriorityLevel    string `json:"priorityLevel"`
	Notes            string `json:"notes"            validate:"max=2000"`
}

type UpdateClientRequest struct {
	Name    string `json:"name"    validate:"required,max=200"`
	Email   string `json:"email"   validate:"omitempty,email"`
	Phone   string `json:"phone"   validate:"max=40"`
	Address string `json:"address" validate:"max=500"`
}

type ClientResponse struct {
	ID                      string          `json:"id"`
	ShopName                string          `json:"shop_name"`
	Name                    string          `json:"name"`
	Email                   string          `json:"email"`
	Phone                   string          `json:"phone"`
	Address                 string          `json:"address"`
	ClientType              string          `json:"client_type"`
	BusinessCategory        string          `json:"business_category"`
	PriorityLevel           string          `json:"priority_level"`
	Notes                   string          `json:"notes"`
	TotalPaymentsDue        decimal.Decimal `json:"total_payments_due"`
	ReceivedPayments        decimal.Decimal `json:"received_payments"`
	PendingPayments         decimal.Decimal `json:"pending_payments"`
	LifetimeOrders          int             `json:"lifetime_orders"`
	LifetimeEditingProjects int             `json:"lifetime_editing_projects"`
	CreatedAt               time.Time       `json:"created_at"`
	UpdatedAt               time.Time       `json:"updated_at"`
}

type WorkItemResponse struct {
	ID               string          `json:"id"`
	Type             string          `json:"type"`
	Name             string          `json:"name"`
	TotalAmount      decimal.Decimal `json:"totalAmount"`
	ReceivedPayment  decimal.Decimal `json:"receivedPayment"`
	RemainingPayment decimal.Decimal `json:"remainingPayment"`
	Status           string          `json:"status"`
	Date             time.Time       `json:"date"`
	IsPaid           bool            `json:"isPaid"`
}

type HistoryClient struct {
	ID               string          `json:"_id"`
	Name             string          `json:"name"`
	TotalPaymentsDue decimal.Decimal `json:"totalPaymentsDue"`
	ReceivedPayments decimal.Decimal `json:"receivedPayments"`
	PendingPayments  decimal.Decimal `json:"pendingPayments"`
}

type WorkHistoryResponse struct {
	Client      HistoryClient      `json:"client"`
	WorkHistory []WorkItemResponse `json:"workHistory"`
}

func ToClientResponse(c *Client) ClientResponse {
	return ClientResponse{
		ID:                      c.ID,
		ShopName:                c.ShopName,
		Name:                    c.Name,
		Email:                   c.Email,
		Phone:                   c.Phone,
		Address:                 c.Address,
		ClientType:              c.ClientType,
		BusinessCategory:        c.BusinessCategory,
		PriorityLevel:           c.PriorityLevel,
		Notes:                   c.Notes,
		TotalPaymentsDue:        c.TotalPaymentsDue,
		ReceivedPayments:        c.ReceivedPayments,
		PendingPayments:         c.PendingPayments,
		LifetimeOrders:          c.LifetimeOrders,
		LifetimeEditingProjects: c.LifetimeEditingProjects,
		CreatedAt:               c.CreatedAt,
		UpdatedAt:               c.UpdatedAt,
	}
}

func ToClientResponseList(clients []Client) []ClientResponse {
	out := make([]ClientResponse, 0, len(clients))
	for i := range clients {
		out = append(out, ToClientResponse(&clients[i]))
	}
	return out
}

func ToWorkHistoryResponse(c *Client, items []WorkItem) WorkHistoryResponse {
	history := make([]WorkItemResponse, 0, len(items))
	for _, it := range items {
		history = append(history, WorkItemResponse{
			ID:               it.ID,
			Type:             it.Type,
			Name:             it.Name,
			TotalAmount:      it.TotalAmount,
			ReceivedPayment:  it.ReceivedPayment,
			RemainingPayment: it.RemainingPayment,
			Status:           it.Status,
			Date:             it.Date,
			IsPaid:           it.IsPaid(),
		})
	}

	return WorkHistoryResponse{
		Client: HistoryClient{
			ID:               c.ID,
			Name:             c.Name,
			TotalPaymentsDue: c.TotalPaymentsDue,
			ReceivedPayments: c.ReceivedPayments,
			PendingPayments:  c.PendingPayments,
		},
		WorkHistory: history,
	}
}
