// AngelaMos | 2026
// dto.go

package payment

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreatePaymentRequest struct {
	OrderID       string          `json:"orderId"       validate:"required"`
	ClientID      string          `json:"clientId"      validate:"required"`
	Amount        decimal.Decimal `json:"amount"        validate:"gt=0"`
	PaymentDate   *time.Time      `json:"paymentDate"   validate:"required"`
	PaymentMethod string          `json:"paymentMethod" validate:"max=50"`
	ReceivedBy    string          `json:"receivedBy"    validate:"required"`
	Notes         string          `json:"notes"         validate:"max=2000"`
	ShopName      string          `json:"shopName"      validate:"required"`
}

type ReceiptResponse struct {
	ID            string          `json:"id"`
	OrderID       string          `json:"order_id"`
	ClientID      string          `json:"client_id"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentDate   time.Time       `json:"payment_date"`
	PaymentMethod string          `json:"payment_method"`
	ReceivedBy    string          `json:"received_by"`
	Notes         string          `json:"notes"`
	ShopName      string          `json:"shop_name"`
	CreatedAt     time.Time       `json:"created_at"`
	FirstName     string          `json:"first_name"`
	LastName      string          `json:"last_name"`
	Role          string          `json:"role"`
	OrderName     string          `json:"order_name,omitempty"`
	OrderDate     *time.Time      `json:"order_date,omitempty"`
}

func ToReceiptResponse(r *Receipt) ReceiptResponse {
	return ReceiptResponse{
		ID:            r.ID,
		OrderID:       r.OrderID,
		ClientID:      r.ClientID,
		Amount:        r.Amount,
		PaymentDate:   r.PaymentDate,
		PaymentMethod: r.PaymentMethod,
		ReceivedBy:    r.ReceivedBy,
		Notes:         r.Notes,
		ShopName:      r.ShopName,
		CreatedAt:     r.CreatedAt,
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Role:          r.Role,
		OrderName:     r.OrderName,
		OrderDate:     r.OrderDate,
	}
}

func ToReceiptResponseList(receipts []Receipt) []ReceiptResponse {
	out := make([]ReceiptResponse, 0, len(receipts))
	for i := range receipts {
		out = append(out, ToReceiptResponse(&receipts[i]))
	}
	return out
}
