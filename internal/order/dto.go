// AngelaMos | 2026
// dto.go

package order

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProductLine struct {
	Name     string          `json:"name"     validate:"required,max=100"`
	Quantity int             `json:"quantity" validate:"gte=0"`
	Price    decimal.Decimal `json:"price"    validate:"gte=0"`
	SizeInfo string          `json:"sizeInfo" validate:"max=200"`
}

type WorkerLine struct {
	Worker  string          `json:"worker"  validate:"required"`
	Payment decimal.Decimal `json:"payment" validate:"gte=0"`
}

type TransporterLine struct {
	Transporter string          `json:"transporter" validate:"required"`
	Payment     decimal.Decimal `json:"payment"     validate:"gte=0"`
}

type CreateOrderRequest struct {
	ClientID        string            `json:"clientId"        validate:"required"`
	OrderName       string            `json:"orderName"       validate:"required,max=200"`
	VenuePlace      string            `json:"venuePlace"      validate:"required,max=300"`
	Description     string            `json:"description"     validate:"max=2000"`
	TotalAmount     decimal.Decimal   `json:"totalAmount"     validate:"gt=0"`
	ReceivedPayment decimal.Decimal   `json:"receivedPayment" validate:"gte=0"`
	OrderDate       *time.Time        `json:"orderDate"`
	ShopName        string            `json:"shopName"        validate:"required"`
	CreatedBy       string            `json:"createdBy"       validate:"required"`
	Products        []ProductLine     `json:"products"        validate:"dive"`
	Workers         []WorkerLine      `json:"workers"         validate:"dive"`
	Transporters    []TransporterLine `json:"transporters"    validate:"dive"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,max=50"`
}

type UpdatePaymentRequest struct {
	ReceivedPayment decimal.Decimal `json:"receivedPayment" validate:"gte=0"`
}

type ItemResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	SizeInfo string          `json:"size_info"`
}

type PersonRef struct {
	ID        string `json:"_id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	ShopName  string `json:"shopName"`
}

type WorkerResponse struct {
	Worker  PersonRef       `json:"worker"`
	Payment decimal.Decimal `json:"payment"`
}

type TransporterResponse struct {
	Transporter PersonRef       `json:"transporter"`
	Payment     decimal.Decimal `json:"payment"`
}

type ClientResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type OrderResponse struct {
	ID               string          `json:"id"`
	ClientID         string          `json:"client_id"`
	OrderName        string          `json:"order_name"`
	VenuePlace       string          `json:"venue_place"`
	Description      string          `json:"description"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	ReceivedPayment  decimal.Decimal `json:"received_payment"`
	RemainingPayment decimal.Decimal `json:"remaining_payment"`
	OrderDate        time.Time       `json:"order_date"`
	CompletionDate   *time.Time      `json:"completion_date"`
	Status           string          `json:"status"`
	CreatedBy        string          `json:"created_by"`
	ShopName         string          `json:"shop_name"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

type DetailResponse struct {
	OrderResponse
	Client       *ClientResponse       `json:"client"`
	Products     []ItemResponse        `json:"products"`
	Workers      []WorkerResponse      `json:"workers"`
	Transporters []TransporterResponse `json:"transporters"`
}

func ToOrderResponse(o *Order) OrderResponse {
	return OrderResponse{
		ID:               o.ID,
		ClientID:         o.ClientID,
		OrderName:        o.OrderName,
		VenuePlace:       o.VenuePlace,
		Description:      o.Description,
		TotalAmount:      o.TotalAmount,
		ReceivedPayment:  o.ReceivedPayment,
		RemainingPayment: o.RemainingPayment,
		OrderDate:        o.OrderDate,
		CompletionDate:   o.CompletionDate,
		Status:           o.Status,
		CreatedBy:        o.CreatedBy,
		ShopName:         o.ShopName,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
}

func ToDetailResponse(d *Detail) DetailResponse {
	resp := DetailResponse{OrderResponse: ToOrderResponse(&d.Order)}

	if d.Client != nil {
		resp.Client = &ClientResponse{
			ID:    d.Client.ID,
			Name:  d.Client.Name,
			Email: d.Client.Email,
			Phone: d.Client.Phone,
		}
	}

	resp.Products = make([]ItemResponse, 0, len(d.Products))
	for _, it := range d.Products {
		resp.Products = append(resp.Products, ItemResponse{
			ID:       it.ID,
			Name:     it.Name,
			Quantity: it.Quantity,
			Price:    it.Price,
			SizeInfo: it.SizeInfo,
		})
	}

	resp.Workers = make([]WorkerResponse, 0, len(d.Workers))
	for _, a := range d.Workers {
		resp.Workers = append(resp.Workers, WorkerResponse{Worker: personRef(a), Payment: a.Payment})
	}

	resp.Transporters = make([]TransporterResponse, 0, len(d.Transporters))
	for _, a := range d.Transporters {
		resp.Transporters = append(resp.Transporters, TransporterResponse{Transporter: personRef(a), Payment: a.Payment})
	}

	return resp
}

func personRef(a Assignment) PersonRef {
	return PersonRef{
		ID:        a.UserID,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		ShopName:  a.ShopName,
	}
}

func ToDetailResponseList(details []Detail) []DetailResponse {
	out := make([]DetailResponse, 0, len(details))
	for i := range details {
		out = append(out, ToDetailResponse(&details[i]))
	}
	return out
}
