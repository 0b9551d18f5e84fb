// AngelaMos | 2026
// dto.go

package transport

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateTransportRequest struct {
	RelatedOrder     string          `json:"relatedOrder"     validate:"omitempty,uuid"`
	RelatedProject   string          `json:"relatedProject"   validate:"omitempty,uuid"`
	ClientID         string          `json:"clientId"         validate:"omitempty,uuid"`
	TransporterID    string          `json:"transporterId"    validate:"omitempty,uuid"`
	PickupLocation   string          `json:"pickupLocation"   validate:"required,max=300"`
	DeliveryLocation string          `json:"deliveryLocation" validate:"required,max=300"`
	Distance         decimal.Decimal `json:"distance"         validate:"gte=0"`
	TransportFee     decimal.Decimal `json:"transportFee"     validate:"gte=0"`
	EquipmentList    string          `json:"equipmentList"    validate:"max=2000"`
	TransportDate    *time.Time      `json:"transportDate"`
	Instructions     string          `json:"instructions"     validate:"max=2000"`
	ShopName         string          `json:"shopName"         validate:"required"`
	CreatedBy        string          `json:"createdBy"        validate:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,max=50"`
}

type AssignRequest struct {
	TransporterID string `json:"transporterId" validate:"required"`
}

type TransportResponse struct {
	ID               string          `json:"id"`
	RelatedOrderID   *string         `json:"related_order_id"`
	RelatedProjectID *string         `json:"related_project_id"`
	ClientID         *string         `json:"client_id"`
	TransporterID    *string         `json:"transporter_id"`
	PickupLocation   string          `json:"pickup_location"`
	DeliveryLocation string          `json:"delivery_location"`
	Distance         decimal.Decimal `json:"distance"`
	TransportFee     decimal.Decimal `json:"transport_fee"`
	EquipmentList    string          `json:"equipment_list"`
	TransportDate    time.Time       `json:"transport_date"`
	Instructions     string          `json:"instructions"`
	Status           string          `json:"status"`
	CompletedDate    *time.Time      `json:"completed_date"`
	ShopName         string          `json:"shop_name"`
	CreatedBy        string          `json:"created_by"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

func ToTransportResponse(t *Transport) TransportResponse {
	return TransportResponse{
		ID:               t.ID,
		RelatedOrderID:   t.RelatedOrderID,
		RelatedProjectID: t.RelatedProjectID,
		ClientID:         t.ClientID,
		TransporterID:    t.TransporterID,
		PickupLocation:   t.PickupLocation,
		DeliveryLocation: t.DeliveryLocation,
		Distance:         t.Distance,
		TransportFee:     t.TransportFee,
		EquipmentList:    t.EquipmentList,
		TransportDate:    t.TransportDate,
		Instructions:     t.Instructions,
		Status:           t.Status,
		CompletedDate:    t.CompletedDate,
		ShopName:         t.ShopName,
		CreatedBy:        t.CreatedBy,
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	}
}

func ToTransportResponseList(rows []Transport) []TransportResponse {
	out := make([]TransportResponse, 0, len(rows))
	for i := range rows {
		out = append(out, ToTransportResponse(&rows[i]))
	}
	return out
}
