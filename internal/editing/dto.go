// AngelaMos | 2026
// dto.go

package editing

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateProjectRequest struct {
	ClientID             string          `json:"clientId"             validate:"required"`
	EditorID             string          `json:"editorId"             validate:"required"`
	ProjectName          string          `json:"projectName"          validate:"required,max=200"`
	Description          string          `json:"description"          validate:"max=2000"`
	EditingValue         decimal.Decimal `json:"editingValue"         validate:"gt=0"`
	PendriveIncluded     bool            `json:"pendriveIncluded"`
	PendriveValue        decimal.Decimal `json:"pendriveValue"        validate:"gte=0"`
	TotalAmount          decimal.Decimal `json:"totalAmount"          validate:"gt=0"`
	CommissionPercentage decimal.Decimal `json:"commissionPercentage" validate:"gt=0,lte=100"`
	StartDate            *time.Time      `json:"startDate"`
	EndDate              *time.Time      `json:"endDate"              validate:"required"`
	ReceivedPayment      decimal.Decimal `json:"receivedPayment"      validate:"gte=0"`
	ShopName             string          `json:"shopName"             validate:"required"`
	CreatedBy            string          `json:"createdBy"            validate:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,max=50"`
}

type UpdatePaymentRequest struct {
	ReceivedPayment decimal.Decimal `json:"receivedPayment" validate:"gte=0"`
}

type ProjectResponse struct {
	ID                   string          `json:"id"`
	ClientID             string          `json:"client_id"`
	EditorID             string          `json:"editor_id"`
	ProjectName          string          `json:"project_name"`
	Description          string          `json:"description"`
	EditingValue         decimal.Decimal `json:"editing_value"`
	PendriveIncluded     bool            `json:"pendrive_included"`
	PendriveValue        decimal.Decimal `json:"pendrive_value"`
	TotalAmount          decimal.Decimal `json:"total_amount"`
	ReceivedPayment      decimal.Decimal `json:"received_payment"`
	RemainingPayment     decimal.Decimal `json:"remaining_payment"`
	CommissionPercentage decimal.Decimal `json:"commission_percentage"`
	CommissionAmount     decimal.Decimal `json:"commission_amount"`
	StartDate            time.Time       `json:"start_date"`
	EndDate              time.Time       `json:"end_date"`
	CompletionDate       *time.Time      `json:"completion_date"`
	Status               string          `json:"status"`
	CreatedBy            string          `json:"created_by"`
	ShopName             string          `json:"shop_name"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

func ToProjectResponse(p *Project) ProjectResponse {
	return ProjectResponse{
		ID:                   p.ID,
		ClientID:             p.ClientID,
		EditorID:             p.EditorID,
		ProjectName:          p.ProjectName,
		Description:          p.Description,
		EditingValue:         p.EditingValue,
		PendriveIncluded:     p.PendriveIncluded,
		PendriveValue:        p.PendriveValue,
		TotalAmount:          p.TotalAmount,
		ReceivedPayment:      p.ReceivedPayment,
		RemainingPayment:     p.RemainingPayment,
		CommissionPercentage: p.CommissionPercentage,
		CommissionAmount:     p.CommissionAmount,
		StartDate:            p.StartDate,
		EndDate:              p.EndDate,
		CompletionDate:       p.CompletionDate,
		Status:               p.Status,
		CreatedBy:            p.CreatedBy,
		ShopName:             p.ShopName,
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt,
	}
}

func ToProjectResponseList(projects []Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(projects))
	for i := range projects {
		out = append(out, ToProjectResponse(&projects[i]))
	}
	return out
}
