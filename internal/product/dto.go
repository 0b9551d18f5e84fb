// AngelaMos | 2026
// dto.go

package product

import "time"

type CreateProductRequest struct {
	Name string `json:"name" validate:"max=100"`
	Type string `json:"type" validate:"omitempty,oneof=quantity size"`
}

type UpdateProductRequest struct {
	Name     string `json:"name"     validate:"required,max=100"`
	Type     string `json:"type"     validate:"required,oneof=quantity size"`
	IsActive bool   `json:"isActive"`
}

type ProductResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToProductResponse(p *Product) ProductResponse {
	return ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Type:      p.Type,
		IsActive:  p.IsActive,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func ToProductResponseList(products []Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, ToProductResponse(&products[i]))
	}
	return out
}
