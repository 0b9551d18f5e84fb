// AngelaMos | 2026
// dto.go

package auth

import (
	"time"
)

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,max=128"`
}

// RegisterRequest allows an empty password for accounts that sign in
// through an external provider.
type RegisterRequest struct {
	FirstName         string `json:"firstName"         validate:"required,max=100"`
	LastName          string `json:"lastName"          validate:"max=100"`
	Email             string `json:"email"             validate:"required,email,max=255"`
	Password          string `json:"password"          validate:"omitempty,min=6,max=128"`
	ShopName          string `json:"shopName"          validate:"required,max=200"`
	Role              string `json:"role"              validate:"required"`
	Phone             string `json:"phone"             validate:"max=50"`
	IsCreatingShop    bool   `json:"isCreatingShop"`
	OldWorkerEditorID string `json:"oldWorkerEditorId"`
}

type CreateShopRequest struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	BusinessType string `json:"businessType"`
	OwnerEmail   string `json:"ownerEmail"`
	OwnerName    string `json:"ownerName"`
}

type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresIn   int       `json:"expires_in"`
	ExpiresAt   time.Time `json:"expires_at"`
}

type UserResponse struct {
	ID        string `json:"_id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	ShopName  string `json:"shopName"`
	Phone     string `json:"phone"`
}

type LoginResponse struct {
	Message string        `json:"message"`
	User    UserResponse  `json:"user"`
	Tokens  TokenResponse `json:"tokens"`
}

type ShopName struct {
	Name string `json:"name"`
}

type ShopResponse struct {
	ID           string `json:"_id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	BusinessType string `json:"businessType"`
}

type StaffMember struct {
	ID        string `json:"_id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
}

func ToUserResponse(u *UserInfo) UserResponse {
	return UserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Role:      u.Role,
		ShopName:  u.ShopName,
		Phone:     u.Phone,
	}
}

func ToShopResponse(s *Shop) ShopResponse {
	return ShopResponse{
		ID:           s.ID,
		Name:         s.Name,
		Description:  s.Description,
		BusinessType: s.BusinessType,
	}
}
