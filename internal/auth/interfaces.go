// AngelaMos | 2026
// interfaces.go

package auth

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"
)

type UserInfo struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	PasswordHash *string
	Role         string
	ShopName     string
	Phone        string
	TokenVersion int
}

type NewUser struct {
	FirstName         string
	LastName          string
	Email             string
	PasswordHash      *string
	Role              string
	ShopName          string
	Phone             string
	OldWorkerEditorID string
}

// UserProvider is satisfied by the user service.
type UserProvider interface {
	GetByEmail(ctx context.Context, email string) (*UserInfo, error)
	GetByID(ctx context.Context, id string) (*UserInfo, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, in NewUser) (*UserInfo, error)
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
	TouchLastLogin(ctx context.Context, userID string) error
	ListStaff(ctx context.Context, shopName string) ([]UserInfo, error)
}

type ShopRepository interface {
	ListActiveNames(ctx context.Context) ([]string, error)
	ListUserShopNames(ctx context.Context) ([]string, error)
	SeedDefaults(ctx context.Context, shops []Shop) error
	FindByName(ctx context.Context, name string) (*Shop, error)
	FindOwner(ctx context.Context, shopName string) (*ShopOwner, error)
	Create(ctx context.Context, shop *Shop) error
}

// Blacklist holds revoked access token ids until they would have expired.
type Blacklist interface {
	Revoke(ctx context.Context, tokenID string, until time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
