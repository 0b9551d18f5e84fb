// AngelaMos | 2026
// service.go

package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/carterperez-dev/studio-ledger/internal/core"
	"github.com/carterperez-dev/studio-ledger/internal/middleware"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrExternalAccount    = errors.New("account has no password")
	ErrEmailExists        = errors.New("user already exists")
)

// ShopExistsError is returned when a shop name is taken, either by a
// shop row or by an owner account registered under that name.
type ShopExistsError struct {
	Message       string
	ExistingOwner string
}

func (e *ShopExistsError) Error() string {
	return e.Message
}

type Service struct {
	jwt       *JWTManager
	users     UserProvider
	shops     ShopRepository
	blacklist Blacklist
}

func NewService(
	jwt *JWTManager,
	users UserProvider,
	shops ShopRepository,
	blacklist Blacklist,
) *Service {
	return &Service{
		jwt:       jwt,
		users:     users,
		shops:     shops,
		blacklist: blacklist,
	}
}

func (s *Service) Register(
	ctx context.Context,
	req RegisterRequest,
) (*UserInfo, error) {
	exists, err := s.users.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, ErrEmailExists
	}

	var passwordHash *string
	if req.Password != "" {
		hash, err := core.HashPassword(req.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		passwordHash = &hash
	}

	user, err := s.users.Create(ctx, NewUser{
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Email:             req.Email,
		PasswordHash:      passwordHash,
		Role:              req.Role,
		ShopName:          req.ShopName,
		Phone:             req.Phone,
		OldWorkerEditorID: strings.TrimSpace(req.OldWorkerEditorID),
	})
	if err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func (s *Service) Login(
	ctx context.Context,
	req LoginRequest,
) (*LoginResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			//nolint:errcheck // timing attack prevention - always verify to prevent enumeration
			_, _, _ = core.VerifyPasswordTimingSafe(req.Password, nil)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if user.PasswordHash == nil || *user.PasswordHash == "" {
		return nil, ErrExternalAccount
	}

	valid, newHash, err := core.VerifyPasswordTimingSafe(
		req.Password,
		user.PasswordHash,
	)
	if err != nil {
		return nil, fmt.Errorf("verify password: %w", err)
	}

	if !valid {
		return nil, ErrInvalidCredentials
	}

	if newHash != "" {
		if err := s.users.UpdatePassword(ctx, user.ID, newHash); err != nil {
			slog.Warn("password rehash failed", "user_id", user.ID, "error", err)
		}
	}

	if err := s.users.TouchLastLogin(ctx, user.ID); err != nil {
		return nil, fmt.Errorf("touch last login: %w", err)
	}

	issued, err := s.jwt.CreateAccessToken(AccessTokenClaims{
		UserID:       user.ID,
		Role:         user.Role,
		ShopName:     user.ShopName,
		TokenVersion: user.TokenVersion,
	})
	if err != nil {
		return nil, fmt.Errorf("create access token: %w", err)
	}

	return &LoginResponse{
		Message: "Login successful",
		User:    ToUserResponse(user),
		Tokens: TokenResponse{
			AccessToken: issued.Token,
			TokenType:   "Bearer",
			ExpiresIn:   int(time.Until(issued.ExpiresAt).Seconds()),
			ExpiresAt:   issued.ExpiresAt,
		},
	}, nil
}

func (s *Service) Logout(
	ctx context.Context,
	claims *middleware.AccessTokenClaims,
) error {
	if claims == nil || claims.TokenID == "" {
		return fmt.Errorf("logout: %w", core.ErrUnauthorized)
	}

	return s.blacklist.Revoke(ctx, claims.TokenID, claims.ExpiresAt)
}

// VerifyAccessToken checks the signature and then the revocation list.
func (s *Service) VerifyAccessToken(
	ctx context.Context,
	token string,
) (*middleware.AccessTokenClaims, error) {
	claims, err := s.jwt.VerifyAccessToken(ctx, token)
	if err != nil {
		return nil, err
	}

	revoked, err := s.blacklist.IsRevoked(ctx, claims.TokenID)
	if err != nil {
		return nil, fmt.Errorf("verify token: %w", err)
	}
	if revoked {
		return nil, fmt.Errorf("verify token: %w", core.ErrTokenRevoked)
	}

	return claims, nil
}

// ListShops seeds the default catalogue on first use. After that the
// list is the union of shop rows and shop names users registered with.
func (s *Service) ListShops(ctx context.Context) ([]ShopName, error) {
	names, err := s.shops.ListActiveNames(ctx)
	if err != nil {
		return nil, err
	}

	if len(names) == 0 {
		if err := s.shops.SeedDefaults(ctx, DefaultShops); err != nil {
			return nil, err
		}

		names, err = s.shops.ListActiveNames(ctx)
		if err != nil {
			return nil, err
		}
		return toShopNames(names), nil
	}

	userShops, err := s.shops.ListUserShopNames(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(names)+len(userShops))
	merged := make([]string, 0, len(names)+len(userShops))
	for _, n := range append(names, userShops...) {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		merged = append(merged, n)
	}
	sort.Strings(merged)

	return toShopNames(merged), nil
}

func toShopNames(names []string) []ShopName {
	out := make([]ShopName, 0, len(names))
	for _, n := range names {
		out = append(out, ShopName{Name: n})
	}
	return out
}

func (s *Service) CreateShop(
	ctx context.Context,
	req CreateShopRequest,
) (*Shop, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, core.ValidationError("Shop name is required")
	}

	if req.OwnerEmail == "" || req.OwnerName == "" {
		return nil, core.ValidationError("Owner email and name are required")
	}

	_, err := s.shops.FindByName(ctx, name)
	switch {
	case err == nil:
		return nil, &ShopExistsError{
			Message: "Shop name already exists. Please choose a different name.",
		}
	case !errors.Is(err, core.ErrNotFound):
		return nil, err
	}

	owner, err := s.shops.FindOwner(ctx, name)
	switch {
	case err == nil:
		return nil, &ShopExistsError{
			Message:       "This shop already has an owner. Please choose a different shop name.",
			ExistingOwner: owner.Email,
		}
	case !errors.Is(err, core.ErrNotFound):
		return nil, err
	}

	businessType := req.BusinessType
	if businessType == "" {
		businessType = BusinessMixed
	}

	shop := &Shop{
		ID:           uuid.New().String(),
		Name:         name,
		Description:  req.Description,
		BusinessType: businessType,
		CreatedBy:    req.OwnerEmail,
	}

	if err := s.shops.Create(ctx, shop); err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			return nil, &ShopExistsError{
				Message: "Shop name already exists. Please choose a different name.",
			}
		}
		return nil, err
	}

	return shop, nil
}

func (s *Service) WorkersEditors(
	ctx context.Context,
	shopName string,
) ([]StaffMember, error) {
	users, err := s.users.ListStaff(ctx, shopName)
	if err != nil {
		return nil, err
	}

	staff := make([]StaffMember, 0, len(users))
	for _, u := range users {
		staff = append(staff, StaffMember{
			ID:        u.ID,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Role:      u.Role,
		})
	}
	return staff, nil
}

func (s *Service) UserByEmail(ctx context.Context, email string) (*UserInfo, error) {
	return s.users.GetByEmail(ctx, email)
}

var _ middleware.TokenVerifier = (*Service)(nil)
