// AngelaMos | 2026
// service.go

package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/carterperez-dev/studio-ledger/internal/access"
	"github.com/carterperez-dev/studio-ledger/internal/auth"
	"github.com/carterperez-dev/studio-ledger/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetByID(
	ctx context.Context,
	id string,
) (*auth.UserInfo, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return toUserInfo(user), nil
}

func (s *Service) GetByEmail(
	ctx context.Context,
	email string,
) (*auth.UserInfo, error) {
	user, err := s.repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, err
	}

	return toUserInfo(user), nil
}

func (s *Service) EmailExists(
	ctx context.Context,
	email string,
) (bool, error) {
	return s.repo.ExistsByEmail(ctx, normalizeEmail(email))
}

// Create records where a converted account came from: an editor created
// from a worker keeps the worker id and the other way round.
func (s *Service) Create(
	ctx context.Context,
	in auth.NewUser,
) (*auth.UserInfo, error) {
	if !ValidRole(in.Role) {
		return nil, core.ValidationError("Invalid role")
	}

	user := &User{
		ID:              uuid.New().String(),
		FirstName:       strings.TrimSpace(in.FirstName),
		LastName:        strings.TrimSpace(in.LastName),
		Email:           normalizeEmail(in.Email),
		PasswordHash:    in.PasswordHash,
		ShopName:        strings.TrimSpace(in.ShopName),
		Role:            in.Role,
		Phone:           in.Phone,
		ProfileComplete: true,
	}

	if in.OldWorkerEditorID != "" {
		origin := in.OldWorkerEditorID
		switch user.Role {
		case RoleEditor:
			user.IsFromWorker = true
			user.OriginalWorkerID = &origin
		case RoleWorker:
			user.IsFromEditor = true
			user.OriginalEditorID = &origin
		}
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return toUserInfo(user), nil
}

func (s *Service) UpdatePassword(
	ctx context.Context,
	userID, passwordHash string,
) error {
	return s.repo.UpdatePassword(ctx, userID, passwordHash)
}

func (s *Service) TouchLastLogin(ctx context.Context, userID string) error {
	return s.repo.TouchLastLogin(ctx, userID)
}

func (s *Service) ListStaff(
	ctx context.Context,
	shopName string,
) ([]auth.UserInfo, error) {
	users, err := s.repo.ListByRoles(ctx, shopName, StaffRoles)
	if err != nil {
		return nil, err
	}

	infos := make([]auth.UserInfo, 0, len(users))
	for i := range users {
		infos = append(infos, *toUserInfo(&users[i]))
	}
	return infos, nil
}

// List returns the shop roster. Owners see everyone, other roles see
// their colleagues but not themselves.
func (s *Service) List(ctx context.Context, actor access.Actor) ([]User, error) {
	scope := access.ListScope(actor)

	switch scope.Scope {
	case access.ScopeShop:
		return s.repo.ListByShop(ctx, scope.ShopName, "")
	case access.ScopeParticipant:
		return s.repo.ListByShop(ctx, scope.ShopName, scope.UserID)
	default:
		return []User{}, nil
	}
}

func (s *Service) ListByRole(
	ctx context.Context,
	actor access.Actor,
	roles []string,
) ([]User, error) {
	if actor.ShopName == "" {
		return []User{}, nil
	}

	return s.repo.ListByRoles(ctx, actor.ShopName, roles)
}

func (s *Service) Statistics(
	ctx context.Context,
	actor access.Actor,
	id string,
) (*StatisticsResponse, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !access.CanAccess(actor, access.Resource{
		ShopName:     user.ShopName,
		Participants: []string{user.ID},
	}) {
		return nil, fmt.Errorf("user statistics: %w", core.ErrForbidden)
	}

	stats, err := s.repo.WorkStats(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	resp := ToStatisticsResponse(user, stats)
	return &resp, nil
}

// UpdatePerformance is reserved for the shop owner.
func (s *Service) UpdatePerformance(
	ctx context.Context,
	actor access.Actor,
	id string,
	rating decimal.Decimal,
) (*User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if actor.Role != "" && !actor.IsOwner() {
		return nil, fmt.Errorf("update performance: %w", core.ErrForbidden)
	}

	if !access.CanAccess(actor, access.Resource{ShopName: user.ShopName}) {
		return nil, fmt.Errorf("update performance: %w", core.ErrForbidden)
	}

	if err := s.repo.UpdateAccuracy(ctx, user.ID, rating); err != nil {
		return nil, err
	}

	user.AccuracyRating = rating
	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func toUserInfo(u *User) *auth.UserInfo {
	return &auth.UserInfo{
		ID:           u.ID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		ShopName:     u.ShopName,
		Phone:        u.Phone,
		TokenVersion: u.TokenVersion,
	}
}

var _ auth.UserProvider = (*Service)(nil)
