// AngelaMos | 2026
// service_test.go

package auth_test

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/carterperez-dev/studio-ledger/internal/auth"
	"github.com/carterperez-dev/studio-ledger/internal/auth/mocks"
	"github.com/carterperez-dev/studio-ledger/internal/config"
	"github.com/carterperez-dev/studio-ledger/internal/core"
)

type AuthServiceTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockUsers     *mocks.MockUserProvider
	mockShops     *mocks.MockShopRepository
	mockBlacklist *mocks.MockBlacklist
	jwt           *auth.JWTManager
	service       *auth.Service
}

func TestAuthServiceSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

func (s *AuthServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUsers = mocks.NewMockUserProvider(s.mockCtrl)
	s.mockShops = mocks.NewMockShopRepository(s.mockCtrl)
	s.mockBlacklist = mocks.NewMockBlacklist(s.mockCtrl)

	dir := s.T().TempDir()
	privPath := filepath.Join(dir, "private.pem")
	pubPath := filepath.Join(dir, "public.pem")
	s.Require().NoError(auth.GenerateKeyPair(privPath, pubPath))

	jwtManager, err := auth.NewJWTManager(config.JWTConfig{
		PrivateKeyPath:    privPath,
		PublicKeyPath:     pubPath,
		AccessTokenExpire: time.Hour,
		Issuer:            "studio-ledger",
		Audience:          "studio-ledger-api",
	})
	s.Require().NoError(err)
	s.jwt = jwtManager

	s.service = auth.NewService(s.jwt, s.mockUsers, s.mockShops, s.mockBlacklist)
}

func (s *AuthServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *AuthServiceTestSuite) TestRegisterRejectsExistingEmail() {
	email := gofakeit.Email()
	s.mockUsers.EXPECT().EmailExists(gomock.Any(), email).Return(true, nil)

	_, err := s.service.Register(s.T().Context(), auth.RegisterRequest{
		FirstName: gofakeit.FirstName(),
		Email:     email,
		Password:  "secret123",
		ShopName:  "Drone Masters",
		Role:      "worker",
	})

	s.True(errors.Is(err, auth.ErrEmailExists))
}

func (s *AuthServiceTestSuite) TestRegisterWithoutPassword() {
	email := gofakeit.Email()
	s.mockUsers.EXPECT().EmailExists(gomock.Any(), email).Return(false, nil)
	s.mockUsers.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, in auth.NewUser) (*auth.UserInfo, error) {
			s.Nil(in.PasswordHash)
			s.Equal("e-1", in.OldWorkerEditorID)
			return &auth.UserInfo{ID: "u1", Email: in.Email, Role: in.Role}, nil
		})

	user, err := s.service.Register(s.T().Context(), auth.RegisterRequest{
		FirstName:         "Lena",
		Email:             email,
		ShopName:          "Drone Masters",
		Role:              "worker",
		OldWorkerEditorID: " e-1 ",
	})

	s.Require().NoError(err)
	s.Equal("u1", user.ID)
}

func (s *AuthServiceTestSuite) TestLoginExternalAccount() {
	s.mockUsers.EXPECT().GetByEmail(gomock.Any(), "g@example.com").
		Return(&auth.UserInfo{ID: "u1"}, nil)

	_, err := s.service.Login(s.T().Context(), auth.LoginRequest{
		Email:    "g@example.com",
		Password: "whatever1",
	})

	s.True(errors.Is(err, auth.ErrExternalAccount))
}

func (s *AuthServiceTestSuite) TestLoginUnknownEmail() {
	s.mockUsers.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).
		Return(nil, core.ErrNotFound)

	_, err := s.service.Login(s.T().Context(), auth.LoginRequest{
		Email:    gofakeit.Email(),
		Password: "whatever1",
	})

	s.True(errors.Is(err, auth.ErrInvalidCredentials))
}

func (s *AuthServiceTestSuite) TestLoginIssuesVerifiableToken() {
	hash, err := core.HashPassword("correct-horse")
	s.Require().NoError(err)

	s.mockUsers.EXPECT().GetByEmail(gomock.Any(), "o@example.com").
		Return(&auth.UserInfo{
			ID:           "u-owner",
			Email:        "o@example.com",
			PasswordHash: &hash,
			Role:         "owner",
			ShopName:     "LED Vision Pro",
		}, nil)
	s.mockUsers.EXPECT().TouchLastLogin(gomock.Any(), "u-owner").Return(nil)

	resp, err := s.service.Login(s.T().Context(), auth.LoginRequest{
		Email:    "o@example.com",
		Password: "correct-horse",
	})
	s.Require().NoError(err)
	s.Equal("Login successful", resp.Message)
	s.Equal("LED Vision Pro", resp.User.ShopName)

	s.mockBlacklist.EXPECT().IsRevoked(gomock.Any(), gomock.Any()).Return(false, nil)

	claims, err := s.service.VerifyAccessToken(s.T().Context(), resp.Tokens.AccessToken)
	s.Require().NoError(err)
	s.Equal("u-owner", claims.UserID)
	s.Equal("owner", claims.Role)
	s.Equal("LED Vision Pro", claims.ShopName)
	s.NotEmpty(claims.TokenID)
}

func (s *AuthServiceTestSuite) TestVerifyRejectsRevokedToken() {
	issued, err := s.jwt.CreateAccessToken(auth.AccessTokenClaims{
		UserID:   "u1",
		Role:     "worker",
		ShopName: "S",
	})
	s.Require().NoError(err)

	s.mockBlacklist.EXPECT().IsRevoked(gomock.Any(), issued.ID).Return(true, nil)

	_, err = s.service.VerifyAccessToken(s.T().Context(), issued.Token)

	s.True(errors.Is(err, core.ErrTokenRevoked))
}

func (s *AuthServiceTestSuite) TestListShopsSeedsDefaults() {
	gomock.InOrder(
		s.mockShops.EXPECT().ListActiveNames(gomock.Any()).Return([]string{}, nil),
		s.mockShops.EXPECT().SeedDefaults(gomock.Any(), auth.DefaultShops).Return(nil),
		s.mockShops.EXPECT().ListActiveNames(gomock.Any()).Return([]string{"Creative Studios", "Drone Masters"}, nil),
	)

	shops, err := s.service.ListShops(s.T().Context())

	s.Require().NoError(err)
	s.Equal([]auth.ShopName{{Name: "Creative Studios"}, {Name: "Drone Masters"}}, shops)
}

func (s *AuthServiceTestSuite) TestListShopsMergesUserShops() {
	s.mockShops.EXPECT().ListActiveNames(gomock.Any()).Return([]string{"B Shop", "A Shop"}, nil)
	s.mockShops.EXPECT().ListUserShopNames(gomock.Any()).Return([]string{"A Shop", "C Shop"}, nil)

	shops, err := s.service.ListShops(s.T().Context())

	s.Require().NoError(err)
	s.Equal([]auth.ShopName{{Name: "A Shop"}, {Name: "B Shop"}, {Name: "C Shop"}}, shops)
}

func (s *AuthServiceTestSuite) TestCreateShopOwnerCollision() {
	s.mockShops.EXPECT().FindByName(gomock.Any(), "Drone Masters").Return(nil, core.ErrNotFound)
	s.mockShops.EXPECT().FindOwner(gomock.Any(), "Drone Masters").
		Return(&auth.ShopOwner{ID: "o1", Email: "boss@example.com"}, nil)

	_, err := s.service.CreateShop(s.T().Context(), auth.CreateShopRequest{
		Name:       "  Drone Masters ",
		OwnerEmail: "new@example.com",
		OwnerName:  "New Owner",
	})

	var exists *auth.ShopExistsError
	s.Require().True(errors.As(err, &exists))
	s.Equal("boss@example.com", exists.ExistingOwner)
}

func (s *AuthServiceTestSuite) TestCreateShopNameCollisionIgnoresCase() {
	s.mockShops.EXPECT().FindByName(gomock.Any(), "NEON NIGHTS").
		Return(&auth.Shop{ID: "s1", Name: "Neon Nights", IsActive: true}, nil)

	_, err := s.service.CreateShop(s.T().Context(), auth.CreateShopRequest{
		Name:       "NEON NIGHTS",
		OwnerEmail: gofakeit.Email(),
		OwnerName:  gofakeit.Name(),
	})

	var exists *auth.ShopExistsError
	s.Require().True(errors.As(err, &exists))
	s.Empty(exists.ExistingOwner)
	s.Contains(exists.Message, "already exists")
}

func (s *AuthServiceTestSuite) TestCreateShopRequiresOwner() {
	_, err := s.service.CreateShop(s.T().Context(), auth.CreateShopRequest{Name: "X"})

	appErr, ok := core.AsAppError(err)
	s.Require().True(ok)
	s.Equal("Owner email and name are required", appErr.Message)
}

func (s *AuthServiceTestSuite) TestCreateShopDefaultsBusinessType() {
	s.mockShops.EXPECT().FindByName(gomock.Any(), "Neon Nights").Return(nil, core.ErrNotFound)
	s.mockShops.EXPECT().FindOwner(gomock.Any(), "Neon Nights").Return(nil, core.ErrNotFound)
	s.mockShops.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	shop, err := s.service.CreateShop(s.T().Context(), auth.CreateShopRequest{
		Name:       "Neon Nights",
		OwnerEmail: "o@example.com",
		OwnerName:  "Owner",
	})

	s.Require().NoError(err)
	s.Equal(auth.BusinessMixed, shop.BusinessType)
	s.Equal("o@example.com", shop.CreatedBy)
}
