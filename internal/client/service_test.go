// AngelaMos | 2026
// service_test.go

package client_test

import (
	"errors"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/carterperez-dev/studio-ledger/internal/access"
	"github.com/carterperez-dev/studio-ledger/internal/client"
	"github.com/carterperez-dev/studio-ledger/internal/client/mocks"
	"github.com/carterperez-dev/studio-ledger/internal/core"
)

const shop = "Creative Studios"

type ClientServiceTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	mockRepo *mocks.MockRepository
	service  *client.Service
	owner    access.Actor
}

func TestClientServiceSuite(t *testing.T) {
	suite.Run(t, new(ClientServiceTestSuite))
}

func (s *ClientServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = mocks.NewMockRepository(s.mockCtrl)
	s.service = client.NewService(s.mockRepo)
	s.owner = access.Actor{UserID: "owner-1", Role: access.RoleOwner, ShopName: shop}
}

func (s *ClientServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *ClientServiceTestSuite) TestListIsOwnerOnly() {
	s.mockRepo.EXPECT().ListByShop(gomock.Any(), shop).Return([]client.Client{{ID: "c1"}}, nil)

	clients, err := s.service.List(s.T().Context(), s.owner)
	s.Require().NoError(err)
	s.Len(clients, 1)

	worker := access.Actor{UserID: "w1", Role: "worker", ShopName: shop}
	clients, err = s.service.List(s.T().Context(), worker)
	s.Require().NoError(err)
	s.Empty(clients)

	clients, err = s.service.List(s.T().Context(), access.Actor{})
	s.Require().NoError(err)
	s.Empty(clients)
}

func (s *ClientServiceTestSuite) TestCreateAppliesDefaults() {
	name := gofakeit.Company()

	s.mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, c *client.Client) error {
			s.Equal(client.DefaultClientType, c.ClientType)
			s.Equal(client.DefaultBusinessCategory, c.BusinessCategory)
			s.Equal(client.DefaultPriorityLevel, c.PriorityLevel)
			s.Equal(shop, c.ShopName)
			s.True(c.TotalPaymentsDue.IsZero())
			return nil
		})

	c, err := s.service.Create(s.T().Context(), s.owner, client.CreateClientRequest{
		Name:  "  " + name + " ",
		Phone: gofakeit.Phone(),
	})

	s.Require().NoError(err)
	s.Equal(name, c.Name)
	s.NotEmpty(c.ID)
}

func (s *ClientServiceTestSuite) TestCreateForAnotherShopIsForbidden() {
	_, err := s.service.Create(s.T().Context(), s.owner, client.CreateClientRequest{
		Name:     gofakeit.Company(),
		ShopName: "Elsewhere",
	})

	s.True(errors.Is(err, core.ErrForbidden))
}

func (s *ClientServiceTestSuite) TestUpdateMissingClient() {
	s.mockRepo.EXPECT().GetByID(gomock.Any(), "nope").Return(nil, core.ErrNotFound)

	_, err := s.service.Update(s.T().Context(), s.owner, "nope", client.UpdateClientRequest{Name: "x"})

	appErr, ok := core.AsAppError(err)
	s.Require().True(ok)
	s.Equal("Client not found", appErr.Message)
}

func (s *ClientServiceTestSuite) TestUpdateKeepsTotals() {
	existing := &client.Client{ID: "c1", ShopName: shop, Name: "Old", LifetimeOrders: 3}

	s.mockRepo.EXPECT().GetByID(gomock.Any(), "c1").Return(existing, nil)
	s.mockRepo.EXPECT().
		UpdateContact(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, c *client.Client) error {
			s.Equal("New", c.Name)
			s.Equal(3, c.LifetimeOrders)
			return nil
		})

	c, err := s.service.Update(s.T().Context(), s.owner, "c1", client.UpdateClientRequest{Name: "New"})
	s.Require().NoError(err)
	s.Equal("New", c.Name)
}

func (s *ClientServiceTestSuite) TestDeleteOtherShopIsForbidden() {
	s.mockRepo.EXPECT().GetByID(gomock.Any(), "c1").Return(&client.Client{ID: "c1", ShopName: "Elsewhere"}, nil)

	err := s.service.Delete(s.T().Context(), s.owner, "c1")
	s.True(errors.Is(err, core.ErrForbidden))
}

func (s *ClientServiceTestSuite) TestWorkHistory() {
	c := &client.Client{ID: "c1", ShopName: shop, Name: gofakeit.Company()}
	items := []client.WorkItem{{ID: "o1", Type: client.WorkOrder}, {ID: "p1", Type: client.WorkProject}}

	s.mockRepo.EXPECT().GetByID(gomock.Any(), "c1").Return(c, nil)
	s.mockRepo.EXPECT().WorkHistory(gomock.Any(), "c1").Return(items, nil)

	got, history, err := s.service.WorkHistory(s.T().Context(), s.owner, "c1")
	s.Require().NoError(err)
	s.Equal(c, got)
	s.Len(history, 2)
}
