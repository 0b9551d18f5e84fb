// AngelaMos | 2026
// service_test.go

package transport_test

import (
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/carterperez-dev/studio-ledger/internal/access"
	"github.com/carterperez-dev/studio-ledger/internal/core"
	"github.com/carterperez-dev/studio-ledger/internal/ledger"
	ledgermocks "github.com/carterperez-dev/studio-ledger/internal/ledger/mocks"
	"github.com/carterperez-dev/studio-ledger/internal/transport"
	"github.com/carterperez-dev/studio-ledger/internal/transport/mocks"
)

const shop = "Creative Studios"

var owner = access.Actor{UserID: "owner-1", Role: access.RoleOwner, ShopName: shop}

type TransportServiceTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockRepo      *mocks.MockRepository
	mockEmployees *ledgermocks.MockEmployeeAggregates
	now           time.Time
	service       *transport.Service
}

func TestTransportServiceSuite(t *testing.T) {
	suite.Run(t, new(TransportServiceTestSuite))
}

func (s *TransportServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = mocks.NewMockRepository(s.mockCtrl)
	s.mockEmployees = ledgermocks.NewMockEmployeeAggregates(s.mockCtrl)
	s.now = time.Date(2026, 9, 1, 7, 30, 0, 0, time.UTC)

	s.service = transport.NewService(s.mockRepo, s.mockEmployees).
		WithClock(func() time.Time { return s.now })
}

func (s *TransportServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *TransportServiceTestSuite) record(transporter string) *transport.Transport {
	t := &transport.Transport{ID: "t1", ShopName: shop, Status: transport.StatusPending}
	if transporter != "" {
		t.TransporterID = &transporter
	}
	return t
}

func (s *TransportServiceTestSuite) TestCreateDefaultsDateAndStatus() {
	s.mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, t *transport.Transport) error {
			s.Equal(transport.StatusPending, t.Status)
			s.Equal(s.now, t.TransportDate)
			s.Nil(t.RelatedOrderID)
			s.Nil(t.TransporterID)
			return nil
		})

	t, err := s.service.Create(s.T().Context(), owner, transport.CreateTransportRequest{
		PickupLocation:   "Warehouse",
		DeliveryLocation: "Grand Hall",
		TransportFee:     decimal.NewFromInt(40),
		ShopName:         shop,
		CreatedBy:        "owner-1",
	})

	s.Require().NoError(err)
	s.NotEmpty(t.ID)
}

func (s *TransportServiceTestSuite) TestCreateWithNonTransporterRejected() {
	s.mockEmployees.EXPECT().Employee(gomock.Any(), "w1").
		Return(&ledger.Employee{ID: "w1", Role: "worker", ShopName: shop}, nil)

	_, err := s.service.Create(s.T().Context(), owner, transport.CreateTransportRequest{
		TransporterID:    "w1",
		PickupLocation:   "A",
		DeliveryLocation: "B",
		ShopName:         shop,
		CreatedBy:        "owner-1",
	})

	s.True(errors.Is(err, core.ErrInvalidInput))
}

func (s *TransportServiceTestSuite) TestAssignAcceptsCombinedRole() {
	s.mockRepo.EXPECT().GetByID(gomock.Any(), "t1").Return(s.record(""), nil)
	s.mockEmployees.EXPECT().Employee(gomock.Any(), "d1").
		Return(&ledger.Employee{ID: "d1", Role: "transporter_worker", ShopName: shop}, nil)
	s.mockRepo.EXPECT().Assign(gomock.Any(), "t1", "d1").Return(nil)

	s.Require().NoError(s.service.Assign(s.T().Context(), owner, "t1", "d1"))
}

func (s *TransportServiceTestSuite) TestAssignRejects() {
	tests := []struct {
		name     string
		employee *ledger.Employee
		err      error
	}{
		{name: "unknown user", err: core.ErrNotFound},
		{name: "wrong role", employee: &ledger.Employee{ID: "d1", Role: "editor", ShopName: shop}},
		{name: "other shop", employee: &ledger.Employee{ID: "d1", Role: "transporter", ShopName: "Elsewhere"}},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.mockRepo.EXPECT().GetByID(gomock.Any(), "t1").Return(s.record(""), nil)
			s.mockEmployees.EXPECT().Employee(gomock.Any(), "d1").Return(tt.employee, tt.err)

			err := s.service.Assign(s.T().Context(), owner, "t1", "d1")

			appErr, ok := core.AsAppError(err)
			s.Require().True(ok)
			s.Equal(400, appErr.StatusCode)
			s.Equal("Transporter not found or invalid role", appErr.Message)
		})
	}
}

func (s *TransportServiceTestSuite) TestDeliveredStatusFromAssignedDriver() {
	driver := access.Actor{UserID: "d1", Role: "transporter", ShopName: shop}
	delivered := s.record("d1")
	delivered.Status = transport.StatusDelivered
	delivered.CompletedDate = &s.now

	s.mockRepo.EXPECT().GetByID(gomock.Any(), "t1").Return(s.record("d1"), nil)
	s.mockRepo.EXPECT().UpdateStatus(gomock.Any(), "t1", transport.StatusDelivered, s.now).Return(delivered, nil)

	t, err := s.service.UpdateStatus(s.T().Context(), driver, "t1", transport.StatusDelivered)

	s.Require().NoError(err)
	s.Equal(s.now, *t.CompletedDate)
}

func (s *TransportServiceTestSuite) TestOtherDriverCannotUpdate() {
	other := access.Actor{UserID: "d2", Role: "transporter", ShopName: shop}
	s.mockRepo.EXPECT().GetByID(gomock.Any(), "t1").Return(s.record("d1"), nil)

	_, err := s.service.UpdateStatus(s.T().Context(), other, "t1", transport.StatusDelivered)

	s.True(errors.Is(err, core.ErrForbidden))
}

func (s *TransportServiceTestSuite) TestDeleteIsSoft() {
	s.mockRepo.EXPECT().GetByID(gomock.Any(), "t1").Return(s.record(""), nil)
	s.mockRepo.EXPECT().SoftDelete(gomock.Any(), "t1").Return(nil)

	s.Require().NoError(s.service.Delete(s.T().Context(), owner, "t1"))
}

func (s *TransportServiceTestSuite) TestDeleteMissing() {
	s.mockRepo.EXPECT().GetByID(gomock.Any(), "t9").Return(nil, core.ErrNotFound)

	err := s.service.Delete(s.T().Context(), owner, "t9")

	appErr, ok := core.AsAppError(err)
	s.Require().True(ok)
	s.Equal(404, appErr.StatusCode)
}
