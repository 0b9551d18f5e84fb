// AngelaMos | 2026
// service_test.go

package dashboard_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/studio-ledger/internal/access"
	"github.com/carterperez-dev/studio-ledger/internal/dashboard"
	"github.com/carterperez-dev/studio-ledger/internal/dashboard/mocks"
)

const shop = "Creative Studios"

var (
	now   = time.Date(2026, 10, 19, 9, 15, 0, 0, time.UTC)
	today = dashboard.Day{
		Start: time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC),
	}
)

func newRouter(t *testing.T) (*mocks.MockRepository, http.Handler) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)

	svc := dashboard.NewService(repo, time.UTC).WithClock(func() time.Time { return now })

	r := chi.NewRouter()
	dashboard.NewHandler(svc).RegisterRoutes(r)
	return repo, r
}

func query(userID, role string) string {
	v := url.Values{}
	v.Set("userId", userID)
	v.Set("userRole", role)
	v.Set("shopName", shop)
	return "?" + v.Encode()
}

type alertsBody struct {
	Data []dashboard.Alert `json:"data"`
}

func TestAlertsAllGood(t *testing.T) {
	repo, router := newRouter(t)
	filter := access.ListFilter{Scope: access.ScopeShop, ShopName: shop}
	repo.EXPECT().OrdersDue(gomock.Any(), filter, today).Return([]dashboard.DueOrder{}, nil)
	repo.EXPECT().ProjectsDue(gomock.Any(), filter, today).Return([]dashboard.DueProject{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/dashboard/alerts"+query("owner-1", access.RoleOwner), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body alertsBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, dashboard.AlertInfo, body.Data[0].Type)
	assert.Equal(t, "All Good!", body.Data[0].Title)
}

func TestAlertsForCrewMember(t *testing.T) {
	repo, router := newRouter(t)
	filter := access.ListFilter{Scope: access.ScopeParticipant, ShopName: shop, UserID: "w1"}
	repo.EXPECT().OrdersDue(gomock.Any(), filter, today).Return([]dashboard.DueOrder{{OrderName: "Gala"}}, nil)
	repo.EXPECT().ProjectsDue(gomock.Any(), filter, today).Return([]dashboard.DueProject{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/dashboard/alerts"+query("w1", "worker"), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body alertsBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, dashboard.AlertUrgent, body.Data[0].Type)
	assert.Equal(t, "Your 1 Order Due Today", body.Data[0].Title)
}

func TestAlertsWithoutIdentity(t *testing.T) {
	_, router := newRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/dashboard/alerts?userId=undefined", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body alertsBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "All Good!", body.Data[0].Title)
}

func TestAlertsFailure(t *testing.T) {
	repo, router := newRouter(t)
	repo.EXPECT().OrdersDue(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

	req := httptest.NewRequest(http.MethodGet, "/dashboard/alerts"+query("owner-1", access.RoleOwner), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body alertsBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "System Error", body.Data[0].Title)
}

func TestOwnerStats(t *testing.T) {
	repo, router := newRouter(t)
	repo.EXPECT().ShopTotals(gomock.Any(), shop).Return(&dashboard.ShopTotals{
		RemainingOrders:         3,
		DoneOrders:              7,
		TotalPayment:            decimal.NewFromInt(12000),
		ReceivedPayment:         decimal.NewFromInt(9000),
		ActiveProjects:          2,
		RemainingClientPayments: decimal.NewFromInt(3000),
		WorkerPayments:          decimal.NewFromInt(450),
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/dashboard/stats"+query("owner-1", access.RoleOwner), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data struct {
			RemainingOrders int     `json:"remainingOrders"`
			DoneOrders      int     `json:"doneOrders"`
			WorkerPayments  float64 `json:"workerPayments"`
			TotalEarnings   float64 `json:"totalEarnings"`
			UserRole        string  `json:"userRole"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 3, body.Data.RemainingOrders)
	assert.Equal(t, 7, body.Data.DoneOrders)
	assert.InDelta(t, 450, body.Data.WorkerPayments, 0.001)
	assert.Zero(t, body.Data.TotalEarnings)
	assert.Equal(t, access.RoleOwner, body.Data.UserRole)
}

func TestMemberStatsRemainingFromRows(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	repo.EXPECT().MemberTotals(gomock.Any(), shop, "ed-1").Return(&dashboard.MemberTotals{
		ActiveProjects: 1,
		TotalEarnings:  decimal.NewFromInt(800),
		PaidSalary:     decimal.NewFromInt(300),
	}, nil)

	svc := dashboard.NewService(repo, nil)
	stats, err := svc.Stats(t.Context(), access.Actor{UserID: "ed-1", Role: "editor", ShopName: shop})

	require.NoError(t, err)
	assert.True(t, stats.RemainingSalary.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, 1, stats.ActiveProjects)
	assert.Equal(t, "editor", stats.UserRole)
}

func TestStatsUnknownRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := dashboard.NewService(mocks.NewMockRepository(ctrl), nil)

	stats, err := svc.Stats(t.Context(), access.Actor{})

	require.NoError(t, err)
	assert.Equal(t, "unknown", stats.UserRole)
	assert.True(t, stats.TotalPayment.IsZero())
}
