// AngelaMos | 2026
// handler_test.go

package client_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/studio-ledger/internal/client"
	"github.com/carterperez-dev/studio-ledger/internal/client/mocks"
)

func newRouter(t *testing.T) (*mocks.MockRepository, http.Handler) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)

	r := chi.NewRouter()
	client.NewHandler(client.NewService(repo)).RegisterRoutes(r)
	return repo, r
}

func TestWorkHistoryFlagsPaidItems(t *testing.T) {
	repo, router := newRouter(t)

	day := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	repo.EXPECT().GetByID(gomock.Any(), "c1").Return(&client.Client{
		ID:               "c1",
		ShopName:         shop,
		Name:             "Acme",
		TotalPaymentsDue: decimal.NewFromInt(800),
	}, nil)
	repo.EXPECT().WorkHistory(gomock.Any(), "c1").Return([]client.WorkItem{
		{ID: "o1", Type: client.WorkOrder, TotalAmount: decimal.NewFromInt(500), ReceivedPayment: decimal.NewFromInt(500), Date: day},
		{ID: "p1", Type: client.WorkProject, TotalAmount: decimal.NewFromInt(300), ReceivedPayment: decimal.NewFromInt(100), Date: day},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/clients/c1/work-history?shopName="+strings.ReplaceAll(shop, " ", "+")+"&userRole=owner", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Client struct {
			ID               string  `json:"_id"`
			TotalPaymentsDue float64 `json:"totalPaymentsDue"`
		} `json:"client"`
		WorkHistory []struct {
			ID     string `json:"id"`
			IsPaid bool   `json:"isPaid"`
		} `json:"workHistory"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, "c1", body.Client.ID)
	assert.InDelta(t, 800, body.Client.TotalPaymentsDue, 0.001)
	require.Len(t, body.WorkHistory, 2)
	assert.True(t, body.WorkHistory[0].IsPaid)
	assert.False(t, body.WorkHistory[1].IsPaid)
}

func TestCreateRejectsMissingName(t *testing.T) {
	_, router := newRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/clients/", strings.NewReader(`{"phone":"123"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListForWorkerIsEmptyData(t *testing.T) {
	_, router := newRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/clients/?shopName=Studio&userRole=worker&userId=w1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":[]}`, rec.Body.String())
}
