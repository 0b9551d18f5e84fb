// AngelaMos | 2026
// handler_test.go

package order_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/studio-ledger/internal/access"
	"github.com/carterperez-dev/studio-ledger/internal/core"
	"github.com/carterperez-dev/studio-ledger/internal/core/coretest"
	"github.com/carterperez-dev/studio-ledger/internal/order"
	"github.com/carterperez-dev/studio-ledger/internal/order/mocks"
	"github.com/carterperez-dev/studio-ledger/internal/report"
)

func passthrough(next http.Handler) http.Handler { return next }

func newRouter(t *testing.T) (*mocks.MockRepository, http.Handler) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)

	svc := order.NewService(&coretest.Transactor{}, nil, order.Stores{
		Orders: func(core.DBTX) order.Repository { return repo },
	})

	r := chi.NewRouter()
	order.NewHandler(svc).RegisterRoutes(r, passthrough)
	return repo, r
}

func ownerQuery() string {
	v := url.Values{}
	v.Set("userId", "owner-1")
	v.Set("userRole", access.RoleOwner)
	v.Set("shopName", shop)
	return "?" + v.Encode()
}

func TestCreateRejectsMissingFields(t *testing.T) {
	_, router := newRouter(t)

	body := `{"clientId":"c1","totalAmount":100}`
	req := httptest.NewRequest(http.MethodPost, "/orders"+ownerQuery(), strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Missing required fields", resp["message"])
}

func TestGetUnknownOrder(t *testing.T) {
	repo, router := newRouter(t)
	repo.EXPECT().GetByID(gomock.Any(), "nope").Return(nil, core.ErrNotFound)

	req := httptest.NewRequest(http.MethodGet, "/orders/nope"+ownerQuery(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Order not found")
}

func TestGetRendersCrew(t *testing.T) {
	repo, router := newRouter(t)

	o := &order.Order{
		ID:               "o1",
		ClientID:         "c1",
		OrderName:        "Stage",
		TotalAmount:      decimal.NewFromInt(500),
		ReceivedPayment:  decimal.NewFromInt(200),
		RemainingPayment: decimal.NewFromInt(300),
		OrderDate:        time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC),
		Status:           order.StatusPending,
		ShopName:         shop,
	}
	repo.EXPECT().GetByID(gomock.Any(), "o1").Return(o, nil)
	repo.EXPECT().Items(gomock.Any(), []string{"o1"}).Return([]order.Item{}, nil)
	repo.EXPECT().Workers(gomock.Any(), []string{"o1"}).Return([]order.Assignment{
		{OrderID: "o1", UserID: "w1", FirstName: "Ana", LastName: "Lee", Payment: decimal.NewFromInt(90)},
	}, nil)
	repo.EXPECT().Transporters(gomock.Any(), []string{"o1"}).Return([]order.Assignment{}, nil)
	repo.EXPECT().Clients(gomock.Any(), []string{"c1"}).Return([]order.ClientSummary{{ID: "c1", Name: "Acme"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/orders/o1"+ownerQuery(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data struct {
			ID               string  `json:"id"`
			RemainingPayment float64 `json:"remaining_payment"`
			Client           struct {
				Name string `json:"name"`
			} `json:"client"`
			Workers []struct {
				Worker struct {
					ID        string `json:"_id"`
					FirstName string `json:"firstName"`
				} `json:"worker"`
				Payment float64 `json:"payment"`
			} `json:"workers"`
			Transporters []any `json:"transporters"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "o1", resp.Data.ID)
	assert.InDelta(t, 300, resp.Data.RemainingPayment, 0.001)
	assert.Equal(t, "Acme", resp.Data.Client.Name)
	require.Len(t, resp.Data.Workers, 1)
	assert.Equal(t, "w1", resp.Data.Workers[0].Worker.ID)
	assert.InDelta(t, 90, resp.Data.Workers[0].Payment, 0.001)
	assert.NotNil(t, resp.Data.Transporters)
	assert.Empty(t, resp.Data.Transporters)
}

func TestListWithoutShopIsEmpty(t *testing.T) {
	repo, router := newRouter(t)
	repo.EXPECT().List(gomock.Any(), access.ListFilter{Scope: access.ScopeNone}).Return([]order.Order{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":[]}`, rec.Body.String())
}

func TestListStorageFailure(t *testing.T) {
	repo, router := newRouter(t)
	repo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))

	req := httptest.NewRequest(http.MethodGet, "/orders"+ownerQuery(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestUpdatePaymentRejectsNegative(t *testing.T) {
	_, router := newRouter(t)

	req := httptest.NewRequest(http.MethodPut, "/orders/o1/payment"+ownerQuery(),
		strings.NewReader(`{"receivedPayment":-5}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExportServesWorkbook(t *testing.T) {
	repo, router := newRouter(t)
	repo.EXPECT().List(gomock.Any(), gomock.Any()).Return([]order.Order{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/orders/export"+ownerQuery(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, report.ContentType, rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "orders")
}
