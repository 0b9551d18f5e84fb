// AngelaMos | 2026
// handler_test.go

package auth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/studio-ledger/internal/auth"
	"github.com/carterperez-dev/studio-ledger/internal/auth/mocks"
	"github.com/carterperez-dev/studio-ledger/internal/core"
)

func passthrough(next http.Handler) http.Handler { return next }

func newShopRouter(t *testing.T) (*mocks.MockShopRepository, http.Handler) {
	ctrl := gomock.NewController(t)
	shops := mocks.NewMockShopRepository(ctrl)

	svc := auth.NewService(nil, mocks.NewMockUserProvider(ctrl), shops, mocks.NewMockBlacklist(ctrl))

	r := chi.NewRouter()
	auth.NewHandler(svc).RegisterRoutes(r, passthrough, passthrough)
	return shops, r
}

func postShop(router http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/auth/shops", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateShopConflictOnExistingName(t *testing.T) {
	shops, router := newShopRouter(t)
	shops.EXPECT().FindByName(gomock.Any(), "NEON NIGHTS").
		Return(&auth.Shop{ID: "s1", Name: "Neon Nights"}, nil)

	rec := postShop(router, `{"name":"NEON NIGHTS","ownerEmail":"a@b.co","ownerName":"Ana"}`)

	require.Equal(t, http.StatusConflict, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["shopExists"])
	assert.NotContains(t, resp, "existingOwner")
}

func TestCreateShopConflictOnExistingOwner(t *testing.T) {
	shops, router := newShopRouter(t)
	shops.EXPECT().FindByName(gomock.Any(), "neon nights").Return(nil, core.ErrNotFound)
	shops.EXPECT().FindOwner(gomock.Any(), "neon nights").
		Return(&auth.ShopOwner{ID: "o1", Email: "boss@example.com"}, nil)

	rec := postShop(router, `{"name":"neon nights","ownerEmail":"a@b.co","ownerName":"Ana"}`)

	require.Equal(t, http.StatusConflict, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["shopExists"])
	assert.Equal(t, "boss@example.com", resp["existingOwner"])
}

func TestCreateShopCreated(t *testing.T) {
	shops, router := newShopRouter(t)
	shops.EXPECT().FindByName(gomock.Any(), "Neon Nights").Return(nil, core.ErrNotFound)
	shops.EXPECT().FindOwner(gomock.Any(), "Neon Nights").Return(nil, core.ErrNotFound)
	shops.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	rec := postShop(router, `{"name":"Neon Nights","ownerEmail":"a@b.co","ownerName":"Ana"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Shop created successfully")
}
