// AngelaMos | 2026
// service_test.go

package product_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/studio-ledger/internal/core"
	"github.com/carterperez-dev/studio-ledger/internal/product"
	"github.com/carterperez-dev/studio-ledger/internal/product/mocks"
)

func TestCreateRejectsDuplicateName(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	svc := product.NewService(repo)

	repo.EXPECT().ExistsByName(gomock.Any(), "Mixer").Return(true, nil)

	_, err := svc.Create(t.Context(), product.CreateProductRequest{Name: " Mixer "})

	appErr, ok := core.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.StatusCode)
	assert.Equal(t, "Product already exists", appErr.Message)
}

func TestCreateRequiresName(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := product.NewService(mocks.NewMockRepository(ctrl))

	_, err := svc.Create(t.Context(), product.CreateProductRequest{Name: "   "})

	appErr, ok := core.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "Product name is required", appErr.Message)
}

func TestCreateDefaultsToQuantity(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	svc := product.NewService(repo)

	repo.EXPECT().ExistsByName(gomock.Any(), "Fog Machine").Return(false, nil)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	p, err := svc.Create(t.Context(), product.CreateProductRequest{Name: "Fog Machine"})

	require.NoError(t, err)
	assert.Equal(t, product.TypeQuantity, p.Type)
}

func TestInitializeSeedsWholeCatalog(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	svc := product.NewService(repo)

	repo.EXPECT().
		CreateMissing(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, seed []product.Product) ([]product.Product, error) {
			assert.Len(t, seed, len(product.Catalog))
			for _, p := range seed {
				assert.NotEmpty(t, p.ID)
			}
			return seed[:2], nil
		})

	created, err := svc.Initialize(t.Context())

	require.NoError(t, err)
	assert.Len(t, created, 2)
}

func TestDeleteMissingProduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)

	router := chi.NewRouter()
	product.NewHandler(product.NewService(repo)).RegisterRoutes(router)

	repo.EXPECT().Deactivate(gomock.Any(), "p9").Return(nil, core.ErrNotFound)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/products/products/p9", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Product not found","code":"NOT_FOUND"}`, rec.Body.String())
}
