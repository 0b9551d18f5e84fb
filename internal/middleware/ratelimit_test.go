// AngelaMos | 2026
// ratelimit_test.go

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestFor(t *testing.T, method, shop string) *http.Request {
	t.Helper()

	r := httptest.NewRequest(method, "/api/orders", nil)
	r.RemoteAddr = "10.0.0.7:5123"
	if shop != "" {
		r = r.WithContext(withClaims(r.Context(), &AccessTokenClaims{
			UserID:   "u-" + shop,
			Role:     RoleOwner,
			ShopName: shop,
		}))
	}
	return r
}

func TestKeyByShop(t *testing.T) {
	assert.Equal(t, "ratelimit:shop:neon nights", KeyByShop(requestFor(t, http.MethodPost, "Neon Nights")))
	assert.Equal(t, "ratelimit:ip:10.0.0.7", KeyByShop(requestFor(t, http.MethodPost, "")))
}

func TestReadOnly(t *testing.T) {
	assert.True(t, ReadOnly(httptest.NewRequest(http.MethodGet, "/", nil)))
	assert.True(t, ReadOnly(httptest.NewRequest(http.MethodOptions, "/", nil)))
	assert.False(t, ReadOnly(httptest.NewRequest(http.MethodPost, "/", nil)))
	assert.False(t, ReadOnly(httptest.NewRequest(http.MethodDelete, "/", nil)))
}

func TestShopWriteLimiterIsolatesShops(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = rdb.Close() })

	limited := NewRateLimiter(rdb, RateLimitConfig{
		Limit:      PerMinute(1, 1),
		KeyFunc:    KeyByShop,
		BypassFunc: ReadOnly,
	}).Handler(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	serve := func(method, shop string) int {
		rec := httptest.NewRecorder()
		limited.ServeHTTP(rec, requestFor(t, method, shop))
		return rec.Code
	}

	require.Equal(t, http.StatusOK, serve(http.MethodPost, "Neon Nights"))
	assert.Equal(t, http.StatusTooManyRequests, serve(http.MethodPost, "Neon Nights"))
	assert.Equal(t, http.StatusOK, serve(http.MethodPost, "Drone Masters"))
	assert.Equal(t, http.StatusOK, serve(http.MethodGet, "Neon Nights"))
}
