// AngelaMos | 2026
// access_test.go

package access

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/carterperez-dev/studio-ledger/internal/middleware"
)

func TestCanAccess(t *testing.T) {
	res := Resource{ShopName: "Drone Masters", Participants: []string{"w1", "t1"}}

	cases := []struct {
		name  string
		actor Actor
		want  bool
	}{
		{"unscoped caller", Actor{}, true},
		{"owner same shop", Actor{Role: RoleOwner, ShopName: "Drone Masters"}, true},
		{"owner other shop", Actor{Role: RoleOwner, ShopName: "LED Vision Pro"}, false},
		{"assigned worker", Actor{UserID: "w1", Role: "worker", ShopName: "Drone Masters"}, true},
		{"unassigned worker", Actor{UserID: "w2", Role: "worker", ShopName: "Drone Masters"}, false},
		{"worker without id", Actor{Role: "worker", ShopName: "Drone Masters"}, false},
		{"worker other shop", Actor{UserID: "w1", Role: "worker", ShopName: "Other"}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CanAccess(tc.actor, res))
		})
	}
}

func TestCanAccessShopLevelResource(t *testing.T) {
	res := Resource{ShopName: "Creative Studios"}

	assert.True(t, CanAccess(Actor{UserID: "e1", Role: "editor", ShopName: "Creative Studios"}, res))
	assert.False(t, CanAccess(Actor{UserID: "e1", Role: "editor", ShopName: "Wedding Films Co."}, res))
}

func TestListScope(t *testing.T) {
	cases := []struct {
		name  string
		actor Actor
		want  ListFilter
	}{
		{"no shop", Actor{Role: RoleOwner}, ListFilter{Scope: ScopeNone}},
		{"owner", Actor{Role: RoleOwner, ShopName: "S"}, ListFilter{Scope: ScopeShop, ShopName: "S"}},
		{"worker without id", Actor{Role: "worker", ShopName: "S"}, ListFilter{Scope: ScopeNone}},
		{
			"worker",
			Actor{UserID: "u1", Role: "worker", ShopName: "S"},
			ListFilter{Scope: ScopeParticipant, ShopName: "S", UserID: "u1"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ListScope(tc.actor))
		})
	}
}

func TestFromRequestQueryParams(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/orders?shopName=S&userRole=worker&userId=undefined", nil)

	actor := FromRequest(r)

	assert.Equal(t, "S", actor.ShopName)
	assert.Equal(t, "worker", actor.Role)
	assert.Empty(t, actor.UserID)
	assert.False(t, actor.Authenticated)
	assert.True(t, ListScope(actor).Empty())
}

func TestFromRequestPrefersClaims(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/orders?shopName=Other&userRole=owner", nil)
	ctx := context.WithValue(r.Context(), middleware.ClaimsKey, &middleware.AccessTokenClaims{
		UserID:   "u1",
		Role:     "editor",
		ShopName: "S",
	})

	actor := FromRequest(r.WithContext(ctx))

	assert.Equal(t, Actor{UserID: "u1", Role: "editor", ShopName: "S", Authenticated: true}, actor)
}
