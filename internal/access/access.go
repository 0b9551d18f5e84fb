// AngelaMos | 2026
// access.go

// Package access resolves who is calling and decides what they may see.
// Every feature handler goes through CanAccess or ListScope instead of
// filtering by role on its own.
package access

import (
	"net/http"
	"slices"
	"strings"

	"github.com/carterperez-dev/studio-ledger/internal/middleware"
)

const RoleOwner = middleware.RoleOwner

type Actor struct {
	UserID        string
	Role          string
	ShopName      string
	Authenticated bool
}

func (a Actor) IsOwner() bool {
	return a.Role == RoleOwner
}

// FromRequest prefers verified token claims and falls back to the
// shopName, userRole and userId query parameters the web client sends.
func FromRequest(r *http.Request) Actor {
	if claims := middleware.GetClaims(r.Context()); claims != nil {
		return Actor{
			UserID:        claims.UserID,
			Role:          claims.Role,
			ShopName:      claims.ShopName,
			Authenticated: true,
		}
	}

	q := r.URL.Query()
	return Actor{
		UserID:   normalize(q.Get("userId")),
		Role:     normalize(q.Get("userRole")),
		ShopName: normalize(q.Get("shopName")),
	}
}

func normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "undefined" || s == "null" {
		return ""
	}
	return s
}

// Resource is anything that belongs to a shop and, optionally, to a set
// of assigned users.
type Resource struct {
	ShopName     string
	Participants []string
}

// CanAccess is the single policy check. An actor without a shop is not
// scoped. Otherwise the shop has to match; owners then see everything and
// everyone else needs to be a participant when the resource names any.
func CanAccess(actor Actor, res Resource) bool {
	if actor.ShopName == "" {
		return true
	}

	if res.ShopName != "" && res.ShopName != actor.ShopName {
		return false
	}

	if actor.IsOwner() || len(res.Participants) == 0 {
		return true
	}

	return actor.UserID != "" && slices.Contains(res.Participants, actor.UserID)
}

type Scope int

const (
	ScopeNone Scope = iota
	ScopeShop
	ScopeParticipant
)

func (s Scope) String() string {
	switch s {
	case ScopeShop:
		return "shop"
	case ScopeParticipant:
		return "participant"
	default:
		return "none"
	}
}

// ListFilter narrows a list query to what the actor may see.
type ListFilter struct {
	Scope    Scope
	ShopName string
	UserID   string
}

func (f ListFilter) Empty() bool {
	return f.Scope == ScopeNone
}

// ListScope yields ScopeNone when the caller is not tied to a shop, or
// is a non-owner without a user id. Callers return an empty list then.
func ListScope(actor Actor) ListFilter {
	if actor.ShopName == "" {
		return ListFilter{Scope: ScopeNone}
	}

	if actor.IsOwner() {
		return ListFilter{Scope: ScopeShop, ShopName: actor.ShopName}
	}

	if actor.UserID == "" {
		return ListFilter{Scope: ScopeNone}
	}

	return ListFilter{
		Scope:    ScopeParticipant,
		ShopName: actor.ShopName,
		UserID:   actor.UserID,
	}
}
