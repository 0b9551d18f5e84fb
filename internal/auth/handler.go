// AngelaMos | 2026
// handler.go

package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/studio-ledger/internal/core"
	"github.com/carterperez-dev/studio-ledger/internal/middleware"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: core.NewValidator(),
	}
}

// RegisterRoutes mounts the auth routes. limiter guards the credential
// endpoints; authenticator is required for logout.
func (h *Handler) RegisterRoutes(
	r chi.Router,
	limiter, authenticator func(http.Handler) http.Handler,
) {
	r.Route("/auth", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(limiter)
			r.Post("/login", h.Login)
			r.Post("/register", h.Register)
		})

		r.Get("/shops", h.ListShops)
		r.Post("/shops", h.CreateShop)
		r.Get("/workers-editors/{shopName}", h.WorkersEditors)
		r.Get("/user/{email}", h.UserByEmail)

		r.With(authenticator).Post("/logout", h.Logout)
	})
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	if !validRole(req.Role) {
		core.BadRequest(w, "Invalid role")
		return
	}

	user, err := h.service.Register(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrEmailExists) {
			core.BadRequest(w, "User already exists")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, core.Envelope{
		"message": "User registered successfully",
		"user":    ToUserResponse(user),
	})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	resp, err := h.service.Login(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			core.BadRequest(w, "Invalid credentials")
		case errors.Is(err, ErrExternalAccount):
			core.BadRequest(w, "Please use Google login for this account")
		default:
			core.InternalServerError(w, err)
		}
		return
	}

	core.JSON(w, http.StatusOK, resp)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())

	if err := h.service.Logout(r.Context(), claims); err != nil {
		core.WriteServiceError(w, err, "Session")
		return
	}

	core.Message(w, "Logged out")
}

func (h *Handler) ListShops(w http.ResponseWriter, r *http.Request) {
	shops, err := h.service.ListShops(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.JSON(w, http.StatusOK, shops)
}

func (h *Handler) CreateShop(w http.ResponseWriter, r *http.Request) {
	var req CreateShopRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	shop, err := h.service.CreateShop(r.Context(), req)
	if err != nil {
		var exists *ShopExistsError
		if errors.As(err, &exists) {
			body := core.Envelope{
				"message":    exists.Message,
				"shopExists": true,
			}
			if exists.ExistingOwner != "" {
				body["existingOwner"] = exists.ExistingOwner
			}
			core.JSON(w, http.StatusConflict, body)
			return
		}
		core.WriteServiceError(w, err, "Shop")
		return
	}

	core.Created(w, core.Envelope{
		"message": "Shop created successfully",
		"shop":    ToShopResponse(shop),
	})
}

func (h *Handler) WorkersEditors(w http.ResponseWriter, r *http.Request) {
	shopName, err := url.PathUnescape(chi.URLParam(r, "shopName"))
	if err != nil {
		core.BadRequest(w, "invalid shop name")
		return
	}

	staff, err := h.service.WorkersEditors(r.Context(), shopName)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.JSON(w, http.StatusOK, staff)
}

func (h *Handler) UserByEmail(w http.ResponseWriter, r *http.Request) {
	email, err := url.PathUnescape(chi.URLParam(r, "email"))
	if err != nil {
		core.BadRequest(w, "invalid email")
		return
	}

	user, err := h.service.UserByEmail(r.Context(), email)
	if err != nil {
		core.WriteServiceError(w, err, "User")
		return
	}

	resp := ToUserResponse(user)
	core.JSON(w, http.StatusOK, core.Envelope{"user": resp})
}

func validRole(role string) bool {
	switch role {
	case "owner", "worker", "editor", "transporter", "worker_editor", "transporter_worker":
		return true
	}
	return false
}
