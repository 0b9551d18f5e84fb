// AngelaMos | 2026
// handler.go

package user

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/studio-ledger/internal/access"
	"github.com/carterperez-dev/studio-ledger/internal/core"
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

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/users", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/workers", h.listRole(WorkerRoles))
		r.Get("/editors", h.listRole(EditorRoles))
		r.Get("/transporters", h.listRole(TransporterRoles))
		r.Get("/{userID}/statistics", h.Statistics)
		r.Put("/{userID}/performance", h.UpdatePerformance)
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.List(r.Context(), access.FromRequest(r))
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.JSON(w, http.StatusOK, ToUserResponseList(users))
}

func (h *Handler) listRole(roles []string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := h.service.ListByRole(r.Context(), access.FromRequest(r), roles)
		if err != nil {
			core.InternalServerError(w, err)
			return
		}

		core.JSON(w, http.StatusOK, ToStaffResponseList(users))
	}
}

func (h *Handler) Statistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Statistics(
		r.Context(),
		access.FromRequest(r),
		chi.URLParam(r, "userID"),
	)
	if err != nil {
		core.WriteServiceError(w, err, "User")
		return
	}

	core.JSON(w, http.StatusOK, stats)
}

func (h *Handler) UpdatePerformance(w http.ResponseWriter, r *http.Request) {
	var req UpdatePerformanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	user, err := h.service.UpdatePerformance(
		r.Context(),
		access.FromRequest(r),
		chi.URLParam(r, "userID"),
		req.AccuracyRating,
	)
	if err != nil {
		core.WriteServiceError(w, err, "User")
		return
	}

	core.JSON(w, http.StatusOK, core.Envelope{
		"message": "Performance updated",
		"user":    ToUserResponse(user),
	})
}
