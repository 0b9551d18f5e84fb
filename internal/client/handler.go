// AngelaMos | 2026
// handler.go

package client

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
	r.Route("/clients", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Put("/{clientID}", h.Update)
		r.Delete("/{clientID}", h.Delete)
		r.Get("/{clientID}/work-history", h.WorkHistory)
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	clients, err := h.service.List(r.Context(), access.FromRequest(r))
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToClientResponseList(clients))
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	c, err := h.service.Create(r.Context(), access.FromRequest(r), req)
	if err != nil {
		core.WriteServiceError(w, err, "Client")
		return
	}

	core.Created(w, core.Envelope{
		"message": "Client created successfully",
		"client":  ToClientResponse(c),
	})
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	c, err := h.service.Update(r.Context(), access.FromRequest(r), chi.URLParam(r, "clientID"), req)
	if err != nil {
		core.WriteServiceError(w, err, "Client")
		return
	}

	core.JSON(w, http.StatusOK, core.Envelope{
		"message": "Client updated successfully",
		"client":  ToClientResponse(c),
	})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.service.Delete(r.Context(), access.FromRequest(r), chi.URLParam(r, "clientID"))
	if err != nil {
		core.WriteServiceError(w, err, "Client")
		return
	}

	core.Message(w, "Client deleted successfully")
}

func (h *Handler) WorkHistory(w http.ResponseWriter, r *http.Request) {
	c, items, err := h.service.WorkHistory(r.Context(), access.FromRequest(r), chi.URLParam(r, "clientID"))
	if err != nil {
		core.WriteServiceError(w, err, "Client")
		return
	}

	core.JSON(w, http.StatusOK, ToWorkHistoryResponse(c, items))
}
