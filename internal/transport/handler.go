// AngelaMos | 2026
// handler.go

package transport

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
	r.Route("/transportation", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Put("/{transportID}/status", h.UpdateStatus)
		r.Put("/{transportID}/assign", h.Assign)
		r.Delete("/{transportID}", h.Delete)
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.List(r.Context(), access.FromRequest(r))
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToTransportResponseList(rows))
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateTransportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	t, err := h.service.Create(r.Context(), access.FromRequest(r), req)
	if err != nil {
		core.WriteServiceError(w, err, "Transportation record")
		return
	}

	core.Created(w, core.Envelope{
		"message":     "Transportation record created successfully",
		"transportId": t.ID,
	})
}

func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, "Status is required")
		return
	}

	t, err := h.service.UpdateStatus(r.Context(), access.FromRequest(r), chi.URLParam(r, "transportID"), req.Status)
	if err != nil {
		core.WriteServiceError(w, err, "Transportation record")
		return
	}

	core.JSON(w, http.StatusOK, core.Envelope{
		"message":   "Transportation status updated",
		"transport": ToTransportResponse(t),
	})
}

func (h *Handler) Assign(w http.ResponseWriter, r *http.Request) {
	var req AssignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, invalidTransporter)
		return
	}

	if err := h.service.Assign(r.Context(), access.FromRequest(r), chi.URLParam(r, "transportID"), req.TransporterID); err != nil {
		core.WriteServiceError(w, err, "Transportation record")
		return
	}

	core.Message(w, "Transporter assigned successfully")
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), access.FromRequest(r), chi.URLParam(r, "transportID")); err != nil {
		core.WriteServiceError(w, err, "Transportation record")
		return
	}

	core.Message(w, "Transportation record deleted successfully")
}
