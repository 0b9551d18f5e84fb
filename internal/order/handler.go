// AngelaMos | 2026
// handler.go

package order

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/studio-ledger/internal/access"
	"github.com/carterperez-dev/studio-ledger/internal/core"
	"github.com/carterperez-dev/studio-ledger/internal/report"
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

func (h *Handler) RegisterRoutes(r chi.Router, ownerOnly func(http.Handler) http.Handler) {
	r.Route("/orders", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.With(ownerOnly).Get("/export", h.Export)
		r.Get("/{orderID}", h.Get)
		r.Put("/{orderID}/status", h.UpdateStatus)
		r.Put("/{orderID}/payment", h.UpdatePayment)
		r.Delete("/{orderID}", h.Delete)
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	details, err := h.service.List(r.Context(), access.FromRequest(r))
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToDetailResponseList(details))
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	d, err := h.service.Get(r.Context(), access.FromRequest(r), chi.URLParam(r, "orderID"))
	if err != nil {
		core.WriteServiceError(w, err, "Order")
		return
	}

	core.OK(w, ToDetailResponse(d))
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, "Missing required fields")
		return
	}

	o, err := h.service.Create(r.Context(), access.FromRequest(r), req)
	if err != nil {
		core.WriteServiceError(w, err, "Order")
		return
	}

	core.Created(w, core.Envelope{
		"message": "Order created successfully",
		"order":   core.Envelope{"id": o.ID},
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

	o, err := h.service.UpdateStatus(r.Context(), access.FromRequest(r), chi.URLParam(r, "orderID"), req.Status)
	if err != nil {
		core.WriteServiceError(w, err, "Order")
		return
	}

	core.JSON(w, http.StatusOK, core.Envelope{
		"message": "Order status updated",
		"order":   ToOrderResponse(o),
	})
}

func (h *Handler) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	var req UpdatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	err := h.service.UpdatePayment(r.Context(), access.FromRequest(r), chi.URLParam(r, "orderID"), req.ReceivedPayment)
	if err != nil {
		core.WriteServiceError(w, err, "Order")
		return
	}

	core.Message(w, "Payment updated")
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), access.FromRequest(r), chi.URLParam(r, "orderID")); err != nil {
		core.WriteServiceError(w, err, "Order")
		return
	}

	core.Message(w, "Order and related data deleted successfully")
}

func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	details, err := h.service.List(r.Context(), access.FromRequest(r))
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	if err := report.Serve(w, "orders", exportSheets(details)...); err != nil {
		core.InternalServerError(w, err)
	}
}
