// AngelaMos | 2026
// handler.go

package payment

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
	r.Route("/payments", func(r chi.Router) {
		r.Get("/order/{orderID}", h.ListByOrder)
		r.Get("/client/{clientID}", h.ListByClient)
		r.Post("/", h.Create)
		r.Delete("/{paymentID}", h.Delete)
	})
}

func (h *Handler) ListByOrder(w http.ResponseWriter, r *http.Request) {
	receipts, err := h.service.ListByOrder(r.Context(), access.FromRequest(r), chi.URLParam(r, "orderID"))
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToReceiptResponseList(receipts))
}

func (h *Handler) ListByClient(w http.ResponseWriter, r *http.Request) {
	receipts, err := h.service.ListByClient(r.Context(), access.FromRequest(r), chi.URLParam(r, "clientID"))
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToReceiptResponseList(receipts))
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, "Missing required fields")
		return
	}

	p, err := h.service.Record(r.Context(), access.FromRequest(r), req)
	if err != nil {
		core.WriteServiceError(w, err, "Payment")
		return
	}

	core.Created(w, core.Envelope{
		"message":   "Payment recorded successfully",
		"paymentId": p.ID,
	})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), access.FromRequest(r), chi.URLParam(r, "paymentID")); err != nil {
		core.WriteServiceError(w, err, "Payment")
		return
	}

	core.Message(w, "Payment deleted successfully")
}
