// AngelaMos | 2026
// handler.go

package product

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

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

// RegisterRoutes keeps the doubled /products/products paths the web
// client already calls.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/products/products", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Post("/initialize", h.Initialize)
		r.Put("/{productID}", h.Update)
		r.Delete("/{productID}", h.Delete)
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.List(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.JSON(w, http.StatusOK, ToProductResponseList(products))
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	p, err := h.service.Create(r.Context(), req)
	if err != nil {
		core.WriteServiceError(w, err, "Product")
		return
	}

	core.JSON(w, http.StatusCreated, ToProductResponse(p))
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	p, err := h.service.Update(r.Context(), chi.URLParam(r, "productID"), req)
	if err != nil {
		core.WriteServiceError(w, err, "Product")
		return
	}

	core.JSON(w, http.StatusOK, ToProductResponse(p))
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	p, err := h.service.Deactivate(r.Context(), chi.URLParam(r, "productID"))
	if err != nil {
		core.WriteServiceError(w, err, "Product")
		return
	}

	core.JSON(w, http.StatusOK, core.Envelope{
		"message": "Product deactivated successfully",
		"product": ToProductResponse(p),
	})
}

func (h *Handler) Initialize(w http.ResponseWriter, r *http.Request) {
	created, err := h.service.Initialize(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.JSON(w, http.StatusOK, core.Envelope{
		"message":  "Products initialized successfully",
		"created":  len(created),
		"products": ToProductResponseList(created),
	})
}
