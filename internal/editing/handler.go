// AngelaMos | 2026
// handler.go

package editing

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
	r.Route("/editing", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.With(ownerOnly).Get("/export", h.Export)
		r.Get("/{projectID}", h.Get)
		r.Put("/{projectID}/status", h.UpdateStatus)
		r.Put("/{projectID}/payment", h.UpdatePayment)
		r.Delete("/{projectID}", h.Delete)
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.service.List(r.Context(), access.FromRequest(r))
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToProjectResponseList(projects))
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.service.Get(r.Context(), access.FromRequest(r), chi.URLParam(r, "projectID"))
	if err != nil {
		core.WriteServiceError(w, err, "Project")
		return
	}

	core.OK(w, ToProjectResponse(p))
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, "Missing required fields")
		return
	}

	p, err := h.service.Create(r.Context(), access.FromRequest(r), req)
	if err != nil {
		core.WriteServiceError(w, err, "Project")
		return
	}

	core.Created(w, core.Envelope{
		"message":   "Project created successfully",
		"projectId": p.ID,
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

	p, err := h.service.UpdateStatus(r.Context(), access.FromRequest(r), chi.URLParam(r, "projectID"), req.Status)
	if err != nil {
		core.WriteServiceError(w, err, "Project")
		return
	}

	core.JSON(w, http.StatusOK, core.Envelope{
		"message": "Project status updated",
		"project": ToProjectResponse(p),
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

	err := h.service.UpdatePayment(r.Context(), access.FromRequest(r), chi.URLParam(r, "projectID"), req.ReceivedPayment)
	if err != nil {
		core.WriteServiceError(w, err, "Project")
		return
	}

	core.Message(w, "Payment updated")
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), access.FromRequest(r), chi.URLParam(r, "projectID")); err != nil {
		core.WriteServiceError(w, err, "Project")
		return
	}

	core.Message(w, "Project deleted successfully")
}

func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	projects, err := h.service.List(r.Context(), access.FromRequest(r))
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	sheet := report.Sheet{
		Name: "Projects",
		Headers: []string{
			"Project", "Status", "Start", "End", "Completed", "Editing value",
			"Commission %", "Commission", "Total", "Received", "Remaining",
		},
		Rows: make([][]any, 0, len(projects)),
	}
	for _, p := range projects {
		sheet.Rows = append(sheet.Rows, []any{
			p.ProjectName, p.Status, p.StartDate, p.EndDate, p.CompletionDate,
			p.EditingValue, p.CommissionPercentage, p.CommissionAmount,
			p.TotalAmount, p.ReceivedPayment, p.RemainingPayment,
		})
	}

	if err := report.Serve(w, "editing-projects", sheet); err != nil {
		core.InternalServerError(w, err)
	}
}
