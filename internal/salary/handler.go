// AngelaMos | 2026
// handler.go

package salary

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

// RegisterRoutes mounts /salary. ownerOnly guards the export.
func (h *Handler) RegisterRoutes(r chi.Router, ownerOnly func(http.Handler) http.Handler) {
	r.Route("/salary", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/my-salary", h.MySalary)
		r.Post("/", h.Create)
		r.Post("/pay", h.Pay)
		r.Put("/{salaryID}/pay", h.PayEntry)
		r.With(ownerOnly).Get("/export", h.Export)
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.List(r.Context(), access.FromRequest(r))
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToSalaryResponseList(rows))
}

func (h *Handler) MySalary(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employeeId")
	if employeeID == "undefined" || employeeID == "null" {
		employeeID = ""
	}

	sum, err := h.service.MySalary(r.Context(), access.FromRequest(r), employeeID)
	if err != nil {
		core.WriteServiceError(w, err, "Employee")
		return
	}

	core.OK(w, ToSummaryResponse(sum))
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateSalaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	entry, err := h.service.Create(r.Context(), access.FromRequest(r), req)
	if err != nil {
		core.WriteServiceError(w, err, "Employee")
		return
	}

	core.Created(w, core.Envelope{
		"message":  "Salary entry created",
		"salaryId": entry.ID,
	})
}

func (h *Handler) Pay(w http.ResponseWriter, r *http.Request) {
	var req PayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	result, err := h.service.Pay(r.Context(), access.FromRequest(r), req)
	if err != nil {
		core.WriteServiceError(w, err, "Employee")
		return
	}

	core.JSON(w, http.StatusOK, core.Envelope{
		"message":      "Payment processed successfully",
		"paidAmount":   result.PaidAmount,
		"paidSalaries": result.PaidSalaries,
	})
}

func (h *Handler) PayEntry(w http.ResponseWriter, r *http.Request) {
	err := h.service.PayEntry(r.Context(), access.FromRequest(r), chi.URLParam(r, "salaryID"))
	if err != nil {
		core.WriteServiceError(w, err, "Salary entry")
		return
	}

	core.Message(w, "Salary paid successfully")
}

func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.List(r.Context(), access.FromRequest(r))
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	sheet := report.Sheet{
		Name: "Salaries",
		Headers: []string{
			"First name", "Last name", "Role", "Type", "Description",
			"Amount", "Work date", "Paid", "Paid date",
		},
		Rows: make([][]any, 0, len(rows)),
	}
	for _, s := range rows {
		paid := "no"
		if s.IsPaid {
			paid = "yes"
		}
		sheet.Rows = append(sheet.Rows, []any{
			s.FirstName, s.LastName, s.Role, s.SalaryType, s.Description,
			s.Amount, s.WorkDate, paid, s.PaidDate,
		})
	}

	if err := report.Serve(w, "salaries", sheet); err != nil {
		core.InternalServerError(w, err)
	}
}
