// AngelaMos | 2026
// handler.go

package dashboard

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/carterperez-dev/studio-ledger/internal/access"
	"github.com/carterperez-dev/studio-ledger/internal/core"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/dashboard", func(r chi.Router) {
		r.Get("/alerts", h.Alerts)
		r.Get("/stats", h.Stats)
	})
}

func (h *Handler) Alerts(w http.ResponseWriter, r *http.Request) {
	alerts, err := h.service.Alerts(r.Context(), access.FromRequest(r))
	if err != nil {
		slog.ErrorContext(r.Context(), "dashboard alerts failed", "error", err)
		core.JSON(w, http.StatusInternalServerError, core.Envelope{
			"data": []Alert{SystemErrorAlert()},
		})
		return
	}

	core.OK(w, alerts)
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context(), access.FromRequest(r))
	if err != nil {
		slog.ErrorContext(r.Context(), "dashboard stats failed", "error", err)
		core.JSON(w, http.StatusInternalServerError, core.Envelope{"data": stats})
		return
	}

	core.OK(w, stats)
}
