package stats

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/elishalema/portfolio-service/internal/web"
)

type Handler struct {
	svc    *Service
	logger *zap.SugaredLogger
}

func NewHandler(svc *Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

// Visit records one page load. Called once per client visit, no body.
func (h *Handler) Visit(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.RecordVisit(r.Context()); err != nil {
		h.logger.Warnw("record visit failed", "err", err)
		web.Message(w, http.StatusInternalServerError, "Server error")
		return
	}
	web.Success(w)
}

// Dashboard serves the derived statistics for the admin overview.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.Dashboard(r.Context())
	if err != nil {
		h.logger.Warnw("assemble dashboard failed", "err", err)
		web.Message(w, http.StatusInternalServerError, "Server error")
		return
	}
	web.JSON(w, http.StatusOK, d)
}
