package work

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/elishalema/portfolio-service/internal/web"
)

// Handler exposes HTTP endpoints for the works collection.
type Handler struct {
	svc    *Service
	logger *zap.SugaredLogger
}

func NewHandler(svc *Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	works, err := h.svc.List(r.Context())
	if err != nil {
		h.logger.Warnw("list works failed", "err", err)
		web.Message(w, http.StatusInternalServerError, "Server error")
		return
	}
	if works == nil {
		works = []Work{}
	}
	web.JSON(w, http.StatusOK, works)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var in Work
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.logger.Debugw("invalid work payload", "err", err)
		web.Message(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	created, err := h.svc.Create(r.Context(), &in)
	if err != nil {
		h.logger.Warnw("create work failed", "err", err)
		web.Message(w, http.StatusInternalServerError, "Server error")
		return
	}
	web.JSON(w, http.StatusOK, created)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var patch Patch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		h.logger.Debugw("invalid work patch", "err", err)
		web.Message(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	updated, err := h.svc.Update(r.Context(), id, &patch)
	if err != nil {
		h.logger.Warnw("update work failed", "id", id, "err", err)
		web.Message(w, http.StatusInternalServerError, "Server error")
		return
	}
	// updated is nil for an unknown id; the body is then a literal null
	web.JSON(w, http.StatusOK, updated)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.logger.Warnw("delete work failed", "id", id, "err", err)
		web.Message(w, http.StatusInternalServerError, "Server error")
		return
	}
	web.Message(w, http.StatusOK, "Deleted successfully")
}

func (h *Handler) TrackView(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.svc.TrackView(r.Context(), id); err != nil {
		h.logger.Warnw("track view failed", "id", id, "err", err)
		web.Message(w, http.StatusInternalServerError, "Server error")
		return
	}
	web.Success(w)
}
