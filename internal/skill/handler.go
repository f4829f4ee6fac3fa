package skill

import (
	"encoding/json"
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

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	skills, err := h.svc.List(r.Context())
	if err != nil {
		h.logger.Warnw("list skills failed", "err", err)
		web.Message(w, http.StatusInternalServerError, "Server error")
		return
	}
	if skills == nil {
		skills = []Skill{}
	}
	web.JSON(w, http.StatusOK, skills)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var in Skill
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.logger.Debugw("invalid skill payload", "err", err)
		web.Message(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	created, err := h.svc.Create(r.Context(), &in)
	if err != nil {
		h.logger.Warnw("create skill failed", "err", err)
		web.Message(w, http.StatusInternalServerError, "Server error")
		return
	}
	web.JSON(w, http.StatusOK, created)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var patch Patch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		h.logger.Debugw("invalid skill patch", "err", err)
		web.Message(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	updated, err := h.svc.Update(r.Context(), id, &patch)
	if err != nil {
		h.logger.Warnw("update skill failed", "id", id, "err", err)
		web.Message(w, http.StatusInternalServerError, "Server error")
		return
	}
	web.JSON(w, http.StatusOK, updated)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.logger.Warnw("delete skill failed", "id", id, "err", err)
		web.Message(w, http.StatusInternalServerError, "Server error")
		return
	}
	web.Message(w, http.StatusOK, "Deleted successfully")
}
