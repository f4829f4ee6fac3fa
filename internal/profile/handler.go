package profile

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/elishalema/portfolio-service/internal/web"
)

type Handler struct {
	store  Store
	logger *zap.SugaredLogger
}

func NewHandler(store Store, logger *zap.SugaredLogger) *Handler {
	return &Handler{store: store, logger: logger}
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.store.Get(r.Context())
	if err != nil {
		h.logger.Warnw("get profile failed", "err", err)
		web.Message(w, http.StatusInternalServerError, "Server error")
		return
	}
	web.JSON(w, http.StatusOK, p)
}

// Update replaces the whole profile document and refreshes its timestamp.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var in Profile
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.logger.Debugw("invalid profile payload", "err", err)
		web.Message(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	in.ID = SingletonID
	in.UpdatedAt = time.Now()
	if err := h.store.Replace(r.Context(), &in); err != nil {
		h.logger.Warnw("update profile failed", "err", err)
		web.Message(w, http.StatusInternalServerError, "Server error")
		return
	}
	web.JSON(w, http.StatusOK, &in)
}
