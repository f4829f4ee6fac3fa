package message

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/elishalema/portfolio-service/internal/web"
	"github.com/elishalema/portfolio-service/pkg/utilities"
)

// Handler exposes the public contact endpoint. Delivery to the human-facing
// inbox happens client-side via a third-party relay; the API only records
// the submission.
type Handler struct {
	store  Store
	logger *zap.SugaredLogger
}

func NewHandler(store Store, logger *zap.SugaredLogger) *Handler {
	return &Handler{store: store, logger: logger}
}

// SubmitRequest contact payload.
type SubmitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Debugw("invalid contact payload", "err", err)
		web.Message(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	if req.Name == "" || req.Email == "" || req.Message == "" {
		web.Message(w, http.StatusBadRequest, "Name, email and message are required")
		return
	}
	m := &Message{
		ID:        utilities.NewRecordID(),
		Name:      req.Name,
		Email:     req.Email,
		Message:   req.Message,
		CreatedAt: time.Now(),
	}
	if err := h.store.Insert(r.Context(), m); err != nil {
		h.logger.Warnw("save message failed", "err", err)
		web.Message(w, http.StatusInternalServerError, "Server error")
		return
	}
	web.Success(w)
}
