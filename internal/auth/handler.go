package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/elishalema/portfolio-service/internal/web"
)

// Handler exposes the login endpoint.
type Handler struct {
	svc    *Service
	logger *zap.SugaredLogger
}

func NewHandler(svc *Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

// LoginRequest login payload.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the bearer token for subsequent admin calls.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Debugw("invalid login payload", "err", err)
		web.Message(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	token, err := h.svc.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			h.logger.Debugw("login rejected", "username", req.Username)
			web.Message(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		h.logger.Warnw("login failed", "err", err)
		web.Message(w, http.StatusInternalServerError, "Server error")
		return
	}
	web.JSON(w, http.StatusOK, LoginResponse{Token: token, Username: req.Username})
}
