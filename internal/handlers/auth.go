package handlers

import (
	"FoodTracker/internal/service"
	"net/http"

	"go.uber.org/zap"
)

// AuthHandler выдаёт bearer-токены.
type AuthHandler struct {
	AuthService *service.AuthService
	Logger      *zap.SugaredLogger
}

func NewAuthHandler(authService *service.AuthService, logger *zap.SugaredLogger) *AuthHandler {
	return &AuthHandler{AuthService: authService, Logger: logger}
}

// IssueToken - POST /jwt {email, userId?, password?} → {token}
func (h *AuthHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req service.TokenRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.Logger, err)
		return
	}
	token, err := h.AuthService.IssueToken(r.Context(), req)
	if err != nil {
		respondError(w, r, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}
