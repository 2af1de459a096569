package handlers

import (
	"FoodTracker/internal/model"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

const msgInternal = "Internal server error"

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeMessage(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusOK, map[string]string{"message": msg})
}

// statusFor маппит вид доменной ошибки в HTTP-статус.
func statusFor(err error) int {
	switch {
	case errors.Is(err, model.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, model.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError пишет ошибку клиенту. Причина 500 остаётся только в логе.
func respondError(w http.ResponseWriter, r *http.Request, logger *zap.SugaredLogger, err error) {
	status := statusFor(err)
	reqID := chimw.GetReqID(r.Context())
	if status == http.StatusInternalServerError {
		logger.Errorw("request failed", "method", r.Method, "uri", r.RequestURI, "request_id", reqID, "error", err)
		writeError(w, status, msgInternal)
		return
	}
	logger.Warnw("request rejected", "method", r.Method, "uri", r.RequestURI, "request_id", reqID, "status", status, "error", err.Error())
	writeError(w, status, err.Error())
}

// decodeJSON читает тело в v. Пустое тело считается пустым объектом.
func decodeJSON(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return model.NewError(model.ErrValidation, "Invalid JSON body")
}
