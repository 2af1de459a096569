package handlers

import (
	"FoodTracker/internal/middleware"
	"FoodTracker/internal/service"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// PantryHandler - личный список (/addfood). Все маршруты за RequireBearer.
type PantryHandler struct {
	PantryService *service.PantryService
	Logger        *zap.SugaredLogger
}

func NewPantryHandler(pantryService *service.PantryService, logger *zap.SugaredLogger) *PantryHandler {
	return &PantryHandler{PantryService: pantryService, Logger: logger}
}

// identity возвращает идентичность из токена либо пишет 401.
func (h *PantryHandler) identity(w http.ResponseWriter, r *http.Request) (string, bool) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok || claims.Identity() == "" {
		respondError(w, r, h.Logger, service.ErrInvalidToken)
		return "", false
	}
	return claims.Identity(), true
}

func (h *PantryHandler) Create(w http.ResponseWriter, r *http.Request) {
	authID, ok := h.identity(w, r)
	if !ok {
		return
	}
	var req service.CreatePantryRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.Logger, err)
		return
	}
	it, err := h.PantryService.Create(r.Context(), req, authID)
	if err != nil {
		respondError(w, r, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, it)
}

// ListMine - GET /addfood[?status=...], по умолчанию только active.
func (h *PantryHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	authID, ok := h.identity(w, r)
	if !ok {
		return
	}
	items, err := h.PantryService.ListMine(r.Context(), authID, r.URL.Query().Get("status"))
	if err != nil {
		respondError(w, r, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// ListForUser - GET /addfood/{id}, где id должен совпадать с владельцем токена.
func (h *PantryHandler) ListForUser(w http.ResponseWriter, r *http.Request) {
	authID, ok := h.identity(w, r)
	if !ok {
		return
	}
	items, err := h.PantryService.ListForUser(r.Context(), chi.URLParam(r, "id"), authID)
	if err != nil {
		respondError(w, r, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *PantryHandler) Update(w http.ResponseWriter, r *http.Request) {
	authID, ok := h.identity(w, r)
	if !ok {
		return
	}
	var patch service.FoodPatch
	if err := decodeJSON(r, &patch); err != nil {
		respondError(w, r, h.Logger, err)
		return
	}
	it, err := h.PantryService.Update(r.Context(), chi.URLParam(r, "id"), patch, authID)
	if err != nil {
		respondError(w, r, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, it)
}

func (h *PantryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	authID, ok := h.identity(w, r)
	if !ok {
		return
	}
	if err := h.PantryService.Delete(r.Context(), chi.URLParam(r, "id"), authID); err != nil {
		respondError(w, r, h.Logger, err)
		return
	}
	writeMessage(w, "Food item deleted successfully")
}

