package handlers

import (
	"FoodTracker/internal/service"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// FoodHandler - общая доска продуктов (/food). Авторизация не требуется.
type FoodHandler struct {
	FoodService *service.FoodService
	Logger      *zap.SugaredLogger
}

func NewFoodHandler(foodService *service.FoodService, logger *zap.SugaredLogger) *FoodHandler {
	return &FoodHandler{FoodService: foodService, Logger: logger}
}

func (h *FoodHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req service.CreateFoodRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.Logger, err)
		return
	}
	it, err := h.FoodService.Create(r.Context(), req)
	if err != nil {
		respondError(w, r, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, it)
}

// List обслуживает GET /food и GET /foodexpiry.
func (h *FoodHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.FoodService.ListAll(r.Context())
	if err != nil {
		respondError(w, r, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// ListByOwner - GET /food/{id}, где id - userId владельца.
func (h *FoodHandler) ListByOwner(w http.ResponseWriter, r *http.Request) {
	items, err := h.FoodService.ListByOwner(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *FoodHandler) Get(w http.ResponseWriter, r *http.Request) {
	it, err := h.FoodService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, it)
}

func (h *FoodHandler) ExpiringSoon(w http.ResponseWriter, r *http.Request) {
	items, err := h.FoodService.ExpiringSoon(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *FoodHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch service.FoodPatch
	if err := decodeJSON(r, &patch); err != nil {
		respondError(w, r, h.Logger, err)
		return
	}
	it, err := h.FoodService.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		respondError(w, r, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, it)
}

func (h *FoodHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.FoodService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, r, h.Logger, err)
		return
	}
	writeMessage(w, "Food item deleted successfully")
}
