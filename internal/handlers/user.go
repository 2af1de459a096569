package handlers

import (
	"FoodTracker/internal/service"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// UserHandler обрабатывает регистрацию и чтение пользователей.
type UserHandler struct {
	UserService *service.UserService
	Logger      *zap.SugaredLogger
}

func NewUserHandler(userService *service.UserService, logger *zap.SugaredLogger) *UserHandler {
	return &UserHandler{UserService: userService, Logger: logger}
}

// поля, которые сервер ведёт сам и не кладёт в profile
var reservedUserFields = map[string]struct{}{
	"email": {}, "uid": {}, "password": {},
	"id": {}, "_id": {}, "createdAt": {}, "updatedAt": {}, "profile": {},
}

// Register - POST /users. Все поля кроме email, uid, password уходят в profile.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	body := map[string]any{}
	if err := decodeJSON(r, &body); err != nil {
		respondError(w, r, h.Logger, err)
		return
	}

	req := service.RegisterRequest{
		Email:    stringField(body, "email"),
		UID:      stringField(body, "uid"),
		Password: stringField(body, "password"),
		Profile:  map[string]any{},
	}
	if p, ok := body["profile"].(map[string]any); ok {
		for k, v := range p {
			req.Profile[k] = v
		}
	}
	for k, v := range body {
		if _, reserved := reservedUserFields[k]; !reserved {
			req.Profile[k] = v
		}
	}

	user, err := h.UserService.Register(r.Context(), req)
	if err != nil {
		respondError(w, r, h.Logger, err)
		return
	}
	h.Logger.Infow("user registered", "id", user.ID)
	writeJSON(w, http.StatusCreated, user)
}

// Get - GET /users/{id}
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, err := h.UserService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// stringField достаёт строковое поле; числа и прочие скаляры приводятся к строке.
func stringField(m map[string]any, key string) string {
	switch v := m[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case map[string]any, []any:
		return ""
	default:
		return fmt.Sprint(v)
	}
}
