package handlers_test

import (
	"FoodTracker/internal/config"
	"FoodTracker/internal/handlers"
	"FoodTracker/internal/model"
	"FoodTracker/internal/repo"
	"FoodTracker/internal/service"
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testAPI struct {
	t      *testing.T
	router http.Handler
	tokens *service.TokenService
}

// newTestAPI собирает полный роутер поверх in-memory SQLite
func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	db, err := repo.InitDB("file:" + uuid.NewString() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	cfg := &config.Config{AuthSecret: "test-secret", TokenTTL: time.Hour, CORSOrigins: []string{"*"}}
	logger := zap.NewNop().Sugar()

	users := repo.NewUserRepository(db)
	private := repo.NewFoodRepository(db, model.PrivateFoodTable)
	tokens := service.NewTokenService(cfg.AuthSecret, cfg.TokenTTL)
	svc := handlers.Services{
		Tokens: tokens,
		Auth:   service.NewAuthService(users, tokens, cfg.StrictTokenIssue),
		Users:  service.NewUserService(users),
		Food:   service.NewFoodService(repo.NewFoodRepository(db, model.SharedFoodTable)),
		Pantry: service.NewPantryService(private),
		Notes:  service.NewNoteService(repo.NewNoteRepository(db), private),
	}
	h := handlers.NewHandler(svc, logger, cfg)
	return &testAPI{t: t, router: h.Router, tokens: tokens}
}

// do выполняет запрос и декодирует JSON-ответ в out (если out != nil)
func (a *testAPI) do(method, path, token string, body any, out any) *httptest.ResponseRecorder {
	a.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(a.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	a.router.ServeHTTP(rr, req)
	if out != nil {
		require.NoError(a.t, json.Unmarshal(rr.Body.Bytes(), out), rr.Body.String())
	}
	return rr
}

func (a *testAPI) token(email, userID string) string {
	a.t.Helper()
	tok, err := a.tokens.Issue(email, userID)
	require.NoError(a.t, err)
	return tok
}

type errBody struct {
	Error string `json:"error"`
}
