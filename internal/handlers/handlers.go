package handlers

import (
	"FoodTracker/internal/config"
	"FoodTracker/internal/middleware"
	"FoodTracker/internal/service"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// Services - зависимости роутера.
type Services struct {
	Tokens *service.TokenService
	Auth   *service.AuthService
	Users  *service.UserService
	Food   *service.FoodService
	Pantry *service.PantryService
	Notes  *service.NoteService
}

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	svc Services,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()
	metrics := middleware.NewMetrics()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: config.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))
	r.Use(exposeRequestID)
	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(metrics.Middleware)

	// Handlers
	authHandler := NewAuthHandler(svc.Auth, logger)
	userHandler := NewUserHandler(svc.Users, logger)
	foodHandler := NewFoodHandler(svc.Food, logger)
	pantryHandler := NewPantryHandler(svc.Pantry, logger)
	noteHandler := NewNoteHandler(svc.Notes, logger)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("Food Tracker API is running"))
	})
	r.Handle("/metrics", metrics.Handler())

	r.Post("/jwt", authHandler.IssueToken)

	// User routes
	r.Post("/users", userHandler.Register)
	r.Get("/users/{id}", userHandler.Get)

	// Shared food routes
	r.Post("/food", foodHandler.Create)
	r.Get("/food", foodHandler.List)
	r.Get("/foodexpiry", foodHandler.List)
	r.Get("/food/item/{id}", foodHandler.Get)
	r.Get("/food/expiring-soon/{id}", foodHandler.ExpiringSoon)
	r.Get("/food/{id}", foodHandler.ListByOwner)
	r.Put("/food/{id}", foodHandler.Update)
	r.Delete("/food/{id}", foodHandler.Delete)

	// Notes
	r.Post("/food/{id}/notes", noteHandler.Create)
	r.Get("/food/{id}/notes", noteHandler.List)
	r.Delete("/notes/{id}", noteHandler.Delete)

	// Private pantry routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireBearer(svc.Tokens))
		r.Post("/addfood", pantryHandler.Create)
		r.Get("/addfood", pantryHandler.ListMine)
		r.Get("/addfood/{id}", pantryHandler.ListForUser)
		r.Put("/addfood/{id}", pantryHandler.Update)
		r.Delete("/addfood/{id}", pantryHandler.Delete)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	return &Handler{Router: r}
}

// exposeRequestID возвращает id запроса, выданный chi, в заголовке ответа.
func exposeRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := chimw.GetReqID(r.Context()); id != "" {
			w.Header().Set(chimw.RequestIDHeader, id)
		}
		next.ServeHTTP(w, r)
	})
}
