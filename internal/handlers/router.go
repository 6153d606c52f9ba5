package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"dsa_tracker/internal/config"
	"dsa_tracker/internal/middleware"
	"dsa_tracker/internal/service"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"gorm.io/gorm"
)

// RouterDeps はルーターの組み立てに必要な依存関係です。
type RouterDeps struct {
	Logger         *slog.Logger
	DB             *gorm.DB
	CORS           config.CORSConfig
	AuthService    service.AuthService
	TrackerService service.TrackerService
}

// NewRouter はミドルウェアとAPIルートを設定したルーターを返します。
func NewRouter(deps RouterDeps) http.Handler {
	authHandler := NewAuthHandler(deps.AuthService)
	trackerHandler := NewTrackerHandler(deps.TrackerService)
	healthHandler := NewHealthHandler(deps.DB)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(deps.Logger))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   deps.CORS.AllowedOrigins,
		AllowedMethods:   deps.CORS.AllowedMethods,
		AllowedHeaders:   deps.CORS.AllowedHeaders,
		ExposedHeaders:   deps.CORS.ExposedHeaders,
		AllowCredentials: deps.CORS.AllowCredentials,
		MaxAge:           deps.CORS.MaxAge,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Route("/api/v1", func(r chi.Router) {
		// --- Public routes ---
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		// --- Protected routes ---
		r.Group(func(r chi.Router) {
			r.Use(middleware.SessionAuthMiddleware(deps.AuthService))

			r.Post("/auth/logout", authHandler.Logout)
			r.Get("/auth/profile", authHandler.Profile)

			r.Get("/topics", trackerHandler.GetTopics)
			r.Get("/topics/{topic_id}", trackerHandler.GetTopic)
			r.Get("/dashboard", trackerHandler.GetDashboard)
			r.Post("/problems/{problem_id}/toggle", trackerHandler.ToggleProblem)
		})
	})

	r.Get("/health", healthHandler.Health)

	return r
}
