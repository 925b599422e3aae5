package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/GAUSHUL78/Campus-Issue-Tracker/internal/config"
	"github.com/GAUSHUL78/Campus-Issue-Tracker/internal/handlers"
	"github.com/GAUSHUL78/Campus-Issue-Tracker/internal/middleware"
	"github.com/GAUSHUL78/Campus-Issue-Tracker/internal/models"
	"github.com/GAUSHUL78/Campus-Issue-Tracker/internal/repository/postgres"
	"github.com/GAUSHUL78/Campus-Issue-Tracker/internal/service"
	"github.com/GAUSHUL78/Campus-Issue-Tracker/internal/storage"
)

func New(log zerolog.Logger, db *pgxpool.Pool, cfg config.Config, images *storage.Store) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recoverer(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.Origin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))
	r.Use(httprate.LimitByIP(200, time.Minute))

	r.Get("/", handlers.Root())
	r.Get("/healthz", handlers.Health())

	// Uploaded images are public by filename.
	r.Handle("/uploads/*", http.StripPrefix("/uploads/",
		http.FileServer(http.Dir(images.Dir()))))

	accountRepo := postgres.NewAccountRepo(db)
	problemRepo := postgres.NewProblemRepo(db)
	devRepo := postgres.NewDevelopmentRepo(db)

	ah := handlers.NewAuthHTTP(service.NewAuthService(accountRepo, cfg))
	ph := handlers.NewProblemHTTP(problemRepo, images)
	dh := handlers.NewDevelopmentHTTP(devRepo)

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", ah.Register())
		r.Post("/login", ah.Login())
	})

	r.Route("/api/problems", func(r chi.Router) {
		r.Use(middleware.Authenticate(cfg))
		r.With(middleware.RequireRoles(models.RoleStudent)).Post("/", ph.Create())
		r.With(middleware.RequireRoles(models.RoleStudent)).Get("/my", ph.Mine())
		r.With(middleware.RequireRoles(models.RoleAdmin)).Get("/", ph.List())
		r.With(middleware.RequireRoles(models.RoleAdmin)).Get("/filters", ph.FilterOptions())
		r.With(middleware.RequireRoles(models.RoleAdmin)).Get("/stats", ph.Stats())
		r.With(middleware.RequireRoles(models.RoleAdmin)).Put("/{id}/status", ph.UpdateStatus())
		r.With(middleware.RequireRoles(models.RoleStudent, models.RoleAdmin)).Delete("/{id}", ph.Delete())
	})

	r.Route("/api/developments", func(r chi.Router) {
		r.Use(middleware.Authenticate(cfg))
		r.With(middleware.RequireRoles(models.RoleStudent, models.RoleAdmin)).Get("/", dh.List())
		r.With(middleware.RequireRoles(models.RoleAdmin)).Post("/", dh.Create())
		r.With(middleware.RequireRoles(models.RoleAdmin)).Put("/{id}", dh.Update())
	})

	return r
}
