package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"

	"github.com/danakita/expense-tracker/internal/auth"
	"github.com/danakita/expense-tracker/internal/category"
	"github.com/danakita/expense-tracker/internal/transaction"
	"github.com/danakita/expense-tracker/internal/transport/middleware"
	"github.com/danakita/expense-tracker/internal/transport/swagger"
	"github.com/danakita/expense-tracker/internal/user"
)

// RegisterAllRoutes mounts the full API surface. Auth and category routes are
// public; everything touching the ledger or the profile sits behind the bearer
// token middleware.
func RegisterAllRoutes(router *chi.Mux, db *sql.DB, allowedOrigins string, authHandler *auth.Handler, txHandler *transaction.Handler, categoryHandler *category.Handler, userHandler *user.Handler, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS(allowedOrigins))
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	// OpenAPI document and swagger UI live at the root, outside the API prefix.
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		if authHandler != nil {
			r.Route("/auth", func(sr chi.Router) {
				sr.Post("/register", authHandler.Register)
				sr.Post("/login", authHandler.Login)
			})
		}

		// Category reference is global: no auth, no per-user scoping.
		if categoryHandler != nil {
			r.Get("/categories", categoryHandler.GetCategories)
			r.Post("/categories/default", categoryHandler.ResetDefaults)
		}

		if authHandler != nil {
			r.Group(func(pr chi.Router) {
				pr.Use(authHandler.AuthMiddleware)

				if txHandler != nil {
					pr.Route("/transactions", func(tr chi.Router) {
						tr.Get("/", txHandler.ListTransactions)
						tr.Post("/", txHandler.CreateTransaction)
						tr.Get("/summary", txHandler.GetSummary)
						tr.Get("/range/date", txHandler.GetByDateRange)
						tr.Get("/{id}", txHandler.GetTransaction)
						tr.Put("/{id}", txHandler.UpdateTransaction)
						tr.Delete("/{id}", txHandler.DeleteTransaction)
					})
				}

				if userHandler != nil {
					pr.Route("/user", func(ur chi.Router) {
						ur.Get("/profile", userHandler.GetProfile)
						ur.Put("/profile", userHandler.UpdateProfile)
						ur.Get("/settings", userHandler.GetSettings)
						ur.Put("/settings", userHandler.UpdateSettings)
					})
				}
			})
		}
	})
}
