package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/chj1210/investigator/internal/api/handlers"
	"github.com/chj1210/investigator/internal/config"
	"github.com/chj1210/investigator/internal/metrics"
	"github.com/chj1210/investigator/internal/middleware"
	"github.com/chj1210/investigator/internal/services"
)

func NewRouter(cfg config.Config, cs *services.CaseService, ts *services.TransactionService) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover, middleware.HTTPMetrics, middleware.RateLimit(cfg.RateRPS))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", metrics.Handler())

	ch := handlers.NewCaseHandler(cs)
	th := handlers.NewTransactionHandler(ts)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/cases", func(r chi.Router) {
			r.Post("/", ch.Create)
			r.Get("/", ch.List)
			r.Get("/{id}", ch.Get)
			r.Put("/{id}", ch.Update)
			r.Delete("/{id}", ch.Delete)
			r.Post("/{id}/analyze", ch.Analyze)
			r.Post("/{id}/transactions", th.Create)
			r.Get("/{id}/transactions", th.ListByCase)
		})
		r.Delete("/transactions/{id}", th.Delete)
	})

	return r
}
