package main

import (
	"net/http"
	"time"

	"subfun-backend/internal/app/consume"
	"subfun-backend/internal/app/market"
	"subfun-backend/internal/config"
	"subfun-backend/internal/store"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func newRouter(st store.Store, cfg config.ServerConfig) *chi.Mux {
	consumeSvc := consume.NewService(st)
	marketSvc := market.NewService(st)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.With(apiLogMiddleware()).Get("/health", healthHandler(st))

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(apiLogMiddleware())
		r.Use(bodyCaptureMiddleware(0))

		r.Route("/substances", func(r chi.Router) {
			r.Get("/", listSubstancesHandler())
			r.Get("/categories", listCategoriesHandler())
			r.Get("/category/{category}", substancesByCategoryHandler())
			r.Get("/{id}", getSubstanceHandler())
		})

		r.Route("/consume", func(r chi.Router) {
			r.Post("/{id}", consumeHandler(consumeSvc))
			r.Get("/status/{sessionKey}", consumeStatusHandler(consumeSvc))
			r.Delete("/{sessionKey}", clearSubstancesHandler(consumeSvc))
		})

		r.Route("/purchase", func(r chi.Router) {
			r.Get("/history", purchaseHistoryHandler(marketSvc))
			r.Post("/{id}", purchaseHandler(marketSvc))
		})

		r.Route("/inventory", func(r chi.Router) {
			r.Get("/", getInventoryHandler(marketSvc))
			r.Post("/", addInventoryHandler(marketSvc))
		})

		r.Route("/balance", func(r chi.Router) {
			r.Get("/", getBalanceHandler(marketSvc))
			r.Post("/topup", topupHandler(marketSvc))
		})
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeEnvelope(w, http.StatusNotFound, map[string]any{"error": "Not found"})
	})

	return r
}

func healthHandler(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := st.Ping(r.Context()); err != nil {
			writeEnvelope(w, http.StatusServiceUnavailable, map[string]any{"status": "degraded"})
			return
		}
		writeEnvelope(w, http.StatusOK, map[string]any{"status": "ok", "timestamp": time.Now().UnixMilli()})
	}
}
