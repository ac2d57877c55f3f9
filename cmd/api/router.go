package main

import (
	"context"
	"net/http"
	"time"

	"bookshelf/internal/books"
	"bookshelf/internal/httpx"
)

func newRouter(cfg config, bookHandler *books.HTTPHandler, ping func(context.Context) error) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	bookHandler.Routes(mux)

	return httpx.Chain(mux,
		httpx.RecoveryMiddleware,
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware,
		httpx.CORSMiddleware(cfg.AllowedOrigins),
		httpx.RequestSizeLimitMiddleware(cfg.MaxBodyBytes),
		httpx.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, cfg.TrustProxy).Middleware,
	)
}
