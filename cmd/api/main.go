package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookshelf/internal/books"
	"bookshelf/internal/store"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	loadEnvFiles()
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	dbPool := mustOpenDB(cfg.DatabaseDSN)
	defer dbPool.Close()

	bookRepository := store.NewBookPG(dbPool, cfg.DBTimeout)
	bookStore := books.NewStore(nil)
	bookStore.Subscribe(func(s *books.State) {
		selected := "-"
		if s.SelectedISBN != nil {
			selected = *s.SelectedISBN
		}
		log.Printf("state books=%d loading=%t selected=%s", len(s.Books), s.Loading, selected)
	})
	effects := books.NewEffects(bookRepository, bookStore, cfg.DBTimeout)
	bookHandler := books.NewHTTPHandler(bookStore, effects)

	if err := effects.LoadBooks(context.Background()); err != nil {
		log.Printf("initial load failed: %v", err)
	}

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      newRouter(cfg, bookHandler, dbPool.Ping),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting server on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
	log.Println("server stopped")
}

func mustOpenDB(dsn string) *pgxpool.Pool {
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("cannot create db pool: %v", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		log.Fatalf("cannot ping database (%s): %v", redactDSN(dsn), err)
	}
	log.Println("database connection OK")
	return pool
}
