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

	"github.com/Simplici0/product-jarvis/internal/api"
	"github.com/Simplici0/product-jarvis/internal/config"
	"github.com/Simplici0/product-jarvis/internal/db"
	"github.com/Simplici0/product-jarvis/internal/migrations"
	"github.com/Simplici0/product-jarvis/internal/seed"
	"github.com/Simplici0/product-jarvis/internal/store"
)

func main() {
	cfg := config.Load()

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer database.Close()

	if err := migrations.Up(database.DB); err != nil {
		log.Fatalf("failed to run database migrations: %v", err)
	}

	if cfg.SeedOnStart {
		stats, err := seed.Run(database)
		if err != nil {
			log.Fatalf("failed to seed rate card: %v", err)
		}
		log.Printf("seeded rate card: %d inserts", stats.Inserts)
	}

	router := api.NewRouter(store.New(database), api.Options{
		APIBase:    cfg.APIBase,
		CORSOrigin: cfg.CORSOrigin,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("listening on %s (api base %s, env %s)", srv.Addr, cfg.APIBase, cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server stopped: %v", err)
		}
	}()

	<-ctx.Done()
	log.Print("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}
