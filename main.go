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

	"bankist.dev/bankist/pkg/api"
	"bankist.dev/bankist/pkg/bankist"
	"bankist.dev/bankist/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	accounts := bankist.DefaultAccounts()
	if cfg.SeedFile != "" {
		accounts, err = bankist.LoadSeed(cfg.SeedFile)
		if err != nil {
			log.Fatalf("Failed to load seed accounts: %v", err)
		}
	}
	store := bankist.NewStore(accounts)
	log.Printf("Loaded %d accounts", store.Len())

	accessLog, err := os.OpenFile(cfg.AccessLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer accessLog.Close()

	s := api.NewServer(store, cfg.JWTSecret,
		api.WithSessionTTL(cfg.SessionTTL),
		api.WithAccessLog(accessLog),
	)
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Shutdown: %v", err)
		}
	}()

	log.Println("Starting server on", cfg.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Failed to start server: %v", err)
	}
	log.Println("Server stopped")
}
