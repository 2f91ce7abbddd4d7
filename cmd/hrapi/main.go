package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aerohr/console/internal/config"
	"github.com/aerohr/console/internal/hrapi"
)

func main() {
	config.LoadDotEnv()
	cfg := config.LoadServer()

	store := hrapi.NewStore()
	if cfg.Seed {
		if err := hrapi.Seed(store, time.Now()); err != nil {
			log.Fatalf("Failed to seed store: %v", err)
		}
	}

	server := hrapi.NewServer(store, hrapi.NewAuthenticator(cfg.JWTSecret))
	srv := &http.Server{
		Addr:    "0.0.0.0:" + cfg.Port,
		Handler: server.Router(),
	}

	go func() {
		log.Printf("🚀 HR API listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Give in-flight requests 5 seconds to finish.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Server exiting")
}
