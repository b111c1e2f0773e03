// @title Public Policy Feedback API
// @version 0.1.0
// @description API for summarising support for a policy across demographic groups.
// @BasePath /
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	flag "github.com/spf13/pflag"

	"policy-survey-api/internal/api"
	"policy-survey-api/internal/api/handler"
	"policy-survey-api/internal/config"
	"policy-survey-api/internal/dataset"
	"policy-survey-api/internal/query"
	"policy-survey-api/pkg/router"
)

func main() {
	configFile := flag.String("config", "", "path to a YAML, JSON or TOML config file")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("❌ Config error: %v", err)
	}

	// Load the dataset once; handlers only ever read it
	ds, err := dataset.Load(cfg.DataPath)
	if err != nil {
		log.Fatalf("❌ Failed to load dataset: %v", err)
	}
	log.Printf("📊 Serving %d survey responses from %s", ds.Len(), cfg.DataPath)

	svc := query.NewService(ds)

	r := router.New()
	r.Use(router.RequestIDMiddleware, router.RecoveryMiddleware)
	api.RegisterRoutes(r, handler.NewSurveyHandler(svc), cfg.Docs.Enabled)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := r.Start(ctx, router.ServerConfig{
		Addr:            cfg.HTTP.Addr,
		ReadTimeout:     cfg.HTTP.ReadTimeout,
		WriteTimeout:    cfg.HTTP.WriteTimeout,
		IdleTimeout:     cfg.HTTP.IdleTimeout,
		ShutdownTimeout: cfg.HTTP.ShutdownTimeout,
	}); err != nil {
		log.Fatalf("❌ Server error: %v", err)
	}
}
