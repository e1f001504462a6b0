package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/yourorg/listings-app/gsl"
	"github.com/yourorg/listings-app/internal/env"
	"github.com/yourorg/listings-app/internal/logger"
	"github.com/yourorg/listings-app/internal/repo"
)

func main() {
	env.Load()

	port := env.GetInt("PORT", 4002)
	baseURL := env.Get("LISTINGS_BASE_URL", "")
	log := logger.New(env.Get("LOG_LEVEL", "info"))

	opts := []gsl.Option{}
	if baseURL != "" {
		opts = append(opts, gsl.WithBaseURL(baseURL))
	}
	client := gsl.NewClient(opts...)
	repository := repo.New(client, log)
	router := BuildRouter(repository, log)

	log.Info("listings gateway listening", "port", port)
	if err := http.ListenAndServe(fmt.Sprintf(":%d", port), router); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
