package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-cred-vault/internal/config"
	"github.com/MKhiriev/go-cred-vault/internal/handler"
	"github.com/MKhiriev/go-cred-vault/internal/logger"
	"github.com/MKhiriev/go-cred-vault/internal/server"
	"github.com/MKhiriev/go-cred-vault/internal/service"
	"github.com/MKhiriev/go-cred-vault/internal/store"
	"github.com/MKhiriev/go-cred-vault/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("vault-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err = migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)
	services := service.NewServices(storages, cfg, log)

	handlers, err := handler.NewHandlers(services, db.ErrorClassifier(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
