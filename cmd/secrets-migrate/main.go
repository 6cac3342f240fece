// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command secrets-migrate creates the secrets table in the SQL database
// addressed by SECRETS_DSN (or --secrets_dsn). A missing SQLite file is
// created.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/osseus-config/internal/app"
	"github.com/MKhiriev/osseus-config/internal/config"
	"github.com/MKhiriev/osseus-config/internal/logger"
	"github.com/MKhiriev/osseus-config/internal/store"
	"github.com/MKhiriev/osseus-config/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Fprint(os.Stderr, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("secrets-migrate")

	cfg, err := config.Load(os.Args[1:], os.Environ())
	if err != nil {
		log.Fatal().Err(err).Msg(app.MsgInvalidBootstrap)
	}

	leveled, err := log.WithLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg(app.MsgInvalidBootstrap)
	}
	log = leveled

	if cfg.Secrets.DSN == "" {
		log.Fatal().Msg("SECRETS_DSN is not set")
	}

	db, err := store.NewSecretsDB(context.Background(), cfg.Secrets.DSN, true, log)
	if err != nil {
		log.Fatal().Err(err).Msg(app.MsgSecretsBackendUnavailable)
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Str("dialect", db.Dialect()).Msg(app.MsgMigrationFailed)
	}

	log.Info().Str("dialect", db.Dialect()).Msg("secrets table is up to date")
}
