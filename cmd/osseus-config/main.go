// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command osseus-config resolves the configuration for the environment and
// application selected by ENV / APPLICATION_NAME (or --env /
// --application_name) and prints it to stdout as indented JSON.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/osseus-config/internal/app"
	"github.com/MKhiriev/osseus-config/internal/config"
	"github.com/MKhiriev/osseus-config/internal/logger"
	"github.com/MKhiriev/osseus-config/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("osseus-config")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(os.Args[1:], os.Environ())
	if err != nil {
		log.Fatal().Err(err).Msg(app.MsgInvalidBootstrap)
	}

	a, err := app.New(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating app")
	}

	result, err := a.Resolve(ctx)
	_ = a.Close()
	if err != nil {
		log.Fatal().Err(err).Msg(app.MsgResolutionFailed)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err = enc.Encode(result); err != nil {
		log.Fatal().Err(err).Msg("error writing configuration")
	}
}

func printBuildInfo() {
	fmt.Fprint(os.Stderr, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
}
