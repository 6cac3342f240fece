// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package osseusconfig resolves the configuration of a hosting application
// from four layered sources: environment variables, a per-environment file,
// remote secrets and command-line flags (later sources win).
//
// Keys prefixed with "osseus_" are grouped one level deep
// (osseus_db_host becomes {"osseus_db": {"host": ...}}); keys prefixed with
// "cfg_" override a top-level value (cfg_timeout becomes "timeout"). String
// values are coerced to booleans, numbers, arrays or objects when they parse
// as JSON.
//
// Resolution fails unless at least one osseus_ group is present.
package osseusconfig

import (
	"context"
	"os"

	"github.com/MKhiriev/osseus-config/internal/app"
	"github.com/MKhiriev/osseus-config/internal/config"
	"github.com/MKhiriev/osseus-config/internal/logger"
	"github.com/MKhiriev/osseus-config/models"
)

// Configuration is the resolved configuration object.
type Configuration = models.Configuration

// Init resolves the configuration from os.Args and os.Environ.
func Init(ctx context.Context) (Configuration, error) {
	return InitWith(ctx, os.Args[1:], os.Environ())
}

// InitWith resolves the configuration from an explicit command line (without
// the program name) and environment in "KEY=value" form. Logs go to stderr.
func InitWith(ctx context.Context, args, environ []string) (Configuration, error) {
	return initWith(ctx, args, environ, logger.NewLogger("osseus-config"))
}

func initWith(ctx context.Context, args, environ []string, log *logger.Logger) (Configuration, error) {
	cfg, err := config.Load(args, environ)
	if err != nil {
		log.Err(err).Msg(app.MsgInvalidBootstrap)
		return nil, err
	}

	a, err := app.New(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := a.Close(); cerr != nil {
			log.Warn().Err(cerr).Msg("error closing secrets backend")
		}
	}()

	return a.Resolve(ctx)
}
