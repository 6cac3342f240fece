// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/osseus-config/internal/config"
	"github.com/MKhiriev/osseus-config/internal/logger"
	"github.com/MKhiriev/osseus-config/internal/utils"
	"github.com/MKhiriev/osseus-config/models"
)

const (
	contentTypeJSON11 = "application/x-amz-json-1.1"
	targetHeader      = "X-Amz-Target"

	targetListSecrets    = "secretsmanager.ListSecrets"
	targetGetSecretValue = "secretsmanager.GetSecretValue"
)

type listSecretsRequest struct {
	MaxResults int    `json:"MaxResults,omitempty"`
	NextToken  string `json:"NextToken,omitempty"`
}

type listSecretsResponse struct {
	SecretList []struct {
		ARN  string `json:"ARN"`
		Name string `json:"Name"`
	} `json:"SecretList"`
	NextToken string `json:"NextToken"`
}

type getSecretValueRequest struct {
	SecretID string `json:"SecretId"`
}

type getSecretValueResponse struct {
	ARN          string  `json:"ARN"`
	Name         string  `json:"Name"`
	SecretString *string `json:"SecretString"`
}

type httpSecretsBackend struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPSecretsBackend constructs an HTTP implementation of [SecretsBackend]
// speaking the Secrets Manager JSON 1.1 protocol. The base URL is
// cfg.Endpoint, or the regional AWS endpoint when only cfg.Region is set.
//
// Requests are not signed; the backend is expected to be reachable without
// SigV4 (a local emulator or a signing proxy).
//
// Returns [ErrBackendNotConfigured] if neither Endpoint nor Region is set, or
// an error if the endpoint cannot be parsed as a valid URL.
func NewHTTPSecretsBackend(cfg config.Secrets, log *logger.Logger) (SecretsBackend, error) {
	raw := cfg.Endpoint
	if strings.TrimSpace(raw) == "" {
		if cfg.Region == "" {
			return nil, ErrBackendNotConfigured
		}
		raw = fmt.Sprintf("https://secretsmanager.%s.amazonaws.com", cfg.Region)
	}

	baseURL, err := normalizeBaseURL(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid secrets endpoint: %w", err)
	}

	return &httpSecretsBackend{
		client: utils.NewHTTPClient(baseURL, cfg.Timeout),
		logger: log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ListSecrets implements [SecretsBackend].
func (h *httpSecretsBackend) ListSecrets(ctx context.Context, nextToken string, limit int) (models.SecretPage, error) {
	var out listSecretsResponse
	if err := h.call(ctx, targetListSecrets, listSecretsRequest{MaxResults: limit, NextToken: nextToken}, &out); err != nil {
		return models.SecretPage{}, fmt.Errorf("list secrets: %w", err)
	}

	page := models.SecretPage{
		Secrets:   make([]models.SecretDescriptor, 0, len(out.SecretList)),
		NextToken: out.NextToken,
	}
	for _, s := range out.SecretList {
		id := s.ARN
		if id == "" {
			id = s.Name
		}
		page.Secrets = append(page.Secrets, models.SecretDescriptor{ID: id, Name: s.Name})
	}

	return page, nil
}

// GetSecretValue implements [SecretsBackend]. Binary-only secrets are
// returned as an empty string.
func (h *httpSecretsBackend) GetSecretValue(ctx context.Context, id string) (string, error) {
	var out getSecretValueResponse
	if err := h.call(ctx, targetGetSecretValue, getSecretValueRequest{SecretID: id}, &out); err != nil {
		return "", fmt.Errorf("get secret value %q: %w", id, err)
	}

	if out.SecretString == nil {
		return "", nil
	}
	return *out.SecretString, nil
}

func (h *httpSecretsBackend) call(ctx context.Context, target string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", contentTypeJSON11).
		SetHeader(targetHeader, target).
		SetBody(body).
		Post("/")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBackendUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Str("target", target).Int("status", resp.StatusCode()).Err(err).Msg("secrets backend call failed")
		return err
	}

	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
