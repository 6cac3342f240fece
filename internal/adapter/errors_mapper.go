// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

type backendError struct {
	Type         string `json:"__type"`
	Message      string `json:"message"`
	MessageUpper string `json:"Message"`
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	var be backendError
	if json.Unmarshal(resp.Body(), &be) == nil && be.Type != "" {
		msg := be.Message
		if msg == "" {
			msg = be.MessageUpper
		}

		kind := be.Type
		if i := strings.LastIndex(kind, "#"); i >= 0 {
			kind = kind[i+1:]
		}

		switch kind {
		case "ResourceNotFoundException":
			return fmt.Errorf("%w: %s", ErrSecretNotFound, msg)
		case "InvalidRequestException":
			return fmt.Errorf("%w: %s", ErrInvalidRequest, msg)
		case "InvalidParameterException":
			return fmt.Errorf("%w: %s", ErrInvalidParameter, msg)
		case "InternalServiceError", "ServiceUnavailable", "ThrottlingException":
			return fmt.Errorf("%w: %s: %s", ErrBackendUnavailable, kind, msg)
		default:
			return fmt.Errorf("http %d: %s: %s", resp.StatusCode(), kind, msg)
		}
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrInvalidRequest, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrSecretNotFound, body)
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrBackendUnavailable, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}
