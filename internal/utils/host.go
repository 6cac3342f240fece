// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/osseus-config/models"
)

// HostInstanceProvider reports the local hostname and process id.
type HostInstanceProvider struct {
	hostname func() (string, error)
	pid      func() int
}

// NewHostInstanceProvider returns a provider backed by os.Hostname and
// os.Getpid.
func NewHostInstanceProvider() *HostInstanceProvider {
	return &HostInstanceProvider{hostname: os.Hostname, pid: os.Getpid}
}

// GetInstanceID returns the current host name and process id.
func (p *HostInstanceProvider) GetInstanceID(_ context.Context) (models.Instance, error) {
	name, err := p.hostname()
	if err != nil {
		return models.Instance{}, fmt.Errorf("error getting hostname: %w", err)
	}

	return models.Instance{Name: name, PID: p.pid()}, nil
}
