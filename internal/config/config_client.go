// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"time"
)

// ClientConfig is the terminal client configuration view assembled from
// [StructuredConfig].
type ClientConfig struct {
	// BaseURL is the root URL of the REST API.
	BaseURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// SessionDB is the SQLite file holding the saved token pair.
	SessionDB string
	// LogFile receives client logs.
	LogFile string
	// LogLevel is a zerolog level name.
	LogLevel string
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration. Server-only settings are not validated.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		BaseURL:        cfg.Adapter.BaseURL,
		RequestTimeout: cfg.Adapter.RequestTimeout,
		SessionDB:      cfg.Client.SessionDB,
		LogFile:        cfg.Client.LogFile,
		LogLevel:       cfg.App.LogLevel,
	}
}
