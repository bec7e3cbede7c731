// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the merged [StructuredConfig] carries everything the
// server needs before it starts.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.AccessTokenSecret == "" || cfg.App.RefreshTokenSecret == "" {
		return ErrMissingTokenSecrets
	}

	if cfg.App.AccessTokenSecret == cfg.App.RefreshTokenSecret {
		return fmt.Errorf("%w: access and refresh secrets must differ", ErrInvalidAppConfigs)
	}

	if cfg.App.AccessTokenDuration <= 0 || cfg.App.RefreshTokenDuration <= 0 {
		return fmt.Errorf("%w: token durations must be positive", ErrInvalidAppConfigs)
	}

	if cfg.Storage.DB.ConnString() == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.BaseURL == "" || cfg.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.SessionDB == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
