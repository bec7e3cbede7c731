// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/gophertalk/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// UI is the interactive part of the client.
type UI interface {
	// LoginFlow authenticates the user. It returns tui.ErrUserQuit when the
	// user leaves instead.
	LoginFlow(ctx context.Context) (models.Session, error)

	// MainLoop blocks until the user quits (logout == false) or logs out.
	MainLoop(ctx context.Context, session models.Session) (logout bool, err error)
}
