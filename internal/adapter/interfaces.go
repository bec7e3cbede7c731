// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the gophertalk REST API.
//
// [ServerAdapter] decouples the terminal client's services from the
// transport. Error values defined in errors.go are mapped from HTTP status
// codes by mapHTTPError so that callers can use [errors.Is] (e.g.
// [ErrUnauthorized] for 401, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/gophertalk/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter talks to the gophertalk API on behalf of one user.
type ServerAdapter interface {
	// SetTokens stores the pair used by authenticated requests and by Refresh.
	SetTokens(pair models.TokenPair)

	// Tokens returns the pair currently held by the adapter.
	Tokens() models.TokenPair

	// Register and Login store the returned pair via SetTokens.
	Register(ctx context.Context, req models.RegisterRequest) (models.TokenPair, error)
	Login(ctx context.Context, req models.LoginRequest) (models.TokenPair, error)

	// Refresh exchanges the stored refresh token for a new pair and stores it.
	Refresh(ctx context.Context) (models.TokenPair, error)

	GetPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, error)
	GetPost(ctx context.Context, postID int64) (models.Post, error)
	CreatePost(ctx context.Context, post models.CreatePostRequest) (models.Post, error)
	DeletePost(ctx context.Context, postID int64) error
	ViewPost(ctx context.Context, postID int64) error
	LikePost(ctx context.Context, postID int64) error
	UnlikePost(ctx context.Context, postID int64) error

	GetUser(ctx context.Context, userID int64) (models.User, error)

	// Version returns the API version string.
	Version(ctx context.Context) (string, error)
}
