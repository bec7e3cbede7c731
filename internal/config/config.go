// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net"
	"net/url"
	"os"
	"strconv"
	"time"
)

// StructuredConfig is the top-level configuration container for gophertalk.
// It aggregates all sub-configurations and is populated by merging values
// from environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//   - envDefault: value used when the variable is not set.
type StructuredConfig struct {
	// App holds token, password hashing and versioning settings.
	App App `envPrefix:"APP_"`

	// Storage holds the relational database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Telemetry holds OpenTelemetry exporter settings.
	Telemetry Telemetry `envPrefix:"TELEMETRY_"`

	// Adapter holds the settings the terminal client uses to reach the API.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Client holds terminal client local settings.
	Client Client `envPrefix:"CLIENT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control token
// lifecycle, password hashing and versioning.
type App struct {
	// AccessTokenSecret signs and verifies access tokens.
	// Env: APP_ACCESS_TOKEN_SECRET
	AccessTokenSecret string `env:"ACCESS_TOKEN_SECRET"`

	// RefreshTokenSecret signs and verifies refresh tokens. It must differ
	// from AccessTokenSecret so that one token type can never pass as the other.
	// Env: APP_REFRESH_TOKEN_SECRET
	RefreshTokenSecret string `env:"REFRESH_TOKEN_SECRET"`

	// AccessTokenDuration is the lifetime of an access token.
	// Env: APP_ACCESS_TOKEN_DURATION
	AccessTokenDuration time.Duration `env:"ACCESS_TOKEN_DURATION" envDefault:"1h"`

	// RefreshTokenDuration is the lifetime of a refresh token.
	// Env: APP_REFRESH_TOKEN_DURATION
	RefreshTokenDuration time.Duration `env:"REFRESH_TOKEN_DURATION" envDefault:"24h"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER" envDefault:"gophertalk"`

	// PasswordHashCost is the bcrypt cost factor.
	// Env: APP_PASSWORD_HASH_COST
	PasswordHashCost int `env:"PASSWORD_HASH_COST" envDefault:"10"`

	// Version is exposed via GET /version.
	// Env: APP_VERSION
	Version string `env:"VERSION" envDefault:"dev"`

	// LogLevel is a zerolog level name.
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Storage groups the configuration for the storage backends.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for PostgreSQL.
//
// The connection string is taken from DSN when it is set, otherwise it is
// assembled from the discrete host/port/name/user/password values.
type DB struct {
	// DSN is the full connection string.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	Host     string `env:"DATABASE_HOST" envDefault:"localhost"`
	Port     int    `env:"DATABASE_PORT" envDefault:"5432"`
	Name     string `env:"DATABASE_NAME" envDefault:"gophertalk"`
	User     string `env:"DATABASE_USER" envDefault:"gophertalk"`
	Password string `env:"DATABASE_PASSWORD" envDefault:"gophertalk"`
	SSLMode  string `env:"DATABASE_SSL_MODE" envDefault:"disable"`

	// MaxOpenConns and MaxIdleConns size the database/sql pool.
	MaxOpenConns int `env:"MAX_POOL_SIZE" envDefault:"10"`
	MaxIdleConns int `env:"MIN_POOL_SIZE" envDefault:"4"`

	// MigrateOnStart applies embedded migrations before serving.
	// Env: STORAGE_DB_MIGRATE_ON_START
	MigrateOnStart bool `env:"MIGRATE_ON_START" envDefault:"true"`
}

// ConnString returns the PostgreSQL connection string.
func (d DB) ConnString() string {
	if d.DSN != "" {
		return d.DSN
	}
	if d.Host == "" {
		return ""
	}

	host := d.Host
	if d.Port != 0 {
		host = net.JoinHostPort(d.Host, strconv.Itoa(d.Port))
	}

	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   host,
		Path:   "/" + d.Name,
	}
	if d.SSLMode != "" {
		u.RawQuery = url.Values{"sslmode": {d.SSLMode}}.Encode()
	}

	return u.String()
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address of the REST API in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS" envDefault:"localhost:8080"`

	// GRPCAddress is the TCP address of the gRPC health endpoint. Empty
	// disables the gRPC server.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Telemetry configures tracing. With an empty OTLPEndpoint spans are
// recorded but not exported.
type Telemetry struct {
	OTLPEndpoint string `env:"OTLP_ENDPOINT"`
	ServiceName  string `env:"SERVICE_NAME" envDefault:"gophertalk"`
}

// Adapter holds the settings of the outbound API client.
type Adapter struct {
	// BaseURL is the root URL of the REST API.
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:8080"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`
}

// Client holds terminal client local settings.
type Client struct {
	// SessionDB is the SQLite file holding the saved token pair.
	// Env: CLIENT_SESSION_DB
	SessionDB string `env:"SESSION_DB" envDefault:"gophertalk_session.db"`

	// LogFile receives client logs; the TUI owns stdout.
	// Env: CLIENT_LOG_FILE
	LogFile string `env:"LOG_FILE" envDefault:"gophertalk_client.log"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order (last source
// wins for non-zero fields):
//  1. Environment variables (with defaults)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}
