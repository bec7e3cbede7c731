package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-access-token-secret access token signing secret
//	-refresh-token-secret refresh token signing secret
//	-access-token-duration access token lifetime (e.g., "1h")
//	-refresh-token-duration refresh token lifetime (e.g., "24h")
//	-token-issuer token issuer name
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-log-level zerolog level name
//	-otlp-endpoint OTLP/HTTP trace collector endpoint
//	-server-url API base URL used by the terminal client
//	-session-db terminal client session file
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, grpcServerAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var accessSecret, refreshSecret string
	var accessDuration, refreshDuration time.Duration
	var tokenIssuer string
	var requestTimeout time.Duration
	var logLevel string
	var otlpEndpoint string
	var serverURL string
	var sessionDB string

	fs := flag.NewFlagSet("gophertalk", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&accessSecret, "access-token-secret", "", "Access token signing secret")
	fs.StringVar(&refreshSecret, "refresh-token-secret", "", "Refresh token signing secret")
	fs.DurationVar(&accessDuration, "access-token-duration", 0, "Access token lifetime (e.g., 1h)")
	fs.DurationVar(&refreshDuration, "refresh-token-duration", 0, "Refresh token lifetime (e.g., 24h)")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&otlpEndpoint, "otlp-endpoint", "", "OTLP/HTTP trace collector endpoint")
	fs.StringVar(&serverURL, "server-url", "", "API base URL used by the client")
	fs.StringVar(&sessionDB, "session-db", "", "Client session file")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			AccessTokenSecret:    accessSecret,
			RefreshTokenSecret:   refreshSecret,
			AccessTokenDuration:  accessDuration,
			RefreshTokenDuration: refreshDuration,
			TokenIssuer:          tokenIssuer,
			LogLevel:             logLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Telemetry: Telemetry{
			OTLPEndpoint: otlpEndpoint,
		},
		Adapter: Adapter{
			BaseURL: serverURL,
		},
		Client: Client{
			SessionDB: sessionDB,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
