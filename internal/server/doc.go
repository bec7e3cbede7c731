// Package server runs the HTTP API and the optional gRPC health endpoint
// side by side and stops both when the process is signalled.
package server
