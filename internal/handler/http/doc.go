// Package http implements the REST transport of gophertalk.
//
// It exposes route wiring, request handlers, and middleware used by the API.
// Authentication, request tracing, access logging and compression are handled
// in this package before requests are delegated to the service layer. Errors
// are rendered as {"detail": ...} bodies.
package http
