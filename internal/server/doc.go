// Package server provides the HTTP server for solgate.
//
// the server is configured through environment variables
// (see internal/config/config.go for details)
//
// The router serves
//   - the gateway endpoints (internal/api/handlers)
//   - common infrastructure handlers (health, readiness, version, jwks, docs, metrics)
//
// middleware is in internal/server/middleware
package server
