// Package handlers provides general infrastructure HTTP handlers
// (health, readiness, version, jwks, docs).
//
// The gateway endpoints are in internal/api/handlers.
package handlers
