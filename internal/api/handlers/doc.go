// Package handlers implements the gateway endpoints.
//
// Every handler is a single pass: decode the request, validate it, call the ledger service
// (or the crypto package for the endpoints that need no ledger access) and send the envelope.
// Identifier strings are parsed before anything else so that malformed input never
// reaches the ledger RPC endpoint.
//
// Handlers hold no mutable state and can serve concurrent requests.
package handlers
