// Package integration contains end-to-end tests for solgate-server.
//
// The tests start the server in-process against a real Solana RPC node and call it through
// the Go client. They expect a local validator (solana-test-validator) at
// http://localhost:8899, or the node named by INTEGRATION_RPC_URL, and are skipped when the
// node does not answer the health check.
//
//	solana-test-validator --reset &
//	go test -tags=integration -v ./test/integration
//
// These tests assume the crypto and ledger packages are working correctly (tested separately).
package integration
