// Package api holds the request/response types shared by the gateway endpoints and the
// helpers used to send responses.
//
// **envelope**
// every endpoint answers with the same JSON envelope:
//
//	{"success": true, "data": {...}}
//	{"success": false, "error": "invalid pubkey: ..."}
//
// **error handling**
// crypto and ledger have their own error types. The handlers return them unchanged and
// RespondWithErrorResponse() maps them to a status code:
//   - malformed identifiers (public keys, secrets, signatures) and invalid fields: 400
//   - ledger RPC, transaction and signer configuration failures: 500
//
// The error text returned to the client is the full error, including the text of the
// underlying library error.
//
// The endpoint handlers are in api/handlers.
package api
