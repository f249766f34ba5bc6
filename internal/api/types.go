package api

// types.go defines the request and response payloads of the gateway endpoints.
// Success responses are wrapped in the Response envelope: {"success": true, "data": <payload>}

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// KeypairResponse is returned by POST /keypair
type KeypairResponse struct {
	// base58 encoded public key
	Pubkey string `json:"pubkey" example:"5jqvR3BKo8zvzDqS8oVbZ6PjXj4s9ziZNGpXYj1HFjGn"`

	// base58 encoding of the 64 byte secret key (seed followed by the public key)
	Secret string `json:"secret" example:"4NMwxzmYj2uvHuq8xoqhY8RXg63KSVJM1DXkpbmkUY7YQWuoyQgFnnzn6yo3CMnqZasnNPNuAT2TLwQsCaKkUddp"`
}

// CreateTokenRequest is the body of POST /token/create
type CreateTokenRequest struct {
	MintAuthority string `json:"mint_authority" example:"5jqvR3BKo8zvzDqS8oVbZ6PjXj4s9ziZNGpXYj1HFjGn"`

	// number of decimal places of the token (0-255). Required
	Decimals *uint8 `json:"decimals" example:"6"`
}

// CreateTokenResponse is returned by POST /token/create
type CreateTokenResponse struct {
	Mint                 string `json:"mint"`
	MintAuthority        string `json:"mint_authority"`
	TransactionSignature string `json:"transaction_signature"`
}

// MintTokenRequest is the body of POST /token/mint
type MintTokenRequest struct {
	Mint string `json:"mint"`

	// wallet that owns the destination token account
	Destination string `json:"destination"`

	// mint authority, signs the instruction
	Authority string `json:"authority"`

	// amount in base units of the token. Must be greater than 0
	Amount uint64 `json:"amount" example:"1000000"`
}

// AccountDescription describes an account referenced by an instruction
type AccountDescription struct {
	Pubkey     string `json:"pubkey"`
	IsSigner   bool   `json:"is_signer"`
	IsWritable bool   `json:"is_writable"`
}

// InstructionDescription is an unsigned instruction the caller can add to a transaction
type InstructionDescription struct {
	ProgramID string               `json:"program_id"`
	Accounts  []AccountDescription `json:"accounts"`

	// base64 encoded instruction data
	InstructionData string `json:"instruction_data"`
}

// SignMessageRequest is the body of POST /message/sign
type SignMessageRequest struct {
	Message string `json:"message" example:"hello"`

	// base58 encoded 64 byte secret key
	Secret string `json:"secret"`
}

// SignMessageResponse is returned by POST /message/sign
type SignMessageResponse struct {
	// base58 encoded Ed25519 signature
	Signature string `json:"signature"`
	PublicKey string `json:"public_key"`
	Message   string `json:"message"`
}

// VerifyMessageRequest is the body of POST /message/verify
type VerifyMessageRequest struct {
	Message string `json:"message" example:"hello"`

	// base58 encoded Ed25519 signature
	Signature string `json:"signature"`

	// base58 encoded public key. Required unless Secret is supplied
	Pubkey string `json:"pubkey"`

	// optional base58 secret key, used to derive the public key when Pubkey is empty
	Secret string `json:"secret,omitempty"`
}

// VerifyMessageResponse is returned by POST /message/verify
type VerifyMessageResponse struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
	Pubkey  string `json:"pubkey"`
}

// BalanceResponse is returned by GET /balance/{pubkey}
type BalanceResponse struct {
	Pubkey string `json:"pubkey"`

	// balance in lamports
	Balance uint64 `json:"balance" example:"1500000000"`

	// balance in SOL
	SOL float64 `json:"sol" example:"1.5"`
}

// AirdropResponse is returned by GET /airdrop/{pubkey}
type AirdropResponse struct {
	Pubkey         string  `json:"pubkey"`
	AirdropAmount  float64 `json:"airdrop_amount" example:"1"`
	AmountLamports uint64  `json:"amount_lamports" example:"1000000000"`
	TxSignature    string  `json:"tx_signature"`
}

// UserAirdropRequest is the body of POST /user/airdrop
type UserAirdropRequest struct {
	Pubkey string `json:"pubkey"`

	// amount in SOL. Must be greater than 0
	Amount float64 `json:"amount" example:"0.5"`
}

// UserAirdropResponse is returned by POST /user/airdrop
type UserAirdropResponse struct {
	Pubkey         string  `json:"pubkey"`
	AmountSOL      float64 `json:"amount_sol" example:"0.5"`
	AmountLamports uint64  `json:"amount_lamports" example:"500000000"`
	TxSignature    string  `json:"tx_signature"`
}

// SendTokenRequest is the body of POST /send/token
type SendTokenRequest struct {
	// wallet that owns the destination token account
	Destination string `json:"destination"`
	Mint        string `json:"mint"`

	// wallet that owns the source token account. Must be the server signer
	Owner string `json:"owner"`

	// amount in base units of the token. Must be greater than 0
	Amount uint64 `json:"amount" example:"1000"`
}

// SendTokenResponse is returned by POST /send/token
type SendTokenResponse struct {
	TxSignature string `json:"tx_signature"`

	// source token account
	Source string `json:"source"`

	// destination token account
	Destination string `json:"destination"`
}

// DecodeJSONBody decodes the JSON request body into dst.
//
// Bodies rejected by http.MaxBytesReader return a request too large error; any other decode failure
// (invalid JSON, wrong field types, trailing data) returns a malformed request error.
func DecodeJSONBody(r *http.Request, dst any) error {
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return NewRequestTooLargeError(fmt.Sprintf("request body exceeds %d bytes", maxBytesErr.Limit))
		}
		if errors.Is(err, io.EOF) {
			return NewMalformedRequestError("request body is empty")
		}
		return WrapMalformedRequestError(err, "failed to decode request body")
	}
	if decoder.More() {
		return NewMalformedRequestError("request body must contain a single JSON object")
	}
	return nil
}
