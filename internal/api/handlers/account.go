package handlers

// account.go implements the SOL balance and devnet airdrop endpoints

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/solgate/solgate/internal/api"
	"github.com/solgate/solgate/internal/crypto"
	"github.com/solgate/solgate/internal/ledger"
	"github.com/solgate/solgate/internal/logger"
)

// AccountHandler handles the balance and airdrop endpoints
type AccountHandler struct {
	service LedgerService

	// airdropLamports is the amount requested by GET /airdrop/{pubkey}
	airdropLamports uint64
}

// NewAccountHandler creates a new handler for the account endpoints
func NewAccountHandler(service LedgerService, airdropLamports uint64) *AccountHandler {
	return &AccountHandler{
		service:         service,
		airdropLamports: airdropLamports,
	}
}

// HandleBalance godoc
//
//	@Summary		Get SOL balance
//	@Description	Returns the balance of the account in lamports and in SOL.
//	@Tags			Accounts
//	@Produce		json
//
//	@Param			pubkey	path		string									true	"base58 public key"
//
//	@Success		200		{object}	api.Response{data=api.BalanceResponse}	"Balance"
//	@Failure		400		{object}	api.ErrorResponse						"Invalid public key"
//	@Failure		500		{object}	api.ErrorResponse						"Ledger RPC error"
//
//	@Router			/balance/{pubkey} [get]
func (h *AccountHandler) HandleBalance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	account, err := crypto.ParsePublicKey("pubkey", chi.URLParam(r, "pubkey"))
	if err != nil {
		api.RespondWithErrorResponse(w, r, err)
		return
	}
	logger.ContextWithLogAttrs(ctx, slog.String("pubkey", account.String()))

	balance, err := h.service.Balance(ctx, account)
	if err != nil {
		api.RespondWithErrorResponse(w, r, err)
		return
	}

	api.RespondWithData(w, api.BalanceResponse{
		Pubkey:  account.String(),
		Balance: balance,
		SOL:     ledger.LamportsToSOL(balance),
	})
}

// HandleAirdrop godoc
//
//	@Summary		Request airdrop
//	@Description	Requests the configured airdrop amount (default 1 SOL) from the cluster faucet.
//	@Description
//	@Description	Devnet airdrops are limited to 1 SOL per request and 5 SOL per day. The airdrop is not waited for,
//	@Description	use `tx_signature` to follow it.
//	@Tags			Accounts
//	@Produce		json
//
//	@Param			pubkey	path		string									true	"base58 public key"
//
//	@Success		200		{object}	api.Response{data=api.AirdropResponse}	"Airdrop requested"
//	@Failure		400		{object}	api.ErrorResponse						"Invalid public key"
//	@Failure		500		{object}	api.ErrorResponse						"Airdrop rejected or ledger RPC error"
//
//	@Router			/airdrop/{pubkey} [get]
func (h *AccountHandler) HandleAirdrop(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	account, err := crypto.ParsePublicKey("pubkey", chi.URLParam(r, "pubkey"))
	if err != nil {
		api.RespondWithErrorResponse(w, r, err)
		return
	}
	logger.ContextWithLogAttrs(ctx, slog.String("pubkey", account.String()))

	signature, err := h.service.Airdrop(ctx, account, h.airdropLamports)
	if err != nil {
		api.RespondWithErrorResponse(w, r, err)
		return
	}

	api.RespondWithData(w, api.AirdropResponse{
		Pubkey:         account.String(),
		AirdropAmount:  ledger.LamportsToSOL(h.airdropLamports),
		AmountLamports: h.airdropLamports,
		TxSignature:    signature.String(),
	})
}

// HandleUserAirdrop godoc
//
//	@Summary		Request airdrop of an amount
//	@Description	Requests `amount` SOL from the cluster faucet. The amount is rounded to the nearest lamport.
//	@Description
//	@Description	Devnet airdrops are limited to 1 SOL per request and 5 SOL per day.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//
//	@Param			request	body		api.UserAirdropRequest						true	"Public key and amount in SOL"
//
//	@Success		200		{object}	api.Response{data=api.UserAirdropResponse}	"Airdrop requested"
//	@Failure		400		{object}	api.ErrorResponse							"Invalid public key or amount"
//	@Failure		500		{object}	api.ErrorResponse							"Airdrop rejected or ledger RPC error"
//
//	@Router			/user/airdrop [post]
func (h *AccountHandler) HandleUserAirdrop(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.UserAirdropRequest
	if err := api.DecodeJSONBody(r, &req); err != nil {
		api.RespondWithErrorResponse(w, r, err)
		return
	}

	account, err := crypto.ParsePublicKey("pubkey", req.Pubkey)
	if err != nil {
		api.RespondWithErrorResponse(w, r, err)
		return
	}

	lamports, err := ledger.SOLToLamports(req.Amount)
	if err != nil {
		api.RespondWithErrorResponse(w, r, api.WrapInvalidInputError(err, "invalid amount"))
		return
	}

	logger.ContextWithLogAttrs(ctx,
		slog.String("pubkey", account.String()),
		slog.Uint64("lamports", lamports),
	)

	signature, err := h.service.Airdrop(ctx, account, lamports)
	if err != nil {
		api.RespondWithErrorResponse(w, r, err)
		return
	}

	api.RespondWithData(w, api.UserAirdropResponse{
		Pubkey:         account.String(),
		AmountSOL:      req.Amount,
		AmountLamports: lamports,
		TxSignature:    signature.String(),
	})
}
