package handlers

import (
	"log/slog"
	"net/http"

	"github.com/solgate/solgate/internal/api"
	"github.com/solgate/solgate/internal/crypto"
	"github.com/solgate/solgate/internal/logger"
)

// TransferHandler handles POST /send/token
type TransferHandler struct {
	service LedgerService
}

// NewTransferHandler creates a new handler for token transfers
func NewTransferHandler(service LedgerService) *TransferHandler {
	return &TransferHandler{service: service}
}

// HandleSendToken godoc
//
//	@Summary		Send tokens
//	@Description	Transfers `amount` base units of `mint` from the owner's associated token account to the
//	@Description	associated token account of the `destination` wallet, and waits for confirmation.
//	@Description
//	@Description	The owner must be the server signer. When the destination token account does not exist
//	@Description	it is created in the same transaction, paid for by the signer.
//	@Tags			Tokens
//	@Accept			json
//	@Produce		json
//
//	@Param			request	body		api.SendTokenRequest						true	"Destination wallet, mint, owner and amount"
//
//	@Success		200		{object}	api.Response{data=api.SendTokenResponse}	"Transfer confirmed"
//	@Failure		400		{object}	api.ErrorResponse							"Invalid input or owner is not the signer"
//	@Failure		500		{object}	api.ErrorResponse							"Signer not configured or ledger error"
//
//	@Router			/send/token [post]
func (h *TransferHandler) HandleSendToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.SendTokenRequest
	if err := api.DecodeJSONBody(r, &req); err != nil {
		api.RespondWithErrorResponse(w, r, err)
		return
	}

	destination, err := crypto.ParsePublicKey("destination", req.Destination)
	if err != nil {
		api.RespondWithErrorResponse(w, r, err)
		return
	}
	mint, err := crypto.ParsePublicKey("mint", req.Mint)
	if err != nil {
		api.RespondWithErrorResponse(w, r, err)
		return
	}
	owner, err := crypto.ParsePublicKey("owner", req.Owner)
	if err != nil {
		api.RespondWithErrorResponse(w, r, err)
		return
	}
	if req.Amount == 0 {
		api.RespondWithErrorResponse(w, r, api.NewInvalidInputError("amount must be greater than 0"))
		return
	}

	result, err := h.service.TransferTokens(ctx, mint, owner, destination, req.Amount)
	if err != nil {
		api.RespondWithErrorResponse(w, r, err)
		return
	}

	logger.ContextWithLogAttrs(ctx,
		slog.String("mint", mint.String()),
		slog.String("signature", result.Signature.String()),
	)

	api.RespondWithData(w, api.SendTokenResponse{
		TxSignature: result.Signature.String(),
		Source:      result.Source.String(),
		Destination: result.Destination.String(),
	})
}
