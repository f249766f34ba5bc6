package handlers

// token.go implements the SPL token endpoints: POST /token/create and POST /token/mint

import (
	"encoding/base64"
	"log/slog"
	"net/http"

	"github.com/gagliardetto/solana-go"

	"github.com/solgate/solgate/internal/api"
	"github.com/solgate/solgate/internal/crypto"
	"github.com/solgate/solgate/internal/ledger"
	"github.com/solgate/solgate/internal/logger"
)

// TokenHandler handles the token endpoints
type TokenHandler struct {
	service LedgerService
}

// NewTokenHandler creates a new handler for the token endpoints
func NewTokenHandler(service LedgerService) *TokenHandler {
	return &TokenHandler{service: service}
}

// HandleCreateToken godoc
//
//	@Summary		Create token mint
//	@Description	Creates a new SPL token mint and waits for the transaction to be confirmed.
//	@Description
//	@Description	The transaction creates the mint account (82 bytes, funded with the rent exemption minimum
//	@Description	and owned by the token program) and initializes it with the given mint authority and decimals.
//	@Description	The mint has no freeze authority.
//	@Description
//	@Description	The server signer pays for the transaction. The endpoint fails with a 500 when no signer is configured.
//	@Tags			Tokens
//	@Accept			json
//	@Produce		json
//
//	@Param			request	body		api.CreateTokenRequest						true	"Mint authority and decimals"
//
//	@Success		200		{object}	api.Response{data=api.CreateTokenResponse}	"Mint created"
//	@Failure		400		{object}	api.ErrorResponse							"Invalid mint authority or decimals"
//	@Failure		500		{object}	api.ErrorResponse							"Signer not configured or ledger error"
//
//	@Router			/token/create [post]
func (h *TokenHandler) HandleCreateToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.CreateTokenRequest
	if err := api.DecodeJSONBody(r, &req); err != nil {
		api.RespondWithErrorResponse(w, r, err)
		return
	}

	mintAuthority, err := crypto.ParsePublicKey("mint_authority", req.MintAuthority)
	if err != nil {
		api.RespondWithErrorResponse(w, r, err)
		return
	}
	if req.Decimals == nil {
		api.RespondWithErrorResponse(w, r, api.NewInvalidInputError("decimals is required"))
		return
	}

	result, err := h.service.CreateMint(ctx, mintAuthority, *req.Decimals)
	if err != nil {
		api.RespondWithErrorResponse(w, r, err)
		return
	}

	logger.ContextWithLogAttrs(ctx,
		slog.String("mint", result.Mint.String()),
		slog.String("signature", result.Signature.String()),
	)

	api.RespondWithData(w, api.CreateTokenResponse{
		Mint:                 result.Mint.String(),
		MintAuthority:        result.MintAuthority.String(),
		TransactionSignature: result.Signature.String(),
	})
}

// HandleMintToken godoc
//
//	@Summary		Build mint-to instruction
//	@Description	Returns the SPL token mint-to instruction that mints `amount` base units of `mint` into the
//	@Description	associated token account of the `destination` wallet.
//	@Description
//	@Description	The instruction must be signed by the mint authority, so it is returned to the caller
//	@Description	rather than submitted. The destination token account must exist when the transaction is executed.
//	@Tags			Tokens
//	@Accept			json
//	@Produce		json
//
//	@Param			request	body		api.MintTokenRequest							true	"Mint, destination wallet, authority and amount"
//
//	@Success		200		{object}	api.Response{data=api.InstructionDescription}	"Mint-to instruction"
//	@Failure		400		{object}	api.ErrorResponse								"Invalid public key or amount"
//	@Failure		500		{object}	api.ErrorResponse								"Instruction could not be built"
//
//	@Router			/token/mint [post]
func (h *TokenHandler) HandleMintToken(w http.ResponseWriter, r *http.Request) {
	var req api.MintTokenRequest
	if err := api.DecodeJSONBody(r, &req); err != nil {
		api.RespondWithErrorResponse(w, r, err)
		return
	}

	mint, err := crypto.ParsePublicKey("mint", req.Mint)
	if err != nil {
		api.RespondWithErrorResponse(w, r, err)
		return
	}
	destination, err := crypto.ParsePublicKey("destination", req.Destination)
	if err != nil {
		api.RespondWithErrorResponse(w, r, err)
		return
	}
	authority, err := crypto.ParsePublicKey("authority", req.Authority)
	if err != nil {
		api.RespondWithErrorResponse(w, r, err)
		return
	}
	if req.Amount == 0 {
		api.RespondWithErrorResponse(w, r, api.NewInvalidInputError("amount must be greater than 0"))
		return
	}

	instruction, err := ledger.MintToInstruction(mint, destination, authority, req.Amount)
	if err != nil {
		api.RespondWithErrorResponse(w, r, err)
		return
	}

	description, err := describeInstruction(instruction)
	if err != nil {
		api.RespondWithErrorResponse(w, r, err)
		return
	}

	logger.ContextWithLogAttrs(r.Context(), slog.String("mint", mint.String()))

	api.RespondWithData(w, description)
}

// describeInstruction converts a built instruction to its JSON description
func describeInstruction(instruction solana.Instruction) (*api.InstructionDescription, error) {
	data, err := instruction.Data()
	if err != nil {
		return nil, ledger.WrapInstructionError(err, "failed to encode instruction data")
	}

	accounts := make([]api.AccountDescription, 0, len(instruction.Accounts()))
	for _, account := range instruction.Accounts() {
		accounts = append(accounts, api.AccountDescription{
			Pubkey:     account.PublicKey.String(),
			IsSigner:   account.IsSigner,
			IsWritable: account.IsWritable,
		})
	}

	return &api.InstructionDescription{
		ProgramID:       instruction.ProgramID().String(),
		Accounts:        accounts,
		InstructionData: base64.StdEncoding.EncodeToString(data),
	}, nil
}
