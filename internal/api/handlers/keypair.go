package handlers

import (
	"log/slog"
	"net/http"

	"github.com/solgate/solgate/internal/api"
	"github.com/solgate/solgate/internal/crypto"
	"github.com/solgate/solgate/internal/logger"
)

// HandleGenerateKeypair godoc
//
//	@Summary		Generate keypair
//	@Description	Generates a new Ed25519 keypair.
//	@Description
//	@Description	The secret is the base58 encoding of the 64 byte secret key (seed followed by public key),
//	@Description	the format used by Solana wallets. The keypair is not stored by the server.
//	@Tags			Keys
//	@Produce		json
//
//	@Success		200	{object}	api.Response{data=api.KeypairResponse}	"New keypair"
//	@Failure		500	{object}	api.ErrorResponse						"Key generation failed"
//
//	@Router			/keypair [post]
func HandleGenerateKeypair(w http.ResponseWriter, r *http.Request) {
	privateKey, err := crypto.GenerateKeypair()
	if err != nil {
		api.RespondWithErrorResponse(w, r, err)
		return
	}

	logger.ContextWithLogAttrs(r.Context(), slog.String("pubkey", privateKey.PublicKey().String()))

	api.RespondWithData(w, api.KeypairResponse{
		Pubkey: privateKey.PublicKey().String(),
		Secret: privateKey.String(),
	})
}
