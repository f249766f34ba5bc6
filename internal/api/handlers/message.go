package handlers

// message.go implements off-chain message signing and verification.
// Messages are signed as raw UTF-8 bytes with Ed25519; signatures are base58 encoded.

import (
	"log/slog"
	"net/http"

	"github.com/gagliardetto/solana-go"

	"github.com/solgate/solgate/internal/api"
	"github.com/solgate/solgate/internal/crypto"
	"github.com/solgate/solgate/internal/logger"
)

// HandleSignMessage godoc
//
//	@Summary		Sign message
//	@Description	Signs `message` with the supplied secret key and returns the base58 encoded Ed25519 signature.
//	@Description
//	@Description	The secret is used for this request only and is not stored or logged.
//	@Tags			Messages
//	@Accept			json
//	@Produce		json
//
//	@Param			request	body		api.SignMessageRequest						true	"Message and base58 secret key"
//
//	@Success		200		{object}	api.Response{data=api.SignMessageResponse}	"Signature"
//	@Failure		400		{object}	api.ErrorResponse							"Missing field or invalid secret"
//
//	@Router			/message/sign [post]
func HandleSignMessage(w http.ResponseWriter, r *http.Request) {
	var req api.SignMessageRequest
	if err := api.DecodeJSONBody(r, &req); err != nil {
		api.RespondWithErrorResponse(w, r, err)
		return
	}

	if req.Message == "" || req.Secret == "" {
		api.RespondWithErrorResponse(w, r, api.NewInvalidInputError("missing required fields: message and secret are required"))
		return
	}

	secret, err := crypto.ParseSecretKey("secret", req.Secret)
	if err != nil {
		api.RespondWithErrorResponse(w, r, err)
		return
	}

	signature, err := crypto.SignMessage(secret, []byte(req.Message))
	if err != nil {
		api.RespondWithErrorResponse(w, r, err)
		return
	}

	logger.ContextWithLogAttrs(r.Context(), slog.String("pubkey", secret.PublicKey().String()))

	api.RespondWithData(w, api.SignMessageResponse{
		Signature: signature.String(),
		PublicKey: secret.PublicKey().String(),
		Message:   req.Message,
	})
}

// HandleVerifyMessage godoc
//
//	@Summary		Verify message signature
//	@Description	Verifies a base58 encoded Ed25519 signature of `message`.
//	@Description
//	@Description	The public key is taken from `pubkey`. When `pubkey` is omitted the public key is derived from
//	@Description	the optional `secret`. A signature that does not match returns `valid: false` with status 200.
//	@Description
//	@Description	Also available as POST /verify.
//	@Tags			Messages
//	@Accept			json
//	@Produce		json
//
//	@Param			request	body		api.VerifyMessageRequest						true	"Message, signature and public key"
//
//	@Success		200		{object}	api.Response{data=api.VerifyMessageResponse}	"Verification result"
//	@Failure		400		{object}	api.ErrorResponse								"Missing field or invalid public key, signature or secret"
//
//	@Router			/message/verify [post]
func HandleVerifyMessage(w http.ResponseWriter, r *http.Request) {
	var req api.VerifyMessageRequest
	if err := api.DecodeJSONBody(r, &req); err != nil {
		api.RespondWithErrorResponse(w, r, err)
		return
	}

	if req.Message == "" || req.Signature == "" {
		api.RespondWithErrorResponse(w, r, api.NewInvalidInputError("missing required fields: message and signature are required"))
		return
	}

	var publicKey solana.PublicKey
	switch {
	case req.Pubkey != "":
		parsed, err := crypto.ParsePublicKey("pubkey", req.Pubkey)
		if err != nil {
			api.RespondWithErrorResponse(w, r, err)
			return
		}
		publicKey = parsed
	case req.Secret != "":
		secret, err := crypto.ParseSecretKey("secret", req.Secret)
		if err != nil {
			api.RespondWithErrorResponse(w, r, err)
			return
		}
		publicKey = secret.PublicKey()
	default:
		api.RespondWithErrorResponse(w, r, api.NewInvalidInputError("missing required fields: pubkey or secret is required"))
		return
	}

	signature, err := crypto.ParseSignature("signature", req.Signature)
	if err != nil {
		api.RespondWithErrorResponse(w, r, err)
		return
	}

	valid := crypto.VerifyMessage(publicKey, signature, []byte(req.Message))

	logger.ContextWithLogAttrs(r.Context(),
		slog.String("pubkey", publicKey.String()),
		slog.Bool("valid", valid),
	)

	api.RespondWithData(w, api.VerifyMessageResponse{
		Valid:   valid,
		Message: req.Message,
		Pubkey:  publicKey.String(),
	})
}
