package cli

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/solgate/solgate/internal/api"
	"github.com/solgate/solgate/internal/crypto"
)

func newKeypairCmd(a *app) *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "keypair",
		Short: "Generate a new keypair",
		Long: `Ask the server to generate a new random keypair and print the base58 public and secret keys.

With --output the secret key is also written in the Solana CLI keypair format
(a JSON array of the 64 secret key bytes), which solgate-server accepts as SIGNER_KEY_PATH.

Example:
  solgate keypair --output ./keys/signer.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.client.GenerateKeypair(cmd.Context())
			if err != nil {
				return err
			}

			if outputPath != "" {
				secret, err := crypto.ParseSecretKey("secret", resp.Secret)
				if err != nil {
					return fmt.Errorf("server returned an invalid secret key: %w", err)
				}
				if err := crypto.SaveKeypairFile(secret, filepath.Dir(outputPath), filepath.Base(outputPath)); err != nil {
					return err
				}
				a.appLogger.Info("keypair saved", slog.String("path", outputPath))
			}

			return a.print(resp)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "write the secret key to this file")
	return cmd
}

func newSignCmd(a *app) *cobra.Command {
	var (
		message string
		secret  string
		keyFile string
	)

	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a message",
		Long: `Sign a message with an Ed25519 secret key and print the base58 signature.

The secret key is given either as base58 (--secret) or as a keypair file (--keyfile).

Example:
  solgate sign --message hello --keyfile ./keys/signer.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if keyFile != "" {
				privateKey, err := crypto.LoadSignerKey(keyFile)
				if err != nil {
					return err
				}
				secret = privateKey.String()
			}
			if secret == "" {
				return fmt.Errorf("one of --secret or --keyfile is required")
			}

			resp, err := a.client.SignMessage(cmd.Context(), api.SignMessageRequest{
				Message: message,
				Secret:  secret,
			})
			if err != nil {
				return err
			}
			return a.print(resp)
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "message to sign (required)")
	cmd.Flags().StringVar(&secret, "secret", "", "base58 secret key")
	cmd.Flags().StringVar(&keyFile, "keyfile", "", "keypair file (Solana CLI JSON or JWK set)")
	_ = cmd.MarkFlagRequired("message")
	cmd.MarkFlagsMutuallyExclusive("secret", "keyfile")
	return cmd
}

func newVerifyCmd(a *app) *cobra.Command {
	var req api.VerifyMessageRequest

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a message signature",
		Long: `Verify a base58 Ed25519 signature over a message.

Example:
  solgate verify --message hello --signature 3yZe7d... --pubkey 5jqvR3...`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.client.VerifyMessage(cmd.Context(), req)
			if err != nil {
				return err
			}
			if err := a.print(resp); err != nil {
				return err
			}
			if !resp.Valid {
				return fmt.Errorf("signature is not valid")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&req.Message, "message", "m", "", "signed message (required)")
	cmd.Flags().StringVarP(&req.Signature, "signature", "s", "", "base58 signature (required)")
	cmd.Flags().StringVarP(&req.Pubkey, "pubkey", "p", "", "base58 public key of the signer (required)")
	_ = cmd.MarkFlagRequired("message")
	_ = cmd.MarkFlagRequired("signature")
	_ = cmd.MarkFlagRequired("pubkey")
	return cmd
}
