// keygen is a CLI tool for generating signer keypair files for solgate-server.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/solgate/solgate/internal/crypto"
	"github.com/solgate/solgate/internal/version"
)

// file naming convention - name.json (Solana CLI), name.public.jwk and name.private.jwk
const (
	keypairFileNameFormat    = "%s.json"
	publicKeyFileNameFormat  = "%s.public.jwk"
	privateKeyFileNameFormat = "%s.private.jwk"
)

var (
	name      string
	outputDir string
	format    string
	kid       string
)

func main() {
	rootCmd := &cobra.Command{
		Use:               "keygen",
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		Short:             "Keypair generator for solgate-server",
		Long:              "Generate Solana (Ed25519) keypairs in the Solana CLI format and/or as JWK sets. Either file can be used as SIGNER_KEY_PATH",
	}

	v := version.Get()
	rootCmd.Version = fmt.Sprintf("%s (built %s, commit %s)", v.Version, v.BuildDate, v.GitCommit)

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a new keypair",
		Long:  "Generate a new random keypair and write it to the output directory",
		RunE:  runGenerate,
	}

	generateCmd.Flags().StringVarP(&name, "name", "n", "signer", "File name prefix for the generated files")
	generateCmd.Flags().StringVarP(&outputDir, "outputdir", "o", "", "Output directory for generated keys [required]")
	generateCmd.Flags().StringVarP(&format, "format", "f", "json", "Output format: json (Solana CLI keypair), jwk or both")
	generateCmd.Flags().StringVarP(&kid, "kid", "k", "", "Key ID for the JWK files (default: derived from the thumbprint)")
	generateCmd.MarkFlagRequired("outputdir")

	rootCmd.AddCommand(generateCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if format != "json" && format != "jwk" && format != "both" {
		return fmt.Errorf("invalid format: %s (must be 'json', 'jwk' or 'both')", format)
	}

	// make the directory if it doesn't exist
	if _, err := os.Stat(outputDir); os.IsNotExist(err) {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	privateKey, err := crypto.GenerateKeypair()
	if err != nil {
		return fmt.Errorf("failed to generate keypair: %w", err)
	}
	publicKey := privateKey.PublicKey()

	fmt.Printf("Generated keypair %s\n", publicKey)

	if format == "json" || format == "both" {
		filename := fmt.Sprintf(keypairFileNameFormat, name)
		if err := crypto.SaveKeypairFile(privateKey, outputDir, filename); err != nil {
			return fmt.Errorf("failed to save keypair: %w", err)
		}
		fmt.Printf("✓ Keypair:     %s\n", filepath.Join(outputDir, filename))
	}

	if format == "jwk" || format == "both" {
		keyID := kid
		if keyID == "" {
			keyID, err = crypto.GenerateKeyID(publicKey)
			if err != nil {
				return fmt.Errorf("failed to generate key ID: %w", err)
			}
		}

		publicFile := fmt.Sprintf(publicKeyFileNameFormat, name)
		if err := crypto.SavePublicKeyToJWKFile(publicKey, keyID, outputDir, publicFile); err != nil {
			return fmt.Errorf("failed to save public key: %w", err)
		}
		fmt.Printf("✓ Public JWK:  %s (kid: %s)\n", filepath.Join(outputDir, publicFile), keyID)

		privateFile := fmt.Sprintf(privateKeyFileNameFormat, name)
		if err := crypto.SavePrivateKeyToJWKFile(privateKey, keyID, outputDir, privateFile); err != nil {
			return fmt.Errorf("failed to save private key: %w", err)
		}
		fmt.Printf("✓ Private JWK: %s (kid: %s)\n", filepath.Join(outputDir, privateFile), keyID)
	}

	fmt.Println("Keep the secret key files private: they are not encrypted")
	return nil
}
