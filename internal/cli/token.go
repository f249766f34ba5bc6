package cli

import (
	"github.com/spf13/cobra"

	"github.com/solgate/solgate/internal/api"
)

func newTokenCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Create SPL token mints and build mint instructions",
	}

	cmd.AddCommand(newTokenCreateCmd(a))
	cmd.AddCommand(newTokenMintCmd(a))
	return cmd
}

func newTokenCreateCmd(a *app) *cobra.Command {
	var (
		authority string
		decimals  uint8
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new token mint",
		Long: `Create a new SPL token mint. The server signer pays for the mint account.

Example:
  solgate token create --authority 5jqvR3BKo8zvzDqS8oVbZ6PjXj4s9ziZNGpXYj1HFjGn --decimals 6`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.client.CreateToken(cmd.Context(), authority, decimals)
			if err != nil {
				return err
			}
			return a.print(resp)
		},
	}

	cmd.Flags().StringVar(&authority, "authority", "", "base58 mint authority public key (required)")
	cmd.Flags().Uint8Var(&decimals, "decimals", 0, "number of decimal places (required)")
	_ = cmd.MarkFlagRequired("authority")
	_ = cmd.MarkFlagRequired("decimals")
	return cmd
}

func newTokenMintCmd(a *app) *cobra.Command {
	var req api.MintTokenRequest

	cmd := &cobra.Command{
		Use:   "mint",
		Short: "Build a mint-to instruction",
		Long: `Build (but do not submit) an SPL token mint-to instruction.

The tokens are minted to the associated token account of the destination wallet.

Example:
  solgate token mint --mint <mint> --destination <wallet> --authority <authority> --amount 1000000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.client.MintToken(cmd.Context(), req)
			if err != nil {
				return err
			}
			return a.print(resp)
		},
	}

	cmd.Flags().StringVar(&req.Mint, "mint", "", "base58 mint address (required)")
	cmd.Flags().StringVar(&req.Destination, "destination", "", "base58 destination wallet (required)")
	cmd.Flags().StringVar(&req.Authority, "authority", "", "base58 mint authority (required)")
	cmd.Flags().Uint64Var(&req.Amount, "amount", 0, "amount in base units (required)")
	for _, name := range []string{"mint", "destination", "authority", "amount"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func newSendCmd(a *app) *cobra.Command {
	var req api.SendTokenRequest

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Transfer SPL tokens",
		Long: `Transfer tokens from the owner's associated token account to the destination wallet.

The owner must be the server signer. The destination token account is created when it does not exist.

Example:
  solgate send --mint <mint> --owner <signer> --destination <wallet> --amount 1000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.client.SendToken(cmd.Context(), req)
			if err != nil {
				return err
			}
			return a.print(resp)
		},
	}

	cmd.Flags().StringVar(&req.Mint, "mint", "", "base58 mint address (required)")
	cmd.Flags().StringVar(&req.Owner, "owner", "", "base58 owner wallet (required)")
	cmd.Flags().StringVar(&req.Destination, "destination", "", "base58 destination wallet (required)")
	cmd.Flags().Uint64Var(&req.Amount, "amount", 0, "amount in base units (required)")
	for _, name := range []string{"mint", "owner", "destination", "amount"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}
