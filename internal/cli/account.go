package cli

import (
	"github.com/spf13/cobra"
)

func newBalanceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "balance <pubkey>",
		Short: "Show the SOL balance of an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.client.Balance(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.print(resp)
		},
	}
}

func newAirdropCmd(a *app) *cobra.Command {
	var amountSOL float64

	cmd := &cobra.Command{
		Use:   "airdrop <pubkey>",
		Short: "Request a devnet airdrop",
		Long: `Request SOL from the cluster faucet for an account.

Without --amount the server default is requested. Devnet airdrops are limited to
1 SOL per request and 5 SOL per day.

Example:
  solgate airdrop 5jqvR3BKo8zvzDqS8oVbZ6PjXj4s9ziZNGpXYj1HFjGn --amount 0.5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("amount") {
				resp, err := a.client.UserAirdrop(cmd.Context(), args[0], amountSOL)
				if err != nil {
					return err
				}
				return a.print(resp)
			}

			resp, err := a.client.Airdrop(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.print(resp)
		},
	}

	cmd.Flags().Float64Var(&amountSOL, "amount", 0, "amount in SOL")
	return cmd
}
