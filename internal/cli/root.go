// Package cli implements the solgate command line client.
//
// Each command calls one endpoint of a running solgate-server and prints the data of the
// response as indented JSON. The server address is taken from --server, falling back to
// SOLGATE_SERVER_URL.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/solgate/solgate/internal/client"
	"github.com/solgate/solgate/internal/config"
	"github.com/solgate/solgate/internal/logger"
	"github.com/solgate/solgate/internal/version"
)

// app holds the state shared by the commands once the root command has initialised
type app struct {
	cfg       *config.ClientEnvironment
	client    *client.Client
	appLogger *slog.Logger
	out       io.Writer
}

// NewRootCmd builds the solgate command tree
func NewRootCmd() *cobra.Command {
	a := &app{}

	var serverURL string

	rootCmd := &cobra.Command{
		Use:               "solgate",
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		Short:             "solgate API client",
		Long:              `Command line client for the solgate Solana gateway (keys, message signing, balances, airdrops and SPL tokens)`,
		SilenceUsage:      true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			a.cfg, err = config.NewClientConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if serverURL != "" {
				a.cfg.ServerURL = serverURL
			}

			a.appLogger = logger.NewLogger(cmd.ErrOrStderr(), logger.ParseLogLevel(a.cfg.LogLevel), "dev")
			a.out = cmd.OutOrStdout()

			a.client, err = client.New(client.Config{
				BaseURL:    a.cfg.ServerURL,
				Timeout:    a.cfg.Timeout,
				MaxRetries: a.cfg.MaxRetries,
			})
			if err != nil {
				return err
			}

			a.appLogger.Debug("using server", slog.String("server_url", a.cfg.ServerURL))
			return nil
		},
	}

	v := version.Get()
	rootCmd.Version = fmt.Sprintf("%s (built %s, commit %s)", v.Version, v.BuildDate, v.GitCommit)

	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "solgate-server base URL (default $SOLGATE_SERVER_URL or http://localhost:8080)")

	rootCmd.AddCommand(newKeypairCmd(a))
	rootCmd.AddCommand(newSignCmd(a))
	rootCmd.AddCommand(newVerifyCmd(a))
	rootCmd.AddCommand(newBalanceCmd(a))
	rootCmd.AddCommand(newAirdropCmd(a))
	rootCmd.AddCommand(newTokenCmd(a))
	rootCmd.AddCommand(newSendCmd(a))

	return rootCmd
}

// Execute runs the root command and exits non-zero on failure
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// print writes v to the command output as indented JSON
func (a *app) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
