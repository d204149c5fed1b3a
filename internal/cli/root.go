package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "blackjack",
		Short: "CLI client for the blackjack API",
		Long: `blackjack is a CLI client for the wallet-gated blackjack JSON API.

Authenticate with a wallet private key, then start rounds and play them
with hit and stand. The bearer token and player address are cached under
~/.blackjack between invocations.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load cached token and player address unless provided
			if err := cfg.LoadToken(); err != nil {
				return err
			}
			if err := cfg.LoadPlayer(); err != nil {
				return err
			}

			client = NewClient(cfg.ServerURL, cfg.Token)
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: BLACKJACK_SERVER)")
	rootCmd.PersistentFlags().StringVar(&cfg.Player, "player", cfg.Player, "Player wallet address (env: BLACKJACK_PLAYER)")
	rootCmd.PersistentFlags().StringVar(&cfg.Token, "token", cfg.Token, "Bearer token (env: BLACKJACK_TOKEN)")
	rootCmd.PersistentFlags().StringVar(&cfg.TokenFile, "token-file", cfg.TokenFile, "Token file path (env: BLACKJACK_TOKEN_FILE)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")

	// Add subcommands
	rootCmd.AddCommand(newAuthCmd())
	rootCmd.AddCommand(newNewCmd())
	rootCmd.AddCommand(newHitCmd())
	rootCmd.AddCommand(newStandCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
