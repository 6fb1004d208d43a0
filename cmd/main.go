package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/elliot-anderson-afk/kite-api-wrapper/api"
)

// Flags shared by all subcommands. Credentials left unset fall back to the
// KITE_* environment variables and the credential file.
var (
	apiKey      string
	apiSecret   string
	accessToken string
	configPath  string
	debug       bool
	timeout     time.Duration
)

// Execute builds the command tree and executes commands.
func Execute() error {
	return newRootCommand().Execute()
}

func newRootCommand() *cobra.Command {
	// c is the root command.
	c := &cobra.Command{
		Use:   "kite",
		Short: "Interact with the Kite trading API from the command line",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Usage()
		},
	}

	c.PersistentFlags().StringVar(&apiKey, "api-key", "", "Kite API key (overrides environment and config file)")
	c.PersistentFlags().StringVar(&apiSecret, "api-secret", "", "Kite API secret (overrides environment and config file)")
	c.PersistentFlags().StringVar(&accessToken, "access-token", "", "Kite access token (overrides environment and config file)")
	c.PersistentFlags().StringVar(&configPath, "config", "", "credential file path (default ~/.kite/config.ini)")
	c.PersistentFlags().BoolVar(&debug, "debug", false, "log requests and responses")
	c.PersistentFlags().DurationVar(&timeout, "timeout", api.DefaultTimeout, "per-request timeout")

	c.AddCommand(loginCmd)
	c.AddCommand(quoteCmd)
	c.AddCommand(instrumentsCmd)

	return c
}

// clientConfig builds the client configuration from the shared flags.
func clientConfig() api.ClientConfig {
	return api.ClientConfig{
		APIKey:      apiKey,
		APISecret:   apiSecret,
		AccessToken: accessToken,
		ConfigPath:  configPath,
		Debug:       debug,
		Timeout:     timeout,
	}
}

// newClient builds a client from the shared flags.
func newClient() (*api.Client, error) {
	return api.NewClient(clientConfig())
}
