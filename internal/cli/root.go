package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// app is the state shared by every command of one invocation
type app struct {
	cfg    *Config
	client *Client
}

func (a *app) output(cmd *cobra.Command) *Output {
	return NewOutput(cmd.OutOrStdout(), a.cfg.Output)
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	a := &app{cfg: DefaultConfig()}

	rootCmd := &cobra.Command{
		Use:   "mcmon",
		Short: "CLI tool for the MC Monitor server directory",
		Long: `mcmon talks to the MC Monitor JSON API.

It lists and publishes servers in the public directory and shows the Discord
servers your saved token can manage, along with the features their plan
unlocks.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.Output != OutputText && a.cfg.Output != OutputJSON {
				return errInvalidOutput(a.cfg.Output)
			}
			a.cfg.ResolveToken()
			a.client = NewClient(a.cfg.ServerURL, a.cfg.Token)
			return nil
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&a.cfg.ServerURL, "server", a.cfg.ServerURL, "Server URL (env: MCMON_SERVER)")
	rootCmd.PersistentFlags().StringVar(&a.cfg.Token, "token", a.cfg.Token, "Discord session token (env: MCMON_TOKEN)")
	rootCmd.PersistentFlags().StringVar(&a.cfg.TokenFile, "token-file", a.cfg.TokenFile, "Token file path (env: MCMON_TOKEN_FILE)")
	rootCmd.PersistentFlags().StringVarP(&a.cfg.Output, "output", "o", a.cfg.Output, "Output format: text, json")

	rootCmd.AddCommand(newHealthCmd(a))
	rootCmd.AddCommand(newLoginCmd(a))
	rootCmd.AddCommand(newLogoutCmd(a))
	rootCmd.AddCommand(newGuildsCmd(a))
	rootCmd.AddCommand(newServersCmd(a))

	return rootCmd
}

// Execute runs the root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := NewRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
