package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
)

func newLoginCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "login <token>",
		Short: "Save a Discord session token",
		Long: `Save the token handed out by the bot's Discord login so later commands
can act for you. The token is stored as-is; it is not checked until a command
uses it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token := strings.TrimSpace(args[0])
			if token == "" {
				return errors.New("token must not be blank")
			}

			tokens := a.cfg.Tokens()
			tokens.Set(token)
			if saved, ok := tokens.Get(); !ok || saved != token {
				return errors.New("could not save token to " + a.cfg.TokenFile)
			}

			a.output(cmd).PrintMessage("Token saved to " + a.cfg.TokenFile)
			return nil
		},
	}
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the saved session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.cfg.Tokens().Clear()
			a.output(cmd).PrintMessage("You have been logged out")
			return nil
		},
	}
}
