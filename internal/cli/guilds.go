package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/mcoot/mcmonitor/internal/api/response"
)

func newGuildsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "guilds",
		Short: "List the Discord servers you can manage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.Token == "" {
				return errors.New("not logged in: run 'mcmon login <token>' or pass --token")
			}

			var result response.GuildList
			if err := a.client.Get(cmd.Context(), "/api/v1/guilds", nil, &result); err != nil {
				return err
			}

			a.output(cmd).Print(result)
			return nil
		},
	}
}
