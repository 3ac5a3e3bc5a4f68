package cli

import (
	"errors"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/mcoot/mcmonitor/internal/api/request"
	"github.com/mcoot/mcmonitor/internal/api/response"
	"github.com/mcoot/mcmonitor/internal/model"
	"github.com/mcoot/mcmonitor/internal/services/directory"
)

func newServersCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "servers",
		Short: "Browse and publish to the server directory",
	}

	cmd.AddCommand(newServersListCmd(a))
	cmd.AddCommand(newServersGetCmd(a))
	cmd.AddCommand(newServersPublishCmd(a))

	return cmd
}

func newServersListCmd(a *app) *cobra.Command {
	var query, category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List directory servers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params := url.Values{}
			if query != "" {
				params.Set("q", query)
			}
			if category != "" {
				params.Set("category", category)
			}

			var result response.ServerList
			if err := a.client.Get(cmd.Context(), "/api/v1/servers", params, &result); err != nil {
				return err
			}

			a.output(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Filter by name or IP")
	cmd.Flags().StringVar(&category, "category", "", "Filter by category: all, survival, skyblock, minigames, other")

	return cmd
}

func newServersGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one directory server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Server
			if err := a.client.Get(cmd.Context(), "/api/v1/servers/"+url.PathEscape(args[0]), nil, &result); err != nil {
				return err
			}

			a.output(cmd).Print(result)
			return nil
		},
	}
}

func newServersPublishCmd(a *app) *cobra.Command {
	var req request.PublishServerRequest

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Publish a server to the directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.Token == "" {
				return errors.New("not logged in: run 'mcmon login <token>' or pass --token")
			}

			var result response.Server
			if err := a.client.Post(cmd.Context(), "/api/v1/servers", req, &result); err != nil {
				return err
			}

			out := a.output(cmd)
			if a.cfg.Output == OutputJSON {
				out.Print(result)
				return nil
			}
			out.PrintMessage(directory.MessagePublished)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.IP, "ip", "", "Server address players connect to")
	cmd.Flags().StringVar(&req.Name, "name", "", "Display name (defaults to the IP)")
	cmd.Flags().StringVar(&req.Type, "type", string(model.CategorySurvival), "Category: survival, skyblock, minigames, other")

	return cmd
}
