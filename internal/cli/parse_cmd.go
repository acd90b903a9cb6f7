package cli

import (
	"fmt"

	"github.com/aerissecure/roadmap/share"
	"github.com/spf13/cobra"
)

func newParseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "parse FILE",
		Short: "Print the roadmap in a spreadsheet as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := parseFile(app, args[0])
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), data)
		},
	}
}

func newShareCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "share FILE",
		Short: "Print a link that reopens the roadmap without a server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := parseFile(app, args[0])
			if err != nil {
				return err
			}
			link, err := share.ShareURL(app.Config.BaseURL, data)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), link)
			return nil
		},
	}
}
