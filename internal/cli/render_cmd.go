package cli

import (
	"fmt"
	"os"

	"github.com/aerissecure/roadmap/render"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func newRenderCmd(app *App) *cobra.Command {
	var src dataSource
	var year yearFlag
	var out string

	cmd := &cobra.Command{
		Use:   "render [FILE]",
		Short: "Render the roadmap timeline as an HTML page",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := src.load(app, args)
			if err != nil {
				return err
			}
			y, err := year.resolve(app)
			if err != nil {
				return err
			}
			page := render.HTML(data, y)
			if out == "" {
				_, err := fmt.Fprint(cmd.OutOrStdout(), page)
				return err
			}
			if err := os.WriteFile(out, []byte(page), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", out, err)
			}
			log.Info("wrote timeline", "file", out, "year", y)
			return nil
		},
	}

	src.bind(cmd)
	year.bind(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write to this file instead of stdout")

	return cmd
}

func newShowCmd(app *App) *cobra.Command {
	var src dataSource
	var year yearFlag
	var width int

	cmd := &cobra.Command{
		Use:   "show [FILE]",
		Short: "Print the roadmap timeline in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := src.load(app, args)
			if err != nil {
				return err
			}
			y, err := year.resolve(app)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("width") {
				width = app.Config.TerminalWidth
			}
			w := cmd.OutOrStdout()
			_, err = fmt.Fprint(w, render.TerminalWithOptions(data, y, render.TerminalOptions{
				Width:    width,
				Color:    app.isTerminal(w),
				Renderer: lipgloss.NewRenderer(w),
			}))
			return err
		},
	}

	src.bind(cmd)
	year.bind(cmd)
	cmd.Flags().IntVar(&width, "width", 0, "Columns for the year track (default from config)")

	return cmd
}
