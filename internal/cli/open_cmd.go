package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aerissecure/roadmap"
	"github.com/spf13/cobra"
)

func newOpenCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "open URL",
		Short: "Decode a share link",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := openLink(args[0])
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), data)
			}
			writeSummary(cmd.OutOrStdout(), data)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the decoded roadmap as JSON")

	return cmd
}

func writeSummary(w io.Writer, data *roadmap.Data) {
	fmt.Fprintf(w, "%d goals, %d items\n", len(data.Goals), data.Len())
	for _, g := range data.Goals {
		fmt.Fprintf(w, "%s\n", g.Name)
		for _, it := range g.Items {
			writeSummaryItem(w, it)
		}
	}
	if len(data.UngroupedItems) > 0 && len(data.Goals) > 0 {
		fmt.Fprintln(w, "Other Items")
	}
	for _, it := range data.UngroupedItems {
		writeSummaryItem(w, it)
	}
}

func writeSummaryItem(w io.Writer, it roadmap.Item) {
	fmt.Fprintf(w, "  %s%s\n", it.Name, dates(it))
	if it.AcceptanceCriteria != "" {
		fmt.Fprintf(w, "    Acceptance criteria: %s\n", strings.ReplaceAll(it.AcceptanceCriteria, "\n", "; "))
	}
}

func dates(it roadmap.Item) string {
	if !it.Schedulable() {
		return ""
	}
	return fmt.Sprintf(" (%s to %s)", it.Start.Format(time.DateOnly), it.End.Format(time.DateOnly))
}
