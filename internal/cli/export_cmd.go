package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aerissecure/roadmap/xlsx"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var year yearFlag
	var out string

	cmd := &cobra.Command{
		Use:   "export FILE",
		Short: "Write a copy of the spreadsheet with a visualization sheet added",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := args[0]
			original, err := os.ReadFile(src)
			if err != nil {
				return fmt.Errorf("reading %s: %w", src, err)
			}
			data, err := xlsx.ParseBytes(original, xlsx.WithIDSource(app.ids()))
			if err != nil {
				return err
			}
			y, err := year.resolve(app)
			if err != nil {
				return err
			}
			if out == "" {
				out = filepath.Join(filepath.Dir(src), xlsx.VisualizationFilename(y))
			}

			var buf bytes.Buffer
			if err := xlsx.WriteVisualization(&buf, bytes.NewReader(original), int64(len(original)), data, y); err != nil {
				return err
			}
			if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", out, err)
			}
			log.Info("exported workbook", "file", out, "year", y, "items", data.Len())
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	year.bind(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default next to FILE)")

	return cmd
}
