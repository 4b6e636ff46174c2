package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/teamflowhq/teamflow/internal/export"
)

func newExportCmd(app *App) *cobra.Command {
	var out string
	var compact, stdout bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the schedule as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap := app.Store.Snapshot()

			var content, name string
			if compact {
				content = export.CompactCSV(snap)
				name = export.CompactFilename(time.Now())
			} else {
				content = export.CSV(snap)
				name = export.Filename(time.Now())
			}

			if stdout {
				fmt.Print(content)
				return nil
			}
			if out != "" {
				name = out
			}
			if err := os.WriteFile(name, []byte(content), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", name, err)
			}
			fmt.Printf("Wrote %d task(s) to %s\n", len(snap.Tasks), name)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "", "Output file (default: dated name in the current directory)")
	cmd.Flags().BoolVar(&compact, "compact", false, "Use the compact column layout")
	cmd.Flags().BoolVar(&stdout, "stdout", false, "Write to stdout instead of a file")

	return cmd
}
