package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newEngagementCmd(app *App) *cobra.Command {
	var title, notes string

	cmd := &cobra.Command{
		Use:   "engagement",
		Short: "Show or update the engagement record",
		RunE: func(cmd *cobra.Command, args []string) error {
			var titlePtr, notesPtr *string
			if cmd.Flags().Changed("title") {
				titlePtr = &title
			}
			if cmd.Flags().Changed("notes") {
				notesPtr = &notes
			}
			if titlePtr != nil || notesPtr != nil {
				app.Store.UpdateEngagement(titlePtr, notesPtr)
			}

			e := app.Store.Engagement()
			fmt.Println(e.Title)
			if e.Notes != "" {
				fmt.Println(e.Notes)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Set the engagement title")
	cmd.Flags().StringVar(&notes, "notes", "", "Set the engagement notes")

	return cmd
}
