package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newCleanupCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "cleanup",
		Short: "Delete sessions older than the three-year retention window",
		RunE: func(cmd *cobra.Command, args []string) error {
			deleted, cutoff, err := app.Retention.Sweep(context.Background())
			if err != nil {
				return err
			}
			fmt.Printf("Deleted %d sessions dated on or before %s\n", deleted, cutoff)
			return nil
		},
	}
}
