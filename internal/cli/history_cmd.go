package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/jornada/internal/cli/formatter"
	"github.com/alexanderramin/jornada/internal/domain"
)

func newHistoryCmd(app *App) *cobra.Command {
	var rangeFlag string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List past sessions for the current week, month or year",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := domain.ParseHistoryRange(rangeFlag)
			if err != nil {
				return err
			}

			sessions, err := app.History.ListRange(context.Background(), r)
			if err != nil {
				return err
			}
			if len(sessions) == 0 {
				fmt.Printf("No sessions this %s.\n", rangeFlag)
				return nil
			}

			headers := []string{"DATE", "START", "END", "BREAKFAST", "SNACK", "WORKED", "STATUS"}
			rows := make([][]string, 0, len(sessions))
			for _, s := range sessions {
				rows = append(rows, []string{
					s.Date,
					s.StartTime.Format("15:04"),
					formatter.ClockTime(s.EndTime),
					formatter.Interval(s.BreakfastStart, s.BreakfastEnd),
					formatter.Interval(s.SnackStart, s.SnackEnd),
					formatter.FormatMinutesPtr(s.ActualWorkMinutes),
					string(s.Status),
				})
			}

			sum := domain.Summarize(sessions)
			summary := fmt.Sprintf("%d sessions, worked %s (breaks %s)",
				sum.Sessions,
				formatter.FormatMinutes(sum.ActualWorkMinutes),
				formatter.FormatMinutes(sum.TotalBreakMinutes))

			fmt.Print(formatter.RenderBox("History: "+rangeFlag,
				formatter.RenderTable(headers, rows)+"\n"+formatter.Dim(summary)))
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().StringVar(&rangeFlag, "range", "week", "Range to show: week, month or year")

	return cmd
}
