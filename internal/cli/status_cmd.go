package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/jornada/internal/cli/formatter"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show today's session and running totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := app.Clock.Today(context.Background())
			if err != nil {
				return err
			}
			if sess == nil {
				fmt.Println("No session today. Run 'jornada start' to clock in.")
				return nil
			}

			total, brk, actual := sess.TotalsAt(time.Now())

			content := fmt.Sprintf("%s\n\n", formatter.StatusIndicator(sess.DerivedStatus())) +
				fmt.Sprintf("Started    %s\n", sess.StartTime.Format("15:04")) +
				fmt.Sprintf("Breakfast  %s\n", formatter.Interval(sess.BreakfastStart, sess.BreakfastEnd)) +
				fmt.Sprintf("Snack      %s\n", formatter.Interval(sess.SnackStart, sess.SnackEnd)) +
				fmt.Sprintf("Ended      %s\n\n", formatter.ClockTime(sess.EndTime)) +
				fmt.Sprintf("Elapsed    %s\n", formatter.FormatMinutes(total)) +
				fmt.Sprintf("Breaks     %s\n", formatter.FormatMinutes(brk)) +
				fmt.Sprintf("Worked     %s", formatter.StyleBold.Render(formatter.FormatMinutes(actual)))

			fmt.Println(formatter.RenderBox(sess.Date, content))
			return nil
		},
	}
}
