package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/jornada/internal/cli/formatter"
	"github.com/alexanderramin/jornada/internal/domain"
)

// todaySession resolves today's session or fails with a usable message.
func todaySession(ctx context.Context, app *App) (*domain.WorkSession, error) {
	sess, err := app.Clock.Today(ctx)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, fmt.Errorf("no session today; run 'jornada start' first")
	}
	return sess, nil
}

func newStartCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Clock in and open today's work session",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := app.Clock.Start(context.Background())
			if err != nil {
				return err
			}
			fmt.Printf("Clocked in at %s (%s)\n", sess.StartTime.Format("15:04"), sess.Date)
			return nil
		},
	}
}

func newBreakfastCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "breakfast",
		Short: "Track the breakfast break",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "start",
			Short: "Start the breakfast break",
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := context.Background()
				sess, err := todaySession(ctx, app)
				if err != nil {
					return err
				}
				sess, err = app.Clock.StartBreakfast(ctx, sess.ID)
				if err != nil {
					return err
				}
				fmt.Printf("Breakfast started at %s\n", sess.BreakfastStart.Format("15:04"))
				return nil
			},
		},
		&cobra.Command{
			Use:   "end",
			Short: "End the breakfast break",
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := context.Background()
				sess, err := todaySession(ctx, app)
				if err != nil {
					return err
				}
				sess, err = app.Clock.EndBreakfast(ctx, sess.ID)
				if err != nil {
					return err
				}
				mins := domain.ElapsedMinutes(*sess.BreakfastStart, *sess.BreakfastEnd)
				fmt.Printf("Breakfast ended, %s\n", formatter.FormatMinutes(mins))
				return nil
			},
		},
	)

	return cmd
}

func newSnackCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snack",
		Short: "Track the snack break",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "start",
			Short: "Start the snack break",
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := context.Background()
				sess, err := todaySession(ctx, app)
				if err != nil {
					return err
				}
				sess, err = app.Clock.StartSnack(ctx, sess.ID)
				if err != nil {
					return err
				}
				fmt.Printf("Snack started at %s\n", sess.SnackStart.Format("15:04"))
				return nil
			},
		},
		&cobra.Command{
			Use:   "end",
			Short: "End the snack break",
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := context.Background()
				sess, err := todaySession(ctx, app)
				if err != nil {
					return err
				}
				sess, err = app.Clock.EndSnack(ctx, sess.ID)
				if err != nil {
					return err
				}
				mins := domain.ElapsedMinutes(*sess.SnackStart, *sess.SnackEnd)
				fmt.Printf("Snack ended, %s\n", formatter.FormatMinutes(mins))
				return nil
			},
		},
	)

	return cmd
}

func newEndCmd(app *App) *cobra.Command {
	var skipConfirm bool

	cmd := &cobra.Command{
		Use:   "end",
		Short: "Clock out and finalize today's session",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			sess, err := todaySession(ctx, app)
			if err != nil {
				return err
			}

			if !skipConfirm && app.IsInteractive != nil && app.IsInteractive() {
				confirmed := false
				form := huh.NewForm(huh.NewGroup(
					huh.NewConfirm().
						Title("Clock out for today?").
						Value(&confirmed),
				))
				if err := form.Run(); err != nil {
					return err
				}
				if !confirmed {
					fmt.Println("Still on the clock.")
					return nil
				}
			}

			sess, err = app.Clock.End(ctx, sess.ID)
			if err != nil {
				return err
			}
			fmt.Printf("Clocked out at %s. Worked %s (breaks %s)\n",
				sess.EndTime.Format("15:04"),
				formatter.FormatMinutesPtr(sess.ActualWorkMinutes),
				formatter.FormatMinutesPtr(sess.TotalBreakMinutes))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
