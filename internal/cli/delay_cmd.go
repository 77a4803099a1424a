package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newDelayCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delay",
		Short: "Apply schedule-wide delays",
	}

	cmd.AddCommand(newDelayApplyCmd(app))

	return cmd
}

func newDelayApplyCmd(app *App) *cobra.Command {
	var date, reason string
	var days int

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Shift all phases starting on or after a date",
		RunE: func(cmd *cobra.Command, args []string) error {
			exceptionDate, err := time.Parse(dateLayout, date)
			if err != nil {
				return fmt.Errorf("invalid exception date %q: %w", date, err)
			}

			result, err := app.Delay.ApplyGlobalDelay(context.Background(), exceptionDate, reason, days)
			if err != nil {
				return err
			}
			fmt.Printf("Applied delay %s: %d projects affected\n",
				result.ExceptionID[:8], result.ProjectsAffected)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Exception date (YYYY-MM-DD); phases starting on or after shift")
	cmd.Flags().IntVar(&days, "days", 0, "Calendar days to shift by")
	cmd.Flags().StringVar(&reason, "reason", "", "Reason for the delay (e.g. weather)")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("days")

	return cmd
}
