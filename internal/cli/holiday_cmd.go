package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/mhutchins/crewcal/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newHolidayCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "holiday",
		Short: "Manage the holiday calendar",
	}

	cmd.AddCommand(
		newHolidaySeedCmd(app),
		newHolidayListCmd(app),
	)

	return cmd
}

func newHolidaySeedCmd(app *App) *cobra.Command {
	var yearsFlag string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed standard US holidays for the given years",
		RunE: func(cmd *cobra.Command, args []string) error {
			var years []int
			for _, part := range strings.Split(yearsFlag, ",") {
				year, err := strconv.Atoi(strings.TrimSpace(part))
				if err != nil {
					return fmt.Errorf("invalid year %q", part)
				}
				years = append(years, year)
			}

			inserted := app.Holidays.SeedDefaultHolidays(context.Background(), years)
			fmt.Printf("Seeded %d holidays\n", inserted)
			return nil
		},
	}

	cmd.Flags().StringVar(&yearsFlag, "years", "", "Comma-separated years (e.g. 2025,2026)")
	_ = cmd.MarkFlagRequired("years")

	return cmd
}

func newHolidayListCmd(app *App) *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List holidays",
		RunE: func(cmd *cobra.Command, args []string) error {
			holidays, err := app.Holidays.List(context.Background(), year)
			if err != nil {
				return err
			}
			if len(holidays) == 0 {
				fmt.Println(formatter.Dim("No holidays seeded."))
				return nil
			}

			rows := make([][]string, 0, len(holidays))
			for _, h := range holidays {
				rows = append(rows, []string{h.Date, h.Name})
			}
			fmt.Print(formatter.RenderTable([]string{"DATE", "HOLIDAY"}, rows))
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Filter by year")

	return cmd
}
