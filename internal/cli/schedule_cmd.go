package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mhutchins/crewcal/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newScheduleCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Generate and publish project schedules",
	}

	cmd.AddCommand(
		newScheduleGenerateCmd(app),
		newScheduleSyncCmd(app),
		newScheduleShowCmd(app),
		newSchedulePhasesCmd(app),
	)

	return cmd
}

func newScheduleGenerateCmd(app *App) *cobra.Command {
	var projectID, templateName string
	var publish bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate phases for a project from a template",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveProjectID(ctx, app, projectID)
			if err != nil {
				return err
			}

			result, err := app.Schedules.Generate(ctx, id, templateName, publish)
			if err != nil {
				return err
			}
			fmt.Printf("Created %d phases and %d dependencies\n",
				result.PhasesCreated, result.DependenciesCreated)
			return nil
		},
	}

	cmd.Flags().StringVar(&projectID, "project", "", "Project ID")
	cmd.Flags().StringVar(&templateName, "template", "", "Template name")
	cmd.Flags().BoolVar(&publish, "publish", true, "Mark phases visible to the customer")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("template")

	return cmd
}

func newScheduleSyncCmd(app *App) *cobra.Command {
	var projectID string

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Rebuild the customer-facing schedule for a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveProjectID(ctx, app, projectID)
			if err != nil {
				return err
			}

			sched, err := app.Sync.SyncProject(ctx, id)
			if err != nil {
				return err
			}
			fmt.Printf("Published %d phases (%d total days)\n",
				len(sched.Phases), sched.TotalDurationDays)
			return nil
		},
	}

	cmd.Flags().StringVar(&projectID, "project", "", "Project ID")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newScheduleShowCmd(app *App) *cobra.Command {
	var projectID string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the published customer schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveProjectID(ctx, app, projectID)
			if err != nil {
				return err
			}

			sched, err := app.Schedules.GetSchedule(ctx, id)
			if err != nil {
				return err
			}

			fmt.Println(formatter.Header("Customer Schedule"))
			if sched.ProjectStartDate != nil {
				fmt.Printf("Start %s, %d total days\n\n",
					sched.ProjectStartDate.Format(dateLayout), sched.TotalDurationDays)
			}

			rows := make([][]string, 0, len(sched.Phases))
			for _, p := range sched.Phases {
				rows = append(rows, []string{
					p.Name, strconv.Itoa(p.Workdays), p.StartDate, p.EndDate,
				})
			}
			fmt.Print(formatter.RenderTable(
				[]string{"PHASE", "WORKDAYS", "START", "END"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&projectID, "project", "", "Project ID")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newSchedulePhasesCmd(app *App) *cobra.Command {
	var projectID string

	cmd := &cobra.Command{
		Use:   "phases",
		Short: "List a project's scheduled phases",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveProjectID(ctx, app, projectID)
			if err != nil {
				return err
			}

			phases, err := app.Schedules.ListPhases(ctx, id)
			if err != nil {
				return err
			}
			if len(phases) == 0 {
				fmt.Println(formatter.Dim("No phases scheduled."))
				return nil
			}

			rows := make([][]string, 0, len(phases))
			for _, p := range phases {
				published := ""
				if p.PublishToCustomer {
					published = "yes"
				}
				rows = append(rows, []string{
					p.Name,
					formatter.StatusStyle(p.Status).Render(string(p.Status)),
					p.StartDate.Format(dateLayout),
					p.EndDate.Format(dateLayout),
					strconv.Itoa(p.DurationDays),
					published,
				})
			}
			fmt.Print(formatter.RenderTable(
				[]string{"PHASE", "STATUS", "START", "END", "DAYS", "PUBLISHED"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&projectID, "project", "", "Project ID")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}
