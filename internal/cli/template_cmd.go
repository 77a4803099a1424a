package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mhutchins/crewcal/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newTemplateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Manage phase templates",
	}

	cmd.AddCommand(
		newTemplateImportCmd(app),
		newTemplateListCmd(app),
		newTemplateShowCmd(app),
	)

	return cmd
}

func newTemplateImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.json>",
		Short: "Import a phase template from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tmpl, err := app.Templates.ImportFile(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Imported template %q\n", tmpl.Name)
			return nil
		},
	}
}

func newTemplateListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List phase templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			templates, err := app.Templates.List(context.Background())
			if err != nil {
				return err
			}
			if len(templates) == 0 {
				fmt.Println(formatter.Dim("No templates imported."))
				return nil
			}

			rows := make([][]string, 0, len(templates))
			for _, t := range templates {
				rows = append(rows, []string{t.Name, t.BuildingType})
			}
			fmt.Print(formatter.RenderTable([]string{"NAME", "BUILDING TYPE"}, rows))
			return nil
		},
	}
}

func newTemplateShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show a template's phases",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tmpl, items, err := app.Templates.GetByName(context.Background(), args[0])
			if err != nil {
				return err
			}

			fmt.Println(formatter.Header(tmpl.Name))
			nameByID := make(map[string]string, len(items))
			for _, item := range items {
				nameByID[item.ID] = item.Name
			}

			rows := make([][]string, 0, len(items))
			for _, item := range items {
				pred := ""
				lag := ""
				if item.PredecessorItemID != nil {
					pred = nameByID[*item.PredecessorItemID]
					lag = strconv.Itoa(item.LagDays)
				}
				rows = append(rows, []string{
					item.Name,
					strconv.Itoa(item.DefaultDurationDays),
					pred,
					lag,
				})
			}
			fmt.Print(formatter.RenderTable(
				[]string{"PHASE", "WORKDAYS", "AFTER", "LAG"}, rows))
			return nil
		},
	}
}
