package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/linyuchen/gantry/internal/cli/formatter"
	"github.com/linyuchen/gantry/internal/domain"
	"github.com/linyuchen/gantry/internal/export"
	"github.com/linyuchen/gantry/internal/service"
	"github.com/spf13/cobra"
)

func newOperationCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "operation",
		Short: "Manage the operations lifecycle table",
	}

	cmd.AddCommand(
		newOperationListCmd(app),
		newOperationAddCmd(app),
		newOperationSetCmd(app),
		newOperationRemoveCmd(app),
		newOperationToggleCmd(app),
		newOperationProgressCmd(app),
		newOperationExportCmd(app),
	)

	return cmd
}

func operationActor(cmd *cobra.Command) (*domain.UserProfile, error) {
	actor, err := resolveActor(cmd)
	if err != nil {
		return nil, err
	}
	if err := requireDepartment(actor, domain.DeptOperations); err != nil {
		return nil, err
	}
	return actor, nil
}

func newOperationListCmd(app *App) *cobra.Command {
	var project string
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List operation rows grouped by stage",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if _, err := operationActor(cmd); err != nil {
				return err
			}
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}

			groups, err := app.Operations.Grouped(ctx, projectID, timeNow())
			if err != nil {
				return err
			}
			progress, err := app.Operations.ProjectProgress(ctx, projectID, timeNow())
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.Header("Operations Schedule"))
			fmt.Printf("Project progress %s\n\n", formatter.RenderProgress(progress, 20))

			for _, g := range groups {
				if len(g.Records) == 0 && !all {
					continue
				}
				marker := "▾"
				if !g.Expanded {
					marker = "▸"
				}
				fmt.Printf("%s %s %s\n", marker, formatter.Bold(g.Stage),
					formatter.Dim(fmt.Sprintf("(%d)", len(g.Records))))
				if !g.Expanded {
					continue
				}
				for _, v := range g.Records {
					fmt.Print(renderOperationRow(v))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project id or name")
	cmd.Flags().BoolVar(&all, "all", false, "Include empty stage groups")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func renderOperationRow(v service.OperationView) string {
	rec := v.Record
	return fmt.Sprintf("  %s  %-28s %s → %s  %s  %s  %s\n",
		formatter.Dim(rec.ID[:minInt(8, len(rec.ID))]),
		rec.Item,
		orDash(rec.ScheduledStartDate),
		orDash(rec.ScheduledEndDate),
		formatter.Variance(v.Variance),
		formatter.TierIndicator(v.Tier),
		formatter.RenderProgress(v.Progress, 10),
	)
}

func orDash(s string) string {
	if s == "" {
		return formatter.Dim("----------")
	}
	return s
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func newOperationAddCmd(app *App) *cobra.Command {
	var project, category, item string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an operation row",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if _, err := operationActor(cmd); err != nil {
				return err
			}
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}
			rec, err := app.Operations.Add(ctx, projectID, category, item)
			if err != nil {
				return err
			}
			fmt.Printf("Added operation row %s under %q\n", rec.ID, displayStage(rec.Category))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project id or name")
	cmd.Flags().StringVar(&category, "stage", "", "Stage name (unknown names group as uncategorized)")
	cmd.Flags().StringVar(&item, "item", "", "Work item name")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("item")

	return cmd
}

func displayStage(category string) string {
	if domain.IsKnownStage(category) {
		return category
	}
	return domain.UncategorizedStage
}

func newOperationSetCmd(app *App) *cobra.Command {
	var field, value string

	cmd := &cobra.Command{
		Use:   "set ROW",
		Short: "Set one field of an operation row",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if _, err := operationActor(cmd); err != nil {
				return err
			}
			if err := app.Operations.UpdateField(ctx, args[0], field, value); err != nil {
				return err
			}
			fmt.Printf("Set %s on row %s\n", field, args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&field, "field", "", "Field name (e.g. actualStartDate)")
	cmd.Flags().StringVar(&value, "value", "", "New value")
	_ = cmd.MarkFlagRequired("field")

	return cmd
}

func newOperationRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ROW",
		Short: "Remove an operation row",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if _, err := operationActor(cmd); err != nil {
				return err
			}
			ok, err := confirm(cmd, "Delete this operation row?")
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println("Aborted.")
				return nil
			}
			if err := app.Operations.Delete(ctx, args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed operation row %s\n", args[0])
			return nil
		},
	}
}

func newOperationToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle STAGE",
		Short: "Expand or collapse a stage group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if _, err := operationActor(cmd); err != nil {
				return err
			}
			open, err := app.Operations.ToggleGroup(ctx, args[0])
			if err != nil {
				return err
			}
			if open {
				fmt.Printf("Expanded %q\n", args[0])
			} else {
				fmt.Printf("Collapsed %q\n", args[0])
			}
			return nil
		},
	}
}

func newOperationProgressCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Show project-level progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if _, err := operationActor(cmd); err != nil {
				return err
			}
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}
			progress, err := app.Operations.ProjectProgress(ctx, projectID, timeNow())
			if err != nil {
				return err
			}
			fmt.Println(formatter.RenderProgress(progress, 30))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project id or name")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newOperationExportCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the operations table to CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if _, err := operationActor(cmd); err != nil {
				return err
			}
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}
			p, err := app.Projects.Get(ctx, projectID)
			if err != nil {
				return err
			}
			groups, err := app.Operations.Grouped(ctx, projectID, timeNow())
			if err != nil {
				return err
			}
			var views []service.OperationView
			for _, g := range groups {
				views = append(views, g.Records...)
			}

			name := export.Filename(p.Name, export.LabelOperations, timeNow())
			if err := os.WriteFile(name, []byte(export.OperationsCSV(views)), 0644); err != nil {
				return fmt.Errorf("writing %s: %w", name, err)
			}
			fmt.Printf("Exported %d rows to %s\n", len(views), name)
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project id or name")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}
