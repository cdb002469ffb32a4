package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/linyuchen/gantry/internal/cli/formatter"
	"github.com/linyuchen/gantry/internal/domain"
	"github.com/linyuchen/gantry/internal/export"
	"github.com/spf13/cobra"
)

func newQualityCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quality",
		Short: "Manage the quality plan control table",
	}

	cmd.AddCommand(
		newQualityListCmd(app),
		newQualitySetCmd(app),
		newQualityExportCmd(app),
	)

	return cmd
}

func qualityActor(cmd *cobra.Command) (*domain.UserProfile, error) {
	actor, err := resolveActor(cmd)
	if err != nil {
		return nil, err
	}
	if err := requireDepartment(actor, domain.DeptQuality); err != nil {
		return nil, err
	}
	return actor, nil
}

// loadQualityRows seeds the fixed plan rows on first view, then lists them.
func loadQualityRows(ctx context.Context, app *App, projectID string) ([]domain.QualityRecord, error) {
	if err := app.Quality.EnsureSeeded(ctx, projectID); err != nil {
		return nil, err
	}
	return app.Quality.ListByProject(ctx, projectID)
}

func newQualityListCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the quality plan rows",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if _, err := qualityActor(cmd); err != nil {
				return err
			}
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}
			records, err := loadQualityRows(ctx, app, projectID)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(records))
			for _, rec := range records {
				rows = append(rows, []string{
					formatter.Dim(rec.ID[:minInt(8, len(rec.ID))]),
					rec.PlanName,
					orDash(rec.ScheduledSubmissionDate),
					orDash(rec.SubmissionDate),
					orDash(rec.ReviewDate),
					orDash(rec.ApprovalDate),
					rec.Owner,
				})
			}
			fmt.Printf("%s\n", formatter.Header("Quality Plan Control"))
			fmt.Print(formatter.RenderTable(
				[]string{"ID", "Plan", "Scheduled", "Submitted", "Reviewed", "Approved", "Owner"},
				rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project id or name")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newQualitySetCmd(app *App) *cobra.Command {
	var field, value string

	cmd := &cobra.Command{
		Use:   "set ROW",
		Short: "Set a date or owner on a quality plan row",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if _, err := qualityActor(cmd); err != nil {
				return err
			}
			if err := app.Quality.UpdateField(ctx, args[0], field, value); err != nil {
				return err
			}
			fmt.Printf("Set %s on row %s\n", field, args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&field, "field", "", "Field name (submissionDate, reviewDate, approvalDate, scheduledSubmissionDate, owner)")
	cmd.Flags().StringVar(&value, "value", "", "New value")
	_ = cmd.MarkFlagRequired("field")

	return cmd
}

func newQualityExportCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the quality table to CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if _, err := qualityActor(cmd); err != nil {
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
			records, err := loadQualityRows(ctx, app, projectID)
			if err != nil {
				return err
			}

			name := export.Filename(p.Name, export.LabelQuality, timeNow())
			if err := os.WriteFile(name, []byte(export.QualityCSV(records)), 0644); err != nil {
				return fmt.Errorf("writing %s: %w", name, err)
			}
			fmt.Printf("Exported %d rows to %s\n", len(records), name)
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project id or name")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}
