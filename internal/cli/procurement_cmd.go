package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/linyuchen/gantry/internal/cli/formatter"
	"github.com/linyuchen/gantry/internal/domain"
	"github.com/linyuchen/gantry/internal/export"
	"github.com/linyuchen/gantry/internal/procurement"
	"github.com/spf13/cobra"
)

func newProcurementCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "procurement",
		Short: "Manage the procurement schedule table",
	}

	cmd.AddCommand(
		newProcurementListCmd(app),
		newProcurementAddCmd(app),
		newProcurementSetCmd(app),
		newProcurementRemoveCmd(app),
		newProcurementExportCmd(app),
	)

	return cmd
}

func procurementActor(cmd *cobra.Command) (*domain.UserProfile, error) {
	actor, err := resolveActor(cmd)
	if err != nil {
		return nil, err
	}
	if err := requireDepartment(actor, domain.DeptProcurement); err != nil {
		return nil, err
	}
	return actor, nil
}

func newProcurementListCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List procurement rows with derived variances",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if _, err := procurementActor(cmd); err != nil {
				return err
			}
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}

			views, err := app.Procurement.ListByProject(ctx, projectID)
			if err != nil {
				return err
			}
			summary, err := app.Procurement.Summary(ctx, projectID, timeNow())
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.Header("Procurement Schedule"))
			fmt.Printf("%d items, %d confirmed, %d severe delays, %d due this week\n\n",
				summary.Total, summary.ContractorConfirmed, summary.SevereDelays, summary.DueThisWeek)

			if len(views) == 0 {
				fmt.Println(formatter.Dim("No rows."))
				return nil
			}

			rows := make([][]string, 0, len(views))
			for _, v := range views {
				rec := v.Record
				rows = append(rows, []string{
					rec.ID,
					rec.EngineeringItem,
					rec.ScheduledRequestDate,
					rec.ActualRequestDate,
					formatter.Variance(v.RequestVariance),
					formatter.TierIndicator(v.RequestTier),
					formatter.Variance(v.SignOffVariance),
					formatter.TierIndicator(v.SignOffTier),
					rec.ContractorName,
				})
			}
			fmt.Print(formatter.RenderTable(
				[]string{"ID", "Item", "Scheduled", "Actual", "Req Var", "Req Status", "Proc Var", "Proc Status", "Contractor"},
				rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project id or name")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newProcurementAddCmd(app *App) *cobra.Command {
	var project, schema string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an empty procurement row",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			actor, err := procurementActor(cmd)
			if err != nil {
				return err
			}
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}
			version, err := parseSchema(schema)
			if err != nil {
				return err
			}

			rec, err := app.Procurement.Add(ctx, actor, projectID, version)
			if err != nil {
				return err
			}
			fmt.Printf("Added procurement row %s (schema %s)\n", rec.ID, rec.Schema)
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project id or name")
	cmd.Flags().StringVar(&schema, "schema", "v2", "Record schema version (v1|v2)")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newProcurementSetCmd(app *App) *cobra.Command {
	var field, value, schema string

	cmd := &cobra.Command{
		Use:   "set ROW",
		Short: "Set one field of a procurement row",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			actor, err := procurementActor(cmd)
			if err != nil {
				return err
			}
			version, err := parseSchema(schema)
			if err != nil {
				return err
			}
			f, ok := procurement.ParseField(version, field)
			if !ok {
				return fmt.Errorf("unknown field %q for schema %s", field, version)
			}
			if err := app.Procurement.UpdateField(ctx, actor, args[0], f, value); err != nil {
				return err
			}
			fmt.Printf("Set %s on row %s\n", field, args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&field, "field", "", "Field name (e.g. actualRequestDate)")
	cmd.Flags().StringVar(&value, "value", "", "New value")
	cmd.Flags().StringVar(&schema, "schema", "v2", "Record schema version (v1|v2)")
	_ = cmd.MarkFlagRequired("field")

	return cmd
}

func newProcurementRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ROW",
		Short: "Remove a procurement row",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			actor, err := procurementActor(cmd)
			if err != nil {
				return err
			}
			ok, err := confirm(cmd, "Delete this procurement row?")
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println("Aborted.")
				return nil
			}
			if err := app.Procurement.Delete(ctx, actor, args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed procurement row %s\n", args[0])
			return nil
		},
	}
}

func newProcurementExportCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the procurement table to CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if _, err := procurementActor(cmd); err != nil {
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
			views, err := app.Procurement.ListByProject(ctx, projectID)
			if err != nil {
				return err
			}

			name := export.Filename(p.Name, export.LabelProcurement, timeNow())
			if err := os.WriteFile(name, []byte(export.ProcurementCSV(views)), 0644); err != nil {
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

func parseSchema(s string) (domain.SchemaVersion, error) {
	switch s {
	case "", "v2":
		return domain.SchemaV2, nil
	case "v1":
		return domain.SchemaV1, nil
	default:
		return "", fmt.Errorf("unknown schema version %q (expected v1 or v2)", s)
	}
}
