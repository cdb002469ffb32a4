package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/linyuchen/gantry/internal/cli/formatter"
	"github.com/spf13/cobra"
)

// resolveProjectID matches a project by exact id, id prefix, or exact name.
func resolveProjectID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("project is required")
	}

	projects, err := app.Projects.List(ctx)
	if err != nil {
		return "", err
	}

	for _, p := range projects {
		if p.ID == input || p.Name == input {
			return p.ID, nil
		}
	}

	var matches []string
	for _, p := range projects {
		if strings.HasPrefix(p.ID, input) {
			matches = append(matches, p.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("project not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("project %q is ambiguous (%d matches)", input, len(matches))
	}
}

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	cmd.AddCommand(
		newProjectListCmd(app),
		newProjectAddCmd(app),
		newProjectRenameCmd(app),
		newProjectRemoveCmd(app),
	)

	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projects, err := app.Projects.List(ctx)
			if err != nil {
				return err
			}
			if len(projects) == 0 {
				fmt.Println("No projects found.")
				return nil
			}

			rows := make([][]string, 0, len(projects))
			for _, p := range projects {
				progress, err := app.Operations.ProjectProgress(ctx, p.ID, timeNow())
				if err != nil {
					return err
				}
				rows = append(rows, []string{
					formatter.StyleGreen.Render(p.DisplayID()),
					p.Name,
					formatter.RenderProgress(progress, 12),
					formatter.Dim(p.CreatedAt),
				})
			}
			fmt.Print(formatter.RenderTable([]string{"ID", "Name", "Progress", "Created"}, rows))
			return nil
		},
	}
}

func newProjectAddCmd(app *App) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new project",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Projects.Create(context.Background(), name)
			if err != nil {
				return err
			}
			fmt.Printf("Created project %s [%s]\n", p.Name, p.DisplayID())
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Project name")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newProjectRenameCmd(app *App) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "rename PROJECT",
		Short: "Rename a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Projects.Rename(ctx, projectID, name); err != nil {
				return err
			}
			fmt.Printf("Renamed project %s to %q\n", projectID, name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New project name")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newProjectRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove PROJECT",
		Short: "Remove a project and all its records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			ok, err := confirm(cmd, "Delete this project and all of its records? This cannot be undone.")
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println("Aborted.")
				return nil
			}
			if err := app.Projects.Delete(ctx, projectID); err != nil {
				return err
			}
			fmt.Printf("Removed project %s\n", projectID)
			return nil
		},
	}
}
