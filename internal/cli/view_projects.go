package cli

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/linyuchen/gantry/internal/cli/formatter"
	"github.com/linyuchen/gantry/internal/domain"
)

type projectsLoadedMsg struct {
	projects []domain.Project
	err      error
}

// projectSelectView picks the project a table view scopes to. The destination
// department decides which table opens on selection.
type projectSelectView struct {
	state    *SharedState
	dept     domain.Department
	projects []domain.Project
	cursor   int
	err      error

	form     *huh.Form
	formName string
}

func newProjectSelectView(state *SharedState, dept domain.Department) *projectSelectView {
	return &projectSelectView{state: state, dept: dept}
}

func (v *projectSelectView) ID() ViewID    { return ViewProjectSelect }
func (v *projectSelectView) Title() string { return "Projects" }

func (v *projectSelectView) CapturesInput() bool { return v.form != nil }

func (v *projectSelectView) ShortHelp() []key.Binding {
	if v.form != nil {
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "create")),
			key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		}
	}
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "move")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new project")),
	}
}

func (v *projectSelectView) Init() tea.Cmd {
	return v.load()
}

func (v *projectSelectView) load() tea.Cmd {
	return func() tea.Msg {
		projects, err := v.state.App.Projects.List(context.Background())
		return projectsLoadedMsg{projects: projects, err: err}
	}
}

func (v *projectSelectView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case projectsLoadedMsg:
		v.err = msg.err
		v.projects = msg.projects
		if v.cursor >= len(v.projects) {
			v.cursor = maxInt(len(v.projects)-1, 0)
		}
		return v, nil

	case refreshViewMsg:
		return v, v.load()

	case tea.KeyMsg:
		if v.form != nil {
			return v.updateForm(msg)
		}
		return v.handleKey(msg)
	}

	if v.form != nil {
		return v.updateForm(msg)
	}
	return v, nil
}

func (v *projectSelectView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(v.projects)-1 {
			v.cursor++
		}
	case "n":
		v.formName = ""
		v.form = huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Project name").
					Value(&v.formName),
			),
		).WithTheme(gantryHuhTheme()).WithShowHelp(false)
		return v, v.form.Init()
	case "enter":
		if len(v.projects) == 0 {
			return v, nil
		}
		v.state.SetActiveProject(v.projects[v.cursor])
		return v, pushView(v.destination())
	}
	return v, nil
}

func (v *projectSelectView) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		v.form = nil
		return v, nil
	}
	form, cmd := v.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		v.form = f
	}
	if v.form.State == huh.StateCompleted {
		name := strings.TrimSpace(v.formName)
		v.form = nil
		if name == "" {
			return v, nil
		}
		return v, func() tea.Msg {
			_, err := v.state.App.Projects.Create(context.Background(), name)
			if err != nil {
				return projectsLoadedMsg{err: err}
			}
			projects, err := v.state.App.Projects.List(context.Background())
			return projectsLoadedMsg{projects: projects, err: err}
		}
	}
	return v, cmd
}

// destination returns the table view for the department this selector was
// opened from.
func (v *projectSelectView) destination() View {
	switch v.dept {
	case domain.DeptOperations:
		return newOperationsTableView(v.state)
	case domain.DeptQuality:
		return newQualityTableView(v.state)
	default:
		return newProcurementTableView(v.state)
	}
}

func (v *projectSelectView) View() string {
	var b strings.Builder
	b.WriteString("\n  " + formatter.Header("Select Project") + "\n\n")

	if v.err != nil {
		b.WriteString("  " + formatter.StyleRed.Render("Error: "+v.err.Error()) + "\n")
		return b.String()
	}

	if len(v.projects) == 0 {
		b.WriteString("  " + formatter.Dim("No projects yet. Press n to create one.") + "\n")
	}
	for i, p := range v.projects {
		marker := "  "
		name := formatter.Bold(p.Name)
		if i == v.cursor {
			marker = formatter.StyleOrange.Render("> ")
		}
		b.WriteString("  " + marker + name + "  " + formatter.Dim(p.DisplayID()) + "\n")
	}

	if v.form != nil {
		b.WriteString("\n" + v.form.View())
	}
	return b.String()
}
