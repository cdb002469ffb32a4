package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/linyuchen/gantry/internal/cli/formatter"
	"github.com/linyuchen/gantry/internal/export"
	"github.com/linyuchen/gantry/internal/service"
)

type operationsLoadedMsg struct {
	groups   []service.OperationGroup
	progress int
	err      error
}

// operationsTableView renders the stage-grouped operations schedule. The
// cursor moves over stage headers; enter flips the persisted expand state.
type operationsTableView struct {
	state    *SharedState
	groups   []service.OperationGroup
	progress int
	cursor   int
	status   string
	err      error
}

func newOperationsTableView(state *SharedState) *operationsTableView {
	return &operationsTableView{state: state}
}

func (v *operationsTableView) ID() ViewID    { return ViewOperationsTable }
func (v *operationsTableView) Title() string { return "Operations" }

func (v *operationsTableView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "stage")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "expand/collapse")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export csv")),
	}
}

func (v *operationsTableView) Init() tea.Cmd {
	return v.load()
}

func (v *operationsTableView) load() tea.Cmd {
	projectID := v.state.ActiveProjectID
	app := v.state.App
	return func() tea.Msg {
		ctx := context.Background()
		groups, err := app.Operations.Grouped(ctx, projectID, timeNow())
		if err != nil {
			return operationsLoadedMsg{err: err}
		}
		progress, err := app.Operations.ProjectProgress(ctx, projectID, timeNow())
		if err != nil {
			return operationsLoadedMsg{err: err}
		}
		return operationsLoadedMsg{groups: groups, progress: progress}
	}
}

func (v *operationsTableView) toggle() tea.Cmd {
	if v.cursor >= len(v.groups) {
		return nil
	}
	stage := v.groups[v.cursor].Stage
	app := v.state.App
	load := v.load()
	return func() tea.Msg {
		if _, err := app.Operations.ToggleGroup(context.Background(), stage); err != nil {
			return operationsLoadedMsg{err: err}
		}
		return load()
	}
}

func (v *operationsTableView) export() tea.Cmd {
	var views []service.OperationView
	for _, g := range v.groups {
		views = append(views, g.Records...)
	}
	projectName := v.state.ActiveProjectName
	return func() tea.Msg {
		name := export.Filename(projectName, export.LabelOperations, timeNow())
		if err := os.WriteFile(name, []byte(export.OperationsCSV(views)), 0644); err != nil {
			return exportDoneMsg{err: err}
		}
		return exportDoneMsg{filename: name, rows: len(views)}
	}
}

func (v *operationsTableView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case operationsLoadedMsg:
		v.err = msg.err
		v.groups = msg.groups
		v.progress = msg.progress
		if v.cursor >= len(v.groups) {
			v.cursor = maxInt(len(v.groups)-1, 0)
		}
		return v, nil

	case exportDoneMsg:
		if msg.err != nil {
			v.status = formatter.StyleRed.Render("Export failed: " + msg.err.Error())
		} else {
			v.status = fmt.Sprintf("Exported %d rows to %s", msg.rows, msg.filename)
		}
		return v, nil

	case refreshViewMsg:
		return v, v.load()

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.groups)-1 {
				v.cursor++
			}
		case "enter", " ":
			return v, v.toggle()
		case "e":
			return v, v.export()
		case "r":
			v.status = ""
			return v, v.load()
		}
	}
	return v, nil
}

func (v *operationsTableView) View() string {
	var b strings.Builder
	b.WriteString("\n  " + formatter.Header("Operations Schedule") + "\n")

	if v.err != nil {
		b.WriteString("  " + formatter.StyleRed.Render("Error: "+v.err.Error()) + "\n")
		return b.String()
	}

	b.WriteString("  Project progress " + formatter.RenderProgress(v.progress, 20) + "\n\n")

	for i, g := range v.groups {
		marker := "▾"
		if !g.Expanded {
			marker = "▸"
		}
		cursor := "  "
		if i == v.cursor {
			cursor = formatter.StyleOrange.Render("> ")
		}
		b.WriteString(fmt.Sprintf("%s%s %s %s\n", cursor, marker, formatter.Bold(g.Stage),
			formatter.Dim(fmt.Sprintf("(%d)", len(g.Records)))))
		if !g.Expanded {
			continue
		}
		for _, rec := range g.Records {
			b.WriteString("  " + renderOperationRow(rec))
		}
	}

	if v.status != "" {
		b.WriteString("\n  " + formatter.Dim(v.status) + "\n")
	}
	return b.String()
}
