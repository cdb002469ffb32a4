package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/linyuchen/gantry/internal/cli/formatter"
	"github.com/linyuchen/gantry/internal/domain"
	"github.com/linyuchen/gantry/internal/export"
)

type qualityLoadedMsg struct {
	records []domain.QualityRecord
	err     error
}

// qualityTableView renders the fixed quality plan checklist. The rows are
// seeded on first open for the active project.
type qualityTableView struct {
	state   *SharedState
	records []domain.QualityRecord
	status  string
	err     error
}

func newQualityTableView(state *SharedState) *qualityTableView {
	return &qualityTableView{state: state}
}

func (v *qualityTableView) ID() ViewID    { return ViewQualityTable }
func (v *qualityTableView) Title() string { return "Quality" }

func (v *qualityTableView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export csv")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	}
}

func (v *qualityTableView) Init() tea.Cmd {
	return v.load()
}

func (v *qualityTableView) load() tea.Cmd {
	projectID := v.state.ActiveProjectID
	app := v.state.App
	return func() tea.Msg {
		records, err := loadQualityRows(context.Background(), app, projectID)
		return qualityLoadedMsg{records: records, err: err}
	}
}

func (v *qualityTableView) export() tea.Cmd {
	records := v.records
	projectName := v.state.ActiveProjectName
	return func() tea.Msg {
		name := export.Filename(projectName, export.LabelQuality, timeNow())
		if err := os.WriteFile(name, []byte(export.QualityCSV(records)), 0644); err != nil {
			return exportDoneMsg{err: err}
		}
		return exportDoneMsg{filename: name, rows: len(records)}
	}
}

func (v *qualityTableView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case qualityLoadedMsg:
		v.err = msg.err
		v.records = msg.records
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
		case "e":
			return v, v.export()
		case "r":
			v.status = ""
			return v, v.load()
		}
	}
	return v, nil
}

func (v *qualityTableView) View() string {
	var b strings.Builder
	b.WriteString("\n  " + formatter.Header("Quality Plan Control") + "\n\n")

	if v.err != nil {
		b.WriteString("  " + formatter.StyleRed.Render("Error: "+v.err.Error()) + "\n")
		return b.String()
	}

	rows := make([][]string, 0, len(v.records))
	for _, rec := range v.records {
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
	b.WriteString(formatter.RenderTable(
		[]string{"ID", "Plan", "Scheduled", "Submitted", "Reviewed", "Approved", "Owner"},
		rows))

	if v.status != "" {
		b.WriteString("\n  " + formatter.Dim(v.status) + "\n")
	}
	return b.String()
}
