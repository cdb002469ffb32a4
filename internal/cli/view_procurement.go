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

type procurementLoadedMsg struct {
	views   []service.ProcurementView
	summary *service.ProcurementSummary
	err     error
}

type exportDoneMsg struct {
	filename string
	rows     int
	err      error
}

// procurementTableView renders the procurement schedule with derived
// variances and the summary line. Edits go through the CLI subcommands; the
// dashboard is a reporting surface.
type procurementTableView struct {
	state   *SharedState
	views   []service.ProcurementView
	summary *service.ProcurementSummary
	status  string
	err     error
}

func newProcurementTableView(state *SharedState) *procurementTableView {
	return &procurementTableView{state: state}
}

func (v *procurementTableView) ID() ViewID    { return ViewProcurementTable }
func (v *procurementTableView) Title() string { return "Procurement" }

func (v *procurementTableView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export csv")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	}
}

func (v *procurementTableView) Init() tea.Cmd {
	return v.load()
}

func (v *procurementTableView) load() tea.Cmd {
	projectID := v.state.ActiveProjectID
	app := v.state.App
	return func() tea.Msg {
		ctx := context.Background()
		views, err := app.Procurement.ListByProject(ctx, projectID)
		if err != nil {
			return procurementLoadedMsg{err: err}
		}
		summary, err := app.Procurement.Summary(ctx, projectID, timeNow())
		if err != nil {
			return procurementLoadedMsg{err: err}
		}
		return procurementLoadedMsg{views: views, summary: summary}
	}
}

func (v *procurementTableView) export() tea.Cmd {
	views := v.views
	projectName := v.state.ActiveProjectName
	return func() tea.Msg {
		name := export.Filename(projectName, export.LabelProcurement, timeNow())
		if err := os.WriteFile(name, []byte(export.ProcurementCSV(views)), 0644); err != nil {
			return exportDoneMsg{err: err}
		}
		return exportDoneMsg{filename: name, rows: len(views)}
	}
}

func (v *procurementTableView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case procurementLoadedMsg:
		v.err = msg.err
		v.views = msg.views
		v.summary = msg.summary
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

func (v *procurementTableView) View() string {
	var b strings.Builder
	b.WriteString("\n  " + formatter.Header("Procurement Schedule") + "\n")

	if v.err != nil {
		b.WriteString("  " + formatter.StyleRed.Render("Error: "+v.err.Error()) + "\n")
		return b.String()
	}

	if v.summary != nil {
		b.WriteString(fmt.Sprintf("  %d items, %d confirmed, %d severe delays, %d due this week\n\n",
			v.summary.Total, v.summary.ContractorConfirmed, v.summary.SevereDelays, v.summary.DueThisWeek))
	}

	if len(v.views) == 0 {
		b.WriteString("  " + formatter.Dim("No rows.") + "\n")
	} else {
		rows := make([][]string, 0, len(v.views))
		for _, pv := range v.views {
			rec := pv.Record
			rows = append(rows, []string{
				formatter.Dim(rec.ID[:minInt(8, len(rec.ID))]),
				rec.EngineeringItem,
				orDash(rec.ScheduledRequestDate),
				orDash(rec.ActualRequestDate),
				formatter.Variance(pv.RequestVariance),
				formatter.TierIndicator(pv.RequestTier),
				formatter.Variance(pv.SignOffVariance),
				formatter.TierIndicator(pv.SignOffTier),
				rec.ContractorName,
			})
		}
		b.WriteString(formatter.RenderTable(
			[]string{"ID", "Item", "Scheduled", "Actual", "Req Var", "Req Status", "Proc Var", "Proc Status", "Contractor"},
			rows))
	}

	if v.status != "" {
		b.WriteString("\n  " + formatter.Dim(v.status) + "\n")
	}
	return b.String()
}
