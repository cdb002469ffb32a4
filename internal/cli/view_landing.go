package cli

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/linyuchen/gantry/internal/cli/formatter"
	"github.com/linyuchen/gantry/internal/domain"
)

// workArea is one department card on the landing screen.
type workArea struct {
	name string
	dept domain.Department
	desc string
}

var workAreas = []workArea{
	{"Procurement", domain.DeptProcurement, "Request and sign-off tracking"},
	{"Operations", domain.DeptOperations, "Stage schedules and progress"},
	{"Quality", domain.DeptQuality, "Inspection plan submissions"},
}

// landingView shows the three work areas. Entries the actor's department may
// not enter render locked; selecting an open one goes to project selection.
type landingView struct {
	state  *SharedState
	cursor int
}

func newLandingView(state *SharedState) *landingView {
	return &landingView{state: state}
}

func (v *landingView) ID() ViewID    { return ViewLanding }
func (v *landingView) Title() string { return "" }

func (v *landingView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "move")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
	}
}

func (v *landingView) Init() tea.Cmd { return nil }

func (v *landingView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}
	switch keyMsg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(workAreas)-1 {
			v.cursor++
		}
	case "enter":
		area := workAreas[v.cursor]
		if v.state.Actor == nil || !v.state.Actor.CanEnter(area.dept) {
			return v, nil
		}
		return v, pushView(newProjectSelectView(v.state, area.dept))
	}
	return v, nil
}

func (v *landingView) View() string {
	var b strings.Builder
	b.WriteString("\n  " + formatter.Header("Work Areas") + "\n\n")

	for i, area := range workAreas {
		marker := "  "
		if i == v.cursor {
			marker = formatter.StyleOrange.Render("> ")
		}
		name := formatter.Bold(area.name)
		desc := formatter.Dim(area.desc)
		if v.state.Actor != nil && !v.state.Actor.CanEnter(area.dept) {
			name = formatter.Dim(area.name)
			desc = formatter.Dim("Locked: requires the " + string(area.dept) + " department")
		}
		b.WriteString("  " + marker + name + "\n")
		b.WriteString("      " + desc + "\n\n")
	}
	return b.String()
}
