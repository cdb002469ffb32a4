package cli

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/linyuchen/gantry/internal/auth"
	"github.com/linyuchen/gantry/internal/cli/formatter"
)

// loginView selects the acting user from the built-in directory. There are
// no passwords; the profile only drives department and role gates.
type loginView struct {
	state    *SharedState
	form     *huh.Form
	username string
	err      error
}

func newLoginView(state *SharedState) *loginView {
	v := &loginView{state: state}
	options := make([]huh.Option[string], 0, len(auth.Usernames()))
	for _, name := range auth.Usernames() {
		profile, err := auth.Authenticate(name)
		if err != nil {
			continue
		}
		label := fmt.Sprintf("%s (%s, %s)", profile.Name, profile.Department, profile.Role)
		options = append(options, huh.NewOption(label, name))
	}
	v.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Sign in as").
				Options(options...).
				Value(&v.username),
		),
	).WithTheme(gantryHuhTheme()).WithShowHelp(false)
	return v
}

func (v *loginView) ID() ViewID          { return ViewLogin }
func (v *loginView) Title() string       { return "" }
func (v *loginView) CapturesInput() bool { return true }

func (v *loginView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "sign in")),
		key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (v *loginView) Init() tea.Cmd {
	return v.form.Init()
}

func (v *loginView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := v.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		v.form = f
	}
	if v.form.State == huh.StateCompleted {
		profile, err := auth.Authenticate(v.username)
		if err != nil {
			v.err = err
			return v, nil
		}
		v.state.Actor = profile
		return v, replaceView(newLandingView(v.state))
	}
	return v, cmd
}

func (v *loginView) View() string {
	out := "\n" + v.form.View()
	if v.err != nil {
		out += "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}
	return out
}
