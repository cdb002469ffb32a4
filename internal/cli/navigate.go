package cli

import tea "github.com/charmbracelet/bubbletea"

// Navigation messages passed from views to the root model.
type pushViewMsg struct{ view View }
type popViewMsg struct{}
type replaceViewMsg struct{ view View }

// refreshViewMsg tells every view on the stack to reload its data after a
// mutation made in a view above it.
type refreshViewMsg struct{}

func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

func popView() tea.Cmd {
	return func() tea.Msg { return popViewMsg{} }
}

func replaceView(v View) tea.Cmd {
	return func() tea.Msg { return replaceViewMsg{view: v} }
}

func refreshViews() tea.Cmd {
	return func() tea.Msg { return refreshViewMsg{} }
}
