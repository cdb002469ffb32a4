package cli

import "github.com/linyuchen/gantry/internal/domain"

// SharedState carries the context every TUI view needs: the wired services,
// the logged-in profile, and the active project selection.
type SharedState struct {
	App   *App
	Actor *domain.UserProfile

	ActiveProjectID   string
	ActiveProjectName string

	Width  int
	Height int
}

// SetActiveProject records the project a table view should scope to.
func (s *SharedState) SetActiveProject(p domain.Project) {
	s.ActiveProjectID = p.ID
	s.ActiveProjectName = p.Name
}
