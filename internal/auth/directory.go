// Package auth resolves usernames against the built-in user directory.
// There are no passwords or sessions; identity selection is trusted and the
// profile only drives department gating and field-level permissions.
package auth

import (
	"fmt"
	"sort"

	"github.com/linyuchen/gantry/internal/domain"
)

// ErrUnknownUser is returned by Authenticate for usernames not in the
// directory.
var ErrUnknownUser = fmt.Errorf("unknown user")

var directory = map[string]domain.UserProfile{
	"admin": {
		Username:   "admin",
		Name:       "System Administrator",
		Department: domain.DeptAdmin,
		Role:       domain.RoleAdmin,
	},
	"proc_user": {
		Username:   "proc_user",
		Name:       "Procurement Staff",
		Department: domain.DeptProcurement,
		Role:       domain.RoleProcurement,
	},
	"ops_user": {
		Username:   "ops_user",
		Name:       "Operations Planner",
		Department: domain.DeptOperations,
		Role:       domain.RolePlanner,
	},
	"qa_user": {
		Username:   "qa_user",
		Name:       "Quality Executor",
		Department: domain.DeptQuality,
		Role:       domain.RoleExecutor,
	},
}

// Authenticate resolves a username to its profile.
func Authenticate(username string) (*domain.UserProfile, error) {
	profile, ok := directory[username]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownUser, username)
	}
	return &profile, nil
}

// Usernames lists every known username in stable order, for login prompts.
func Usernames() []string {
	names := make([]string, 0, len(directory))
	for name := range directory {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
