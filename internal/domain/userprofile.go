package domain

// UserProfile identifies a user from the static directory. It is never
// persisted; Department gates which work areas the user may enter and Role
// gates field-level edits inside the procurement dataset.
type UserProfile struct {
	Username   string
	Name       string
	Department Department
	Role       Role
}

// CanEnter reports whether the profile may enter the given work area.
// The ADMIN department bypasses all gates.
func (u *UserProfile) CanEnter(dept Department) bool {
	if u.Department == DeptAdmin {
		return true
	}
	return u.Department == dept
}
