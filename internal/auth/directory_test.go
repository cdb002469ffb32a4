package auth

import (
	"testing"

	"github.com/linyuchen/gantry/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticate(t *testing.T) {
	tests := []struct {
		username string
		dept     domain.Department
		role     domain.Role
	}{
		{"admin", domain.DeptAdmin, domain.RoleAdmin},
		{"proc_user", domain.DeptProcurement, domain.RoleProcurement},
		{"ops_user", domain.DeptOperations, domain.RolePlanner},
		{"qa_user", domain.DeptQuality, domain.RoleExecutor},
	}
	for _, tc := range tests {
		t.Run(tc.username, func(t *testing.T) {
			profile, err := Authenticate(tc.username)
			require.NoError(t, err)
			assert.Equal(t, tc.username, profile.Username)
			assert.Equal(t, tc.dept, profile.Department)
			assert.Equal(t, tc.role, profile.Role)
			assert.NotEmpty(t, profile.Name)
		})
	}
}

func TestAuthenticate_UnknownUser(t *testing.T) {
	_, err := Authenticate("nobody")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownUser)
}

func TestAuthenticate_ReturnsCopy(t *testing.T) {
	first, err := Authenticate("admin")
	require.NoError(t, err)
	first.Department = domain.DeptQuality

	second, err := Authenticate("admin")
	require.NoError(t, err)
	assert.Equal(t, domain.DeptAdmin, second.Department)
}

func TestUsernames_SortedAndComplete(t *testing.T) {
	assert.Equal(t, []string{"admin", "ops_user", "proc_user", "qa_user"}, Usernames())
}

func TestDepartmentGate(t *testing.T) {
	admin, err := Authenticate("admin")
	require.NoError(t, err)
	for _, dept := range []domain.Department{domain.DeptProcurement, domain.DeptOperations, domain.DeptQuality} {
		assert.True(t, admin.CanEnter(dept), "admin enters %s", dept)
	}

	ops, err := Authenticate("ops_user")
	require.NoError(t, err)
	assert.True(t, ops.CanEnter(domain.DeptOperations))
	assert.False(t, ops.CanEnter(domain.DeptProcurement))
	assert.False(t, ops.CanEnter(domain.DeptQuality))
}
