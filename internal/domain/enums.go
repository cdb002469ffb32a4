package domain

type Department string

const (
	DeptAdmin       Department = "ADMIN"
	DeptProcurement Department = "PROCUREMENT"
	DeptOperations  Department = "OPERATIONS"
	DeptQuality     Department = "QUALITY"
)

// Role is the permission level a user holds within their department.
// It is orthogonal to Department: only the procurement dataset consults it.
type Role string

const (
	RoleAdmin       Role = "ADMIN"
	RolePlanner     Role = "PLANNER"
	RoleExecutor    Role = "EXECUTOR"
	RoleProcurement Role = "PROCUREMENT"
)

// SchemaVersion tags which of the two historical procurement record shapes a
// dataset uses. The two variants are never mixed in a single dataset instance.
type SchemaVersion string

const (
	// SchemaV1 is the legacy shape with return/resubmission tracking.
	SchemaV1 SchemaVersion = "v1"
	// SchemaV2 is the current shape with sign-off and controlled-duration
	// tracking. New datasets default to it.
	SchemaV2 SchemaVersion = "v2"
)

// ValidDepartments is the canonical set of accepted department strings.
var ValidDepartments = map[string]bool{
	"ADMIN": true, "PROCUREMENT": true, "OPERATIONS": true, "QUALITY": true,
}
