package procurement

import (
	"github.com/linyuchen/gantry/internal/domain"
	"github.com/linyuchen/gantry/internal/tracking"
)

// PermissionTable maps every role to every field of a schema version with an
// explicit editable bit. Tables are total: a missing entry is a bug, not an
// implicit deny.
type PermissionTable map[domain.Role]map[Field]bool

// allRoles covers every role the directory can issue.
var allRoles = []domain.Role{
	domain.RoleAdmin,
	domain.RolePlanner,
	domain.RoleExecutor,
	domain.RoleProcurement,
}

// Per-role allow lists. ProjectName is derived from the project record and is
// read-only for everyone, ADMIN included.
var (
	grantsV2 = map[domain.Role][]Field{
		domain.RoleAdmin: allExcept(fieldsV2, FieldProjectName),
		domain.RolePlanner: {
			FieldEngineeringItem,
			FieldScheduledRequestDate,
			FieldSiteOrganizer,
		},
		domain.RoleExecutor: {
			FieldActualRequestDate,
			FieldRemarks,
		},
		domain.RoleProcurement: {
			FieldProcurementOrganizer,
			FieldSignOffDate,
			FieldControlledDuration,
			FieldContractorConfirm,
			FieldContractorName,
			FieldRemarks,
		},
	}

	grantsV1 = map[domain.Role][]Field{
		domain.RoleAdmin:       allExcept(fieldsV1, FieldProjectName),
		domain.RoleProcurement: allExcept(fieldsV1, FieldProjectName),
		domain.RolePlanner: {
			FieldEngineeringItem,
			FieldScheduledRequestDate,
			FieldSiteOrganizer,
		},
		domain.RoleExecutor: {
			FieldActualRequestDate,
			FieldReturnDate,
			FieldResubmissionDate,
		},
	}
)

var (
	tableV1 = buildTable(fieldsV1, grantsV1)
	tableV2 = buildTable(fieldsV2, grantsV2)
)

func allExcept(fields []Field, excluded Field) []Field {
	out := make([]Field, 0, len(fields))
	for _, f := range fields {
		if f != excluded {
			out = append(out, f)
		}
	}
	return out
}

func buildTable(fields []Field, grants map[domain.Role][]Field) PermissionTable {
	table := make(PermissionTable, len(allRoles))
	for _, role := range allRoles {
		row := make(map[Field]bool, len(fields))
		for _, f := range fields {
			row[f] = false
		}
		for _, f := range grants[role] {
			row[f] = true
		}
		table[role] = row
	}
	return table
}

// Table returns the permission table of the given schema version.
func Table(schema domain.SchemaVersion) PermissionTable {
	if schema == domain.SchemaV1 {
		return tableV1
	}
	return tableV2
}

// Editable reports whether the role may write the field under the given
// schema version. Fields outside the schema's column set are never editable.
func Editable(schema domain.SchemaVersion, role domain.Role, field Field) bool {
	row, ok := Table(schema)[role]
	if !ok {
		return false
	}
	return row[field]
}

// CanManageRows reports whether the role may add or delete procurement rows.
func CanManageRows(role domain.Role) bool {
	return role == domain.RoleAdmin || role == domain.RolePlanner
}

// Scheme returns the variance classification scheme paired with the schema
// version. The legacy variant keeps its finer four-tier breakdown.
func Scheme(schema domain.SchemaVersion) tracking.Scheme {
	if schema == domain.SchemaV1 {
		return tracking.SchemeFourTier
	}
	return tracking.SchemeThreeTier
}
