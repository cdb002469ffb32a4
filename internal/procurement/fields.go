// Package procurement defines the enumerated procurement field identifiers
// and the role-by-field edit permission tables, one per schema version.
package procurement

import "github.com/linyuchen/gantry/internal/domain"

// Field identifies one editable column of a procurement record. Permission
// checks key on these identifiers, never on raw strings.
type Field string

const (
	FieldEngineeringItem      Field = "engineeringItem"
	FieldProjectName          Field = "projectName"
	FieldScheduledRequestDate Field = "scheduledRequestDate"
	FieldActualRequestDate    Field = "actualRequestDate"
	FieldSiteOrganizer        Field = "siteOrganizer"
	FieldProcurementOrganizer Field = "procurementOrganizer"
	FieldSignOffDate          Field = "procurementSignOffDate"
	FieldControlledDuration   Field = "controlledDuration"
	FieldContractorConfirm    Field = "contractorConfirmDate"
	FieldContractorName       Field = "contractorName"
	FieldReturnDate           Field = "returnDate"
	FieldResubmissionDate     Field = "resubmissionDate"
	FieldRemarks              Field = "remarks"
)

// fieldsV1 and fieldsV2 list the columns each schema version carries, in
// display order. The two sets share the request-tracking core and diverge on
// the tail.
var (
	fieldsV1 = []Field{
		FieldEngineeringItem,
		FieldProjectName,
		FieldScheduledRequestDate,
		FieldActualRequestDate,
		FieldSiteOrganizer,
		FieldProcurementOrganizer,
		FieldReturnDate,
		FieldResubmissionDate,
		FieldRemarks,
	}
	fieldsV2 = []Field{
		FieldEngineeringItem,
		FieldProjectName,
		FieldScheduledRequestDate,
		FieldActualRequestDate,
		FieldSiteOrganizer,
		FieldProcurementOrganizer,
		FieldSignOffDate,
		FieldControlledDuration,
		FieldContractorConfirm,
		FieldContractorName,
		FieldRemarks,
	}
)

// Fields returns the ordered column set of the given schema version.
func Fields(schema domain.SchemaVersion) []Field {
	if schema == domain.SchemaV1 {
		return fieldsV1
	}
	return fieldsV2
}

// ParseField maps a raw column name to its identifier within the given
// schema version.
func ParseField(schema domain.SchemaVersion, name string) (Field, bool) {
	for _, f := range Fields(schema) {
		if string(f) == name {
			return f, true
		}
	}
	return "", false
}
