package domain

// Date fields on all record types hold either the empty string or a strict
// YYYY-MM-DD literal exactly as entered. Anything else is treated as absent
// by the tracking package, never as an error. Raw strings are stored so that
// a half-typed date survives a save/reload cycle.

// ProcurementRecord is one row of the procurement request/award table.
// Schema tags which historical field set applies; the V1-only and V2-only
// fields of the other variant stay empty and are ignored.
type ProcurementRecord struct {
	ID              string        `json:"id"`
	ProjectID       string        `json:"projectId"`
	Schema          SchemaVersion `json:"schemaVersion,omitempty"`
	EngineeringItem string        `json:"engineeringItem"`
	ProjectName     string        `json:"projectName"`

	ScheduledRequestDate string `json:"scheduledRequestDate"`
	ActualRequestDate    string `json:"actualRequestDate"`

	SiteOrganizer        string `json:"siteOrganizer"`
	ProcurementOrganizer string `json:"procurementOrganizer"`

	// V2 fields: sign-off and controlled-duration tracking.
	SignOffDate           string `json:"procurementSignOffDate,omitempty"`
	ControlledDuration    string `json:"controlledDuration,omitempty"` // integer days, stored as string
	ContractorConfirmDate string `json:"contractorConfirmDate,omitempty"`
	ContractorName        string `json:"contractorName,omitempty"`

	// V1 fields: return/resubmission tracking.
	ReturnDate       string `json:"returnDate,omitempty"`
	ResubmissionDate string `json:"resubmissionDate,omitempty"`

	Remarks string `json:"remarks"`
}

// OperationRecord is one row of the full-lifecycle operations table.
// Durations, variance, and progress are always derived, never stored.
type OperationRecord struct {
	ID        string `json:"id"`
	ProjectID string `json:"projectId"`
	Category  string `json:"category"` // one of OperationStages, or uncategorized
	Item      string `json:"item"`

	ScheduledStartDate string `json:"scheduledStartDate"`
	ScheduledEndDate   string `json:"scheduledEndDate"`
	ActualStartDate    string `json:"actualStartDate"`
	ActualEndDate      string `json:"actualEndDate"`

	Remarks string `json:"remarks"`
}

// QualityRecord is one row of the quality plan submission control table.
// PlanName is one of the twelve QualityPlans and is immutable after seeding;
// only the date fields and Owner are editable.
type QualityRecord struct {
	ID        string `json:"id"`
	ProjectID string `json:"projectId"`
	PlanName  string `json:"planName"`

	ScheduledSubmissionDate string `json:"scheduledSubmissionDate"`
	SubmissionDate          string `json:"submissionDate"`
	ReviewDate              string `json:"reviewDate"`
	ApprovalDate            string `json:"approvalDate"`

	Owner string `json:"owner"`
}
