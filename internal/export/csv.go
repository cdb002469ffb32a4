// Package export builds the CSV documents behind each table's export button.
// Output is UTF-8 with a leading byte-order mark so spreadsheet software
// detects the encoding. Every field is wrapped in double quotes; embedded
// quotes and commas are not escaped, which the consumers accept.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/linyuchen/gantry/internal/domain"
	"github.com/linyuchen/gantry/internal/service"
	"github.com/linyuchen/gantry/internal/tracking"
)

const bom = "\uFEFF"

// Dataset labels used in export filenames.
const (
	LabelProcurement = "procurement"
	LabelOperations  = "operations"
	LabelQuality     = "quality"
)

// Filename builds the export filename for one project and dataset.
func Filename(projectName, datasetLabel string, today time.Time) string {
	return fmt.Sprintf("%s_%s_%s.csv", projectName, datasetLabel, today.Format(tracking.DateLayout))
}

var procurementHeaders = []string{
	"Engineering Item",
	"Scheduled Request Date",
	"Actual Request Date",
	"Site Organizer",
	"Procurement Organizer",
	"Sign-Off Date",
	"Controlled Duration",
	"Contractor Confirm Date",
	"Contractor Name",
	"Request Variance",
	"Request Status",
	"Remarks",
	"Sign-Off Variance",
	"Sign-Off Status",
}

// ProcurementCSV renders one project's procurement rows with their derived
// variance columns.
func ProcurementCSV(views []service.ProcurementView) string {
	lines := []string{strings.Join(procurementHeaders, ",")}
	for _, v := range views {
		rec := v.Record
		lines = append(lines, row(
			rec.EngineeringItem,
			rec.ScheduledRequestDate,
			rec.ActualRequestDate,
			rec.SiteOrganizer,
			rec.ProcurementOrganizer,
			rec.SignOffDate,
			rec.ControlledDuration,
			rec.ContractorConfirmDate,
			rec.ContractorName,
			formatVariance(v.RequestVariance),
			tierLabel(v.RequestTier),
			rec.Remarks,
			formatVariance(v.SignOffVariance),
			tierLabel(v.SignOffTier),
		))
	}
	return bom + strings.Join(lines, "\n")
}

var operationHeaders = []string{
	"Stage",
	"Item",
	"Scheduled Start",
	"Scheduled End",
	"Scheduled Duration",
	"Actual Start",
	"Actual End",
	"Actual Duration",
	"Variance (Days)",
	"Status",
	"Progress",
	"Remarks",
}

// OperationsCSV renders one project's operation rows with their derived
// schedule columns.
func OperationsCSV(views []service.OperationView) string {
	lines := []string{strings.Join(operationHeaders, ",")}
	for _, v := range views {
		rec := v.Record
		lines = append(lines, row(
			rec.Category,
			rec.Item,
			rec.ScheduledStartDate,
			rec.ScheduledEndDate,
			formatDuration(v.ScheduledDuration),
			rec.ActualStartDate,
			rec.ActualEndDate,
			formatDuration(v.ActualDuration),
			formatVariance(v.Variance),
			tierLabel(v.Tier),
			fmt.Sprintf("%d%%", v.Progress),
			rec.Remarks,
		))
	}
	return bom + strings.Join(lines, "\n")
}

var qualityHeaders = []string{
	"Plan Name",
	"Scheduled Submission Date",
	"Submission Date",
	"Review Date",
	"Approval Date",
	"Owner",
}

// QualityCSV renders one project's quality plan rows.
func QualityCSV(records []domain.QualityRecord) string {
	lines := []string{strings.Join(qualityHeaders, ",")}
	for _, rec := range records {
		lines = append(lines, row(
			rec.PlanName,
			rec.ScheduledSubmissionDate,
			rec.SubmissionDate,
			rec.ReviewDate,
			rec.ApprovalDate,
			rec.Owner,
		))
	}
	return bom + strings.Join(lines, "\n")
}

func row(values ...string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = `"` + v + `"`
	}
	return strings.Join(quoted, ",")
}

func formatVariance(v *int) string {
	if v == nil {
		return ""
	}
	if *v > 0 {
		return fmt.Sprintf("+%d", *v)
	}
	return fmt.Sprintf("%d", *v)
}

func formatDuration(d *int) string {
	if d == nil {
		return ""
	}
	return fmt.Sprintf("%d", *d)
}

func tierLabel(tier tracking.Tier) string {
	if tier == tracking.TierUnknown {
		return "-"
	}
	return strings.ToUpper(string(tier))
}
