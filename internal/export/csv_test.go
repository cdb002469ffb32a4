package export

import (
	"strings"
	"testing"
	"time"

	"github.com/linyuchen/gantry/internal/domain"
	"github.com/linyuchen/gantry/internal/service"
	"github.com/linyuchen/gantry/internal/tracking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(v int) *int { return &v }

func TestFilename(t *testing.T) {
	today := time.Date(2024, 3, 15, 10, 0, 0, 0, time.Local)
	assert.Equal(t, "Harbor Bridge_operations_2024-03-15.csv",
		Filename("Harbor Bridge", LabelOperations, today))
}

func TestProcurementCSV(t *testing.T) {
	views := []service.ProcurementView{{
		Record: domain.ProcurementRecord{
			EngineeringItem:      "Structural Steel",
			ScheduledRequestDate: "2023-10-01",
			ActualRequestDate:    "2023-10-05",
			SiteOrganizer:        "M. Wang",
			ProcurementOrganizer: "D. Lee",
			ControlledDuration:   "14",
			Remarks:              "priority",
		},
		RequestVariance: intp(-4),
		RequestTier:     tracking.TierNormal,
		SignOffTier:     tracking.TierUnknown,
	}}

	csv := ProcurementCSV(views)
	require.True(t, strings.HasPrefix(csv, "\uFEFF"), "BOM prefix")

	lines := strings.Split(strings.TrimPrefix(csv, "\uFEFF"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, strings.Join(procurementHeaders, ","), lines[0])
	assert.Equal(t,
		`"Structural Steel","2023-10-01","2023-10-05","M. Wang","D. Lee","","14","","","-4","NORMAL","priority","","-"`,
		lines[1])
}

func TestOperationsCSV(t *testing.T) {
	views := []service.OperationView{{
		Record: domain.OperationRecord{
			Category:           "Design",
			Item:               "Basic Design",
			ScheduledStartDate: "2024-01-01",
			ScheduledEndDate:   "2024-01-10",
			ActualStartDate:    "2024-01-01",
			ActualEndDate:      "2024-01-08",
		},
		ScheduledDuration: intp(10),
		ActualDuration:    intp(8),
		Variance:          intp(2),
		Tier:              tracking.TierNormal,
		Progress:          100,
	}}

	csv := OperationsCSV(views)
	lines := strings.Split(strings.TrimPrefix(csv, "\uFEFF"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t,
		`"Design","Basic Design","2024-01-01","2024-01-10","10","2024-01-01","2024-01-08","8","+2","NORMAL","100%",""`,
		lines[1])
}

func TestQualityCSV(t *testing.T) {
	records := []domain.QualityRecord{{
		PlanName:       domain.QualityPlans[0],
		SubmissionDate: "2024-03-01",
		Owner:          "Site QA",
	}}

	csv := QualityCSV(records)
	require.True(t, strings.HasPrefix(csv, "\uFEFF"))
	lines := strings.Split(strings.TrimPrefix(csv, "\uFEFF"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, `"1. Scaffolding Plan","","2024-03-01","","","Site QA"`, lines[1])
}

func TestCSV_FieldsQuotedNotEscaped(t *testing.T) {
	records := []domain.QualityRecord{{
		PlanName: "Plan, with comma",
		Owner:    `Quote "inside"`,
	}}
	csv := QualityCSV(records)
	// Embedded commas and quotes pass through untouched.
	assert.Contains(t, csv, `"Plan, with comma"`)
	assert.Contains(t, csv, `"Quote "inside""`)
}

func TestCSV_EmptyDatasetHasHeaderOnly(t *testing.T) {
	csv := OperationsCSV(nil)
	lines := strings.Split(strings.TrimPrefix(csv, "\uFEFF"), "\n")
	require.Len(t, lines, 1)
	assert.Equal(t, strings.Join(operationHeaders, ","), lines[0])
}
