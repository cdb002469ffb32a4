package tracking

import (
	"testing"
	"time"

	"github.com/linyuchen/gantry/internal/domain"
	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestItemProgress_NoStart(t *testing.T) {
	today := day(2024, 2, 1)
	assert.Equal(t, 0, ItemProgress("", "", "2024-03-01", today))
	assert.Equal(t, 0, ItemProgress("garbage", "", "2024-03-01", today))
}

func TestItemProgress_StartInFuture(t *testing.T) {
	today := day(2024, 1, 1)
	assert.Equal(t, 0, ItemProgress("2024-06-01", "", "2024-07-01", today))
}

func TestItemProgress_NoTargetEnd(t *testing.T) {
	today := day(2024, 2, 1)
	assert.Equal(t, 0, ItemProgress("2024-01-01", "", "", today))
	assert.Equal(t, 0, ItemProgress("2024-01-01", "bad", "also-bad", today))
}

func TestItemProgress_ActualEndPreferredOverScheduled(t *testing.T) {
	today := day(2024, 1, 11)
	// Actual end 2024-01-21: 10 of 20 days elapsed.
	assert.Equal(t, 50, ItemProgress("2024-01-01", "2024-01-21", "2024-02-20", today))
	// Without actual end, scheduled end 2024-02-20: 10 of 50 days.
	assert.Equal(t, 20, ItemProgress("2024-01-01", "", "2024-02-20", today))
}

func TestItemProgress_NonPositiveSpanIsComplete(t *testing.T) {
	today := day(2024, 3, 1)
	// Target end equals start.
	assert.Equal(t, 100, ItemProgress("2024-01-10", "2024-01-10", "", today))
	// Target end before start.
	assert.Equal(t, 100, ItemProgress("2024-01-10", "2024-01-05", "", today))
}

func TestItemProgress_ClampsAt100(t *testing.T) {
	today := day(2024, 6, 1)
	assert.Equal(t, 100, ItemProgress("2024-01-01", "", "2024-02-01", today))
}

func TestItemProgress_MonotoneInToday(t *testing.T) {
	prev := 0
	for d := 0; d < 70; d++ {
		today := day(2024, 1, 1).AddDate(0, 0, d)
		pct := ItemProgress("2024-01-01", "", "2024-03-01", today)
		assert.GreaterOrEqual(t, pct, prev, "day offset %d", d)
		prev = pct
	}
	assert.Equal(t, 100, prev)
}

func opRec(category, schedEnd, actStart, actEnd string) domain.OperationRecord {
	return domain.OperationRecord{
		ID:                 "r",
		ProjectID:          "p",
		Category:           category,
		ScheduledEndDate:   schedEnd,
		ActualStartDate:    actStart,
		ActualEndDate:      actEnd,
		ScheduledStartDate: "",
	}
}

func TestProjectProgress_NoValidStart(t *testing.T) {
	records := []domain.OperationRecord{
		opRec("Design", "2024-03-01", "", ""),
		opRec("Structure", "2024-06-01", "invalid", ""),
	}
	assert.Equal(t, 0, ProjectProgress(records, day(2024, 2, 1)))
}

func TestProjectProgress_EmptyProject(t *testing.T) {
	assert.Equal(t, 0, ProjectProgress(nil, day(2024, 2, 1)))
}

func TestProjectProgress_NeverFullWithoutActualEnd(t *testing.T) {
	// Schedule alone must not signal "done": start 2024-01-01, scheduled end
	// 2024-01-31, evaluated well past the end date.
	records := []domain.OperationRecord{
		opRec("Design", "2024-01-31", "2024-01-01", ""),
	}
	assert.Equal(t, 99, ProjectProgress(records, day(2024, 2, 15)))
}

func TestProjectProgress_FullOnlyWithActualEnd(t *testing.T) {
	records := []domain.OperationRecord{
		opRec("Design", "2024-01-31", "2024-01-01", "2024-02-10"),
	}
	assert.Equal(t, 100, ProjectProgress(records, day(2024, 2, 1)))
}

func TestProjectProgress_TerminalStageAnchorsCompletion(t *testing.T) {
	records := []domain.OperationRecord{
		opRec("Design", "2024-01-31", "2024-01-01", "2024-01-31"),
		opRec(domain.TerminalStage, "2024-12-31", "2024-11-01", ""),
		// A later non-terminal record must not steal the anchor.
		opRec("Interior Finish", "2024-06-30", "2024-05-01", "2024-06-30"),
	}
	// Anchor is the handover record: no actual end, so interpolate between
	// project start (2024-01-01) and its scheduled end (2024-12-31).
	got := ProjectProgress(records, day(2024, 7, 1))
	assert.Greater(t, got, 0)
	assert.Less(t, got, 100)

	// Completing the handover record flips the project to 100.
	records[1].ActualEndDate = "2024-12-20"
	assert.Equal(t, 100, ProjectProgress(records, day(2024, 7, 1)))
}

func TestProjectProgress_LastRecordAnchorsWhenNoTerminalStage(t *testing.T) {
	records := []domain.OperationRecord{
		opRec("Design", "2024-01-31", "2024-01-01", "2024-01-31"),
		opRec("Structure", "2024-03-31", "2024-02-01", ""),
	}
	// Anchor = last record; no scheduled end missing here, interpolation runs.
	got := ProjectProgress(records, day(2024, 2, 15))
	assert.Greater(t, got, 0)
	assert.LessOrEqual(t, got, 99)
}

func TestProjectProgress_AnchorWithoutScheduledEnd(t *testing.T) {
	records := []domain.OperationRecord{
		opRec("Design", "", "2024-01-01", ""),
	}
	assert.Equal(t, 0, ProjectProgress(records, day(2024, 2, 1)))
}

func TestProjectProgress_BeforeStart(t *testing.T) {
	records := []domain.OperationRecord{
		opRec("Design", "2024-06-30", "2024-03-01", ""),
	}
	assert.Equal(t, 0, ProjectProgress(records, day(2024, 1, 1)))
}
