package tracking

import (
	"math"
	"time"

	"github.com/linyuchen/gantry/internal/domain"
)

// ItemProgress estimates percent-complete for a single work item by linear
// interpolation between the actual start and the target end (actual end when
// recorded, scheduled end otherwise), evaluated at today. Results are in
// [0, 100].
//
// Missing or invalid actual start, a start in the future, or no usable target
// end all yield 0. A non-positive total span yields 100.
func ItemProgress(actualStart, actualEnd, scheduledEnd string, today time.Time) int {
	start, ok := ParseDate(actualStart)
	if !ok {
		return 0
	}
	today = Midnight(today)
	if today.Before(start) {
		return 0
	}

	target, ok := ParseDate(actualEnd)
	if !ok {
		target, ok = ParseDate(scheduledEnd)
		if !ok {
			return 0
		}
	}

	total := target.Sub(start)
	if total <= 0 {
		return 100
	}

	pct := float64(today.Sub(start)) / float64(total) * 100
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return int(math.Round(pct))
}

// ProjectProgress estimates overall timeline progress for a project from its
// operation records. The project start is the earliest valid actual start
// across all records; the completion anchor is the last record in the
// terminal stage (or the last record overall when none exist).
//
// The estimate is 100 only when the anchor record has a recorded actual end
// date; otherwise it interpolates against the anchor's scheduled end and is
// capped at 99 so a schedule alone can never signal "done".
func ProjectProgress(records []domain.OperationRecord, today time.Time) int {
	var projectStart time.Time
	haveStart := false
	for _, r := range records {
		s, ok := ParseDate(r.ActualStartDate)
		if !ok {
			continue
		}
		if !haveStart || s.Before(projectStart) {
			projectStart = s
			haveStart = true
		}
	}
	if !haveStart {
		return 0
	}

	target := terminalRecord(records)
	if target == nil {
		return 0
	}
	if _, ok := ParseDate(target.ActualEndDate); ok {
		return 100
	}
	end, ok := ParseDate(target.ScheduledEndDate)
	if !ok {
		return 0
	}

	total := end.Sub(projectStart)
	if total <= 0 {
		return 0
	}
	elapsed := Midnight(today).Sub(projectStart)
	if elapsed < 0 {
		return 0
	}

	pct := float64(elapsed) / float64(total) * 100
	if pct > 99 {
		pct = 99
	}
	if pct < 0 {
		pct = 0
	}
	return int(math.Round(pct))
}

// terminalRecord picks the completion anchor: the last record in the terminal
// stage in list order, else the last record overall.
func terminalRecord(records []domain.OperationRecord) *domain.OperationRecord {
	for i := len(records) - 1; i >= 0; i-- {
		if records[i].Category == domain.TerminalStage {
			return &records[i]
		}
	}
	if len(records) == 0 {
		return nil
	}
	return &records[len(records)-1]
}
