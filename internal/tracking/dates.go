package tracking

import "time"

// DateLayout is the only accepted date literal format for record fields.
const DateLayout = "2006-01-02"

const dayMillis = 24 * 60 * 60 * 1000

// ParseDate parses a strict YYYY-MM-DD literal into a midnight-local time.
// Empty strings, malformed input, and impossible calendar dates (2023-02-30)
// all report ok=false; no date-consuming function in this package returns an
// error or panics on bad input.
func ParseDate(s string) (time.Time, bool) {
	if len(s) != len(DateLayout) {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Midnight truncates t to midnight local time, eliminating time-of-day and
// DST artifacts before day arithmetic.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Today returns the current date truncated to midnight local time.
func Today() time.Time {
	return Midnight(time.Now())
}

// Variance computes the signed day count scheduled − actual using ceiling
// division on the millisecond difference. Positive means ahead of schedule,
// negative means late, zero means on time. Either bound being empty or
// invalid yields nil.
func Variance(scheduled, actual string) *int {
	s, ok := ParseDate(scheduled)
	if !ok {
		return nil
	}
	a, ok := ParseDate(actual)
	if !ok {
		return nil
	}
	days := ceilDiv(s.Sub(a).Milliseconds(), dayMillis)
	return intPtr(int(days))
}

// Duration computes the day count from start to end inclusive of the start
// day: a same-day task has duration 1, never 0. Either bound being empty or
// invalid yields nil.
func Duration(start, end string) *int {
	s, ok := ParseDate(start)
	if !ok {
		return nil
	}
	e, ok := ParseDate(end)
	if !ok {
		return nil
	}
	days := ceilDiv(e.Sub(s).Milliseconds(), dayMillis) + 1
	return intPtr(int(days))
}

// ceilDiv divides a by b (b > 0) rounding toward positive infinity.
func ceilDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && a > 0 {
		q++
	}
	return q
}

func intPtr(v int) *int {
	return &v
}
