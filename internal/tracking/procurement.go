package tracking

import (
	"strconv"

	"github.com/linyuchen/gantry/internal/domain"
)

// RequestVariance is the signed day difference between the scheduled and
// actual request dates of a procurement record. Nil when either date is
// missing or invalid.
func RequestVariance(rec *domain.ProcurementRecord) *int {
	return Variance(rec.ScheduledRequestDate, rec.ActualRequestDate)
}

// SignOffVariance compares the controlled procurement duration against the
// actual request-to-sign-off duration (V2 records). Positive means the
// sign-off came in under the controlled allowance, negative means over.
// Nil unless the actual request date, sign-off date, and controlled duration
// are all present and the dates parse. A non-numeric controlled duration is
// treated as 0 days.
func SignOffVariance(rec *domain.ProcurementRecord) *int {
	if rec.ActualRequestDate == "" || rec.SignOffDate == "" || rec.ControlledDuration == "" {
		return nil
	}
	actual := Duration(rec.ActualRequestDate, rec.SignOffDate)
	if actual == nil {
		return nil
	}
	controlled, err := strconv.Atoi(rec.ControlledDuration)
	if err != nil {
		controlled = 0
	}
	return intPtr(controlled - *actual)
}

// ResubmissionVariance measures how quickly a returned request was
// resubmitted on a legacy (V1) record: return date minus resubmission date,
// so a resubmission N days after the return shows as −N. Nil when either
// date is missing or invalid.
func ResubmissionVariance(rec *domain.ProcurementRecord) *int {
	return Variance(rec.ReturnDate, rec.ResubmissionDate)
}
