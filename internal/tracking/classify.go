package tracking

// Tier is the traffic-light status bucket assigned by thresholding the delay
// magnitude of a variance.
type Tier string

const (
	// TierUnknown means no variance could be computed (missing/invalid dates).
	// It is deliberately distinct from TierNormal.
	TierUnknown Tier = "unknown"
	TierNormal  Tier = "normal"
	TierWarning Tier = "warning"
	// TierDelayed exists only in the four-tier scheme, between warning and severe.
	TierDelayed Tier = "delayed"
	TierSevere  Tier = "severe"
)

// Scheme selects which of the two coexisting classification schemes applies.
// The three-tier scheme is used by most dashboards; the four-tier scheme by
// the legacy procurement dataset variant.
type Scheme string

const (
	SchemeThreeTier Scheme = "three-tier"
	SchemeFourTier  Scheme = "four-tier"
)

// Tier boundaries shared by both schemes, in days of delay.
const (
	WarningThresholdDays = 8
	SevereThresholdDays  = 30
)

// Delay is the magnitude of lateness: the absolute value of a negative
// variance, and 0 for an on-time or early variance.
func Delay(variance int) int {
	if variance < 0 {
		return -variance
	}
	return 0
}

// Classify maps a variance to a status tier under the given scheme.
// A nil variance maps to TierUnknown, never TierNormal.
//
// Three-tier: delay > 30 severe; 8..30 warning; below 8 normal.
// Four-tier:  delay > 30 severe; 8..30 delayed; 1..7 warning; 0 normal.
func Classify(variance *int, scheme Scheme) Tier {
	if variance == nil {
		return TierUnknown
	}
	delay := Delay(*variance)

	if scheme == SchemeFourTier {
		switch {
		case delay > SevereThresholdDays:
			return TierSevere
		case delay >= WarningThresholdDays:
			return TierDelayed
		case delay >= 1:
			return TierWarning
		default:
			return TierNormal
		}
	}

	switch {
	case delay > SevereThresholdDays:
		return TierSevere
	case delay >= WarningThresholdDays:
		return TierWarning
	default:
		return TierNormal
	}
}
