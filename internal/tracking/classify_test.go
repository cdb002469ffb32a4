package tracking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_NilVarianceIsUnknown(t *testing.T) {
	assert.Equal(t, TierUnknown, Classify(nil, SchemeThreeTier))
	assert.Equal(t, TierUnknown, Classify(nil, SchemeFourTier))
}

func TestClassify_ThreeTierBoundaries(t *testing.T) {
	tests := []struct {
		variance int
		want     Tier
	}{
		{10, TierNormal},  // early
		{0, TierNormal},   // on time
		{-1, TierNormal},  // 1 day late
		{-7, TierNormal},  // just under the warning threshold
		{-8, TierWarning}, // exactly at the threshold
		{-15, TierWarning},
		{-30, TierWarning}, // same tier as 8
		{-31, TierSevere},
		{-90, TierSevere},
	}
	for _, tc := range tests {
		v := tc.variance
		assert.Equal(t, tc.want, Classify(&v, SchemeThreeTier), "variance %d", tc.variance)
	}
}

func TestClassify_FourTierBoundaries(t *testing.T) {
	tests := []struct {
		variance int
		want     Tier
	}{
		{10, TierNormal}, // ahead is normal, not a warning
		{0, TierNormal},
		{-1, TierWarning}, // any lateness at all warns
		{-7, TierWarning},
		{-8, TierDelayed},
		{-30, TierDelayed},
		{-31, TierSevere},
	}
	for _, tc := range tests {
		v := tc.variance
		assert.Equal(t, tc.want, Classify(&v, SchemeFourTier), "variance %d", tc.variance)
	}
}

func TestDelay_OnlyLatenessCounts(t *testing.T) {
	assert.Equal(t, 0, Delay(5))
	assert.Equal(t, 0, Delay(0))
	assert.Equal(t, 5, Delay(-5))
}
