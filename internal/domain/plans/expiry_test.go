package plans

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNextExpiry_FreshMonthly(t *testing.T) {
	p := &Plan{Duration: DurationMonthly}
	got := NextExpiry(p, nil, date(2024, time.January, 15))
	assert.Equal(t, date(2024, time.February, 15), got)
}

func TestNextExpiry_RenewalExtendsFromExistingExpiry(t *testing.T) {
	p := &Plan{Duration: DurationMonthly}
	now := date(2024, time.January, 15)
	current := date(2024, time.January, 25)
	got := NextExpiry(p, &current, now)
	assert.Equal(t, date(2024, time.February, 25), got)
}

func TestNextExpiry_LapsedSubscriptionStartsFromNow(t *testing.T) {
	p := &Plan{Duration: DurationYearly}
	now := date(2024, time.June, 1)
	lapsed := date(2024, time.January, 1)
	got := NextExpiry(p, &lapsed, now)
	assert.Equal(t, date(2025, time.June, 1), got)
}

func TestNextExpiry_Lifetime(t *testing.T) {
	p := &Plan{Duration: DurationLifetime}
	got := NextExpiry(p, nil, date(2024, time.January, 15))
	assert.Equal(t, LifetimeExpiry, got)
}

func TestNextExpiry_TrialDefaultsToSevenDays(t *testing.T) {
	p := &Plan{Duration: DurationTrial}
	got := NextExpiry(p, nil, date(2024, time.March, 1))
	assert.Equal(t, date(2024, time.March, 8), got)

	p.TrialDays = 14
	got = NextExpiry(p, nil, date(2024, time.March, 1))
	assert.Equal(t, date(2024, time.March, 15), got)
}

func TestNextExpiry_MonotoneAcrossRenewals(t *testing.T) {
	p := &Plan{Duration: DurationMonthly}
	now := date(2024, time.January, 1)

	var expiry *time.Time
	prev := now
	for i := 0; i < 12; i++ {
		next := NextExpiry(p, expiry, now)
		assert.False(t, next.Before(prev), "expiry shrank on renewal %d", i)
		prev = next
		expiry = &next
	}
	assert.Equal(t, date(2025, time.January, 1), prev)
}

func TestIsRenewal(t *testing.T) {
	now := date(2024, time.May, 1)
	future := date(2024, time.May, 2)
	past := date(2024, time.April, 30)

	assert.False(t, IsRenewal(nil, now))
	assert.True(t, IsRenewal(&future, now))
	assert.False(t, IsRenewal(&past, now))
}
