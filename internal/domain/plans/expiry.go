package plans

import "time"

// LifetimeExpiry is the sentinel expiry for lifetime plans.
var LifetimeExpiry = time.Date(2099, time.December, 31, 0, 0, 0, 0, time.UTC)

// NextExpiry computes the expiry a plan purchase produces.
//
// The base date is the current expiry when it is still in the future
// (a renewal extends the running period), otherwise now (a lapsed or
// fresh subscription starts from the purchase). Expiries never shrink.
func NextExpiry(p *Plan, current *time.Time, now time.Time) time.Time {
	base := now
	if current != nil && current.After(now) {
		base = *current
	}

	switch p.Duration {
	case DurationMonthly:
		return base.AddDate(0, 1, 0)
	case DurationYearly:
		return base.AddDate(1, 0, 0)
	case DurationLifetime:
		return LifetimeExpiry
	case DurationTrial:
		days := p.TrialDays
		if days <= 0 {
			days = DefaultTrialDays
		}
		return base.AddDate(0, 0, days)
	}

	// Unknown duration classes get no extension beyond the base.
	return base
}

// IsRenewal reports whether a purchase extends a still-running subscription.
func IsRenewal(current *time.Time, now time.Time) bool {
	return current != nil && current.After(now)
}
