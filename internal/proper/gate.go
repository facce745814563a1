package proper

import "time"

// Gate decides whether a given invocation should run the pipeline at all.
// The search normally fires once daily in the hour after TargetHour; an
// invocation at least a full day after the last completed run forces a
// catch-up regardless of the time of day.
type Gate struct {
	TargetHour int
}

// ShouldRun reports whether the pipeline should execute now. A zero
// lastRun (no marker yet) always runs.
func (g Gate) ShouldRun(now, lastRun time.Time) bool {
	hourDiff := now.Hour() - g.TargetHour
	if hourDiff >= 0 && hourDiff < 1 {
		return true
	}
	if lastRun.IsZero() {
		return true
	}
	return daysBetween(lastRun, now) >= 1
}

// daysBetween counts calendar days from a to b, ignoring time of day.
func daysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	start := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	end := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start) / (24 * time.Hour))
}
