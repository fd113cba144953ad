package analytics

import "time"

// Period selects the lookback window for a summary.
type Period string

const (
	Period7d  Period = "7d"
	Period30d Period = "30d"
	Period90d Period = "90d"
	Period1y  Period = "1y"

	// DefaultPeriod applies when the selector is absent or unrecognized.
	DefaultPeriod = Period30d
)

// ParsePeriod maps a query-string selector to a Period, falling back
// to the default for anything it does not recognize.
func ParsePeriod(s string) Period {
	switch Period(s) {
	case Period7d, Period30d, Period90d, Period1y:
		return Period(s)
	default:
		return DefaultPeriod
	}
}

// Start returns the window start for a period ending at now.
// Calendar days for 7d/30d/90d, a calendar year for 1y.
func (p Period) Start(now time.Time) time.Time {
	switch p {
	case Period7d:
		return now.AddDate(0, 0, -7)
	case Period90d:
		return now.AddDate(0, 0, -90)
	case Period1y:
		return now.AddDate(-1, 0, 0)
	default:
		return now.AddDate(0, 0, -30)
	}
}
