package analytics

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/timberridge/outdoor-living-backend/internal/leads"
	"github.com/timberridge/outdoor-living-backend/pkg/logging"
)

// unknownKey buckets leads whose grouped field is empty.
const unknownKey = "unknown"

// recentLeadCount is how many of the newest leads ride along in a summary.
const recentLeadCount = 10

// GroupCount is one {key, count} pair within a grouping,
// sorted by count descending, ties broken by key ascending.
type GroupCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// DailyCount is the number of leads created on one UTC calendar date.
type DailyCount struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int    `json:"count"`
}

// RecentLead is the trimmed lead view embedded in a summary.
type RecentLead struct {
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Source       string    `json:"source"`
	Location     string    `json:"location,omitempty"`
	ProjectType  string    `json:"projectType,omitempty"`
	CustomerType string    `json:"customerType,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Summary is the derived analytics view for one lookback window.
// Never persisted; recomputed on every query.
type Summary struct {
	Period         Period       `json:"period"`
	CurrentCount   int          `json:"currentCount"`
	PreviousCount  int          `json:"previousCount"`
	TrendPercent   int          `json:"trendPercent"`
	TotalAllTime   int          `json:"totalAllTime"`
	BySource       []GroupCount `json:"bySource"`
	ByCustomerType []GroupCount `json:"byCustomerType"`
	ByProjectType  []GroupCount `json:"byProjectType"`
	ByLocation     []GroupCount `json:"byLocation"`
	Daily          []DailyCount `json:"daily"`
	RecentLeads    []RecentLead `json:"recentLeads"`
}

// Aggregator computes summaries from the lead store.
type Aggregator struct {
	repo   leads.Repository
	logger *logging.Logger
	now    func() time.Time
}

// NewAggregator creates an aggregator over the given repository.
func NewAggregator(repo leads.Repository, logger *logging.Logger) *Aggregator {
	if logger == nil {
		logger = logging.Default()
	}
	return &Aggregator{
		repo:   repo,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// WithClock overrides the aggregator's notion of now. Test hook.
func (a *Aggregator) WithClock(now func() time.Time) *Aggregator {
	a.now = now
	return a
}

// Summarize computes the analytics view for the given period.
// Any storage failure aborts the whole computation, no partial summary.
func (a *Aggregator) Summarize(ctx context.Context, period Period) (*Summary, error) {
	allLeads, err := a.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics: list all: %w", err)
	}

	now := a.now()
	start := period.Start(now)

	periodLeads, err := a.repo.ListSince(ctx, start)
	if err != nil {
		return nil, fmt.Errorf("analytics: list since %s: %w", start.Format(time.RFC3339), err)
	}

	// Immediately preceding window of equal length.
	prevStart := start.Add(-now.Sub(start))
	previousCount := 0
	for _, l := range allLeads {
		if !l.CreatedAt.Before(prevStart) && l.CreatedAt.Before(start) {
			previousCount++
		}
	}
	currentCount := len(periodLeads)

	return &Summary{
		Period:         period,
		CurrentCount:   currentCount,
		PreviousCount:  previousCount,
		TrendPercent:   trendPercent(currentCount, previousCount),
		TotalAllTime:   len(allLeads),
		BySource:       groupBy(periodLeads, func(l *leads.Lead) string { return l.Source }),
		ByCustomerType: groupBy(periodLeads, func(l *leads.Lead) string { return l.CustomerType }),
		ByProjectType:  groupBy(periodLeads, func(l *leads.Lead) string { return l.ProjectType }),
		ByLocation:     groupBy(periodLeads, func(l *leads.Lead) string { return l.Location }),
		Daily:          dailySeries(periodLeads),
		RecentLeads:    recentLeads(allLeads, recentLeadCount),
	}, nil
}

// trendPercent is the rounded period-over-period change.
// A previous count of zero yields 100 when anything came in, else 0.
func trendPercent(current, previous int) int {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return int(math.Round(float64(current-previous) / float64(previous) * 100))
}

func groupBy(list []*leads.Lead, key func(*leads.Lead) string) []GroupCount {
	counts := map[string]int{}
	for _, l := range list {
		k := key(l)
		if k == "" {
			k = unknownKey
		}
		counts[k]++
	}

	out := make([]GroupCount, 0, len(counts))
	for k, c := range counts {
		out = append(out, GroupCount{Key: k, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Key < out[j].Key
	})
	return out
}

func dailySeries(list []*leads.Lead) []DailyCount {
	counts := map[string]int{}
	for _, l := range list {
		counts[l.CreatedAt.UTC().Format("2006-01-02")]++
	}

	out := make([]DailyCount, 0, len(counts))
	for date, c := range counts {
		out = append(out, DailyCount{Date: date, Count: c})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

func recentLeads(all []*leads.Lead, n int) []RecentLead {
	if len(all) > n {
		all = all[:n]
	}
	out := make([]RecentLead, 0, len(all))
	for _, l := range all {
		out = append(out, RecentLead{
			Name:         l.Name(),
			Email:        l.Email,
			Source:       l.Source,
			Location:     l.Location,
			ProjectType:  l.ProjectType,
			CustomerType: l.CustomerType,
			CreatedAt:    l.CreatedAt,
		})
	}
	return out
}
