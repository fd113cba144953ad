package analytics

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/timberridge/outdoor-living-backend/internal/leads"
	"github.com/timberridge/outdoor-living-backend/pkg/logging"
)

// staticRepo serves a fixed lead set with controllable timestamps.
type staticRepo struct {
	leads []*leads.Lead
	err   error
}

func (r *staticRepo) sorted() []*leads.Lead {
	out := make([]*leads.Lead, len(r.leads))
	copy(out, r.leads)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (r *staticRepo) Create(context.Context, *leads.CreateLeadRequest) (*leads.Lead, error) {
	return nil, errors.New("static repo is read-only")
}

func (r *staticRepo) ListAll(context.Context) ([]*leads.Lead, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.sorted(), nil
}

func (r *staticRepo) ListSince(_ context.Context, since time.Time) ([]*leads.Lead, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []*leads.Lead
	for _, l := range r.sorted() {
		if !l.CreatedAt.Before(since) {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *staticRepo) ListMostRecent(_ context.Context, n int) ([]*leads.Lead, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := r.sorted()
	if len(out) > n {
		out = out[:n]
	}
	return out, nil
}

var testNow = time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

func leadAt(daysAgo int, source, projectType, location string) *leads.Lead {
	return &leads.Lead{
		ID:          "id",
		Email:       "x@example.com",
		FirstName:   "X",
		Source:      source,
		ProjectType: projectType,
		Location:    location,
		CreatedAt:   testNow.AddDate(0, 0, -daysAgo),
	}
}

func newTestAggregator(repo leads.Repository) *Aggregator {
	return NewAggregator(repo, logging.Default()).WithClock(func() time.Time { return testNow })
}

func TestSummarize_CountsAndTrend(t *testing.T) {
	repo := &staticRepo{leads: []*leads.Lead{
		// current 30d window: 3 leads
		leadAt(1, "contact_page", "patio", "Cedar Rapids"),
		leadAt(5, "contact_page", "pergola", ""),
		leadAt(20, "guide-landing-page", "", "Iowa City"),
		// previous 30d window: 2 leads
		leadAt(35, "contact_page", "patio", ""),
		leadAt(50, "contact_page", "", ""),
		// outside both windows
		leadAt(200, "referral", "deck", ""),
	}}

	s, err := newTestAggregator(repo).Summarize(context.Background(), Period30d)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}

	if s.CurrentCount != 3 {
		t.Errorf("CurrentCount = %d, want 3", s.CurrentCount)
	}
	if s.PreviousCount != 2 {
		t.Errorf("PreviousCount = %d, want 2", s.PreviousCount)
	}
	if s.TrendPercent != 50 {
		t.Errorf("TrendPercent = %d, want 50", s.TrendPercent)
	}
	if s.TotalAllTime != 6 {
		t.Errorf("TotalAllTime = %d, want 6", s.TotalAllTime)
	}
}

func TestTrendPercent(t *testing.T) {
	tests := []struct {
		current, previous, want int
	}{
		{5, 0, 100},
		{0, 0, 0},
		{15, 10, 50},
		{10, 10, 0},
		{5, 10, -50},
		{1, 3, -67}, // -66.67 rounds away from zero
		{2, 3, -33},
	}
	for _, tt := range tests {
		if got := trendPercent(tt.current, tt.previous); got != tt.want {
			t.Errorf("trendPercent(%d, %d) = %d, want %d", tt.current, tt.previous, got, tt.want)
		}
	}
}

func TestSummarize_GroupingUnknownBucketAndOrder(t *testing.T) {
	repo := &staticRepo{leads: []*leads.Lead{
		leadAt(1, "contact_page", "patio", ""),
		leadAt(2, "contact_page", "patio", ""),
		leadAt(3, "guide-landing-page", "", ""),
		leadAt(4, "guide-landing-page", "pergola", ""),
	}}

	s, err := newTestAggregator(repo).Summarize(context.Background(), Period30d)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}

	// Equal counts: tie broken by key ascending.
	wantSource := []GroupCount{{"contact_page", 2}, {"guide-landing-page", 2}}
	if len(s.BySource) != 2 || s.BySource[0] != wantSource[0] || s.BySource[1] != wantSource[1] {
		t.Errorf("BySource = %v, want %v", s.BySource, wantSource)
	}

	wantProject := []GroupCount{{"patio", 2}, {"pergola", 1}, {"unknown", 1}}
	if len(s.ByProjectType) != 3 {
		t.Fatalf("ByProjectType = %v", s.ByProjectType)
	}
	for i, want := range wantProject {
		if s.ByProjectType[i] != want {
			t.Errorf("ByProjectType[%d] = %v, want %v", i, s.ByProjectType[i], want)
		}
	}

	// Every lead had an empty location.
	if len(s.ByLocation) != 1 || s.ByLocation[0] != (GroupCount{"unknown", 4}) {
		t.Errorf("ByLocation = %v", s.ByLocation)
	}
}

func TestSummarize_GroupingCompleteness(t *testing.T) {
	repo := &staticRepo{leads: []*leads.Lead{
		leadAt(1, "a", "x", ""),
		leadAt(2, "b", "", "loc"),
		leadAt(3, "a", "y", ""),
		leadAt(4, "", "x", "loc"),
		leadAt(6, "c", "", ""),
	}}

	s, err := newTestAggregator(repo).Summarize(context.Background(), Period7d)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}

	for name, grouping := range map[string][]GroupCount{
		"bySource":       s.BySource,
		"byCustomerType": s.ByCustomerType,
		"byProjectType":  s.ByProjectType,
		"byLocation":     s.ByLocation,
	} {
		sum := 0
		for _, g := range grouping {
			sum += g.Count
		}
		if sum != s.CurrentCount {
			t.Errorf("%s counts sum to %d, want %d", name, sum, s.CurrentCount)
		}
	}
}

func TestSummarize_DailySeriesSortedAscending(t *testing.T) {
	repo := &staticRepo{leads: []*leads.Lead{
		leadAt(1, "a", "", ""),
		leadAt(1, "a", "", ""),
		leadAt(3, "a", "", ""),
		leadAt(6, "a", "", ""),
	}}

	s, err := newTestAggregator(repo).Summarize(context.Background(), Period7d)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}

	if len(s.Daily) != 3 {
		t.Fatalf("Daily = %v, want 3 dates", s.Daily)
	}
	for i := 1; i < len(s.Daily); i++ {
		if s.Daily[i-1].Date >= s.Daily[i].Date {
			t.Errorf("daily series not ascending: %v", s.Daily)
		}
	}
	if s.Daily[2] != (DailyCount{Date: testNow.AddDate(0, 0, -1).Format("2006-01-02"), Count: 2}) {
		t.Errorf("last daily bucket = %v", s.Daily[2])
	}
}

func TestSummarize_RecentLeadsCappedAtTen(t *testing.T) {
	var all []*leads.Lead
	for i := 0; i < 15; i++ {
		l := leadAt(i+1, "contact_page", "", "")
		l.FirstName = "Lead"
		l.LastName = "Number"
		all = append(all, l)
	}
	repo := &staticRepo{leads: all}

	s, err := newTestAggregator(repo).Summarize(context.Background(), Period90d)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}

	if len(s.RecentLeads) != 10 {
		t.Fatalf("RecentLeads = %d, want 10", len(s.RecentLeads))
	}
	if s.RecentLeads[0].Name != "Lead Number" {
		t.Errorf("Name = %q, want joined first+last", s.RecentLeads[0].Name)
	}
	if !s.RecentLeads[0].CreatedAt.After(s.RecentLeads[9].CreatedAt) {
		t.Error("recent leads not newest first")
	}
}

func TestSummarize_StorageFailurePropagates(t *testing.T) {
	repo := &staticRepo{err: errors.New("db down")}
	s, err := newTestAggregator(repo).Summarize(context.Background(), Period30d)
	if err == nil {
		t.Fatal("expected error")
	}
	if s != nil {
		t.Error("no partial summary may be returned")
	}
}

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		in   string
		want Period
	}{
		{"7d", Period7d},
		{"30d", Period30d},
		{"90d", Period90d},
		{"1y", Period1y},
		{"", DefaultPeriod},
		{"14d", DefaultPeriod},
		{"forever", DefaultPeriod},
	}
	for _, tt := range tests {
		if got := ParsePeriod(tt.in); got != tt.want {
			t.Errorf("ParsePeriod(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPeriodStart(t *testing.T) {
	if got := Period7d.Start(testNow); !got.Equal(testNow.AddDate(0, 0, -7)) {
		t.Errorf("7d start = %v", got)
	}
	if got := Period1y.Start(testNow); !got.Equal(testNow.AddDate(-1, 0, 0)) {
		t.Errorf("1y start = %v", got)
	}
}
