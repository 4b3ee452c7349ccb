package dashboard

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/pulseboard-dev/pulseboard/internal/store"
	"github.com/pulseboard-dev/pulseboard/pkg/schema"
)

func newTestAggregator(t *testing.T) (*Aggregator, *store.Store) {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "db.json"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	return NewAggregator(s), s
}

func TestSummary(t *testing.T) {
	a, s := newTestAggregator(t)
	a.now = func() time.Time { return time.Date(2026, 8, 28, 12, 0, 0, 0, time.Local) }

	err := s.Update(func(doc *store.Document) error {
		doc.Users = []schema.User{
			{ID: 1, Username: "alice", Status: schema.StatusActive},
			{ID: 2, Username: "bob", Status: schema.StatusInactive},
			{ID: 3, Username: "carol", Status: schema.StatusActive},
		}
		doc.LoginEvents = []schema.LoginEvent{
			// alice twice today counts once; bob logged in yesterday.
			{Username: "alice", Date: "2026-08-28"},
			{Username: "alice", Date: "2026-08-28"},
			{Username: "carol", Date: "2026-08-28"},
			{Username: "bob", Date: "2026-08-27"},
		}
		doc.Anomalies = []schema.Anomaly{{"id": 1}, {"id": 2}}
		return nil
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	summary, err := a.Summary()
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}
	if summary.TotalUsers != 3 {
		t.Errorf("Expected 3 total users, got %d", summary.TotalUsers)
	}
	if summary.ActiveUsers != 2 {
		t.Errorf("Expected 2 active users, got %d", summary.ActiveUsers)
	}
	if summary.LoginsToday != 2 {
		t.Errorf("Expected 2 distinct logins today, got %d", summary.LoginsToday)
	}
	if summary.Anomalies != 2 {
		t.Errorf("Expected 2 anomalies, got %d", summary.Anomalies)
	}
	if !summary.LastUpdated.Equal(a.now()) {
		t.Errorf("LastUpdated should be the query instant, got %v", summary.LastUpdated)
	}
}

func TestSummaryEmptyStore(t *testing.T) {
	a, _ := newTestAggregator(t)

	summary, err := a.Summary()
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}
	if summary.TotalUsers != 0 || summary.ActiveUsers != 0 || summary.LoginsToday != 0 || summary.Anomalies != 0 {
		t.Errorf("Expected zeroed summary, got %+v", summary)
	}
}

func TestUsageTimeframes(t *testing.T) {
	a, s := newTestAggregator(t)

	err := s.Update(func(doc *store.Document) error {
		doc.UsageMetrics = map[string][]schema.UsagePoint{
			"daily":   {{Date: "2026-08-28", Users: 10, Sessions: 20, Duration: 3.5}},
			"monthly": {{Month: "Aug", Users: 200, Sessions: 900, Duration: 4.1}},
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	daily, err := a.Usage("daily")
	if err != nil || len(daily) != 1 || daily[0].Users != 10 {
		t.Errorf("Unexpected daily series: %+v (%v)", daily, err)
	}
	monthly, err := a.Usage("monthly")
	if err != nil || len(monthly) != 1 || monthly[0].Month != "Aug" {
		t.Errorf("Unexpected monthly series: %+v (%v)", monthly, err)
	}

	weekly, err := a.Usage("weekly")
	if err != nil {
		t.Fatalf("Usage failed: %v", err)
	}
	if weekly == nil || len(weekly) != 0 {
		t.Errorf("Unknown timeframe must yield an empty series, got %+v", weekly)
	}
}

func TestPassthroughDefaults(t *testing.T) {
	a, _ := newTestAggregator(t)

	records, err := a.Activity()
	if err != nil || records == nil || len(records) != 0 {
		t.Errorf("Expected empty activity, got %+v (%v)", records, err)
	}
	anomalies, err := a.Anomalies()
	if err != nil || anomalies == nil || len(anomalies) != 0 {
		t.Errorf("Expected empty anomalies, got %+v (%v)", anomalies, err)
	}
	pages, err := a.TopPages()
	if err != nil || pages == nil || len(pages) != 0 {
		t.Errorf("Expected empty top pages, got %+v (%v)", pages, err)
	}
	status, err := a.SystemStatus()
	if err != nil || status == nil || len(status) != 0 {
		t.Errorf("Expected empty status object, got %+v (%v)", status, err)
	}
}

func TestPassthroughVerbatim(t *testing.T) {
	a, s := newTestAggregator(t)

	err := s.Update(func(doc *store.Document) error {
		doc.UserActivity = []schema.ActivityRecord{{"id": float64(1), "username": "alice", "actions": float64(42)}}
		doc.SystemStatus = schema.SystemStatus{"uptime": "99.98%", "responseTime": float64(120)}
		return nil
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	records, _ := a.Activity()
	if len(records) != 1 || records[0]["username"] != "alice" || records[0]["actions"] != float64(42) {
		t.Errorf("Activity not surfaced verbatim: %+v", records)
	}
	status, _ := a.SystemStatus()
	if status["uptime"] != "99.98%" {
		t.Errorf("Status not surfaced verbatim: %+v", status)
	}
}
