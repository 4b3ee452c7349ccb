// Package dashboard derives the read-only views served to the UI. Every
// view is computed from a fresh document load; nothing is cached.
package dashboard

import (
	"time"

	"github.com/pulseboard-dev/pulseboard/internal/store"
	"github.com/pulseboard-dev/pulseboard/pkg/schema"
)

// Aggregator computes dashboard views over the current document.
type Aggregator struct {
	store *store.Store

	// now is swapped out by tests to pin "today".
	now func() time.Time
}

// NewAggregator returns an aggregator bound to the given store.
func NewAggregator(s *store.Store) *Aggregator {
	return &Aggregator{store: s, now: time.Now}
}

// Summary computes the headline counters. loginsToday counts distinct
// usernames among events whose recorded date equals today's local calendar
// date; the same user logging in twice on one day counts once. LastUpdated
// is the query instant, not a stored value.
func (a *Aggregator) Summary() (schema.Summary, error) {
	doc, err := a.store.Load()
	if err != nil {
		return schema.Summary{}, err
	}

	active := 0
	for _, u := range doc.Users {
		if u.Status == schema.StatusActive {
			active++
		}
	}

	today := a.now().Format("2006-01-02")
	seen := map[string]struct{}{}
	for _, ev := range doc.LoginEvents {
		if ev.Date == today {
			seen[ev.Username] = struct{}{}
		}
	}

	return schema.Summary{
		TotalUsers:  len(doc.Users),
		ActiveUsers: active,
		LoginsToday: len(seen),
		Anomalies:   len(doc.Anomalies),
		LastUpdated: a.now(),
	}, nil
}

// Usage returns the stored series for "daily" or "monthly". Unknown or
// absent timeframes yield an empty series, not an error.
func (a *Aggregator) Usage(timeframe string) ([]schema.UsagePoint, error) {
	doc, err := a.store.Load()
	if err != nil {
		return nil, err
	}
	if series, ok := doc.UsageMetrics[timeframe]; ok {
		return series, nil
	}
	return []schema.UsagePoint{}, nil
}

// Activity returns the user activity records verbatim.
func (a *Aggregator) Activity() ([]schema.ActivityRecord, error) {
	doc, err := a.store.Load()
	if err != nil {
		return nil, err
	}
	return doc.UserActivity, nil
}

// Anomalies returns the anomaly records verbatim.
func (a *Aggregator) Anomalies() ([]schema.Anomaly, error) {
	doc, err := a.store.Load()
	if err != nil {
		return nil, err
	}
	return doc.Anomalies, nil
}

// TopPages returns the top pages records verbatim.
func (a *Aggregator) TopPages() ([]schema.TopPage, error) {
	doc, err := a.store.Load()
	if err != nil {
		return nil, err
	}
	return doc.TopPages, nil
}

// SystemStatus returns the system status record verbatim.
func (a *Aggregator) SystemStatus() (schema.SystemStatus, error) {
	doc, err := a.store.Load()
	if err != nil {
		return nil, err
	}
	return doc.SystemStatus, nil
}
