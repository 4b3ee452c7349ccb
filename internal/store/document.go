package store

import "github.com/pulseboard-dev/pulseboard/pkg/schema"

// Document is the single aggregate structure persisted to disk. The JSON keys
// are the wire format the dashboard UI reads; "loginsToday" holds the full
// login event log, not just today's slice of it.
type Document struct {
	Users        []schema.User                  `json:"users"`
	LoginEvents  []schema.LoginEvent            `json:"loginsToday"`
	UsageMetrics map[string][]schema.UsagePoint `json:"usageMetrics"`
	UserActivity []schema.ActivityRecord        `json:"userActivity"`
	Anomalies    []schema.Anomaly               `json:"anomalies"`
	TopPages     []schema.TopPage               `json:"topPages"`
	SystemStatus schema.SystemStatus            `json:"systemStatus"`
}

// NewDocument returns a document with every collection present and empty.
func NewDocument() *Document {
	doc := &Document{}
	doc.normalize()
	return doc
}

// normalize replaces absent collections with empty ones so callers never see
// nil and the serialized form always carries every key.
func (d *Document) normalize() {
	if d.Users == nil {
		d.Users = []schema.User{}
	}
	if d.LoginEvents == nil {
		d.LoginEvents = []schema.LoginEvent{}
	}
	if d.UsageMetrics == nil {
		d.UsageMetrics = map[string][]schema.UsagePoint{}
	}
	if d.UserActivity == nil {
		d.UserActivity = []schema.ActivityRecord{}
	}
	if d.Anomalies == nil {
		d.Anomalies = []schema.Anomaly{}
	}
	if d.TopPages == nil {
		d.TopPages = []schema.TopPage{}
	}
	if d.SystemStatus == nil {
		d.SystemStatus = schema.SystemStatus{}
	}
}

// NextUserID returns one greater than the current maximum user id, or 1 for
// an empty collection.
func (d *Document) NextUserID() int {
	max := 0
	for _, u := range d.Users {
		if u.ID > max {
			max = u.ID
		}
	}
	return max + 1
}
