// Package schema defines universal data structures shared by the Pulseboard
// server and its client SDK. Field names are part of the wire format consumed
// by the dashboard UI and must not change.
package schema

import "time"

// User status values.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// User represents a registered account. Password is stored as-is in the
// document and must be stripped from every API response via Public.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Status   string `json:"status"`
}

// Public returns a copy of the user with the password removed.
func (u User) Public() User {
	u.Password = ""
	return u
}

// LoginEvent records one successful authentication. Date is the calendar day
// of Timestamp, stored redundantly so daily aggregation is a string compare.
type LoginEvent struct {
	Username  string    `json:"username"`
	Timestamp time.Time `json:"timestamp"`
	Date      string    `json:"date"`
}

// UsagePoint is one entry of a usage series. Daily series label points with
// Date, monthly series with Month; the unused label is omitted.
type UsagePoint struct {
	Date     string  `json:"date,omitempty"`
	Month    string  `json:"month,omitempty"`
	Users    int     `json:"users"`
	Sessions int     `json:"sessions"`
	Duration float64 `json:"duration"`
}

// ActivityRecord, Anomaly, TopPage and SystemStatus are surfaced verbatim to
// the dashboard; the server never interprets their fields.
type (
	ActivityRecord = map[string]any
	Anomaly        = map[string]any
	TopPage        = map[string]any
	SystemStatus   = map[string]any
)

// Summary holds the headline counters computed for the dashboard.
type Summary struct {
	TotalUsers  int       `json:"totalUsers"`
	ActiveUsers int       `json:"activeUsers"`
	LoginsToday int       `json:"loginsToday"`
	Anomalies   int       `json:"anomalies"`
	LastUpdated time.Time `json:"lastUpdated"`
}
