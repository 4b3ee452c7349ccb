package sdk

import (
	"errors"

	"github.com/pulseboard-dev/pulseboard/pkg/schema"
)

// Client-side mirror of the server's error taxonomy, decoded from HTTP
// status codes so callers can match with errors.Is.
var (
	// ErrNotFound is returned when a requested user does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a username or email is already taken.
	ErrConflict = errors.New("conflict")
	// ErrValidation is returned when the server rejected the input.
	ErrValidation = errors.New("invalid input")
	// ErrInvalidCredentials is returned for any failed login.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// --- Functional Interfaces (Interface Segregation) ---

// AccountReader defines the read operations over user accounts.
type AccountReader interface {
	Users() ([]schema.User, error)
	User(id int) (schema.User, error)
}

// AccountWriter defines the mutating operations over user accounts.
type AccountWriter interface {
	CreateUser(u NewUser) (schema.User, error)
	UpdateUser(id int, patch UserPatch) (schema.User, error)
	DeleteUser(id int) error
}

// Session defines credential verification.
type Session interface {
	Login(username, password string) (schema.User, error)
}

// DashboardReader defines the aggregate and passthrough views.
type DashboardReader interface {
	Summary() (schema.Summary, error)
	Usage(timeframe string) ([]schema.UsagePoint, error)
	UserActivity() ([]schema.ActivityRecord, error)
	Anomalies() ([]schema.Anomaly, error)
	TopPages() ([]schema.TopPage, error)
	SystemStatus() (schema.SystemStatus, error)
}

// --- Composite Interface ---

// Pulseboard is the full client surface of the API.
type Pulseboard interface {
	AccountReader
	AccountWriter
	Session
	DashboardReader
}

// NewUser is the payload for creating an account. Status defaults to
// "active" server-side when empty.
type NewUser struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Status   string `json:"status,omitempty"`
}

// UserPatch is a partial update; nil fields are left unchanged.
type UserPatch struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
	Status   *string `json:"status,omitempty"`
}
