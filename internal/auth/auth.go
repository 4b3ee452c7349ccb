// Package auth verifies credentials and records login events.
package auth

import (
	"time"

	"github.com/pulseboard-dev/pulseboard/internal/store"
	"github.com/pulseboard-dev/pulseboard/pkg/schema"
)

// Authenticator checks credentials against the users collection and appends
// a login event on success. The check and the event append run in a single
// store transaction so a concurrent signup cannot wipe out the event.
type Authenticator struct {
	store *store.Store

	// now is swapped out by tests to pin the event date.
	now func() time.Time
}

// NewAuthenticator returns an authenticator bound to the given store.
func NewAuthenticator(s *store.Store) *Authenticator {
	return &Authenticator{store: s, now: time.Now}
}

// Authenticate finds an exact username+password match. Any failure is
// ErrInvalidCredentials; unknown users and wrong passwords are not
// distinguishable from the outside. On success the returned user has its
// password stripped and exactly one login event has been persisted.
func (a *Authenticator) Authenticate(username, password string) (schema.User, error) {
	var matched schema.User
	err := a.store.Update(func(doc *store.Document) error {
		for _, u := range doc.Users {
			if u.Username == username && u.Password == password {
				matched = u
				ts := a.now()
				doc.LoginEvents = append(doc.LoginEvents, schema.LoginEvent{
					Username:  u.Username,
					Timestamp: ts,
					Date:      ts.Format("2006-01-02"),
				})
				return nil
			}
		}
		return store.ErrInvalidCredentials
	})
	if err != nil {
		return schema.User{}, err
	}
	return matched.Public(), nil
}
