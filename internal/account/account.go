// Package account implements CRUD over the users collection with the
// uniqueness invariants the rest of the system relies on.
package account

import (
	"fmt"
	"strings"

	"github.com/pulseboard-dev/pulseboard/internal/store"
	"github.com/pulseboard-dev/pulseboard/pkg/schema"
)

// Manager performs user CRUD against the shared document store. Every
// mutation runs as one load-mutate-save transaction.
type Manager struct {
	store *store.Store
}

// NewManager returns a manager bound to the given store.
func NewManager(s *store.Store) *Manager {
	return &Manager{store: s}
}

// Patch describes a partial user update. Nil fields leave the existing
// value unchanged.
type Patch struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Status   *string `json:"status"`
}

// List returns all users in insertion order, passwords stripped.
func (m *Manager) List() ([]schema.User, error) {
	doc, err := m.store.Load()
	if err != nil {
		return nil, err
	}
	users := make([]schema.User, 0, len(doc.Users))
	for _, u := range doc.Users {
		users = append(users, u.Public())
	}
	return users, nil
}

// Get returns the user with the given id, password stripped.
func (m *Manager) Get(id int) (schema.User, error) {
	doc, err := m.store.Load()
	if err != nil {
		return schema.User{}, err
	}
	for _, u := range doc.Users {
		if u.ID == id {
			return u.Public(), nil
		}
	}
	return schema.User{}, fmt.Errorf("%w: id %d", store.ErrNotFound, id)
}

// Create validates the input, assigns the next id and persists the new user.
// Username and email must be unique across all users; matching is exact and
// case-sensitive.
func (m *Manager) Create(username, email, password, status string) (schema.User, error) {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(email) == "" || password == "" {
		return schema.User{}, fmt.Errorf("%w: username, email and password are required", store.ErrValidation)
	}
	if status == "" {
		status = schema.StatusActive
	}

	var created schema.User
	err := m.store.Update(func(doc *store.Document) error {
		for _, u := range doc.Users {
			if u.Username == username {
				return fmt.Errorf("username %w", store.ErrConflict)
			}
			if u.Email == email {
				return fmt.Errorf("email %w", store.ErrConflict)
			}
		}
		created = schema.User{
			ID:       doc.NextUserID(),
			Username: username,
			Email:    email,
			Password: password,
			Status:   status,
		}
		doc.Users = append(doc.Users, created)
		return nil
	})
	if err != nil {
		return schema.User{}, err
	}
	return created.Public(), nil
}

// Update applies a partial update to the user with the given id. Changed
// usernames and emails are re-checked for uniqueness against all other users.
func (m *Manager) Update(id int, patch Patch) (schema.User, error) {
	var updated schema.User
	err := m.store.Update(func(doc *store.Document) error {
		idx := -1
		for i, u := range doc.Users {
			if u.ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return fmt.Errorf("%w: id %d", store.ErrNotFound, id)
		}

		// Uniqueness is re-checked against all other users only once the
		// target is known to exist.
		for i, u := range doc.Users {
			if i == idx {
				continue
			}
			if patch.Username != nil && u.Username == *patch.Username {
				return fmt.Errorf("username %w", store.ErrConflict)
			}
			if patch.Email != nil && u.Email == *patch.Email {
				return fmt.Errorf("email %w", store.ErrConflict)
			}
		}

		u := &doc.Users[idx]
		if patch.Username != nil {
			if strings.TrimSpace(*patch.Username) == "" {
				return fmt.Errorf("%w: username must not be empty", store.ErrValidation)
			}
			u.Username = *patch.Username
		}
		if patch.Email != nil {
			if strings.TrimSpace(*patch.Email) == "" {
				return fmt.Errorf("%w: email must not be empty", store.ErrValidation)
			}
			u.Email = *patch.Email
		}
		if patch.Password != nil {
			if *patch.Password == "" {
				return fmt.Errorf("%w: password must not be empty", store.ErrValidation)
			}
			u.Password = *patch.Password
		}
		if patch.Status != nil {
			u.Status = *patch.Status
		}
		updated = *u
		return nil
	})
	if err != nil {
		return schema.User{}, err
	}
	return updated.Public(), nil
}

// Delete removes the user with the given id. Deleting an absent id is a
// no-op success; the operation is idempotent.
func (m *Manager) Delete(id int) error {
	return m.store.Update(func(doc *store.Document) error {
		kept := doc.Users[:0]
		for _, u := range doc.Users {
			if u.ID != id {
				kept = append(kept, u)
			}
		}
		doc.Users = kept
		return nil
	})
}
