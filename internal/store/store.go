package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// Store handles the disk I/O for the document. A single mutex serializes
// every load-mutate-save cycle so concurrent writers cannot lose updates;
// readers go straight to the last durably written file, which is always
// complete because writes are temp-file plus rename.
type Store struct {
	path string
	mu   sync.Mutex
}

// Open initializes a store backed by the given file path. The parent
// directory is created if needed; the file itself is created lazily on
// first Load.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("%w: create data dir: %v", ErrStorage, err)
		}
	}
	return &Store{path: path}, nil
}

// Path returns the location of the backing file.
func (s *Store) Path() string {
	return s.path
}

// Load reads the document from disk. If no document exists yet, a default
// one with empty collections is persisted and returned. Malformed JSON on
// disk is surfaced as a fatal read error, never replaced with empty data.
func (s *Store) Load() (*Document, error) {
	doc, err := s.read()
	if errors.Is(err, fs.ErrNotExist) {
		return s.create()
	}
	return doc, err
}

// Save serializes and durably writes the entire document, replacing prior
// contents. Callers that mutate the document should prefer Update, which
// holds the write lock across the whole read-modify-write cycle.
func (s *Store) Save(doc *Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(doc)
}

// Update runs fn against a freshly loaded document and persists the result,
// all under the store's write lock. If fn returns an error the document is
// left untouched on disk.
func (s *Store) Update(fn func(doc *Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if errors.Is(err, fs.ErrNotExist) {
		doc = NewDocument()
	} else if err != nil {
		return err
	}

	if err := fn(doc); err != nil {
		return err
	}
	return s.write(doc)
}

// ClearLoginEvents empties the login event log. Debug-only; nothing in the
// normal request path ever removes events.
func (s *Store) ClearLoginEvents() error {
	return s.Update(func(doc *Document) error {
		doc.LoginEvents = doc.LoginEvents[:0]
		return nil
	})
}

// ImportDashboard merges the externally produced read-only collections
// (usage metrics, activity, anomalies, top pages, system status) from
// another document file into the live document. Users and login events are
// never touched by an import.
func (s *Store) ImportDashboard(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: read import file: %v", ErrStorage, err)
	}
	var src Document
	if err := json.Unmarshal(content, &src); err != nil {
		return fmt.Errorf("%w: parse import file %s: %v", ErrStorage, path, err)
	}

	return s.Update(func(doc *Document) error {
		if len(src.UsageMetrics) > 0 {
			doc.UsageMetrics = src.UsageMetrics
		}
		if len(src.UserActivity) > 0 {
			doc.UserActivity = src.UserActivity
		}
		if len(src.Anomalies) > 0 {
			doc.Anomalies = src.Anomalies
		}
		if len(src.TopPages) > 0 {
			doc.TopPages = src.TopPages
		}
		if len(src.SystemStatus) > 0 {
			doc.SystemStatus = src.SystemStatus
		}
		return nil
	})
}

// create persists and returns the default document. Taken on first access
// only; the lock guards against two requests both seeding the file.
func (s *Store) create() (*Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Another request may have seeded the file while we waited on the lock.
	doc, err := s.read()
	if err == nil {
		return doc, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	doc = NewDocument()
	if err := s.write(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// read loads and decodes the backing file. A missing file is reported as
// fs.ErrNotExist so callers can seed it; any other failure, including
// corrupt JSON, wraps ErrStorage.
func (s *Store) read() (*Document, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: read %s: %v", ErrStorage, s.path, err)
	}

	var doc Document
	if err := json.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrStorage, s.path, err)
	}
	doc.normalize()
	return &doc, nil
}

// write serializes the document and swaps it into place atomically. If the
// process dies mid-write, readers see either the old file or the new one,
// never a partial document.
func (s *Store) write(doc *Document) error {
	doc.normalize()

	bytes, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode document: %v", ErrStorage, err)
	}

	tempPath := s.path + ".tmp"
	if err := os.WriteFile(tempPath, bytes, 0644); err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrStorage, tempPath, err)
	}
	if err := os.Rename(tempPath, s.path); err != nil {
		return fmt.Errorf("%w: replace %s: %v", ErrStorage, s.path, err)
	}
	return nil
}
