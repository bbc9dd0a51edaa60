// Package reportstore persists batch reports as JSON artifacts.
package reportstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/okaneco/posterust/internal/domain"
	"github.com/okaneco/posterust/internal/ports"
)

type JSONStore struct {
	path string
	now  func() time.Time
}

type Option func(*JSONStore)

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *JSONStore) { s.now = now }
}

// NewJSONStore writes reports to the given path; an empty path derives a
// timestamped filename in the working directory.
func NewJSONStore(path string, opts ...Option) *JSONStore {
	s := &JSONStore{
		path: path,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.ReportStore = (*JSONStore)(nil)

func (s *JSONStore) SaveReport(report domain.BatchReport) (string, error) {
	path := s.path
	if path == "" {
		ts := report.StartedAt
		if ts.IsZero() {
			ts = s.now()
		}
		path = ts.UTC().Format("20060102T150405Z") + "_posterust.json"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", &domain.OpError{
				Op:   "reportstore.mkdir",
				Kind: domain.KindEncode,
				Path: dir,
				Err:  err,
			}
		}
	}

	b, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", &domain.OpError{
			Op:   "reportstore.marshal",
			Kind: domain.KindEncode,
			Path: path,
			Err:  err,
		}
	}

	// Atomic-ish write: tmp then rename.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return "", &domain.OpError{
			Op:   "reportstore.write",
			Kind: domain.KindEncode,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", &domain.OpError{
			Op:   "reportstore.rename",
			Kind: domain.KindEncode,
			Path: path,
			Err:  err,
		}
	}
	return path, nil
}
