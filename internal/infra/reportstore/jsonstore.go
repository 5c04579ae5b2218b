// Package reportstore persists merge reports as JSON artifacts.
package reportstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/blanc86/PDF-Merger/internal/domain"
	"github.com/blanc86/PDF-Merger/internal/ports"
)

const defaultReportsDir = "reports"

type JSONStore struct {
	rootDir        string
	reportsDirName string
	writeIndex     bool
	now            func() time.Time
}

type Option func(*JSONStore)

// WithIndex enables a simple JSONL index: reports/index.jsonl
func WithIndex(enabled bool) Option {
	return func(s *JSONStore) { s.writeIndex = enabled }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *JSONStore) { s.now = now }
}

func NewJSONStore(root string, cfg domain.Config, opts ...Option) *JSONStore {
	reportsDir := cfg.Paths.ReportsDir
	if strings.TrimSpace(reportsDir) == "" {
		reportsDir = defaultReportsDir
	}

	s := &JSONStore{
		rootDir:        root,
		reportsDirName: reportsDir,
		writeIndex:     cfg.Reports.Index,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.ReportStore = (*JSONStore)(nil)

func (s *JSONStore) dir() string {
	return filepath.Join(s.rootDir, s.reportsDirName)
}

func (s *JSONStore) SaveReport(report domain.MergeReport) (string, error) {
	dir := s.dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &domain.OpError{
			Op:   "reportstore.mkdir",
			Kind: domain.KindWriteFailure,
			Path: dir,
			Err:  err,
		}
	}

	ts := report.StartedAt
	if ts.IsZero() {
		ts = s.now()
	}
	ts = ts.UTC()

	slug := slugify(strings.TrimSuffix(filepath.Base(report.Output), filepath.Ext(report.Output)))
	if slug == "" {
		slug = "merge"
	}

	filename := fmt.Sprintf("%s_%s.json", ts.Format("20060102T150405Z"), slug)
	id := strings.TrimSuffix(filename, ".json")
	path := filepath.Join(dir, filename)

	b, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", &domain.OpError{
			Op:   "reportstore.marshal",
			Kind: domain.KindWriteFailure,
			Path: path,
			Err:  err,
		}
	}

	// Atomic-ish write: tmp then rename.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return "", &domain.OpError{
			Op:   "reportstore.write",
			Kind: domain.KindWriteFailure,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", &domain.OpError{
			Op:   "reportstore.rename",
			Kind: domain.KindWriteFailure,
			Path: path,
			Err:  err,
		}
	}

	if s.writeIndex {
		_ = s.appendIndex(dir, id, filename, report)
	}

	return id, nil
}

func (s *JSONStore) LoadReport(name string) (domain.MergeReport, error) {
	path := name
	if !strings.ContainsRune(name, os.PathSeparator) {
		if !strings.HasSuffix(name, ".json") {
			name += ".json"
		}
		path = filepath.Join(s.dir(), name)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return domain.MergeReport{}, &domain.OpError{
			Op:   "reportstore.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var report domain.MergeReport
	if err := json.Unmarshal(b, &report); err != nil {
		return domain.MergeReport{}, &domain.OpError{
			Op:   "reportstore.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}
	return report, nil
}

// LatestReport picks the newest artifact by filename; the timestamp
// prefix makes lexical order chronological.
func (s *JSONStore) LatestReport() (domain.MergeReport, error) {
	dir := s.dir()
	entries, err := os.ReadDir(dir)
	if err != nil {
		return domain.MergeReport{}, &domain.OpError{
			Op:   "reportstore.latest",
			Kind: domain.KindNotFound,
			Path: dir,
			Err:  err,
		}
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") || e.Name() == "index.jsonl" {
			continue
		}
		names = append(names, e.Name())
	}
	if len(names) == 0 {
		return domain.MergeReport{}, &domain.OpError{
			Op:   "reportstore.latest",
			Kind: domain.KindNotFound,
			Path: dir,
			Err:  domain.ErrNotFound,
		}
	}

	sort.Strings(names)
	return s.LoadReport(names[len(names)-1])
}

func (s *JSONStore) appendIndex(dir, id, filename string, report domain.MergeReport) error {
	type idx struct {
		ID         string    `json:"id"`
		File       string    `json:"file"`
		Output     string    `json:"output"`
		TotalPages int       `json:"total_pages"`
		StartedAt  time.Time `json:"started_at"`
	}
	line, err := json.Marshal(idx{
		ID:         id,
		File:       filename,
		Output:     report.Output,
		TotalPages: report.TotalPages,
		StartedAt:  report.StartedAt,
	})
	if err != nil {
		return err
	}

	indexPath := filepath.Join(dir, "index.jsonl")
	f, err := os.OpenFile(indexPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()

	_, _ = f.Write(append(line, '\n'))
	return nil
}

// slugify produces a safe filename component.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
			lastDash = false
		case r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}
