package usecase

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/blanc86/PDF-Merger/internal/domain"
)

// fakeEngine implements ports.DocumentEngine without touching real PDFs.
// Merge writes the input list, one path per line, so tests can assert
// on output order.
type fakeEngine struct {
	pages    map[string]int
	invalid  map[string]bool
	mergeErr error

	merged [][]string
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{
		pages:   map[string]int{},
		invalid: map[string]bool{},
	}
}

func (f *fakeEngine) Validate(path string) error {
	if f.invalid[path] {
		return &domain.OpError{
			Op:   "fake.validate",
			Kind: domain.KindInvalidPDF,
			Path: path,
			Err:  domain.ErrInvalidPDF,
		}
	}
	return nil
}

func (f *fakeEngine) PageCount(path string) (int, error) {
	if f.invalid[path] {
		return 0, &domain.OpError{
			Op:   "fake.pagecount",
			Kind: domain.KindInvalidPDF,
			Path: path,
			Err:  domain.ErrInvalidPDF,
		}
	}
	n, ok := f.pages[path]
	if !ok {
		return 0, &domain.OpError{
			Op:   "fake.pagecount",
			Kind: domain.KindInvalidPDF,
			Path: path,
			Err:  domain.ErrInvalidPDF,
		}
	}
	return n, nil
}

func (f *fakeEngine) Merge(_ context.Context, inputs []string, output string) error {
	if f.mergeErr != nil {
		return f.mergeErr
	}
	cp := make([]string, len(inputs))
	copy(cp, inputs)
	f.merged = append(f.merged, cp)
	return os.WriteFile(output, []byte(strings.Join(inputs, "\n")+"\n"), 0o644)
}

// fakeStore records saved reports.
type fakeStore struct {
	saved   []domain.MergeReport
	saveErr error
}

func (f *fakeStore) SaveReport(report domain.MergeReport) (string, error) {
	if f.saveErr != nil {
		return "", f.saveErr
	}
	f.saved = append(f.saved, report)
	return "report-1", nil
}

func (f *fakeStore) LoadReport(string) (domain.MergeReport, error) {
	if len(f.saved) == 0 {
		return domain.MergeReport{}, errors.New("no reports")
	}
	return f.saved[len(f.saved)-1], nil
}

func (f *fakeStore) LatestReport() (domain.MergeReport, error) {
	return f.LoadReport("")
}

// fakeScanner returns a canned listing.
type fakeScanner struct {
	docs []domain.SourceDocument
	err  error
}

func (f *fakeScanner) Scan(string) ([]domain.SourceDocument, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.docs, nil
}
