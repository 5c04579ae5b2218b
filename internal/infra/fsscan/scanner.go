// Package fsscan discovers candidate input PDFs on the filesystem.
package fsscan

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/blanc86/PDF-Merger/internal/domain"
	"github.com/blanc86/PDF-Merger/internal/ports"
)

// Scanner lists *.pdf files directly under a directory, sorted
// case-insensitively by filename. Zero-byte files are skipped.
type Scanner struct{}

func NewScanner() *Scanner {
	return &Scanner{}
}

var _ ports.SourceScanner = (*Scanner)(nil)

func (s *Scanner) Scan(dir string) ([]domain.SourceDocument, error) {
	if dir == "" {
		return nil, &domain.OpError{
			Op:   "fsscan.scan",
			Kind: domain.KindInvalidConfig,
			Err:  domain.ErrInvalidConfig,
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "fsscan.scan",
			Kind: domain.KindNotFound,
			Path: dir,
			Err:  err,
		}
	}

	var docs []domain.SourceDocument
	for _, e := range entries {
		if e.IsDir() || !hasPDFExt(e.Name()) {
			continue
		}

		info, err := e.Info()
		if err != nil {
			continue
		}
		if info.Size() == 0 {
			continue
		}

		docs = append(docs, domain.SourceDocument{
			Path:      filepath.Join(dir, e.Name()),
			SizeBytes: info.Size(),
		})
	}

	sort.Slice(docs, func(i, j int) bool {
		a := strings.ToLower(filepath.Base(docs[i].Path))
		b := strings.ToLower(filepath.Base(docs[j].Path))
		if a == b {
			return docs[i].Path < docs[j].Path
		}
		return a < b
	})

	return docs, nil
}

func hasPDFExt(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".pdf")
}
