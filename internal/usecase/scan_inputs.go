package usecase

import (
	"log/slog"

	"github.com/blanc86/PDF-Merger/internal/domain"
	"github.com/blanc86/PDF-Merger/internal/ports"
)

// ScanInputs lists the candidate PDFs in a directory and resolves their
// page counts. Files that do not parse are reported as invalid instead
// of failing the whole listing.
type ScanInputs struct {
	scanner ports.SourceScanner
	engine  ports.DocumentEngine
	log     *slog.Logger
}

type ScanOption func(*ScanInputs)

func WithScanLogger(l *slog.Logger) ScanOption {
	return func(uc *ScanInputs) {
		if l != nil {
			uc.log = l
		}
	}
}

func NewScanInputs(scanner ports.SourceScanner, engine ports.DocumentEngine, opts ...ScanOption) *ScanInputs {
	uc := &ScanInputs{
		scanner: scanner,
		engine:  engine,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

func (uc *ScanInputs) Execute(dir string) ([]domain.SourceDocument, error) {
	docs, err := uc.scanner.Scan(dir)
	if err != nil {
		return nil, err
	}

	for i := range docs {
		pages, err := uc.engine.PageCount(docs[i].Path)
		if err != nil {
			uc.log.Warn("scan.invalid", "path", docs[i].Path, "err", err)
			docs[i].Invalid = true
			continue
		}
		docs[i].Pages = pages
	}

	uc.log.Debug("scan.done", "dir", dir, "found", len(docs))
	return docs, nil
}
