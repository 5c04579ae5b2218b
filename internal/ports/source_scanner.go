package ports

import "github.com/blanc86/PDF-Merger/internal/domain"

// SourceScanner discovers candidate input PDFs in a directory.
type SourceScanner interface {
	// Scan returns the PDFs directly under dir, sorted case-insensitively
	// by filename. Zero-byte files are skipped.
	Scan(dir string) ([]domain.SourceDocument, error)
}
