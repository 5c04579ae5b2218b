package tui

import (
	"log/slog"
	"time"

	"github.com/blanc86/PDF-Merger/internal/usecase"
)

type Deps struct {
	Merger  *usecase.MergeDocuments
	Scanner *usecase.ScanInputs

	// InputDir is scanned for candidate PDFs on startup.
	InputDir string

	// DefaultOutput names the destination for a merge started now.
	DefaultOutput func(now time.Time) string

	Logger *slog.Logger
	Debug  bool
}
