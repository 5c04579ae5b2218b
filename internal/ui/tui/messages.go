package tui

import "github.com/blanc86/PDF-Merger/internal/domain"

type scanDoneMsg struct {
	dir  string
	docs []domain.SourceDocument
	err  error
}

type mergeDoneMsg struct {
	report   domain.MergeReport
	reportID string
	err      error
}
