package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/blanc86/PDF-Merger/internal/domain"
	"github.com/blanc86/PDF-Merger/internal/ports"
)

// MergeDocuments concatenates the pages of an ordered list of input
// PDFs into a single output file. The output is assembled at a
// temporary path and renamed into place, so a failed merge never leaves
// a partial file at the destination.
type MergeDocuments struct {
	engine ports.DocumentEngine
	store  ports.ReportStore // optional; nil disables report saving
	log    *slog.Logger
	now    func() time.Time
}

type MergeOption func(*MergeDocuments)

// WithReportStore enables persisting a MergeReport after each merge.
func WithReportStore(s ports.ReportStore) MergeOption {
	return func(uc *MergeDocuments) { uc.store = s }
}

func WithLogger(l *slog.Logger) MergeOption {
	return func(uc *MergeDocuments) {
		if l != nil {
			uc.log = l
		}
	}
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) MergeOption {
	return func(uc *MergeDocuments) { uc.now = now }
}

func NewMergeDocuments(engine ports.DocumentEngine, opts ...MergeOption) *MergeDocuments {
	uc := &MergeDocuments{
		engine: engine,
		log:    slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute runs one merge job. On success it returns the merge report
// and, when a store is configured, the id of the saved report artifact.
func (uc *MergeDocuments) Execute(ctx context.Context, job domain.MergeJob) (domain.MergeReport, string, error) {
	if err := job.Validate(); err != nil {
		return domain.MergeReport{}, "", err
	}

	startedAt := uc.now()
	uc.log.Info("merge.start", "inputs", len(job.Inputs), "output", job.Output)

	files, err := uc.checkInputs(ctx, job.Inputs)
	if err != nil {
		return domain.MergeReport{}, "", err
	}

	if err := uc.writeOutput(ctx, job); err != nil {
		return domain.MergeReport{}, "", err
	}

	report := domain.MergeReport{
		Output:     job.Output,
		Files:      files,
		TotalFiles: len(files),
		StartedAt:  startedAt,
		EndedAt:    uc.now(),
	}
	for _, f := range files {
		report.TotalPages += f.Pages
	}
	if info, err := os.Stat(job.Output); err == nil {
		report.OutputSizeBytes = info.Size()
	}

	uc.log.Info("merge.done",
		"output", job.Output,
		"total_files", report.TotalFiles,
		"total_pages", report.TotalPages,
		"output_size", report.OutputSizeBytes,
		"duration", report.Duration().String(),
	)

	var id string
	if uc.store != nil {
		id, err = uc.store.SaveReport(report)
		if err != nil {
			// The merged output is already in place; report the save
			// failure without discarding the merge result.
			return report, "", err
		}
	}

	return report, id, nil
}

// checkInputs stats and engine-validates every input, in order, before
// anything is written. The first missing or invalid file aborts.
func (uc *MergeDocuments) checkInputs(ctx context.Context, inputs []string) ([]domain.FileInfo, error) {
	files := make([]domain.FileInfo, 0, len(inputs))

	for i, path := range inputs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		info, err := os.Stat(path)
		if err != nil {
			return nil, &domain.OpError{
				Op:   "merge.stat",
				Kind: domain.KindNotFound,
				Path: path,
				Err:  err,
			}
		}

		if err := uc.engine.Validate(path); err != nil {
			return nil, err
		}

		pages, err := uc.engine.PageCount(path)
		if err != nil {
			return nil, err
		}

		uc.log.Debug("merge.input",
			"index", i+1,
			"of", len(inputs),
			"path", path,
			"pages", pages,
			"size", info.Size(),
		)

		files = append(files, domain.FileInfo{
			Path:      path,
			Pages:     pages,
			SizeBytes: info.Size(),
		})
	}

	return files, nil
}

// writeOutput merges into a temp path next to the destination and
// renames on success, keeping the rename on one filesystem.
func (uc *MergeDocuments) writeOutput(ctx context.Context, job domain.MergeJob) error {
	dir := filepath.Dir(job.Output)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &domain.OpError{
			Op:   "merge.mkdir",
			Kind: domain.KindWriteFailure,
			Path: dir,
			Err:  err,
		}
	}

	tmp := filepath.Join(dir, fmt.Sprintf(".%s.tmp-%d", filepath.Base(job.Output), uc.now().UnixNano()))

	if err := uc.engine.Merge(ctx, job.Inputs, tmp); err != nil {
		_ = os.Remove(tmp)
		return err
	}

	if err := os.Rename(tmp, job.Output); err != nil {
		_ = os.Remove(tmp)
		return &domain.OpError{
			Op:   "merge.rename",
			Kind: domain.KindWriteFailure,
			Path: job.Output,
			Err:  err,
		}
	}

	return nil
}
