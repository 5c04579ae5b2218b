// Package pdfengine adapts pdfcpu to the ports.DocumentEngine boundary.
// All PDF parsing and serialization happens behind this package.
package pdfengine

import (
	"context"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/blanc86/PDF-Merger/internal/domain"
	"github.com/blanc86/PDF-Merger/internal/ports"
)

// Engine implements ports.DocumentEngine on top of pdfcpu.
type Engine struct {
	conf *model.Configuration
}

type Option func(*Engine)

// WithRelaxedValidation tolerates the structural quirks many PDF
// generators produce instead of failing strict spec checks.
func WithRelaxedValidation(relaxed bool) Option {
	return func(e *Engine) {
		if relaxed {
			e.conf.ValidationMode = model.ValidationRelaxed
		} else {
			e.conf.ValidationMode = model.ValidationStrict
		}
	}
}

func New(opts ...Option) *Engine {
	e := &Engine{conf: model.NewDefaultConfiguration()}
	e.conf.ValidationMode = model.ValidationRelaxed
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var _ ports.DocumentEngine = (*Engine)(nil)

func (e *Engine) Validate(path string) error {
	if err := api.ValidateFile(path, e.conf); err != nil {
		return &domain.OpError{
			Op:   "pdfengine.validate",
			Kind: domain.KindInvalidPDF,
			Path: path,
			Err:  err,
		}
	}
	return nil
}

func (e *Engine) PageCount(path string) (int, error) {
	n, err := api.PageCountFile(path)
	if err != nil {
		return 0, &domain.OpError{
			Op:   "pdfengine.pagecount",
			Kind: domain.KindInvalidPDF,
			Path: path,
			Err:  err,
		}
	}
	return n, nil
}

// Merge writes the concatenation of inputs to output. pdfcpu offers no
// cancellation hooks, so ctx is only checked up front.
func (e *Engine) Merge(ctx context.Context, inputs []string, output string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := api.MergeCreateFile(inputs, output, false, e.conf); err != nil {
		// A failed merge may leave a truncated file behind.
		_ = os.Remove(output)
		return &domain.OpError{
			Op:   "pdfengine.merge",
			Kind: domain.KindWriteFailure,
			Path: output,
			Err:  err,
		}
	}
	return nil
}
