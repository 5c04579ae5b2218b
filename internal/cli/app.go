package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/blanc86/PDF-Merger/internal/domain"
	"github.com/blanc86/PDF-Merger/internal/infra/config"
	"github.com/blanc86/PDF-Merger/internal/infra/fsscan"
	"github.com/blanc86/PDF-Merger/internal/infra/pdfengine"
	"github.com/blanc86/PDF-Merger/internal/infra/reportstore"
	"github.com/blanc86/PDF-Merger/internal/ports"
)

// appCtx wires the adapters for one CLI invocation.
type appCtx struct {
	root string
	cfg  domain.Config

	engine  ports.DocumentEngine
	scanner ports.SourceScanner
	store   ports.ReportStore
}

func loadApp(rootFlag string, strict, forceRelaxed bool) (*appCtx, error) {
	root, err := resolveRoot(rootFlag)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(root)
	if err != nil {
		return nil, err
	}

	relaxed := (cfg.Validation.Relaxed || forceRelaxed) && !strict
	engine := pdfengine.New(pdfengine.WithRelaxedValidation(relaxed))

	return &appCtx{
		root:    root,
		cfg:     cfg,
		engine:  engine,
		scanner: fsscan.NewScanner(),
		store:   reportstore.NewJSONStore(root, cfg, reportstore.WithIndex(cfg.Reports.Index)),
	}, nil
}

func resolveRoot(rootFlag string) (string, error) {
	r := strings.TrimSpace(rootFlag)
	if r != "" {
		abs, err := filepath.Abs(r)
		if err != nil {
			return "", fmt.Errorf("invalid root path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return wd, nil
}

// inputDir resolves the scan directory: flag > config, relative to root.
func (a *appCtx) inputDir(flag string) string {
	dir := strings.TrimSpace(flag)
	if dir == "" {
		dir = a.cfg.Paths.InputDir
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(a.root, dir)
	}
	return dir
}

// defaultOutput is a timestamped file under the configured output directory.
func (a *appCtx) defaultOutput(now time.Time) string {
	name := fmt.Sprintf("merged_%s.pdf", now.Format("20060102_150405"))
	dir := a.cfg.Paths.OutputDir
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(a.root, dir)
	}
	return filepath.Join(dir, name)
}
