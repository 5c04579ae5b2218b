// Package fsproject prepares a project directory for pdfmerge: the
// input/output/report directories and a starter pdfmerge.yaml.
package fsproject

import (
	"os"
	"path/filepath"

	"github.com/blanc86/PDF-Merger/internal/domain"
	"github.com/blanc86/PDF-Merger/internal/infra/config"
)

const starterConfig = `# pdfmerge configuration
pdfmerge:
  paths:
    input_dir: input
    output_dir: output
    reports_dir: reports
  validation:
    relaxed: true
  reports:
    enabled: true
    index: false
`

type Initializer struct{}

func NewInitializer() *Initializer {
	return &Initializer{}
}

// Init creates the project layout under root. Existing files are left
// alone unless force is set.
func (i *Initializer) Init(root string, cfg domain.Config, force bool) error {
	root = filepath.Clean(root)

	dirs := []string{
		filepath.Join(root, cfg.Paths.InputDir),
		filepath.Join(root, cfg.Paths.OutputDir),
		filepath.Join(root, cfg.Paths.ReportsDir),
		filepath.Join(root, ".pdfmerge", "logs"),
	}

	for _, d := range dirs {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return &domain.OpError{
				Op:   "fsproject.mkdir",
				Kind: domain.KindWriteFailure,
				Path: d,
				Err:  err,
			}
		}
	}

	cfgPath := filepath.Join(root, config.FileName)
	if !force {
		if _, err := os.Stat(cfgPath); err == nil {
			return nil
		}
	}

	if err := os.WriteFile(cfgPath, []byte(starterConfig), 0o644); err != nil {
		return &domain.OpError{
			Op:   "fsproject.writeconfig",
			Kind: domain.KindWriteFailure,
			Path: cfgPath,
			Err:  err,
		}
	}
	return nil
}
