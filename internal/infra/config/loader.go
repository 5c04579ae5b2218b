// Package config loads pdfmerge.yaml and applies defaults.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/blanc86/PDF-Merger/internal/domain"
)

const FileName = "pdfmerge.yaml"

// Load reads pdfmerge.yaml from root and applies parsed values on top of
// defaults. A missing file is not an error: defaults apply.
func Load(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, FileName)
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	if y.PDFMerge.Paths.InputDir != "" {
		cfg.Paths.InputDir = y.PDFMerge.Paths.InputDir
	}
	if y.PDFMerge.Paths.OutputDir != "" {
		cfg.Paths.OutputDir = y.PDFMerge.Paths.OutputDir
	}
	if y.PDFMerge.Paths.ReportsDir != "" {
		cfg.Paths.ReportsDir = y.PDFMerge.Paths.ReportsDir
	}
	if y.PDFMerge.Validation.Relaxed != nil {
		cfg.Validation.Relaxed = *y.PDFMerge.Validation.Relaxed
	}
	if y.PDFMerge.Reports.Enabled != nil {
		cfg.Reports.Enabled = *y.PDFMerge.Reports.Enabled
	}
	if y.PDFMerge.Reports.Index != nil {
		cfg.Reports.Index = *y.PDFMerge.Reports.Index
	}

	return cfg, nil
}

type yamlConfig struct {
	PDFMerge struct {
		Paths struct {
			InputDir   string `yaml:"input_dir"`
			OutputDir  string `yaml:"output_dir"`
			ReportsDir string `yaml:"reports_dir"`
		} `yaml:"paths"`

		Validation struct {
			Relaxed *bool `yaml:"relaxed"`
		} `yaml:"validation"`

		Reports struct {
			Enabled *bool `yaml:"enabled"`
			Index   *bool `yaml:"index"`
		} `yaml:"reports"`
	} `yaml:"pdfmerge"`
}
