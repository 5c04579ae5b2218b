package fsproject

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/blanc86/PDF-Merger/internal/domain"
	"github.com/blanc86/PDF-Merger/internal/infra/config"
)

func TestInit_CreatesLayout(t *testing.T) {
	tmp := t.TempDir()

	if err := NewInitializer().Init(tmp, domain.DefaultConfig(), false); err != nil {
		t.Fatalf("Init: %v", err)
	}

	for _, d := range []string{"input", "output", "reports", filepath.Join(".pdfmerge", "logs")} {
		info, err := os.Stat(filepath.Join(tmp, d))
		if err != nil || !info.IsDir() {
			t.Errorf("expected directory %s, err=%v", d, err)
		}
	}

	b, err := os.ReadFile(filepath.Join(tmp, config.FileName))
	if err != nil {
		t.Fatalf("expected starter config: %v", err)
	}
	if !strings.Contains(string(b), "input_dir: input") {
		t.Fatalf("unexpected starter config:\n%s", b)
	}
}

func TestInit_DoesNotOverwriteConfig(t *testing.T) {
	tmp := t.TempDir()
	custom := "pdfmerge:\n  paths:\n    input_dir: docs\n"
	if err := os.WriteFile(filepath.Join(tmp, config.FileName), []byte(custom), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := NewInitializer().Init(tmp, domain.DefaultConfig(), false); err != nil {
		t.Fatalf("Init: %v", err)
	}

	b, _ := os.ReadFile(filepath.Join(tmp, config.FileName))
	if string(b) != custom {
		t.Fatal("expected existing config preserved")
	}
}

func TestInit_ForceOverwritesConfig(t *testing.T) {
	tmp := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmp, config.FileName), []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := NewInitializer().Init(tmp, domain.DefaultConfig(), true); err != nil {
		t.Fatalf("Init: %v", err)
	}

	b, _ := os.ReadFile(filepath.Join(tmp, config.FileName))
	if !strings.Contains(string(b), "input_dir: input") {
		t.Fatal("expected starter config written with force")
	}
}

func TestInit_ConfigLoadsBack(t *testing.T) {
	tmp := t.TempDir()
	if err := NewInitializer().Init(tmp, domain.DefaultConfig(), false); err != nil {
		t.Fatalf("Init: %v", err)
	}

	cfg, err := config.Load(tmp)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != domain.DefaultConfig() {
		t.Fatalf("starter config should round-trip to defaults, got %+v", cfg)
	}
}
