package fsscan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/blanc86/PDF-Merger/internal/domain"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestScan_SortsCaseInsensitively(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, tmp, "Beta.pdf", "x")
	writeFile(t, tmp, "alpha.pdf", "x")
	writeFile(t, tmp, "Gamma.PDF", "x")

	docs, err := NewScanner().Scan(tmp)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	want := []string{"alpha.pdf", "Beta.pdf", "Gamma.PDF"}
	if len(docs) != len(want) {
		t.Fatalf("expected %d docs, got %d", len(want), len(docs))
	}
	for i, w := range want {
		if got := filepath.Base(docs[i].Path); got != w {
			t.Errorf("docs[%d] = %s, want %s", i, got, w)
		}
	}
}

func TestScan_SkipsEmptyAndNonPDF(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, tmp, "keep.pdf", "x")
	writeFile(t, tmp, "empty.pdf", "")
	writeFile(t, tmp, "notes.txt", "x")
	if err := os.Mkdir(filepath.Join(tmp, "sub.pdf"), 0o755); err != nil {
		t.Fatal(err)
	}

	docs, err := NewScanner().Scan(tmp)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("expected 1 doc, got %d", len(docs))
	}
	if filepath.Base(docs[0].Path) != "keep.pdf" {
		t.Fatalf("expected keep.pdf, got %s", docs[0].Path)
	}
	if docs[0].SizeBytes != 1 {
		t.Fatalf("expected size 1, got %d", docs[0].SizeBytes)
	}
}

func TestScan_MissingDir(t *testing.T) {
	tmp := t.TempDir()

	_, err := NewScanner().Scan(filepath.Join(tmp, "nope"))
	if err == nil {
		t.Fatal("expected error for missing dir")
	}
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got %v", err)
	}
}

func TestScan_EmptyDirGivesNoDocs(t *testing.T) {
	docs, err := NewScanner().Scan(t.TempDir())
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(docs) != 0 {
		t.Fatalf("expected no docs, got %d", len(docs))
	}
}
