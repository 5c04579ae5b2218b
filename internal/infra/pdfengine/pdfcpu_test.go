package pdfengine

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/blanc86/PDF-Merger/internal/domain"
)

// writePDF writes a minimal but well-formed PDF with the given number of
// empty pages. Offsets in the xref table are computed from the actual
// byte positions, so the result passes validation.
func writePDF(t *testing.T, path string, pages int) {
	t.Helper()

	var b bytes.Buffer
	offsets := make([]int, 0, pages+2)
	add := func(s string) {
		offsets = append(offsets, b.Len())
		b.WriteString(s)
	}

	b.WriteString("%PDF-1.4\n")

	kids := make([]string, pages)
	for i := range kids {
		kids[i] = fmt.Sprintf("%d 0 R", 3+i)
	}

	add("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")
	add(fmt.Sprintf(
		"2 0 obj\n<< /Type /Pages /Kids [%s] /Count %d /MediaBox [0 0 612 792] /Resources << >> >>\nendobj\n",
		strings.Join(kids, " "), pages))
	for i := 0; i < pages; i++ {
		add(fmt.Sprintf("%d 0 obj\n<< /Type /Page /Parent 2 0 R >>\nendobj\n", 3+i))
	}

	xrefPos := b.Len()
	fmt.Fprintf(&b, "xref\n0 %d\n", pages+3)
	b.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&b, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&b, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", pages+3, xrefPos)

	if err := os.WriteFile(path, b.Bytes(), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestValidate_OK(t *testing.T) {
	tmp := t.TempDir()
	p := filepath.Join(tmp, "ok.pdf")
	writePDF(t, p, 1)

	e := New()
	if err := e.Validate(p); err != nil {
		t.Fatalf("expected valid PDF, got %v", err)
	}
}

func TestValidate_NotAPDF(t *testing.T) {
	tmp := t.TempDir()
	p := filepath.Join(tmp, "bogus.pdf")
	if err := os.WriteFile(p, []byte("plain text, not a pdf"), 0o644); err != nil {
		t.Fatal(err)
	}

	e := New()
	err := e.Validate(p)
	if err == nil {
		t.Fatal("expected error for non-PDF input")
	}
	if !domain.IsKind(err, domain.KindInvalidPDF) {
		t.Fatalf("expected KindInvalidPDF, got %v", err)
	}
	if domain.PathOf(err) != p {
		t.Fatalf("expected offending path %s, got %s", p, domain.PathOf(err))
	}
}

func TestPageCount(t *testing.T) {
	tmp := t.TempDir()
	p := filepath.Join(tmp, "three.pdf")
	writePDF(t, p, 3)

	e := New()
	n, err := e.PageCount(p)
	if err != nil {
		t.Fatalf("PageCount: %v", err)
	}
	if n != 3 {
		t.Fatalf("expected 3 pages, got %d", n)
	}
}

func TestMerge_PageCountsAdd(t *testing.T) {
	tmp := t.TempDir()
	a := filepath.Join(tmp, "a.pdf")
	b := filepath.Join(tmp, "b.pdf")
	out := filepath.Join(tmp, "merged.pdf")
	writePDF(t, a, 2)
	writePDF(t, b, 3)

	e := New()
	if err := e.Merge(context.Background(), []string{a, b}, out); err != nil {
		t.Fatalf("Merge: %v", err)
	}

	n, err := e.PageCount(out)
	if err != nil {
		t.Fatalf("PageCount(out): %v", err)
	}
	if n != 5 {
		t.Fatalf("expected 5 pages, got %d", n)
	}
}

func TestMerge_SingleInputIdentity(t *testing.T) {
	tmp := t.TempDir()
	a := filepath.Join(tmp, "a.pdf")
	out := filepath.Join(tmp, "copy.pdf")
	writePDF(t, a, 4)

	e := New()
	if err := e.Merge(context.Background(), []string{a}, out); err != nil {
		t.Fatalf("Merge: %v", err)
	}

	n, err := e.PageCount(out)
	if err != nil {
		t.Fatalf("PageCount(out): %v", err)
	}
	if n != 4 {
		t.Fatalf("expected 4 pages, got %d", n)
	}
}

func TestMerge_CancelledContext(t *testing.T) {
	tmp := t.TempDir()
	a := filepath.Join(tmp, "a.pdf")
	out := filepath.Join(tmp, "merged.pdf")
	writePDF(t, a, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	e := New()
	if err := e.Merge(ctx, []string{a}, out); err == nil {
		t.Fatal("expected context error")
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Fatalf("expected no output file, stat err=%v", err)
	}
}
