package app

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/hyperifyio/gotrails/internal/trails"
)

func TestWriteReportPDF(t *testing.T) {
	report := FormatTrailDetail(trails.TrailDetail{
		Title:      "Alum Cave Trail",
		Summary:    "A classic climb past Arch Rock to the bluffs.",
		Length:     "11.0 mi",
		Difficulty: "Hard",
		URL:        "https://example.test/trail/alum-cave",
	})
	out := filepath.Join(t.TempDir(), "report.pdf")

	if err := writeReportPDF(report, out); err != nil {
		t.Fatalf("writeReportPDF: %v", err)
	}

	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if len(b) == 0 {
		t.Fatal("empty PDF output")
	}
	if !bytes.HasPrefix(b, []byte("%PDF-")) {
		t.Fatal("output does not start with a PDF header")
	}
}

func TestWriteReportPDFEmptyInput(t *testing.T) {
	out := filepath.Join(t.TempDir(), "empty.pdf")
	if err := writeReportPDF("", out); err != nil {
		t.Fatalf("writeReportPDF: %v", err)
	}
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !bytes.HasPrefix(b, []byte("%PDF-")) {
		t.Fatal("empty report must still render a valid PDF")
	}
}
