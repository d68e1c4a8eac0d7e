package app

import (
	"bufio"
	"regexp"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

var boldSpanRe = regexp.MustCompile(`\*\*([^*]+)\*\*`)

// writeReportPDF renders a trail report's Markdown into a minimal PDF:
// headings get a larger bold font, **bold** spans render bold inline, and
// everything else wraps as plain paragraphs. Not a general Markdown layout.
func writeReportPDF(markdown string, outPath string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.AddPage()

	scanner := bufio.NewScanner(strings.NewReader(markdown))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		s := strings.TrimSpace(scanner.Text())
		if s == "" {
			pdf.Ln(5)
			continue
		}
		if strings.HasPrefix(s, "#") {
			i := 0
			for i < len(s) && s[i] == '#' {
				i++
			}
			text := strings.TrimSpace(s[i:])
			if text == "" {
				continue
			}
			size := 14.0
			if i >= 2 {
				size = 12.0
			}
			pdf.SetFont("Helvetica", "B", size)
			pdf.CellFormat(0, 8, text, "", 1, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 11)
			continue
		}
		spans := boldSpanRe.FindAllStringSubmatchIndex(s, -1)
		if len(spans) == 0 {
			pdf.MultiCell(0, 5, s, "", "L", false)
			continue
		}
		pos := 0
		for _, m := range spans {
			if m[0] > pos {
				pdf.Write(5, s[pos:m[0]])
			}
			pdf.SetFont("Helvetica", "B", 11)
			pdf.Write(5, s[m[2]:m[3]])
			pdf.SetFont("Helvetica", "", 11)
			pos = m[1]
		}
		if pos < len(s) {
			pdf.Write(5, s[pos:])
		}
		pdf.Ln(6)
	}

	return pdf.OutputFileAndClose(outPath)
}
