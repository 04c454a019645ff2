package export

import (
	"fmt"
	"io"
	"time"

	"restaurant-backoffice/internal/report"

	"github.com/phpdave11/gofpdf"
)

const (
	pdfMargin     = 10.0
	pdfRowHeight  = 6.0
	pdfHeaderSize = 7.0
	pdfBodySize   = 6.5
)

// WritePDF renders a landscape A4 document: title, generation time and one
// table whose header repeats on every page.
func WritePDF(table report.Table, w io.Writer, opts Options) error {
	pdf := renderPDF(table, opts)
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func renderPDF(table report.Table, opts Options) *gofpdf.Fpdf {
	generatedAt := opts.GeneratedAt
	if generatedAt.IsZero() {
		generatedAt = time.Now()
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(false, pdfMargin)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 8, tr(table.Title), "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(0, 5, "Generated on "+generatedAt.Format(report.TimestampLayout), "", 1, "L", false, 0, "")
	pdf.Ln(3)

	pageWidth, pageHeight := pdf.GetPageSize()
	widths := columnWidths(len(table.Columns), pageWidth-2*pdfMargin)
	bottom := pageHeight - pdfMargin

	header := func() {
		pdf.SetFont("Arial", "B", pdfHeaderSize)
		pdf.SetFillColor(230, 230, 230)
		for i, label := range table.Headers() {
			pdf.CellFormat(widths[i], pdfRowHeight, fit(pdf, tr(label), widths[i]), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Arial", "", pdfBodySize)
	}

	line := func(cells []string, bold bool) {
		if pdf.GetY()+pdfRowHeight > bottom {
			pdf.AddPage()
			header()
		}
		if bold {
			pdf.SetFont("Arial", "B", pdfBodySize)
		}
		for i, cell := range cells {
			align := "L"
			if k := table.Columns[i].Kind; k == report.KindMoney || k == report.KindInt {
				align = "R"
			}
			pdf.CellFormat(widths[i], pdfRowHeight, fit(pdf, tr(cell), widths[i]), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
		if bold {
			pdf.SetFont("Arial", "", pdfBodySize)
		}
	}

	header()
	body := pdfBody(table, opts)
	for _, cells := range body.rows {
		line(cells, false)
	}
	if body.totals != nil {
		line(body.totals, true)
	}
	if body.note != "" {
		pdf.SetFont("Arial", "I", pdfBodySize)
		pdf.CellFormat(0, pdfRowHeight, tr(body.note), "", 1, "L", false, 0, "")
	}
	return pdf
}

type pdfTableBody struct {
	rows   [][]string
	totals []string
	note   string
}

// pdfBody applies the bill summary row cap. Totals are always computed over
// every row, so a capped document says so in the totals label and a note.
func pdfBody(table report.Table, opts Options) pdfTableBody {
	body := pdfTableBody{rows: table.FormattedRows(), totals: table.FormattedTotals()}
	limit := opts.BillSummaryRowLimit
	if table.Category != report.CategoryBillSummary || limit <= 0 || len(body.rows) <= limit {
		return body
	}
	all := len(body.rows)
	body.rows = body.rows[:limit]
	if len(body.totals) > 0 {
		body.totals[0] = fmt.Sprintf("Total (all %d)", all)
	}
	body.note = fmt.Sprintf("Showing first %d of %d bills. Totals cover all %d bills.", limit, all, all)
	return body
}

func columnWidths(n int, usable float64) []float64 {
	widths := make([]float64, n)
	if n == 0 {
		return widths
	}
	each := usable / float64(n)
	for i := range widths {
		widths[i] = each
	}
	return widths
}

// fit trims text until it fits the cell width, with a little padding.
func fit(pdf *gofpdf.Fpdf, text string, width float64) string {
	max := width - 2
	if pdf.GetStringWidth(text) <= max {
		return text
	}
	runes := []rune(text)
	for len(runes) > 0 && pdf.GetStringWidth(string(runes)+"..") > max {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + ".."
}
