package export

import (
	"bytes"
	"errors"
	"strconv"
	"testing"
	"time"

	"restaurant-backoffice/internal/report"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

func sampleBills(n int) []report.Bill {
	bills := make([]report.Bill, 0, n)
	for i := 1; i <= n; i++ {
		bills = append(bills, report.Bill{
			BillNo:      "B" + strconv.Itoa(i),
			OrderNo:     "O" + strconv.Itoa(i),
			PaymentMode: "Cash",
			Amount:      decimal.NewFromInt(int64(i * 10)),
			TotalAmount: decimal.NewFromInt(int64(i * 10)),
			Cash:        decimal.NewFromInt(int64(i * 10)),
		})
	}
	return bills
}

func TestFilename(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	now := time.Date(2026, 10, 16, 20, 0, 0, 0, time.UTC)
	got := Filename(report.CategoryBillSummary, FormatXLSX, now, loc)
	if got != "restaurant-billSummary-report-2026-10-17.xlsx" {
		t.Fatalf("unexpected filename %s", got)
	}
	if got := Filename(report.CategoryDayEnd, FormatPDF, now, time.UTC); got != "restaurant-dayEnd-report-2026-10-16.pdf" {
		t.Fatalf("unexpected filename %s", got)
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("XLSX"); err != nil || f != FormatXLSX {
		t.Fatalf("expected xlsx, got %s (%v)", f, err)
	}
	if _, err := ParseFormat("csv"); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestWriteXLSXBillSummary(t *testing.T) {
	modes := []report.PaymentMode{{ID: 1, ModeName: "Cash"}, {ID: 2, ModeName: "Card"}}
	table, err := report.BuildTable(report.CategoryBillSummary, sampleBills(3), report.TableOptions{PaymentModes: modes})
	if err != nil {
		t.Fatalf("build table: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteXLSX(table, &buf); err != nil {
		t.Fatalf("write xlsx: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 1 || sheets[0] != "billSummary Report" {
		t.Fatalf("unexpected sheets %v", sheets)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	// header, three bills, totals
	if len(rows) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(rows))
	}
	if rows[0][0] != "Bill No" {
		t.Fatalf("unexpected header %v", rows[0])
	}

	totalCol := -1
	for i, label := range rows[0] {
		if label == "Total Amount" {
			totalCol = i
		}
	}
	if totalCol < 0 {
		t.Fatalf("Total Amount column missing from %v", rows[0])
	}
	if rows[4][0] != "Total" || rows[4][totalCol] != "60.00" {
		t.Fatalf("unexpected totals row %v", rows[4])
	}
	if rows[1][totalCol] != "10.00" {
		t.Fatalf("expected money formatted with two decimals, got %s", rows[1][totalCol])
	}

	cell, _ := excelize.CoordinatesToCellName(totalCol+1, 2)
	cellType, err := f.GetCellType(sheets[0], cell)
	if err != nil {
		t.Fatalf("cell type: %v", err)
	}
	if cellType != excelize.CellTypeNumber && cellType != excelize.CellTypeUnset {
		t.Fatalf("expected numeric money cell, got %v", cellType)
	}
}

func TestWriteXLSXEmptyTable(t *testing.T) {
	table, _ := report.BuildTable(report.CategoryReverseKOTs, nil, report.TableOptions{})
	var buf bytes.Buffer
	if err := WriteXLSX(table, &buf); err != nil {
		t.Fatalf("write xlsx: %v", err)
	}
	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()
	rows, _ := f.GetRows("reverseKOTs Report")
	if len(rows) != 1 {
		t.Fatalf("expected header only, got %d rows", len(rows))
	}
}

func TestWritePDF(t *testing.T) {
	table, _ := report.BuildTable(report.CategoryKitchenWise, sampleBills(2), report.TableOptions{})
	var buf bytes.Buffer
	if err := WritePDF(table, &buf, Options{GeneratedAt: time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)}); err != nil {
		t.Fatalf("write pdf: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Fatalf("expected a pdf document")
	}
}

func TestPDFPaginatesLongTables(t *testing.T) {
	table, _ := report.BuildTable(report.CategoryBillSummary, sampleBills(120), report.TableOptions{})

	unlimited := renderPDF(table, Options{})
	if unlimited.PageCount() < 2 {
		t.Fatalf("expected several pages, got %d", unlimited.PageCount())
	}

	capped := renderPDF(table, Options{BillSummaryRowLimit: 10})
	if capped.PageCount() != 1 {
		t.Fatalf("expected the row limit to fit one page, got %d", capped.PageCount())
	}
	if err := capped.Error(); err != nil {
		t.Fatalf("pdf error: %v", err)
	}
}

func TestPDFRowLimitOnlyAppliesToBillSummary(t *testing.T) {
	table, _ := report.BuildTable(report.CategoryBillReprinted, sampleBills(120), report.TableOptions{})
	if pdf := renderPDF(table, Options{BillSummaryRowLimit: 10}); pdf.PageCount() < 2 {
		t.Fatalf("expected other categories to keep all rows")
	}
}

func TestPDFCappedTotalsAreLabelled(t *testing.T) {
	table, _ := report.BuildTable(report.CategoryBillSummary, sampleBills(25), report.TableOptions{})

	cases := []struct {
		name      string
		limit     int
		rows      int
		totalsTag string
		noted     bool
	}{
		{name: "under limit", limit: 50, rows: 25, totalsTag: "Total"},
		{name: "no limit", limit: 0, rows: 25, totalsTag: "Total"},
		{name: "capped", limit: 10, rows: 10, totalsTag: "Total (all 25)", noted: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body := pdfBody(table, Options{BillSummaryRowLimit: tc.limit})
			if len(body.rows) != tc.rows {
				t.Fatalf("expected %d rows, got %d", tc.rows, len(body.rows))
			}
			if body.totals[0] != tc.totalsTag {
				t.Fatalf("expected totals label %q, got %q", tc.totalsTag, body.totals[0])
			}
			if (body.note != "") != tc.noted {
				t.Fatalf("unexpected note %q", body.note)
			}
		})
	}

	full := table.FormattedTotals()
	capped := pdfBody(table, Options{BillSummaryRowLimit: 10})
	for i := 1; i < len(full); i++ {
		if capped.totals[i] != full[i] {
			t.Fatalf("capped totals must match the full table at column %d: %q vs %q", i, capped.totals[i], full[i])
		}
	}
}

func TestWriteXLSXReportsSheetLimits(t *testing.T) {
	columns := make([]report.Column, excelize.MaxColumns+1)
	for i := range columns {
		columns[i] = report.Column{Key: "c" + strconv.Itoa(i), Label: "C" + strconv.Itoa(i), Kind: report.KindText}
	}
	table := report.Table{Category: report.CategoryKitchenWise, Title: "Wide", Columns: columns}

	var buf bytes.Buffer
	if err := WriteXLSX(table, &buf); err == nil {
		t.Fatalf("expected an error for more columns than a sheet holds")
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no workbook to be written, got %d bytes", buf.Len())
	}
}
