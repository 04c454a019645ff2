package export

import (
	"fmt"
	"io"

	"restaurant-backoffice/internal/report"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// numFmtTwoDecimals is the built-in "0.00" number format.
const numFmtTwoDecimals = 2

// WriteXLSX writes one sheet named after the category: a header row, the data
// rows and, when the table has one, a totals row.
func WriteXLSX(table report.Table, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := table.Category.SheetName()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: numFmtTwoDecimals})
	if err != nil {
		return fmt.Errorf("money style: %w", err)
	}
	totalsStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}, NumFmt: numFmtTwoDecimals})
	if err != nil {
		return fmt.Errorf("totals style: %w", err)
	}

	for col, label := range table.Headers() {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, label); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}
	if len(table.Columns) > 0 {
		last, err := excelize.CoordinatesToCellName(len(table.Columns), 1)
		if err != nil {
			return fmt.Errorf("header range: %w", err)
		}
		if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
			return fmt.Errorf("style header: %w", err)
		}
	}

	row := 2
	for _, values := range table.Rows {
		if err := writeRow(f, sheet, row, table.Columns, values, moneyStyle); err != nil {
			return err
		}
		row++
	}
	if table.Totals != nil {
		if err := writeRow(f, sheet, row, table.Columns, table.Totals, totalsStyle); err != nil {
			return err
		}
	}

	for col, c := range table.Columns {
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return fmt.Errorf("column name: %w", err)
		}
		width := float64(len(c.Label) + 4)
		if width < 12 {
			width = 12
		}
		if err := f.SetColWidth(sheet, name, name, width); err != nil {
			return fmt.Errorf("column width: %w", err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, columns []report.Column, values []any, moneyStyle int) error {
	for col, c := range columns {
		var v any
		if col < len(values) {
			v = values[col]
		}
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := setCell(f, sheet, cell, c.Kind, v, moneyStyle); err != nil {
			return fmt.Errorf("write %s: %w", cell, err)
		}
	}
	return nil
}

// setCell keeps money numeric so spreadsheet formulas work on it.
func setCell(f *excelize.File, sheet, cell string, kind report.ColumnKind, v any, moneyStyle int) error {
	switch value := v.(type) {
	case decimal.Decimal:
		if err := f.SetCellFloat(sheet, cell, value.Round(2).InexactFloat64(), 2, 64); err != nil {
			return err
		}
		return f.SetCellStyle(sheet, cell, cell, moneyStyle)
	case int64, int:
		return f.SetCellValue(sheet, cell, value)
	case nil:
		if kind == report.KindMoney {
			if err := f.SetCellFloat(sheet, cell, 0, 2, 64); err != nil {
				return err
			}
			return f.SetCellStyle(sheet, cell, cell, moneyStyle)
		}
		if kind == report.KindInt {
			return f.SetCellValue(sheet, cell, 0)
		}
		return nil
	default:
		text := report.FormatCell(kind, v)
		if text == "" {
			return nil
		}
		return f.SetCellStr(sheet, cell, text)
	}
}
