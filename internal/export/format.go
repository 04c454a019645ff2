package export

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"restaurant-backoffice/internal/report"
	"restaurant-backoffice/internal/utils"
)

var ErrUnknownFormat = errors.New("unknown export format")

type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatPDF  Format = "pdf"
)

func ParseFormat(value string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(value))) {
	case FormatXLSX:
		return FormatXLSX, nil
	case FormatPDF:
		return FormatPDF, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, value)
	}
}

func (f Format) ContentType() string {
	switch f {
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatPDF:
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}

// Filename follows restaurant-<category>-report-<YYYY-MM-DD>.<ext>, dated in loc.
func Filename(category report.Category, format Format, now time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return fmt.Sprintf("restaurant-%s-report-%s.%s", category, utils.DateInLocation(now, loc), format)
}

type Options struct {
	// BillSummaryRowLimit caps the bill summary rows in the PDF. Zero means no cap.
	BillSummaryRowLimit int
	GeneratedAt         time.Time
}

// Write renders table in the requested format.
func Write(format Format, table report.Table, w io.Writer, opts Options) error {
	switch format {
	case FormatXLSX:
		return WriteXLSX(table, w)
	case FormatPDF:
		return WritePDF(table, w, opts)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
