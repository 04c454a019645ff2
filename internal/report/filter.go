package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"restaurant-backoffice/internal/utils"
)

type ReportType string

const (
	ReportDaily   ReportType = "daily"
	ReportMonthly ReportType = "monthly"
	ReportCustom  ReportType = "custom"
)

func ParseReportType(value string) (ReportType, error) {
	switch ReportType(strings.ToLower(strings.TrimSpace(value))) {
	case "", ReportDaily:
		return ReportDaily, nil
	case ReportMonthly:
		return ReportMonthly, nil
	case ReportCustom:
		return ReportCustom, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownReportType, value)
	}
}

type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type AttributeFilters struct {
	OrderType   string `json:"orderType"`
	PaymentMode string `json:"paymentMode"`
	Outlet      string `json:"outlet"`
}

type FilterState struct {
	ReportType  ReportType       `json:"reportType"`
	CustomRange DateRange        `json:"customRange"`
	Filters     AttributeFilters `json:"filters"`
}

type FilterResult struct {
	Bills []Bill
	// DateError is set when a custom range could not be applied. The date
	// axis is then skipped while attribute filters still run.
	DateError   error
	DateApplied bool
}

// ValidateCustomRange returns the normalized bounds of a custom range.
func ValidateCustomRange(r DateRange, loc *time.Location) (string, string, error) {
	if strings.TrimSpace(r.Start) == "" || strings.TrimSpace(r.End) == "" {
		return "", "", ErrIncompleteRange
	}
	start, ok := normalizeDay(r.Start, loc)
	if !ok {
		return "", "", ErrInvalidDate
	}
	end, ok := normalizeDay(r.End, loc)
	if !ok {
		return "", "", ErrInvalidDate
	}
	if start > end {
		return "", "", ErrInvalidRange
	}
	return start, end, nil
}

// ApplyFilters runs the date axis and then the attribute filters, AND-combined.
// The result is a new slice in input order.
func ApplyFilters(bills []Bill, state FilterState, today time.Time, loc *time.Location) FilterResult {
	if loc == nil {
		loc = time.Local
	}
	todayKey := utils.DateInLocation(today, loc)

	result := FilterResult{Bills: make([]Bill, 0, len(bills))}
	var dateMatch func(Bill) bool

	switch state.ReportType {
	case ReportMonthly:
		month := todayKey[:7]
		dateMatch = func(b Bill) bool { return strings.HasPrefix(b.BillDate, month) }
		result.DateApplied = true
	case ReportCustom:
		start, end, err := ValidateCustomRange(state.CustomRange, loc)
		if err != nil {
			result.DateError = err
			break
		}
		dateMatch = func(b Bill) bool { return b.BillDate >= start && b.BillDate <= end }
		result.DateApplied = true
	default:
		dateMatch = func(b Bill) bool { return b.BillDate == todayKey }
		result.DateApplied = true
	}

	match := attributeMatcher(state.Filters)
	for _, b := range bills {
		if dateMatch != nil && !dateMatch(b) {
			continue
		}
		if !match(b) {
			continue
		}
		result.Bills = append(result.Bills, b)
	}
	return result
}

func attributeMatcher(f AttributeFilters) func(Bill) bool {
	orderType := strings.TrimSpace(f.OrderType)
	paymentMode := strings.TrimSpace(f.PaymentMode)
	outlet := strings.TrimSpace(f.Outlet)

	outletID, outletNumeric := int64(0), false
	if outlet != "" {
		if n, err := strconv.ParseInt(outlet, 10, 64); err == nil {
			outletID, outletNumeric = n, true
		}
	}

	return func(b Bill) bool {
		if orderType != "" && b.OrderType != orderType {
			return false
		}
		if paymentMode != "" && !strings.Contains(b.PaymentMode, paymentMode) {
			return false
		}
		if outlet != "" {
			if outletNumeric {
				if b.OutletID != outletID {
					return false
				}
			} else if b.OutletName != outlet {
				return false
			}
		}
		return true
	}
}

func normalizeDay(value string, loc *time.Location) (string, bool) {
	if t, ok := utils.ParseDate(value, loc); ok {
		return t.Format(utils.DateLayout), true
	}
	if t, ok := utils.ParseDateTime(value, loc); ok {
		return t.Format(utils.DateLayout), true
	}
	return "", false
}
