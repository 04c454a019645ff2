package report

import (
	"errors"
	"testing"
	"time"
)

func billOn(no, date string) Bill {
	return Bill{OrderNo: no, BillNo: no, BillDate: date, OrderType: "Dine In", PaymentMode: "Cash", OutletName: "Main"}
}

func billNos(bills []Bill) []string {
	out := make([]string, 0, len(bills))
	for _, b := range bills {
		out = append(out, b.BillNo)
	}
	return out
}

func sameNos(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestApplyFiltersDateAxis(t *testing.T) {
	today := time.Date(2026, 10, 17, 10, 0, 0, 0, testLoc)
	bills := []Bill{
		billOn("A", "2026-10-17"),
		billOn("B", "2026-10-16"),
		billOn("C", "2026-09-30"),
		billOn("D", "2026-10-01"),
		billOn("E", "2025-10-17"),
	}

	cases := []struct {
		name     string
		state    FilterState
		expected []string
		dateErr  error
	}{
		{name: "daily", state: FilterState{ReportType: ReportDaily}, expected: []string{"A"}},
		{name: "default is daily", state: FilterState{}, expected: []string{"A"}},
		{name: "monthly", state: FilterState{ReportType: ReportMonthly}, expected: []string{"A", "B", "D"}},
		{
			name:     "custom inclusive",
			state:    FilterState{ReportType: ReportCustom, CustomRange: DateRange{Start: "2026-09-30", End: "2026-10-16"}},
			expected: []string{"B", "C", "D"},
		},
		{
			name:     "custom single day",
			state:    FilterState{ReportType: ReportCustom, CustomRange: DateRange{Start: "2026-10-01", End: "2026-10-01"}},
			expected: []string{"D"},
		},
		{
			name:     "custom reversed",
			state:    FilterState{ReportType: ReportCustom, CustomRange: DateRange{Start: "2026-10-17", End: "2026-10-01"}},
			expected: []string{"A", "B", "C", "D", "E"},
			dateErr:  ErrInvalidRange,
		},
		{
			name:     "custom incomplete",
			state:    FilterState{ReportType: ReportCustom, CustomRange: DateRange{Start: "2026-10-01"}},
			expected: []string{"A", "B", "C", "D", "E"},
			dateErr:  ErrIncompleteRange,
		},
		{
			name:     "custom invalid date",
			state:    FilterState{ReportType: ReportCustom, CustomRange: DateRange{Start: "yesterday", End: "2026-10-01"}},
			expected: []string{"A", "B", "C", "D", "E"},
			dateErr:  ErrInvalidDate,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := ApplyFilters(bills, tc.state, today, testLoc)
			if got := billNos(result.Bills); !sameNos(got, tc.expected) {
				t.Fatalf("expected %v, got %v", tc.expected, got)
			}
			if tc.dateErr == nil && result.DateError != nil {
				t.Fatalf("unexpected date error: %v", result.DateError)
			}
			if tc.dateErr != nil {
				if !errors.Is(result.DateError, tc.dateErr) {
					t.Fatalf("expected date error %v, got %v", tc.dateErr, result.DateError)
				}
				if result.DateApplied {
					t.Fatalf("expected date axis to be skipped")
				}
			}
		})
	}
}

func TestApplyFiltersAttributes(t *testing.T) {
	today := time.Date(2026, 10, 17, 10, 0, 0, 0, testLoc)
	bills := []Bill{
		{BillNo: "1", BillDate: "2026-10-17", OrderType: "Dine In", PaymentMode: "Cash", OutletID: 5, OutletName: "Main"},
		{BillNo: "2", BillDate: "2026-10-17", OrderType: "Delivery", PaymentMode: "Credit Card", OutletID: 3, OutletName: "Annex"},
		{BillNo: "3", BillDate: "2026-10-17", OrderType: "Dine In", PaymentMode: "Card", OutletID: 5, OutletName: "Main"},
		{BillNo: "4", BillDate: "2026-10-16", OrderType: "Dine In", PaymentMode: "Cash", OutletID: 5, OutletName: "Main"},
	}

	cases := []struct {
		name     string
		filters  AttributeFilters
		expected []string
	}{
		{name: "none", filters: AttributeFilters{}, expected: []string{"1", "2", "3"}},
		{name: "order type exact", filters: AttributeFilters{OrderType: "Dine In"}, expected: []string{"1", "3"}},
		{name: "order type is not substring", filters: AttributeFilters{OrderType: "Dine"}, expected: []string{}},
		{name: "payment substring", filters: AttributeFilters{PaymentMode: "Card"}, expected: []string{"2", "3"}},
		{name: "payment case sensitive", filters: AttributeFilters{PaymentMode: "card"}, expected: []string{}},
		{name: "outlet numeric", filters: AttributeFilters{Outlet: "5"}, expected: []string{"1", "3"}},
		{name: "outlet by name", filters: AttributeFilters{Outlet: "Annex"}, expected: []string{"2"}},
		{name: "outlet fraction does not truncate", filters: AttributeFilters{Outlet: "5.5"}, expected: []string{}},
		{name: "outlet NaN matches nothing", filters: AttributeFilters{Outlet: "NaN"}, expected: []string{}},
		{name: "outlet exponent is not an id", filters: AttributeFilters{Outlet: "5e0"}, expected: []string{}},
		{name: "combined", filters: AttributeFilters{OrderType: "Dine In", PaymentMode: "Card", Outlet: "5"}, expected: []string{"3"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			state := FilterState{ReportType: ReportDaily, Filters: tc.filters}
			got := billNos(ApplyFilters(bills, state, today, testLoc).Bills)
			if !sameNos(got, tc.expected) {
				t.Fatalf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestApplyFiltersIsSubsetInOrder(t *testing.T) {
	today := time.Date(2026, 10, 17, 10, 0, 0, 0, testLoc)
	bills := []Bill{
		billOn("Z", "2026-10-17"),
		billOn("Y", "2026-10-02"),
		billOn("X", "2026-10-17"),
	}
	result := ApplyFilters(bills, FilterState{ReportType: ReportMonthly}, today, testLoc)
	if got := billNos(result.Bills); !sameNos(got, []string{"Z", "Y", "X"}) {
		t.Fatalf("expected input order to be kept, got %v", got)
	}
	if len(bills) != 3 || bills[0].BillNo != "Z" {
		t.Fatalf("input slice was modified")
	}
}

func TestParseReportType(t *testing.T) {
	cases := map[string]ReportType{"": ReportDaily, "Daily": ReportDaily, "monthly": ReportMonthly, " custom ": ReportCustom}
	for in, expected := range cases {
		got, err := ParseReportType(in)
		if err != nil || got != expected {
			t.Fatalf("%q: expected %s, got %s (%v)", in, expected, got, err)
		}
	}
	if _, err := ParseReportType("weekly"); !errors.Is(err, ErrUnknownReportType) {
		t.Fatalf("expected ErrUnknownReportType, got %v", err)
	}
}
