package report

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

var testLoc = time.FixedZone("IST", 5*3600+1800)

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func TestNormalizeTaxIsSumOfGST(t *testing.T) {
	now := time.Date(2026, 10, 17, 12, 0, 0, 0, testLoc)
	raw := []RawOrder{
		{"orderNo": "T1", "cgst": 2.5, "sgst": 2.5},
		{"orderNo": "T2", "cgst": "1.10", "sgst": nil},
		{"orderNo": "T3"},
		{"orderNo": "T4", "cgst": json.Number("0.333"), "sgst": json.Number("0.667")},
	}

	bills := Normalize(raw, now, testLoc)
	if len(bills) != len(raw) {
		t.Fatalf("expected %d bills, got %d", len(raw), len(bills))
	}
	for _, b := range bills {
		if !b.Tax.Equal(b.CGST.Add(b.SGST)) {
			t.Fatalf("bill %s: tax %s != cgst %s + sgst %s", b.OrderNo, b.Tax, b.CGST, b.SGST)
		}
	}
	if !bills[3].Tax.Equal(dec("1")) {
		t.Fatalf("expected tax 1, got %s", bills[3].Tax)
	}
}

func TestNormalizeDefaults(t *testing.T) {
	now := time.Date(2026, 10, 17, 9, 30, 0, 0, testLoc)
	bills := Normalize([]RawOrder{{}}, now, testLoc)
	b := bills[0]

	for name, value := range map[string]string{
		"orderNo":      b.OrderNo,
		"billNo":       b.BillNo,
		"kotNo":        b.KotNo,
		"paymentMode":  b.PaymentMode,
		"orderType":    b.OrderType,
		"customerName": b.CustomerName,
		"captain":      b.Captain,
		"user":         b.User,
		"outlet_name":  b.OutletName,
	} {
		if value != "N/A" {
			t.Fatalf("expected %s to default to N/A, got %q", name, value)
		}
	}
	for name, value := range map[string]decimal.Decimal{
		"amount":      b.Amount,
		"totalAmount": b.TotalAmount,
		"discount":    b.Discount,
		"cash":        b.Cash,
	} {
		if !value.IsZero() {
			t.Fatalf("expected %s to default to 0, got %s", name, value)
		}
	}
	if b.BillDate != "2026-10-17" {
		t.Fatalf("expected missing date to fall back to today, got %s", b.BillDate)
	}
	if b.RevKot {
		t.Fatalf("expected revKot false by default")
	}
}

func TestNormalizeBackendOrderShape(t *testing.T) {
	now := time.Date(2026, 10, 17, 9, 30, 0, 0, testLoc)
	raw := RawOrder{
		"orderNo":              "TXN-42",
		"amount":               "525.00",
		"serviceCharge_Amount": 25,
		"items":                float64(3),
		"outletid":             float64(5),
		"isHomeDelivery":       0,
		"isPickup":             1,
		"date":                 "2026-10-16 23:45:00",
		"upi":                  12.5,
		"captain":              "Ravi",
	}
	b := Normalize([]RawOrder{raw}, now, testLoc)[0]

	if b.BillNo != "TXN-42" {
		t.Fatalf("expected billNo to fall back to orderNo, got %s", b.BillNo)
	}
	if !b.TotalAmount.Equal(dec("525")) {
		t.Fatalf("expected totalAmount to fall back to amount, got %s", b.TotalAmount)
	}
	if !b.ServiceCharge.Equal(dec("25")) {
		t.Fatalf("expected service charge 25, got %s", b.ServiceCharge)
	}
	if b.ItemsCount != 3 {
		t.Fatalf("expected 3 items, got %d", b.ItemsCount)
	}
	if b.OutletID != 5 {
		t.Fatalf("expected outlet 5, got %d", b.OutletID)
	}
	if b.OrderType != "Pickup" {
		t.Fatalf("expected Pickup, got %s", b.OrderType)
	}
	if b.BillDate != "2026-10-16" {
		t.Fatalf("expected bill date 2026-10-16, got %s", b.BillDate)
	}
	if v, ok := b.Extras["upi"]; !ok || !v.Equal(dec("12.5")) {
		t.Fatalf("expected upi extra 12.5, got %v", b.Extras)
	}
}

func TestExtrasKeepOnlyJSONNumbers(t *testing.T) {
	now := time.Date(2026, 10, 17, 9, 30, 0, 0, testLoc)
	raw := RawOrder{
		"orderNo":    "9",
		"date":       "2026-10-17 09:00:00",
		"mobile":     "9876543210",
		"table_name": "12",
		"pin":        "0042",
		"upi":        json.Number("4"),
		"wallet":     float64(7.25),
		"voucher":    math.NaN(),
	}
	b := Normalize([]RawOrder{raw}, now, testLoc)[0]

	cases := []struct {
		key      string
		expected string
		present  bool
	}{
		{key: "mobile"},
		{key: "tablename"},
		{key: "pin"},
		{key: "voucher"},
		{key: "upi", expected: "4", present: true},
		{key: "wallet", expected: "7.25", present: true},
	}
	for _, tc := range cases {
		v, ok := b.Extras[tc.key]
		if ok != tc.present {
			t.Fatalf("%s: expected present=%v, extras %v", tc.key, tc.present, b.Extras)
		}
		if ok && !v.Equal(dec(tc.expected)) {
			t.Fatalf("%s: expected %s, got %s", tc.key, tc.expected, v)
		}
	}
}

func TestIsReverseBill(t *testing.T) {
	cases := []struct {
		name     string
		value    any
		expected bool
	}{
		{name: "number one", value: float64(1), expected: true},
		{name: "int one", value: 1, expected: true},
		{name: "string one", value: "1", expected: true},
		{name: "bool true", value: true, expected: true},
		{name: "zero", value: 0, expected: false},
		{name: "string zero", value: "0", expected: false},
		{name: "two", value: 2, expected: false},
		{name: "yes string", value: "yes", expected: false},
		{name: "nil", value: nil, expected: false},
		{name: "bool false", value: false, expected: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsReverseBill(tc.value); got != tc.expected {
				t.Fatalf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestNormalizeDateFormats(t *testing.T) {
	now := time.Date(2026, 10, 17, 9, 30, 0, 0, testLoc)
	cases := []struct {
		raw      RawOrder
		expected string
	}{
		{RawOrder{"date": "2026-03-01"}, "2026-03-01"},
		{RawOrder{"date": "2026-03-01T10:00:00"}, "2026-03-01"},
		{RawOrder{"date": "2026-02-28T20:00:00Z"}, "2026-03-01"},
		{RawOrder{"date": "garbage", "billDate": "2026-01-05"}, "2026-01-05"},
		{RawOrder{"date": "garbage"}, "2026-10-17"},
	}
	for _, tc := range cases {
		got := Normalize([]RawOrder{tc.raw}, now, testLoc)[0].BillDate
		if got != tc.expected {
			t.Fatalf("%v: expected %s, got %s", tc.raw, tc.expected, got)
		}
	}
}
