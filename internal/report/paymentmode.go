package report

import (
	"strconv"

	"github.com/shopspring/decimal"
)

var builtinModeFields = map[string]func(Bill) decimal.Decimal{
	"cash":    func(b Bill) decimal.Decimal { return b.Cash },
	"card":    func(b Bill) decimal.Decimal { return b.Card },
	"credit":  func(b Bill) decimal.Decimal { return b.Credit },
	"gpay":    func(b Bill) decimal.Decimal { return b.GPay },
	"phonepe": func(b Bill) decimal.Decimal { return b.PhonePe },
	"qrcode":  func(b Bill) decimal.Decimal { return b.QRCode },
}

// NormalizeModeName lower-cases a payment mode name and strips every
// non-alphanumeric rune, so "Google Pay", "PhonePe" and "QR-Code" line up
// with bill breakdown fields.
func NormalizeModeName(name string) string {
	return normalizeKey(name)
}

// ModeAmount resolves the bill's breakdown amount for a payment mode: a
// built-in field first, then a same-named numeric field of the raw order.
func ModeAmount(b Bill, modeName string) decimal.Decimal {
	key := NormalizeModeName(modeName)
	if field, ok := builtinModeFields[key]; ok {
		return field(b)
	}
	if v, ok := b.Extras[key]; ok {
		return v
	}
	return decimal.Zero
}

// ModeColumns derives one money column per payment mode, in list order.
func ModeColumns(modes []PaymentMode) []Column {
	cols := make([]Column, 0, len(modes))
	seen := make(map[string]int)
	for _, m := range modes {
		key := "mode:" + NormalizeModeName(m.ModeName)
		seen[key]++
		if n := seen[key]; n > 1 {
			key += "#" + strconv.Itoa(n)
		}
		cols = append(cols, Column{Key: key, Label: m.ModeName, Kind: KindMoney})
	}
	return cols
}
