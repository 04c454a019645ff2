package report

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// KitchenGroupKey picks the grouping key of the kitchen-wise and kitchen
// allocation reports. The POS has no kitchen on the bill, so the captain
// field stands in for it.
var KitchenGroupKey = func(b Bill) string { return b.Captain }

const defaultShift = "Morning"

var hundred = decimal.NewFromInt(100)

type CardDetails struct {
	CardNumber string          `json:"cardNumber"`
	Bank       string          `json:"bank"`
	Amount     decimal.Decimal `json:"amount"`
}

type BillSummaryRow struct {
	Bill
	CreditDetails CardDetails `json:"creditDetails"`
}

type BillSummaryTotals struct {
	GrossAmount decimal.Decimal `json:"grossAmount"`
	Discount    decimal.Decimal `json:"discount"`
	Amount      decimal.Decimal `json:"amount"`
	CGST        decimal.Decimal `json:"cgst"`
	SGST        decimal.Decimal `json:"sgst"`
	RoundOff    decimal.Decimal `json:"roundOff"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	CardAmount  decimal.Decimal `json:"cardAmount"`
}

type AmountRow struct {
	Type   string          `json:"type"`
	Amount decimal.Decimal `json:"amount"`
}

type ReverseKOTRow struct {
	ID        string          `json:"id"`
	BillNo    string          `json:"billNo"`
	KotNo     string          `json:"kotNo"`
	RevKotNo  string          `json:"revKotNo"`
	RevAmt    decimal.Decimal `json:"revAmt"`
	Reason    string          `json:"reason"`
	Timestamp time.Time       `json:"timestamp"`
}

type KitchenSalesRow struct {
	ID      string          `json:"id"`
	Kitchen string          `json:"kitchen"`
	Sales   decimal.Decimal `json:"sales"`
}

type NCKOTRow struct {
	ID     string   `json:"id"`
	BillNo string   `json:"billNo"`
	KotNo  string   `json:"kotNo"`
	Status string   `json:"status"`
	Items  []string `json:"items"`
}

type APCRow struct {
	ID      string          `json:"id"`
	BillNo  string          `json:"billNo"`
	Type    string          `json:"type"`
	Amount  decimal.Decimal `json:"amount"`
	Details string          `json:"details"`
}

type SpecialItemRow struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Qty   int64           `json:"qty"`
	Sales decimal.Decimal `json:"sales"`
}

type InterDeptCashRow struct {
	ID     string          `json:"id"`
	BillNo string          `json:"billNo"`
	From   string          `json:"from"`
	To     string          `json:"to"`
	Amount decimal.Decimal `json:"amount"`
	Type   string          `json:"type"`
}

type UserShiftRow struct {
	ID    string          `json:"id"`
	User  string          `json:"user"`
	Shift string          `json:"shift"`
	Sales decimal.Decimal `json:"sales"`
}

type MonthlySalesRow struct {
	Month string          `json:"month"`
	Sales decimal.Decimal `json:"sales"`
}

type PaymentModeSalesRow struct {
	Mode  string          `json:"mode"`
	Sales decimal.Decimal `json:"sales"`
}

type KitchenAllocationRow struct {
	ID         string          `json:"id"`
	Kitchen    string          `json:"kitchen"`
	Sales      decimal.Decimal `json:"sales"`
	Allocation string          `json:"allocation"`
}

// DayEndSummary copies the first filtered bill as context. Whether this
// should be report metadata instead is still open with product.
type DayEndSummary struct {
	TotalSales decimal.Decimal `json:"totalSales"`
	CashInHand decimal.Decimal `json:"cashInHand"`
	BillCount  int             `json:"billCount"`
	Context    *Bill           `json:"context,omitempty"`
}

type HandoverSummary struct {
	HandoverTime time.Time `json:"handoverTime"`
	Notes        string    `json:"notes"`
	BillCount    int       `json:"billCount"`
}

// ReprintRow and KOTUsedRow are placeholders: the backend does not track
// reprint counts or KOT consumption yet.
type ReprintRow struct {
	BillNo      string `json:"billNo"`
	Reprints    int    `json:"reprints"`
	Reason      string `json:"reason"`
	Placeholder bool   `json:"placeholder"`
}

type KOTUsedRow struct {
	KotNo       string `json:"kotNo"`
	UsedIn      string `json:"usedIn"`
	Items       int64  `json:"items"`
	Placeholder bool   `json:"placeholder"`
}

func BillSummary(bills []Bill) ([]BillSummaryRow, BillSummaryTotals) {
	rows := make([]BillSummaryRow, 0, len(bills))
	totals := BillSummaryTotals{}
	for _, b := range bills {
		row := BillSummaryRow{
			Bill: b,
			CreditDetails: CardDetails{
				CardNumber: notAvailable,
				Bank:       notAvailable,
				Amount:     b.Card,
			},
		}
		rows = append(rows, row)

		totals.GrossAmount = totals.GrossAmount.Add(b.GrossAmount)
		totals.Discount = totals.Discount.Add(b.Discount)
		totals.Amount = totals.Amount.Add(b.Amount)
		totals.CGST = totals.CGST.Add(b.CGST)
		totals.SGST = totals.SGST.Add(b.SGST)
		totals.RoundOff = totals.RoundOff.Add(b.RoundOff)
		totals.TotalAmount = totals.TotalAmount.Add(b.TotalAmount)
		totals.CardAmount = totals.CardAmount.Add(row.CreditDetails.Amount)
	}
	return rows, totals
}

func CreditSummary(bills []Bill) []AmountRow {
	total := decimal.Zero
	for _, b := range bills {
		if strings.Contains(strings.ToLower(b.PaymentMode), "credit") {
			total = total.Add(b.TotalAmount)
		}
	}
	return []AmountRow{{Type: "Total Credit", Amount: total}}
}

func DiscountSummary(bills []Bill) []AmountRow {
	total := decimal.Zero
	for _, b := range bills {
		total = total.Add(b.Discount)
	}
	avg := decimal.Zero
	if len(bills) > 0 {
		avg = total.Div(decimal.NewFromInt(int64(len(bills))))
	}
	return []AmountRow{
		{Type: "Total Discount", Amount: total},
		{Type: "Avg Discount", Amount: avg},
	}
}

func ReverseKOTs(bills []Bill) []ReverseKOTRow {
	ids := newRowIDs(CategoryReverseKOTs)
	rows := make([]ReverseKOTRow, 0)
	for _, b := range bills {
		if !b.RevKot {
			continue
		}
		rows = append(rows, ReverseKOTRow{
			ID:        ids.next(b.BillNo, b.KotNo),
			BillNo:    b.BillNo,
			KotNo:     b.KotNo,
			RevKotNo:  b.RevKotNo,
			RevAmt:    b.RevAmt,
			Reason:    "Reversal",
			Timestamp: b.Date,
		})
	}
	return rows
}

func KitchenWiseSales(bills []Bill) []KitchenSalesRow {
	groups := sumBy(bills, KitchenGroupKey, func(b Bill) decimal.Decimal { return b.Amount })
	rows := make([]KitchenSalesRow, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, KitchenSalesRow{
			ID:      rowID(CategoryKitchenWise, g.key),
			Kitchen: g.key,
			Sales:   g.sum,
		})
	}
	return rows
}

func NCKOTDetails(bills []Bill) []NCKOTRow {
	ids := newRowIDs(CategoryNCKOT)
	rows := make([]NCKOTRow, 0)
	for _, b := range bills {
		if strings.TrimSpace(b.NCKot) == "" {
			continue
		}
		rows = append(rows, NCKOTRow{
			ID:     ids.next(b.BillNo, b.KotNo),
			BillNo: b.BillNo,
			KotNo:  b.KotNo,
			Status: "NC",
			Items:  []string{b.KotNo},
		})
	}
	return rows
}

func APCAPPSummary(bills []Bill) []APCRow {
	ids := newRowIDs(CategoryAPCAPP)
	rows := make([]APCRow, 0)
	for _, b := range bills {
		if !b.Cash.IsPositive() {
			continue
		}
		rows = append(rows, APCRow{
			ID:      ids.next(b.BillNo, b.KotNo),
			BillNo:  b.BillNo,
			Type:    "APC",
			Amount:  b.Cash,
			Details: "Cash Payment",
		})
	}
	return rows
}

// SpecialItemsSummary keeps bills whose amount exceeds half of the largest
// amount in the set.
func SpecialItemsSummary(bills []Bill) []SpecialItemRow {
	max := decimal.Zero
	for i, b := range bills {
		if i == 0 || b.Amount.GreaterThan(max) {
			max = b.Amount
		}
	}
	threshold := max.Div(decimal.NewFromInt(2))

	ids := newRowIDs(CategorySpecialItems)
	rows := make([]SpecialItemRow, 0)
	for _, b := range bills {
		if !b.Amount.GreaterThan(threshold) {
			continue
		}
		qty := b.ItemsCount
		if qty <= 0 {
			qty = 1
		}
		rows = append(rows, SpecialItemRow{
			ID:    ids.next(b.BillNo, b.KotNo),
			Name:  b.BillNo,
			Qty:   qty,
			Sales: b.Amount,
		})
	}
	return rows
}

func InterDeptCash(bills []Bill) []InterDeptCashRow {
	ids := newRowIDs(CategoryInterDeptCash)
	rows := make([]InterDeptCashRow, 0)
	for _, b := range bills {
		if !b.Credit.IsPositive() {
			continue
		}
		rows = append(rows, InterDeptCashRow{
			ID:     ids.next(b.BillNo, b.KotNo),
			BillNo: b.BillNo,
			From:   "Front Desk",
			To:     "Accounts",
			Amount: b.Credit,
			Type:   "Paid",
		})
	}
	return rows
}

func DailySalesByUserShift(bills []Bill) []UserShiftRow {
	type userShift struct{ user, shift string }
	index := make(map[string]int)
	meta := make([]userShift, 0)
	groups := sumBy(bills, func(b Bill) string {
		shift := shiftOf(b)
		key := b.User + "-" + shift
		if _, ok := index[key]; !ok {
			index[key] = len(meta)
			meta = append(meta, userShift{user: b.User, shift: shift})
		}
		return key
	}, func(b Bill) decimal.Decimal { return b.Amount })

	rows := make([]UserShiftRow, 0, len(groups))
	for _, g := range groups {
		m := meta[index[g.key]]
		rows = append(rows, UserShiftRow{
			ID:    rowID(CategoryDailySalesUserShift, g.key),
			User:  m.user,
			Shift: m.shift,
			Sales: g.sum,
		})
	}
	return rows
}

func MonthlySales(bills []Bill) []MonthlySalesRow {
	groups := sumBy(bills, monthOf, func(b Bill) decimal.Decimal { return b.Amount })
	rows := make([]MonthlySalesRow, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, MonthlySalesRow{Month: g.key, Sales: g.sum})
	}
	return rows
}

// PaymentModeSales sums totalAmount per payment mode label.
func PaymentModeSales(bills []Bill) []PaymentModeSalesRow {
	groups := sumBy(bills, func(b Bill) string { return b.PaymentMode }, func(b Bill) decimal.Decimal { return b.TotalAmount })
	rows := make([]PaymentModeSalesRow, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, PaymentModeSalesRow{Mode: g.key, Sales: g.sum})
	}
	return rows
}

func KitchenAllocation(bills []Bill) []KitchenAllocationRow {
	groups := sumBy(bills, KitchenGroupKey, func(b Bill) decimal.Decimal { return b.Amount })
	total := decimal.Zero
	for _, g := range groups {
		total = total.Add(g.sum)
	}

	rows := make([]KitchenAllocationRow, 0, len(groups))
	for _, g := range groups {
		allocation := "0%"
		if !total.IsZero() {
			allocation = g.sum.Mul(hundred).Div(total).StringFixed(1) + "%"
		}
		rows = append(rows, KitchenAllocationRow{
			ID:         rowID(CategoryKitchenAllocation, g.key),
			Kitchen:    g.key,
			Sales:      g.sum,
			Allocation: allocation,
		})
	}
	return rows
}

func DayEnd(bills []Bill) DayEndSummary {
	summary := DayEndSummary{BillCount: len(bills)}
	for _, b := range bills {
		summary.TotalSales = summary.TotalSales.Add(b.TotalAmount)
		summary.CashInHand = summary.CashInHand.Add(b.Cash)
	}
	if len(bills) > 0 {
		context := bills[0]
		summary.Context = &context
	}
	return summary
}

func Handover(bills []Bill, now time.Time) HandoverSummary {
	return HandoverSummary{
		HandoverTime: now,
		Notes:        "Handover for " + strconv.Itoa(len(bills)) + " bills",
		BillCount:    len(bills),
	}
}

func BillReprinted(bills []Bill) []ReprintRow {
	rows := make([]ReprintRow, 0, len(bills))
	for _, b := range bills {
		rows = append(rows, ReprintRow{BillNo: b.BillNo, Reprints: 0, Reason: notAvailable, Placeholder: true})
	}
	return rows
}

func KOTUsedSummary(bills []Bill) []KOTUsedRow {
	rows := make([]KOTUsedRow, 0, len(bills))
	for _, b := range bills {
		rows = append(rows, KOTUsedRow{KotNo: b.KotNo, UsedIn: b.OrderNo, Items: b.ItemsCount, Placeholder: true})
	}
	return rows
}

func shiftOf(b Bill) string {
	captain := strings.TrimSpace(b.Captain)
	if captain == "" || captain == notAvailable {
		return defaultShift
	}
	return captain
}

func monthOf(b Bill) string {
	if len(b.BillDate) >= 7 {
		if m, err := strconv.Atoi(b.BillDate[5:7]); err == nil && m >= 1 && m <= 12 {
			return time.Month(m).String()[:3]
		}
	}
	return b.Date.Month().String()[:3]
}

type groupSum struct {
	key string
	sum decimal.Decimal
}

// sumBy groups in first-appearance order.
func sumBy(bills []Bill, key func(Bill) string, value func(Bill) decimal.Decimal) []groupSum {
	index := make(map[string]int)
	groups := make([]groupSum, 0)
	for _, b := range bills {
		k := key(b)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, groupSum{key: k})
		}
		groups[i].sum = groups[i].sum.Add(value(b))
	}
	return groups
}

func rowID(category Category, parts ...string) string {
	return string(category) + ":" + strings.Join(parts, ":")
}

// rowIDs derives ids from stable bill fields and suffixes repeats so ids
// stay unique and reproducible for the same input.
type rowIDs struct {
	category Category
	seen     map[string]int
}

func newRowIDs(category Category) *rowIDs {
	return &rowIDs{category: category, seen: make(map[string]int)}
}

func (r *rowIDs) next(parts ...string) string {
	id := rowID(r.category, parts...)
	n := r.seen[id]
	r.seen[id] = n + 1
	if n == 0 {
		return id
	}
	return id + "#" + strconv.Itoa(n+1)
}
