package report

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type ColumnKind string

const (
	KindText  ColumnKind = "text"
	KindMoney ColumnKind = "money"
	KindInt   ColumnKind = "int"
	KindTime  ColumnKind = "time"
	KindAuto  ColumnKind = "auto"
)

const TimestampLayout = "2006-01-02 15:04:05"

type Column struct {
	Key   string     `json:"key"`
	Label string     `json:"label"`
	Kind  ColumnKind `json:"kind"`
}

type blankCell struct{}

// Blank marks a cell that renders empty, e.g. non-additive totals columns.
var Blank = blankCell{}

// Table is the single row set behind the JSON view, the workbook and the PDF.
// Cells keep their typed values; formatting happens at render time.
type Table struct {
	Category Category `json:"category"`
	Title    string   `json:"title"`
	Columns  []Column `json:"columns"`
	Rows     [][]any  `json:"-"`
	Totals   []any    `json:"-"`
}

func (t Table) Headers() []string {
	out := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		out = append(out, c.Label)
	}
	return out
}

func (t Table) FormattedRows() [][]string {
	out := make([][]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		out = append(out, t.formatRow(row))
	}
	return out
}

func (t Table) FormattedTotals() []string {
	if t.Totals == nil {
		return nil
	}
	return t.formatRow(t.Totals)
}

func (t Table) formatRow(row []any) []string {
	out := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		var v any
		if i < len(row) {
			v = row[i]
		}
		out[i] = FormatCell(c.Kind, v)
	}
	return out
}

// FormatCell renders money with exactly two decimals. Missing numbers
// render as zero.
func FormatCell(kind ColumnKind, v any) string {
	switch value := v.(type) {
	case blankCell:
		return ""
	case decimal.Decimal:
		return value.StringFixed(2)
	case int64:
		return strconv.FormatInt(value, 10)
	case int:
		return strconv.Itoa(value)
	case time.Time:
		if value.IsZero() {
			return ""
		}
		return value.Format(TimestampLayout)
	case string:
		return value
	case nil:
		switch kind {
		case KindMoney:
			return "0.00"
		case KindInt:
			return "0"
		}
		return ""
	default:
		return ""
	}
}

type TableOptions struct {
	PaymentModes []PaymentMode
	Now          time.Time
}

// BuildTable runs the category's aggregator over the filtered bills and lays
// out its columns.
func BuildTable(category Category, bills []Bill, opts TableOptions) (Table, error) {
	t := Table{Category: category, Title: category.Title()}

	switch category {
	case CategoryBillSummary:
		buildBillSummaryTable(&t, bills, opts.PaymentModes)
	case CategoryCreditSummary:
		t.Columns = []Column{text("type", "Type"), money("amount", "Amount")}
		for _, r := range CreditSummary(bills) {
			t.Rows = append(t.Rows, []any{r.Type, r.Amount})
		}
	case CategoryDiscountSummary:
		t.Columns = []Column{text("type", "Type"), money("amount", "Amount")}
		for _, r := range DiscountSummary(bills) {
			t.Rows = append(t.Rows, []any{r.Type, r.Amount})
		}
	case CategoryReverseKOTs:
		t.Columns = []Column{
			text("id", "ID"), text("billNo", "Bill No"), text("kotNo", "KOT No"), text("revKotNo", "Rev KOT No"),
			money("revAmt", "Rev Amount"), text("reason", "Reason"), {Key: "timestamp", Label: "Timestamp", Kind: KindTime},
		}
		for _, r := range ReverseKOTs(bills) {
			t.Rows = append(t.Rows, []any{r.ID, r.BillNo, r.KotNo, r.RevKotNo, r.RevAmt, r.Reason, r.Timestamp})
		}
	case CategoryKitchenWise:
		t.Columns = []Column{text("kitchen", "Kitchen"), money("sales", "Sales")}
		for _, r := range KitchenWiseSales(bills) {
			t.Rows = append(t.Rows, []any{r.Kitchen, r.Sales})
		}
	case CategoryNCKOT:
		t.Columns = []Column{text("id", "ID"), text("billNo", "Bill No"), text("kotNo", "KOT No"), text("status", "Status"), text("items", "Items")}
		for _, r := range NCKOTDetails(bills) {
			t.Rows = append(t.Rows, []any{r.ID, r.BillNo, r.KotNo, r.Status, strings.Join(r.Items, ", ")})
		}
	case CategoryAPCAPP:
		t.Columns = []Column{text("billNo", "Bill No"), text("type", "Type"), money("amount", "Amount"), text("details", "Details")}
		for _, r := range APCAPPSummary(bills) {
			t.Rows = append(t.Rows, []any{r.BillNo, r.Type, r.Amount, r.Details})
		}
	case CategorySpecialItems:
		t.Columns = []Column{text("name", "Name"), integer("qty", "Qty"), money("sales", "Sales")}
		for _, r := range SpecialItemsSummary(bills) {
			t.Rows = append(t.Rows, []any{r.Name, r.Qty, r.Sales})
		}
	case CategoryInterDeptCash:
		t.Columns = []Column{text("billNo", "Bill No"), text("from", "From"), text("to", "To"), money("amount", "Amount"), text("type", "Type")}
		for _, r := range InterDeptCash(bills) {
			t.Rows = append(t.Rows, []any{r.BillNo, r.From, r.To, r.Amount, r.Type})
		}
	case CategoryDailySalesUserShift:
		t.Columns = []Column{text("user", "User"), text("shift", "Shift"), money("sales", "Sales")}
		for _, r := range DailySalesByUserShift(bills) {
			t.Rows = append(t.Rows, []any{r.User, r.Shift, r.Sales})
		}
	case CategoryMonthlySales:
		t.Columns = []Column{text("month", "Month"), money("sales", "Sales")}
		for _, r := range MonthlySales(bills) {
			t.Rows = append(t.Rows, []any{r.Month, r.Sales})
		}
	case CategoryPaymentModeSales:
		t.Columns = []Column{text("mode", "Mode"), money("sales", "Sales")}
		for _, r := range PaymentModeSales(bills) {
			t.Rows = append(t.Rows, []any{r.Mode, r.Sales})
		}
	case CategoryKitchenAllocation:
		t.Columns = []Column{text("kitchen", "Kitchen"), money("sales", "Sales"), text("allocation", "Allocation")}
		for _, r := range KitchenAllocation(bills) {
			t.Rows = append(t.Rows, []any{r.Kitchen, r.Sales, r.Allocation})
		}
	case CategoryDayEnd:
		t.Columns = []Column{text("metric", "Metric"), {Key: "value", Label: "Value", Kind: KindAuto}}
		d := DayEnd(bills)
		t.Rows = [][]any{
			{"Total Sales", d.TotalSales},
			{"Cash In Hand", d.CashInHand},
			{"Bill Count", int64(d.BillCount)},
		}
		if d.Context != nil {
			t.Rows = append(t.Rows,
				[]any{"Outlet", d.Context.OutletName},
				[]any{"Bill No", d.Context.BillNo},
				[]any{"Date", d.Context.BillDate},
				[]any{"User", d.Context.User},
			)
		}
	case CategoryHandover:
		t.Columns = []Column{{Key: "handoverTime", Label: "Handover Time", Kind: KindTime}, text("notes", "Notes")}
		h := Handover(bills, opts.Now)
		t.Rows = [][]any{{h.HandoverTime, h.Notes}}
	case CategoryBillReprinted:
		t.Columns = []Column{text("billNo", "Bill No"), integer("reprints", "Reprints"), text("reason", "Reason")}
		for _, r := range BillReprinted(bills) {
			t.Rows = append(t.Rows, []any{r.BillNo, int64(r.Reprints), r.Reason})
		}
	case CategoryKOTUsedSummary:
		t.Columns = []Column{text("kotNo", "KOT No"), text("usedIn", "Used In"), integer("items", "Items")}
		for _, r := range KOTUsedSummary(bills) {
			t.Rows = append(t.Rows, []any{r.KotNo, r.UsedIn, r.Items})
		}
	default:
		return Table{}, ErrUnknownCategory
	}

	if t.Rows == nil {
		t.Rows = [][]any{}
	}
	return t, nil
}

func buildBillSummaryTable(t *Table, bills []Bill, modes []PaymentMode) {
	modeCols := ModeColumns(modes)

	t.Columns = []Column{
		text("billNo", "Bill No"),
		text("orderNo", "Order No"),
		text("kotNo", "KOT No"),
		text("billDate", "Date"),
		text("outlet", "Outlet"),
		text("table", "Table"),
		text("orderType", "Order Type"),
		text("customer", "Customer"),
		money("grossAmount", "Gross Amount"),
		money("discount", "Discount"),
		money("amount", "Amount"),
		money("cgst", "CGST"),
		money("sgst", "SGST"),
		money("tax", "Tax"),
		money("roundOff", "Round Off"),
		money("totalAmount", "Total Amount"),
		text("paymentMode", "Payment Mode"),
	}
	t.Columns = append(t.Columns, modeCols...)
	t.Columns = append(t.Columns,
		text("cardNumber", "Card Number"),
		text("bank", "Bank"),
		money("cardAmount", "Card Amount"),
	)

	rows, totals := BillSummary(bills)
	for _, r := range rows {
		row := []any{
			r.BillNo, r.OrderNo, r.KotNo, r.BillDate, r.OutletName, r.TableName, r.OrderType, r.CustomerName,
			r.GrossAmount, r.Discount, r.Amount, r.CGST, r.SGST, r.Tax, r.RoundOff, r.TotalAmount,
			r.PaymentMode,
		}
		for _, m := range modes {
			row = append(row, ModeAmount(r.Bill, m.ModeName))
		}
		row = append(row, r.CreditDetails.CardNumber, r.CreditDetails.Bank, r.CreditDetails.Amount)
		t.Rows = append(t.Rows, row)
	}

	footer := []any{"Total", Blank, Blank, Blank, Blank, Blank, Blank, Blank,
		totals.GrossAmount, totals.Discount, totals.Amount, totals.CGST, totals.SGST, Blank, totals.RoundOff, totals.TotalAmount,
		Blank,
	}
	for range modes {
		footer = append(footer, Blank)
	}
	footer = append(footer, Blank, Blank, totals.CardAmount)
	t.Totals = footer
}

// Aggregate returns the typed aggregator output for a category, as served
// alongside the formatted table.
func Aggregate(category Category, bills []Bill, now time.Time) (any, error) {
	switch category {
	case CategoryBillSummary:
		rows, totals := BillSummary(bills)
		return map[string]any{"rows": rows, "totals": totals}, nil
	case CategoryCreditSummary:
		return CreditSummary(bills), nil
	case CategoryDiscountSummary:
		return DiscountSummary(bills), nil
	case CategoryReverseKOTs:
		return ReverseKOTs(bills), nil
	case CategoryKitchenWise:
		return KitchenWiseSales(bills), nil
	case CategoryNCKOT:
		return NCKOTDetails(bills), nil
	case CategoryAPCAPP:
		return APCAPPSummary(bills), nil
	case CategorySpecialItems:
		return SpecialItemsSummary(bills), nil
	case CategoryInterDeptCash:
		return InterDeptCash(bills), nil
	case CategoryDailySalesUserShift:
		return DailySalesByUserShift(bills), nil
	case CategoryMonthlySales:
		return MonthlySales(bills), nil
	case CategoryPaymentModeSales:
		return PaymentModeSales(bills), nil
	case CategoryKitchenAllocation:
		return KitchenAllocation(bills), nil
	case CategoryDayEnd:
		return DayEnd(bills), nil
	case CategoryHandover:
		return Handover(bills, now), nil
	case CategoryBillReprinted:
		return BillReprinted(bills), nil
	case CategoryKOTUsedSummary:
		return KOTUsedSummary(bills), nil
	default:
		return nil, ErrUnknownCategory
	}
}

func text(key, label string) Column    { return Column{Key: key, Label: label, Kind: KindText} }
func money(key, label string) Column   { return Column{Key: key, Label: label, Kind: KindMoney} }
func integer(key, label string) Column { return Column{Key: key, Label: label, Kind: KindInt} }
