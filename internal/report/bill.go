package report

import (
	"strings"
	"time"

	"restaurant-backoffice/internal/utils"

	"github.com/shopspring/decimal"
)

const notAvailable = "N/A"

// RawOrder is an order object as returned by the backend report endpoint.
// Its shape is not trusted.
type RawOrder map[string]any

type PaymentMode struct {
	ID       int64  `json:"id"`
	ModeName string `json:"mode_name"`
}

type Bill struct {
	OrderNo  string `json:"orderNo"`
	BillNo   string `json:"billNo"`
	KotNo    string `json:"kotNo"`
	RevKotNo string `json:"revKotNo,omitempty"`
	NCKot    string `json:"ncKot,omitempty"`

	GrossAmount   decimal.Decimal `json:"grossAmount"`
	Discount      decimal.Decimal `json:"discount"`
	Amount        decimal.Decimal `json:"amount"`
	CGST          decimal.Decimal `json:"cgst"`
	SGST          decimal.Decimal `json:"sgst"`
	Tax           decimal.Decimal `json:"tax"`
	Cess          decimal.Decimal `json:"cess"`
	RoundOff      decimal.Decimal `json:"roundOff"`
	RevAmt        decimal.Decimal `json:"revAmt"`
	ServiceCharge decimal.Decimal `json:"serviceCharge"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`

	PaymentMode  string `json:"paymentMode"`
	OrderType    string `json:"orderType"`
	CustomerName string `json:"customerName"`
	Address      string `json:"address"`
	Mobile       string `json:"mobile"`
	Waiter       string `json:"waiter"`
	Captain      string `json:"captain"`
	User         string `json:"user"`

	ItemsCount int64 `json:"itemsCount"`
	RevKot     bool  `json:"revKot"`

	Cash    decimal.Decimal `json:"cash"`
	Credit  decimal.Decimal `json:"credit"`
	Card    decimal.Decimal `json:"card"`
	GPay    decimal.Decimal `json:"gpay"`
	PhonePe decimal.Decimal `json:"phonepe"`
	QRCode  decimal.Decimal `json:"qrcode"`

	OutletID       int64  `json:"outletid"`
	OutletName     string `json:"outlet_name"`
	TableName      string `json:"table_name"`
	DepartmentName string `json:"department_name"`

	Date     time.Time `json:"date"`
	BillDate string    `json:"billDate"`

	// Extras holds any other numeric field of the raw order keyed by its
	// normalized name, so payment modes without a built-in column still resolve.
	Extras map[string]decimal.Decimal `json:"-"`
}

var knownRawKeys = map[string]struct{}{}

func init() {
	for _, key := range []string{
		"orderNo", "billNo", "kotNo", "revKotNo", "ncKot", "grossAmount", "discount", "amount",
		"cgst", "sgst", "tax", "cess", "roundOff", "revAmt", "serviceCharge", "serviceCharge_Amount",
		"totalAmount", "itemsCount", "items", "reverseBill", "cash", "credit", "card", "gpay",
		"phonepe", "qrcode", "outletid", "table", "pax", "igst", "water", "discPer",
	} {
		knownRawKeys[normalizeKey(key)] = struct{}{}
	}
}

// Normalize maps backend orders onto Bills. It never drops a record;
// the output has the same length and order as raw.
func Normalize(raw []RawOrder, now time.Time, loc *time.Location) []Bill {
	if loc == nil {
		loc = time.Local
	}
	bills := make([]Bill, 0, len(raw))
	for _, order := range raw {
		bills = append(bills, normalizeOrder(order, now, loc))
	}
	return bills
}

func normalizeOrder(order RawOrder, now time.Time, loc *time.Location) Bill {
	b := Bill{
		OrderNo:  order.text("orderNo"),
		KotNo:    order.text("kotNo"),
		RevKotNo: order.optionalText("revKotNo"),
		NCKot:    order.optionalText("ncKot"),

		GrossAmount: order.money("grossAmount"),
		Discount:    order.money("discount"),
		Amount:      order.money("amount"),
		CGST:        order.money("cgst"),
		SGST:        order.money("sgst"),
		Cess:        order.money("cess"),
		RoundOff:    order.money("roundOff"),
		RevAmt:      order.money("revAmt"),

		PaymentMode:  order.text("paymentMode"),
		CustomerName: order.text("customerName"),
		Address:      order.text("address"),
		Mobile:       order.text("mobile"),
		Waiter:       order.text("waiter"),
		Captain:      order.text("captain"),
		User:         order.text("user"),

		RevKot: IsReverseBill(order["reverseBill"]),

		Cash:    order.money("cash"),
		Credit:  order.money("credit"),
		Card:    order.money("card"),
		GPay:    order.money("gpay"),
		PhonePe: order.money("phonepe"),
		QRCode:  order.money("qrcode"),

		OutletName:     order.text("outlet_name"),
		TableName:      order.text("table_name"),
		DepartmentName: order.text("department_name"),
	}

	b.Tax = b.CGST.Add(b.SGST)

	b.BillNo = order.optionalText("billNo")
	if b.BillNo == "" {
		b.BillNo = b.OrderNo
	}

	if _, ok := order["totalAmount"]; ok {
		b.TotalAmount = order.money("totalAmount")
	} else {
		b.TotalAmount = b.Amount
	}

	if _, ok := order["serviceCharge"]; ok {
		b.ServiceCharge = order.money("serviceCharge")
	} else {
		b.ServiceCharge = order.money("serviceCharge_Amount")
	}

	if n, ok := utils.Int64FromAny(order["itemsCount"]); ok {
		b.ItemsCount = n
	} else if n, ok := utils.Int64FromAny(order["items"]); ok {
		b.ItemsCount = n
	}

	if id, ok := utils.Int64FromAny(order["outletid"]); ok {
		b.OutletID = id
	}

	b.OrderType = order.optionalText("orderType")
	if b.OrderType == "" {
		b.OrderType = deriveOrderType(order)
	}

	b.Date = resolveBillTime(order, now, loc)
	b.BillDate = utils.DateInLocation(b.Date, loc)

	for key, value := range order {
		normalized := normalizeKey(key)
		if _, known := knownRawKeys[normalized]; known {
			continue
		}
		if !utils.IsJSONNumber(value) {
			continue
		}
		if b.Extras == nil {
			b.Extras = make(map[string]decimal.Decimal)
		}
		b.Extras[normalized] = utils.DecimalFromAny(value)
	}

	return b
}

// IsReverseBill is the single normalization rule for the reverse-bill flag:
// the number 1, the string "1" and boolean true mean reversed.
func IsReverseBill(value any) bool {
	return flagSet(value)
}

func flagSet(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		return strings.TrimSpace(v) == "1"
	default:
		if !utils.IsNumeric(v) {
			return false
		}
		return utils.DecimalFromAny(v).Equal(decimal.NewFromInt(1))
	}
}

func deriveOrderType(order RawOrder) string {
	if flagSet(order["isHomeDelivery"]) {
		return "Delivery"
	}
	if flagSet(order["isPickup"]) {
		return "Pickup"
	}
	_, hasDelivery := order["isHomeDelivery"]
	_, hasPickup := order["isPickup"]
	if hasDelivery || hasPickup {
		return "Dine In"
	}
	return notAvailable
}

func resolveBillTime(order RawOrder, now time.Time, loc *time.Location) time.Time {
	for _, key := range []string{"date", "billDate", "time", "billedDate"} {
		if t, ok := utils.ParseDateTime(utils.StringFromAny(order[key]), loc); ok {
			return t
		}
	}
	return now.In(loc)
}

func (o RawOrder) text(key string) string {
	if value := o.optionalText(key); value != "" {
		return value
	}
	return notAvailable
}

func (o RawOrder) optionalText(key string) string {
	return utils.StringFromAny(o[key])
}

func (o RawOrder) money(key string) decimal.Decimal {
	return utils.DecimalFromAny(o[key])
}

func normalizeKey(value string) string {
	var sb strings.Builder
	sb.Grow(len(value))
	for _, r := range strings.ToLower(value) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
