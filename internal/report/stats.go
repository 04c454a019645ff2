package report

import "github.com/shopspring/decimal"

// SummaryStats are the headline figures shown above every report table.
// They always cover the whole filtered set, whatever the category.
type SummaryStats struct {
	TotalBills    int             `json:"totalBills"`
	TotalSales    decimal.Decimal `json:"totalSales"`
	TotalDiscount decimal.Decimal `json:"totalDiscount"`
	TotalTax      decimal.Decimal `json:"totalTax"`
	TotalQty      int64           `json:"totalQty"`
}

func Stats(bills []Bill) SummaryStats {
	stats := SummaryStats{TotalBills: len(bills)}
	for _, b := range bills {
		stats.TotalSales = stats.TotalSales.Add(b.TotalAmount)
		stats.TotalDiscount = stats.TotalDiscount.Add(b.Discount)
		stats.TotalTax = stats.TotalTax.Add(b.Tax)
		stats.TotalQty += b.ItemsCount
	}
	return stats
}
