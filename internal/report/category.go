package report

import (
	"fmt"
	"strings"
)

type Category string

const (
	CategoryBillSummary         Category = "billSummary"
	CategoryCreditSummary       Category = "creditSummary"
	CategoryDiscountSummary     Category = "discountSummary"
	CategoryReverseKOTs         Category = "reverseKOTs"
	CategoryKitchenWise         Category = "kitchenWise"
	CategoryNCKOT               Category = "ncKOT"
	CategoryAPCAPP              Category = "apcApp"
	CategorySpecialItems        Category = "specialItems"
	CategoryInterDeptCash       Category = "interDeptCash"
	CategoryDailySalesUserShift Category = "dailySalesUserShift"
	CategoryMonthlySales        Category = "monthlySales"
	CategoryPaymentModeSales    Category = "paymentModeSales"
	CategoryKitchenAllocation   Category = "kitchenAllocation"
	CategoryDayEnd              Category = "dayEnd"
	CategoryHandover            Category = "handover"
	CategoryBillReprinted       Category = "billReprinted"
	CategoryKOTUsedSummary      Category = "kotUsedSummary"
)

type categoryInfo struct {
	category Category
	title    string
}

var categories = []categoryInfo{
	{CategoryBillSummary, "Bill Summary"},
	{CategoryCreditSummary, "Credit Summary"},
	{CategoryDiscountSummary, "Discount Summary"},
	{CategoryReverseKOTs, "Reverse KOTs and Bills"},
	{CategoryKitchenWise, "Kitchen Wise Sales Summary"},
	{CategoryNCKOT, "NC KOT Details"},
	{CategoryAPCAPP, "APC / APP Summary"},
	{CategorySpecialItems, "Special Items Summary"},
	{CategoryInterDeptCash, "Inter Department Cash"},
	{CategoryDailySalesUserShift, "Daily Sales by User / Shift"},
	{CategoryMonthlySales, "Monthly Sales Summary"},
	{CategoryPaymentModeSales, "Payment Mode Sales Summary"},
	{CategoryKitchenAllocation, "Kitchen Allocation"},
	{CategoryDayEnd, "Day End Report"},
	{CategoryHandover, "Handover Report"},
	{CategoryBillReprinted, "Bill Reprinted Summary"},
	{CategoryKOTUsedSummary, "KOT Used Summary"},
}

func Categories() []Category {
	out := make([]Category, 0, len(categories))
	for _, c := range categories {
		out = append(out, c.category)
	}
	return out
}

// ParseCategory matches case-insensitively and defaults to the bill summary.
func ParseCategory(value string) (Category, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return CategoryBillSummary, nil
	}
	for _, c := range categories {
		if strings.EqualFold(string(c.category), value) {
			return c.category, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, value)
}

func (c Category) Title() string {
	for _, info := range categories {
		if info.category == c {
			return info.title
		}
	}
	return string(c)
}

func (c Category) SheetName() string {
	return string(c) + " Report"
}
