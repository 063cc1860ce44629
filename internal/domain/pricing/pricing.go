// Package pricing computes order totals. Every view that shows a subtotal, fee or total
// (cart sheet, checkout, order details, invoice) goes through Compute so the numbers agree.
package pricing

import (
	"strconv"
	"strings"

	"storefront/internal/domain/entity"
)

const (
	// ProcessingFeeRate is the share of the subtotal charged for processing the bank transfer,
	// expressed in thousandths (15‰ = 1.5%).
	ProcessingFeeRate int64 = 15
	// ProcessingFeeCap is the ceiling of the processing fee in whole currency units.
	ProcessingFeeCap int64 = 2000
)

// Line is a priced quantity.
type Line struct {
	UnitPrice int64
	Quantity  int
}

// Totals is the derived breakdown shown to the shopper.
type Totals struct {
	Subtotal      int64 `json:"subtotal"`
	ProcessingFee int64 `json:"processingFee"`
	Total         int64 `json:"total"`
}

// ProcessingFee returns min(round(subtotal × 1.5%), 2000), rounding halves up.
// Integer arithmetic keeps x.5 boundaries exact.
func ProcessingFee(subtotal int64) int64 {
	if subtotal <= 0 {
		return 0
	}

	fee := (subtotal*ProcessingFeeRate + 500) / 1000

	return min(fee, ProcessingFeeCap)
}

// Subtotal returns Σ unit price × quantity.
func Subtotal(lines []Line) int64 {
	var subtotal int64
	for _, l := range lines {
		subtotal += l.UnitPrice * int64(l.Quantity)
	}

	return subtotal
}

// Compute returns subtotal, processing fee and grand total for the lines.
func Compute(lines []Line) Totals {
	subtotal := Subtotal(lines)
	fee := ProcessingFee(subtotal)

	return Totals{
		Subtotal:      subtotal,
		ProcessingFee: fee,
		Total:         subtotal + fee,
	}
}

// FromCart converts cart items to pricing lines.
func FromCart(items []entity.CartItem) []Line {
	lines := make([]Line, 0, len(items))
	for _, it := range items {
		lines = append(lines, Line{UnitPrice: it.Price, Quantity: it.Quantity})
	}

	return lines
}

// FromOrder converts order items to pricing lines.
func FromOrder(items []entity.OrderItem) []Line {
	lines := make([]Line, 0, len(items))
	for _, it := range items {
		lines = append(lines, Line{UnitPrice: it.UnitPrice, Quantity: it.Quantity})
	}

	return lines
}

// Format renders a whole-unit amount with thousands separators, e.g. Format("₦", 50750) == "₦50,750".
func Format(symbol string, amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)

	var b strings.Builder
	b.Grow(len(digits) + len(digits)/3 + len(symbol) + 1)
	b.WriteString(sign)
	b.WriteString(symbol)

	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}

	return b.String()
}
