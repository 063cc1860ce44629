package pricing

import (
	"testing"

	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestProcessingFee(t *testing.T) {
	tests := []struct {
		name     string
		subtotal int64
		want     int64
	}{
		{"zero", 0, 0},
		{"rounds down", 99, 1},     // 1.485
		{"half at 100", 100, 2},    // 1.5
		{"rounds half up", 300, 5}, // 4.5
		{"fifty thousand", 50_000, 750},
		{"just below cap", 133_300, 2000}, // 1999.5
		{"below saturation", 133_299, 1999},
		{"saturation point", 133_334, 2000},
		{"capped", 500_000, 2000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ProcessingFee(tt.subtotal))
		})
	}
}

func TestProcessingFee_MonotonicUntilCap(t *testing.T) {
	prev := ProcessingFee(0)
	for subtotal := int64(1); subtotal <= 200_000; subtotal += 7 {
		fee := ProcessingFee(subtotal)
		assert.GreaterOrEqual(t, fee, prev, "subtotal %d", subtotal)
		assert.LessOrEqual(t, fee, ProcessingFeeCap)
		prev = fee
	}
	assert.Equal(t, ProcessingFeeCap, prev)
}

func TestCompute(t *testing.T) {
	totals := Compute([]Line{{UnitPrice: 20_000, Quantity: 2}, {UnitPrice: 10_000, Quantity: 1}})
	assert.Equal(t, Totals{Subtotal: 50_000, ProcessingFee: 750, Total: 50_750}, totals)

	totals = Compute([]Line{{UnitPrice: 250_000, Quantity: 2}})
	assert.Equal(t, Totals{Subtotal: 500_000, ProcessingFee: 2000, Total: 502_000}, totals)

	assert.Equal(t, Totals{}, Compute(nil))
}

func TestCartAndOrderAgree(t *testing.T) {
	cart := []entity.CartItem{
		{ID: "a", Price: 12_500, Quantity: 3},
		{ID: "b", Price: 7_999, Quantity: 1},
	}
	order := []entity.OrderItem{
		{ProductID: "a", UnitPrice: 12_500, Quantity: 3},
		{ProductID: "b", UnitPrice: 7_999, Quantity: 1},
	}

	assert.Equal(t, Compute(FromCart(cart)), Compute(FromOrder(order)))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "₦0", Format("₦", 0))
	assert.Equal(t, "₦750", Format("₦", 750))
	assert.Equal(t, "₦50,750", Format("₦", 50_750))
	assert.Equal(t, "₦1,502,000", Format("₦", 1_502_000))
	assert.Equal(t, "-$1,000", Format("$", -1000))
}
