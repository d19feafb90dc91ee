package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"salesos-api/internal/services"
)

func floatPtr(f float64) *float64 { return &f }

func TestCalculateMargin(t *testing.T) {
	calc := services.NewMarginCalculator()

	tests := []struct {
		name         string
		items        []services.LineItem
		impliedCosts services.ImpliedCosts
		importExport *float64
		expected     services.MarginResult
	}{
		{
			name: "single GBP item",
			items: []services.LineItem{
				{BuyPrice: 1000, BuyCurrency: "GBP", SellPrice: 1500, SellCurrency: "GBP", Quantity: 1},
			},
			expected: services.MarginResult{GrossMarginGBP: 500.00, CommissionableMarginGBP: 500.00},
		},
		{
			name: "quantity multiplies the per-unit margin",
			items: []services.LineItem{
				{BuyPrice: 1000, BuyCurrency: "GBP", SellPrice: 1500, SellCurrency: "GBP", Quantity: 3},
			},
			expected: services.MarginResult{GrossMarginGBP: 1500.00, CommissionableMarginGBP: 1500.00},
		},
		{
			name: "cross-currency items are excluded from gross margin",
			items: []services.LineItem{
				{BuyPrice: 1000, BuyCurrency: "EUR", SellPrice: 1500, SellCurrency: "GBP", Quantity: 1, FxRate: floatPtr(0.85)},
				{BuyPrice: 200, BuyCurrency: "GBP", SellPrice: 300, SellCurrency: "GBP", Quantity: 1},
			},
			expected: services.MarginResult{GrossMarginGBP: 100.00, CommissionableMarginGBP: 100.00},
		},
		{
			name: "implied costs reduce commissionable margin only",
			items: []services.LineItem{
				{BuyPrice: 1000, BuyCurrency: "GBP", SellPrice: 1500, SellCurrency: "GBP", Quantity: 1},
			},
			impliedCosts: services.ImpliedCosts{Shipping: 10, CardFees: 58, Total: 68},
			expected:     services.MarginResult{GrossMarginGBP: 500.00, CommissionableMarginGBP: 432.00},
		},
		{
			name: "import export estimate reduces commissionable margin",
			items: []services.LineItem{
				{BuyPrice: 1000, BuyCurrency: "GBP", SellPrice: 1500, SellCurrency: "GBP", Quantity: 1},
			},
			impliedCosts: services.ImpliedCosts{Total: 68},
			importExport: floatPtr(220.00),
			expected:     services.MarginResult{GrossMarginGBP: 500.00, CommissionableMarginGBP: 212.00},
		},
		{
			name: "commissionable margin can go negative",
			items: []services.LineItem{
				{BuyPrice: 1000, BuyCurrency: "GBP", SellPrice: 1050, SellCurrency: "GBP", Quantity: 1},
			},
			impliedCosts: services.ImpliedCosts{Total: 30},
			importExport: floatPtr(220.00),
			expected:     services.MarginResult{GrossMarginGBP: 50.00, CommissionableMarginGBP: -200.00},
		},
		{
			name: "accumulated fractions round to pennies",
			items: []services.LineItem{
				{BuyPrice: 0.10, BuyCurrency: "GBP", SellPrice: 0.30, SellCurrency: "GBP", Quantity: 3},
			},
			expected: services.MarginResult{GrossMarginGBP: 0.60, CommissionableMarginGBP: 0.60},
		},
		{
			name:     "no items yields zero margins",
			items:    nil,
			expected: services.MarginResult{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.CalculateMargin(tt.items, tt.impliedCosts, tt.importExport)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestCalculateMarginIsDeterministic(t *testing.T) {
	calc := services.NewMarginCalculator()
	items := []services.LineItem{
		{BuyPrice: 12345.67, BuyCurrency: "GBP", SellPrice: 16000, SellCurrency: "GBP", Quantity: 2},
	}
	implied := services.ImpliedCosts{Shipping: 160, CardFees: 928, Total: 1088}

	first := calc.CalculateMargin(items, implied, floatPtr(5432.10))
	second := calc.CalculateMargin(items, implied, floatPtr(5432.10))
	assert.Equal(t, first, second)
}
