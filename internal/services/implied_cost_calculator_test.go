package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"salesos-api/internal/constants"
	"salesos-api/internal/services"
)

func TestCalculateImpliedCosts(t *testing.T) {
	calc := services.NewImpliedCostCalculator()

	tests := []struct {
		name            string
		items           []services.LineItem
		paymentMethod   string
		deliveryCountry string
		expected        services.ImpliedCosts
	}{
		{
			name:            "empty item list returns zeros",
			items:           nil,
			paymentMethod:   constants.PaymentMethodCard,
			deliveryCountry: "GB",
			expected:        services.ImpliedCosts{},
		},
		{
			name: "domestic delivery paid by card",
			items: []services.LineItem{
				{SellPrice: 1000, SellCurrency: "GBP", BuyPrice: 800, BuyCurrency: "GBP", Quantity: 2},
			},
			paymentMethod:   constants.PaymentMethodCard,
			deliveryCountry: "GB",
			expected: services.ImpliedCosts{
				Shipping: 10.00,
				CardFees: 58.00,
				Total:    68.00,
			},
		},
		{
			name: "international delivery paid by bank transfer",
			items: []services.LineItem{
				{SellPrice: 1000, SellCurrency: "GBP", BuyPrice: 800, BuyCurrency: "GBP", Quantity: 2},
			},
			paymentMethod:   constants.PaymentMethodBankTransfer,
			deliveryCountry: "FR",
			expected: services.ImpliedCosts{
				Shipping: 30.00,
				CardFees: 0,
				Total:    30.00,
			},
		},
		{
			name: "sell total spans multiple items",
			items: []services.LineItem{
				{SellPrice: 1500, SellCurrency: "GBP", Quantity: 1},
				{SellPrice: 250, SellCurrency: "GBP", Quantity: 2},
			},
			paymentMethod:   constants.PaymentMethodCard,
			deliveryCountry: "US",
			expected: services.ImpliedCosts{
				Shipping: 30.00,
				CardFees: 58.00,
				Total:    88.00,
			},
		},
		{
			name: "fractional amounts round to pennies",
			items: []services.LineItem{
				{SellPrice: 1001, SellCurrency: "GBP", Quantity: 1},
			},
			paymentMethod:   constants.PaymentMethodCard,
			deliveryCountry: "gb",
			expected: services.ImpliedCosts{
				Shipping: 5.01,
				CardFees: 29.03,
				Total:    34.04,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.CalculateImpliedCosts(tt.items, tt.paymentMethod, tt.deliveryCountry)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestCalculateImpliedCostsIsDeterministic(t *testing.T) {
	calc := services.NewImpliedCostCalculator()
	items := []services.LineItem{
		{SellPrice: 2450.50, SellCurrency: "GBP", Quantity: 3},
	}

	first := calc.CalculateImpliedCosts(items, constants.PaymentMethodCard, "FR")
	second := calc.CalculateImpliedCosts(items, constants.PaymentMethodCard, "FR")
	assert.Equal(t, first, second)
}

func TestCalculateImpliedCostsWithCustomRates(t *testing.T) {
	calc := services.NewImpliedCostCalculatorWithRates(services.CostRateTable{
		CardFeeRate:               0.01,
		DomesticShippingRate:      0.02,
		InternationalShippingRate: 0.04,
	})
	items := []services.LineItem{
		{SellPrice: 1000, SellCurrency: "GBP", Quantity: 1},
	}

	got := calc.CalculateImpliedCosts(items, constants.PaymentMethodCard, "GB")
	assert.Equal(t, services.ImpliedCosts{Shipping: 20.00, CardFees: 10.00, Total: 30.00}, got)
}
