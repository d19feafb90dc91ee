package services

import (
	"salesos-api/internal/constants"
	"salesos-api/internal/helpers"
)

// CostRateTable holds the business rates used to infer shipping and
// card-processing costs from the sell value of a trade. The rates are
// business configuration, not user input.
type CostRateTable struct {
	// CardFeeRate is applied to the total sell value when the client pays
	// by card. Bank transfers incur no processing fee.
	CardFeeRate float64
	// DomesticShippingRate applies when the delivery country is the home
	// country; InternationalShippingRate applies everywhere else.
	DomesticShippingRate      float64
	InternationalShippingRate float64
}

// DefaultCostRates returns the standard rate table used in production.
func DefaultCostRates() CostRateTable {
	return CostRateTable{
		CardFeeRate:               0.029,
		DomesticShippingRate:      0.005,
		InternationalShippingRate: 0.015,
	}
}

// ImpliedCostCalculator derives the shipping and card-fee costs baked into
// a trade's sell price. All methods are pure and safe for concurrent use.
type ImpliedCostCalculator struct {
	rates CostRateTable
}

// NewImpliedCostCalculator creates a calculator with the default rate table
func NewImpliedCostCalculator() *ImpliedCostCalculator {
	return &ImpliedCostCalculator{rates: DefaultCostRates()}
}

// NewImpliedCostCalculatorWithRates creates a calculator with a custom rate table
func NewImpliedCostCalculatorWithRates(rates CostRateTable) *ImpliedCostCalculator {
	return &ImpliedCostCalculator{rates: rates}
}

// CalculateImpliedCosts derives shipping and card-processing costs from the
// total sell value of the items, conditioned on payment method and delivery
// destination. Returns an all-zero result for an empty item list. Quantities
// and prices are assumed non-negative; validation is the caller's concern.
func (c *ImpliedCostCalculator) CalculateImpliedCosts(items []LineItem, paymentMethod string, deliveryCountry string) ImpliedCosts {
	if len(items) == 0 {
		return ImpliedCosts{}
	}

	var sellTotal float64
	for _, item := range items {
		sellTotal += item.SellPrice * float64(item.Quantity)
	}

	shippingRate := c.rates.InternationalShippingRate
	if helpers.NormalizeCountryCode(deliveryCountry) == constants.HomeCountry {
		shippingRate = c.rates.DomesticShippingRate
	}
	shipping := helpers.RoundMoney(sellTotal * shippingRate)

	var cardFees float64
	if paymentMethod == constants.PaymentMethodCard {
		cardFees = helpers.RoundMoney(sellTotal * c.rates.CardFeeRate)
	}

	return ImpliedCosts{
		Shipping: shipping,
		CardFees: cardFees,
		Total:    helpers.RoundMoney(shipping + cardFees),
	}
}
