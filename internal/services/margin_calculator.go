package services

import (
	"salesos-api/internal/constants"
	"salesos-api/internal/helpers"
)

// MarginCalculator computes gross and commissionable margin for a set of
// line items. Stateless; safe for concurrent use.
type MarginCalculator struct{}

// NewMarginCalculator creates a new margin calculator
func NewMarginCalculator() *MarginCalculator {
	return &MarginCalculator{}
}

// CalculateMargin computes the GBP gross margin and the commissionable
// margin (gross margin less implied costs and the import/export estimate).
//
// Gross margin sums (sell - buy) x quantity only over items where buy AND
// sell currency are both GBP. Cross-currency items contribute zero; they are
// excluded rather than FX-converted so the reported figure never depends on
// a guessed rate. A nil estimatedImportExportGBP is treated as zero.
func (mc *MarginCalculator) CalculateMargin(items []LineItem, impliedCosts ImpliedCosts, estimatedImportExportGBP *float64) MarginResult {
	var gross float64
	for _, item := range items {
		if helpers.NormalizeCurrencyCode(item.BuyCurrency) != constants.GBPCurrency ||
			helpers.NormalizeCurrencyCode(item.SellCurrency) != constants.GBPCurrency {
			continue
		}
		gross += (item.SellPrice - item.BuyPrice) * float64(item.Quantity)
	}
	gross = helpers.RoundMoney(gross)

	var importExport float64
	if estimatedImportExportGBP != nil {
		importExport = *estimatedImportExportGBP
	}

	return MarginResult{
		GrossMarginGBP:          gross,
		CommissionableMarginGBP: helpers.RoundMoney(gross - impliedCosts.Total - importExport),
	}
}
