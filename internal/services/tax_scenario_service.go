package services

import (
	"strings"

	"salesos-api/internal/constants"
	"salesos-api/internal/helpers"
)

// Flat estimation rates. Import VAT applies when the brokerage acts as
// importer of record; customs duty applies to any deal that moves goods
// across the UK border in either direction.
const (
	ImportVATRate   = 0.20
	CustomsDutyRate = 0.02
)

// VAT-reclaim capability descriptors carried on buyer records. The
// estimator keys off the word "Can" appearing in the descriptor.
const (
	VATReclaimCapable   = "Can reclaim import VAT"
	VATReclaimIncapable = "Unable to reclaim import VAT"
)

// TaxScenarioService classifies deals into VAT/duty scenarios and produces
// rule-based import/export tax estimates. The estimates are indicative
// figures for margin planning, not an authoritative tax computation.
type TaxScenarioService struct{}

// NewTaxScenarioService creates a new tax scenario service
func NewTaxScenarioService() *TaxScenarioService {
	return &TaxScenarioService{}
}

// ClassifyTaxScenario derives the deal's VAT/duty treatment from where the
// goods come from and where they are going, relative to the home country:
//
//   - delivery outside the UK        -> export, zero-rated
//   - supplier and delivery both UK  -> domestic, standard VAT, no border liability
//   - supplier outside, delivery UK  -> import, duty applies, VAT per reclaim capability
func (s *TaxScenarioService) ClassifyTaxScenario(supplierCountry, deliveryCountry, vatReclaim string) *TaxScenario {
	supplier := helpers.NormalizeCountryCode(supplierCountry)
	delivery := helpers.NormalizeCountryCode(deliveryCountry)

	if delivery != constants.HomeCountry {
		return &TaxScenario{
			AccountCode:     constants.ExportSalesAccountCode,
			TaxType:         "ZERORATEDOUTPUT",
			TaxLabel:        "Export sale - zero-rated for UK VAT",
			TaxLiability:    "Export",
			LineAmountTypes: "NoTax",
			VATReclaim:      vatReclaim,
		}
	}

	if supplier == constants.HomeCountry {
		return &TaxScenario{
			AccountCode:     constants.DomesticSalesAccountCode,
			TaxType:         "OUTPUT2",
			TaxLabel:        "Domestic sale - UK VAT at 20%",
			TaxLiability:    "None",
			LineAmountTypes: "Inclusive",
			VATReclaim:      vatReclaim,
		}
	}

	label := "Import - brokerage is importer of record"
	if !strings.Contains(vatReclaim, "Can") {
		label = "Import - import VAT not reclaimable"
	}
	return &TaxScenario{
		AccountCode:     constants.ImportSalesAccountCode,
		TaxType:         "OUTPUT2",
		TaxLabel:        label,
		TaxLiability:    "Import",
		LineAmountTypes: "Exclusive",
		VATReclaim:      vatReclaim,
	}
}

// EstimateImportExportTaxes computes the estimated import VAT and customs
// duty for a deal, in GBP. Returns zeros when there is no scenario or no
// items.
//
// The base is the summed buy price of GBP-buy-currency items only;
// non-GBP buy-currency items are excluded, mirroring the gross-margin
// exclusion. Import VAT applies only when the reclaim descriptor indicates
// the brokerage can act as importer of record. Duty applies unless the deal
// is domestic (no border liability) or an export sale. The two rules are
// independent.
func (s *TaxScenarioService) EstimateImportExportTaxes(scenario *TaxScenario, items []LineItem) ImportExportEstimate {
	if scenario == nil || len(items) == 0 {
		return ImportExportEstimate{}
	}

	var totalBuyGBP float64
	for _, item := range items {
		if helpers.NormalizeCurrencyCode(item.BuyCurrency) != constants.GBPCurrency {
			continue
		}
		totalBuyGBP += item.BuyPrice * float64(item.Quantity)
	}

	var importVAT float64
	if strings.Contains(scenario.VATReclaim, "Can") {
		importVAT = helpers.RoundMoney(totalBuyGBP * ImportVATRate)
	}

	var duty float64
	if scenario.TaxLiability != "None" && scenario.AccountCode != constants.ExportSalesAccountCode {
		duty = helpers.RoundMoney(totalBuyGBP * CustomsDutyRate)
	}

	return ImportExportEstimate{
		ImportVAT: importVAT,
		Duty:      duty,
		Total:     helpers.RoundMoney(importVAT + duty),
	}
}
