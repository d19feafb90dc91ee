package services

import (
	"salesos-api/internal/constants"
	"salesos-api/internal/helpers"
)

// MaterialityThresholdGBP is the minimum margin improvement before the
// advisor surfaces an alternative deal structure.
const MaterialityThresholdGBP = 500.0

// DealStructureAdvisor compares the current deal's import/export cost
// against one predefined alternative routing and decides whether a
// restructuring hint is worth showing. Advisory only; nothing is ever
// applied automatically.
type DealStructureAdvisor struct {
	tax          *TaxScenarioService
	thresholdGBP float64
}

// NewDealStructureAdvisor creates an advisor with the standard threshold
func NewDealStructureAdvisor(tax *TaxScenarioService) *DealStructureAdvisor {
	return &DealStructureAdvisor{tax: tax, thresholdGBP: MaterialityThresholdGBP}
}

// NewDealStructureAdvisorWithThreshold creates an advisor with a custom threshold
func NewDealStructureAdvisorWithThreshold(tax *TaxScenarioService, thresholdGBP float64) *DealStructureAdvisor {
	return &DealStructureAdvisor{tax: tax, thresholdGBP: thresholdGBP}
}

// SuggestDealStructure estimates duties under the current scenario and
// under the alternative routing where the goods ship directly from the
// supplier to the client, with the client acting as importer of record.
// When the duty saving would improve margin by more than the materiality
// threshold, the suggestion is populated.
func (a *DealStructureAdvisor) SuggestDealStructure(scenario *TaxScenario, items []LineItem) DealStructureSuggestion {
	if scenario == nil || len(items) == 0 {
		return DealStructureSuggestion{}
	}

	current := a.tax.EstimateImportExportTaxes(scenario, items)
	suggestion := DealStructureSuggestion{CurrentDutiesGBP: current.Total}

	// Direct shipment only changes the cost structure when the goods would
	// otherwise be imported on the brokerage's books.
	if scenario.TaxLiability != "Import" {
		return suggestion
	}

	// Under direct shipment the sale completes before the goods cross the
	// border: export treatment, and no reclaim position for the brokerage.
	alternative := &TaxScenario{
		AccountCode:     constants.ExportSalesAccountCode,
		TaxType:         "ZERORATEDOUTPUT",
		TaxLabel:        "Direct shipment - client is importer of record",
		TaxLiability:    "Export",
		LineAmountTypes: "NoTax",
	}
	alternativeEstimate := a.tax.EstimateImportExportTaxes(alternative, items)

	marginDelta := helpers.RoundMoney(current.Total - alternativeEstimate.Total)
	if marginDelta <= a.thresholdGBP {
		return suggestion
	}

	altDuties := alternativeEstimate.Total
	description := "Ship directly from the supplier to the client, with the client as importer of record; the import VAT and duty estimated for this deal would fall away."
	suggestion.HasBetterAlternative = true
	suggestion.AlternativeDutiesGBP = &altDuties
	suggestion.MarginDeltaGBP = &marginDelta
	suggestion.AlternativeDescription = &description
	return suggestion
}
