package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salesos-api/internal/constants"
	"salesos-api/internal/services"
)

func TestClassifyTaxScenario(t *testing.T) {
	svc := services.NewTaxScenarioService()

	tests := []struct {
		name            string
		supplierCountry string
		deliveryCountry string
		vatReclaim      string
		wantAccountCode string
		wantLiability   string
		wantLineAmounts string
	}{
		{
			name:            "delivery abroad is an export regardless of supplier",
			supplierCountry: "FR",
			deliveryCountry: "US",
			wantAccountCode: constants.ExportSalesAccountCode,
			wantLiability:   "Export",
			wantLineAmounts: "NoTax",
		},
		{
			name:            "UK supplier delivering abroad is still an export",
			supplierCountry: "GB",
			deliveryCountry: "AE",
			wantAccountCode: constants.ExportSalesAccountCode,
			wantLiability:   "Export",
			wantLineAmounts: "NoTax",
		},
		{
			name:            "both sides UK is domestic",
			supplierCountry: "GB",
			deliveryCountry: "GB",
			wantAccountCode: constants.DomesticSalesAccountCode,
			wantLiability:   "None",
			wantLineAmounts: "Inclusive",
		},
		{
			name:            "foreign supplier delivering to UK is an import",
			supplierCountry: "IT",
			deliveryCountry: "GB",
			vatReclaim:      services.VATReclaimCapable,
			wantAccountCode: constants.ImportSalesAccountCode,
			wantLiability:   "Import",
			wantLineAmounts: "Exclusive",
		},
		{
			name:            "lowercase country codes are normalized",
			supplierCountry: "it",
			deliveryCountry: "gb",
			wantAccountCode: constants.ImportSalesAccountCode,
			wantLiability:   "Import",
			wantLineAmounts: "Exclusive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scenario := svc.ClassifyTaxScenario(tt.supplierCountry, tt.deliveryCountry, tt.vatReclaim)
			require.NotNil(t, scenario)
			assert.Equal(t, tt.wantAccountCode, scenario.AccountCode)
			assert.Equal(t, tt.wantLiability, scenario.TaxLiability)
			assert.Equal(t, tt.wantLineAmounts, scenario.LineAmountTypes)
			assert.Equal(t, tt.vatReclaim, scenario.VATReclaim)
		})
	}
}

func TestEstimateImportExportTaxes(t *testing.T) {
	svc := services.NewTaxScenarioService()

	gbpItems := []services.LineItem{
		{BuyPrice: 1000, BuyCurrency: "GBP", SellPrice: 1500, SellCurrency: "GBP", Quantity: 1},
	}

	tests := []struct {
		name     string
		scenario *services.TaxScenario
		items    []services.LineItem
		expected services.ImportExportEstimate
	}{
		{
			name:     "nil scenario yields zeros",
			scenario: nil,
			items:    gbpItems,
			expected: services.ImportExportEstimate{},
		},
		{
			name:     "no items yields zeros",
			scenario: svc.ClassifyTaxScenario("FR", "GB", services.VATReclaimCapable),
			items:    nil,
			expected: services.ImportExportEstimate{},
		},
		{
			name:     "import with reclaim gets VAT and duty",
			scenario: svc.ClassifyTaxScenario("FR", "GB", services.VATReclaimCapable),
			items:    gbpItems,
			expected: services.ImportExportEstimate{ImportVAT: 200.00, Duty: 20.00, Total: 220.00},
		},
		{
			name:     "import without reclaim still pays duty",
			scenario: svc.ClassifyTaxScenario("FR", "GB", services.VATReclaimIncapable),
			items:    gbpItems,
			expected: services.ImportExportEstimate{ImportVAT: 0, Duty: 20.00, Total: 20.00},
		},
		{
			name:     "domestic deal has no duty even with reclaim capability",
			scenario: svc.ClassifyTaxScenario("GB", "GB", services.VATReclaimCapable),
			items:    gbpItems,
			expected: services.ImportExportEstimate{ImportVAT: 200.00, Duty: 0, Total: 200.00},
		},
		{
			name:     "export deal has no duty",
			scenario: svc.ClassifyTaxScenario("FR", "US", services.VATReclaimIncapable),
			items:    gbpItems,
			expected: services.ImportExportEstimate{},
		},
		{
			name:     "export deal has no duty even with reclaim capability",
			scenario: svc.ClassifyTaxScenario("FR", "US", services.VATReclaimCapable),
			items:    gbpItems,
			expected: services.ImportExportEstimate{ImportVAT: 200.00, Duty: 0, Total: 200.00},
		},
		{
			name:     "non-GBP buy items are excluded from the base",
			scenario: svc.ClassifyTaxScenario("FR", "GB", services.VATReclaimCapable),
			items: []services.LineItem{
				{BuyPrice: 5000, BuyCurrency: "EUR", SellPrice: 7000, SellCurrency: "GBP", Quantity: 1},
				{BuyPrice: 1000, BuyCurrency: "GBP", SellPrice: 1500, SellCurrency: "GBP", Quantity: 1},
			},
			expected: services.ImportExportEstimate{ImportVAT: 200.00, Duty: 20.00, Total: 220.00},
		},
		{
			name:     "quantity multiplies the base",
			scenario: svc.ClassifyTaxScenario("FR", "GB", services.VATReclaimCapable),
			items: []services.LineItem{
				{BuyPrice: 1000, BuyCurrency: "GBP", SellPrice: 1500, SellCurrency: "GBP", Quantity: 2},
			},
			expected: services.ImportExportEstimate{ImportVAT: 400.00, Duty: 40.00, Total: 440.00},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.EstimateImportExportTaxes(tt.scenario, tt.items)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestEstimateImportExportTaxesIsDeterministic(t *testing.T) {
	svc := services.NewTaxScenarioService()
	scenario := svc.ClassifyTaxScenario("CH", "GB", services.VATReclaimCapable)
	items := []services.LineItem{
		{BuyPrice: 12345.67, BuyCurrency: "GBP", SellPrice: 16000, SellCurrency: "GBP", Quantity: 1},
	}

	first := svc.EstimateImportExportTaxes(scenario, items)
	second := svc.EstimateImportExportTaxes(scenario, items)
	assert.Equal(t, first, second)
}
