package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salesos-api/internal/services"
)

func TestSuggestDealStructure(t *testing.T) {
	tax := services.NewTaxScenarioService()
	advisor := services.NewDealStructureAdvisor(tax)

	t.Run("material saving on an import deal", func(t *testing.T) {
		scenario := tax.ClassifyTaxScenario("FR", "GB", services.VATReclaimCapable)
		items := []services.LineItem{
			{BuyPrice: 30000, BuyCurrency: "GBP", SellPrice: 40000, SellCurrency: "GBP", Quantity: 1},
		}

		got := advisor.SuggestDealStructure(scenario, items)

		// Current: 20% VAT + 2% duty on 30000. Direct shipment: nothing.
		assert.True(t, got.HasBetterAlternative)
		assert.Equal(t, 6600.00, got.CurrentDutiesGBP)
		require.NotNil(t, got.AlternativeDutiesGBP)
		assert.Equal(t, 0.00, *got.AlternativeDutiesGBP)
		require.NotNil(t, got.MarginDeltaGBP)
		assert.Equal(t, 6600.00, *got.MarginDeltaGBP)
		require.NotNil(t, got.AlternativeDescription)
		assert.Contains(t, *got.AlternativeDescription, "importer of record")
	})

	t.Run("saving below the threshold stays quiet", func(t *testing.T) {
		scenario := tax.ClassifyTaxScenario("FR", "GB", services.VATReclaimIncapable)
		items := []services.LineItem{
			{BuyPrice: 1000, BuyCurrency: "GBP", SellPrice: 1500, SellCurrency: "GBP", Quantity: 1},
		}

		got := advisor.SuggestDealStructure(scenario, items)

		assert.False(t, got.HasBetterAlternative)
		assert.Equal(t, 20.00, got.CurrentDutiesGBP)
		assert.Nil(t, got.AlternativeDutiesGBP)
		assert.Nil(t, got.MarginDeltaGBP)
	})

	t.Run("domestic deal has nothing to restructure", func(t *testing.T) {
		scenario := tax.ClassifyTaxScenario("GB", "GB", services.VATReclaimIncapable)
		items := []services.LineItem{
			{BuyPrice: 50000, BuyCurrency: "GBP", SellPrice: 65000, SellCurrency: "GBP", Quantity: 1},
		}

		got := advisor.SuggestDealStructure(scenario, items)

		assert.False(t, got.HasBetterAlternative)
		assert.Equal(t, 0.00, got.CurrentDutiesGBP)
	})

	t.Run("export deal has nothing to restructure", func(t *testing.T) {
		scenario := tax.ClassifyTaxScenario("FR", "US", services.VATReclaimIncapable)
		items := []services.LineItem{
			{BuyPrice: 50000, BuyCurrency: "GBP", SellPrice: 65000, SellCurrency: "GBP", Quantity: 1},
		}

		got := advisor.SuggestDealStructure(scenario, items)

		assert.False(t, got.HasBetterAlternative)
		assert.Equal(t, 0.00, got.CurrentDutiesGBP)
	})

	t.Run("nil scenario yields the zero suggestion", func(t *testing.T) {
		got := advisor.SuggestDealStructure(nil, []services.LineItem{{BuyPrice: 1, BuyCurrency: "GBP", Quantity: 1}})
		assert.Equal(t, services.DealStructureSuggestion{}, got)
	})
}

func TestSuggestDealStructureIsDeterministic(t *testing.T) {
	tax := services.NewTaxScenarioService()
	advisor := services.NewDealStructureAdvisor(tax)

	scenario := tax.ClassifyTaxScenario("CH", "GB", services.VATReclaimCapable)
	items := []services.LineItem{
		{BuyPrice: 12345.67, BuyCurrency: "GBP", SellPrice: 16000, SellCurrency: "GBP", Quantity: 1},
	}

	first := advisor.SuggestDealStructure(scenario, items)
	second := advisor.SuggestDealStructure(scenario, items)
	assert.Equal(t, first.CurrentDutiesGBP, second.CurrentDutiesGBP)
	assert.Equal(t, first.HasBetterAlternative, second.HasBetterAlternative)
	require.NotNil(t, first.MarginDeltaGBP)
	require.NotNil(t, second.MarginDeltaGBP)
	assert.Equal(t, *first.MarginDeltaGBP, *second.MarginDeltaGBP)
}

func TestSuggestDealStructureCustomThreshold(t *testing.T) {
	tax := services.NewTaxScenarioService()
	advisor := services.NewDealStructureAdvisorWithThreshold(tax, 10)

	scenario := tax.ClassifyTaxScenario("FR", "GB", services.VATReclaimIncapable)
	items := []services.LineItem{
		{BuyPrice: 1000, BuyCurrency: "GBP", SellPrice: 1500, SellCurrency: "GBP", Quantity: 1},
	}

	got := advisor.SuggestDealStructure(scenario, items)

	assert.True(t, got.HasBetterAlternative)
	require.NotNil(t, got.MarginDeltaGBP)
	assert.Equal(t, 20.00, *got.MarginDeltaGBP)
}
