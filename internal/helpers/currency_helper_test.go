package helpers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"salesos-api/internal/helpers"
)

func TestRoundMoney(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected float64
	}{
		{"already two places", 12.34, 12.34},
		{"rounds down", 12.344, 12.34},
		{"rounds up", 12.346, 12.35},
		{"half rounds away from zero", 12.345000001, 12.35},
		{"negative half rounds away from zero", -12.346, -12.35},
		{"zero", 0, 0},
		{"float accumulation noise", 0.1 + 0.2, 0.30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, helpers.RoundMoney(tt.amount))
		})
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		currency string
		expected string
	}{
		{"pounds with grouping", 1500, "GBP", "£1,500.00"},
		{"large amount", 1234567.89, "GBP", "£1,234,567.89"},
		{"euros", 99.9, "EUR", "€99.90"},
		{"dirhams use a textual prefix", 250, "AED", "AED 250.00"},
		{"unknown code falls back to the code", 10, "SEK", "SEK 10.00"},
		{"lowercase input", 42, "usd", "$42.00"},
		{"negative amount", -1500.5, "GBP", "-£1,500.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, helpers.FormatAmount(tt.amount, tt.currency))
		})
	}
}

func TestValidateCurrencyCode(t *testing.T) {
	assert.NoError(t, helpers.ValidateCurrencyCode("GBP"))
	assert.NoError(t, helpers.ValidateCurrencyCode(" eur "))
	assert.Error(t, helpers.ValidateCurrencyCode("GB"))
	assert.Error(t, helpers.ValidateCurrencyCode("POUND"))
	assert.Error(t, helpers.ValidateCurrencyCode("G1P"))
	assert.Error(t, helpers.ValidateCurrencyCode(""))
}

func TestNormalizeCodes(t *testing.T) {
	assert.Equal(t, "GBP", helpers.NormalizeCurrencyCode(" gbp "))
	assert.Equal(t, "GB", helpers.NormalizeCountryCode("gb"))
	assert.Equal(t, "", helpers.NormalizeCountryCode("  "))
}
