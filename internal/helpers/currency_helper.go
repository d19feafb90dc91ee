package helpers

import (
	"fmt"
	"math"
	"strings"
)

// currencySymbols maps ISO 4217 codes to display symbols for the
// currencies the brokerage actually trades in.
var currencySymbols = map[string]string{
	"GBP": "£",
	"EUR": "€",
	"USD": "$",
	"CHF": "CHF ",
	"JPY": "¥",
	"HKD": "HK$",
	"AED": "AED ",
}

// RoundMoney rounds a monetary amount to exactly 2 decimal places,
// half away from zero.
func RoundMoney(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// FormatAmount formats a monetary amount with its currency symbol,
// e.g. FormatAmount(1500, "GBP") -> "£1,500.00".
func FormatAmount(amount float64, currencyCode string) string {
	symbol, ok := currencySymbols[strings.ToUpper(strings.TrimSpace(currencyCode))]
	if !ok {
		symbol = strings.ToUpper(strings.TrimSpace(currencyCode)) + " "
	}

	negative := amount < 0
	amount = RoundMoney(math.Abs(amount))

	whole := int64(amount)
	fraction := int64(math.Round((amount - float64(whole)) * 100))

	formatted := groupThousands(whole)
	if negative {
		return fmt.Sprintf("-%s%s.%02d", symbol, formatted, fraction)
	}
	return fmt.Sprintf("%s%s.%02d", symbol, formatted, fraction)
}

// groupThousands inserts comma separators into a non-negative integer
func groupThousands(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteString(",")
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// ValidateCurrencyCode validates a currency code format
func ValidateCurrencyCode(code string) error {
	code = strings.TrimSpace(strings.ToUpper(code))

	// ISO 4217 currency codes are 3 characters
	if len(code) != 3 {
		return fmt.Errorf("currency code must be exactly 3 characters")
	}

	for _, char := range code {
		if char < 'A' || char > 'Z' {
			return fmt.Errorf("currency code must contain only uppercase letters")
		}
	}

	return nil
}

// NormalizeCurrencyCode trims and uppercases a currency code
func NormalizeCurrencyCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// NormalizeCountryCode trims and uppercases an ISO 3166-1 alpha-2 country code
func NormalizeCountryCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
