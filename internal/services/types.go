package services

// LineItem is a single line of a trade: an item bought from a supplier
// and sold on to a client. Items are assembled by the trade wizard (or an
// API caller) and passed through the calculators unchanged.
type LineItem struct {
	ID              string   `json:"id"`
	Brand           string   `json:"brand"`
	Category        string   `json:"category"`
	Description     string   `json:"description,omitempty"`
	Quantity        int32    `json:"quantity"`
	SupplierName    string   `json:"supplier_name"`
	SupplierCountry string   `json:"supplier_country"`
	BuyPrice        float64  `json:"buy_price"`
	BuyCurrency     string   `json:"buy_currency"`
	SellPrice       float64  `json:"sell_price"`
	SellCurrency    string   `json:"sell_currency"`
	FxRate          *float64 `json:"fx_rate,omitempty"`
	AccountCode     string   `json:"account_code,omitempty"`
	TaxType         string   `json:"tax_type,omitempty"`
	TaxLabel        string   `json:"tax_label,omitempty"`
}

// ImpliedCosts are shipping and card-processing costs baked into the sell
// price rather than entered by the user. Recomputed whenever items, payment
// method or delivery country change; never persisted.
type ImpliedCosts struct {
	Shipping float64 `json:"shipping"`
	CardFees float64 `json:"card_fees"`
	Total    float64 `json:"total"`
}

// MarginResult holds the derived margin figures for a set of line items.
// GrossMarginGBP only sums items where both currencies are GBP;
// cross-currency items are excluded rather than FX-converted so reported
// figures never depend on a guessed rate.
type MarginResult struct {
	GrossMarginGBP          float64 `json:"gross_margin_gbp"`
	CommissionableMarginGBP float64 `json:"commissionable_margin_gbp"`
}

// TaxScenario classifies a deal's VAT/duty treatment, derived from supplier
// country, delivery country and the buyer's VAT-reclaim capability. It is
// computed once per deal and embedded into each line item's tax fields at
// submission time, never persisted independently.
type TaxScenario struct {
	AccountCode     string `json:"account_code"`
	TaxType         string `json:"tax_type"`
	TaxLabel        string `json:"tax_label"`
	TaxLiability    string `json:"tax_liability"`
	LineAmountTypes string `json:"line_amount_types"`
	VATReclaim      string `json:"vat_reclaim"`
}

// ImportExportEstimate is the rule-based import VAT and customs duty
// estimate for a deal, in GBP. It is an estimate, not an authoritative tax
// computation, and is surfaced to users as such.
type ImportExportEstimate struct {
	ImportVAT float64 `json:"import_vat"`
	Duty      float64 `json:"duty"`
	Total     float64 `json:"total"`
}

// DealStructureSuggestion is an advisory hint that a different transaction
// routing would reduce duty cost. It is never persisted and never
// auto-applied; it only renders a banner.
type DealStructureSuggestion struct {
	HasBetterAlternative   bool     `json:"has_better_alternative"`
	CurrentDutiesGBP       float64  `json:"current_duties_gbp"`
	AlternativeDutiesGBP   *float64 `json:"alternative_duties_gbp,omitempty"`
	MarginDeltaGBP         *float64 `json:"margin_delta_gbp,omitempty"`
	AlternativeDescription *string  `json:"alternative_description,omitempty"`
}
