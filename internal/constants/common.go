package constants

// Common string constants used throughout the codebase
const (
	// Log levels
	ErrorLevel = "error"

	// Environments
	ProdEnvironment = "prod"

	// User roles
	AdminRole   = "admin"
	BrokerRole  = "broker"
	ShopperRole = "shopper"

	// Payment methods
	PaymentMethodCard         = "CARD"
	PaymentMethodBankTransfer = "BANK_TRANSFER"

	// Currencies
	GBPCurrency = "GBP"

	// The brokerage trades out of the UK; deals are classified
	// domestic/import/export relative to this country.
	HomeCountry = "GB"

	// Sale statuses
	SaleStatusDraft     = "draft"
	SaleStatusSubmitted = "submitted"
	SaleStatusInvoiced  = "invoiced"
	SaleStatusPaid      = "paid"

	// Xero account codes
	ExportSalesAccountCode   = "200"
	DomesticSalesAccountCode = "201"
	ImportSalesAccountCode   = "202"

	// MaxTradeItems caps line items per trade (wizard enforces the same limit)
	MaxTradeItems = 3
)
