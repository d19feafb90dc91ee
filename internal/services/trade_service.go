package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"

	"salesos-api/internal/client/xero"
	"salesos-api/internal/constants"
	"salesos-api/internal/db"
	"salesos-api/internal/helpers"
)

// TradeService runs the trade wizard's numbers and turns a submitted wizard
// payload into a persisted sale plus a Xero invoice.
type TradeService struct {
	queries      db.Querier
	invoicing    xero.InvoicingService
	email        *EmailService
	impliedCosts *ImpliedCostCalculator
	margins      *MarginCalculator
	tax          *TaxScenarioService
	advisor      *DealStructureAdvisor
	logger       *zap.Logger
}

// NewTradeService creates a new trade service. email may be nil when
// notifications are not configured.
func NewTradeService(queries db.Querier, invoicing xero.InvoicingService, email *EmailService, logger *zap.Logger) *TradeService {
	tax := NewTaxScenarioService()
	return &TradeService{
		queries:      queries,
		invoicing:    invoicing,
		email:        email,
		impliedCosts: NewImpliedCostCalculator(),
		margins:      NewMarginCalculator(),
		tax:          tax,
		advisor:      NewDealStructureAdvisor(tax),
		logger:       logger,
	}
}

// TradeQuoteParams is the wizard context needed to price a deal.
type TradeQuoteParams struct {
	Items           []LineItem
	PaymentMethod   string
	DeliveryCountry string
	SupplierCountry string
	VATReclaim      string
}

// TradeQuote aggregates every derived figure the wizard displays.
type TradeQuote struct {
	ImpliedCosts ImpliedCosts            `json:"implied_costs"`
	Margin       MarginResult            `json:"margin"`
	Scenario     *TaxScenario            `json:"tax_scenario,omitempty"`
	ImportExport ImportExportEstimate    `json:"import_export_estimate"`
	Suggestion   DealStructureSuggestion `json:"deal_structure_suggestion"`
}

// QuoteTrade runs the calculation chain: implied costs, then margin, then
// (when a supplier country is known) the duty estimate and the structuring
// advisor. Pure; recomputed from scratch on every call.
func (s *TradeService) QuoteTrade(params TradeQuoteParams) TradeQuote {
	implied := s.impliedCosts.CalculateImpliedCosts(params.Items, params.PaymentMethod, params.DeliveryCountry)

	var scenario *TaxScenario
	if params.SupplierCountry != "" {
		scenario = s.tax.ClassifyTaxScenario(params.SupplierCountry, params.DeliveryCountry, params.VATReclaim)
	}

	estimate := s.tax.EstimateImportExportTaxes(scenario, params.Items)

	var estimatedImportExport *float64
	if scenario != nil {
		total := estimate.Total
		estimatedImportExport = &total
	}
	margin := s.margins.CalculateMargin(params.Items, implied, estimatedImportExport)

	return TradeQuote{
		ImpliedCosts: implied,
		Margin:       margin,
		Scenario:     scenario,
		ImportExport: estimate,
		Suggestion:   s.advisor.SuggestDealStructure(scenario, params.Items),
	}
}

// SubmitTradeItem is a wizard line item resolved to a persisted supplier.
type SubmitTradeItem struct {
	LineItem
	SupplierID uuid.UUID
}

// SubmitTradeParams is the assembled wizard payload.
type SubmitTradeParams struct {
	ShopperID       *uuid.UUID
	BuyerID         uuid.UUID
	PaymentMethod   string
	DeliveryCountry string
	Items           []SubmitTradeItem
	NotifyEmail     string
}

// TradeSubmission is what the wizard gets back after submitting.
type TradeSubmission struct {
	Sale    db.Sale       `json:"sale"`
	Quote   TradeQuote    `json:"quote"`
	Invoice *xero.Invoice `json:"invoice,omitempty"`
}

// SubmitTrade validates the payload, prices the deal, persists the sale and
// its items with the tax scenario embedded, raises the Xero invoice and
// sends the notification email. If invoicing fails the sale stays in
// "submitted" status so it can be re-invoiced.
func (s *TradeService) SubmitTrade(ctx context.Context, params SubmitTradeParams) (*TradeSubmission, error) {
	if err := validateTradeItems(params.Items); err != nil {
		return nil, err
	}

	buyer, err := s.queries.GetBuyer(ctx, params.BuyerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load buyer: %w", err)
	}

	items := make([]LineItem, len(params.Items))
	for i, item := range params.Items {
		items[i] = item.LineItem
	}

	quote := s.QuoteTrade(TradeQuoteParams{
		Items:           items,
		PaymentMethod:   params.PaymentMethod,
		DeliveryCountry: params.DeliveryCountry,
		SupplierCountry: params.Items[0].SupplierCountry,
		VATReclaim:      buyer.VatReclaim.String,
	})

	sale, err := s.persistSale(ctx, params, quote)
	if err != nil {
		return nil, err
	}

	invoice, err := s.raiseInvoice(ctx, buyer, sale, params.Items, quote)
	if err != nil {
		s.logger.Error("Invoice creation failed; sale left in submitted status",
			zap.Error(err),
			zap.String("sale_id", sale.ID.String()),
			zap.String("reference", sale.Reference))
		return &TradeSubmission{Sale: sale, Quote: quote}, nil
	}

	sale, err = s.queries.UpdateSaleXeroInvoice(ctx, db.UpdateSaleXeroInvoiceParams{
		ID:            sale.ID,
		XeroInvoiceID: pgtype.Text{String: invoice.ID, Valid: true},
		Status:        constants.SaleStatusInvoiced,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record invoice on sale: %w", err)
	}

	s.notify(ctx, params.NotifyEmail, sale, quote, invoice, len(params.Items))

	s.logger.Info("Trade submitted",
		zap.String("sale_id", sale.ID.String()),
		zap.String("reference", sale.Reference),
		zap.Float64("commissionable_margin_gbp", quote.Margin.CommissionableMarginGBP))

	return &TradeSubmission{Sale: sale, Quote: quote, Invoice: invoice}, nil
}

// validateTradeItems enforces the invariants the wizard promises: between 1
// and the maximum number of items, and a positive FX rate whenever an item
// crosses currencies.
func validateTradeItems(items []SubmitTradeItem) error {
	if len(items) == 0 {
		return fmt.Errorf("a trade needs at least one item")
	}
	if len(items) > constants.MaxTradeItems {
		return fmt.Errorf("a trade cannot have more than %d items", constants.MaxTradeItems)
	}
	for _, item := range items {
		if item.Quantity < 1 {
			return fmt.Errorf("item quantity must be at least 1")
		}
		if helpers.NormalizeCurrencyCode(item.BuyCurrency) != helpers.NormalizeCurrencyCode(item.SellCurrency) {
			if item.FxRate == nil || *item.FxRate <= 0 {
				return fmt.Errorf("cross-currency item %q requires a positive fx rate", item.Brand)
			}
		}
	}
	return nil
}

// tradeReferenceAttempts bounds the retry loop when a generated reference
// collides with an existing sale.
const tradeReferenceAttempts = 3

// persistSale creates the sale row and its items in one transaction, so a
// failed item insert never leaves a partial sale behind. References derive
// from the sale count, so two concurrent submissions can race to the same
// one; the unique constraint on sales.reference surfaces the loser as a
// unique violation, which retries with the next number.
func (s *TradeService) persistSale(ctx context.Context, params SubmitTradeParams, quote TradeQuote) (db.Sale, error) {
	var shopperID pgtype.UUID
	if params.ShopperID != nil {
		shopperID = pgtype.UUID{Bytes: *params.ShopperID, Valid: true}
	}

	var estimated pgtype.Float8
	if quote.Scenario != nil {
		estimated = pgtype.Float8{Float64: quote.ImportExport.Total, Valid: true}
	}

	for attempt := int64(0); attempt < tradeReferenceAttempts; attempt++ {
		reference, err := s.generateTradeReference(ctx, attempt)
		if err != nil {
			return db.Sale{}, err
		}

		var sale db.Sale
		err = s.runInTx(ctx, func(q db.Querier) error {
			var err error
			sale, err = q.CreateSale(ctx, db.CreateSaleParams{
				Reference:                reference,
				ShopperID:                shopperID,
				BuyerID:                  params.BuyerID,
				PaymentMethod:            params.PaymentMethod,
				DeliveryCountry:          helpers.NormalizeCountryCode(params.DeliveryCountry),
				Status:                   constants.SaleStatusSubmitted,
				GrossMarginGbp:           quote.Margin.GrossMarginGBP,
				CommissionableMarginGbp:  quote.Margin.CommissionableMarginGBP,
				EstimatedImportExportGbp: estimated,
			})
			if err != nil {
				return fmt.Errorf("failed to create sale: %w", err)
			}

			for _, item := range params.Items {
				if _, err := q.CreateSaleItem(ctx, s.toSaleItemParams(sale.ID, item, quote.Scenario)); err != nil {
					return fmt.Errorf("failed to create sale item: %w", err)
				}
			}
			return nil
		})
		if err == nil {
			return sale, nil
		}
		if isUniqueViolation(err) {
			s.logger.Warn("Trade reference collided, retrying",
				zap.String("reference", reference))
			continue
		}
		return db.Sale{}, err
	}

	return db.Sale{}, fmt.Errorf("could not allocate a unique trade reference after %d attempts", tradeReferenceAttempts)
}

// runInTx executes fn inside a transaction when the query layer supports
// one, and directly against the queries otherwise.
func (s *TradeService) runInTx(ctx context.Context, fn func(db.Querier) error) error {
	if runner, ok := s.queries.(db.TxRunner); ok {
		return runner.ExecTx(ctx, fn)
	}
	return fn(s.queries)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (s *TradeService) generateTradeReference(ctx context.Context, offset int64) (string, error) {
	count, err := s.queries.CountSales(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to generate trade reference: %w", err)
	}
	return fmt.Sprintf("SO-%05d", count+1+offset), nil
}

func (s *TradeService) toSaleItemParams(saleID uuid.UUID, item SubmitTradeItem, scenario *TaxScenario) db.CreateSaleItemParams {
	arg := db.CreateSaleItemParams{
		SaleID:       saleID,
		Brand:        item.Brand,
		Category:     item.Category,
		Description:  pgtype.Text{String: item.Description, Valid: item.Description != ""},
		Quantity:     item.Quantity,
		SupplierID:   item.SupplierID,
		BuyPrice:     item.BuyPrice,
		BuyCurrency:  helpers.NormalizeCurrencyCode(item.BuyCurrency),
		SellPrice:    item.SellPrice,
		SellCurrency: helpers.NormalizeCurrencyCode(item.SellCurrency),
	}
	if item.FxRate != nil {
		arg.FxRate = pgtype.Float8{Float64: *item.FxRate, Valid: true}
	}
	if scenario != nil {
		arg.AccountCode = pgtype.Text{String: scenario.AccountCode, Valid: true}
		arg.TaxType = pgtype.Text{String: scenario.TaxType, Valid: true}
		arg.TaxLabel = pgtype.Text{String: scenario.TaxLabel, Valid: true}
	}
	return arg
}

// raiseInvoice finds or creates the buyer's Xero contact and creates the
// accounts-receivable invoice for the sale.
func (s *TradeService) raiseInvoice(ctx context.Context, buyer db.Buyer, sale db.Sale, items []SubmitTradeItem, quote TradeQuote) (*xero.Invoice, error) {
	contactID := buyer.XeroContactID.String
	if contactID == "" {
		contact, err := s.invoicing.FindContactByName(ctx, buyer.Name)
		if err != nil {
			return nil, err
		}
		if contact == nil {
			created, err := s.invoicing.CreateContact(ctx, xero.Contact{Name: buyer.Name, Email: buyer.Email.String})
			if err != nil {
				return nil, err
			}
			contact = &created
		}
		contactID = contact.ID

		if err := s.queries.UpdateBuyerXeroContact(ctx, db.UpdateBuyerXeroContactParams{
			ID:            buyer.ID,
			XeroContactID: pgtype.Text{String: contactID, Valid: true},
		}); err != nil {
			return nil, err
		}
	}

	lineItems := make([]xero.InvoiceLineItem, len(items))
	for i, item := range items {
		line := xero.InvoiceLineItem{
			Description: fmt.Sprintf("%s %s", item.Brand, item.Category),
			Quantity:    float64(item.Quantity),
			UnitAmount:  item.SellPrice,
		}
		if quote.Scenario != nil {
			line.AccountCode = quote.Scenario.AccountCode
			line.TaxType = quote.Scenario.TaxType
		}
		lineItems[i] = line
	}

	invoiceParams := xero.InvoiceParams{
		ContactID:    contactID,
		Reference:    sale.Reference,
		CurrencyCode: helpers.NormalizeCurrencyCode(items[0].SellCurrency),
		LineItems:    lineItems,
	}
	if quote.Scenario != nil {
		invoiceParams.LineAmountTypes = quote.Scenario.LineAmountTypes
	}

	invoice, err := s.invoicing.CreateInvoice(ctx, invoiceParams)
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

// notify sends the trade-submitted email. Best effort: a failed email never
// fails the submission.
func (s *TradeService) notify(ctx context.Context, toEmail string, sale db.Sale, quote TradeQuote, invoice *xero.Invoice, itemCount int) {
	if s.email == nil || toEmail == "" {
		return
	}

	buyer, err := s.queries.GetBuyer(ctx, sale.BuyerID)
	if err != nil {
		s.logger.Warn("Skipping trade email, buyer lookup failed", zap.Error(err))
		return
	}

	data := TradeEmailData{
		Reference:               sale.Reference,
		BuyerName:               buyer.Name,
		ItemCount:               itemCount,
		GrossMarginGBP:          helpers.FormatAmount(quote.Margin.GrossMarginGBP, constants.GBPCurrency),
		CommissionableMarginGBP: helpers.FormatAmount(quote.Margin.CommissionableMarginGBP, constants.GBPCurrency),
	}
	if invoice != nil {
		data.XeroInvoiceNumber = invoice.InvoiceNumber
	}

	if err := s.email.SendTradeSubmittedEmail(ctx, toEmail, data); err != nil {
		s.logger.Warn("Trade submitted email failed", zap.Error(err), zap.String("reference", sale.Reference))
	}
}
