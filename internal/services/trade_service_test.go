package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"salesos-api/internal/client/xero"
	"salesos-api/internal/constants"
	"salesos-api/internal/db"
	"salesos-api/internal/services"
	"salesos-api/internal/testutil"
)

func gbpItem(buy, sell float64) services.LineItem {
	return services.LineItem{
		Brand:           "Rolex",
		Category:        "Watches",
		Quantity:        1,
		SupplierCountry: "FR",
		BuyPrice:        buy,
		BuyCurrency:     "GBP",
		SellPrice:       sell,
		SellCurrency:    "GBP",
	}
}

func TestQuoteTrade(t *testing.T) {
	svc := services.NewTradeService(new(testutil.MockQuerier), new(testutil.MockInvoicingService), nil, zap.NewNop())

	t.Run("full chain for an import deal paid by card", func(t *testing.T) {
		quote := svc.QuoteTrade(services.TradeQuoteParams{
			Items:           []services.LineItem{gbpItem(1000, 1500)},
			PaymentMethod:   constants.PaymentMethodCard,
			DeliveryCountry: "GB",
			SupplierCountry: "FR",
			VATReclaim:      services.VATReclaimCapable,
		})

		assert.Equal(t, services.ImpliedCosts{Shipping: 7.50, CardFees: 43.50, Total: 51.00}, quote.ImpliedCosts)
		require.NotNil(t, quote.Scenario)
		assert.Equal(t, constants.ImportSalesAccountCode, quote.Scenario.AccountCode)
		assert.Equal(t, services.ImportExportEstimate{ImportVAT: 200.00, Duty: 20.00, Total: 220.00}, quote.ImportExport)
		assert.Equal(t, 500.00, quote.Margin.GrossMarginGBP)
		assert.Equal(t, 229.00, quote.Margin.CommissionableMarginGBP)
	})

	t.Run("no supplier country skips classification and the estimate", func(t *testing.T) {
		quote := svc.QuoteTrade(services.TradeQuoteParams{
			Items:           []services.LineItem{gbpItem(1000, 1500)},
			PaymentMethod:   constants.PaymentMethodBankTransfer,
			DeliveryCountry: "GB",
		})

		assert.Nil(t, quote.Scenario)
		assert.Equal(t, services.ImportExportEstimate{}, quote.ImportExport)
		assert.Equal(t, 500.00, quote.Margin.GrossMarginGBP)
		// Only implied shipping comes off: 1500 * 0.005.
		assert.Equal(t, 492.50, quote.Margin.CommissionableMarginGBP)
	})
}

func TestSubmitTradeValidation(t *testing.T) {
	svc := services.NewTradeService(new(testutil.MockQuerier), new(testutil.MockInvoicingService), nil, zap.NewNop())
	ctx := context.Background()

	t.Run("rejects an empty trade", func(t *testing.T) {
		_, err := svc.SubmitTrade(ctx, services.SubmitTradeParams{BuyerID: uuid.New()})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least one item")
	})

	t.Run("rejects too many items", func(t *testing.T) {
		items := make([]services.SubmitTradeItem, constants.MaxTradeItems+1)
		for i := range items {
			items[i] = services.SubmitTradeItem{LineItem: gbpItem(100, 200), SupplierID: uuid.New()}
		}

		_, err := svc.SubmitTrade(ctx, services.SubmitTradeParams{BuyerID: uuid.New(), Items: items})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot have more than")
	})

	t.Run("rejects a cross-currency item without an fx rate", func(t *testing.T) {
		item := gbpItem(1000, 1500)
		item.BuyCurrency = "EUR"

		_, err := svc.SubmitTrade(ctx, services.SubmitTradeParams{
			BuyerID: uuid.New(),
			Items:   []services.SubmitTradeItem{{LineItem: item, SupplierID: uuid.New()}},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "fx rate")
	})
}

func TestSubmitTrade(t *testing.T) {
	ctx := context.Background()
	buyerID := uuid.New()
	supplierID := uuid.New()
	saleID := uuid.New()

	buyer := db.Buyer{
		ID:         buyerID,
		Name:       "Maison Verre",
		VatReclaim: pgtype.Text{String: services.VATReclaimCapable, Valid: true},
	}

	t.Run("persists the sale, raises the invoice and marks it invoiced", func(t *testing.T) {
		queries := new(testutil.MockQuerier)
		invoicing := new(testutil.MockInvoicingService)
		svc := services.NewTradeService(queries, invoicing, nil, zap.NewNop())

		queries.On("GetBuyer", mock.Anything, buyerID).Return(buyer, nil)
		queries.On("CountSales", mock.Anything).Return(int64(4), nil)
		queries.On("CreateSale", mock.Anything, mock.MatchedBy(func(arg db.CreateSaleParams) bool {
			return arg.Reference == "SO-00005" &&
				arg.Status == constants.SaleStatusSubmitted &&
				arg.GrossMarginGbp == 500.00 &&
				arg.EstimatedImportExportGbp.Valid
		})).Return(db.Sale{ID: saleID, Reference: "SO-00005", BuyerID: buyerID, Status: constants.SaleStatusSubmitted}, nil)
		queries.On("CreateSaleItem", mock.Anything, mock.MatchedBy(func(arg db.CreateSaleItemParams) bool {
			return arg.SaleID == saleID &&
				arg.SupplierID == supplierID &&
				arg.AccountCode.String == constants.ImportSalesAccountCode
		})).Return(db.SaleItem{SaleID: saleID}, nil)

		invoicing.On("FindContactByName", mock.Anything, "Maison Verre").Return(nil, nil)
		invoicing.On("CreateContact", mock.Anything, mock.Anything).Return(xero.Contact{ID: "contact-1", Name: "Maison Verre"}, nil)
		queries.On("UpdateBuyerXeroContact", mock.Anything, mock.Anything).Return(nil)
		invoicing.On("CreateInvoice", mock.Anything, mock.MatchedBy(func(params xero.InvoiceParams) bool {
			return params.ContactID == "contact-1" &&
				params.Reference == "SO-00005" &&
				len(params.LineItems) == 1 &&
				params.LineItems[0].AccountCode == constants.ImportSalesAccountCode
		})).Return(xero.Invoice{ID: "inv-1", InvoiceNumber: "INV-0042", Status: "AUTHORISED"}, nil)

		queries.On("UpdateSaleXeroInvoice", mock.Anything, mock.MatchedBy(func(arg db.UpdateSaleXeroInvoiceParams) bool {
			return arg.ID == saleID && arg.XeroInvoiceID.String == "inv-1" && arg.Status == constants.SaleStatusInvoiced
		})).Return(db.Sale{ID: saleID, Reference: "SO-00005", BuyerID: buyerID, Status: constants.SaleStatusInvoiced}, nil)

		result, err := svc.SubmitTrade(ctx, services.SubmitTradeParams{
			BuyerID:         buyerID,
			PaymentMethod:   constants.PaymentMethodCard,
			DeliveryCountry: "GB",
			Items: []services.SubmitTradeItem{
				{LineItem: gbpItem(1000, 1500), SupplierID: supplierID},
			},
		})

		require.NoError(t, err)
		assert.Equal(t, constants.SaleStatusInvoiced, result.Sale.Status)
		require.NotNil(t, result.Invoice)
		assert.Equal(t, "INV-0042", result.Invoice.InvoiceNumber)
		assert.Equal(t, 229.00, result.Quote.Margin.CommissionableMarginGBP)
		queries.AssertExpectations(t)
		invoicing.AssertExpectations(t)
	})

	t.Run("reuses a stored Xero contact", func(t *testing.T) {
		queries := new(testutil.MockQuerier)
		invoicing := new(testutil.MockInvoicingService)
		svc := services.NewTradeService(queries, invoicing, nil, zap.NewNop())

		linked := buyer
		linked.XeroContactID = pgtype.Text{String: "contact-9", Valid: true}

		queries.On("GetBuyer", mock.Anything, buyerID).Return(linked, nil)
		queries.On("CountSales", mock.Anything).Return(int64(0), nil)
		queries.On("CreateSale", mock.Anything, mock.Anything).Return(db.Sale{ID: saleID, Reference: "SO-00001", BuyerID: buyerID}, nil)
		queries.On("CreateSaleItem", mock.Anything, mock.Anything).Return(db.SaleItem{}, nil)
		invoicing.On("CreateInvoice", mock.Anything, mock.MatchedBy(func(params xero.InvoiceParams) bool {
			return params.ContactID == "contact-9"
		})).Return(xero.Invoice{ID: "inv-2"}, nil)
		queries.On("UpdateSaleXeroInvoice", mock.Anything, mock.Anything).Return(db.Sale{ID: saleID, Status: constants.SaleStatusInvoiced}, nil)

		_, err := svc.SubmitTrade(ctx, services.SubmitTradeParams{
			BuyerID:         buyerID,
			PaymentMethod:   constants.PaymentMethodBankTransfer,
			DeliveryCountry: "GB",
			Items: []services.SubmitTradeItem{
				{LineItem: gbpItem(1000, 1500), SupplierID: supplierID},
			},
		})

		require.NoError(t, err)
		invoicing.AssertNotCalled(t, "FindContactByName", mock.Anything, mock.Anything)
		invoicing.AssertNotCalled(t, "CreateContact", mock.Anything, mock.Anything)
	})

	t.Run("invoicing failure leaves the sale submitted", func(t *testing.T) {
		queries := new(testutil.MockQuerier)
		invoicing := new(testutil.MockInvoicingService)
		svc := services.NewTradeService(queries, invoicing, nil, zap.NewNop())

		queries.On("GetBuyer", mock.Anything, buyerID).Return(buyer, nil)
		queries.On("CountSales", mock.Anything).Return(int64(0), nil)
		queries.On("CreateSale", mock.Anything, mock.Anything).Return(db.Sale{ID: saleID, Reference: "SO-00001", BuyerID: buyerID, Status: constants.SaleStatusSubmitted}, nil)
		queries.On("CreateSaleItem", mock.Anything, mock.Anything).Return(db.SaleItem{}, nil)
		invoicing.On("FindContactByName", mock.Anything, mock.Anything).Return(nil, errors.New("xero unreachable"))

		result, err := svc.SubmitTrade(ctx, services.SubmitTradeParams{
			BuyerID:         buyerID,
			PaymentMethod:   constants.PaymentMethodBankTransfer,
			DeliveryCountry: "GB",
			Items: []services.SubmitTradeItem{
				{LineItem: gbpItem(1000, 1500), SupplierID: supplierID},
			},
		})

		require.NoError(t, err)
		assert.Equal(t, constants.SaleStatusSubmitted, result.Sale.Status)
		assert.Nil(t, result.Invoice)
		queries.AssertNotCalled(t, "UpdateSaleXeroInvoice", mock.Anything, mock.Anything)
	})

	t.Run("retries the next reference on a unique violation", func(t *testing.T) {
		queries := new(testutil.MockQuerier)
		invoicing := new(testutil.MockInvoicingService)
		svc := services.NewTradeService(queries, invoicing, nil, zap.NewNop())

		linked := buyer
		linked.XeroContactID = pgtype.Text{String: "contact-9", Valid: true}

		queries.On("GetBuyer", mock.Anything, buyerID).Return(linked, nil)
		queries.On("CountSales", mock.Anything).Return(int64(4), nil)
		queries.On("CreateSale", mock.Anything, mock.MatchedBy(func(arg db.CreateSaleParams) bool {
			return arg.Reference == "SO-00005"
		})).Return(db.Sale{}, &pgconn.PgError{Code: "23505", ConstraintName: "sales_reference_key"})
		queries.On("CreateSale", mock.Anything, mock.MatchedBy(func(arg db.CreateSaleParams) bool {
			return arg.Reference == "SO-00006"
		})).Return(db.Sale{ID: saleID, Reference: "SO-00006", BuyerID: buyerID, Status: constants.SaleStatusSubmitted}, nil)
		queries.On("CreateSaleItem", mock.Anything, mock.Anything).Return(db.SaleItem{}, nil)
		invoicing.On("CreateInvoice", mock.Anything, mock.MatchedBy(func(params xero.InvoiceParams) bool {
			return params.Reference == "SO-00006"
		})).Return(xero.Invoice{ID: "inv-3"}, nil)
		queries.On("UpdateSaleXeroInvoice", mock.Anything, mock.Anything).Return(db.Sale{ID: saleID, Reference: "SO-00006", Status: constants.SaleStatusInvoiced}, nil)

		result, err := svc.SubmitTrade(ctx, services.SubmitTradeParams{
			BuyerID:         buyerID,
			PaymentMethod:   constants.PaymentMethodBankTransfer,
			DeliveryCountry: "GB",
			Items: []services.SubmitTradeItem{
				{LineItem: gbpItem(1000, 1500), SupplierID: supplierID},
			},
		})

		require.NoError(t, err)
		assert.Equal(t, "SO-00006", result.Sale.Reference)
		queries.AssertExpectations(t)
	})

	t.Run("item insert failure aborts the submission", func(t *testing.T) {
		queries := new(testutil.MockQuerier)
		invoicing := new(testutil.MockInvoicingService)
		svc := services.NewTradeService(queries, invoicing, nil, zap.NewNop())

		queries.On("GetBuyer", mock.Anything, buyerID).Return(buyer, nil)
		queries.On("CountSales", mock.Anything).Return(int64(0), nil)
		queries.On("CreateSale", mock.Anything, mock.Anything).Return(db.Sale{ID: saleID, Reference: "SO-00001", BuyerID: buyerID}, nil)
		queries.On("CreateSaleItem", mock.Anything, mock.Anything).Return(db.SaleItem{}, errors.New("constraint violated"))

		_, err := svc.SubmitTrade(ctx, services.SubmitTradeParams{
			BuyerID:         buyerID,
			PaymentMethod:   constants.PaymentMethodBankTransfer,
			DeliveryCountry: "GB",
			Items: []services.SubmitTradeItem{
				{LineItem: gbpItem(1000, 1500), SupplierID: supplierID},
			},
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create sale item")
		invoicing.AssertNotCalled(t, "CreateInvoice", mock.Anything, mock.Anything)
	})

	t.Run("buyer lookup failure aborts the submission", func(t *testing.T) {
		queries := new(testutil.MockQuerier)
		svc := services.NewTradeService(queries, new(testutil.MockInvoicingService), nil, zap.NewNop())

		queries.On("GetBuyer", mock.Anything, buyerID).Return(db.Buyer{}, errors.New("no rows"))

		_, err := svc.SubmitTrade(ctx, services.SubmitTradeParams{
			BuyerID: buyerID,
			Items: []services.SubmitTradeItem{
				{LineItem: gbpItem(1000, 1500), SupplierID: supplierID},
			},
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load buyer")
	})
}
