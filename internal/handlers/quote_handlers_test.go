package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"salesos-api/internal/logger"
	"salesos-api/internal/services"
	"salesos-api/internal/testutil"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.InitLogger()
	os.Exit(m.Run())
}

func newQuoteRouter() *gin.Engine {
	trades := services.NewTradeService(new(testutil.MockQuerier), new(testutil.MockInvoicingService), nil, zap.NewNop())
	common := NewCommonServices(new(testutil.MockQuerier), new(testutil.MockInvoicingService), trades, nil)
	handler := NewQuoteHandler(common)

	router := gin.New()
	router.POST("/api/v1/quotes/trade", handler.QuoteTrade)
	return router
}

func postQuote(t *testing.T, router *gin.Engine, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/quotes/trade", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestQuoteTradeEndpoint(t *testing.T) {
	router := newQuoteRouter()

	t.Run("returns the full quote for a valid import deal", func(t *testing.T) {
		w := postQuote(t, router, QuoteTradeRequest{
			Items: []services.LineItem{
				{Brand: "Hermes", Category: "Bags", Quantity: 1, BuyPrice: 1000, BuyCurrency: "GBP", SellPrice: 1500, SellCurrency: "GBP"},
			},
			PaymentMethod:   "CARD",
			DeliveryCountry: "GB",
			SupplierCountry: "FR",
			VATReclaim:      services.VATReclaimCapable,
		})

		require.Equal(t, http.StatusOK, w.Code)

		var quote services.TradeQuote
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &quote))
		assert.Equal(t, 51.00, quote.ImpliedCosts.Total)
		require.NotNil(t, quote.Scenario)
		assert.Equal(t, "Import", quote.Scenario.TaxLiability)
		assert.Equal(t, 220.00, quote.ImportExport.Total)
		assert.Equal(t, 229.00, quote.Margin.CommissionableMarginGBP)
	})

	t.Run("rejects a payload without items", func(t *testing.T) {
		w := postQuote(t, router, QuoteTradeRequest{
			PaymentMethod:   "CARD",
			DeliveryCountry: "GB",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects an unknown payment method", func(t *testing.T) {
		w := postQuote(t, router, map[string]interface{}{
			"items": []services.LineItem{
				{Brand: "Hermes", Category: "Bags", Quantity: 1, BuyPrice: 100, BuyCurrency: "GBP", SellPrice: 200, SellCurrency: "GBP"},
			},
			"payment_method":   "CHEQUE",
			"delivery_country": "GB",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
