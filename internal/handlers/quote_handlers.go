package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"salesos-api/internal/services"
)

type QuoteHandler struct {
	common *CommonServices
}

func NewQuoteHandler(common *CommonServices) *QuoteHandler {
	return &QuoteHandler{common: common}
}

// QuoteTradeRequest represents the wizard state sent for pricing. Quotes are
// pure reads; nothing is persisted.
type QuoteTradeRequest struct {
	Items           []services.LineItem `json:"items" binding:"required,min=1,max=3"`
	PaymentMethod   string              `json:"payment_method" binding:"required,oneof=CARD BANK_TRANSFER"`
	DeliveryCountry string              `json:"delivery_country" binding:"required"`
	SupplierCountry string              `json:"supplier_country,omitempty"`
	VATReclaim      string              `json:"vat_reclaim,omitempty"`
}

// QuoteTrade godoc
// @Summary Price a trade
// @Description Computes implied costs, margins, the tax scenario and the structuring suggestion for the wizard's current state
// @Tags quotes
// @Accept json
// @Produce json
// @Param quote body QuoteTradeRequest true "Trade to price"
// @Success 200 {object} services.TradeQuote
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /quotes/trade [post]
func (h *QuoteHandler) QuoteTrade(c *gin.Context) {
	var req QuoteTradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	quote := h.common.trades.QuoteTrade(services.TradeQuoteParams{
		Items:           req.Items,
		PaymentMethod:   req.PaymentMethod,
		DeliveryCountry: req.DeliveryCountry,
		SupplierCountry: req.SupplierCountry,
		VATReclaim:      req.VATReclaim,
	})

	sendSuccess(c, http.StatusOK, quote)
}
