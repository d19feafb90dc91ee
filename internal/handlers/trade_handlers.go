package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"salesos-api/internal/auth"
	"salesos-api/internal/services"
)

type TradeHandler struct {
	common *CommonServices
}

func NewTradeHandler(common *CommonServices) *TradeHandler {
	return &TradeHandler{common: common}
}

// SubmitTradeItemRequest is one wizard line item bound to a supplier
type SubmitTradeItemRequest struct {
	services.LineItem
	SupplierID string `json:"supplier_id" binding:"required,uuid"`
}

// SubmitTradeRequest represents the assembled wizard payload
type SubmitTradeRequest struct {
	BuyerID         string                   `json:"buyer_id" binding:"required,uuid"`
	PaymentMethod   string                   `json:"payment_method" binding:"required,oneof=CARD BANK_TRANSFER"`
	DeliveryCountry string                   `json:"delivery_country" binding:"required"`
	Items           []SubmitTradeItemRequest `json:"items" binding:"required,min=1,max=3"`
	NotifyEmail     string                   `json:"notify_email,omitempty" binding:"omitempty,email"`
}

// SubmitTrade godoc
// @Summary Submit a trade
// @Description Persists the sale, raises the Xero invoice and sends the notification email
// @Tags trades
// @Accept json
// @Produce json
// @Param trade body SubmitTradeRequest true "Trade to submit"
// @Success 201 {object} services.TradeSubmission
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /trades [post]
func (h *TradeHandler) SubmitTrade(c *gin.Context) {
	var req SubmitTradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	buyerID, err := uuid.Parse(req.BuyerID)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid buyer ID format"})
		return
	}

	// Sales are attributed to the session's shopper scope, which for shopper
	// users is always their own record.
	shopperID, err := auth.GetShopperScope(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid shopper scope"})
		return
	}

	items := make([]services.SubmitTradeItem, len(req.Items))
	for i, item := range req.Items {
		supplierID, err := uuid.Parse(item.SupplierID)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid supplier ID format"})
			return
		}
		items[i] = services.SubmitTradeItem{LineItem: item.LineItem, SupplierID: supplierID}
	}

	result, err := h.common.trades.SubmitTrade(c.Request.Context(), services.SubmitTradeParams{
		ShopperID:       shopperID,
		BuyerID:         buyerID,
		PaymentMethod:   req.PaymentMethod,
		DeliveryCountry: req.DeliveryCountry,
		Items:           items,
		NotifyEmail:     req.NotifyEmail,
	})
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	sendSuccess(c, http.StatusCreated, result)
}
