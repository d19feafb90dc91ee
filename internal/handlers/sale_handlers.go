package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"salesos-api/internal/auth"
	"salesos-api/internal/db"
)

type SaleHandler struct {
	common *CommonServices
}

func NewSaleHandler(common *CommonServices) *SaleHandler {
	return &SaleHandler{common: common}
}

// SaleItemResponse represents one line item of a sale
type SaleItemResponse struct {
	ID           string   `json:"id"`
	Brand        string   `json:"brand"`
	Category     string   `json:"category"`
	Description  string   `json:"description,omitempty"`
	Quantity     int32    `json:"quantity"`
	SupplierID   string   `json:"supplier_id"`
	BuyPrice     float64  `json:"buy_price"`
	BuyCurrency  string   `json:"buy_currency"`
	SellPrice    float64  `json:"sell_price"`
	SellCurrency string   `json:"sell_currency"`
	FxRate       *float64 `json:"fx_rate,omitempty"`
	AccountCode  string   `json:"account_code,omitempty"`
	TaxType      string   `json:"tax_type,omitempty"`
	TaxLabel     string   `json:"tax_label,omitempty"`
}

// SaleResponse represents the standardized API response for sale operations
type SaleResponse struct {
	ID                       string             `json:"id"`
	Object                   string             `json:"object"`
	Reference                string             `json:"reference"`
	ShopperID                string             `json:"shopper_id,omitempty"`
	BuyerID                  string             `json:"buyer_id"`
	PaymentMethod            string             `json:"payment_method"`
	DeliveryCountry          string             `json:"delivery_country"`
	Status                   string             `json:"status"`
	GrossMarginGBP           float64            `json:"gross_margin_gbp"`
	CommissionableMarginGBP  float64            `json:"commissionable_margin_gbp"`
	EstimatedImportExportGBP *float64           `json:"estimated_import_export_gbp,omitempty"`
	XeroInvoiceID            string             `json:"xero_invoice_id,omitempty"`
	SubmittedAt              int64              `json:"submitted_at,omitempty"`
	CreatedAt                int64              `json:"created_at"`
	Items                    []SaleItemResponse `json:"items,omitempty"`
}

// GetSale godoc
// @Summary Get a sale
// @Description Retrieves a sale with its line items
// @Tags sales
// @Produce json
// @Param id path string true "Sale ID"
// @Success 200 {object} SaleResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales/{id} [get]
func (h *SaleHandler) GetSale(c *gin.Context) {
	parsedUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid sale ID format"})
		return
	}

	sale, err := h.common.db.GetSale(c.Request.Context(), parsedUUID)
	if err != nil {
		handleDBError(c, err, "Sale not found")
		return
	}

	// Shopper-scoped sessions only see their own sales.
	scope, err := auth.GetShopperScope(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid shopper scope"})
		return
	}
	if scope != nil && (!sale.ShopperID.Valid || sale.ShopperID.Bytes != *scope) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Sale not found"})
		return
	}

	items, err := h.common.db.ListSaleItemsBySale(c.Request.Context(), sale.ID)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to retrieve sale items", err)
		return
	}

	sendSuccess(c, http.StatusOK, toSaleResponse(sale, items))
}

// ListSales godoc
// @Summary List sales
// @Description Returns sales newest first, scoped to the caller's shopper when applicable
// @Tags sales
// @Produce json
// @Success 200 {array} SaleResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales [get]
func (h *SaleHandler) ListSales(c *gin.Context) {
	scope, err := auth.GetShopperScope(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid shopper scope"})
		return
	}

	var sales []db.Sale
	if scope != nil {
		sales, err = h.common.db.ListSalesByShopper(c.Request.Context(), pgtype.UUID{Bytes: *scope, Valid: true})
	} else {
		sales, err = h.common.db.ListSales(c.Request.Context())
	}
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to retrieve sales", err)
		return
	}

	response := make([]SaleResponse, len(sales))
	for i, sale := range sales {
		response[i] = toSaleResponse(sale, nil)
	}

	sendList(c, response)
}

// UpdateSaleStatus godoc
// @Summary Update a sale's status
// @Description Moves a sale through its lifecycle (draft, submitted, invoiced, paid)
// @Tags sales
// @Accept json
// @Produce json
// @Param id path string true "Sale ID"
// @Param status body UpdateSaleStatusRequest true "New status"
// @Success 200 {object} SaleResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales/{id}/status [put]
func (h *SaleHandler) UpdateSaleStatus(c *gin.Context) {
	parsedUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid sale ID format"})
		return
	}

	var req UpdateSaleStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	sale, err := h.common.db.UpdateSaleStatus(c.Request.Context(), db.UpdateSaleStatusParams{
		ID:     parsedUUID,
		Status: req.Status,
	})
	if err != nil {
		handleDBError(c, err, "Sale not found")
		return
	}

	sendSuccess(c, http.StatusOK, toSaleResponse(sale, nil))
}

// UpdateSaleStatusRequest represents the request body for a status change
type UpdateSaleStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=draft submitted invoiced paid"`
}

func toSaleResponse(sale db.Sale, items []db.SaleItem) SaleResponse {
	response := SaleResponse{
		ID:                      sale.ID.String(),
		Object:                  "sale",
		Reference:               sale.Reference,
		BuyerID:                 sale.BuyerID.String(),
		PaymentMethod:           sale.PaymentMethod,
		DeliveryCountry:         sale.DeliveryCountry,
		Status:                  sale.Status,
		GrossMarginGBP:          sale.GrossMarginGbp,
		CommissionableMarginGBP: sale.CommissionableMarginGbp,
		XeroInvoiceID:           sale.XeroInvoiceID.String,
		CreatedAt:               sale.CreatedAt.Time.Unix(),
	}
	if sale.ShopperID.Valid {
		response.ShopperID = uuid.UUID(sale.ShopperID.Bytes).String()
	}
	if sale.EstimatedImportExportGbp.Valid {
		estimated := sale.EstimatedImportExportGbp.Float64
		response.EstimatedImportExportGBP = &estimated
	}
	if sale.SubmittedAt.Valid {
		response.SubmittedAt = sale.SubmittedAt.Time.Unix()
	}

	if items != nil {
		response.Items = make([]SaleItemResponse, len(items))
		for i, item := range items {
			response.Items[i] = toSaleItemResponse(item)
		}
	}
	return response
}

func toSaleItemResponse(item db.SaleItem) SaleItemResponse {
	response := SaleItemResponse{
		ID:           item.ID.String(),
		Brand:        item.Brand,
		Category:     item.Category,
		Description:  item.Description.String,
		Quantity:     item.Quantity,
		SupplierID:   item.SupplierID.String(),
		BuyPrice:     item.BuyPrice,
		BuyCurrency:  item.BuyCurrency,
		SellPrice:    item.SellPrice,
		SellCurrency: item.SellCurrency,
		AccountCode:  item.AccountCode.String,
		TaxType:      item.TaxType.String,
		TaxLabel:     item.TaxLabel.String,
	}
	if item.FxRate.Valid {
		rate := item.FxRate.Float64
		response.FxRate = &rate
	}
	return response
}
