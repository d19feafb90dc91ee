package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"salesos-api/internal/db"
	"salesos-api/internal/helpers"
)

type SupplierHandler struct {
	common *CommonServices
}

func NewSupplierHandler(common *CommonServices) *SupplierHandler {
	return &SupplierHandler{common: common}
}

// SupplierResponse represents the standardized API response for supplier operations
type SupplierResponse struct {
	ID            string `json:"id"`
	Object        string `json:"object"`
	Name          string `json:"name"`
	Email         string `json:"email,omitempty"`
	Country       string `json:"country"`
	Currency      string `json:"currency,omitempty"`
	XeroContactID string `json:"xero_contact_id,omitempty"`
	CreatedAt     int64  `json:"created_at"`
}

// CreateSupplierRequest represents the request body for creating a supplier
type CreateSupplierRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email,omitempty" binding:"omitempty,email"`
	Country  string `json:"country" binding:"required"`
	Currency string `json:"currency,omitempty"`
}

// UpdateSupplierRequest represents the request body for updating a supplier
type UpdateSupplierRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email,omitempty" binding:"omitempty,email"`
	Country  string `json:"country" binding:"required"`
	Currency string `json:"currency,omitempty"`
}

// GetSupplier godoc
// @Summary Get a supplier
// @Description Retrieves the details of an existing supplier
// @Tags suppliers
// @Accept json
// @Produce json
// @Param id path string true "Supplier ID"
// @Success 200 {object} SupplierResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /suppliers/{id} [get]
func (h *SupplierHandler) GetSupplier(c *gin.Context) {
	parsedUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid supplier ID format"})
		return
	}

	supplier, err := h.common.db.GetSupplier(c.Request.Context(), parsedUUID)
	if err != nil {
		handleDBError(c, err, "Supplier not found")
		return
	}

	sendSuccess(c, http.StatusOK, toSupplierResponse(supplier))
}

// ListSuppliers godoc
// @Summary List all suppliers
// @Description Returns the supplier book sorted by name
// @Tags suppliers
// @Accept json
// @Produce json
// @Success 200 {array} SupplierResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /suppliers [get]
func (h *SupplierHandler) ListSuppliers(c *gin.Context) {
	suppliers, err := h.common.db.ListSuppliers(c.Request.Context())
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to retrieve suppliers", err)
		return
	}

	response := make([]SupplierResponse, len(suppliers))
	for i, supplier := range suppliers {
		response[i] = toSupplierResponse(supplier)
	}

	sendList(c, response)
}

// CreateSupplier godoc
// @Summary Create a supplier
// @Description Creates a new supplier record
// @Tags suppliers
// @Accept json
// @Produce json
// @Param supplier body CreateSupplierRequest true "Supplier creation data"
// @Success 201 {object} SupplierResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /suppliers [post]
func (h *SupplierHandler) CreateSupplier(c *gin.Context) {
	var req CreateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	if req.Currency != "" {
		if err := helpers.ValidateCurrencyCode(req.Currency); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid currency code"})
			return
		}
	}

	supplier, err := h.common.db.CreateSupplier(c.Request.Context(), db.CreateSupplierParams{
		Name:     req.Name,
		Email:    pgtype.Text{String: req.Email, Valid: req.Email != ""},
		Country:  helpers.NormalizeCountryCode(req.Country),
		Currency: pgtype.Text{String: helpers.NormalizeCurrencyCode(req.Currency), Valid: req.Currency != ""},
	})
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to create supplier", err)
		return
	}

	sendSuccess(c, http.StatusCreated, toSupplierResponse(supplier))
}

// UpdateSupplier godoc
// @Summary Update a supplier
// @Description Updates an existing supplier record
// @Tags suppliers
// @Accept json
// @Produce json
// @Param id path string true "Supplier ID"
// @Param supplier body UpdateSupplierRequest true "Supplier update data"
// @Success 200 {object} SupplierResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /suppliers/{id} [put]
func (h *SupplierHandler) UpdateSupplier(c *gin.Context) {
	parsedUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid supplier ID format"})
		return
	}

	var req UpdateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	if req.Currency != "" {
		if err := helpers.ValidateCurrencyCode(req.Currency); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid currency code"})
			return
		}
	}

	supplier, err := h.common.db.UpdateSupplier(c.Request.Context(), db.UpdateSupplierParams{
		ID:       parsedUUID,
		Name:     req.Name,
		Email:    pgtype.Text{String: req.Email, Valid: req.Email != ""},
		Country:  helpers.NormalizeCountryCode(req.Country),
		Currency: pgtype.Text{String: helpers.NormalizeCurrencyCode(req.Currency), Valid: req.Currency != ""},
	})
	if err != nil {
		handleDBError(c, err, "Supplier not found")
		return
	}

	sendSuccess(c, http.StatusOK, toSupplierResponse(supplier))
}

// DeleteSupplier godoc
// @Summary Delete a supplier
// @Description Deletes a supplier record
// @Tags suppliers
// @Produce json
// @Param id path string true "Supplier ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /suppliers/{id} [delete]
func (h *SupplierHandler) DeleteSupplier(c *gin.Context) {
	parsedUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid supplier ID format"})
		return
	}

	if err := h.common.db.DeleteSupplier(c.Request.Context(), parsedUUID); err != nil {
		handleDBError(c, err, "Supplier not found")
		return
	}

	sendSuccessMessage(c, http.StatusOK, "Supplier deleted")
}

func toSupplierResponse(supplier db.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:            supplier.ID.String(),
		Object:        "supplier",
		Name:          supplier.Name,
		Email:         supplier.Email.String,
		Country:       supplier.Country,
		Currency:      supplier.Currency.String,
		XeroContactID: supplier.XeroContactID.String,
		CreatedAt:     supplier.CreatedAt.Time.Unix(),
	}
}
