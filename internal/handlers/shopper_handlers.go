package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"salesos-api/internal/db"
)

type ShopperHandler struct {
	common *CommonServices
}

func NewShopperHandler(common *CommonServices) *ShopperHandler {
	return &ShopperHandler{common: common}
}

// ShopperResponse represents the standardized API response for shopper operations
type ShopperResponse struct {
	ID             string  `json:"id"`
	Object         string  `json:"object"`
	UserID         string  `json:"user_id,omitempty"`
	Name           string  `json:"name"`
	CommissionRate float64 `json:"commission_rate"`
	IsActive       bool    `json:"is_active"`
	CreatedAt      int64   `json:"created_at"`
}

// CreateShopperRequest represents the request body for creating a shopper
type CreateShopperRequest struct {
	UserID         string  `json:"user_id,omitempty"`
	Name           string  `json:"name" binding:"required"`
	CommissionRate float64 `json:"commission_rate" binding:"required,gt=0,lte=1"`
	IsActive       *bool   `json:"is_active,omitempty"`
}

// UpdateShopperRequest represents the request body for updating a shopper
type UpdateShopperRequest struct {
	Name           string  `json:"name" binding:"required"`
	CommissionRate float64 `json:"commission_rate" binding:"required,gt=0,lte=1"`
	IsActive       *bool   `json:"is_active,omitempty"`
}

// GetShopper godoc
// @Summary Get a shopper
// @Description Retrieves the details of an existing shopper
// @Tags shoppers
// @Accept json
// @Produce json
// @Param id path string true "Shopper ID"
// @Success 200 {object} ShopperResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /shoppers/{id} [get]
func (h *ShopperHandler) GetShopper(c *gin.Context) {
	parsedUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid shopper ID format"})
		return
	}

	shopper, err := h.common.db.GetShopper(c.Request.Context(), parsedUUID)
	if err != nil {
		handleDBError(c, err, "Shopper not found")
		return
	}

	sendSuccess(c, http.StatusOK, toShopperResponse(shopper))
}

// ListShoppers godoc
// @Summary List all shoppers
// @Description Returns all shoppers sorted by name
// @Tags shoppers
// @Accept json
// @Produce json
// @Success 200 {array} ShopperResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /shoppers [get]
func (h *ShopperHandler) ListShoppers(c *gin.Context) {
	shoppers, err := h.common.db.ListShoppers(c.Request.Context())
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to retrieve shoppers", err)
		return
	}

	response := make([]ShopperResponse, len(shoppers))
	for i, shopper := range shoppers {
		response[i] = toShopperResponse(shopper)
	}

	sendList(c, response)
}

// CreateShopper godoc
// @Summary Create a shopper
// @Description Creates a new shopper, optionally linked to a login user
// @Tags shoppers
// @Accept json
// @Produce json
// @Param shopper body CreateShopperRequest true "Shopper creation data"
// @Success 201 {object} ShopperResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/shoppers [post]
func (h *ShopperHandler) CreateShopper(c *gin.Context) {
	var req CreateShopperRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	var userID pgtype.UUID
	if req.UserID != "" {
		parsed, err := uuid.Parse(req.UserID)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid user ID format"})
			return
		}
		userID = pgtype.UUID{Bytes: parsed, Valid: true}
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	shopper, err := h.common.db.CreateShopper(c.Request.Context(), db.CreateShopperParams{
		UserID:         userID,
		Name:           req.Name,
		CommissionRate: req.CommissionRate,
		IsActive:       pgtype.Bool{Bool: isActive, Valid: true},
	})
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to create shopper", err)
		return
	}

	sendSuccess(c, http.StatusCreated, toShopperResponse(shopper))
}

// UpdateShopper godoc
// @Summary Update a shopper
// @Description Updates an existing shopper record
// @Tags shoppers
// @Accept json
// @Produce json
// @Param id path string true "Shopper ID"
// @Param shopper body UpdateShopperRequest true "Shopper update data"
// @Success 200 {object} ShopperResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/shoppers/{id} [put]
func (h *ShopperHandler) UpdateShopper(c *gin.Context) {
	parsedUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid shopper ID format"})
		return
	}

	var req UpdateShopperRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	shopper, err := h.common.db.UpdateShopper(c.Request.Context(), db.UpdateShopperParams{
		ID:             parsedUUID,
		Name:           req.Name,
		CommissionRate: req.CommissionRate,
		IsActive:       pgtype.Bool{Bool: isActive, Valid: true},
	})
	if err != nil {
		handleDBError(c, err, "Shopper not found")
		return
	}

	sendSuccess(c, http.StatusOK, toShopperResponse(shopper))
}

// DeleteShopper godoc
// @Summary Delete a shopper
// @Description Deletes a shopper record
// @Tags shoppers
// @Produce json
// @Param id path string true "Shopper ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/shoppers/{id} [delete]
func (h *ShopperHandler) DeleteShopper(c *gin.Context) {
	parsedUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid shopper ID format"})
		return
	}

	if err := h.common.db.DeleteShopper(c.Request.Context(), parsedUUID); err != nil {
		handleDBError(c, err, "Shopper not found")
		return
	}

	sendSuccessMessage(c, http.StatusOK, "Shopper deleted")
}

func toShopperResponse(shopper db.Shopper) ShopperResponse {
	response := ShopperResponse{
		ID:             shopper.ID.String(),
		Object:         "shopper",
		Name:           shopper.Name,
		CommissionRate: shopper.CommissionRate,
		IsActive:       shopper.IsActive.Bool,
		CreatedAt:      shopper.CreatedAt.Time.Unix(),
	}
	if shopper.UserID.Valid {
		response.UserID = uuid.UUID(shopper.UserID.Bytes).String()
	}
	return response
}
