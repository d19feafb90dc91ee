package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"salesos-api/internal/db"
	"salesos-api/internal/helpers"
)

type BuyerHandler struct {
	common *CommonServices
}

func NewBuyerHandler(common *CommonServices) *BuyerHandler {
	return &BuyerHandler{common: common}
}

// BuyerResponse represents the standardized API response for buyer operations
type BuyerResponse struct {
	ID            string `json:"id"`
	Object        string `json:"object"`
	Name          string `json:"name"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Country       string `json:"country,omitempty"`
	VATReclaim    string `json:"vat_reclaim,omitempty"`
	XeroContactID string `json:"xero_contact_id,omitempty"`
	Notes         string `json:"notes,omitempty"`
	CreatedAt     int64  `json:"created_at"`
}

// CreateBuyerRequest represents the request body for creating a buyer
type CreateBuyerRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email,omitempty" binding:"omitempty,email"`
	Phone      string `json:"phone,omitempty"`
	Country    string `json:"country,omitempty"`
	VATReclaim string `json:"vat_reclaim,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

// UpdateBuyerRequest represents the request body for updating a buyer
type UpdateBuyerRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email,omitempty" binding:"omitempty,email"`
	Phone      string `json:"phone,omitempty"`
	Country    string `json:"country,omitempty"`
	VATReclaim string `json:"vat_reclaim,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

// GetBuyer godoc
// @Summary Get a buyer
// @Description Retrieves the details of an existing buyer
// @Tags buyers
// @Accept json
// @Produce json
// @Param id path string true "Buyer ID"
// @Success 200 {object} BuyerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /buyers/{id} [get]
func (h *BuyerHandler) GetBuyer(c *gin.Context) {
	parsedUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid buyer ID format"})
		return
	}

	buyer, err := h.common.db.GetBuyer(c.Request.Context(), parsedUUID)
	if err != nil {
		handleDBError(c, err, "Buyer not found")
		return
	}

	sendSuccess(c, http.StatusOK, toBuyerResponse(buyer))
}

// ListBuyers godoc
// @Summary List all buyers
// @Description Returns the buyer book sorted by name
// @Tags buyers
// @Accept json
// @Produce json
// @Success 200 {array} BuyerResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /buyers [get]
func (h *BuyerHandler) ListBuyers(c *gin.Context) {
	buyers, err := h.common.db.ListBuyers(c.Request.Context())
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to retrieve buyers", err)
		return
	}

	response := make([]BuyerResponse, len(buyers))
	for i, buyer := range buyers {
		response[i] = toBuyerResponse(buyer)
	}

	sendList(c, response)
}

// CreateBuyer godoc
// @Summary Create a buyer
// @Description Creates a new buyer record
// @Tags buyers
// @Accept json
// @Produce json
// @Param buyer body CreateBuyerRequest true "Buyer creation data"
// @Success 201 {object} BuyerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /buyers [post]
func (h *BuyerHandler) CreateBuyer(c *gin.Context) {
	var req CreateBuyerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	buyer, err := h.common.db.CreateBuyer(c.Request.Context(), db.CreateBuyerParams{
		Name:       req.Name,
		Email:      pgtype.Text{String: req.Email, Valid: req.Email != ""},
		Phone:      pgtype.Text{String: req.Phone, Valid: req.Phone != ""},
		Country:    pgtype.Text{String: helpers.NormalizeCountryCode(req.Country), Valid: req.Country != ""},
		VatReclaim: pgtype.Text{String: req.VATReclaim, Valid: req.VATReclaim != ""},
		Notes:      pgtype.Text{String: req.Notes, Valid: req.Notes != ""},
	})
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to create buyer", err)
		return
	}

	sendSuccess(c, http.StatusCreated, toBuyerResponse(buyer))
}

// UpdateBuyer godoc
// @Summary Update a buyer
// @Description Updates an existing buyer record
// @Tags buyers
// @Accept json
// @Produce json
// @Param id path string true "Buyer ID"
// @Param buyer body UpdateBuyerRequest true "Buyer update data"
// @Success 200 {object} BuyerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /buyers/{id} [put]
func (h *BuyerHandler) UpdateBuyer(c *gin.Context) {
	parsedUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid buyer ID format"})
		return
	}

	var req UpdateBuyerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	buyer, err := h.common.db.UpdateBuyer(c.Request.Context(), db.UpdateBuyerParams{
		ID:         parsedUUID,
		Name:       req.Name,
		Email:      pgtype.Text{String: req.Email, Valid: req.Email != ""},
		Phone:      pgtype.Text{String: req.Phone, Valid: req.Phone != ""},
		Country:    pgtype.Text{String: helpers.NormalizeCountryCode(req.Country), Valid: req.Country != ""},
		VatReclaim: pgtype.Text{String: req.VATReclaim, Valid: req.VATReclaim != ""},
		Notes:      pgtype.Text{String: req.Notes, Valid: req.Notes != ""},
	})
	if err != nil {
		handleDBError(c, err, "Buyer not found")
		return
	}

	sendSuccess(c, http.StatusOK, toBuyerResponse(buyer))
}

// DeleteBuyer godoc
// @Summary Delete a buyer
// @Description Deletes a buyer record
// @Tags buyers
// @Produce json
// @Param id path string true "Buyer ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /buyers/{id} [delete]
func (h *BuyerHandler) DeleteBuyer(c *gin.Context) {
	parsedUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid buyer ID format"})
		return
	}

	if err := h.common.db.DeleteBuyer(c.Request.Context(), parsedUUID); err != nil {
		handleDBError(c, err, "Buyer not found")
		return
	}

	sendSuccessMessage(c, http.StatusOK, "Buyer deleted")
}

func toBuyerResponse(buyer db.Buyer) BuyerResponse {
	return BuyerResponse{
		ID:            buyer.ID.String(),
		Object:        "buyer",
		Name:          buyer.Name,
		Email:         buyer.Email.String,
		Phone:         buyer.Phone.String,
		Country:       buyer.Country.String,
		VATReclaim:    buyer.VatReclaim.String,
		XeroContactID: buyer.XeroContactID.String,
		Notes:         buyer.Notes.String,
		CreatedAt:     buyer.CreatedAt.Time.Unix(),
	}
}
