package handlers

import (
	"fmt"
	"net/http"
	"net/url"
	"os"

	"github.com/gin-gonic/gin"

	"salesos-api/internal/client/xero"
)

type XeroHandler struct {
	common *CommonServices
	client *xero.XeroClient
}

func NewXeroHandler(common *CommonServices, client *xero.XeroClient) *XeroHandler {
	return &XeroHandler{common: common, client: client}
}

// XeroStatusResponse reports whether the stored connection works
type XeroStatusResponse struct {
	Connected bool   `json:"connected"`
	Detail    string `json:"detail,omitempty"`
}

// GetStatus godoc
// @Summary Xero connection status
// @Description Checks whether the stored Xero tokens can reach the organisation
// @Tags xero
// @Produce json
// @Success 200 {object} XeroStatusResponse
// @Security BearerAuth
// @Router /xero/status [get]
func (h *XeroHandler) GetStatus(c *gin.Context) {
	if err := h.client.CheckConnection(c.Request.Context()); err != nil {
		sendSuccess(c, http.StatusOK, XeroStatusResponse{Connected: false, Detail: err.Error()})
		return
	}
	sendSuccess(c, http.StatusOK, XeroStatusResponse{Connected: true})
}

// Connect godoc
// @Summary Start the Xero OAuth flow
// @Description Returns the authorization URL the browser should be sent to
// @Tags xero
// @Produce json
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /xero/connect [get]
func (h *XeroHandler) Connect(c *gin.Context) {
	authorizeURL := fmt.Sprintf(
		"https://login.xero.com/identity/connect/authorize?response_type=code&client_id=%s&redirect_uri=%s&scope=%s",
		url.QueryEscape(os.Getenv("XERO_CLIENT_ID")),
		url.QueryEscape(os.Getenv("XERO_REDIRECT_URI")),
		url.QueryEscape("openid profile email accounting.transactions accounting.contacts offline_access"),
	)
	sendSuccess(c, http.StatusOK, gin.H{"authorize_url": authorizeURL})
}

// Callback godoc
// @Summary Complete the Xero OAuth flow
// @Description Exchanges the authorization code and stores the connection
// @Tags xero
// @Produce json
// @Param code query string true "Authorization code"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Security BearerAuth
// @Router /xero/callback [get]
func (h *XeroHandler) Callback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing authorization code"})
		return
	}

	if _, err := h.client.ExchangeAuthCode(c.Request.Context(), code, os.Getenv("XERO_REDIRECT_URI")); err != nil {
		sendError(c, http.StatusBadGateway, "Failed to complete Xero connection", err)
		return
	}

	sendSuccessMessage(c, http.StatusOK, "Xero connected")
}
