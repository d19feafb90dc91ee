package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"salesos-api/internal/constants"
	"salesos-api/internal/db"
)

type UserHandler struct {
	common *CommonServices
}

func NewUserHandler(common *CommonServices) *UserHandler {
	return &UserHandler{common: common}
}

// UserResponse represents the standardized API response for user operations
type UserResponse struct {
	ID        string `json:"id"`
	Object    string `json:"object"`
	ClerkID   string `json:"clerk_id"`
	Email     string `json:"email"`
	Name      string `json:"name,omitempty"`
	Role      string `json:"role"`
	CreatedAt int64  `json:"created_at"`
}

// CreateUserRequest represents the request body for provisioning a user
type CreateUserRequest struct {
	ClerkID string `json:"clerk_id" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Name    string `json:"name,omitempty"`
	Role    string `json:"role" binding:"required,oneof=admin broker shopper"`
}

// UpdateUserRoleRequest represents the request body for changing a user's role
type UpdateUserRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=admin broker shopper"`
}

// GetCurrentUser godoc
// @Summary Get the authenticated user
// @Description Returns the user record backing the current session
// @Tags users
// @Produce json
// @Success 200 {object} UserResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /me [get]
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "No user in session"})
		return
	}

	parsedUUID, err := uuid.Parse(userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid user in session"})
		return
	}

	user, err := h.common.db.GetUser(c.Request.Context(), parsedUUID)
	if err != nil {
		handleDBError(c, err, "User not found")
		return
	}

	sendSuccess(c, http.StatusOK, toUserResponse(user))
}

// ListUsers godoc
// @Summary List all users
// @Description Returns all provisioned users, newest first
// @Tags users
// @Produce json
// @Success 200 {array} UserResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.common.db.ListUsers(c.Request.Context())
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to retrieve users", err)
		return
	}

	response := make([]UserResponse, len(users))
	for i, user := range users {
		response[i] = toUserResponse(user)
	}

	sendList(c, response)
}

// CreateUser godoc
// @Summary Provision a user
// @Description Links a Clerk identity to a role-bearing user record
// @Tags users
// @Accept json
// @Produce json
// @Param user body CreateUserRequest true "User provisioning data"
// @Success 201 {object} UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	user, err := h.common.db.CreateUser(c.Request.Context(), db.CreateUserParams{
		ClerkID: req.ClerkID,
		Email:   req.Email,
		Name:    pgtype.Text{String: req.Name, Valid: req.Name != ""},
		Role:    req.Role,
	})
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to create user", err)
		return
	}

	sendSuccess(c, http.StatusCreated, toUserResponse(user))
}

// UpdateUserRole godoc
// @Summary Change a user's role
// @Description Updates the role on an existing user record
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param role body UpdateUserRoleRequest true "New role"
// @Success 200 {object} UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/users/{id}/role [put]
func (h *UserHandler) UpdateUserRole(c *gin.Context) {
	parsedUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid user ID format"})
		return
	}

	var req UpdateUserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	// A shopper role needs a shopper record before sales can be scoped to it;
	// the role change itself is still allowed.
	if req.Role == constants.ShopperRole {
		if _, err := h.common.db.GetShopperByUserID(c.Request.Context(), pgtype.UUID{Bytes: parsedUUID, Valid: true}); err != nil {
			sendError(c, http.StatusBadRequest, "User has no shopper record", err)
			return
		}
	}

	user, err := h.common.db.UpdateUserRole(c.Request.Context(), db.UpdateUserRoleParams{
		ID:   parsedUUID,
		Role: req.Role,
	})
	if err != nil {
		handleDBError(c, err, "User not found")
		return
	}

	sendSuccess(c, http.StatusOK, toUserResponse(user))
}

// DeleteUser godoc
// @Summary Delete a user
// @Description Deletes a user record
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	parsedUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid user ID format"})
		return
	}

	if err := h.common.db.DeleteUser(c.Request.Context(), parsedUUID); err != nil {
		handleDBError(c, err, "User not found")
		return
	}

	sendSuccessMessage(c, http.StatusOK, "User deleted")
}

func toUserResponse(user db.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		Object:    "user",
		ClerkID:   user.ClerkID,
		Email:     user.Email,
		Name:      user.Name.String,
		Role:      user.Role,
		CreatedAt: user.CreatedAt.Time.Unix(),
	}
}
