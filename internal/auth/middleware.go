package auth

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/auth0/go-jwt-middleware/v2/jwks"
	"github.com/auth0/go-jwt-middleware/v2/validator"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"

	"salesos-api/internal/constants"
	"salesos-api/internal/db"
	"salesos-api/internal/logger"
)

// jwtValidator is a singleton instance of the JWT validator
var jwtValidator *validator.Validator

// CustomClaims carries the Clerk session claims we care about beyond the
// registered set.
type CustomClaims struct {
	Role string `json:"role"`
}

// Validate implements the validator.CustomClaims interface
func (c CustomClaims) Validate(ctx context.Context) error {
	return nil
}

// setupAuth initializes the JWT validator against the Clerk instance's JWKS.
// Clerk signs session tokens with RS256 and serves keys at the issuer's
// well-known endpoint, so the generic JWKS caching provider works as-is.
func setupAuth() (*validator.Validator, error) {
	if jwtValidator != nil {
		return jwtValidator, nil
	}

	issuerURL, err := url.Parse(os.Getenv("CLERK_ISSUER_URL"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse CLERK_ISSUER_URL: %w", err)
	}
	provider := jwks.NewCachingProvider(issuerURL, 5*time.Minute)

	jwtValidator, err = validator.New(
		provider.KeyFunc,
		validator.RS256,
		issuerURL.String(),
		[]string{os.Getenv("CLERK_AUDIENCE")},
		validator.WithCustomClaims(
			func() validator.CustomClaims {
				return &CustomClaims{}
			},
		),
		validator.WithAllowedClockSkew(time.Minute),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to set up validator: %w", err)
	}
	return jwtValidator, nil
}

// validateJWTToken validates a Clerk session token and resolves the user row
// via the stable Clerk subject identifier.
func validateJWTToken(c *gin.Context, queries db.Querier, authHeader string) (db.User, error) {
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == "" {
		return db.User{}, ErrInvalidToken
	}

	v, err := setupAuth()
	if err != nil {
		logger.Error("Auth setup failed", zap.Error(err))
		return db.User{}, fmt.Errorf("auth setup failed: %w", err)
	}

	claims, err := v.ValidateToken(c.Request.Context(), token)
	if err != nil {
		logger.Debug("Token validation failed", zap.Error(err))
		return db.User{}, ErrInvalidToken
	}

	validatedClaims, ok := claims.(*validator.ValidatedClaims)
	if !ok {
		return db.User{}, fmt.Errorf("invalid claims type")
	}

	user, err := queries.GetUserByClerkID(c.Request.Context(), validatedClaims.RegisteredClaims.Subject)
	if err != nil {
		return db.User{}, ErrUserNotProvisioned
	}

	return user, nil
}

// EnsureValidAPIKeyOrToken checks for either a valid internal API key or a
// Clerk session token. The API key path is for service-to-service calls and
// grants admin-equivalent access; the JWT path resolves the user row and its
// role. Sets userID, userRole, authType and (for shopper users) shopperID on
// the gin context.
func EnsureValidAPIKeyOrToken(queries db.Querier) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader("X-API-Key")
		if apiKey != "" {
			expected := os.Getenv("INTERNAL_API_KEY")
			if expected == "" || apiKey != expected {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid API key"})
				c.Abort()
				return
			}
			c.Set("userRole", constants.AdminRole)
			c.Set("authType", "api_key")
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No authentication provided"})
			c.Abort()
			return
		}

		user, err := validateJWTToken(c, queries, authHeader)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		c.Set("userID", user.ID.String())
		c.Set("userRole", user.Role)
		c.Set("authType", "jwt")

		// Shopper users are pinned to their own shopper record; brokers and
		// admins may view as a shopper via the X-Shopper-ID header.
		switch user.Role {
		case constants.ShopperRole:
			shopper, err := queries.GetShopperByUserID(c.Request.Context(), pgtype.UUID{Bytes: user.ID, Valid: true})
			if err != nil {
				c.JSON(http.StatusForbidden, gin.H{"error": "no shopper record for user"})
				c.Abort()
				return
			}
			c.Set("shopperID", shopper.ID.String())
		default:
			if viewAs := c.GetHeader("X-Shopper-ID"); viewAs != "" {
				if _, err := uuid.Parse(viewAs); err != nil {
					c.JSON(http.StatusBadRequest, gin.H{"error": "invalid shopper ID format"})
					c.Abort()
					return
				}
				c.Set("shopperID", viewAs)
			}
		}

		c.Next()
	}
}

// RequireRoles restricts a route to the given roles. API key auth always
// passes since it is already admin-equivalent.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("authType") == "api_key" {
			c.Next()
			return
		}

		userRole := c.GetString("userRole")
		for _, role := range roles {
			if userRole == role {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
		c.Abort()
	}
}

// GetShopperScope returns the shopper scope for the request, or nil when the
// caller sees the whole book.
func GetShopperScope(c *gin.Context) (*uuid.UUID, error) {
	raw := c.GetString("shopperID")
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid shopper scope: %w", err)
	}
	return &id, nil
}
