package xero

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"salesos-api/internal/db"
)

const (
	apiBaseURL    = "https://api.xero.com/api.xro/2.0"
	tokenURL      = "https://identity.xero.com/connect/token"
	connectionURL = "https://api.xero.com/connections"

	// Refresh slightly before expiry so in-flight requests don't race the deadline
	tokenExpirySlack = 60 * time.Second
)

// XeroClient talks to the Xero accounting API. OAuth tokens are persisted
// through the db layer so a refreshed token survives process restarts;
// Lambda instances share the same connection row.
type XeroClient struct {
	httpClient   *http.Client
	clientID     string
	clientSecret string
	queries      db.Querier
	logger       *zap.Logger
}

var _ InvoicingService = (*XeroClient)(nil)

// NewXeroClient creates a Xero client using the stored connection for auth.
func NewXeroClient(clientID, clientSecret string, queries db.Querier, logger *zap.Logger) *XeroClient {
	return &XeroClient{
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		clientID:     clientID,
		clientSecret: clientSecret,
		queries:      queries,
		logger:       logger,
	}
}

// GetServiceName returns the name of the service.
func (c *XeroClient) GetServiceName() string {
	return "xero"
}

// CheckConnection verifies the stored tokens can reach the organisation.
func (c *XeroClient) CheckConnection(ctx context.Context) error {
	conn, err := c.queries.GetXeroConnection(ctx)
	if err != nil {
		return errors.Wrap(err, "no Xero connection stored")
	}

	resp, err := c.doRequest(ctx, http.MethodGet, "/Organisation", conn, nil)
	if err != nil {
		return errors.Wrap(err, "failed to reach Xero")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status from Xero: %d", resp.StatusCode)
	}
	return nil
}

// ExchangeAuthCode completes the OAuth authorization-code flow: exchanges
// the code for tokens, resolves the tenant, and persists the connection.
func (c *XeroClient) ExchangeAuthCode(ctx context.Context, code, redirectURI string) (*db.XeroConnection, error) {
	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)
	form.Set("redirect_uri", redirectURI)

	token, err := c.requestToken(ctx, form)
	if err != nil {
		return nil, errors.Wrap(err, "auth code exchange failed")
	}

	tenantID, err := c.resolveTenant(ctx, token.AccessToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve Xero tenant")
	}

	conn, err := c.queries.UpsertXeroConnection(ctx, db.UpsertXeroConnectionParams{
		TenantID:     tenantID,
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		ExpiresAt:    pgtype.Timestamptz{Time: time.Now().Add(time.Duration(token.ExpiresIn) * time.Second), Valid: true},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to store Xero connection")
	}

	c.logger.Info("Xero connection established", zap.String("tenant_id", tenantID))
	return &conn, nil
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
}

// requestToken posts to the identity endpoint with client credentials.
func (c *XeroClient) requestToken(ctx context.Context, form url.Values) (*tokenResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	basic := base64.StdEncoding.EncodeToString([]byte(c.clientID + ":" + c.clientSecret))
	req.Header.Set("Authorization", "Basic "+basic)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("token endpoint returned %d: %s", resp.StatusCode, string(body))
	}

	var token tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return nil, err
	}
	return &token, nil
}

// resolveTenant returns the tenant ID of the first authorized organisation.
func (c *XeroClient) resolveTenant(ctx context.Context, accessToken string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, connectionURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("connections endpoint returned %d", resp.StatusCode)
	}

	var connections []struct {
		TenantID string `json:"tenantId"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&connections); err != nil {
		return "", err
	}
	if len(connections) == 0 {
		return "", fmt.Errorf("no Xero organisations authorized")
	}
	return connections[0].TenantID, nil
}

// refreshConnection rotates the refresh token and persists the new pair.
func (c *XeroClient) refreshConnection(ctx context.Context, conn db.XeroConnection) (db.XeroConnection, error) {
	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", conn.RefreshToken)

	token, err := c.requestToken(ctx, form)
	if err != nil {
		return conn, errors.Wrap(err, "token refresh failed")
	}

	conn.AccessToken = token.AccessToken
	conn.RefreshToken = token.RefreshToken
	conn.ExpiresAt = pgtype.Timestamptz{Time: time.Now().Add(time.Duration(token.ExpiresIn) * time.Second), Valid: true}

	if err := c.queries.UpdateXeroTokens(ctx, db.UpdateXeroTokensParams{
		TenantID:     conn.TenantID,
		AccessToken:  conn.AccessToken,
		RefreshToken: conn.RefreshToken,
		ExpiresAt:    conn.ExpiresAt,
	}); err != nil {
		return conn, errors.Wrap(err, "failed to persist refreshed tokens")
	}

	c.logger.Debug("Refreshed Xero tokens", zap.String("tenant_id", conn.TenantID))
	return conn, nil
}

// doRequest performs an authenticated API call, refreshing the access token
// when it is near expiry and retrying once on a 401.
func (c *XeroClient) doRequest(ctx context.Context, method, path string, conn db.XeroConnection, body interface{}) (*http.Response, error) {
	if conn.ExpiresAt.Valid && time.Now().After(conn.ExpiresAt.Time.Add(-tokenExpirySlack)) {
		refreshed, err := c.refreshConnection(ctx, conn)
		if err != nil {
			return nil, err
		}
		conn = refreshed
	}

	resp, err := c.send(ctx, method, path, conn, body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		resp.Body.Close()
		refreshed, err := c.refreshConnection(ctx, conn)
		if err != nil {
			return nil, err
		}
		return c.send(ctx, method, path, refreshed, body)
	}

	return resp, nil
}

func (c *XeroClient) send(ctx context.Context, method, path string, conn db.XeroConnection, body interface{}) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode request body")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, apiBaseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+conn.AccessToken)
	req.Header.Set("Xero-Tenant-Id", conn.TenantID)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.httpClient.Do(req)
}

// apiCall wraps doRequest with connection loading and JSON decoding of the
// response into out (when out is non-nil).
func (c *XeroClient) apiCall(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	conn, err := c.queries.GetXeroConnection(ctx)
	if err != nil {
		return errors.Wrap(err, "no Xero connection stored")
	}

	resp, err := c.doRequest(ctx, method, path, conn, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("xero %s %s returned %d: %s", method, path, resp.StatusCode, string(respBody))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return errors.Wrap(err, "failed to decode Xero response")
		}
	}
	return nil
}
