package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"salesos-api/internal/db"
	"salesos-api/internal/testutil"
)

func newBuyerRouter(queries *testutil.MockQuerier) *gin.Engine {
	common := NewCommonServices(queries, new(testutil.MockInvoicingService), nil, nil)
	handler := NewBuyerHandler(common)

	router := gin.New()
	router.GET("/api/v1/buyers", handler.ListBuyers)
	router.GET("/api/v1/buyers/:id", handler.GetBuyer)
	router.POST("/api/v1/buyers", handler.CreateBuyer)
	return router
}

func TestGetBuyerEndpoint(t *testing.T) {
	buyerID := uuid.New()

	t.Run("returns the buyer", func(t *testing.T) {
		queries := new(testutil.MockQuerier)
		queries.On("GetBuyer", mock.Anything, buyerID).Return(db.Buyer{
			ID:         buyerID,
			Name:       "Maison Verre",
			Country:    pgtype.Text{String: "AE", Valid: true},
			VatReclaim: pgtype.Text{String: "Can reclaim import VAT", Valid: true},
		}, nil)

		router := newBuyerRouter(queries)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/buyers/"+buyerID.String(), nil))

		require.Equal(t, http.StatusOK, w.Code)

		var response BuyerResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, buyerID.String(), response.ID)
		assert.Equal(t, "buyer", response.Object)
		assert.Equal(t, "Maison Verre", response.Name)
		assert.Equal(t, "AE", response.Country)
	})

	t.Run("404 on a missing buyer", func(t *testing.T) {
		queries := new(testutil.MockQuerier)
		queries.On("GetBuyer", mock.Anything, buyerID).Return(db.Buyer{}, pgx.ErrNoRows)

		router := newBuyerRouter(queries)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/buyers/"+buyerID.String(), nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("400 on a malformed ID", func(t *testing.T) {
		router := newBuyerRouter(new(testutil.MockQuerier))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/buyers/not-a-uuid", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCreateBuyerEndpoint(t *testing.T) {
	t.Run("creates a buyer with normalized country", func(t *testing.T) {
		queries := new(testutil.MockQuerier)
		queries.On("CreateBuyer", mock.Anything, mock.MatchedBy(func(arg db.CreateBuyerParams) bool {
			return arg.Name == "Maison Verre" && arg.Country.String == "AE"
		})).Return(db.Buyer{ID: uuid.New(), Name: "Maison Verre", Country: pgtype.Text{String: "AE", Valid: true}}, nil)

		router := newBuyerRouter(queries)
		payload, _ := json.Marshal(CreateBuyerRequest{Name: "Maison Verre", Country: "ae"})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/buyers", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		queries.AssertExpectations(t)
	})

	t.Run("rejects a buyer without a name", func(t *testing.T) {
		router := newBuyerRouter(new(testutil.MockQuerier))
		req := httptest.NewRequest(http.MethodPost, "/api/v1/buyers", bytes.NewReader([]byte(`{"email":"x@example.com"}`)))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
