package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"

	"salesos-api/internal/db"
	"salesos-api/internal/helpers"
)

const topSupplierLimit = 5

// DashboardMetricsService aggregates sales figures for the dashboard. When a
// shopper ID is given, every figure is scoped to that shopper's sales.
type DashboardMetricsService struct {
	queries db.Querier
	logger  *zap.Logger
}

func NewDashboardMetricsService(queries db.Querier, logger *zap.Logger) *DashboardMetricsService {
	return &DashboardMetricsService{queries: queries, logger: logger}
}

// MonthlyMargin is one month's margin totals, newest first.
type MonthlyMargin struct {
	Month                   time.Time `json:"month"`
	GrossMarginGBP          float64   `json:"gross_margin_gbp"`
	CommissionableMarginGBP float64   `json:"commissionable_margin_gbp"`
	SaleCount               int64     `json:"sale_count"`
}

// TopSupplier is a supplier ranked by how many sale items it sourced.
type TopSupplier struct {
	SupplierID  uuid.UUID `json:"supplier_id"`
	Name        string    `json:"name"`
	ItemCount   int64     `json:"item_count"`
	TotalBuyGBP float64   `json:"total_buy_gbp"`
}

// DashboardMetrics is the full dashboard payload.
type DashboardMetrics struct {
	TotalSales              int64           `json:"total_sales"`
	GrossMarginGBP          float64         `json:"gross_margin_gbp"`
	CommissionableMarginGBP float64         `json:"commissionable_margin_gbp"`
	MonthlyMargins          []MonthlyMargin `json:"monthly_margins"`
	TopSuppliers            []TopSupplier   `json:"top_suppliers"`
}

// GetDashboardMetrics builds the dashboard. shopperID of nil means the whole
// book; supplier rankings are always book-wide since items don't carry a
// shopper of their own.
func (s *DashboardMetricsService) GetDashboardMetrics(ctx context.Context, shopperID *uuid.UUID) (*DashboardMetrics, error) {
	var scope pgtype.UUID
	if shopperID != nil {
		scope = pgtype.UUID{Bytes: *shopperID, Valid: true}
	}

	totals, err := s.queries.GetSalesTotals(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("failed to load sales totals: %w", err)
	}

	monthlyRows, err := s.queries.GetMonthlyMarginTotals(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("failed to load monthly margins: %w", err)
	}

	monthly := make([]MonthlyMargin, 0, len(monthlyRows))
	for _, row := range monthlyRows {
		monthly = append(monthly, MonthlyMargin{
			Month:                   row.Month.Time,
			GrossMarginGBP:          helpers.RoundMoney(row.GrossMarginGbp),
			CommissionableMarginGBP: helpers.RoundMoney(row.CommissionableMarginGbp),
			SaleCount:               row.SaleCount,
		})
	}

	supplierRows, err := s.queries.ListTopSuppliers(ctx, topSupplierLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load top suppliers: %w", err)
	}

	suppliers := make([]TopSupplier, 0, len(supplierRows))
	for _, row := range supplierRows {
		suppliers = append(suppliers, TopSupplier{
			SupplierID:  row.SupplierID,
			Name:        row.Name,
			ItemCount:   row.ItemCount,
			TotalBuyGBP: helpers.RoundMoney(row.TotalBuyGbp),
		})
	}

	return &DashboardMetrics{
		TotalSales:              totals.TotalSales,
		GrossMarginGBP:          helpers.RoundMoney(totals.GrossMarginGbp),
		CommissionableMarginGBP: helpers.RoundMoney(totals.CommissionableMarginGbp),
		MonthlyMargins:          monthly,
		TopSuppliers:            suppliers,
	}, nil
}
