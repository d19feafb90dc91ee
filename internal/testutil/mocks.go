package testutil

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/mock"

	"salesos-api/internal/client/xero"
	"salesos-api/internal/db"
)

// MockQuerier is a testify mock of the db.Querier interface.
type MockQuerier struct {
	mock.Mock
}

var _ db.Querier = (*MockQuerier)(nil)
var _ db.TxRunner = (*MockQuerier)(nil)

// ExecTx runs fn against the mock itself; commit/rollback behavior belongs
// to the real db.Queries implementation.
func (m *MockQuerier) ExecTx(ctx context.Context, fn func(db.Querier) error) error {
	return fn(m)
}

func (m *MockQuerier) CountSales(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQuerier) CreateBuyer(ctx context.Context, arg db.CreateBuyerParams) (db.Buyer, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(db.Buyer), args.Error(1)
}

func (m *MockQuerier) CreateSale(ctx context.Context, arg db.CreateSaleParams) (db.Sale, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(db.Sale), args.Error(1)
}

func (m *MockQuerier) CreateSaleItem(ctx context.Context, arg db.CreateSaleItemParams) (db.SaleItem, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(db.SaleItem), args.Error(1)
}

func (m *MockQuerier) CreateShopper(ctx context.Context, arg db.CreateShopperParams) (db.Shopper, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(db.Shopper), args.Error(1)
}

func (m *MockQuerier) CreateSupplier(ctx context.Context, arg db.CreateSupplierParams) (db.Supplier, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(db.Supplier), args.Error(1)
}

func (m *MockQuerier) CreateUser(ctx context.Context, arg db.CreateUserParams) (db.User, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(db.User), args.Error(1)
}

func (m *MockQuerier) DeleteBuyer(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockQuerier) DeleteShopper(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockQuerier) DeleteSupplier(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockQuerier) DeleteUser(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockQuerier) GetBuyer(ctx context.Context, id uuid.UUID) (db.Buyer, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(db.Buyer), args.Error(1)
}

func (m *MockQuerier) GetMonthlyMarginTotals(ctx context.Context, shopperID pgtype.UUID) ([]db.GetMonthlyMarginTotalsRow, error) {
	args := m.Called(ctx, shopperID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db.GetMonthlyMarginTotalsRow), args.Error(1)
}

func (m *MockQuerier) GetSale(ctx context.Context, id uuid.UUID) (db.Sale, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(db.Sale), args.Error(1)
}

func (m *MockQuerier) GetSalesTotals(ctx context.Context, shopperID pgtype.UUID) (db.GetSalesTotalsRow, error) {
	args := m.Called(ctx, shopperID)
	return args.Get(0).(db.GetSalesTotalsRow), args.Error(1)
}

func (m *MockQuerier) GetShopper(ctx context.Context, id uuid.UUID) (db.Shopper, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(db.Shopper), args.Error(1)
}

func (m *MockQuerier) GetShopperByUserID(ctx context.Context, userID pgtype.UUID) (db.Shopper, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(db.Shopper), args.Error(1)
}

func (m *MockQuerier) GetSupplier(ctx context.Context, id uuid.UUID) (db.Supplier, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(db.Supplier), args.Error(1)
}

func (m *MockQuerier) GetUser(ctx context.Context, id uuid.UUID) (db.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(db.User), args.Error(1)
}

func (m *MockQuerier) GetUserByClerkID(ctx context.Context, clerkID string) (db.User, error) {
	args := m.Called(ctx, clerkID)
	return args.Get(0).(db.User), args.Error(1)
}

func (m *MockQuerier) GetXeroConnection(ctx context.Context) (db.XeroConnection, error) {
	args := m.Called(ctx)
	return args.Get(0).(db.XeroConnection), args.Error(1)
}

func (m *MockQuerier) ListBuyers(ctx context.Context) ([]db.Buyer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db.Buyer), args.Error(1)
}

func (m *MockQuerier) ListSaleItemsBySale(ctx context.Context, saleID uuid.UUID) ([]db.SaleItem, error) {
	args := m.Called(ctx, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db.SaleItem), args.Error(1)
}

func (m *MockQuerier) ListSales(ctx context.Context) ([]db.Sale, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db.Sale), args.Error(1)
}

func (m *MockQuerier) ListSalesByShopper(ctx context.Context, shopperID pgtype.UUID) ([]db.Sale, error) {
	args := m.Called(ctx, shopperID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db.Sale), args.Error(1)
}

func (m *MockQuerier) ListShoppers(ctx context.Context) ([]db.Shopper, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db.Shopper), args.Error(1)
}

func (m *MockQuerier) ListSuppliers(ctx context.Context) ([]db.Supplier, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db.Supplier), args.Error(1)
}

func (m *MockQuerier) ListTopSuppliers(ctx context.Context, limit int32) ([]db.ListTopSuppliersRow, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db.ListTopSuppliersRow), args.Error(1)
}

func (m *MockQuerier) ListUsers(ctx context.Context) ([]db.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db.User), args.Error(1)
}

func (m *MockQuerier) UpdateBuyer(ctx context.Context, arg db.UpdateBuyerParams) (db.Buyer, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(db.Buyer), args.Error(1)
}

func (m *MockQuerier) UpdateBuyerXeroContact(ctx context.Context, arg db.UpdateBuyerXeroContactParams) error {
	args := m.Called(ctx, arg)
	return args.Error(0)
}

func (m *MockQuerier) UpdateSaleStatus(ctx context.Context, arg db.UpdateSaleStatusParams) (db.Sale, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(db.Sale), args.Error(1)
}

func (m *MockQuerier) UpdateSaleXeroInvoice(ctx context.Context, arg db.UpdateSaleXeroInvoiceParams) (db.Sale, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(db.Sale), args.Error(1)
}

func (m *MockQuerier) UpdateShopper(ctx context.Context, arg db.UpdateShopperParams) (db.Shopper, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(db.Shopper), args.Error(1)
}

func (m *MockQuerier) UpdateSupplier(ctx context.Context, arg db.UpdateSupplierParams) (db.Supplier, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(db.Supplier), args.Error(1)
}

func (m *MockQuerier) UpdateUserRole(ctx context.Context, arg db.UpdateUserRoleParams) (db.User, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(db.User), args.Error(1)
}

func (m *MockQuerier) UpdateXeroTokens(ctx context.Context, arg db.UpdateXeroTokensParams) error {
	args := m.Called(ctx, arg)
	return args.Error(0)
}

func (m *MockQuerier) UpsertXeroConnection(ctx context.Context, arg db.UpsertXeroConnectionParams) (db.XeroConnection, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(db.XeroConnection), args.Error(1)
}

// MockInvoicingService is a testify mock of the xero.InvoicingService
// interface.
type MockInvoicingService struct {
	mock.Mock
}

var _ xero.InvoicingService = (*MockInvoicingService)(nil)

func (m *MockInvoicingService) GetServiceName() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockInvoicingService) CheckConnection(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockInvoicingService) FindContactByName(ctx context.Context, name string) (*xero.Contact, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*xero.Contact), args.Error(1)
}

func (m *MockInvoicingService) CreateContact(ctx context.Context, contact xero.Contact) (xero.Contact, error) {
	args := m.Called(ctx, contact)
	return args.Get(0).(xero.Contact), args.Error(1)
}

func (m *MockInvoicingService) CreateInvoice(ctx context.Context, params xero.InvoiceParams) (xero.Invoice, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(xero.Invoice), args.Error(1)
}

func (m *MockInvoicingService) GetInvoice(ctx context.Context, invoiceID string) (xero.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	return args.Get(0).(xero.Invoice), args.Error(1)
}
