package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/ark_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/ark_management_app/internal/core/ports/services"
	"github.com/SscSPs/ark_management_app/internal/dto"
	"github.com/SscSPs/ark_management_app/internal/storage"
	"github.com/stretchr/testify/mock"
)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LoginResponse), args.Error(1)
}

func (m *MockAuthService) Me(ctx context.Context, principal domain.Principal) (*domain.Principal, error) {
	args := m.Called(ctx, principal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Principal), args.Error(1)
}

func (m *MockAuthService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockAuthService) ForgotPassword(ctx context.Context, req dto.ForgotPasswordRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *MockAuthService) ResetPassword(ctx context.Context, token string, req dto.ResetPasswordRequest) error {
	return m.Called(ctx, token, req).Error(0)
}

func (m *MockAuthService) EnsureAdmin(ctx context.Context, email, password string) error {
	return m.Called(ctx, email, password).Error(0)
}

var _ portssvc.AuthSvcFacade = (*MockAuthService)(nil)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) ListTransactions(ctx context.Context, tenantID string, filter domain.TransactionFilter) ([]domain.Transaction, *string, error) {
	args := m.Called(ctx, tenantID, filter)
	var next *string
	if n := args.Get(1); n != nil {
		next = n.(*string)
	}
	if args.Get(0) == nil {
		return nil, next, args.Error(2)
	}
	return args.Get(0).([]domain.Transaction), next, args.Error(2)
}

func (m *MockTransactionService) CreateTransaction(ctx context.Context, tenantID string, fields domain.TransactionFields) (*domain.Transaction, error) {
	args := m.Called(ctx, tenantID, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) UpdateTransaction(ctx context.Context, tenantID, transactionID string, fields domain.TransactionFields) (*domain.Transaction, error) {
	args := m.Called(ctx, tenantID, transactionID, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) DeleteTransaction(ctx context.Context, tenantID, transactionID string) error {
	return m.Called(ctx, tenantID, transactionID).Error(0)
}

func (m *MockTransactionService) BatchDeleteTransactions(ctx context.Context, tenantID string, transactionIDs []string) (int64, error) {
	args := m.Called(ctx, tenantID, transactionIDs)
	return args.Get(0).(int64), args.Error(1)
}

var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Mock AttachmentService ---
type MockAttachmentService struct {
	mock.Mock
}

func (m *MockAttachmentService) AttachToTransaction(ctx context.Context, principal domain.Principal, transactionID string, upload portssvc.FileUpload) (*domain.Attachment, error) {
	args := m.Called(ctx, principal, transactionID, upload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Attachment), args.Error(1)
}

func (m *MockAttachmentService) DeleteAttachment(ctx context.Context, principal domain.Principal, attachmentID string) error {
	return m.Called(ctx, principal, attachmentID).Error(0)
}

func (m *MockAttachmentService) OpenFile(ctx context.Context, principal domain.Principal, key string) (*storage.Object, error) {
	args := m.Called(ctx, principal, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.Object), args.Error(1)
}

var _ portssvc.AttachmentSvcFacade = (*MockAttachmentService)(nil)

// --- Mock ReportService ---
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) Generate(ctx context.Context, principal domain.Principal, req domain.ReportRequest) ([]byte, error) {
	args := m.Called(ctx, principal, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

var _ portssvc.ReportSvc = (*MockReportService)(nil)

// --- Mock AdminService ---
type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) ListTenants(ctx context.Context) ([]dto.TenantListItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.TenantListItem), args.Error(1)
}

func (m *MockAdminService) CreateTenant(ctx context.Context, req dto.CreateTenantRequest) (*dto.CreateTenantResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CreateTenantResponse), args.Error(1)
}

func (m *MockAdminService) UpdateTenant(ctx context.Context, tenantID string, update dto.TenantUpdate) error {
	return m.Called(ctx, tenantID, update).Error(0)
}

func (m *MockAdminService) DeleteTenant(ctx context.Context, tenantID string, confirm bool) error {
	return m.Called(ctx, tenantID, confirm).Error(0)
}

func (m *MockAdminService) IssueRegistrationToken(ctx context.Context, tenantID string) (*dto.RegistrationTokenResponse, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.RegistrationTokenResponse), args.Error(1)
}

var _ portssvc.AdminSvcFacade = (*MockAdminService)(nil)

// --- Mock PartnerService ---
type MockPartnerService struct {
	mock.Mock
}

func (m *MockPartnerService) ListVendors(ctx context.Context) ([]domain.Vendor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Vendor), args.Error(1)
}

func (m *MockPartnerService) CreateVendor(ctx context.Context, req dto.VendorRequest) (*domain.Vendor, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vendor), args.Error(1)
}

func (m *MockPartnerService) UpdateVendor(ctx context.Context, vendorID string, req dto.VendorRequest) (*domain.Vendor, error) {
	args := m.Called(ctx, vendorID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vendor), args.Error(1)
}

func (m *MockPartnerService) DeleteVendor(ctx context.Context, vendorID string) error {
	return m.Called(ctx, vendorID).Error(0)
}

func (m *MockPartnerService) ListPayments(ctx context.Context, startDate, endDate *time.Time) ([]domain.Payment, error) {
	args := m.Called(ctx, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPartnerService) RecordPayment(ctx context.Context, tenantID string, fields dto.PaymentFields) (*domain.Payment, error) {
	args := m.Called(ctx, tenantID, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPartnerService) UpdatePayment(ctx context.Context, paymentID string, fields dto.PaymentFields) (*domain.Payment, error) {
	args := m.Called(ctx, paymentID, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPartnerService) DeletePayment(ctx context.Context, paymentID string) error {
	return m.Called(ctx, paymentID).Error(0)
}

func (m *MockPartnerService) FinancialSummary(ctx context.Context) (*domain.FinancialSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialSummary), args.Error(1)
}

func (m *MockPartnerService) ListWithdrawals(ctx context.Context) ([]domain.Withdrawal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Withdrawal), args.Error(1)
}

func (m *MockPartnerService) AddWithdrawal(ctx context.Context, fields dto.WithdrawalFields) (*domain.Withdrawal, error) {
	args := m.Called(ctx, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Withdrawal), args.Error(1)
}

func (m *MockPartnerService) UpdateWithdrawal(ctx context.Context, withdrawalID string, fields dto.WithdrawalFields) (*domain.Withdrawal, error) {
	args := m.Called(ctx, withdrawalID, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Withdrawal), args.Error(1)
}

func (m *MockPartnerService) DeleteWithdrawal(ctx context.Context, withdrawalID string) error {
	return m.Called(ctx, withdrawalID).Error(0)
}

func (m *MockPartnerService) ComputeMonthlyCommissions(ctx context.Context, month domain.Month) ([]domain.MonthlyCommission, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlyCommission), args.Error(1)
}

func (m *MockPartnerService) PayCommission(ctx context.Context, vendorID string, month domain.Month) (*domain.CommissionRecord, error) {
	args := m.Called(ctx, vendorID, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CommissionRecord), args.Error(1)
}

func (m *MockPartnerService) MarkCommissionPending(ctx context.Context, vendorID string, month domain.Month) error {
	return m.Called(ctx, vendorID, month).Error(0)
}

var _ portssvc.PartnerSvcFacade = (*MockPartnerService)(nil)

// --- Mock CatalogService ---
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListItems(ctx context.Context, tenantID string) (map[domain.CatalogType][]domain.CatalogItem, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.CatalogType][]domain.CatalogItem), args.Error(1)
}

func (m *MockCatalogService) CreateItem(ctx context.Context, tenantID string, req dto.CreateItemRequest) (*domain.CatalogItem, error) {
	args := m.Called(ctx, tenantID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CatalogItem), args.Error(1)
}

func (m *MockCatalogService) RenameItem(ctx context.Context, tenantID, itemID string, req dto.RenameItemRequest) (*domain.CatalogItem, error) {
	args := m.Called(ctx, tenantID, itemID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CatalogItem), args.Error(1)
}

func (m *MockCatalogService) DeleteItem(ctx context.Context, tenantID, itemID string) error {
	return m.Called(ctx, tenantID, itemID).Error(0)
}

var _ portssvc.CatalogSvcFacade = (*MockCatalogService)(nil)
