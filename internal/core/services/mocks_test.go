package services_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/ark_management_app/internal/core/domain"
	"github.com/SscSPs/ark_management_app/internal/mailer"
	"github.com/SscSPs/ark_management_app/internal/storage"
	"github.com/stretchr/testify/mock"
)

// --- Users ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.UserWithTenant, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserWithTenant), args.Error(1)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByResetHash(ctx context.Context, resetHash string) (*domain.User, error) {
	args := m.Called(ctx, resetHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) SetPasswordResetToken(ctx context.Context, userID string, resetHash *string, expires *time.Time) error {
	return m.Called(ctx, userID, resetHash, expires).Error(0)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	return m.Called(ctx, userID, passwordHash).Error(0)
}

func (m *MockUserRepository) RegisterWithToken(ctx context.Context, tokenHash string, user domain.User, now time.Time) (*domain.User, error) {
	args := m.Called(ctx, tokenHash, user, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// --- Tenants ---

type MockTenantRepository struct {
	mock.Mock
}

func (m *MockTenantRepository) FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}

func (m *MockTenantRepository) ListTenantSummaries(ctx context.Context) ([]domain.TenantSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TenantSummary), args.Error(1)
}

func (m *MockTenantRepository) FindTenantProfile(ctx context.Context, tenantID string) (*domain.TenantProfile, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TenantProfile), args.Error(1)
}

func (m *MockTenantRepository) CreateTenantWithToken(ctx context.Context, tenant domain.Tenant, token domain.RegistrationToken) error {
	return m.Called(ctx, tenant, token).Error(0)
}

func (m *MockTenantRepository) UpdateTenant(ctx context.Context, tenant domain.Tenant) error {
	return m.Called(ctx, tenant).Error(0)
}

func (m *MockTenantRepository) UpdateLicenseStatus(ctx context.Context, tenantID string, status domain.LicenseStatus) error {
	return m.Called(ctx, tenantID, status).Error(0)
}

func (m *MockTenantRepository) UpdateTenantProfile(ctx context.Context, tenant domain.Tenant) error {
	return m.Called(ctx, tenant).Error(0)
}

func (m *MockTenantRepository) ReissueRegistrationToken(ctx context.Context, token domain.RegistrationToken) error {
	return m.Called(ctx, token).Error(0)
}

func (m *MockTenantRepository) DeleteTenant(ctx context.Context, tenantID string) ([]string, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// --- Ledger ---

type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, tenantID string, filter domain.TransactionFilter) ([]domain.Transaction, *string, error) {
	args := m.Called(ctx, tenantID, filter)
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	if args.Get(0) == nil {
		return nil, next, args.Error(2)
	}
	return args.Get(0).([]domain.Transaction), next, args.Error(2)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, tenantID, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, tenantID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindTransactionOwner(ctx context.Context, transactionID string) (string, error) {
	args := m.Called(ctx, transactionID)
	return args.String(0), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, tx domain.Transaction) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, tx domain.Transaction) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, tenantID, transactionID string) ([]string, error) {
	args := m.Called(ctx, tenantID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockTransactionRepository) DeleteTransactions(ctx context.Context, tenantID string, transactionIDs []string) (int64, []string, error) {
	args := m.Called(ctx, tenantID, transactionIDs)
	var keys []string
	if args.Get(1) != nil {
		keys = args.Get(1).([]string)
	}
	return args.Get(0).(int64), keys, args.Error(2)
}

// --- Catalog ---

type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) ListItems(ctx context.Context, tenantID string) ([]domain.CatalogItem, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CatalogItem), args.Error(1)
}

func (m *MockCatalogRepository) ItemExists(ctx context.Context, tenantID string, itemType domain.CatalogType, name string) (bool, error) {
	args := m.Called(ctx, tenantID, itemType, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockCatalogRepository) SaveItem(ctx context.Context, item domain.CatalogItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockCatalogRepository) RenameItem(ctx context.Context, tenantID, itemID, name string, now time.Time) (*domain.CatalogItem, error) {
	args := m.Called(ctx, tenantID, itemID, name, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CatalogItem), args.Error(1)
}

func (m *MockCatalogRepository) DeleteItem(ctx context.Context, tenantID, itemID string) error {
	return m.Called(ctx, tenantID, itemID).Error(0)
}

// --- Attachments ---

type MockAttachmentRepository struct {
	mock.Mock
}

func (m *MockAttachmentRepository) FindAttachmentByID(ctx context.Context, attachmentID string) (*domain.Attachment, error) {
	args := m.Called(ctx, attachmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Attachment), args.Error(1)
}

func (m *MockAttachmentRepository) ReplaceTransactionAttachment(ctx context.Context, attachment domain.Attachment) (*domain.Attachment, error) {
	args := m.Called(ctx, attachment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Attachment), args.Error(1)
}

func (m *MockAttachmentRepository) ReplaceLogo(ctx context.Context, attachment domain.Attachment) (*domain.Attachment, error) {
	args := m.Called(ctx, attachment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Attachment), args.Error(1)
}

func (m *MockAttachmentRepository) DeleteAttachment(ctx context.Context, tenantID, attachmentID string) error {
	return m.Called(ctx, tenantID, attachmentID).Error(0)
}

// --- Partners ---

type MockVendorRepository struct {
	mock.Mock
}

func (m *MockVendorRepository) ListVendors(ctx context.Context) ([]domain.Vendor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Vendor), args.Error(1)
}

func (m *MockVendorRepository) FindVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error) {
	args := m.Called(ctx, vendorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vendor), args.Error(1)
}

func (m *MockVendorRepository) SaveVendor(ctx context.Context, vendor domain.Vendor) error {
	return m.Called(ctx, vendor).Error(0)
}

func (m *MockVendorRepository) UpdateVendor(ctx context.Context, vendor domain.Vendor) error {
	return m.Called(ctx, vendor).Error(0)
}

func (m *MockVendorRepository) DeleteVendor(ctx context.Context, vendorID string) error {
	return m.Called(ctx, vendorID).Error(0)
}

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) ListPayments(ctx context.Context, startDate, endDate *time.Time) ([]domain.Payment, error) {
	args := m.Called(ctx, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FinancialTotals(ctx context.Context) (*domain.FinancialSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialSummary), args.Error(1)
}

func (m *MockPaymentRepository) RecordPayment(ctx context.Context, payment domain.Payment) (*domain.CommissionAttribution, error) {
	args := m.Called(ctx, payment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CommissionAttribution), args.Error(1)
}

func (m *MockPaymentRepository) UpdatePayment(ctx context.Context, payment domain.Payment) error {
	return m.Called(ctx, payment).Error(0)
}

func (m *MockPaymentRepository) DeletePayment(ctx context.Context, paymentID string) error {
	return m.Called(ctx, paymentID).Error(0)
}

type MockWithdrawalRepository struct {
	mock.Mock
}

func (m *MockWithdrawalRepository) ListWithdrawals(ctx context.Context) ([]domain.Withdrawal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Withdrawal), args.Error(1)
}

func (m *MockWithdrawalRepository) FindWithdrawalByID(ctx context.Context, withdrawalID string) (*domain.Withdrawal, error) {
	args := m.Called(ctx, withdrawalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Withdrawal), args.Error(1)
}

func (m *MockWithdrawalRepository) SaveWithdrawal(ctx context.Context, withdrawal domain.Withdrawal) error {
	return m.Called(ctx, withdrawal).Error(0)
}

func (m *MockWithdrawalRepository) UpdateWithdrawal(ctx context.Context, withdrawal domain.Withdrawal) error {
	return m.Called(ctx, withdrawal).Error(0)
}

func (m *MockWithdrawalRepository) DeleteWithdrawal(ctx context.Context, withdrawalID string) error {
	return m.Called(ctx, withdrawalID).Error(0)
}

type MockCommissionRepository struct {
	mock.Mock
}

func (m *MockCommissionRepository) ListVendorSales(ctx context.Context, month domain.Month) ([]domain.VendorSales, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VendorSales), args.Error(1)
}

func (m *MockCommissionRepository) ListCommissionRecords(ctx context.Context, month domain.Month) ([]domain.CommissionRecord, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CommissionRecord), args.Error(1)
}

func (m *MockCommissionRepository) PayCommission(ctx context.Context, vendorID string, month domain.Month, withdrawalID string, paidAt time.Time) (*domain.CommissionRecord, error) {
	args := m.Called(ctx, vendorID, month, withdrawalID, paidAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CommissionRecord), args.Error(1)
}

func (m *MockCommissionRepository) MarkCommissionPending(ctx context.Context, vendorID string, month domain.Month) error {
	return m.Called(ctx, vendorID, month).Error(0)
}

// --- Collaborators ---

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(ctx context.Context, msg mailer.Message) error {
	return m.Called(ctx, msg).Error(0)
}

// memStore is an in-memory storage.FileStore.
type memStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	saveErr error
}

func newMemStore() *memStore {
	return &memStore{objects: map[string][]byte{}}
}

func (s *memStore) Save(_ context.Context, key string, r io.Reader, _ string) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = data
	return nil
}

func (s *memStore) Open(_ context.Context, key string) (*storage.Object, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.objects[key]
	if !ok {
		return nil, storage.ErrNotExist
	}
	return &storage.Object{Body: io.NopCloser(bytes.NewReader(data)), Size: int64(len(data))}, nil
}

func (s *memStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	return nil
}

func (s *memStore) DeletePrefix(_ context.Context, prefix string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key := range s.objects {
		if strings.HasPrefix(key, prefix) {
			delete(s.objects, key)
		}
	}
	return nil
}

func (s *memStore) Check(context.Context) error { return nil }

func (s *memStore) has(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.objects[key]
	return ok
}

func (s *memStore) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}

var fixedNow = time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func strPtr(s string) *string { return &s }

// pngBytes starts with the PNG signature so content sniffing reports image/png.
func pngBytes() []byte {
	return append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 64)...)
}
