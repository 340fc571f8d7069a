package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/ark_management_app/internal/apperrors"
	"github.com/SscSPs/ark_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ark_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ark_management_app/internal/core/ports/services"
	"github.com/SscSPs/ark_management_app/internal/dto"
	"github.com/SscSPs/ark_management_app/internal/metrics"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type partnerService struct {
	BaseService
	vendorRepo     portsrepo.VendorRepositoryFacade
	paymentRepo    portsrepo.PaymentRepositoryFacade
	withdrawalRepo portsrepo.WithdrawalRepositoryFacade
	commissionRepo portsrepo.CommissionRepositoryFacade
	now            func() time.Time
}

// PartnerOption is a functional option for configuring the partner service
type PartnerOption func(*partnerService)

// WithPartnerClock replaces the wall clock used to date commission payouts
func WithPartnerClock(now func() time.Time) PartnerOption {
	return func(s *partnerService) {
		s.now = now
	}
}

func NewPartnerService(repos portsrepo.RepositoryProvider, options ...PartnerOption) portssvc.PartnerSvcFacade {
	svc := &partnerService{
		BaseService:    newBaseService("partner"),
		vendorRepo:     repos.VendorRepo,
		paymentRepo:    repos.PaymentRepo,
		withdrawalRepo: repos.WithdrawalRepo,
		commissionRepo: repos.CommissionRepo,
		now:            time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.PartnerSvcFacade = (*partnerService)(nil)

// --- Vendors ---

func (s *partnerService) ListVendors(ctx context.Context) ([]domain.Vendor, error) {
	vendors, err := s.vendorRepo.ListVendors(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list partners")
		return nil, err
	}
	if vendors == nil {
		return []domain.Vendor{}, nil
	}
	return vendors, nil
}

func validateVendor(req dto.VendorRequest) (string, decimal.Decimal, error) {
	name, err := requireName(req.Name)
	if err != nil {
		return "", decimal.Zero, err
	}
	if req.Percentage == nil {
		return "", decimal.Zero, apperrors.NewValidationFailedError("percentage is required")
	}
	pct := *req.Percentage
	if pct.IsNegative() || pct.GreaterThan(domain.MaxCommissionPercentage) {
		return "", decimal.Zero, apperrors.NewValidationFailedError("percentage must be between 0 and 99.99")
	}
	return name, pct.Round(domain.MoneyScale), nil
}

func (s *partnerService) CreateVendor(ctx context.Context, req dto.VendorRequest) (*domain.Vendor, error) {
	name, pct, err := validateVendor(req)
	if err != nil {
		return nil, err
	}
	now := s.now()
	vendor := domain.Vendor{
		VendorID:    uuid.NewString(),
		Name:        name,
		Percentage:  pct,
		PixKey:      strings.TrimSpace(req.PixKey),
		Phone:       strings.TrimSpace(req.Phone),
		Address:     strings.TrimSpace(req.Address),
		AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
	if err := s.vendorRepo.SaveVendor(ctx, vendor); err != nil {
		if !isExpected(err) {
			s.LogError(ctx, err, "Failed to save partner")
		}
		return nil, err
	}
	s.LogInfo(ctx, "Partner created", slog.String("vendor_id", vendor.VendorID))
	return &vendor, nil
}

// UpdateVendor changes the percentage for future payments and for the derived commissions
// of unpaid months. Attribution snapshots and paid months keep their values.
func (s *partnerService) UpdateVendor(ctx context.Context, vendorID string, req dto.VendorRequest) (*domain.Vendor, error) {
	name, pct, err := validateVendor(req)
	if err != nil {
		return nil, err
	}
	vendor := domain.Vendor{
		VendorID:    vendorID,
		Name:        name,
		Percentage:  pct,
		PixKey:      strings.TrimSpace(req.PixKey),
		Phone:       strings.TrimSpace(req.Phone),
		Address:     strings.TrimSpace(req.Address),
		AuditFields: domain.AuditFields{LastUpdatedAt: s.now()},
	}
	if err := s.vendorRepo.UpdateVendor(ctx, vendor); err != nil {
		if !isExpected(err) {
			s.LogError(ctx, err, "Failed to update partner", slog.String("vendor_id", vendorID))
		}
		return nil, err
	}
	return s.vendorRepo.FindVendorByID(ctx, vendorID)
}

func (s *partnerService) DeleteVendor(ctx context.Context, vendorID string) error {
	if err := s.vendorRepo.DeleteVendor(ctx, vendorID); err != nil {
		if !isExpected(err) {
			s.LogError(ctx, err, "Failed to delete partner", slog.String("vendor_id", vendorID))
		}
		return err
	}
	s.LogInfo(ctx, "Partner deleted", slog.String("vendor_id", vendorID))
	return nil
}

// --- Payments ---

func requirePositiveAmount(amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, apperrors.NewValidationFailedError("amount must be greater than zero")
	}
	return amount.RoundBank(domain.MoneyScale), nil
}

func (s *partnerService) ListPayments(ctx context.Context, startDate, endDate *time.Time) ([]domain.Payment, error) {
	payments, err := s.paymentRepo.ListPayments(ctx, startDate, endDate)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payments")
		return nil, err
	}
	if payments == nil {
		return []domain.Payment{}, nil
	}
	return payments, nil
}

func (s *partnerService) RecordPayment(ctx context.Context, tenantID string, fields dto.PaymentFields) (*domain.Payment, error) {
	amount, err := requirePositiveAmount(fields.Amount)
	if err != nil {
		return nil, err
	}
	now := s.now()
	payment := domain.Payment{
		PaymentID:   uuid.NewString(),
		TenantID:    tenantID,
		Amount:      amount,
		PaymentDate: domain.DateOnly(fields.PaymentDate),
		Notes:       strings.TrimSpace(fields.Notes),
		AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}

	attribution, err := s.paymentRepo.RecordPayment(ctx, payment)
	if err != nil {
		if !isExpected(err) {
			s.LogError(ctx, err, "Failed to record payment", slog.String("tenant_id", tenantID))
		}
		return nil, err
	}
	if attribution != nil {
		s.LogInfo(ctx, "Payment recorded with commission attribution",
			slog.String("payment_id", payment.PaymentID),
			slog.String("vendor_id", attribution.VendorID),
			slog.String("commission", attribution.CommissionSnapshot.StringFixed(2)))
	} else {
		s.LogInfo(ctx, "Payment recorded", slog.String("payment_id", payment.PaymentID))
	}
	return s.findPayment(ctx, payment), nil
}

func (s *partnerService) UpdatePayment(ctx context.Context, paymentID string, fields dto.PaymentFields) (*domain.Payment, error) {
	amount, err := requirePositiveAmount(fields.Amount)
	if err != nil {
		return nil, err
	}
	payment := domain.Payment{
		PaymentID:   paymentID,
		Amount:      amount,
		PaymentDate: domain.DateOnly(fields.PaymentDate),
		Notes:       strings.TrimSpace(fields.Notes),
		AuditFields: domain.AuditFields{LastUpdatedAt: s.now()},
	}
	if err := s.paymentRepo.UpdatePayment(ctx, payment); err != nil {
		if !isExpected(err) {
			s.LogError(ctx, err, "Failed to update payment", slog.String("payment_id", paymentID))
		}
		return nil, err
	}
	return s.findPayment(ctx, payment), nil
}

func (s *partnerService) findPayment(ctx context.Context, written domain.Payment) *domain.Payment {
	stored, err := s.paymentRepo.FindPaymentByID(ctx, written.PaymentID)
	if err != nil {
		s.LogWarn(ctx, "Failed to reload payment after write", slog.String("payment_id", written.PaymentID), slog.String("error", err.Error()))
		return &written
	}
	return stored
}

func (s *partnerService) DeletePayment(ctx context.Context, paymentID string) error {
	if err := s.paymentRepo.DeletePayment(ctx, paymentID); err != nil {
		if !isExpected(err) {
			s.LogError(ctx, err, "Failed to delete payment", slog.String("payment_id", paymentID))
		}
		return err
	}
	s.LogInfo(ctx, "Payment deleted", slog.String("payment_id", paymentID))
	return nil
}

func (s *partnerService) FinancialSummary(ctx context.Context) (*domain.FinancialSummary, error) {
	summary, err := s.paymentRepo.FinancialTotals(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute financial summary")
		return nil, err
	}
	return summary, nil
}

// --- Withdrawals ---

func (s *partnerService) ListWithdrawals(ctx context.Context) ([]domain.Withdrawal, error) {
	withdrawals, err := s.withdrawalRepo.ListWithdrawals(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list withdrawals")
		return nil, err
	}
	if withdrawals == nil {
		return []domain.Withdrawal{}, nil
	}
	return withdrawals, nil
}

func (s *partnerService) AddWithdrawal(ctx context.Context, fields dto.WithdrawalFields) (*domain.Withdrawal, error) {
	amount, err := requirePositiveAmount(fields.Amount)
	if err != nil {
		return nil, err
	}
	now := s.now()
	withdrawal := domain.Withdrawal{
		WithdrawalID:   uuid.NewString(),
		VendorID:       fields.VendorID,
		Amount:         amount,
		WithdrawalDate: domain.DateOnly(fields.WithdrawalDate),
		AuditFields:    domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
	if err := s.withdrawalRepo.SaveWithdrawal(ctx, withdrawal); err != nil {
		if !isExpected(err) {
			s.LogError(ctx, err, "Failed to save withdrawal", slog.String("vendor_id", fields.VendorID))
		}
		return nil, err
	}
	s.LogInfo(ctx, "Withdrawal recorded", slog.String("withdrawal_id", withdrawal.WithdrawalID))
	return s.findWithdrawal(ctx, withdrawal), nil
}

func (s *partnerService) UpdateWithdrawal(ctx context.Context, withdrawalID string, fields dto.WithdrawalFields) (*domain.Withdrawal, error) {
	amount, err := requirePositiveAmount(fields.Amount)
	if err != nil {
		return nil, err
	}
	withdrawal := domain.Withdrawal{
		WithdrawalID:   withdrawalID,
		VendorID:       fields.VendorID,
		Amount:         amount,
		WithdrawalDate: domain.DateOnly(fields.WithdrawalDate),
		AuditFields:    domain.AuditFields{LastUpdatedAt: s.now()},
	}
	if err := s.withdrawalRepo.UpdateWithdrawal(ctx, withdrawal); err != nil {
		if !isExpected(err) {
			s.LogError(ctx, err, "Failed to update withdrawal", slog.String("withdrawal_id", withdrawalID))
		}
		return nil, err
	}
	return s.findWithdrawal(ctx, withdrawal), nil
}

func (s *partnerService) findWithdrawal(ctx context.Context, written domain.Withdrawal) *domain.Withdrawal {
	stored, err := s.withdrawalRepo.FindWithdrawalByID(ctx, written.WithdrawalID)
	if err != nil {
		s.LogWarn(ctx, "Failed to reload withdrawal after write", slog.String("withdrawal_id", written.WithdrawalID), slog.String("error", err.Error()))
		return &written
	}
	return stored
}

// DeleteWithdrawal also reopens the commission month the withdrawal paid, if any.
func (s *partnerService) DeleteWithdrawal(ctx context.Context, withdrawalID string) error {
	if err := s.withdrawalRepo.DeleteWithdrawal(ctx, withdrawalID); err != nil {
		if !isExpected(err) {
			s.LogError(ctx, err, "Failed to delete withdrawal", slog.String("withdrawal_id", withdrawalID))
		}
		return err
	}
	s.LogInfo(ctx, "Withdrawal deleted", slog.String("withdrawal_id", withdrawalID))
	return nil
}

// --- Commissions ---

func (s *partnerService) ComputeMonthlyCommissions(ctx context.Context, month domain.Month) ([]domain.MonthlyCommission, error) {
	sales, err := s.commissionRepo.ListVendorSales(ctx, month)
	if err != nil {
		s.LogError(ctx, err, "Failed to aggregate partner sales", slog.String("month", month.String()))
		return nil, err
	}
	records, err := s.commissionRepo.ListCommissionRecords(ctx, month)
	if err != nil {
		s.LogError(ctx, err, "Failed to list commission records", slog.String("month", month.String()))
		return nil, err
	}
	return domain.BuildMonthlyCommissions(month, sales, records), nil
}

func (s *partnerService) PayCommission(ctx context.Context, vendorID string, month domain.Month) (*domain.CommissionRecord, error) {
	record, err := s.commissionRepo.PayCommission(ctx, vendorID, month, uuid.NewString(), s.now())
	if err != nil {
		if !isExpected(err) {
			s.LogError(ctx, err, "Failed to pay commission", slog.String("vendor_id", vendorID), slog.String("month", month.String()))
		}
		return nil, err
	}
	metrics.RecordCommissionPayout()
	s.LogInfo(ctx, "Commission paid",
		slog.String("vendor_id", vendorID),
		slog.String("month", month.String()),
		slog.String("amount", record.PaidAmount.StringFixed(2)))
	return record, nil
}

func (s *partnerService) MarkCommissionPending(ctx context.Context, vendorID string, month domain.Month) error {
	if err := s.commissionRepo.MarkCommissionPending(ctx, vendorID, month); err != nil {
		if !isExpected(err) {
			s.LogError(ctx, err, "Failed to revert commission", slog.String("vendor_id", vendorID), slog.String("month", month.String()))
		}
		return err
	}
	s.LogInfo(ctx, "Commission marked pending", slog.String("vendor_id", vendorID), slog.String("month", month.String()))
	return nil
}
