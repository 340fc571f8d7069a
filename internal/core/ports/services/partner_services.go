package services

import (
	"context"
	"time"

	"github.com/SscSPs/ark_management_app/internal/core/domain"
	"github.com/SscSPs/ark_management_app/internal/dto"
)

// VendorSvc manages partners
type VendorSvc interface {
	ListVendors(ctx context.Context) ([]domain.Vendor, error)
	CreateVendor(ctx context.Context, req dto.VendorRequest) (*domain.Vendor, error)
	UpdateVendor(ctx context.Context, vendorID string, req dto.VendorRequest) (*domain.Vendor, error)
	DeleteVendor(ctx context.Context, vendorID string) error
}

// PaymentSvc manages client payments
type PaymentSvc interface {
	ListPayments(ctx context.Context, startDate, endDate *time.Time) ([]domain.Payment, error)
	// RecordPayment stores the payment and attributes it to the vendor that referred the tenant, if any.
	RecordPayment(ctx context.Context, tenantID string, fields dto.PaymentFields) (*domain.Payment, error)
	UpdatePayment(ctx context.Context, paymentID string, fields dto.PaymentFields) (*domain.Payment, error)
	DeletePayment(ctx context.Context, paymentID string) error
	FinancialSummary(ctx context.Context) (*domain.FinancialSummary, error)
}

// WithdrawalSvc manages payouts to partners
type WithdrawalSvc interface {
	ListWithdrawals(ctx context.Context) ([]domain.Withdrawal, error)
	AddWithdrawal(ctx context.Context, fields dto.WithdrawalFields) (*domain.Withdrawal, error)
	UpdateWithdrawal(ctx context.Context, withdrawalID string, fields dto.WithdrawalFields) (*domain.Withdrawal, error)
	DeleteWithdrawal(ctx context.Context, withdrawalID string) error
}

// CommissionSvc derives and settles monthly commissions
type CommissionSvc interface {
	ComputeMonthlyCommissions(ctx context.Context, month domain.Month) ([]domain.MonthlyCommission, error)
	PayCommission(ctx context.Context, vendorID string, month domain.Month) (*domain.CommissionRecord, error)
	MarkCommissionPending(ctx context.Context, vendorID string, month domain.Month) error
}

// PartnerSvcFacade combines all partner-related service interfaces
type PartnerSvcFacade interface {
	VendorSvc
	PaymentSvc
	WithdrawalSvc
	CommissionSvc
}

// ReportSvc renders closing reports
type ReportSvc interface {
	// Generate returns the HTML closing report of the principal's tenant.
	Generate(ctx context.Context, principal domain.Principal, req domain.ReportRequest) ([]byte, error)
}
