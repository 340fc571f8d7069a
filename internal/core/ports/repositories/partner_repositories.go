package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/ark_management_app/internal/core/domain"
)

// VendorRepositoryFacade defines persistence operations for vendors (partners)
type VendorRepositoryFacade interface {
	ListVendors(ctx context.Context) ([]domain.Vendor, error)
	FindVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error)
	SaveVendor(ctx context.Context, vendor domain.Vendor) error
	UpdateVendor(ctx context.Context, vendor domain.Vendor) error
	// DeleteVendor fails with a validation error when the vendor has commission history.
	DeleteVendor(ctx context.Context, vendorID string) error
}

// PaymentReader defines read operations for client payments
type PaymentReader interface {
	// ListPayments lists payments, newest first, optionally within an inclusive date range.
	ListPayments(ctx context.Context, startDate, endDate *time.Time) ([]domain.Payment, error)
	FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)
	// FinancialTotals returns the sum of all payments and of all withdrawals.
	FinancialTotals(ctx context.Context) (*domain.FinancialSummary, error)
}

// PaymentWriter defines write operations for client payments
type PaymentWriter interface {
	// RecordPayment inserts the payment and, when the paying tenant was referred by a vendor, its
	// commission attribution, in one database transaction. The attribution is nil when there is no referrer.
	RecordPayment(ctx context.Context, payment domain.Payment) (*domain.CommissionAttribution, error)

	// UpdatePayment overwrites amount, date and notes and refreshes the attribution's commission snapshot.
	UpdatePayment(ctx context.Context, payment domain.Payment) error

	// DeletePayment removes a payment; its attribution follows.
	DeletePayment(ctx context.Context, paymentID string) error
}

// PaymentRepositoryFacade combines all payment-related repository interfaces
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}

// WithdrawalRepositoryFacade defines persistence operations for vendor withdrawals
type WithdrawalRepositoryFacade interface {
	ListWithdrawals(ctx context.Context) ([]domain.Withdrawal, error)
	FindWithdrawalByID(ctx context.Context, withdrawalID string) (*domain.Withdrawal, error)
	SaveWithdrawal(ctx context.Context, withdrawal domain.Withdrawal) error
	UpdateWithdrawal(ctx context.Context, withdrawal domain.Withdrawal) error
	// DeleteWithdrawal removes a withdrawal and reverts to pending any commission it paid,
	// in one database transaction.
	DeleteWithdrawal(ctx context.Context, withdrawalID string) error
}

// CommissionReader defines read operations for monthly commissions
type CommissionReader interface {
	// ListVendorSales aggregates the attributed payments dated in month per vendor.
	ListVendorSales(ctx context.Context, month domain.Month) ([]domain.VendorSales, error)
	// ListCommissionRecords lists the persisted statuses for month.
	ListCommissionRecords(ctx context.Context, month domain.Month) ([]domain.CommissionRecord, error)
}

// CommissionWriter defines the commission settlement operations
type CommissionWriter interface {
	// PayCommission computes the vendor's commission for month, inserts a withdrawal for it and
	// marks the month paid, in one database transaction.
	PayCommission(ctx context.Context, vendorID string, month domain.Month, withdrawalID string, paidAt time.Time) (*domain.CommissionRecord, error)

	// MarkCommissionPending reverts a month to pending and deletes the withdrawal that paid it.
	MarkCommissionPending(ctx context.Context, vendorID string, month domain.Month) error
}

// CommissionRepositoryFacade combines all commission-related repository interfaces
type CommissionRepositoryFacade interface {
	CommissionReader
	CommissionWriter
}
