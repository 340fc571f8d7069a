package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Vendor is a row of the vendors table.
type Vendor struct {
	VendorID   string          `db:"vendor_id"`
	Name       string          `db:"name"`
	Percentage decimal.Decimal `db:"percentage"`
	PixKey     string          `db:"pix_key"`
	Phone      string          `db:"phone"`
	Address    string          `db:"address"`
	AuditFields
}

// Payment is a row of the payments table joined with the paying client's company name.
type Payment struct {
	PaymentID   string          `db:"payment_id"`
	ClientID    string          `db:"client_id"`
	CompanyName string          `db:"company_name"`
	Amount      decimal.Decimal `db:"amount"`
	PaymentDate time.Time       `db:"payment_date"`
	Notes       string          `db:"notes"`
	AuditFields
}

// Withdrawal is a row of the withdrawals table joined with the vendor name.
type Withdrawal struct {
	WithdrawalID   string          `db:"withdrawal_id"`
	VendorID       string          `db:"vendor_id"`
	VendorName     string          `db:"vendor_name"`
	Amount         decimal.Decimal `db:"amount"`
	WithdrawalDate time.Time       `db:"withdrawal_date"`
	AuditFields
}

// CommissionRecord is a row of the commission_records table.
type CommissionRecord struct {
	VendorID     string              `db:"vendor_id"`
	Month        string              `db:"month"`
	Status       string              `db:"status"`
	PaidAmount   decimal.NullDecimal `db:"paid_amount"`
	PaidAt       *time.Time          `db:"paid_at"`
	WithdrawalID *string             `db:"withdrawal_id"`
}

// VendorSales is the aggregate of attributed payments per vendor for a month.
type VendorSales struct {
	VendorID   string          `db:"vendor_id"`
	VendorName string          `db:"vendor_name"`
	Percentage decimal.Decimal `db:"percentage"`
	TotalSales decimal.Decimal `db:"total_sales"`
}
