package dto

import (
	"time"

	"github.com/SscSPs/ark_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// VendorRequest creates or updates a partner.
type VendorRequest struct {
	Name       string           `json:"name" binding:"required,max=200"`
	Percentage *decimal.Decimal `json:"percentage" binding:"required"`
	PixKey     string           `json:"pix" binding:"max=200"`
	Phone      string           `json:"phone" binding:"max=50"`
	Address    string           `json:"address" binding:"max=500"`
}

// CreatePaymentRequest records a client payment.
type CreatePaymentRequest struct {
	ClientID    string           `json:"clientId" binding:"required,uuid"`
	Amount      *decimal.Decimal `json:"amount" binding:"required"`
	PaymentDate string           `json:"paymentDate" binding:"required"`
	Notes       string           `json:"notes" binding:"max=1000"`
}

// UpdatePaymentRequest overwrites the editable payment fields.
type UpdatePaymentRequest struct {
	Amount      *decimal.Decimal `json:"amount" binding:"required"`
	PaymentDate string           `json:"paymentDate" binding:"required"`
	Notes       string           `json:"notes" binding:"max=1000"`
}

// PaymentFields are the parsed amount, date and notes of a payment request.
type PaymentFields struct {
	Amount      decimal.Decimal
	PaymentDate time.Time
	Notes       string
}

// ToFields parses the request.
func (r UpdatePaymentRequest) ToFields() (PaymentFields, error) {
	date, err := ParseDate("paymentDate", r.PaymentDate)
	if err != nil {
		return PaymentFields{}, err
	}
	return PaymentFields{Amount: *r.Amount, PaymentDate: date, Notes: r.Notes}, nil
}

// ToFields parses the request.
func (r CreatePaymentRequest) ToFields() (PaymentFields, error) {
	return UpdatePaymentRequest{Amount: r.Amount, PaymentDate: r.PaymentDate, Notes: r.Notes}.ToFields()
}

// ListPaymentsQuery optionally bounds the payment listing by date.
type ListPaymentsQuery struct {
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
}

// Bounds parses the optional dates.
func (q ListPaymentsQuery) Bounds() (*time.Time, *time.Time, error) {
	start, err := parseOptionalDate("startDate", q.StartDate)
	if err != nil {
		return nil, nil, err
	}
	end, err := parseOptionalDate("endDate", q.EndDate)
	if err != nil {
		return nil, nil, err
	}
	return start, end, nil
}

// WithdrawalRequest records or updates a payout to a partner.
type WithdrawalRequest struct {
	PartnerID      string           `json:"partnerId" binding:"required,uuid"`
	Amount         *decimal.Decimal `json:"amount" binding:"required"`
	WithdrawalDate string           `json:"withdrawalDate" binding:"required"`
}

// WithdrawalFields are the parsed fields of a withdrawal request.
type WithdrawalFields struct {
	VendorID       string
	Amount         decimal.Decimal
	WithdrawalDate time.Time
}

// ToFields parses the request.
func (r WithdrawalRequest) ToFields() (WithdrawalFields, error) {
	date, err := ParseDate("withdrawalDate", r.WithdrawalDate)
	if err != nil {
		return WithdrawalFields{}, err
	}
	return WithdrawalFields{VendorID: r.PartnerID, Amount: *r.Amount, WithdrawalDate: date}, nil
}

// CommissionQuery selects the month of GET /partners/comissoes.
type CommissionQuery struct {
	Month string `form:"mes" binding:"required,yearmonth"`
}

// CommissionActionRequest pays or reverts the commission of a partner for a month.
type CommissionActionRequest struct {
	PartnerID string `json:"partnerId" binding:"required,uuid"`
	Month     string `json:"month" binding:"required,yearmonth"`
}

// CommissionListResponse lists the derived commissions of a month.
type CommissionListResponse struct {
	Month       domain.Month               `json:"month"`
	Commissions []domain.MonthlyCommission `json:"commissions"`
}
