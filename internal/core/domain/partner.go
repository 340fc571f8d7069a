package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// MaxCommissionPercentage is the largest percentage a vendor may earn.
var MaxCommissionPercentage = decimal.RequireFromString("99.99")

// Vendor is a commission-earning partner that may refer tenants.
type Vendor struct {
	VendorID   string          `json:"id"`
	Name       string          `json:"name"`
	Percentage decimal.Decimal `json:"percentage"`
	PixKey     string          `json:"pix"`
	Phone      string          `json:"phone"`
	Address    string          `json:"address"`
	AuditFields
}

// Payment is money a tenant paid to the company.
type Payment struct {
	PaymentID   string          `json:"id"`
	TenantID    string          `json:"clientId"`
	CompanyName string          `json:"companyName"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate time.Time       `json:"paymentDate"`
	Notes       string          `json:"notes"`
	AuditFields
}

// CommissionAttribution links a payment to the vendor that referred the paying tenant,
// with the percentage and commission in force when the payment was recorded.
type CommissionAttribution struct {
	PaymentID          string          `json:"paymentId"`
	VendorID           string          `json:"vendorId"`
	PercentageSnapshot decimal.Decimal `json:"percentage"`
	CommissionSnapshot decimal.Decimal `json:"commission"`
}

// Withdrawal is money the company paid out to a vendor.
type Withdrawal struct {
	WithdrawalID   string          `json:"id"`
	VendorID       string          `json:"partnerId"`
	VendorName     string          `json:"partnerName"`
	Amount         decimal.Decimal `json:"amount"`
	WithdrawalDate time.Time       `json:"withdrawalDate"`
	AuditFields
}

// CommissionStatus is the operator-set settlement state of a monthly commission.
type CommissionStatus string

const (
	CommissionPending CommissionStatus = "pending"
	CommissionPaid    CommissionStatus = "paid"
)

// CommissionRecord is the persisted status of a (vendor, month) commission.
// Paid records keep the amount actually paid; they are not recomputed when
// percentages or payments change afterwards.
type CommissionRecord struct {
	VendorID     string           `json:"vendorId"`
	Month        Month            `json:"month"`
	Status       CommissionStatus `json:"status"`
	PaidAmount   *decimal.Decimal `json:"paidAmount,omitempty"`
	PaidAt       *time.Time       `json:"paidAt,omitempty"`
	WithdrawalID *string          `json:"withdrawalId,omitempty"`
}

// VendorSales is the attributed payment total of a vendor in a month.
type VendorSales struct {
	VendorID   string
	VendorName string
	Percentage decimal.Decimal
	TotalSales decimal.Decimal
}

// MonthlyCommission is the derived commission of a vendor for a month.
type MonthlyCommission struct {
	VendorID     string           `json:"vendorId"`
	VendorName   string           `json:"vendorName"`
	Month        Month            `json:"month"`
	Percentage   decimal.Decimal  `json:"percentage"`
	TotalSales   decimal.Decimal  `json:"totalSales"`
	Commission   decimal.Decimal  `json:"commission"`
	Status       CommissionStatus `json:"status"`
	PaidAmount   *decimal.Decimal `json:"paidAmount,omitempty"`
	PaidAt       *time.Time       `json:"paidAt,omitempty"`
	WithdrawalID *string          `json:"withdrawalId,omitempty"`
}

// FinancialSummary is the cash position of the company.
type FinancialSummary struct {
	TotalReceived  decimal.Decimal `json:"totalReceived"`
	TotalWithdrawn decimal.Decimal `json:"totalWithdrawn"`
	CashBalance    decimal.Decimal `json:"cashBalance"`
}

var hundred = decimal.NewFromInt(100)

// ComputeCommission returns amount x percentage / 100 rounded to cents with banker's rounding.
func ComputeCommission(amount, percentage decimal.Decimal) decimal.Decimal {
	return amount.Mul(percentage).Div(hundred).RoundBank(MoneyScale)
}

// BuildMonthlyCommissions combines the attributed sales of a month with the persisted records.
// Vendors without attributed sales are omitted.
func BuildMonthlyCommissions(month Month, sales []VendorSales, records []CommissionRecord) []MonthlyCommission {
	byVendor := make(map[string]CommissionRecord, len(records))
	for _, r := range records {
		byVendor[r.VendorID] = r
	}

	out := make([]MonthlyCommission, 0, len(sales))
	for _, s := range sales {
		if !s.TotalSales.IsPositive() {
			continue
		}
		mc := MonthlyCommission{
			VendorID:   s.VendorID,
			VendorName: s.VendorName,
			Month:      month,
			Percentage: s.Percentage,
			TotalSales: s.TotalSales,
			Commission: ComputeCommission(s.TotalSales, s.Percentage),
			Status:     CommissionPending,
		}
		if rec, ok := byVendor[s.VendorID]; ok && rec.Status == CommissionPaid {
			mc.Status = CommissionPaid
			mc.PaidAmount = rec.PaidAmount
			mc.PaidAt = rec.PaidAt
			mc.WithdrawalID = rec.WithdrawalID
		}
		out = append(out, mc)
	}
	return out
}

// Month is a reporting period in YYYY-MM form.
type Month string

// ParseMonth validates a YYYY-MM string.
func ParseMonth(s string) (Month, error) {
	if _, err := time.Parse("2006-01", s); err != nil {
		return "", fmt.Errorf("invalid month %q, expected YYYY-MM", s)
	}
	return Month(s), nil
}

// MonthOf returns the month t falls in.
func MonthOf(t time.Time) Month {
	return Month(t.Format("2006-01"))
}

// Bounds returns the first day of the month and the first day of the next month.
func (m Month) Bounds() (time.Time, time.Time) {
	start, err := time.Parse("2006-01", string(m))
	if err != nil {
		return time.Time{}, time.Time{}
	}
	return start, start.AddDate(0, 1, 0)
}

func (m Month) String() string {
	return string(m)
}
