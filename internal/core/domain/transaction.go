package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind tells sales from expenses.
type TransactionKind string

const (
	KindSale    TransactionKind = "sale"
	KindExpense TransactionKind = "expense"
)

// IsValid reports whether k is a known transaction kind.
func (k TransactionKind) IsValid() bool {
	return k == KindSale || k == KindExpense
}

// DescriptionType is the catalog type the description of a transaction of kind k must resolve to.
func (k TransactionKind) DescriptionType() CatalogType {
	if k == KindSale {
		return CatalogProduct
	}
	return CatalogPurchaseItem
}

// CounterpartType is the catalog type the counterpart of a transaction of kind k must resolve to.
func (k TransactionKind) CounterpartType() CatalogType {
	if k == KindSale {
		return CatalogBuyer
	}
	return CatalogSupplier
}

// PaymentStatus is the settlement state of a ledger entry.
type PaymentStatus string

const (
	StatusPaid    PaymentStatus = "paid"
	StatusPending PaymentStatus = "pending"
)

// IsValid reports whether s is a known payment status.
func (s PaymentStatus) IsValid() bool {
	return s == StatusPaid || s == StatusPending
}

// MoneyScale is the number of decimal places money amounts are kept at.
const MoneyScale = 2

// QuantityScale is the number of decimal places a transaction quantity is kept at.
const QuantityScale = 3

// ComputeTotal returns quantity x unit price rounded to cents with banker's rounding.
func ComputeTotal(quantity, unitPrice decimal.Decimal) decimal.Decimal {
	return quantity.Mul(unitPrice).RoundBank(MoneyScale)
}

// Transaction is a dated sale or expense of a tenant.
// Description and Counterpart hold catalog names, not catalog ids.
type Transaction struct {
	TransactionID   string          `json:"id"`
	TenantID        string          `json:"clientId"`
	EmployeeID      string          `json:"employeeId"`
	EmployeeName    string          `json:"employeeName"`
	Kind            TransactionKind `json:"type"`
	TransactionDate time.Time       `json:"transactionDate"`
	Description     string          `json:"description"`
	Counterpart     string          `json:"category"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	TotalPrice      decimal.Decimal `json:"totalPrice"`
	Status          PaymentStatus   `json:"status"`
	Attachment      *Attachment     `json:"attachment,omitempty"`
	AuditFields
}

// TransactionFields are the editable fields of a transaction; create and update both take the full set.
type TransactionFields struct {
	EmployeeID      string
	Kind            TransactionKind
	TransactionDate time.Time
	Description     string
	Counterpart     string
	Quantity        decimal.Decimal
	UnitPrice       decimal.Decimal
	Status          PaymentStatus
}

// Normalize trims the free-text references and rounds quantity and unit price half away
// from zero to the scale they are stored at, so the total is computed from the stored values.
func (f TransactionFields) Normalize() TransactionFields {
	f.Description = strings.TrimSpace(f.Description)
	f.Counterpart = strings.TrimSpace(f.Counterpart)
	f.Quantity = f.Quantity.Round(QuantityScale)
	f.UnitPrice = f.UnitPrice.Round(MoneyScale)
	return f
}

// TransactionFilter narrows a ledger listing. String fields equal to FilterAll or empty are ignored.
type TransactionFilter struct {
	EmployeeID   string
	StartDate    *time.Time
	EndDate      *time.Time
	Status       string
	Kind         string
	Product      string
	Buyer        string
	PurchaseItem string
	Supplier     string
	Limit        int
	NextToken    *string
}

// LedgerSummary aggregates a set of transactions.
type LedgerSummary struct {
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	Balance      decimal.Decimal `json:"balance"`
}

// Summarize totals sales as income and expenses as expense.
func Summarize(txs []Transaction) LedgerSummary {
	income := decimal.Zero
	expense := decimal.Zero
	for _, t := range txs {
		switch t.Kind {
		case KindSale:
			income = income.Add(t.TotalPrice)
		case KindExpense:
			expense = expense.Add(t.TotalPrice)
		}
	}
	return LedgerSummary{
		TotalIncome:  income,
		TotalExpense: expense,
		Balance:      income.Sub(expense),
	}
}
