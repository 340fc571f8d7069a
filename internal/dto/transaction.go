package dto

import (
	"strings"

	"github.com/SscSPs/ark_management_app/internal/apperrors"
	"github.com/SscSPs/ark_management_app/internal/core/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NextTokenHeader carries the keyset cursor of the next ledger page.
const NextTokenHeader = "X-Next-Token"

// TransactionRequest is the full set of editable transaction fields. A client supplied
// total is accepted for compatibility and ignored.
type TransactionRequest struct {
	EmployeeID      string           `json:"employeeId" binding:"required,uuid"`
	Kind            string           `json:"type" binding:"required,txkind"`
	TransactionDate string           `json:"transactionDate" binding:"required"`
	Description     string           `json:"description" binding:"required,max=500"`
	Counterpart     string           `json:"category" binding:"max=500"`
	Quantity        *decimal.Decimal `json:"quantity" binding:"required"`
	UnitPrice       *decimal.Decimal `json:"unitPrice" binding:"required"`
	TotalPrice      *decimal.Decimal `json:"totalPrice,omitempty"`
	Status          string           `json:"status" binding:"required,paystatus"`
}

// ToFields converts the request into domain fields.
func (r TransactionRequest) ToFields() (domain.TransactionFields, error) {
	date, err := ParseDate("transactionDate", r.TransactionDate)
	if err != nil {
		return domain.TransactionFields{}, err
	}
	return domain.TransactionFields{
		EmployeeID:      r.EmployeeID,
		Kind:            domain.TransactionKind(r.Kind),
		TransactionDate: date,
		Description:     r.Description,
		Counterpart:     r.Counterpart,
		Quantity:        *r.Quantity,
		UnitPrice:       *r.UnitPrice,
		Status:          domain.PaymentStatus(r.Status),
	}, nil
}

// TransactionFilterParams are the ledger filters, shared by the list query string and the report body.
type TransactionFilterParams struct {
	EmployeeID string `form:"employeeId" json:"employeeId"`
	StartDate  string `form:"startDate" json:"startDate"`
	EndDate    string `form:"endDate" json:"endDate"`
	Status     string `form:"status" json:"status"`
	Type       string `form:"type" json:"type"`
	Product    string `form:"product" json:"product"`
	Buyer      string `form:"buyer" json:"buyer"`
	Purchase   string `form:"purchase" json:"purchase"`
	Supplier   string `form:"supplier" json:"supplier"`
}

// ToFilter converts the parameters into a ledger filter.
func (p TransactionFilterParams) ToFilter() (domain.TransactionFilter, error) {
	start, err := parseOptionalDate("startDate", p.StartDate)
	if err != nil {
		return domain.TransactionFilter{}, err
	}
	end, err := parseOptionalDate("endDate", p.EndDate)
	if err != nil {
		return domain.TransactionFilter{}, err
	}
	employeeID := strings.TrimSpace(p.EmployeeID)
	if domain.IsFilterSet(employeeID) && uuid.Validate(employeeID) != nil {
		return domain.TransactionFilter{}, apperrors.NewValidationFailedError("employeeId must be a valid identifier or all")
	}
	return domain.TransactionFilter{
		EmployeeID:   employeeID,
		StartDate:    start,
		EndDate:      end,
		Status:       strings.TrimSpace(p.Status),
		Kind:         strings.TrimSpace(p.Type),
		Product:      p.Product,
		Buyer:        p.Buyer,
		PurchaseItem: p.Purchase,
		Supplier:     p.Supplier,
	}, nil
}

// ListTransactionsQuery is the query string of GET /data/transactions.
type ListTransactionsQuery struct {
	TransactionFilterParams
	Limit     int    `form:"limit" binding:"omitempty,min=0"`
	NextToken string `form:"nextToken"`
}

// ToFilter converts the query into a ledger filter with pagination.
func (q ListTransactionsQuery) ToFilter() (domain.TransactionFilter, error) {
	f, err := q.TransactionFilterParams.ToFilter()
	if err != nil {
		return f, err
	}
	f.Limit = q.Limit
	if q.NextToken != "" {
		token := q.NextToken
		f.NextToken = &token
	}
	return f, nil
}

// BatchDeleteRequest lists the transactions to delete.
type BatchDeleteRequest struct {
	IDs []string `json:"ids" binding:"required,min=1,max=1000,dive,uuid"`
}

// BatchDeleteResponse reports how many transactions were deleted.
type BatchDeleteResponse struct {
	Message string `json:"msg"`
	Deleted int64  `json:"deleted"`
}

// GenerateReportRequest is the body of POST /data/generate-report.
type GenerateReportRequest struct {
	ViewType     string                  `json:"viewType" binding:"omitempty,oneof=all sales expenses"`
	Filters      TransactionFilterParams `json:"filters"`
	EmployeeName string                  `json:"employeeName" binding:"max=200"`
}

// ToReportRequest converts the body into a report request.
func (r GenerateReportRequest) ToReportRequest() (domain.ReportRequest, error) {
	filter, err := r.Filters.ToFilter()
	if err != nil {
		return domain.ReportRequest{}, err
	}
	view := domain.ReportView(r.ViewType)
	if view == "" {
		view = domain.ReportViewAll
	}
	switch view {
	case domain.ReportViewSales:
		filter.Kind = string(domain.KindSale)
	case domain.ReportViewExpenses:
		filter.Kind = string(domain.KindExpense)
	}
	return domain.ReportRequest{View: view, Filter: filter, EmployeeName: r.EmployeeName}, nil
}
