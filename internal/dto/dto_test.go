package dto_test

import (
	"testing"
	"time"

	"github.com/SscSPs/ark_management_app/internal/apperrors"
	"github.com/SscSPs/ark_management_app/internal/core/domain"
	"github.com/SscSPs/ark_management_app/internal/dto"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := dto.ParseDate("date", "2024-03-05")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), d)

	d, err = dto.ParseDate("date", "2024-03-05T15:04:05Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), d)

	_, err = dto.ParseDate("date", "05/03/2024")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestTransactionRequest_ToFields(t *testing.T) {
	qty := decimal.NewFromInt(3)
	price := decimal.RequireFromString("2.50")
	total := decimal.NewFromInt(999)
	req := dto.TransactionRequest{
		EmployeeID:      "4b5c1f0e-8f0a-4bde-9a55-0a4b1b9f6f11",
		Kind:            "sale",
		TransactionDate: "2024-01-31",
		Description:     "Widget",
		Counterpart:     "Bob",
		Quantity:        &qty,
		UnitPrice:       &price,
		TotalPrice:      &total,
		Status:          "paid",
	}

	fields, err := req.ToFields()
	require.NoError(t, err)
	assert.Equal(t, domain.KindSale, fields.Kind)
	assert.Equal(t, domain.StatusPaid, fields.Status)
	assert.True(t, fields.Quantity.Equal(qty))
	assert.Equal(t, 31, fields.TransactionDate.Day())
}

func TestListTransactionsQuery_ToFilter(t *testing.T) {
	q := dto.ListTransactionsQuery{
		TransactionFilterParams: dto.TransactionFilterParams{
			EmployeeID: "all",
			StartDate:  "2024-01-01",
			Buyer:      "Bob",
		},
		Limit:     50,
		NextToken: "abc",
	}
	f, err := q.ToFilter()
	require.NoError(t, err)
	assert.Equal(t, "all", f.EmployeeID)
	require.NotNil(t, f.StartDate)
	assert.Nil(t, f.EndDate)
	assert.Equal(t, "Bob", f.Buyer)
	assert.Equal(t, 50, f.Limit)
	require.NotNil(t, f.NextToken)
	assert.Equal(t, "abc", *f.NextToken)

	q.EndDate = "not-a-date"
	_, err = q.ToFilter()
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestTransactionFilterParams_AllDatesAreUnset(t *testing.T) {
	f, err := dto.TransactionFilterParams{StartDate: "all", EndDate: " all "}.ToFilter()
	require.NoError(t, err)
	assert.Nil(t, f.StartDate)
	assert.Nil(t, f.EndDate)
}

func TestTransactionFilterParams_EmployeeID(t *testing.T) {
	id := "6f1c2b0e-8f7a-4c61-9d1e-3b2a5c4d7e90"
	f, err := dto.TransactionFilterParams{EmployeeID: " " + id + " "}.ToFilter()
	require.NoError(t, err)
	assert.Equal(t, id, f.EmployeeID)

	_, err = dto.TransactionFilterParams{EmployeeID: "todos"}.ToFilter()
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestGenerateReportRequest_ViewImpliesKind(t *testing.T) {
	req, err := dto.GenerateReportRequest{ViewType: "expenses"}.ToReportRequest()
	require.NoError(t, err)
	assert.Equal(t, domain.ReportViewExpenses, req.View)
	assert.Equal(t, string(domain.KindExpense), req.Filter.Kind)

	req, err = dto.GenerateReportRequest{}.ToReportRequest()
	require.NoError(t, err)
	assert.Equal(t, domain.ReportViewAll, req.View)
	assert.Empty(t, req.Filter.Kind)
}

func TestRegisterValidators(t *testing.T) {
	v := validator.New()
	require.NoError(t, dto.RegisterValidators(v))

	type probe struct {
		Type   string `validate:"catalogtype"`
		Kind   string `validate:"txkind"`
		Status string `validate:"paystatus"`
		Month  string `validate:"yearmonth"`
	}

	assert.NoError(t, v.Struct(probe{Type: "purchase_item", Kind: "expense", Status: "pending", Month: "2024-12"}))
	assert.Error(t, v.Struct(probe{Type: "service", Kind: "expense", Status: "pending", Month: "2024-12"}))
	assert.Error(t, v.Struct(probe{Type: "product", Kind: "refund", Status: "pending", Month: "2024-12"}))
	assert.Error(t, v.Struct(probe{Type: "product", Kind: "sale", Status: "late", Month: "2024-12"}))
	assert.Error(t, v.Struct(probe{Type: "product", Kind: "sale", Status: "paid", Month: "2024-13"}))
}
