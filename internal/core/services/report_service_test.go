package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/ark_management_app/internal/apperrors"
	"github.com/SscSPs/ark_management_app/internal/core/domain"
	"github.com/SscSPs/ark_management_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReportService_Generate(t *testing.T) {
	txRepo := new(MockTransactionRepository)
	tenantRepo := new(MockTenantRepository)
	svc := services.NewReportService(txRepo, tenantRepo, "https://api.example.com")

	principal := domain.Principal{UserID: "user-1", TenantID: "tenant-1", Role: domain.RoleEmployee}
	next := "ignored"
	req := domain.ReportRequest{
		View:   domain.ReportViewSales,
		Filter: domain.TransactionFilter{Kind: string(domain.KindSale), Limit: 50, NextToken: &next},
	}

	tenantRepo.On("FindTenantProfile", mock.Anything, "tenant-1").Return(&domain.TenantProfile{
		Tenant:  domain.Tenant{TenantID: "tenant-1", CompanyName: "Padaria Central", ContactPhone: "(11) 5555-0000"},
		LogoKey: strPtr("clients/tenant-1/logo/l-logo.png"),
	}, nil).Once()
	txRepo.On("ListTransactions", mock.Anything, "tenant-1", domain.TransactionFilter{Kind: string(domain.KindSale)}).
		Return([]domain.Transaction{{
			TransactionID:   "tx-1",
			EmployeeName:    "Bruno",
			Kind:            domain.KindSale,
			TransactionDate: time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
			Description:     "Pão",
			Counterpart:     "Mercado Sol",
			TotalPrice:      decimal.RequireFromString("12.50"),
			Status:          domain.StatusPaid,
		}}, nil, nil).Once()

	html, err := svc.Generate(context.Background(), principal, req)

	require.NoError(t, err)
	body := string(html)
	assert.Contains(t, body, "Padaria Central")
	assert.Contains(t, body, "https://api.example.com/api/files/clients/tenant-1/logo/l-logo.png")
	assert.Contains(t, body, "03/06/2024")
	txRepo.AssertExpectations(t)
	tenantRepo.AssertExpectations(t)
}

func TestReportService_AdminIsForbidden(t *testing.T) {
	svc := services.NewReportService(new(MockTransactionRepository), new(MockTenantRepository), "")

	_, err := svc.Generate(context.Background(), domain.Principal{UserID: "admin-1", Role: domain.RoleAdmin}, domain.ReportRequest{})

	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestReportService_InvalidView(t *testing.T) {
	svc := services.NewReportService(new(MockTransactionRepository), new(MockTenantRepository), "")

	_, err := svc.Generate(context.Background(), domain.Principal{TenantID: "tenant-1"}, domain.ReportRequest{View: "weekly"})

	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
