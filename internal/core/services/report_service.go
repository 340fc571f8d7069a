package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/ark_management_app/internal/apperrors"
	"github.com/SscSPs/ark_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ark_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ark_management_app/internal/core/ports/services"
	"github.com/SscSPs/ark_management_app/internal/report"
)

type reportService struct {
	BaseService
	txRepo        portsrepo.TransactionReader
	tenantRepo    portsrepo.TenantReader
	publicBaseURL string
}

func NewReportService(txRepo portsrepo.TransactionReader, tenantRepo portsrepo.TenantReader, publicBaseURL string) portssvc.ReportSvc {
	return &reportService{
		BaseService:   newBaseService("report"),
		txRepo:        txRepo,
		tenantRepo:    tenantRepo,
		publicBaseURL: publicBaseURL,
	}
}

var _ portssvc.ReportSvc = (*reportService)(nil)

// Generate renders the whole filtered ledger; pagination settings on the filter are ignored.
func (s *reportService) Generate(ctx context.Context, principal domain.Principal, req domain.ReportRequest) ([]byte, error) {
	if !principal.HasTenant() {
		return nil, apperrors.NewForbiddenError("reports are only available to client users")
	}
	if req.View == "" {
		req.View = domain.ReportViewAll
	}
	if !req.View.IsValid() {
		return nil, apperrors.NewValidationFailedError("view must be all, sales or expenses")
	}

	filter := req.Filter
	filter.Limit = 0
	filter.NextToken = nil

	profile, err := s.tenantRepo.FindTenantProfile(ctx, principal.TenantID)
	if err != nil {
		if !isExpected(err) {
			s.LogError(ctx, err, "Failed to load profile for report", slog.String("tenant_id", principal.TenantID))
		}
		return nil, err
	}

	rows, _, err := s.txRepo.ListTransactions(ctx, principal.TenantID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for report", slog.String("tenant_id", principal.TenantID))
		return nil, err
	}

	header := report.Header{
		CompanyName:  profile.CompanyName,
		ContactPhone: profile.ContactPhone,
		FullAddress:  profile.FullAddress,
	}
	if profile.LogoKey != nil && *profile.LogoKey != "" {
		header.LogoURL = fileURL(s.publicBaseURL, *profile.LogoKey)
	}

	html, err := report.Render(report.Input{
		Header:       header,
		View:         req.View,
		Filter:       filter,
		EmployeeName: req.EmployeeName,
		Rows:         rows,
		Summary:      domain.Summarize(rows),
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to render report", slog.String("tenant_id", principal.TenantID))
		return nil, apperrors.NewAppError(500, "failed to render report", err)
	}

	s.LogDebug(ctx, "Report generated", slog.String("tenant_id", principal.TenantID), slog.Int("rows", len(rows)))
	return html, nil
}
