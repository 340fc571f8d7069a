package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/ark_management_app/internal/apperrors"
	"github.com/SscSPs/ark_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ark_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ark_management_app/internal/core/ports/services"
	"github.com/SscSPs/ark_management_app/internal/dto"
	"github.com/SscSPs/ark_management_app/internal/storage"
	"github.com/SscSPs/ark_management_app/internal/utils"
	"github.com/google/uuid"
)

// AdminConfig holds the settings of tenant administration.
type AdminConfig struct {
	RegistrationTokenTTL time.Duration
	LicenseWarningDays   int
}

type adminService struct {
	BaseService
	tenantRepo portsrepo.TenantRepositoryFacade
	store      storage.FileStore
	cfg        AdminConfig
	now        func() time.Time
}

// AdminOption is a functional option for configuring the admin service
type AdminOption func(*adminService)

// WithAdminClock replaces the wall clock used for license and token expiry
func WithAdminClock(now func() time.Time) AdminOption {
	return func(s *adminService) {
		s.now = now
	}
}

func NewAdminService(tenantRepo portsrepo.TenantRepositoryFacade, store storage.FileStore, cfg AdminConfig, options ...AdminOption) portssvc.AdminSvcFacade {
	svc := &adminService{
		BaseService: newBaseService("admin"),
		tenantRepo:  tenantRepo,
		store:       store,
		cfg:         cfg,
		now:         time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.AdminSvcFacade = (*adminService)(nil)

func (s *adminService) ListTenants(ctx context.Context) ([]dto.TenantListItem, error) {
	summaries, err := s.tenantRepo.ListTenantSummaries(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list clients")
		return nil, err
	}
	return dto.ToTenantList(summaries), nil
}

func normalizeReferrer(referredBy *string) *string {
	if referredBy == nil || strings.TrimSpace(*referredBy) == "" {
		return nil
	}
	id := strings.TrimSpace(*referredBy)
	return &id
}

func (s *adminService) CreateTenant(ctx context.Context, req dto.CreateTenantRequest) (*dto.CreateTenantResponse, error) {
	companyName := strings.TrimSpace(req.CompanyName)
	if companyName == "" {
		return nil, apperrors.NewValidationFailedError("companyName is required")
	}
	expires, err := dto.ParseDate("licenseExpiresAt", req.LicenseExpiresAt)
	if err != nil {
		return nil, err
	}

	now := s.now()
	tenant := domain.Tenant{
		TenantID:         uuid.NewString(),
		CompanyName:      companyName,
		LicenseStatus:    domain.ComputeLicenseStatus(expires, now, s.cfg.LicenseWarningDays),
		LicenseExpiresAt: expires,
		ReferredByID:     normalizeReferrer(req.ReferredBy),
		AuditFields:      domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}

	secret, hash, err := utils.GenerateOneTimeToken()
	if err != nil {
		s.LogError(ctx, err, "Failed to generate registration token")
		return nil, apperrors.NewAppError(500, "failed to generate registration token", err)
	}
	token := domain.RegistrationToken{
		TokenID:   uuid.NewString(),
		TenantID:  tenant.TenantID,
		TokenHash: hash,
		ExpiresAt: now.Add(s.cfg.RegistrationTokenTTL),
		CreatedAt: now,
	}

	if err := s.tenantRepo.CreateTenantWithToken(ctx, tenant, token); err != nil {
		if !isExpected(err) {
			s.LogError(ctx, err, "Failed to create client", slog.String("company_name", companyName))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Client created", slog.String("tenant_id", tenant.TenantID))
	return &dto.CreateTenantResponse{
		Client:            tenant,
		RegistrationToken: secret,
		TokenExpiresAt:    token.ExpiresAt,
	}, nil
}

func (s *adminService) UpdateTenant(ctx context.Context, tenantID string, update dto.TenantUpdate) error {
	companyName := strings.TrimSpace(update.CompanyName)
	if companyName == "" {
		return apperrors.NewValidationFailedError("companyName is required")
	}
	if !update.LicenseStatus.IsValid() {
		return apperrors.NewValidationFailedError("licenseStatus must be Active, ExpiringSoon or Expired")
	}

	tenant := domain.Tenant{
		TenantID:         tenantID,
		CompanyName:      companyName,
		LicenseStatus:    update.LicenseStatus,
		LicenseExpiresAt: domain.DateOnly(update.LicenseExpiresAt),
		ReferredByID:     normalizeReferrer(update.ReferredBy),
		AuditFields:      domain.AuditFields{LastUpdatedAt: s.now()},
	}
	if err := s.tenantRepo.UpdateTenant(ctx, tenant); err != nil {
		if !isExpected(err) {
			s.LogError(ctx, err, "Failed to update client", slog.String("tenant_id", tenantID))
		}
		return err
	}
	s.LogInfo(ctx, "Client updated", slog.String("tenant_id", tenantID))
	return nil
}

// DeleteTenant removes the database rows first; files left behind by a storage failure are only logged.
func (s *adminService) DeleteTenant(ctx context.Context, tenantID string, confirm bool) error {
	if !confirm {
		return apperrors.NewValidationFailedError("deletion must be confirmed")
	}

	keys, err := s.tenantRepo.DeleteTenant(ctx, tenantID)
	if err != nil {
		if !isExpected(err) {
			s.LogError(ctx, err, "Failed to delete client", slog.String("tenant_id", tenantID))
		}
		return err
	}

	s.removeStoredFiles(ctx, s.store, keys...)
	if err := s.store.DeletePrefix(ctx, storage.TenantPrefix(tenantID)); err != nil {
		s.LogWarn(ctx, "Failed to remove client files", slog.String("tenant_id", tenantID), slog.String("error", err.Error()))
	}

	s.LogInfo(ctx, "Client deleted", slog.String("tenant_id", tenantID), slog.Int("files", len(keys)))
	return nil
}

func (s *adminService) IssueRegistrationToken(ctx context.Context, tenantID string) (*dto.RegistrationTokenResponse, error) {
	secret, hash, err := utils.GenerateOneTimeToken()
	if err != nil {
		s.LogError(ctx, err, "Failed to generate registration token")
		return nil, apperrors.NewAppError(500, "failed to generate registration token", err)
	}

	now := s.now()
	token := domain.RegistrationToken{
		TokenID:   uuid.NewString(),
		TenantID:  tenantID,
		TokenHash: hash,
		ExpiresAt: now.Add(s.cfg.RegistrationTokenTTL),
		CreatedAt: now,
	}
	if err := s.tenantRepo.ReissueRegistrationToken(ctx, token); err != nil {
		if !isExpected(err) {
			s.LogError(ctx, err, "Failed to reissue registration token", slog.String("tenant_id", tenantID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Registration token issued", slog.String("tenant_id", tenantID))
	return &dto.RegistrationTokenResponse{RegistrationToken: secret, ExpiresAt: token.ExpiresAt}, nil
}
