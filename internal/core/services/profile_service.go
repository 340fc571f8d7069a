package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/ark_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ark_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ark_management_app/internal/core/ports/services"
	"github.com/SscSPs/ark_management_app/internal/dto"
	"github.com/SscSPs/ark_management_app/internal/storage"
	"github.com/google/uuid"
)

type profileService struct {
	BaseService
	tenantRepo     portsrepo.TenantRepositoryFacade
	attachmentRepo portsrepo.AttachmentRepositoryFacade
	store          storage.FileStore
	cfg            FileConfig
}

func NewProfileService(tenantRepo portsrepo.TenantRepositoryFacade, attachmentRepo portsrepo.AttachmentRepositoryFacade, store storage.FileStore, cfg FileConfig) portssvc.ProfileSvcFacade {
	return &profileService{
		BaseService:    newBaseService("profile"),
		tenantRepo:     tenantRepo,
		attachmentRepo: attachmentRepo,
		store:          store,
		cfg:            cfg,
	}
}

var _ portssvc.ProfileSvcFacade = (*profileService)(nil)

func (s *profileService) GetProfile(ctx context.Context, tenantID string) (*dto.ProfileResponse, error) {
	profile, err := s.tenantRepo.FindTenantProfile(ctx, tenantID)
	if err != nil {
		if !isExpected(err) {
			s.LogError(ctx, err, "Failed to load profile", slog.String("tenant_id", tenantID))
		}
		return nil, err
	}
	return s.toResponse(profile), nil
}

func (s *profileService) toResponse(p *domain.TenantProfile) *dto.ProfileResponse {
	resp := &dto.ProfileResponse{
		CompanyName:      p.CompanyName,
		ContactPhone:     p.ContactPhone,
		FullAddress:      p.FullAddress,
		LicenseStatus:    p.LicenseStatus,
		LicenseExpiresAt: p.LicenseExpiresAt,
	}
	if p.LogoKey != nil && *p.LogoKey != "" {
		resp.LogoURL = fileURL(s.cfg.PublicBaseURL, *p.LogoKey)
	}
	return resp
}

// UpdateProfile writes the logo first so a rejected upload leaves the profile untouched.
func (s *profileService) UpdateProfile(ctx context.Context, tenantID string, req dto.UpdateProfileRequest, logo *portssvc.FileUpload) (*dto.ProfileResponse, error) {
	companyName, err := requireName(req.CompanyName)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if logo != nil {
		if err := s.replaceLogo(ctx, tenantID, *logo, now); err != nil {
			return nil, err
		}
	}

	tenant := domain.Tenant{
		TenantID:     tenantID,
		CompanyName:  companyName,
		ContactPhone: strings.TrimSpace(req.ContactPhone),
		FullAddress:  strings.TrimSpace(req.FullAddress),
		AuditFields:  domain.AuditFields{LastUpdatedAt: now},
	}
	if err := s.tenantRepo.UpdateTenantProfile(ctx, tenant); err != nil {
		if !isExpected(err) {
			s.LogError(ctx, err, "Failed to update profile", slog.String("tenant_id", tenantID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Profile updated", slog.String("tenant_id", tenantID), slog.Bool("logo_replaced", logo != nil))
	return s.GetProfile(ctx, tenantID)
}

func (s *profileService) replaceLogo(ctx context.Context, tenantID string, upload portssvc.FileUpload, now time.Time) error {
	prepared, err := prepareUpload(upload, uploadPolicy{maxBytes: s.cfg.MaxUploadBytes, fieldName: "logo"})
	if err != nil {
		return err
	}

	logoID := uuid.NewString()
	key := storage.LogoKey(tenantID, logoID, prepared.fileName)
	if err := s.store.Save(ctx, key, prepared.content, prepared.contentType); err != nil {
		s.LogError(ctx, err, "Failed to store logo", slog.String("tenant_id", tenantID))
		return storageError(err)
	}

	previous, err := s.attachmentRepo.ReplaceLogo(ctx, domain.Attachment{
		AttachmentID: logoID,
		TenantID:     tenantID,
		Kind:         domain.AttachmentLogo,
		FileName:     displayFileName(prepared.fileName),
		StorageKey:   key,
		MimeType:     prepared.contentType,
		SizeBytes:    upload.Size,
		AuditFields:  domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	})
	if err != nil {
		s.removeStoredFiles(ctx, s.store, key)
		if !isExpected(err) {
			s.LogError(ctx, err, "Failed to save logo", slog.String("tenant_id", tenantID))
		}
		return err
	}
	if previous != nil {
		s.removeStoredFiles(ctx, s.store, previous.StorageKey)
	}
	return nil
}
