package services

import (
	portsrepo "github.com/SscSPs/ark_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ark_management_app/internal/core/ports/services"
	"github.com/SscSPs/ark_management_app/internal/mailer"
	"github.com/SscSPs/ark_management_app/internal/platform/config"
	"github.com/SscSPs/ark_management_app/internal/storage"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, store storage.FileStore, m mailer.Mailer) *portssvc.ServiceContainer {
	files := FileConfig{
		MaxUploadBytes: cfg.MaxUploadBytes,
		PublicBaseURL:  cfg.PublicBaseURL,
	}

	container := &portssvc.ServiceContainer{}

	container.Auth = NewAuthService(repos.UserRepo, repos.TenantRepo, AuthConfig{
		JWTSecret:          cfg.JWTSecret,
		JWTExpiry:          cfg.JWTExpiryDuration,
		JWTIssuer:          cfg.JWTIssuer,
		PasswordResetTTL:   cfg.PasswordResetTTL,
		FrontendBaseURL:    cfg.FrontendBaseURL,
		LicenseWarningDays: cfg.LicenseWarningDays,
	}, WithAuthMailer(m))

	// Catalog data feeds the ledger's reference checks
	container.Employee = NewEmployeeService(repos.EmployeeRepo)
	container.Catalog = NewCatalogService(repos.CatalogRepo)
	container.Transaction = NewTransactionService(repos.TransactionRepo, repos.CatalogRepo, store, cfg.PublicBaseURL)
	container.Attachment = NewAttachmentService(repos.TransactionRepo, repos.AttachmentRepo, store, files)
	container.Report = NewReportService(repos.TransactionRepo, repos.TenantRepo, cfg.PublicBaseURL)

	container.Profile = NewProfileService(repos.TenantRepo, repos.AttachmentRepo, store, files)
	container.Admin = NewAdminService(repos.TenantRepo, store, AdminConfig{
		RegistrationTokenTTL: cfg.RegistrationTokenTTL,
		LicenseWarningDays:   cfg.LicenseWarningDays,
	})
	container.Partner = NewPartnerService(repos)

	return container
}
