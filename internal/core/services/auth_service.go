package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/ark_management_app/internal/apperrors"
	"github.com/SscSPs/ark_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ark_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ark_management_app/internal/core/ports/services"
	"github.com/SscSPs/ark_management_app/internal/dto"
	"github.com/SscSPs/ark_management_app/internal/mailer"
	"github.com/SscSPs/ark_management_app/internal/metrics"
	"github.com/SscSPs/ark_management_app/internal/platform/config"
	"github.com/SscSPs/ark_management_app/internal/utils"
	"github.com/google/uuid"
)

// AuthConfig holds the session and recovery settings of the auth service.
type AuthConfig struct {
	JWTSecret          string
	JWTExpiry          time.Duration
	JWTIssuer          string
	PasswordResetTTL   time.Duration
	FrontendBaseURL    string
	LicenseWarningDays int
}

type authService struct {
	BaseService
	userRepo   portsrepo.UserRepositoryFacade
	tenantRepo portsrepo.TenantRepositoryFacade
	mailer     mailer.Mailer
	cfg        AuthConfig
	now        func() time.Time
}

// AuthOption is a functional option for configuring the auth service
type AuthOption func(*authService)

// WithAuthMailer sets the mailer used for password reset links
func WithAuthMailer(m mailer.Mailer) AuthOption {
	return func(s *authService) {
		s.mailer = m
	}
}

// WithAuthClock replaces the wall clock
func WithAuthClock(now func() time.Time) AuthOption {
	return func(s *authService) {
		s.now = now
	}
}

// NewAuthService creates the credential store and session issuer
func NewAuthService(userRepo portsrepo.UserRepositoryFacade, tenantRepo portsrepo.TenantRepositoryFacade, cfg AuthConfig, options ...AuthOption) portssvc.AuthSvcFacade {
	svc := &authService{
		BaseService: newBaseService("auth"),
		userRepo:    userRepo,
		tenantRepo:  tenantRepo,
		cfg:         cfg,
		now:         time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	if svc.mailer == nil {
		svc.mailer = mailer.New(config.EmailConfig{}, nil)
	}
	return svc
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.TrimSpace(req.Email)

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// keeps unknown emails as slow as wrong passwords
			utils.CheckDummyPassword(req.Password)
			metrics.RecordLogin(metrics.LoginFailure)
			return nil, apperrors.ErrInvalidCredentials
		}
		metrics.RecordLogin(metrics.LoginError)
		s.LogError(ctx, err, "Failed to look up user for login")
		return nil, err
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		metrics.RecordLogin(metrics.LoginFailure)
		s.LogInfo(ctx, "Login rejected", slog.String("user_id", user.UserID))
		return nil, apperrors.ErrInvalidCredentials
	}

	now := s.now()
	principal := domain.Principal{UserID: user.UserID, Role: user.Role}
	if user.TenantID != nil {
		principal.TenantID = *user.TenantID
		if user.CompanyName != nil {
			principal.CompanyName = *user.CompanyName
		}
		if user.LicenseExpiresAt != nil {
			status := s.refreshLicenseStatus(ctx, principal.TenantID, *user.LicenseExpiresAt, user.LicenseStatus, now)
			principal.LicenseExpiresAt = user.LicenseExpiresAt
			principal.LicenseStatus = &status
		}
	}

	token, err := utils.GenerateJWT(principal, s.cfg.JWTSecret, s.cfg.JWTExpiry, s.cfg.JWTIssuer, now)
	if err != nil {
		metrics.RecordLogin(metrics.LoginError)
		s.LogError(ctx, err, "Failed to sign session token", slog.String("user_id", user.UserID))
		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	metrics.RecordLogin(metrics.LoginSuccess)
	s.LogInfo(ctx, "User logged in", slog.String("user_id", user.UserID), slog.String("role", string(user.Role)))
	return &dto.LoginResponse{Token: token, User: principal}, nil
}

// refreshLicenseStatus recomputes the license status from the expiry date and stores it when it changed.
// A failed store is logged and does not block the login.
func (s *authService) refreshLicenseStatus(ctx context.Context, tenantID string, expiresAt time.Time, stored *domain.LicenseStatus, now time.Time) domain.LicenseStatus {
	status := domain.ComputeLicenseStatus(expiresAt, now, s.cfg.LicenseWarningDays)
	if stored != nil && *stored == status {
		return status
	}
	if err := s.tenantRepo.UpdateLicenseStatus(ctx, tenantID, status); err != nil {
		s.LogError(ctx, err, "Failed to store recomputed license status", slog.String("tenant_id", tenantID))
		return status
	}
	s.LogInfo(ctx, "License status changed", slog.String("tenant_id", tenantID), slog.String("status", string(status)))
	return status
}

func (s *authService) Me(ctx context.Context, principal domain.Principal) (*domain.Principal, error) {
	user, err := s.userRepo.FindUserByID(ctx, principal.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		s.LogError(ctx, err, "Failed to load current user", slog.String("user_id", principal.UserID))
		return nil, err
	}

	me := domain.Principal{UserID: user.UserID, Role: user.Role}
	if user.TenantID == nil {
		return &me, nil
	}

	tenant, err := s.tenantRepo.FindTenantByID(ctx, *user.TenantID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load tenant of current user", slog.String("tenant_id", *user.TenantID))
		return nil, err
	}
	status := domain.ComputeLicenseStatus(tenant.LicenseExpiresAt, s.now(), s.cfg.LicenseWarningDays)
	expires := tenant.LicenseExpiresAt
	me.TenantID = tenant.TenantID
	me.CompanyName = tenant.CompanyName
	me.LicenseExpiresAt = &expires
	me.LicenseStatus = &status
	return &me, nil
}

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := s.now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Email:        strings.TrimSpace(req.Email),
		PasswordHash: hash,
		Role:         domain.RoleEmployee,
		AuditFields:  domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}

	created, err := s.userRepo.RegisterWithToken(ctx, utils.HashToken(strings.TrimSpace(req.RegistrationToken)), user, now)
	if err != nil {
		if !isExpected(err) {
			s.LogError(ctx, err, "Failed to register user")
		}
		return nil, err
	}

	tenantID := ""
	if created.TenantID != nil {
		tenantID = *created.TenantID
	}
	s.LogInfo(ctx, "User registered", slog.String("user_id", created.UserID), slog.String("tenant_id", tenantID))
	return created, nil
}

func (s *authService) ForgotPassword(ctx context.Context, req dto.ForgotPasswordRequest) error {
	user, err := s.userRepo.FindUserByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil
		}
		s.LogError(ctx, err, "Failed to look up user for password reset")
		return err
	}

	secret, hash, err := utils.GenerateOneTimeToken()
	if err != nil {
		s.LogError(ctx, err, "Failed to generate password reset token")
		return fmt.Errorf("failed to generate reset token: %w", err)
	}
	expires := s.now().Add(s.cfg.PasswordResetTTL)
	if err := s.userRepo.SetPasswordResetToken(ctx, user.UserID, &hash, &expires); err != nil {
		s.LogError(ctx, err, "Failed to store password reset token", slog.String("user_id", user.UserID))
		return err
	}

	link := s.cfg.FrontendBaseURL + "/reset-password/" + secret
	if err := s.mailer.Send(ctx, mailer.PasswordResetMessage(user.Email, link, s.cfg.PasswordResetTTL)); err != nil {
		s.LogError(ctx, err, "Failed to send password reset mail", slog.String("user_id", user.UserID))
		if clearErr := s.userRepo.SetPasswordResetToken(ctx, user.UserID, nil, nil); clearErr != nil {
			s.LogError(ctx, clearErr, "Failed to clear password reset token", slog.String("user_id", user.UserID))
		}
		return nil
	}

	s.LogInfo(ctx, "Password reset link sent", slog.String("user_id", user.UserID))
	return nil
}

func (s *authService) ResetPassword(ctx context.Context, token string, req dto.ResetPasswordRequest) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindUserByResetHash(ctx, utils.HashToken(token))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrInvalidToken
		}
		s.LogError(ctx, err, "Failed to look up password reset token")
		return err
	}
	if user.PasswordResetExpires == nil || !s.now().Before(*user.PasswordResetExpires) {
		return apperrors.ErrInvalidToken
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.userRepo.UpdatePassword(ctx, user.UserID, hash); err != nil {
		s.LogError(ctx, err, "Failed to update password", slog.String("user_id", user.UserID))
		return err
	}

	s.LogInfo(ctx, "Password reset", slog.String("user_id", user.UserID))
	return nil
}

func (s *authService) EnsureAdmin(ctx context.Context, email, password string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil
	}

	existing, err := s.userRepo.FindUserByEmail(ctx, email)
	if err == nil {
		if existing.Role != domain.RoleAdmin {
			s.LogWarn(ctx, "ADMIN_EMAIL belongs to a non-admin user, not seeding", slog.String("user_id", existing.UserID))
		}
		return nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return err
	}
	if password == "" {
		return errors.New("ADMIN_PASSWORD must be set to seed the admin user")
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	now := s.now()
	admin := domain.User{
		UserID:       uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		AuditFields:  domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
	if err := s.userRepo.SaveUser(ctx, admin); err != nil {
		return err
	}
	s.LogInfo(ctx, "Admin user created", slog.String("user_id", admin.UserID))
	return nil
}
