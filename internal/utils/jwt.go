package utils

import (
	"errors"
	"time"

	"github.com/SscSPs/ark_management_app/internal/core/domain"
	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims are the claims of a session token.
type SessionClaims struct {
	TenantID         string               `json:"tenant_id,omitempty"`
	Role             domain.Role          `json:"role"`
	CompanyName      string               `json:"company_name,omitempty"`
	LicenseExpiresAt *time.Time           `json:"license_expires_at,omitempty"`
	LicenseStatus    *domain.LicenseStatus `json:"license_status,omitempty"`
	jwt.RegisteredClaims
}

// Principal rebuilds the authenticated caller from the claims.
func (c *SessionClaims) Principal() domain.Principal {
	return domain.Principal{
		UserID:           c.Subject,
		TenantID:         c.TenantID,
		Role:             c.Role,
		CompanyName:      c.CompanyName,
		LicenseExpiresAt: c.LicenseExpiresAt,
		LicenseStatus:    c.LicenseStatus,
	}
}

// GenerateJWT signs an HS256 session token for principal.
func GenerateJWT(principal domain.Principal, secret string, expiryDuration time.Duration, issuer string, now time.Time) (string, error) {
	claims := SessionClaims{
		TenantID:         principal.TenantID,
		Role:             principal.Role,
		CompanyName:      principal.CompanyName,
		LicenseExpiresAt: principal.LicenseExpiresAt,
		LicenseStatus:    principal.LicenseStatus,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   principal.UserID,
			ExpiresAt: jwt.NewNumericDate(now.Add(expiryDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseAndValidateJWT parses a session token, validates its signature, issuer and time claims.
func ParseAndValidateJWT(tokenString, secretKey, issuer string) (*SessionClaims, error) {
	claims := &SessionClaims{}

	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secretKey), nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}
	if claims.Subject == "" {
		return nil, errors.New("token has no subject")
	}
	return claims, nil
}
