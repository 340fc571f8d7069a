package utils_test

import (
	"testing"
	"time"

	"github.com/SscSPs/ark_management_app/internal/core/domain"
	"github.com/SscSPs/ark_management_app/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "R$ 0,00"},
		{"5.5", "R$ 5,50"},
		{"999.99", "R$ 999,99"},
		{"1234.56", "R$ 1.234,56"},
		{"1234567.891", "R$ 1.234.567,89"},
		{"-10", "-R$ 10,00"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.FormatBRL(decimal.RequireFromString(tt.in)))
		})
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := utils.HashPassword("s3cret")
	require.NoError(t, err)
	assert.True(t, utils.CheckPasswordHash("s3cret", hash))
	assert.False(t, utils.CheckPasswordHash("wrong", hash))
	assert.False(t, utils.CheckDummyPassword("s3cret"))
}

func TestOneTimeToken(t *testing.T) {
	secret, hash, err := utils.GenerateOneTimeToken()
	require.NoError(t, err)
	assert.Len(t, secret, 2*utils.OneTimeTokenBytes)
	assert.Equal(t, utils.HashToken(secret), hash)
	assert.True(t, utils.CompareTokenHash(secret, hash))
	assert.False(t, utils.CompareTokenHash(secret+"x", hash))

	other, _, err := utils.GenerateOneTimeToken()
	require.NoError(t, err)
	assert.NotEqual(t, secret, other)
}

func TestJWTRoundTrip(t *testing.T) {
	now := time.Now()
	expires := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	status := domain.LicenseActive
	principal := domain.Principal{
		UserID:           "user-1",
		TenantID:         "tenant-1",
		Role:             domain.RoleEmployee,
		CompanyName:      "Acme",
		LicenseExpiresAt: &expires,
		LicenseStatus:    &status,
	}

	token, err := utils.GenerateJWT(principal, "secret", time.Hour, "ark-backend", now)
	require.NoError(t, err)

	claims, err := utils.ParseAndValidateJWT(token, "secret", "ark-backend")
	require.NoError(t, err)
	got := claims.Principal()
	assert.Equal(t, "user-1", got.UserID)
	assert.Equal(t, "tenant-1", got.TenantID)
	assert.Equal(t, domain.RoleEmployee, got.Role)
	assert.Equal(t, "Acme", got.CompanyName)
	require.NotNil(t, got.LicenseExpiresAt)
	assert.True(t, expires.Equal(*got.LicenseExpiresAt))
	require.NotNil(t, got.LicenseStatus)
	assert.Equal(t, domain.LicenseActive, *got.LicenseStatus)

	_, err = utils.ParseAndValidateJWT(token, "other-secret", "ark-backend")
	assert.Error(t, err)

	_, err = utils.ParseAndValidateJWT(token, "secret", "someone-else")
	assert.Error(t, err)

	expired, err := utils.GenerateJWT(principal, "secret", time.Hour, "ark-backend", now.Add(-2*time.Hour))
	require.NoError(t, err)
	_, err = utils.ParseAndValidateJWT(expired, "secret", "ark-backend")
	assert.Error(t, err)
}
