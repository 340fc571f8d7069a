package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/ark_management_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestComputeLicenseStatus(t *testing.T) {
	now := time.Date(2024, 3, 10, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name   string
		expiry time.Time
		want   domain.LicenseStatus
	}{
		{"far in the future", now.AddDate(0, 1, 0), domain.LicenseActive},
		{"six days left", time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC), domain.LicenseActive},
		{"five days left", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), domain.LicenseExpiringSoon},
		{"expires today", time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), domain.LicenseExpiringSoon},
		{"expired yesterday", time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC), domain.LicenseExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.ComputeLicenseStatus(tt.expiry, now, domain.DefaultLicenseWarningDays)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDaysUntil_IgnoresTimeOfDay(t *testing.T) {
	expiry := time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)
	late := time.Date(2024, 3, 10, 23, 59, 0, 0, time.UTC)
	early := time.Date(2024, 3, 10, 0, 1, 0, 0, time.UTC)

	assert.Equal(t, 2, domain.DaysUntil(expiry, late))
	assert.Equal(t, 2, domain.DaysUntil(expiry, early))
}

func TestRegistrationToken_IsRedeemable(t *testing.T) {
	now := time.Now()
	assert.True(t, domain.RegistrationToken{ExpiresAt: now.Add(time.Hour)}.IsRedeemable(now))
	assert.False(t, domain.RegistrationToken{ExpiresAt: now.Add(time.Hour), IsUsed: true}.IsRedeemable(now))
	assert.False(t, domain.RegistrationToken{ExpiresAt: now.Add(-time.Second)}.IsRedeemable(now))
}
