package dto

import (
	"time"

	"github.com/SscSPs/ark_management_app/internal/core/domain"
)

// UpdateProfileRequest is the multipart form of PUT /data/profile. The logo file part is read separately.
type UpdateProfileRequest struct {
	CompanyName  string `form:"companyName" binding:"required,max=200"`
	ContactPhone string `form:"contactPhone" binding:"max=50"`
	FullAddress  string `form:"fullAddress" binding:"max=500"`
}

// ProfileResponse is the tenant's view of its own company data.
type ProfileResponse struct {
	CompanyName      string               `json:"companyName"`
	ContactPhone     string               `json:"contactPhone"`
	FullAddress      string               `json:"fullAddress"`
	LicenseStatus    domain.LicenseStatus `json:"licenseStatus"`
	LicenseExpiresAt time.Time            `json:"licenseExpiresAt"`
	LogoURL          string               `json:"logoUrl,omitempty"`
}
