package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/ark_management_app/internal/core/ports/services"
	"github.com/SscSPs/ark_management_app/internal/dto"
	"github.com/SscSPs/ark_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type profileHandler struct {
	profileService portssvc.ProfileSvcFacade
	maxUploadBytes int64
}

func registerProfileRoutes(data *gin.RouterGroup, profileService portssvc.ProfileSvcFacade, maxUploadBytes int64) {
	h := &profileHandler{profileService: profileService, maxUploadBytes: maxUploadBytes}
	data.GET("/profile", h.getProfile)
	data.PUT("/profile", h.updateProfile)
}

// getProfile godoc
// @Summary Get the company profile
// @Tags profile
// @Produce json
// @Success 200 {object} dto.ProfileResponse
// @Security BearerAuth
// @Router /data/profile [get]
func (h *profileHandler) getProfile(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	profile, err := h.profileService.GetProfile(c.Request.Context(), principal.TenantID)
	if err != nil {
		respondWithError(c, err, "Get profile")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// updateProfile godoc
// @Summary Update the company profile
// @Description Overwrites the company fields. A logo part, when present, replaces the current logo.
// @Tags profile
// @Accept multipart/form-data
// @Produce json
// @Param companyName formData string true "Company name"
// @Param contactPhone formData string false "Contact phone"
// @Param fullAddress formData string false "Full address"
// @Param logo formData file false "Logo image"
// @Success 200 {object} dto.ProfileResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /data/profile [put]
func (h *profileHandler) updateProfile(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	limitBody(c, h.maxUploadBytes)

	logo, closeLogo, err := formFile(c, "logo")
	if err != nil {
		respondWithError(c, err, "Update profile")
		return
	}
	if closeLogo != nil {
		defer closeLogo()
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind profile form", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	profile, err := h.profileService.UpdateProfile(c.Request.Context(), principal.TenantID, req, logo)
	if err != nil {
		respondWithError(c, err, "Update profile")
		return
	}
	c.JSON(http.StatusOK, profile)
}
