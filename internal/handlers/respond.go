package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/ark_management_app/internal/apperrors"
	"github.com/SscSPs/ark_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/ark_management_app/internal/core/ports/services"
	"github.com/SscSPs/ark_management_app/internal/dto"
	"github.com/SscSPs/ark_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// multipartOverhead is added to the upload limit to leave room for the other form fields.
const multipartOverhead = 1 << 20

// respondWithError writes the status and message mapped from err. Server errors are logged
// with their cause; the client only sees a generic message.
func respondWithError(c *gin.Context, err error, action string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code, msg := apperrors.HTTPStatus(err)
	if code >= http.StatusInternalServerError {
		logger.Error(action+" failed", slog.String("error", err.Error()))
	} else {
		logger.Warn(action+" rejected", slog.Int("status", code), slog.String("error", msg))
	}
	c.JSON(code, dto.ErrorResponse{Error: msg})
}

// bindJSON binds the request body and answers 400 on failure.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind JSON", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return false
	}
	return true
}

// bindQuery binds the query string and answers 400 on failure.
func bindQuery(c *gin.Context, req any) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return false
	}
	return true
}

// principalOrAbort returns the authenticated caller, answering 401 when there is none.
func principalOrAbort(c *gin.Context) (domain.Principal, bool) {
	p, ok := middleware.GetPrincipalFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Principal not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return domain.Principal{}, false
	}
	return p, true
}

// idParam returns the path parameter name after checking it is a UUID.
func idParam(c *gin.Context, name string) (string, bool) {
	id := c.Param(name)
	if err := uuid.Validate(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid " + name})
		return "", false
	}
	return id, true
}

// limitBody caps the request body of upload endpoints.
func limitBody(c *gin.Context, maxUploadBytes int64) {
	if maxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes+multipartOverhead)
	}
}

// formFile opens the multipart file part field. It returns (nil, nil, nil) when the part is absent.
// The caller must invoke the returned close function.
func formFile(c *gin.Context, field string) (*portssvc.FileUpload, func(), error) {
	header, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil, nil
		}
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, nil, apperrors.NewValidationFailedError(field + " is too large")
		}
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, nil, apperrors.NewValidationFailedError("request must be multipart/form-data")
		}
		return nil, nil, apperrors.NewValidationFailedError("invalid multipart form: " + err.Error())
	}
	file, err := header.Open()
	if err != nil {
		return nil, nil, err
	}
	upload := &portssvc.FileUpload{FileName: header.Filename, Size: header.Size, Content: file}
	return upload, func() { _ = file.Close() }, nil
}
