package handlers

import (
	"net/http"
	"strings"

	portssvc "github.com/SscSPs/ark_management_app/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

type fileHandler struct {
	attachmentService portssvc.AttachmentSvcFacade
}

func registerFileRoutes(api *gin.RouterGroup, attachmentService portssvc.AttachmentSvcFacade) {
	h := &fileHandler{attachmentService: attachmentService}
	api.GET("/files/*key", h.download)
}

// download godoc
// @Summary Download a stored file
// @Description Streams an attachment or logo. Client users may only read their own client's files.
// @Tags files
// @Produce octet-stream
// @Param key path string true "Storage key"
// @Success 200 {file} binary
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /files/{key} [get]
func (h *fileHandler) download(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}

	obj, err := h.attachmentService.OpenFile(c.Request.Context(), principal, strings.TrimPrefix(c.Param("key"), "/"))
	if err != nil {
		respondWithError(c, err, "File download")
		return
	}
	defer obj.Body.Close()

	contentType := obj.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	size := obj.Size
	if size <= 0 {
		size = -1
	}
	c.DataFromReader(http.StatusOK, size, contentType, obj.Body, map[string]string{
		"Cache-Control":          "private, max-age=300",
		"X-Content-Type-Options": "nosniff",
	})
}
