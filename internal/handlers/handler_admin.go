package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	portssvc "github.com/SscSPs/ark_management_app/internal/core/ports/services"
	"github.com/SscSPs/ark_management_app/internal/dto"
	"github.com/SscSPs/ark_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// adminHandler manages the client companies.
type adminHandler struct {
	adminService portssvc.AdminSvcFacade
}

func registerAdminRoutes(admin *gin.RouterGroup, adminService portssvc.AdminSvcFacade) {
	h := &adminHandler{adminService: adminService}

	clients := admin.Group("/clients")
	{
		clients.GET("", h.listClients)
		clients.POST("", h.createClient)
		clients.PUT("/:id", h.updateClient)
		clients.DELETE("/:id", h.deleteClient)
		clients.POST("/:id/registration-token", h.issueRegistrationToken)
	}
}

// listClients godoc
// @Summary List client companies
// @Tags admin
// @Produce json
// @Success 200 {array} dto.TenantListItem
// @Security BearerAuth
// @Router /admin/clients [get]
func (h *adminHandler) listClients(c *gin.Context) {
	tenants, err := h.adminService.ListTenants(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "List clients")
		return
	}
	c.JSON(http.StatusOK, tenants)
}

// createClient godoc
// @Summary Create a client company
// @Description Returns the one-time registration token. Only its hash is stored.
// @Tags admin
// @Accept json
// @Produce json
// @Param client body dto.CreateTenantRequest true "Client"
// @Success 201 {object} dto.CreateTenantResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /admin/clients [post]
func (h *adminHandler) createClient(c *gin.Context) {
	var req dto.CreateTenantRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.adminService.CreateTenant(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err, "Create client")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Client created", slog.String("client_id", resp.Client.TenantID))
	c.JSON(http.StatusCreated, resp)
}

// updateClient godoc
// @Summary Update a client company
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Client ID"
// @Param client body dto.UpdateTenantRequest true "Client"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /admin/clients/{id} [put]
func (h *adminHandler) updateClient(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateTenantRequest
	if !bindJSON(c, &req) {
		return
	}
	update, err := req.ToUpdate()
	if err != nil {
		respondWithError(c, err, "Update client")
		return
	}
	if err := h.adminService.UpdateTenant(c.Request.Context(), id, update); err != nil {
		respondWithError(c, err, "Update client")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Cliente atualizado."})
}

// deleteClient godoc
// @Summary Delete a client company
// @Description Removes the client with its users, ledger and files. Requires confirm=true.
// @Tags admin
// @Produce json
// @Param id path string true "Client ID"
// @Param confirm query bool true "Must be true"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /admin/clients/{id} [delete]
func (h *adminHandler) deleteClient(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	confirm, _ := strconv.ParseBool(c.Query("confirm"))
	if err := h.adminService.DeleteTenant(c.Request.Context(), id, confirm); err != nil {
		respondWithError(c, err, "Delete client")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Client deleted", slog.String("client_id", id))
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Cliente removido."})
}

// issueRegistrationToken godoc
// @Summary Reissue a registration token
// @Description Replaces any unused token of the client. Fails once the client has a user.
// @Tags admin
// @Produce json
// @Param id path string true "Client ID"
// @Success 201 {object} dto.RegistrationTokenResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /admin/clients/{id}/registration-token [post]
func (h *adminHandler) issueRegistrationToken(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	resp, err := h.adminService.IssueRegistrationToken(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err, "Issue registration token")
		return
	}
	c.JSON(http.StatusCreated, resp)
}
