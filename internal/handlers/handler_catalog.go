package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/ark_management_app/internal/core/ports/services"
	"github.com/SscSPs/ark_management_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// catalogHandler serves the employees and catalog items of the caller's client.
type catalogHandler struct {
	employeeService portssvc.EmployeeSvcFacade
	catalogService  portssvc.CatalogSvcFacade
}

func registerCatalogRoutes(data *gin.RouterGroup, employeeService portssvc.EmployeeSvcFacade, catalogService portssvc.CatalogSvcFacade) {
	h := &catalogHandler{employeeService: employeeService, catalogService: catalogService}

	employees := data.Group("/employees")
	{
		employees.GET("", h.listEmployees)
		employees.POST("", h.createEmployee)
		employees.PUT("/:id", h.renameEmployee)
		employees.DELETE("/:id", h.deleteEmployee)
	}

	items := data.Group("/items")
	{
		items.GET("", h.listItems)
		items.POST("", h.createItem)
		items.PUT("/:id", h.renameItem)
		items.DELETE("/:id", h.deleteItem)
	}
}

// listEmployees godoc
// @Summary List employees
// @Tags employees
// @Produce json
// @Success 200 {array} domain.Employee
// @Security BearerAuth
// @Router /data/employees [get]
func (h *catalogHandler) listEmployees(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	employees, err := h.employeeService.ListEmployees(c.Request.Context(), principal.TenantID)
	if err != nil {
		respondWithError(c, err, "List employees")
		return
	}
	c.JSON(http.StatusOK, employees)
}

// createEmployee godoc
// @Summary Create an employee
// @Tags employees
// @Accept json
// @Produce json
// @Param employee body dto.EmployeeRequest true "Employee"
// @Success 201 {object} domain.Employee
// @Failure 400 {object} dto.ErrorResponse "Invalid input or duplicate name"
// @Security BearerAuth
// @Router /data/employees [post]
func (h *catalogHandler) createEmployee(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	var req dto.EmployeeRequest
	if !bindJSON(c, &req) {
		return
	}
	employee, err := h.employeeService.CreateEmployee(c.Request.Context(), principal.TenantID, req)
	if err != nil {
		respondWithError(c, err, "Create employee")
		return
	}
	c.JSON(http.StatusCreated, employee)
}

// renameEmployee godoc
// @Summary Rename an employee
// @Tags employees
// @Accept json
// @Produce json
// @Param id path string true "Employee ID"
// @Param employee body dto.EmployeeRequest true "Employee"
// @Success 200 {object} domain.Employee
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /data/employees/{id} [put]
func (h *catalogHandler) renameEmployee(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req dto.EmployeeRequest
	if !bindJSON(c, &req) {
		return
	}
	employee, err := h.employeeService.RenameEmployee(c.Request.Context(), principal.TenantID, id, req)
	if err != nil {
		respondWithError(c, err, "Rename employee")
		return
	}
	c.JSON(http.StatusOK, employee)
}

// deleteEmployee godoc
// @Summary Delete an employee
// @Description Fails when the employee still has transactions.
// @Tags employees
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /data/employees/{id} [delete]
func (h *catalogHandler) deleteEmployee(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.employeeService.DeleteEmployee(c.Request.Context(), principal.TenantID, id); err != nil {
		respondWithError(c, err, "Delete employee")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Funcionário removido."})
}

// listItems godoc
// @Summary List catalog items grouped by type
// @Tags items
// @Produce json
// @Success 200 {object} map[string][]domain.CatalogItem
// @Security BearerAuth
// @Router /data/items [get]
func (h *catalogHandler) listItems(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	items, err := h.catalogService.ListItems(c.Request.Context(), principal.TenantID)
	if err != nil {
		respondWithError(c, err, "List items")
		return
	}
	c.JSON(http.StatusOK, items)
}

// createItem godoc
// @Summary Create a catalog item
// @Tags items
// @Accept json
// @Produce json
// @Param item body dto.CreateItemRequest true "Item"
// @Success 201 {object} domain.CatalogItem
// @Failure 400 {object} dto.ErrorResponse "Invalid input or duplicate name"
// @Security BearerAuth
// @Router /data/items [post]
func (h *catalogHandler) createItem(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	var req dto.CreateItemRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := h.catalogService.CreateItem(c.Request.Context(), principal.TenantID, req)
	if err != nil {
		respondWithError(c, err, "Create item")
		return
	}
	c.JSON(http.StatusCreated, item)
}

// renameItem godoc
// @Summary Rename a catalog item
// @Description Existing transactions keep the name they were recorded with.
// @Tags items
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param item body dto.RenameItemRequest true "New name"
// @Success 200 {object} domain.CatalogItem
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /data/items/{id} [put]
func (h *catalogHandler) renameItem(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req dto.RenameItemRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := h.catalogService.RenameItem(c.Request.Context(), principal.TenantID, id, req)
	if err != nil {
		respondWithError(c, err, "Rename item")
		return
	}
	c.JSON(http.StatusOK, item)
}

// deleteItem godoc
// @Summary Delete a catalog item
// @Tags items
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /data/items/{id} [delete]
func (h *catalogHandler) deleteItem(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.catalogService.DeleteItem(c.Request.Context(), principal.TenantID, id); err != nil {
		respondWithError(c, err, "Delete item")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Item removido."})
}
