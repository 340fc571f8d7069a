package dto

import "github.com/SscSPs/ark_management_app/internal/core/domain"

// EmployeeRequest creates or renames an employee.
type EmployeeRequest struct {
	Name string `json:"name" binding:"required,max=200"`
}

// CreateItemRequest adds a catalog item.
type CreateItemRequest struct {
	Type domain.CatalogType `json:"type" binding:"required,catalogtype"`
	Name string             `json:"name" binding:"required,max=200"`
}

// RenameItemRequest renames a catalog item.
type RenameItemRequest struct {
	Name string `json:"name" binding:"required,max=200"`
}
