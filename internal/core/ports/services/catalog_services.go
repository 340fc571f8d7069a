package services

import (
	"context"

	"github.com/SscSPs/ark_management_app/internal/core/domain"
	"github.com/SscSPs/ark_management_app/internal/dto"
)

// EmployeeSvcFacade manages the employees of a tenant
type EmployeeSvcFacade interface {
	ListEmployees(ctx context.Context, tenantID string) ([]domain.Employee, error)
	CreateEmployee(ctx context.Context, tenantID string, req dto.EmployeeRequest) (*domain.Employee, error)
	RenameEmployee(ctx context.Context, tenantID, employeeID string, req dto.EmployeeRequest) (*domain.Employee, error)
	DeleteEmployee(ctx context.Context, tenantID, employeeID string) error
}

// CatalogReaderSvc defines read operations for the catalog
type CatalogReaderSvc interface {
	// ListItems groups the tenant's catalog by type; every type is present.
	ListItems(ctx context.Context, tenantID string) (map[domain.CatalogType][]domain.CatalogItem, error)
}

// CatalogWriterSvc defines write operations for the catalog
type CatalogWriterSvc interface {
	CreateItem(ctx context.Context, tenantID string, req dto.CreateItemRequest) (*domain.CatalogItem, error)
	RenameItem(ctx context.Context, tenantID, itemID string, req dto.RenameItemRequest) (*domain.CatalogItem, error)
	DeleteItem(ctx context.Context, tenantID, itemID string) error
}

// CatalogSvcFacade combines all catalog-related service interfaces
type CatalogSvcFacade interface {
	CatalogReaderSvc
	CatalogWriterSvc
}
