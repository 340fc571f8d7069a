package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/ark_management_app/internal/core/domain"
)

// EmployeeRepositoryFacade defines persistence operations for employees.
// Every operation is scoped by tenant ID.
type EmployeeRepositoryFacade interface {
	ListEmployees(ctx context.Context, tenantID string) ([]domain.Employee, error)
	FindEmployeeByID(ctx context.Context, tenantID, employeeID string) (*domain.Employee, error)
	SaveEmployee(ctx context.Context, employee domain.Employee) error
	RenameEmployee(ctx context.Context, tenantID, employeeID, name string, now time.Time) (*domain.Employee, error)
	DeleteEmployee(ctx context.Context, tenantID, employeeID string) error
}

// CatalogReader defines read operations for catalog items
type CatalogReader interface {
	// ListItems lists the catalog of a tenant ordered by name.
	ListItems(ctx context.Context, tenantID string) ([]domain.CatalogItem, error)

	// ItemExists reports whether the tenant has an item of the given type and exact name.
	ItemExists(ctx context.Context, tenantID string, itemType domain.CatalogType, name string) (bool, error)
}

// CatalogWriter defines write operations for catalog items
type CatalogWriter interface {
	SaveItem(ctx context.Context, item domain.CatalogItem) error
	RenameItem(ctx context.Context, tenantID, itemID, name string, now time.Time) (*domain.CatalogItem, error)
	DeleteItem(ctx context.Context, tenantID, itemID string) error
}

// CatalogRepositoryFacade combines all catalog-related repository interfaces
type CatalogRepositoryFacade interface {
	CatalogReader
	CatalogWriter
}
