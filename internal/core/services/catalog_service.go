package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/ark_management_app/internal/apperrors"
	"github.com/SscSPs/ark_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ark_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ark_management_app/internal/core/ports/services"
	"github.com/SscSPs/ark_management_app/internal/dto"
	"github.com/google/uuid"
)

type employeeService struct {
	BaseService
	employeeRepo portsrepo.EmployeeRepositoryFacade
}

func NewEmployeeService(repo portsrepo.EmployeeRepositoryFacade) portssvc.EmployeeSvcFacade {
	return &employeeService{BaseService: newBaseService("employee"), employeeRepo: repo}
}

var _ portssvc.EmployeeSvcFacade = (*employeeService)(nil)

func (s *employeeService) ListEmployees(ctx context.Context, tenantID string) ([]domain.Employee, error) {
	employees, err := s.employeeRepo.ListEmployees(ctx, tenantID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list employees", slog.String("tenant_id", tenantID))
		return nil, err
	}
	if employees == nil {
		return []domain.Employee{}, nil
	}
	return employees, nil
}

func (s *employeeService) CreateEmployee(ctx context.Context, tenantID string, req dto.EmployeeRequest) (*domain.Employee, error) {
	name, err := requireName(req.Name)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	employee := domain.Employee{
		EmployeeID:  uuid.NewString(),
		TenantID:    tenantID,
		Name:        name,
		AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
	if err := s.employeeRepo.SaveEmployee(ctx, employee); err != nil {
		if !isExpected(err) {
			s.LogError(ctx, err, "Failed to save employee", slog.String("tenant_id", tenantID))
		}
		return nil, err
	}
	s.LogInfo(ctx, "Employee created", slog.String("employee_id", employee.EmployeeID))
	return &employee, nil
}

func (s *employeeService) RenameEmployee(ctx context.Context, tenantID, employeeID string, req dto.EmployeeRequest) (*domain.Employee, error) {
	name, err := requireName(req.Name)
	if err != nil {
		return nil, err
	}
	employee, err := s.employeeRepo.RenameEmployee(ctx, tenantID, employeeID, name, time.Now())
	if err != nil {
		if !isExpected(err) {
			s.LogError(ctx, err, "Failed to rename employee", slog.String("employee_id", employeeID))
		}
		return nil, err
	}
	return employee, nil
}

func (s *employeeService) DeleteEmployee(ctx context.Context, tenantID, employeeID string) error {
	if err := s.employeeRepo.DeleteEmployee(ctx, tenantID, employeeID); err != nil {
		if !isExpected(err) {
			s.LogError(ctx, err, "Failed to delete employee", slog.String("employee_id", employeeID))
		}
		return err
	}
	s.LogInfo(ctx, "Employee deleted", slog.String("employee_id", employeeID))
	return nil
}

type catalogService struct {
	BaseService
	catalogRepo portsrepo.CatalogRepositoryFacade
}

func NewCatalogService(repo portsrepo.CatalogRepositoryFacade) portssvc.CatalogSvcFacade {
	return &catalogService{BaseService: newBaseService("catalog"), catalogRepo: repo}
}

var _ portssvc.CatalogSvcFacade = (*catalogService)(nil)

func (s *catalogService) ListItems(ctx context.Context, tenantID string) (map[domain.CatalogType][]domain.CatalogItem, error) {
	items, err := s.catalogRepo.ListItems(ctx, tenantID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list catalog items", slog.String("tenant_id", tenantID))
		return nil, err
	}
	return domain.GroupCatalogItems(items), nil
}

func (s *catalogService) CreateItem(ctx context.Context, tenantID string, req dto.CreateItemRequest) (*domain.CatalogItem, error) {
	if !req.Type.IsValid() {
		return nil, apperrors.NewValidationFailedError("invalid item type")
	}
	name, err := requireName(req.Name)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	item := domain.CatalogItem{
		ItemID:      uuid.NewString(),
		TenantID:    tenantID,
		Type:        req.Type,
		Name:        name,
		AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
	if err := s.catalogRepo.SaveItem(ctx, item); err != nil {
		if !isExpected(err) {
			s.LogError(ctx, err, "Failed to save catalog item", slog.String("tenant_id", tenantID))
		}
		return nil, err
	}
	s.LogInfo(ctx, "Catalog item created", slog.String("item_id", item.ItemID), slog.String("type", string(item.Type)))
	return &item, nil
}

// RenameItem leaves transactions alone: they keep the name they were recorded with.
func (s *catalogService) RenameItem(ctx context.Context, tenantID, itemID string, req dto.RenameItemRequest) (*domain.CatalogItem, error) {
	name, err := requireName(req.Name)
	if err != nil {
		return nil, err
	}
	item, err := s.catalogRepo.RenameItem(ctx, tenantID, itemID, name, time.Now())
	if err != nil {
		if !isExpected(err) {
			s.LogError(ctx, err, "Failed to rename catalog item", slog.String("item_id", itemID))
		}
		return nil, err
	}
	return item, nil
}

func (s *catalogService) DeleteItem(ctx context.Context, tenantID, itemID string) error {
	if err := s.catalogRepo.DeleteItem(ctx, tenantID, itemID); err != nil {
		if !isExpected(err) {
			s.LogError(ctx, err, "Failed to delete catalog item", slog.String("item_id", itemID))
		}
		return err
	}
	s.LogInfo(ctx, "Catalog item deleted", slog.String("item_id", itemID))
	return nil
}

func requireName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", apperrors.NewValidationFailedError("name is required")
	}
	return name, nil
}
