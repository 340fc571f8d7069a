package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/ark_management_app/internal/apperrors"
	"github.com/SscSPs/ark_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ark_management_app/internal/core/ports/repositories"
	"github.com/SscSPs/ark_management_app/internal/models"
	"github.com/SscSPs/ark_management_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxEmployeeRepository struct {
	BaseRepository
}

func newPgxEmployeeRepository(pool *pgxpool.Pool) portsrepo.EmployeeRepositoryFacade {
	return &PgxEmployeeRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.EmployeeRepositoryFacade = (*PgxEmployeeRepository)(nil)

var FULL_EMPLOYEE_SELECT_QUERY = `
SELECT e.employee_id, e.client_id, e.name, e.created_at, e.last_updated_at
FROM employees e
`

func (r *PgxEmployeeRepository) ListEmployees(ctx context.Context, tenantID string) ([]domain.Employee, error) {
	rows, err := collect[models.Employee](ctx, r.Pool, "failed to list employees",
		FULL_EMPLOYEE_SELECT_QUERY+`WHERE e.client_id = $1 ORDER BY e.name`, tenantID)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainEmployeeSlice(rows), nil
}

func (r *PgxEmployeeRepository) FindEmployeeByID(ctx context.Context, tenantID, employeeID string) (*domain.Employee, error) {
	m, err := collectOne[models.Employee](ctx, r.Pool, "employee not found", "failed to find employee",
		FULL_EMPLOYEE_SELECT_QUERY+`WHERE e.employee_id = $1 AND e.client_id = $2`, employeeID, tenantID)
	if err != nil {
		return nil, err
	}
	employee := mapping.ToDomainEmployee(*m)
	return &employee, nil
}

func (r *PgxEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO employees (employee_id, client_id, name, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5)`,
		employee.EmployeeID, employee.TenantID, employee.Name, employee.CreatedAt, employee.LastUpdatedAt,
	)
	if err != nil {
		return translateWriteError(err, "an employee with this name already exists", "client does not exist", "failed to save employee")
	}
	return nil
}

func (r *PgxEmployeeRepository) RenameEmployee(ctx context.Context, tenantID, employeeID, name string, now time.Time) (*domain.Employee, error) {
	m, err := collectOne[models.Employee](ctx, r.Pool, "employee not found", "failed to rename employee", `
		UPDATE employees SET name = $1, last_updated_at = $2
		WHERE employee_id = $3 AND client_id = $4
		RETURNING employee_id, client_id, name, created_at, last_updated_at`,
		name, now, employeeID, tenantID)
	if err != nil {
		if code, _ := pgErrorCode(err); code == pgUniqueViolation {
			return nil, apperrors.NewConflictError("an employee with this name already exists")
		}
		return nil, err
	}
	employee := mapping.ToDomainEmployee(*m)
	return &employee, nil
}

func (r *PgxEmployeeRepository) DeleteEmployee(ctx context.Context, tenantID, employeeID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM employees WHERE employee_id = $1 AND client_id = $2`, employeeID, tenantID)
	if err != nil {
		if code, _ := pgErrorCode(err); code == pgForeignKeyViolation {
			return apperrors.NewValidationFailedError("employee has transactions and cannot be deleted")
		}
		return apperrors.NewAppError(500, "failed to delete employee", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("employee not found")
	}
	return nil
}

type PgxCatalogRepository struct {
	BaseRepository
}

func newPgxCatalogRepository(pool *pgxpool.Pool) portsrepo.CatalogRepositoryFacade {
	return &PgxCatalogRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CatalogRepositoryFacade = (*PgxCatalogRepository)(nil)

const catalogItemColumns = `item_id, client_id, type, name, created_at, last_updated_at`

func (r *PgxCatalogRepository) ListItems(ctx context.Context, tenantID string) ([]domain.CatalogItem, error) {
	rows, err := collect[models.CatalogItem](ctx, r.Pool, "failed to list items",
		`SELECT `+catalogItemColumns+` FROM catalog_items WHERE client_id = $1 ORDER BY name`, tenantID)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainCatalogItemSlice(rows), nil
}

func (r *PgxCatalogRepository) ItemExists(ctx context.Context, tenantID string, itemType domain.CatalogType, name string) (bool, error) {
	var exists bool
	err := r.Pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM catalog_items WHERE client_id = $1 AND type = $2 AND name = $3)`,
		tenantID, string(itemType), name).Scan(&exists)
	if err != nil {
		return false, apperrors.NewAppError(500, "failed to look up catalog item", err)
	}
	return exists, nil
}

func (r *PgxCatalogRepository) SaveItem(ctx context.Context, item domain.CatalogItem) error {
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO catalog_items (item_id, client_id, type, name, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		item.ItemID, item.TenantID, string(item.Type), item.Name, item.CreatedAt, item.LastUpdatedAt,
	)
	if err != nil {
		return translateWriteError(err, "an item with this name already exists", "client does not exist", "failed to save item")
	}
	return nil
}

func (r *PgxCatalogRepository) RenameItem(ctx context.Context, tenantID, itemID, name string, now time.Time) (*domain.CatalogItem, error) {
	m, err := collectOne[models.CatalogItem](ctx, r.Pool, "item not found", "failed to rename item", `
		UPDATE catalog_items SET name = $1, last_updated_at = $2
		WHERE item_id = $3 AND client_id = $4
		RETURNING `+catalogItemColumns,
		name, now, itemID, tenantID)
	if err != nil {
		if code, _ := pgErrorCode(err); code == pgUniqueViolation {
			return nil, apperrors.NewConflictError("an item with this name already exists")
		}
		return nil, err
	}
	item := mapping.ToDomainCatalogItem(*m)
	return &item, nil
}

func (r *PgxCatalogRepository) DeleteItem(ctx context.Context, tenantID, itemID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM catalog_items WHERE item_id = $1 AND client_id = $2`, itemID, tenantID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete item", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("item not found")
	}
	return nil
}
