package pgsql

import (
	portsrepo "github.com/SscSPs/ark_management_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TenantRepo:      newPgxTenantRepository(dbPool),
		UserRepo:        newPgxUserRepository(dbPool),
		EmployeeRepo:    newPgxEmployeeRepository(dbPool),
		CatalogRepo:     newPgxCatalogRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
		AttachmentRepo:  newPgxAttachmentRepository(dbPool),
		VendorRepo:      newPgxVendorRepository(dbPool),
		PaymentRepo:     newPgxPaymentRepository(dbPool),
		WithdrawalRepo:  newPgxWithdrawalRepository(dbPool),
		CommissionRepo:  newPgxCommissionRepository(dbPool),
	}
}
