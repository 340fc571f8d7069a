package repositories

// RepositoryProvider holds all repository interfaces needed by services.
type RepositoryProvider struct {
	TenantRepo      TenantRepositoryFacade
	UserRepo        UserRepositoryFacade
	EmployeeRepo    EmployeeRepositoryFacade
	CatalogRepo     CatalogRepositoryFacade
	TransactionRepo TransactionRepositoryFacade
	AttachmentRepo  AttachmentRepositoryFacade
	VendorRepo      VendorRepositoryFacade
	PaymentRepo     PaymentRepositoryFacade
	WithdrawalRepo  WithdrawalRepositoryFacade
	CommissionRepo  CommissionRepositoryFacade
}
