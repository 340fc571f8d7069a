package domain

// Employee is a named worker of a tenant; transactions are recorded against employees.
type Employee struct {
	EmployeeID string `json:"id"`
	TenantID   string `json:"clientId"`
	Name       string `json:"name"`
	AuditFields
}
