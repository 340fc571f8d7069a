package models

// Employee is a row of the employees table.
type Employee struct {
	EmployeeID string `db:"employee_id"`
	ClientID   string `db:"client_id"`
	Name       string `db:"name"`
	AuditFields
}

// CatalogItem is a row of the catalog_items table.
type CatalogItem struct {
	ItemID   string `db:"item_id"`
	ClientID string `db:"client_id"`
	Type     string `db:"type"`
	Name     string `db:"name"`
	AuditFields
}
