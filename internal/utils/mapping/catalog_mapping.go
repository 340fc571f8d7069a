package mapping

import (
	"github.com/SscSPs/ark_management_app/internal/core/domain"
	"github.com/SscSPs/ark_management_app/internal/models"
)

func ToDomainEmployee(m models.Employee) domain.Employee {
	return domain.Employee{
		EmployeeID:  m.EmployeeID,
		TenantID:    m.ClientID,
		Name:        m.Name,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainEmployeeSlice(ms []models.Employee) []domain.Employee {
	return mapSlice(ms, ToDomainEmployee)
}

func ToDomainCatalogItem(m models.CatalogItem) domain.CatalogItem {
	return domain.CatalogItem{
		ItemID:      m.ItemID,
		TenantID:    m.ClientID,
		Type:        domain.CatalogType(m.Type),
		Name:        m.Name,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainCatalogItemSlice(ms []models.CatalogItem) []domain.CatalogItem {
	return mapSlice(ms, ToDomainCatalogItem)
}
