package domain

// CatalogType is the kind of controlled-vocabulary entry.
type CatalogType string

const (
	CatalogProduct      CatalogType = "product"
	CatalogBuyer        CatalogType = "buyer"
	CatalogPurchaseItem CatalogType = "purchase_item"
	CatalogSupplier     CatalogType = "supplier"
)

// CatalogTypes lists every catalog type in display order.
var CatalogTypes = []CatalogType{CatalogProduct, CatalogBuyer, CatalogPurchaseItem, CatalogSupplier}

// IsValid reports whether t is a known catalog type.
func (t CatalogType) IsValid() bool {
	for _, known := range CatalogTypes {
		if t == known {
			return true
		}
	}
	return false
}

// CatalogItem is a named entry a transaction must reference by name.
type CatalogItem struct {
	ItemID   string      `json:"id"`
	TenantID string      `json:"clientId"`
	Type     CatalogType `json:"type"`
	Name     string      `json:"name"`
	AuditFields
}

// GroupCatalogItems buckets items by type. Every type is present in the result, possibly empty.
func GroupCatalogItems(items []CatalogItem) map[CatalogType][]CatalogItem {
	grouped := make(map[CatalogType][]CatalogItem, len(CatalogTypes))
	for _, t := range CatalogTypes {
		grouped[t] = []CatalogItem{}
	}
	for _, item := range items {
		if _, ok := grouped[item.Type]; ok {
			grouped[item.Type] = append(grouped[item.Type], item)
		}
	}
	return grouped
}
