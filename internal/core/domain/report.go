package domain

// ReportView selects which side of the ledger a report focuses on.
type ReportView string

const (
	ReportViewAll      ReportView = "all"
	ReportViewSales    ReportView = "sales"
	ReportViewExpenses ReportView = "expenses"
)

// IsValid reports whether v is a known report view.
func (v ReportView) IsValid() bool {
	switch v {
	case ReportViewAll, ReportViewSales, ReportViewExpenses:
		return true
	}
	return false
}

// ReportRequest asks for a closing report over a filtered ledger.
type ReportRequest struct {
	View         ReportView
	Filter       TransactionFilter
	EmployeeName string
}
