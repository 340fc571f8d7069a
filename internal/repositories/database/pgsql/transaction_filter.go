package pgsql

import (
	"strconv"
	"strings"

	"github.com/SscSPs/ark_management_app/internal/apperrors"
	"github.com/SscSPs/ark_management_app/internal/core/domain"
	"github.com/SscSPs/ark_management_app/internal/utils/pagination"
)

// ledgerQuery accumulates WHERE predicates and their positional arguments.
type ledgerQuery struct {
	conds []string
	args  []any
}

func (q *ledgerQuery) add(cond string, args ...any) {
	for _, a := range args {
		q.args = append(q.args, a)
		cond = strings.Replace(cond, "?", "$"+strconv.Itoa(len(q.args)), 1)
	}
	q.conds = append(q.conds, cond)
}

func (q *ledgerQuery) where() string {
	if len(q.conds) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(q.conds, " AND ")
}

// buildLedgerFilter translates a TransactionFilter into predicates over the t (transactions) alias.
// Product and buyer filters imply sales, purchase item and supplier filters imply expenses.
func buildLedgerFilter(tenantID string, f domain.TransactionFilter) (*ledgerQuery, error) {
	q := &ledgerQuery{}
	q.add("t.client_id = ?", tenantID)

	if domain.IsFilterSet(f.EmployeeID) {
		q.add("t.employee_id = ?", f.EmployeeID)
	}
	if f.StartDate != nil {
		q.add("t.transaction_date >= ?", domain.DateOnly(*f.StartDate))
	}
	if f.EndDate != nil {
		q.add("t.transaction_date <= ?", domain.DateOnly(*f.EndDate))
	}
	if domain.IsFilterSet(f.Status) {
		q.add("t.status = ?", f.Status)
	}
	if domain.IsFilterSet(f.Kind) {
		q.add("t.type = ?", f.Kind)
	}
	if domain.IsFilterSet(f.Product) {
		q.add("t.description = ? AND t.type = ?", f.Product, string(domain.KindSale))
	}
	if domain.IsFilterSet(f.Buyer) {
		q.add("t.category = ? AND t.type = ?", f.Buyer, string(domain.KindSale))
	}
	if domain.IsFilterSet(f.PurchaseItem) {
		q.add("t.description = ? AND t.type = ?", f.PurchaseItem, string(domain.KindExpense))
	}
	if domain.IsFilterSet(f.Supplier) {
		q.add("t.category = ? AND t.type = ?", f.Supplier, string(domain.KindExpense))
	}

	if f.NextToken != nil && *f.NextToken != "" {
		cursor, err := pagination.DecodeCursor(*f.NextToken)
		if err != nil {
			return nil, apperrors.NewAppError(400, "invalid nextToken", err)
		}
		q.add("(t.transaction_date, t.created_at, t.transaction_id) < (?, ?, ?)", cursor.Date, cursor.CreatedAt, cursor.ID)
	}
	return q, nil
}
