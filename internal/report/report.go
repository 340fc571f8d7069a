// Package report renders the printable closing report of a tenant's ledger.
package report

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/SscSPs/ark_management_app/internal/core/domain"
	"github.com/SscSPs/ark_management_app/internal/utils"
	"github.com/shopspring/decimal"
)

//go:embed templates/closing_report.html
var templatesFS embed.FS

const (
	baseTitle     = "Relatório de Fechamento"
	titleSales    = baseTitle + " - Venda"
	titleExpenses = baseTitle + " - Compra"
	titleGeneral  = baseTitle + " - Geral"
)

// Header identifies the tenant the report is printed for.
type Header struct {
	CompanyName  string
	ContactPhone string
	FullAddress  string
	LogoURL      string
}

// Input is everything the renderer needs. Rendering performs no I/O.
type Input struct {
	Header       Header
	View         domain.ReportView
	Filter       domain.TransactionFilter
	EmployeeName string
	Rows         []domain.Transaction
	Summary      domain.LedgerSummary
}

type cell struct {
	Value string
	Color string
}

type row struct {
	Cells []cell
}

// layout selects the table columns of a report.
type layout int

const (
	layoutGeneral layout = iota
	layoutEmployee
	layoutBuyer
	layoutSupplier
)

var columnsByLayout = map[layout][]string{
	layoutGeneral:  {"Data", "Funcionário", "Tipo", "Descrição", "Comprador/Forn.", "Total", "Status"},
	layoutEmployee: {"Data", "Tipo", "Descrição", "Comprador/Forn.", "Total", "Status"},
	layoutBuyer:    {"Data", "Qtd", "Produto", "Valor Unit.", "Valor Total", "Status"},
	layoutSupplier: {"Data", "Qtd", "Compra", "Valor Unit.", "Valor Total", "Status"},
}

type page struct {
	Header       Header
	Title        string
	Subtitle     string
	PeriodStart  string
	PeriodEnd    string
	Columns      []string
	Rows         []row
	TotalIncome  string
	TotalExpense string
	Balance      string
}

var closingReport = template.Must(template.ParseFS(templatesFS, "templates/closing_report.html"))

// Render produces the HTML document of a closing report.
func Render(in Input) ([]byte, error) {
	title, subtitle, l := heading(in)

	p := page{
		Header:       in.Header,
		Title:        title,
		Subtitle:     subtitle,
		PeriodStart:  formatOptionalDate(in.Filter.StartDate),
		PeriodEnd:    formatOptionalDate(in.Filter.EndDate),
		Columns:      columnsByLayout[l],
		Rows:         make([]row, 0, len(in.Rows)),
		TotalIncome:  utils.FormatBRL(in.Summary.TotalIncome),
		TotalExpense: utils.FormatBRL(in.Summary.TotalExpense),
		Balance:      utils.FormatBRL(in.Summary.Balance),
	}
	for _, t := range in.Rows {
		p.Rows = append(p.Rows, toRow(t, l))
	}

	var buf bytes.Buffer
	if err := closingReport.Execute(&buf, p); err != nil {
		return nil, fmt.Errorf("render closing report: %w", err)
	}
	return buf.Bytes(), nil
}

// heading picks the title, subtitle and layout. A buyer or supplier report names the counterpart
// and lists quantities, an employee report names the employee and drops the employee column.
func heading(in Input) (title, subtitle string, l layout) {
	f := in.Filter
	switch {
	case in.View == domain.ReportViewSales && domain.IsFilterSet(f.Buyer):
		return titleSales, strings.ToUpper(f.Buyer), layoutBuyer
	case in.View == domain.ReportViewExpenses && domain.IsFilterSet(f.Supplier):
		return titleExpenses, strings.ToUpper(f.Supplier), layoutSupplier
	case domain.IsFilterSet(f.EmployeeID):
		title = baseTitle
		switch in.View {
		case domain.ReportViewSales:
			title = titleSales
		case domain.ReportViewExpenses:
			title = titleExpenses
		}
		return title, strings.ToUpper(in.EmployeeName), layoutEmployee
	default:
		return titleGeneral, "", layoutGeneral
	}
}

func toRow(t domain.Transaction, l layout) row {
	color := "red"
	if t.Kind == domain.KindSale {
		color = "green"
	}
	date := cell{Value: t.TransactionDate.Format("02/01/2006")}
	total := cell{Value: utils.FormatBRL(t.TotalPrice), Color: color}
	status := cell{Value: statusLabel(t.Status)}

	switch l {
	case layoutBuyer, layoutSupplier:
		return row{Cells: []cell{
			date,
			{Value: formatQuantity(t.Quantity)},
			{Value: t.Description},
			{Value: utils.FormatBRL(t.UnitPrice)},
			total,
			status,
		}}
	case layoutEmployee:
		return row{Cells: []cell{date, {Value: kindLabel(t.Kind)}, {Value: t.Description}, {Value: t.Counterpart}, total, status}}
	default:
		return row{Cells: []cell{
			date,
			{Value: t.EmployeeName},
			{Value: kindLabel(t.Kind)},
			{Value: t.Description},
			{Value: t.Counterpart},
			total,
			status,
		}}
	}
}

// formatQuantity prints a quantity with a decimal comma and no trailing zeros.
func formatQuantity(q decimal.Decimal) string {
	return strings.Replace(q.String(), ".", ",", 1)
}

func kindLabel(k domain.TransactionKind) string {
	switch k {
	case domain.KindSale:
		return "Venda"
	case domain.KindExpense:
		return "Gasto"
	}
	return string(k)
}

func statusLabel(s domain.PaymentStatus) string {
	switch s {
	case domain.StatusPaid:
		return "Pago"
	case domain.StatusPending:
		return "Pendente"
	}
	return string(s)
}

func formatOptionalDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("02/01/2006")
}

