package report_test

import (
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/ark_management_app/internal/core/domain"
	"github.com/SscSPs/ark_management_app/internal/report"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRows() []domain.Transaction {
	return []domain.Transaction{
		{
			EmployeeName:    "Maria",
			Kind:            domain.KindSale,
			TransactionDate: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
			Description:     "Widget",
			Counterpart:     "Bob",
			Quantity:        decimal.RequireFromString("2.5"),
			UnitPrice:       decimal.RequireFromString("493.82"),
			TotalPrice:      decimal.RequireFromString("1234.56"),
			Status:          domain.StatusPaid,
		},
		{
			EmployeeName:    "Maria",
			Kind:            domain.KindExpense,
			TransactionDate: time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC),
			Description:     "Cimento",
			Counterpart:     "Depósito <Central>",
			Quantity:        decimal.RequireFromString("4"),
			UnitPrice:       decimal.RequireFromString("50"),
			TotalPrice:      decimal.RequireFromString("200"),
			Status:          domain.StatusPending,
		},
	}
}

func render(t *testing.T, in report.Input) string {
	t.Helper()
	out, err := report.Render(in)
	require.NoError(t, err)
	return string(out)
}

func TestRender_GeneralView(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	rows := sampleRows()

	html := render(t, report.Input{
		Header:  report.Header{CompanyName: "ACME Ltda", LogoURL: "http://localhost:8080/api/files/clients/t1/logo/a.png"},
		View:    domain.ReportViewAll,
		Filter:  domain.TransactionFilter{EmployeeID: "all", StartDate: &start, EndDate: &end},
		Rows:    rows,
		Summary: domain.Summarize(rows),
	})

	assert.Contains(t, html, "Relatório de Fechamento - Geral")
	assert.Contains(t, html, "<strong>Período:</strong> 01/03/2024 a 31/03/2024")
	assert.Contains(t, html, headerRow+"<th>Data</th><th>Funcionário</th><th>Tipo</th><th>Descrição</th><th>Comprador/Forn.</th><th>Total</th><th>Status</th></tr>")
	assert.Contains(t, html, "<td>Maria</td>")
	assert.Contains(t, html, "R$ 1.234,56")
	assert.Contains(t, html, "color:green;")
	assert.Contains(t, html, "color:red;")
	assert.Contains(t, html, "<strong>Saldo Final:</strong> R$ 1.034,56")
	assert.Contains(t, html, `class="no-print"`)
	assert.Contains(t, html, "ACME Ltda")
	assert.Contains(t, html, "Depósito &lt;Central&gt;")
	assert.NotContains(t, html, "<Central>")
}

const headerRow = "<thead><tr>"

func TestRender_BuyerView(t *testing.T) {
	html := render(t, report.Input{
		View:   domain.ReportViewSales,
		Filter: domain.TransactionFilter{Buyer: "Bob", Kind: string(domain.KindSale)},
		Rows:   sampleRows()[:1],
	})

	assert.Contains(t, html, "Relatório de Fechamento - Venda")
	assert.Contains(t, html, ">BOB</h1>")
	assert.Contains(t, html, headerRow+"<th>Data</th><th>Qtd</th><th>Produto</th><th>Valor Unit.</th><th>Valor Total</th><th>Status</th></tr>")
	assert.Contains(t, html, "<td>05/03/2024</td><td>2,5</td><td>Widget</td><td>R$ 493,82</td>")
	assert.NotContains(t, html, "<td>Maria</td>")
}

func TestRender_SupplierView(t *testing.T) {
	html := render(t, report.Input{
		View:   domain.ReportViewExpenses,
		Filter: domain.TransactionFilter{Supplier: "Depósito", Kind: string(domain.KindExpense)},
		Rows:   sampleRows()[1:],
	})

	assert.Contains(t, html, "Relatório de Fechamento - Compra")
	assert.Contains(t, html, ">DEPÓSITO</h1>")
	assert.Contains(t, html, headerRow+"<th>Data</th><th>Qtd</th><th>Compra</th><th>Valor Unit.</th><th>Valor Total</th><th>Status</th></tr>")
	assert.Contains(t, html, "<td>06/03/2024</td><td>4</td><td>Cimento</td><td>R$ 50,00</td>")
}

func TestRender_EmployeeViewDropsEmployeeColumn(t *testing.T) {
	rows := sampleRows()
	html := render(t, report.Input{
		View:         domain.ReportViewAll,
		Filter:       domain.TransactionFilter{EmployeeID: "e1"},
		EmployeeName: "Maria",
		Rows:         rows,
		Summary:      domain.Summarize(rows),
	})

	assert.Contains(t, html, "<h1>Relatório de Fechamento</h1>")
	assert.Contains(t, html, ">MARIA</h1>")
	assert.Contains(t, html, headerRow+"<th>Data</th><th>Tipo</th><th>Descrição</th><th>Comprador/Forn.</th><th>Total</th><th>Status</th></tr>")
	assert.NotContains(t, html, "<td>Maria</td>")
}

func TestRender_EmptyRows(t *testing.T) {
	html := render(t, report.Input{View: domain.ReportViewAll})

	assert.Contains(t, html, "Relatório de Fechamento - Geral")
	assert.Equal(t, 0, strings.Count(html, "<td>"))
	assert.Contains(t, html, "<strong>Total Ganhos:</strong> R$ 0,00")
}
