// Package seed ships a ready-made MIPYME chart of accounts and its
// statement classification policy, used by the CLI when no CSV data is
// provided.
package seed

import (
	"github.com/pymeledger/pymeledger/internal/core/domain"
	"github.com/pymeledger/pymeledger/internal/dto"
	"github.com/shopspring/decimal"
)

// DefaultChart returns the default chart of accounts for a small trading
// business. Opening balances satisfy the accounting equation:
// assets 210,100 = liabilities 45,000 + capital 165,100.
func DefaultChart() []dto.RegisterAccountRequest {
	return []dto.RegisterAccountRequest{
		{Code: "1001", Name: "Efectivo en Caja", AccountType: domain.Asset, Nature: domain.DebitNature,
			OpeningBalance: decimal.NewFromInt(38100), Description: "Cash on hand"},
		{Code: "1002", Name: "Bancos", AccountType: domain.Asset, Nature: domain.DebitNature,
			OpeningBalance: decimal.NewFromInt(68000), Description: "Bank checking account"},
		{Code: "1003", Name: "Clientes", AccountType: domain.Asset, Nature: domain.DebitNature,
			Description: "Accounts receivable"},
		{Code: "1004", Name: "Documentos por Cobrar", AccountType: domain.Asset, Nature: domain.DebitNature,
			Description: "Notes receivable"},
		{Code: "1101", Name: "Inventario de Mercaderías", AccountType: domain.Asset, Nature: domain.DebitNature,
			OpeningBalance: decimal.NewFromInt(78000), Description: "Merchandise inventory"},
		{Code: "1201", Name: "Mobiliario y Equipo", AccountType: domain.Asset, Nature: domain.DebitNature,
			OpeningBalance: decimal.NewFromInt(26000), Description: "Furniture and equipment"},
		{Code: "2001", Name: "Proveedores", AccountType: domain.Liability, Nature: domain.CreditNature,
			OpeningBalance: decimal.NewFromInt(37000), Description: "Accounts payable"},
		{Code: "2002", Name: "Letras de Cambio por Pagar", AccountType: domain.Liability, Nature: domain.CreditNature,
			OpeningBalance: decimal.NewFromInt(8000), Description: "Bills of exchange payable"},
		{Code: "3001", Name: "Capital", AccountType: domain.Equity, Nature: domain.CreditNature,
			OpeningBalance: decimal.NewFromInt(165100), Description: "Owner's capital"},
		{Code: "4001", Name: "Ventas", AccountType: domain.Revenue, Nature: domain.CreditNature,
			Description: "Sales revenue"},
		{Code: "5001", Name: "Alquiler", AccountType: domain.Expense, Nature: domain.DebitNature,
			Description: "Rent expense"},
		{Code: "5002", Name: "Publicidad", AccountType: domain.Expense, Nature: domain.DebitNature,
			Description: "Advertising expense"},
		{Code: "5003", Name: "Sueldos", AccountType: domain.Expense, Nature: domain.DebitNature,
			Description: "Salaries expense"},
		{Code: "5101", Name: "Costo de Ventas", AccountType: domain.Expense, Nature: domain.DebitNature,
			Description: "Cost of goods sold"},
	}
}

// DefaultPolicy classifies the default chart: 1200-range assets are
// non-current (property and equipment) and 5101 is cost of sales.
// Everything else stays current/operating.
func DefaultPolicy() domain.ClassificationPolicy {
	return domain.ClassificationPolicy{
		ByCode: map[string]domain.AccountClass{
			"5101": {CostOfSales: true},
		},
		Ranges: []domain.CodeRange{
			{From: "1200", To: "1299", Class: domain.AccountClass{NonCurrent: true}},
		},
	}
}
