package models

import (
	"fmt"
	"strings"
)

// StatementType identifies the kind of financial statement being analysed.
type StatementType string

const (
	// BalanceSheet is a statement of assets, liabilities and equity.
	BalanceSheet StatementType = "balance_sheet"
	// ProfitLoss is an income statement.
	ProfitLoss StatementType = "profit_loss"
	// CashFlow is a cash flow statement.
	CashFlow StatementType = "cash_flow"
)

// StatementTypes lists the supported statement types in display order.
var StatementTypes = []StatementType{CashFlow, ProfitLoss, BalanceSheet}

var statementAliases = map[string]StatementType{
	"balance_sheet":    BalanceSheet,
	"balancesheet":     BalanceSheet,
	"balance sheet":    BalanceSheet,
	"bs":               BalanceSheet,
	"profit_loss":      ProfitLoss,
	"profitloss":       ProfitLoss,
	"profit and loss":  ProfitLoss,
	"profit & loss":    ProfitLoss,
	"p&l":              ProfitLoss,
	"pl":               ProfitLoss,
	"income statement": ProfitLoss,
	"cash_flow":        CashFlow,
	"cashflow":         CashFlow,
	"cash flow":        CashFlow,
	"cf":               CashFlow,
}

// ParseStatementType resolves a canonical key or a common alias.
func ParseStatementType(s string) (StatementType, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.ReplaceAll(key, "-", "_")
	if st, ok := statementAliases[key]; ok {
		return st, nil
	}
	if st, ok := statementAliases[strings.ReplaceAll(key, "_", " ")]; ok {
		return st, nil
	}
	return "", fmt.Errorf("unknown statement type: %q", s)
}

// Title returns the human-readable name of the statement type.
func (s StatementType) Title() string {
	switch s {
	case BalanceSheet:
		return "Balance Sheet"
	case ProfitLoss:
		return "Profit & Loss"
	case CashFlow:
		return "Cash Flow"
	default:
		return string(s)
	}
}
