package metrics

import "github.com/shopspring/decimal"

type FlowType string

const (
	FlowIncome          FlowType = "income"
	FlowFixedExpense    FlowType = "fixed_expense"
	FlowVariableExpense FlowType = "variable_expense"
	FlowInvestment      FlowType = "investment"
)

func (t FlowType) Valid() bool {
	switch t {
	case FlowIncome, FlowFixedExpense, FlowVariableExpense, FlowInvestment:
		return true
	default:
		return false
	}
}

// Flow is the part of a transaction the balance depends on.
type Flow struct {
	Type   FlowType
	Amount decimal.Decimal
}

type FinanceSummary struct {
	Income      decimal.Decimal `json:"income"`
	Expenses    decimal.Decimal `json:"expenses"`
	Investments decimal.Decimal `json:"investments"`
	Balance     decimal.Decimal `json:"balance"`
}

// SummarizeFinances computes income - (fixed + variable expenses) -
// investments. Amounts are taken as stored, so a negative amount simply
// flips its contribution. Unknown types contribute nothing.
func SummarizeFinances(flows []Flow) FinanceSummary {
	summary := FinanceSummary{
		Income:      decimal.Zero,
		Expenses:    decimal.Zero,
		Investments: decimal.Zero,
	}
	for _, flow := range flows {
		switch flow.Type {
		case FlowIncome:
			summary.Income = summary.Income.Add(flow.Amount)
		case FlowFixedExpense, FlowVariableExpense:
			summary.Expenses = summary.Expenses.Add(flow.Amount)
		case FlowInvestment:
			summary.Investments = summary.Investments.Add(flow.Amount)
		}
	}
	summary.Balance = summary.Income.Sub(summary.Expenses).Sub(summary.Investments)
	return summary
}
