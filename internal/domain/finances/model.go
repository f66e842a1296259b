package finances

import (
	"time"

	"aurora-app-go/internal/domain/metrics"
	"github.com/shopspring/decimal"
)

type Type = metrics.FlowType

const (
	TypeIncome          = metrics.FlowIncome
	TypeFixedExpense    = metrics.FlowFixedExpense
	TypeVariableExpense = metrics.FlowVariableExpense
	TypeInvestment      = metrics.FlowInvestment

	DefaultType = TypeVariableExpense
)

// Categories offered when recording a transaction. "custom" maps to Outros.
var Categories = []string{"Lazer", "Alimentação", "Transporte", "Saúde", "Educação", "Moradia", "Investimentos", "Salário", "Outros"}

const (
	CustomCategory   = "custom"
	FallbackCategory = "Outros"
)

type Transaction struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        Type            `json:"type"`
	Category    string          `json:"category,omitempty"`
	Date        time.Time       `json:"date"`
}

type AddInput struct {
	Description string
	Amount      decimal.NullDecimal
	Type        Type
	Category    string
}

type ListFilter struct {
	Search string
}
