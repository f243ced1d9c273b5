package domain

import "github.com/vfg2006/valuation-api/internal/finance"

type CostKind string

const (
	CostKindFixed    CostKind = "fixed"
	CostKindVariable CostKind = "variable"
)

func (k CostKind) IsValid() bool {
	return k == CostKindFixed || k == CostKindVariable
}

type FixedCost struct {
	ID          string              `json:"id"`
	CompanyID   string              `json:"company_id"`
	Name        string              `json:"name"`
	Amount      float64             `json:"amount"`
	Periodicity finance.Periodicity `json:"periodicity"`
	Description *string             `json:"description"`
}

type VariableCost struct {
	ID          string  `json:"id"`
	CompanyID   string  `json:"company_id"`
	Name        string  `json:"name"`
	Amount      float64 `json:"amount"`
	Unit        string  `json:"unit"`
	Description *string `json:"description"`
}

type CreateCostRequest struct {
	Name        string               `json:"name"`
	Amount      float64              `json:"amount"`
	Periodicity *finance.Periodicity `json:"periodicity,omitempty"`
	Unit        *string              `json:"unit,omitempty"`
	Description *string              `json:"description,omitempty"`
}

// TotalFixedMonthly soma os custos fixos normalizados para o mês
func TotalFixedMonthly(costs []*FixedCost) float64 {
	items := make([]finance.CostItem, 0, len(costs))
	for _, cost := range costs {
		if cost == nil {
			continue
		}
		items = append(items, finance.CostItem{Amount: cost.Amount, Periodicity: cost.Periodicity})
	}
	return finance.TotalMonthly(items)
}
