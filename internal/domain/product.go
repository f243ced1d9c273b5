package domain

import "github.com/vfg2006/valuation-api/internal/finance"

type Product struct {
	ID         string             `json:"id"`
	CompanyID  string             `json:"company_id"`
	Name       string             `json:"name"`
	ManualCost float64            `json:"manual_cost"`
	Cost       float64            `json:"cost"` // Custo efetivo persistido
	SalePrice  float64            `json:"sale_price"`
	Stages     []*ProductionStage `json:"stages"`
}

type ProductionStage struct {
	ID          string  `json:"id"`
	ProductID   string  `json:"product_id"`
	Name        string  `json:"name"`
	Order       int     `json:"order"`
	Cost        float64 `json:"cost"`
	Description *string `json:"description"`
}

// EffectiveCost recalcula o custo efetivo a partir das etapas de produção
func (p *Product) EffectiveCost() float64 {
	costs := make([]float64, 0, len(p.Stages))
	for _, stage := range p.Stages {
		if stage == nil {
			continue
		}
		costs = append(costs, stage.Cost)
	}
	return finance.EffectiveCost(p.ManualCost, costs...)
}

type CreateProductRequest struct {
	Name       string  `json:"name"`
	ManualCost float64 `json:"manual_cost"`
	SalePrice  float64 `json:"sale_price"`
}

type StageRequest struct {
	ID          string   `json:"-"`
	ProductID   string   `json:"-"`
	Name        *string  `json:"name,omitempty"`
	Order       *int     `json:"order,omitempty"`
	Cost        *float64 `json:"cost,omitempty"`
	Description *string  `json:"description,omitempty"`
}
