package domain

// FinancialSummary é a resposta de GET /v1/companies/:id/financials
type FinancialSummary struct {
	CompanyID                string                  `json:"company_id"`
	TotalFixedCostsMonthly   float64                 `json:"total_fixed_costs_monthly"`
	AverageSalePrice         float64                 `json:"average_sale_price"`
	AverageVariableCost      float64                 `json:"average_variable_cost"`
	BreakEvenApplicable      bool                    `json:"break_even_applicable"`
	BreakEvenUnits           *float64                `json:"break_even_units"` // nil quando a margem de contribuição não é positiva
	BreakEvenUnitsRounded    *int64                  `json:"break_even_units_rounded"`
	AllocatedFixedCostByUnit float64                 `json:"allocated_fixed_cost_by_unit"`
	Products                 []*ProductProfitability `json:"products"`
}

type ProductProfitability struct {
	ProductID     string  `json:"product_id"`
	Name          string  `json:"name"`
	SalePrice     float64 `json:"sale_price"`
	Cost          float64 `json:"cost"`
	Profit        float64 `json:"profit"`
	ProfitPercent float64 `json:"profit_percent"`
	GrossMargin   float64 `json:"gross_margin"`
	NetMargin     float64 `json:"net_margin"`
}
