package domain

import (
	"time"

	"github.com/vfg2006/valuation-api/internal/finance"
)

// ValuationConfig são os parâmetros de valuation persistidos por empresa
type ValuationConfig struct {
	CompanyID       string         `json:"company_id"`
	MonthlyRevenue  *float64       `json:"monthly_revenue"`
	DiscountRate    float64        `json:"discount_rate"`
	GrowthRate      float64        `json:"growth_rate"`
	ProjectionYears int            `json:"projection_years"`
	ManualMultiple  *float64       `json:"manual_multiple"`
	PreferredMethod finance.Method `json:"preferred_method"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

type UpsertValuationConfigRequest struct {
	CompanyID       string          `json:"-"`
	MonthlyRevenue  *float64        `json:"monthly_revenue,omitempty"`
	DiscountRate    *float64        `json:"discount_rate,omitempty"`
	GrowthRate      *float64        `json:"growth_rate,omitempty"`
	ProjectionYears *int            `json:"projection_years,omitempty"`
	ManualMultiple  *float64        `json:"manual_multiple,omitempty"`
	PreferredMethod *finance.Method `json:"preferred_method,omitempty"`
}

// ValuationReport é a resposta de GET /v1/companies/:id/valuation.
// Os campos do resultado ficam no nível raiz porque a interface os consome diretamente.
type ValuationReport struct {
	finance.ValuationResult
	Projecao        []finance.MonthlyProjection `json:"projecao"`
	ReceitaEstimada bool                        `json:"receitaEstimada"`
	Config          ValuationConfig             `json:"config"`
	CalculatedAt    time.Time                   `json:"calculatedAt"`
}

type ValuationSnapshot struct {
	ID                string         `json:"id"`
	CompanyID         string         `json:"company_id"`
	Period            string         `json:"period"` // Formato mm-yyyy (ex: 01-2024)
	DCF               float64        `json:"dcf"`
	MultiploEbitda    float64        `json:"multiplo_ebitda"`
	MultiploReceita   float64        `json:"multiplo_receita"`
	MediaValuation    float64        `json:"media_valuation"`
	MetodoRecomendado finance.Method `json:"metodo_recomendado"`
	EbitdaAnual       float64        `json:"ebitda_anual"`
	ReceitaAnual      float64        `json:"receita_anual"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

// NewValuationSnapshot cria o registro histórico de um relatório
func NewValuationSnapshot(companyID, period string, result finance.ValuationResult) *ValuationSnapshot {
	return &ValuationSnapshot{
		CompanyID:         companyID,
		Period:            period,
		DCF:               result.DCF,
		MultiploEbitda:    result.MultiploEbitda,
		MultiploReceita:   result.MultiploReceita,
		MediaValuation:    result.MediaValuation,
		MetodoRecomendado: result.MetodoRecomendado,
		EbitdaAnual:       result.Detalhes.EbitdaAnual,
		ReceitaAnual:      result.Detalhes.ReceitaAnual,
	}
}
