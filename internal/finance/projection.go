package finance

// ProjectionMonths é o tamanho fixo da projeção mensal
const ProjectionMonths = 12

// MonthlyProjection é um ponto da projeção de lucro mensal
type MonthlyProjection struct {
	Mes     int     `json:"mes"`
	Receita float64 `json:"receita"`
	Custos  float64 `json:"custos"`
	Lucro   float64 `json:"lucro"`
}

// ProjectTwelveMonths projeta 12 meses com a receita crescendo a taxa mensal informada
// e os custos constantes.
func ProjectTwelveMonths(monthlyRevenue, monthlyCosts, monthlyGrowthRate float64) []MonthlyProjection {
	return ProjectTwelveMonthsCompounding(monthlyRevenue, monthlyCosts, monthlyGrowthRate, 0)
}

// ProjectTwelveMonthsCompounding projeta 12 meses aplicando taxas mensais distintas
// para receita e custos. O mês 1 sempre repete as entradas.
func ProjectTwelveMonthsCompounding(monthlyRevenue, monthlyCosts, revenueGrowthRate, costGrowthRate float64) []MonthlyProjection {
	projection := make([]MonthlyProjection, 0, ProjectionMonths)

	receita := monthlyRevenue
	custos := monthlyCosts
	for mes := 1; mes <= ProjectionMonths; mes++ {
		if mes > 1 {
			receita *= 1 + revenueGrowthRate
			custos *= 1 + costGrowthRate
		}

		projection = append(projection, MonthlyProjection{
			Mes:     mes,
			Receita: receita,
			Custos:  custos,
			Lucro:   receita - custos,
		})
	}

	return projection
}

// AnnualToMonthlyRate converte uma taxa anual na taxa mensal usada pela projeção (taxa/12)
func AnnualToMonthlyRate(annualRate float64) float64 {
	return annualRate / 12
}
