package finance

import "math"

// BreakEvenUnits calcula o ponto de equilíbrio em unidades pela margem de contribuição.
//
// Retorna +Inf quando a margem de contribuição é menor ou igual a zero: os custos
// fixos nunca são recuperados e a camada de apresentação deve exibir "N/A".
// O resultado não é arredondado.
func BreakEvenUnits(fixedCostsMonthly, avgSalePrice, avgVariableCost float64) float64 {
	contributionMargin := avgSalePrice - avgVariableCost
	if contributionMargin <= 0 {
		return math.Inf(1)
	}

	return fixedCostsMonthly / contributionMargin
}

// IsApplicable indica se um valor calculado tem significado de negócio (finito e não NaN)
func IsApplicable(value float64) bool {
	return !math.IsInf(value, 0) && !math.IsNaN(value)
}
