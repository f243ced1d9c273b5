package finance

// GrossMargin retorna a margem bruta percentual. Preço zero retorna 0.
func GrossMargin(salePrice, cost float64) float64 {
	if salePrice == 0 {
		return 0
	}
	return (salePrice - cost) / salePrice * 100
}

// Profit retorna o lucro unitário
func Profit(salePrice, cost float64) float64 {
	return salePrice - cost
}

// ProfitPercent retorna o lucro percentual sobre o custo. Custo zero retorna 0.
func ProfitPercent(salePrice, cost float64) float64 {
	if cost == 0 {
		return 0
	}
	return (salePrice - cost) / cost * 100
}

// NetMargin retorna a margem líquida percentual considerando o custo fixo rateado.
// Preço zero retorna 0.
func NetMargin(salePrice, cost, allocatedFixedCost float64) float64 {
	if salePrice == 0 {
		return 0
	}
	return (salePrice - cost - allocatedFixedCost) / salePrice * 100
}
