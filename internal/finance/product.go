package finance

// EffectiveCost retorna o custo efetivo de um produto.
// Quando há etapas de produção, a soma dos custos das etapas substitui o custo manual.
func EffectiveCost(manualCost float64, stageCosts ...float64) float64 {
	if len(stageCosts) == 0 {
		return manualCost
	}

	total := 0.0
	for _, cost := range stageCosts {
		total += cost
	}
	return total
}
