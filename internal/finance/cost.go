package finance

// Periodicity indica a periodicidade de um custo fixo
type Periodicity string

const (
	PeriodicityMonthly Periodicity = "mensal"
	PeriodicityWeekly  Periodicity = "semanal"
	PeriodicityAnnual  Periodicity = "anual"
)

// WeeksPerMonth é o mês canônico do motor: 4 semanas, não o mês de calendário.
const WeeksPerMonth = 4

// IsValid verifica se a periodicidade é conhecida
func (p Periodicity) IsValid() bool {
	switch p {
	case PeriodicityMonthly, PeriodicityWeekly, PeriodicityAnnual:
		return true
	default:
		return false
	}
}

func (p Periodicity) String() string {
	return string(p)
}

// MonthlyAmount converte um valor na periodicidade informada para o valor mensal.
// Periodicidades vazias ou desconhecidas são tratadas como mensais.
func MonthlyAmount(amount float64, periodicity Periodicity) float64 {
	switch periodicity {
	case PeriodicityAnnual:
		return amount / 12
	case PeriodicityWeekly:
		return amount * WeeksPerMonth
	default:
		return amount
	}
}

// CostItem é a visão mínima de um custo fixo usada na agregação
type CostItem struct {
	Amount      float64
	Periodicity Periodicity
}

// TotalMonthly soma os custos já normalizados para o mês
func TotalMonthly(items []CostItem) float64 {
	total := 0.0
	for _, item := range items {
		total += MonthlyAmount(item.Amount, item.Periodicity)
	}
	return total
}
