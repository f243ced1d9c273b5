package utils

import "time"

// PeriodLayout é o formato mm-yyyy usado no histórico de valuation
const PeriodLayout = "01-2006"

// FormatPeriod devolve o período mensal de uma data no formato mm-yyyy
func FormatPeriod(t time.Time) string {
	return t.Format(PeriodLayout)
}

// ParsePeriod converte mm-yyyy no primeiro dia do mês correspondente
func ParsePeriod(period string) (time.Time, error) {
	return time.Parse(PeriodLayout, period)
}

// PreviousPeriod devolve o período do mês anterior ao da data informada
func PreviousPeriod(t time.Time) string {
	firstDay := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return FormatPeriod(firstDay.AddDate(0, -1, 0))
}
