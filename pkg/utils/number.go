package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}

	return math.Round(f*100) / 100
}

// RoundUnitsUp arredonda quantidades de unidades sempre para cima
func RoundUnitsUp(f float64) int64 {
	return int64(math.Ceil(f))
}
