package utils

import "math"

// RoundTwoDecimals arredonda para duas casas, usado nas médias exibidas ao usuário
func RoundTwoDecimals(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}
