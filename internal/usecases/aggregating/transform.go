package aggregating

import "time"

// generateDateRange produz todas as datas (YYYY-MM-DD) entre início e fim,
// inclusive. É a espinha das séries diárias densas: todo preenchimento de
// série itera sobre ela, nunca sobre as linhas esparsas do provedor.
func generateDateRange(start, end time.Time) []string {
	var dates []string
	for current := start; !current.After(end); current = current.AddDate(0, 0, 1) {
		dates = append(dates, current.Format(time.DateOnly))
	}

	return dates
}

// safeRate divide protegendo contra denominador zero
func safeRate(numerator, denominator float64) float64 {
	if denominator <= 0 {
		return 0
	}

	return numerator / denominator
}
