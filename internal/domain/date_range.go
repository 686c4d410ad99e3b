package domain

// DateRange carrega os tokens de data exatamente como recebidos na requisição
// (ex.: "30daysAgo", "today" ou "2024-01-31"). Os tokens literais também são
// usados na composição das chaves de cache.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}
