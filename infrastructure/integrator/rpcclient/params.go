package rpcclient

import "time"

// RangeParams é o formato de parâmetro aceito pelas funções remotas que
// recebem um intervalo de datas.
type RangeParams struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func NewRangeParams(start, end time.Time) RangeParams {
	return RangeParams{
		StartDate: start.UTC().Format(time.RFC3339),
		EndDate:   end.UTC().Format(time.RFC3339),
	}
}
