package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gfvieira/metrics-dashboard-api/internal/domain"
	"github.com/gfvieira/metrics-dashboard-api/pkg/apiErrors"
	"github.com/gfvieira/metrics-dashboard-api/pkg/utils"
)

// requireDateRange extrai e valida os parâmetros start e end. Quando
// inválidos, escreve o envelope de erro e retorna false.
func requireDateRange(w http.ResponseWriter, r *http.Request) (domain.DateRange, bool) {
	query := r.URL.Query()
	start := query.Get("start")
	end := query.Get("end")

	if start == "" || end == "" {
		respondError(w, apiErrors.ErrMissingRequiredData, "Missing required params: start, end")
		return domain.DateRange{}, false
	}

	if _, _, err := utils.NormalizeDateRange(start, end, time.Now()); err != nil {
		respondError(w, apiErrors.ErrInvalidDateRange, fmt.Sprintf("Invalid date range: %s, %s", start, end))
		return domain.DateRange{}, false
	}

	return domain.DateRange{Start: start, End: end}, true
}
