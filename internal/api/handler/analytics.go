package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gfvieira/metrics-dashboard-api/internal/domain"
	"github.com/gfvieira/metrics-dashboard-api/internal/usecases/aggregating"
	"github.com/gfvieira/metrics-dashboard-api/pkg/apiErrors"
	"github.com/gfvieira/metrics-dashboard-api/pkg/log"
	"github.com/gfvieira/metrics-dashboard-api/pkg/utils"
)

// GetAnalyticsMetrics atende o bundle de tráfego web de qualquer produto do
// portfólio, selecionado pelo parâmetro product
func GetAnalyticsMetrics(products []domain.Product, service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		query := r.URL.Query()
		product := query.Get("product")
		start := query.Get("start")
		end := query.Get("end")

		if product == "" || start == "" || end == "" {
			respondError(w, apiErrors.ErrMissingRequiredData, "Missing required params: product, start, end")
			return
		}

		if !domain.IsValidProductSlug(products, product) {
			respondError(w, apiErrors.ErrInvalidProduct, fmt.Sprintf("Invalid product: %s", product))
			return
		}

		rng := domain.DateRange{Start: start, End: end}
		if _, _, err := utils.NormalizeDateRange(start, end, time.Now()); err != nil {
			logger.WithFields(log.Fields{
				"product": product,
				"start":   start,
				"end":     end,
			}).Warn("metrics: invalid date range")

			respondError(w, apiErrors.ErrInvalidDateRange, fmt.Sprintf("Invalid date range: %s, %s", start, end))
			return
		}

		bundle, prov, err := service.GetAnalyticsBundle(r.Context(), domain.ProductSlug(product), rng)
		if err != nil {
			logger.WithFields(log.Fields{
				"product": product,
				"start":   start,
				"end":     end,
				"error":   err.Error(),
			}).Error("metrics: failed to fetch analytics bundle")

			respondError(w, apiErrors.ErrUpstreamUnavailable, "Failed to fetch analytics data")
			return
		}

		respondData(w, bundle, prov)
	})
}
