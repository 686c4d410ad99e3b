package handler

import (
	"net/http"

	"github.com/gfvieira/metrics-dashboard-api/internal/usecases/aggregating"
	"github.com/gfvieira/metrics-dashboard-api/pkg/apiErrors"
	"github.com/gfvieira/metrics-dashboard-api/pkg/log"
)

func GetPushFireMetrics(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		rng, ok := requireDateRange(w, r)
		if !ok {
			return
		}

		metrics, prov, err := service.GetPushFireMetrics(r.Context(), rng)
		if err != nil {
			logger.WithFields(log.Fields{
				"start": rng.Start,
				"end":   rng.End,
				"error": err.Error(),
			}).Error("metrics: failed to fetch pushfire metrics")

			respondError(w, apiErrors.ErrUpstreamUnavailable, "Failed to fetch PushFire platform metrics")
			return
		}

		respondData(w, metrics, prov)
	})
}
