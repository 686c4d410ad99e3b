package handler

import (
	"net/http"

	"github.com/gfvieira/metrics-dashboard-api/internal/usecases/aggregating"
	"github.com/gfvieira/metrics-dashboard-api/pkg/apiErrors"
	"github.com/gfvieira/metrics-dashboard-api/pkg/log"
)

func GetULinkBusinessMetrics(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		rng, ok := requireDateRange(w, r)
		if !ok {
			return
		}

		metrics, prov, err := service.GetULinkBusinessMetrics(r.Context(), rng)
		if err != nil {
			logger.WithFields(log.Fields{
				"start": rng.Start,
				"end":   rng.End,
				"error": err.Error(),
			}).Error("metrics: failed to fetch ulink business metrics")

			respondError(w, apiErrors.ErrUpstreamUnavailable, "Failed to fetch ULink business metrics")
			return
		}

		respondData(w, metrics, prov)
	})
}

func GetULinkClientHealth(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		rng, ok := requireDateRange(w, r)
		if !ok {
			return
		}

		health, prov, err := service.GetULinkClientHealth(r.Context(), rng)
		if err != nil {
			logger.WithFields(log.Fields{
				"start": rng.Start,
				"end":   rng.End,
				"error": err.Error(),
			}).Error("metrics: failed to fetch ulink client health")

			respondError(w, apiErrors.ErrUpstreamUnavailable, "Failed to fetch ULink client health data")
			return
		}

		respondData(w, health, prov)
	})
}

func GetULinkWebsiteMetrics(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		rng, ok := requireDateRange(w, r)
		if !ok {
			return
		}

		bundle, prov, err := service.GetULinkWebsiteMetrics(r.Context(), rng)
		if err != nil {
			logger.WithFields(log.Fields{
				"start": rng.Start,
				"end":   rng.End,
				"error": err.Error(),
			}).Error("metrics: failed to fetch ulink website metrics")

			respondError(w, apiErrors.ErrUpstreamUnavailable, "Failed to fetch website analytics data")
			return
		}

		respondData(w, bundle, prov)
	})
}

func GetULinkDashboardMetrics(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		rng, ok := requireDateRange(w, r)
		if !ok {
			return
		}

		bundle, prov, err := service.GetULinkDashboardMetrics(r.Context(), rng)
		if err != nil {
			logger.WithFields(log.Fields{
				"start": rng.Start,
				"end":   rng.End,
				"error": err.Error(),
			}).Error("metrics: failed to fetch ulink dashboard users metrics")

			respondError(w, apiErrors.ErrUpstreamUnavailable, "Failed to fetch dashboard users analytics data")
			return
		}

		respondData(w, bundle, prov)
	})
}
