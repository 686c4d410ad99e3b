package handler

import (
	"net/http"

	"github.com/gfvieira/metrics-dashboard-api/internal/api/handler/router"
	"github.com/gfvieira/metrics-dashboard-api/internal/domain"
	"github.com/gfvieira/metrics-dashboard-api/internal/usecases/aggregating"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// Metrics retorna as rotas de métricas dos produtos. A autenticação de sessão
// é aplicada globalmente na cadeia de middlewares do servidor.
func Metrics(products []domain.Product, service aggregating.Aggregator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/metrics/ga",
			Method:  http.MethodGet,
			Handler: GetAnalyticsMetrics(products, service),
		},
		{
			Path:    "/v1/metrics/ulink/business",
			Method:  http.MethodGet,
			Handler: GetULinkBusinessMetrics(service),
		},
		{
			Path:    "/v1/metrics/ulink/health",
			Method:  http.MethodGet,
			Handler: GetULinkClientHealth(service),
		},
		{
			Path:    "/v1/metrics/ulink/website",
			Method:  http.MethodGet,
			Handler: GetULinkWebsiteMetrics(service),
		},
		{
			Path:    "/v1/metrics/ulink/dashboard-users",
			Method:  http.MethodGet,
			Handler: GetULinkDashboardMetrics(service),
		},
		{
			Path:    "/v1/metrics/somara",
			Method:  http.MethodGet,
			Handler: GetSomaraMetrics(service),
		},
		{
			Path:    "/v1/metrics/pushfire",
			Method:  http.MethodGet,
			Handler: GetPushFireMetrics(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
