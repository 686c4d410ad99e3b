package analyticsclient

import (
	"net/http"
	"time"

	analyticsdomain "github.com/gfvieira/metrics-dashboard-api/infrastructure/integrator/analytics/domain"
	"github.com/gfvieira/metrics-dashboard-api/internal/config"
)

type Client interface {
	RunReport(propertyID string, request *analyticsdomain.RunReportRequest) (*analyticsdomain.RunReportResponse, error)
}

type AnalyticsClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &AnalyticsClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}
