package analytics

import (
	analyticsdomain "github.com/gfvieira/metrics-dashboard-api/infrastructure/integrator/analytics/domain"
	"github.com/gfvieira/metrics-dashboard-api/infrastructure/integrator/analytics/analyticsclient"
	"github.com/gfvieira/metrics-dashboard-api/internal/config"
	"github.com/gfvieira/metrics-dashboard-api/internal/domain"
)

// AnalyticsIntegrator expõe uma operação por faceta de tráfego web. Todas
// retornam linhas cruas do provedor; a transformação em bundles canônicos
// acontece no orquestrador de agregação.
type AnalyticsIntegrator interface {
	FetchKPIs(propertyID string, rng domain.DateRange, filter *analyticsdomain.FilterExpression) (*analyticsdomain.RunReportResponse, error)
	FetchVisitorsOverTime(propertyID string, rng domain.DateRange, filter *analyticsdomain.FilterExpression) (*analyticsdomain.RunReportResponse, error)
	FetchTopPages(propertyID string, rng domain.DateRange, filter *analyticsdomain.FilterExpression) (*analyticsdomain.RunReportResponse, error)
	FetchReferrers(propertyID string, rng domain.DateRange, filter *analyticsdomain.FilterExpression) (*analyticsdomain.RunReportResponse, error)
	FetchCountryBreakdown(propertyID string, rng domain.DateRange, filter *analyticsdomain.FilterExpression) (*analyticsdomain.RunReportResponse, error)
	FetchDeviceBreakdown(propertyID string, rng domain.DateRange, filter *analyticsdomain.FilterExpression) (*analyticsdomain.RunReportResponse, error)
}

type AnalyticsService struct {
	cfg    *config.Config
	Client analyticsclient.Client
}

func New(cfg *config.Config, client analyticsclient.Client) AnalyticsIntegrator {
	return &AnalyticsService{
		cfg:    cfg,
		Client: client,
	}
}

// PathPrefixFilter restringe o relatório a páginas cujo caminho começa com o
// prefixo informado
func PathPrefixFilter(prefix string) *analyticsdomain.FilterExpression {
	return &analyticsdomain.FilterExpression{
		Filter: &analyticsdomain.Filter{
			FieldName: "pagePath",
			StringFilter: &analyticsdomain.StringFilter{
				MatchType: "BEGINS_WITH",
				Value:     prefix,
			},
		},
	}
}

// ExcludePathPrefixFilter é a negação de PathPrefixFilter
func ExcludePathPrefixFilter(prefix string) *analyticsdomain.FilterExpression {
	return &analyticsdomain.FilterExpression{
		NotExpression: PathPrefixFilter(prefix),
	}
}

func dateRanges(rng domain.DateRange) []analyticsdomain.DateRange {
	return []analyticsdomain.DateRange{{StartDate: rng.Start, EndDate: rng.End}}
}

func (s *AnalyticsService) FetchKPIs(propertyID string, rng domain.DateRange, filter *analyticsdomain.FilterExpression) (*analyticsdomain.RunReportResponse, error) {
	return s.Client.RunReport(propertyID, &analyticsdomain.RunReportRequest{
		DateRanges: dateRanges(rng),
		Metrics: []analyticsdomain.Metric{
			{Name: "totalUsers"},
			{Name: "newUsers"},
			{Name: "sessions"},
			{Name: "screenPageViews"},
			{Name: "averageSessionDuration"},
			{Name: "bounceRate"},
		},
		DimensionFilter: filter,
	})
}

func (s *AnalyticsService) FetchVisitorsOverTime(propertyID string, rng domain.DateRange, filter *analyticsdomain.FilterExpression) (*analyticsdomain.RunReportResponse, error) {
	return s.Client.RunReport(propertyID, &analyticsdomain.RunReportRequest{
		DateRanges: dateRanges(rng),
		Dimensions: []analyticsdomain.Dimension{{Name: "date"}},
		Metrics: []analyticsdomain.Metric{
			{Name: "activeUsers"},
			{Name: "newUsers"},
			{Name: "sessions"},
		},
		OrderBys: []analyticsdomain.OrderBy{
			{Dimension: &analyticsdomain.OrderByDimension{DimensionName: "date", OrderType: "ALPHANUMERIC"}},
		},
		DimensionFilter: filter,
	})
}

func (s *AnalyticsService) FetchTopPages(propertyID string, rng domain.DateRange, filter *analyticsdomain.FilterExpression) (*analyticsdomain.RunReportResponse, error) {
	return s.Client.RunReport(propertyID, &analyticsdomain.RunReportRequest{
		DateRanges: dateRanges(rng),
		Dimensions: []analyticsdomain.Dimension{{Name: "pagePath"}, {Name: "pageTitle"}},
		Metrics:    []analyticsdomain.Metric{{Name: "screenPageViews"}, {Name: "totalUsers"}},
		OrderBys: []analyticsdomain.OrderBy{
			{Metric: &analyticsdomain.OrderByMetric{MetricName: "screenPageViews"}, Desc: true},
		},
		Limit:           20,
		DimensionFilter: filter,
	})
}

func (s *AnalyticsService) FetchReferrers(propertyID string, rng domain.DateRange, filter *analyticsdomain.FilterExpression) (*analyticsdomain.RunReportResponse, error) {
	return s.Client.RunReport(propertyID, &analyticsdomain.RunReportRequest{
		DateRanges: dateRanges(rng),
		Dimensions: []analyticsdomain.Dimension{{Name: "sessionSource"}, {Name: "sessionMedium"}},
		Metrics:    []analyticsdomain.Metric{{Name: "sessions"}, {Name: "totalUsers"}},
		OrderBys: []analyticsdomain.OrderBy{
			{Metric: &analyticsdomain.OrderByMetric{MetricName: "sessions"}, Desc: true},
		},
		Limit:           20,
		DimensionFilter: filter,
	})
}

func (s *AnalyticsService) FetchCountryBreakdown(propertyID string, rng domain.DateRange, filter *analyticsdomain.FilterExpression) (*analyticsdomain.RunReportResponse, error) {
	return s.Client.RunReport(propertyID, &analyticsdomain.RunReportRequest{
		DateRanges: dateRanges(rng),
		Dimensions: []analyticsdomain.Dimension{{Name: "country"}, {Name: "countryId"}},
		Metrics:    []analyticsdomain.Metric{{Name: "totalUsers"}},
		OrderBys: []analyticsdomain.OrderBy{
			{Metric: &analyticsdomain.OrderByMetric{MetricName: "totalUsers"}, Desc: true},
		},
		Limit:           15,
		DimensionFilter: filter,
	})
}

func (s *AnalyticsService) FetchDeviceBreakdown(propertyID string, rng domain.DateRange, filter *analyticsdomain.FilterExpression) (*analyticsdomain.RunReportResponse, error) {
	return s.Client.RunReport(propertyID, &analyticsdomain.RunReportRequest{
		DateRanges: dateRanges(rng),
		Dimensions: []analyticsdomain.Dimension{{Name: "deviceCategory"}},
		Metrics:    []analyticsdomain.Metric{{Name: "totalUsers"}},
		OrderBys: []analyticsdomain.OrderBy{
			{Metric: &analyticsdomain.OrderByMetric{MetricName: "totalUsers"}, Desc: true},
		},
		DimensionFilter: filter,
	})
}
