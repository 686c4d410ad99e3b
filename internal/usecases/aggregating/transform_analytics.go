package aggregating

import (
	analyticsdomain "github.com/gfvieira/metrics-dashboard-api/infrastructure/integrator/analytics/domain"
	"github.com/gfvieira/metrics-dashboard-api/internal/domain"
)

// As posições de métrica e dimensão abaixo seguem a ordem declarada nas
// consultas do integrador de analytics.

func transformAnalyticsKPIs(response *analyticsdomain.RunReportResponse) domain.AnalyticsKPIs {
	if response == nil || len(response.Rows) == 0 {
		return domain.AnalyticsKPIs{}
	}

	row := response.Rows[0]

	return domain.AnalyticsKPIs{
		TotalUsers:         row.MetricInt(0),
		NewUsers:           row.MetricInt(1),
		Sessions:           row.MetricInt(2),
		Pageviews:          row.MetricInt(3),
		AvgSessionDuration: row.MetricFloat(4),
		BounceRate:         row.MetricFloat(5),
	}
}

func transformVisitorsOverTime(response *analyticsdomain.RunReportResponse) []domain.DailyVisitors {
	if response == nil {
		return []domain.DailyVisitors{}
	}

	visitors := make([]domain.DailyVisitors, 0, len(response.Rows))
	for _, row := range response.Rows {
		visitors = append(visitors, domain.DailyVisitors{
			Date:        row.DimensionValue(0),
			ActiveUsers: row.MetricInt(0),
			NewUsers:    row.MetricInt(1),
			Sessions:    row.MetricInt(2),
		})
	}

	return visitors
}

func transformTopPages(response *analyticsdomain.RunReportResponse) []domain.TopPage {
	if response == nil {
		return []domain.TopPage{}
	}

	pages := make([]domain.TopPage, 0, len(response.Rows))
	for _, row := range response.Rows {
		pages = append(pages, domain.TopPage{
			PagePath:  row.DimensionValue(0),
			PageTitle: row.DimensionValue(1),
			Pageviews: row.MetricInt(0),
			Users:     row.MetricInt(1),
		})
	}

	return pages
}

func transformReferrers(response *analyticsdomain.RunReportResponse) []domain.ReferrerSource {
	if response == nil {
		return []domain.ReferrerSource{}
	}

	referrers := make([]domain.ReferrerSource, 0, len(response.Rows))
	for _, row := range response.Rows {
		referrers = append(referrers, domain.ReferrerSource{
			Source:   row.DimensionValue(0),
			Medium:   row.DimensionValue(1),
			Sessions: row.MetricInt(0),
			Users:    row.MetricInt(1),
		})
	}

	return referrers
}

func transformCountryBreakdown(response *analyticsdomain.RunReportResponse) []domain.CountryBreakdown {
	if response == nil {
		return []domain.CountryBreakdown{}
	}

	countries := make([]domain.CountryBreakdown, 0, len(response.Rows))
	for _, row := range response.Rows {
		countries = append(countries, domain.CountryBreakdown{
			Country:   row.DimensionValue(0),
			CountryID: row.DimensionValue(1),
			Users:     row.MetricInt(0),
		})
	}

	return countries
}

func transformDeviceBreakdown(response *analyticsdomain.RunReportResponse) []domain.DeviceBreakdown {
	if response == nil {
		return []domain.DeviceBreakdown{}
	}

	devices := make([]domain.DeviceBreakdown, 0, len(response.Rows))
	for _, row := range response.Rows {
		devices = append(devices, domain.DeviceBreakdown{
			DeviceCategory: row.DimensionValue(0),
			Users:          row.MetricInt(0),
		})
	}

	return devices
}

func buildAnalyticsBundle(
	kpis, visitors, pages, referrers, countries, devices *analyticsdomain.RunReportResponse,
) *domain.AnalyticsBundle {
	return &domain.AnalyticsBundle{
		KPIs:             transformAnalyticsKPIs(kpis),
		VisitorsOverTime: transformVisitorsOverTime(visitors),
		TopPages:         transformTopPages(pages),
		Referrers:        transformReferrers(referrers),
		Countries:        transformCountryBreakdown(countries),
		Devices:          transformDeviceBreakdown(devices),
	}
}
