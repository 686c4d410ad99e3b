package aggregating

import (
	"testing"

	"github.com/stretchr/testify/assert"

	analyticsdomain "github.com/gfvieira/metrics-dashboard-api/infrastructure/integrator/analytics/domain"
	"github.com/gfvieira/metrics-dashboard-api/internal/domain"
)

func metricRow(dimensions []string, metrics []string) analyticsdomain.Row {
	row := analyticsdomain.Row{}
	for _, d := range dimensions {
		row.DimensionValues = append(row.DimensionValues, analyticsdomain.Value{Value: d})
	}
	for _, m := range metrics {
		row.MetricValues = append(row.MetricValues, analyticsdomain.Value{Value: m})
	}

	return row
}

func TestTransformAnalyticsKPIs(t *testing.T) {
	tests := []struct {
		name     string
		response *analyticsdomain.RunReportResponse
		expected domain.AnalyticsKPIs
	}{
		{
			name: "Primeira linha do relatório alimenta os seis KPIs",
			response: &analyticsdomain.RunReportResponse{
				Rows: []analyticsdomain.Row{
					metricRow(nil, []string{"1200", "340", "2100", "5400", "95.5", "0.42"}),
				},
			},
			expected: domain.AnalyticsKPIs{
				TotalUsers:         1200,
				NewUsers:           340,
				Sessions:           2100,
				Pageviews:          5400,
				AvgSessionDuration: 95.5,
				BounceRate:         0.42,
			},
		},
		{
			name:     "Resposta nula gera KPIs zerados",
			response: nil,
			expected: domain.AnalyticsKPIs{},
		},
		{
			name:     "Relatório sem linhas gera KPIs zerados",
			response: &analyticsdomain.RunReportResponse{},
			expected: domain.AnalyticsKPIs{},
		},
		{
			name: "Métrica não numérica é coagida para zero",
			response: &analyticsdomain.RunReportResponse{
				Rows: []analyticsdomain.Row{
					metricRow(nil, []string{"abc", "10"}),
				},
			},
			expected: domain.AnalyticsKPIs{NewUsers: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, transformAnalyticsKPIs(tt.response))
		})
	}
}

func TestTransformVisitorsOverTime(t *testing.T) {
	response := &analyticsdomain.RunReportResponse{
		Rows: []analyticsdomain.Row{
			metricRow([]string{"20240101"}, []string{"100", "30", "150"}),
			metricRow([]string{"20240102"}, []string{"110", "25", "160"}),
		},
	}

	visitors := transformVisitorsOverTime(response)

	assert.Equal(t, []domain.DailyVisitors{
		{Date: "20240101", ActiveUsers: 100, NewUsers: 30, Sessions: 150},
		{Date: "20240102", ActiveUsers: 110, NewUsers: 25, Sessions: 160},
	}, visitors)
}

func TestBuildAnalyticsBundleComRespostasNulas(t *testing.T) {
	bundle := buildAnalyticsBundle(nil, nil, nil, nil, nil, nil)

	// Facetas sem dados viram listas vazias, nunca null no JSON
	assert.NotNil(t, bundle.VisitorsOverTime)
	assert.Empty(t, bundle.VisitorsOverTime)
	assert.NotNil(t, bundle.TopPages)
	assert.NotNil(t, bundle.Referrers)
	assert.NotNil(t, bundle.Countries)
	assert.NotNil(t, bundle.Devices)
	assert.Equal(t, domain.AnalyticsKPIs{}, bundle.KPIs)
}

func TestTransformTopPages(t *testing.T) {
	response := &analyticsdomain.RunReportResponse{
		Rows: []analyticsdomain.Row{
			metricRow([]string{"/", "Home"}, []string{"500", "320"}),
			metricRow([]string{"/pricing", "Planos"}, []string{"200", "180"}),
		},
	}

	pages := transformTopPages(response)

	assert.Equal(t, []domain.TopPage{
		{PagePath: "/", PageTitle: "Home", Pageviews: 500, Users: 320},
		{PagePath: "/pricing", PageTitle: "Planos", Pageviews: 200, Users: 180},
	}, pages)
}
