package aggregating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	pushfiredomain "github.com/gfvieira/metrics-dashboard-api/infrastructure/integrator/pushfire/domain"
	"github.com/gfvieira/metrics-dashboard-api/internal/domain"
)

func TestFillNotificationsOverTime(t *testing.T) {
	allDates := []string{"2024-01-01", "2024-01-02", "2024-01-03"}

	sparse := []pushfiredomain.NotificationRow{
		{Date: "2024-01-01", Push: 120, Email: 40},
		{Date: "2024-01-03", Push: 80, Email: 0},
	}

	filled := fillNotificationsOverTime(sparse, allDates)

	assert.Equal(t, []domain.DailyNotifications{
		{Date: "2024-01-01", Push: 120, Email: 40},
		{Date: "2024-01-02", Push: 0, Email: 0},
		{Date: "2024-01-03", Push: 80, Email: 0},
	}, filled)
}

func TestBuildPushFireMetrics(t *testing.T) {
	input := pushfireInput{
		PlatformKPIs: pushfiredomain.PlatformKPIRow{
			TotalUsers:          500,
			TotalProjects:       60,
			TotalSubscribers:    12000,
			TotalDevices:        15000,
			NotificationsSent:   98000,
			DeliverySuccessRate: 0.97,
		},
		BusinessKPIs: pushfiredomain.BusinessKPIRow{
			MRR:           1500,
			PaidProjects:  15,
			TotalProjects: 60,
		},
		Subscribers: []pushfiredomain.SubscriberRow{
			{Date: "2024-01-02", Count: 30},
		},
		Notifications: []pushfiredomain.NotificationRow{
			{Date: "2024-01-01", Push: 200, Email: 50},
		},
		Executions: []pushfiredomain.ExecutionRow{
			{Date: "2024-01-03", Executions: 12},
		},
		Devices: []pushfiredomain.DeviceOSRow{
			{OS: "android", Count: 9000},
			{OS: "ios", Count: 6000},
		},
		Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
	}

	metrics := buildPushFireMetrics(input)

	assert.Equal(t, 500, metrics.KPIs.TotalUsers)
	assert.Equal(t, 98000, metrics.KPIs.NotificationsSent)
	assert.InDelta(t, 0.97, metrics.KPIs.DeliverySuccessRate, 0.001)

	assert.Equal(t, 1500.0, metrics.BusinessKPIs.MRR)
	assert.Equal(t, 15, metrics.BusinessKPIs.PaidProjects)
	// Taxa de conversão: 15 projetos pagos sobre 60 projetos totais
	assert.InDelta(t, 0.25, metrics.BusinessKPIs.SignupToPaidRate, 0.001)

	assert.Len(t, metrics.SubscribersOverTime, 3)
	assert.Equal(t, 30, metrics.SubscribersOverTime[1].Count)
	assert.Len(t, metrics.NotificationsOverTime, 3)
	assert.Len(t, metrics.ExecutionsOverTime, 3)
	assert.Equal(t, 12, metrics.ExecutionsOverTime[2].Executions)

	assert.Equal(t, []domain.DeviceOSBreakdown{
		{OS: "android", Count: 9000},
		{OS: "ios", Count: 6000},
	}, metrics.DeviceBreakdown)
}

func TestBuildPushFireMetricsSemProjetos(t *testing.T) {
	input := pushfireInput{
		Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	metrics := buildPushFireMetrics(input)

	// Plataforma sem projetos não pode estourar divisão por zero na taxa
	assert.Equal(t, 0.0, metrics.BusinessKPIs.SignupToPaidRate)
	assert.Len(t, metrics.SubscribersOverTime, 1)
}
