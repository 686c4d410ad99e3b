package aggregating

import (
	"time"

	pushfiredomain "github.com/gfvieira/metrics-dashboard-api/infrastructure/integrator/pushfire/domain"
	"github.com/gfvieira/metrics-dashboard-api/internal/domain"
)

type pushfireInput struct {
	PlatformKPIs  pushfiredomain.PlatformKPIRow
	BusinessKPIs  pushfiredomain.BusinessKPIRow
	Subscribers   []pushfiredomain.SubscriberRow
	Notifications []pushfiredomain.NotificationRow
	Executions    []pushfiredomain.ExecutionRow
	Devices       []pushfiredomain.DeviceOSRow
	Start         time.Time
	End           time.Time
}

func fillSubscribersOverTime(sparse []pushfiredomain.SubscriberRow, allDates []string) []domain.DailyNewSubscribers {
	byDate := make(map[string]int, len(sparse))
	for _, row := range sparse {
		byDate[row.Date] = row.Count.Int()
	}

	filled := make([]domain.DailyNewSubscribers, 0, len(allDates))
	for _, date := range allDates {
		filled = append(filled, domain.DailyNewSubscribers{
			Date:  date,
			Count: byDate[date],
		})
	}

	return filled
}

func fillNotificationsOverTime(sparse []pushfiredomain.NotificationRow, allDates []string) []domain.DailyNotifications {
	byDate := make(map[string]pushfiredomain.NotificationRow, len(sparse))
	for _, row := range sparse {
		byDate[row.Date] = row
	}

	filled := make([]domain.DailyNotifications, 0, len(allDates))
	for _, date := range allDates {
		row := byDate[date]
		filled = append(filled, domain.DailyNotifications{
			Date:  date,
			Push:  row.Push.Int(),
			Email: row.Email.Int(),
		})
	}

	return filled
}

func fillExecutionsOverTime(sparse []pushfiredomain.ExecutionRow, allDates []string) []domain.DailyExecutions {
	byDate := make(map[string]int, len(sparse))
	for _, row := range sparse {
		byDate[row.Date] = row.Executions.Int()
	}

	filled := make([]domain.DailyExecutions, 0, len(allDates))
	for _, date := range allDates {
		filled = append(filled, domain.DailyExecutions{
			Date:       date,
			Executions: byDate[date],
		})
	}

	return filled
}

func transformDeviceOSBreakdown(raw []pushfiredomain.DeviceOSRow) []domain.DeviceOSBreakdown {
	devices := make([]domain.DeviceOSBreakdown, 0, len(raw))
	for _, row := range raw {
		devices = append(devices, domain.DeviceOSBreakdown{
			OS:    row.OS,
			Count: row.Count.Int(),
		})
	}

	return devices
}

func buildPushFireMetrics(input pushfireInput) *domain.PushFireMetrics {
	allDates := generateDateRange(input.Start, input.End)

	return &domain.PushFireMetrics{
		KPIs: domain.PushFireKPIs{
			TotalUsers:          input.PlatformKPIs.TotalUsers.Int(),
			TotalProjects:       input.PlatformKPIs.TotalProjects.Int(),
			TotalSubscribers:    input.PlatformKPIs.TotalSubscribers.Int(),
			TotalDevices:        input.PlatformKPIs.TotalDevices.Int(),
			NotificationsSent:   input.PlatformKPIs.NotificationsSent.Int(),
			DeliverySuccessRate: input.PlatformKPIs.DeliverySuccessRate.Float(),
		},
		BusinessKPIs: domain.PushFireBusinessKPIs{
			MRR:          input.BusinessKPIs.MRR.Float(),
			PaidProjects: input.BusinessKPIs.PaidProjects.Int(),
			SignupToPaidRate: safeRate(
				float64(input.BusinessKPIs.PaidProjects.Int()),
				float64(input.BusinessKPIs.TotalProjects.Int()),
			),
		},
		SubscribersOverTime:   fillSubscribersOverTime(input.Subscribers, allDates),
		NotificationsOverTime: fillNotificationsOverTime(input.Notifications, allDates),
		ExecutionsOverTime:    fillExecutionsOverTime(input.Executions, allDates),
		DeviceBreakdown:       transformDeviceOSBreakdown(input.Devices),
	}
}
