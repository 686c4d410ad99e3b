package pushfire

import (
	"time"

	"github.com/pkg/errors"

	"github.com/gfvieira/metrics-dashboard-api/infrastructure/integrator/pushfire/domain"
	"github.com/gfvieira/metrics-dashboard-api/infrastructure/integrator/rpcclient"
)

// PushFireIntegrator expõe as consultas pré-agregadas do banco do PushFire.
type PushFireIntegrator interface {
	FetchPlatformKPIs(start, end time.Time) (domain.PlatformKPIRow, error)
	FetchBusinessKPIs() (domain.BusinessKPIRow, error)
	FetchDailySubscribers(start, end time.Time) ([]domain.SubscriberRow, error)
	FetchDailyNotifications(start, end time.Time) ([]domain.NotificationRow, error)
	FetchDailyExecutions(start, end time.Time) ([]domain.ExecutionRow, error)
	FetchDeviceBreakdown() ([]domain.DeviceOSRow, error)
}

type Integrator struct {
	client rpcclient.Client
}

func NewPushFireIntegrator(client rpcclient.Client) PushFireIntegrator {
	return &Integrator{
		client: client,
	}
}

func (i *Integrator) FetchPlatformKPIs(start, end time.Time) (domain.PlatformKPIRow, error) {
	var rows []domain.PlatformKPIRow
	if err := i.client.Call("get_pushfire_platform_kpis", rpcclient.NewRangeParams(start, end), &rows); err != nil {
		return domain.PlatformKPIRow{}, errors.Wrap(err, "erro ao buscar os KPIs de plataforma do PushFire")
	}

	if len(rows) == 0 {
		return domain.PlatformKPIRow{}, nil
	}

	return rows[0], nil
}

func (i *Integrator) FetchBusinessKPIs() (domain.BusinessKPIRow, error) {
	var rows []domain.BusinessKPIRow
	if err := i.client.Call("get_pushfire_business_kpis", nil, &rows); err != nil {
		return domain.BusinessKPIRow{}, errors.Wrap(err, "erro ao buscar os KPIs de negócio do PushFire")
	}

	if len(rows) == 0 {
		return domain.BusinessKPIRow{}, nil
	}

	return rows[0], nil
}

func (i *Integrator) FetchDailySubscribers(start, end time.Time) ([]domain.SubscriberRow, error) {
	var rows []domain.SubscriberRow
	if err := i.client.Call("get_pushfire_daily_subscribers", rpcclient.NewRangeParams(start, end), &rows); err != nil {
		return nil, errors.Wrap(err, "erro ao buscar os novos inscritos diários do PushFire")
	}

	return rows, nil
}

func (i *Integrator) FetchDailyNotifications(start, end time.Time) ([]domain.NotificationRow, error) {
	var rows []domain.NotificationRow
	if err := i.client.Call("get_pushfire_daily_notifications", rpcclient.NewRangeParams(start, end), &rows); err != nil {
		return nil, errors.Wrap(err, "erro ao buscar as notificações diárias do PushFire")
	}

	return rows, nil
}

func (i *Integrator) FetchDailyExecutions(start, end time.Time) ([]domain.ExecutionRow, error) {
	var rows []domain.ExecutionRow
	if err := i.client.Call("get_pushfire_daily_executions", rpcclient.NewRangeParams(start, end), &rows); err != nil {
		return nil, errors.Wrap(err, "erro ao buscar as execuções diárias do PushFire")
	}

	return rows, nil
}

// FetchDeviceBreakdown retorna a distribuição global de sistemas operacionais
// dos dispositivos registrados, sem recorte de data.
func (i *Integrator) FetchDeviceBreakdown() ([]domain.DeviceOSRow, error) {
	var rows []domain.DeviceOSRow
	if err := i.client.Call("get_pushfire_device_breakdown", nil, &rows); err != nil {
		return nil, errors.Wrap(err, "erro ao buscar a distribuição de dispositivos do PushFire")
	}

	return rows, nil
}
