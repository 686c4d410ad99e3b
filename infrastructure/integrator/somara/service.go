package somara

import (
	"time"

	"github.com/pkg/errors"

	"github.com/gfvieira/metrics-dashboard-api/infrastructure/integrator/rpcclient"
	"github.com/gfvieira/metrics-dashboard-api/infrastructure/integrator/somara/domain"
)

// SomaraIntegrator expõe as consultas pré-agregadas do banco do Somara.
type SomaraIntegrator interface {
	FetchKPIs(start, end time.Time) (domain.KPIRow, error)
	FetchActivityOverTime(start, end time.Time) ([]domain.ActivityRow, error)
	FetchSignupsOverTime(start, end time.Time) ([]domain.SignupRow, error)
	FetchTokenUsageOverTime(start, end time.Time) ([]domain.TokensRow, error)
	FetchOrgBillingBreakdown() ([]domain.OrgBillingRow, error)
	FetchTopModels() ([]domain.ModelUsageRow, error)
	FetchCreditsOverview() ([]domain.CreditsRow, error)
}

type Integrator struct {
	client rpcclient.Client
}

func NewSomaraIntegrator(client rpcclient.Client) SomaraIntegrator {
	return &Integrator{
		client: client,
	}
}

// FetchKPIs retorna os seis indicadores da plataforma em uma única chamada.
func (i *Integrator) FetchKPIs(start, end time.Time) (domain.KPIRow, error) {
	var rows []domain.KPIRow
	if err := i.client.Call("get_somara_platform_kpis", rpcclient.NewRangeParams(start, end), &rows); err != nil {
		return domain.KPIRow{}, errors.Wrap(err, "erro ao buscar os KPIs do Somara")
	}

	if len(rows) == 0 {
		return domain.KPIRow{}, nil
	}

	return rows[0], nil
}

func (i *Integrator) FetchActivityOverTime(start, end time.Time) ([]domain.ActivityRow, error) {
	var rows []domain.ActivityRow
	if err := i.client.Call("get_somara_daily_activity", rpcclient.NewRangeParams(start, end), &rows); err != nil {
		return nil, errors.Wrap(err, "erro ao buscar a atividade diária do Somara")
	}

	return rows, nil
}

func (i *Integrator) FetchSignupsOverTime(start, end time.Time) ([]domain.SignupRow, error) {
	var rows []domain.SignupRow
	if err := i.client.Call("get_somara_daily_signups", rpcclient.NewRangeParams(start, end), &rows); err != nil {
		return nil, errors.Wrap(err, "erro ao buscar os cadastros diários do Somara")
	}

	return rows, nil
}

func (i *Integrator) FetchTokenUsageOverTime(start, end time.Time) ([]domain.TokensRow, error) {
	var rows []domain.TokensRow
	if err := i.client.Call("get_somara_daily_tokens", rpcclient.NewRangeParams(start, end), &rows); err != nil {
		return nil, errors.Wrap(err, "erro ao buscar o consumo diário de tokens do Somara")
	}

	return rows, nil
}

// FetchOrgBillingBreakdown retorna a distribuição global dos tipos de
// cobrança das organizações, sem recorte de data.
func (i *Integrator) FetchOrgBillingBreakdown() ([]domain.OrgBillingRow, error) {
	var rows []domain.OrgBillingRow
	if err := i.client.Call("get_somara_org_billing_breakdown", nil, &rows); err != nil {
		return nil, errors.Wrap(err, "erro ao buscar a distribuição de cobrança do Somara")
	}

	return rows, nil
}

func (i *Integrator) FetchTopModels() ([]domain.ModelUsageRow, error) {
	var rows []domain.ModelUsageRow
	if err := i.client.Call("get_somara_top_models", nil, &rows); err != nil {
		return nil, errors.Wrap(err, "erro ao buscar os modelos mais usados do Somara")
	}

	return rows, nil
}

func (i *Integrator) FetchCreditsOverview() ([]domain.CreditsRow, error) {
	var rows []domain.CreditsRow
	if err := i.client.Call("get_somara_credits_overview", nil, &rows); err != nil {
		return nil, errors.Wrap(err, "erro ao buscar o resumo de créditos do Somara")
	}

	return rows, nil
}
