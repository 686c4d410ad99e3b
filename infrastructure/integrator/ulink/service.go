package ulink

import (
	"time"

	"github.com/pkg/errors"

	"github.com/gfvieira/metrics-dashboard-api/infrastructure/integrator/rpcclient"
	"github.com/gfvieira/metrics-dashboard-api/infrastructure/integrator/ulink/domain"
)

// ULinkIntegrator expõe as consultas pré-agregadas do banco do ULink. Cada
// facet corresponde a exatamente uma função remota.
type ULinkIntegrator interface {
	FetchDailySignups(start, end time.Time) ([]domain.SignupRow, error)
	FetchSignupTotal(start, end time.Time) (int, error)
	FetchActiveSubscriptions() ([]domain.SubscriptionRow, int, error)
	FetchMRROverTime(start, end time.Time) ([]domain.MRRRow, error)
	FetchActiveProjects(start, end time.Time) (int, error)
	FetchProjectHealth(start, end time.Time) ([]domain.ProjectHealthRow, error)
}

type Integrator struct {
	client rpcclient.Client
}

func NewULinkIntegrator(client rpcclient.Client) ULinkIntegrator {
	return &Integrator{
		client: client,
	}
}

// FetchDailySignups retorna os cadastros agrupados por dia. Dias sem cadastro
// não aparecem no resultado.
func (i *Integrator) FetchDailySignups(start, end time.Time) ([]domain.SignupRow, error) {
	var rows []domain.SignupRow
	if err := i.client.Call("get_daily_signups", rpcclient.NewRangeParams(start, end), &rows); err != nil {
		return nil, errors.Wrap(err, "erro ao buscar os cadastros diários do ULink")
	}

	return rows, nil
}

func (i *Integrator) FetchSignupTotal(start, end time.Time) (int, error) {
	var rows []domain.CountRow
	if err := i.client.Call("get_signup_count", rpcclient.NewRangeParams(start, end), &rows); err != nil {
		return 0, errors.Wrap(err, "erro ao buscar o total de cadastros do ULink")
	}

	if len(rows) == 0 {
		return 0, nil
	}

	return rows[0].Count.Int(), nil
}

// FetchActiveSubscriptions retorna as assinaturas ativas ou em trial do
// ambiente de produção, junto com o total de usuários pagantes.
func (i *Integrator) FetchActiveSubscriptions() ([]domain.SubscriptionRow, int, error) {
	var rows []domain.SubscriptionRow
	if err := i.client.Call("get_active_subscriptions", nil, &rows); err != nil {
		return nil, 0, errors.Wrap(err, "erro ao buscar as assinaturas ativas do ULink")
	}

	return rows, len(rows), nil
}

func (i *Integrator) FetchMRROverTime(start, end time.Time) ([]domain.MRRRow, error) {
	var rows []domain.MRRRow
	if err := i.client.Call("get_mrr_over_time", rpcclient.NewRangeParams(start, end), &rows); err != nil {
		return nil, errors.Wrap(err, "erro ao buscar a série de MRR do ULink")
	}

	return rows, nil
}

// FetchActiveProjects conta os projetos distintos com atividade (link criado,
// clique ou sessão de SDK) dentro do intervalo.
func (i *Integrator) FetchActiveProjects(start, end time.Time) (int, error) {
	var rows []domain.CountRow
	if err := i.client.Call("get_active_projects", rpcclient.NewRangeParams(start, end), &rows); err != nil {
		return 0, errors.Wrap(err, "erro ao buscar os projetos ativos do ULink")
	}

	if len(rows) == 0 {
		return 0, nil
	}

	return rows[0].Count.Int(), nil
}

func (i *Integrator) FetchProjectHealth(start, end time.Time) ([]domain.ProjectHealthRow, error) {
	var rows []domain.ProjectHealthRow
	if err := i.client.Call("get_project_health_summary", rpcclient.NewRangeParams(start, end), &rows); err != nil {
		return nil, errors.Wrap(err, "erro ao buscar a saúde dos projetos do ULink")
	}

	return rows, nil
}
