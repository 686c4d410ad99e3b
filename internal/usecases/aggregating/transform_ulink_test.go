package aggregating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/gfvieira/metrics-dashboard-api/infrastructure/integrator/rpcclient"
	ulinkdomain "github.com/gfvieira/metrics-dashboard-api/infrastructure/integrator/ulink/domain"
	"github.com/gfvieira/metrics-dashboard-api/internal/domain"
)

func TestFillSignupsOverTime(t *testing.T) {
	allDates := []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04", "2024-01-05"}

	sparse := []ulinkdomain.SignupRow{
		{Date: "2024-01-02", Count: 5},
		{Date: "2024-01-04", Count: 9},
	}

	filled := fillSignupsOverTime(sparse, allDates)

	// Dias sem cadastro recebem zero, nunca o valor anterior
	assert.Equal(t, []domain.DailySignups{
		{Date: "2024-01-01", Signups: 0},
		{Date: "2024-01-02", Signups: 5},
		{Date: "2024-01-03", Signups: 0},
		{Date: "2024-01-04", Signups: 9},
		{Date: "2024-01-05", Signups: 0},
	}, filled)
}

func TestFillMRROverTime(t *testing.T) {
	allDates := []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04", "2024-01-05"}

	sparse := []ulinkdomain.MRRRow{
		{Date: "2024-01-02", MRR: 5},
		{Date: "2024-01-04", MRR: 9},
	}

	filled := fillMRROverTime(sparse, allDates)

	// MRR é estado, não evento: dias sem linha propagam o último valor
	assert.Equal(t, []domain.DailyMRR{
		{Date: "2024-01-01", MRR: 0},
		{Date: "2024-01-02", MRR: 5},
		{Date: "2024-01-03", MRR: 5},
		{Date: "2024-01-04", MRR: 9},
		{Date: "2024-01-05", MRR: 9},
	}, filled)
}

func TestCalculateMRR(t *testing.T) {
	tests := []struct {
		name          string
		subscriptions []ulinkdomain.SubscriptionRow
		expected      float64
	}{
		{
			name: "Soma o preço mensal de todas as assinaturas",
			subscriptions: []ulinkdomain.SubscriptionRow{
				{ID: "sub_1", Status: "active", PriceMonthly: 29.90},
				{ID: "sub_2", Status: "active", PriceMonthly: 99.00},
				{ID: "sub_3", Status: "trialing", PriceMonthly: 29.90},
			},
			expected: 158.80,
		},
		{
			name:          "Sem assinaturas retorna zero",
			subscriptions: nil,
			expected:      0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, calculateMRR(tt.subscriptions), 0.001)
		})
	}
}

func TestBuildULinkBusinessMetrics(t *testing.T) {
	input := ulinkBusinessInput{
		SignupsDaily: []ulinkdomain.SignupRow{
			{Date: "2024-01-02", Count: 4},
		},
		TotalSignups: 10,
		Subscriptions: []ulinkdomain.SubscriptionRow{
			{ID: "sub_1", PriceMonthly: 50},
			{ID: "sub_2", PriceMonthly: 30},
		},
		TotalPaidUsers: 2,
		MRROverTime: []ulinkdomain.MRRRow{
			{Date: "2024-01-01", MRR: 80},
		},
		ActiveProjects: 7,
		AnalyticsUsers: 200,
		Start:          time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:            time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
	}

	metrics := buildULinkBusinessMetrics(input)

	assert.Equal(t, 80.0, metrics.MRR)
	assert.Equal(t, 10, metrics.TotalSignups)
	assert.Equal(t, 2, metrics.TotalPaidUsers)
	assert.Equal(t, 7, metrics.ActiveProjects)

	// As taxas usam os totais brutos do provedor: 10/200 e 2/10
	assert.InDelta(t, 0.05, metrics.VisitorToSignupRate, 0.001)
	assert.InDelta(t, 0.2, metrics.SignupToPaidRate, 0.001)

	// Séries densas cobrindo cada dia do intervalo
	assert.Len(t, metrics.SignupsOverTime, 3)
	assert.Equal(t, 0, metrics.SignupsOverTime[0].Signups)
	assert.Equal(t, 4, metrics.SignupsOverTime[1].Signups)
	assert.Len(t, metrics.MRROverTime, 3)
	assert.Equal(t, 80.0, metrics.MRROverTime[2].MRR)
}

func TestBuildULinkBusinessMetricsSemDados(t *testing.T) {
	input := ulinkBusinessInput{
		Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
	}

	metrics := buildULinkBusinessMetrics(input)

	// Sem visitantes nem cadastros as taxas não podem estourar divisão por zero
	assert.Equal(t, 0.0, metrics.VisitorToSignupRate)
	assert.Equal(t, 0.0, metrics.SignupToPaidRate)
	assert.Len(t, metrics.SignupsOverTime, 2)
	assert.Len(t, metrics.MRROverTime, 2)
}

func TestComputeHealthScore(t *testing.T) {
	tests := []struct {
		name               string
		linksCreated       int
		recentClicks       int
		onboardingProgress int
		expected           domain.HealthScore
	}{
		{
			name:               "Links, cliques recentes e onboarding completo - healthy",
			linksCreated:       3,
			recentClicks:       10,
			onboardingProgress: 6,
			expected:           domain.HealthScoreHealthy,
		},
		{
			name:               "Onboarding no limite mínimo de quatro etapas - healthy",
			linksCreated:       1,
			recentClicks:       1,
			onboardingProgress: 4,
			expected:           domain.HealthScoreHealthy,
		},
		{
			name:               "Links sem cliques recentes - at-risk",
			linksCreated:       5,
			recentClicks:       0,
			onboardingProgress: 6,
			expected:           domain.HealthScoreAtRisk,
		},
		{
			name:               "Cliques recentes mas onboarding insuficiente - at-risk",
			linksCreated:       2,
			recentClicks:       8,
			onboardingProgress: 3,
			expected:           domain.HealthScoreAtRisk,
		},
		{
			name:               "Sem links mas onboarding avançou duas etapas - at-risk",
			linksCreated:       0,
			recentClicks:       0,
			onboardingProgress: 2,
			expected:           domain.HealthScoreAtRisk,
		},
		{
			name:               "Sem links e onboarding de uma etapa - inactive",
			linksCreated:       0,
			recentClicks:       0,
			onboardingProgress: 1,
			expected:           domain.HealthScoreInactive,
		},
		{
			name:               "Projeto recém criado sem atividade - inactive",
			linksCreated:       0,
			recentClicks:       0,
			onboardingProgress: 0,
			expected:           domain.HealthScoreInactive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := computeHealthScore(tt.linksCreated, tt.recentClicks, tt.onboardingProgress)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestBuildULinkClientHealth(t *testing.T) {
	raw := []ulinkdomain.ProjectHealthRow{
		{
			ProjectID:         "prj_healthy",
			ProjectName:       "Loja Saudável",
			MemberCount:       3,
			DomainSetup:       true,
			PlatformSelection: true,
			PlatformConfig:    true,
			CLIVerified:       true,
			IsConfigured:      true,
			LinksCreated:      12,
			TotalClicks:       rpcclient.FlexInt(340),
			RecentClicks:      25,
		},
		{
			ProjectID:    "prj_inactive",
			ProjectName:  "Loja Parada",
			MemberCount:  1,
			LinksCreated: 0,
			RecentClicks: 0,
		},
		{
			ProjectID:         "prj_at_risk",
			ProjectName:       "Loja em Risco",
			MemberCount:       2,
			DomainSetup:       true,
			PlatformSelection: true,
			LinksCreated:      4,
			RecentClicks:      0,
		},
	}

	health := buildULinkClientHealth(raw)

	assert.Equal(t, 3, health.TotalProjects)
	assert.Equal(t, 1, health.HealthyCount)
	assert.Equal(t, 1, health.AtRiskCount)
	assert.Equal(t, 1, health.InactiveCount)
	assert.Equal(t, 2, health.ProjectsWithLinks)

	// Projetos que precisam de atenção vêm primeiro: inactive, at-risk, healthy
	assert.Equal(t, "prj_inactive", health.Projects[0].ProjectID)
	assert.Equal(t, "prj_at_risk", health.Projects[1].ProjectID)
	assert.Equal(t, "prj_healthy", health.Projects[2].ProjectID)

	// Onboarding: (4 + 0 + 2) etapas sobre 3 projetos de 6 etapas
	assert.InDelta(t, 6.0/18.0, health.AvgOnboardingProgress, 0.001)
	assert.InDelta(t, 1.0/3.0, health.ConfiguredRate, 0.001)

	// Progresso e score por projeto
	healthy := health.Projects[2]
	assert.Equal(t, 4, healthy.OnboardingProgress)
	assert.Equal(t, domain.HealthScoreHealthy, healthy.HealthScore)
	assert.Equal(t, 340, healthy.TotalClicks)
}

func TestBuildULinkClientHealthSemProjetos(t *testing.T) {
	health := buildULinkClientHealth(nil)

	assert.Equal(t, 0, health.TotalProjects)
	assert.Equal(t, 0.0, health.AvgOnboardingProgress)
	assert.Equal(t, 0.0, health.ConfiguredRate)
	assert.NotNil(t, health.Projects)
	assert.Empty(t, health.Projects)
}
