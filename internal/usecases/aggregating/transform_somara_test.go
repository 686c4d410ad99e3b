package aggregating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	somaradomain "github.com/gfvieira/metrics-dashboard-api/infrastructure/integrator/somara/domain"
	"github.com/gfvieira/metrics-dashboard-api/internal/domain"
)

func TestFillActivityOverTime(t *testing.T) {
	allDates := []string{"2024-01-01", "2024-01-02", "2024-01-03"}

	sparse := []somaradomain.ActivityRow{
		{Date: "2024-01-02", Messages: 42, ActiveUsers: 7},
	}

	filled := fillActivityOverTime(sparse, allDates)

	assert.Equal(t, []domain.DailyActivity{
		{Date: "2024-01-01", Messages: 0, ActiveUsers: 0},
		{Date: "2024-01-02", Messages: 42, ActiveUsers: 7},
		{Date: "2024-01-03", Messages: 0, ActiveUsers: 0},
	}, filled)
}

func TestFillTokensOverTime(t *testing.T) {
	allDates := []string{"2024-01-01", "2024-01-02"}

	sparse := []somaradomain.TokensRow{
		{Date: "2024-01-01", Tokens: 15000},
	}

	filled := fillTokensOverTime(sparse, allDates)

	assert.Equal(t, []domain.DailyTokens{
		{Date: "2024-01-01", Tokens: 15000},
		{Date: "2024-01-02", Tokens: 0},
	}, filled)
}

func TestBuildSomaraMetrics(t *testing.T) {
	input := somaraInput{
		KPIs: somaradomain.KPIRow{
			TotalUsers:    120,
			ActiveUsers:   45,
			NewSignups:    8,
			TotalMessages: 3400,
			TotalChats:    560,
			TokensUsed:    987654,
		},
		Activity: []somaradomain.ActivityRow{
			{Date: "2024-01-01", Messages: 100, ActiveUsers: 10},
		},
		Signups: []somaradomain.SignupRow{
			{Date: "2024-01-02", Count: 3},
		},
		Tokens: []somaradomain.TokensRow{
			{Date: "2024-01-01", Tokens: 5000},
		},
		OrgBilling: []somaradomain.OrgBillingRow{
			{OwnerType: "organization", Count: 12},
			{OwnerType: "user", Count: 30},
		},
		TopModels: []somaradomain.ModelUsageRow{
			{ModelID: "gpt-4o", Provider: "openai", AssistantCount: 18},
		},
		Credits: []somaradomain.CreditsRow{
			{Source: "stripe", TotalGranted: 1000, TotalConsumed: 400, TotalRemaining: 600},
		},
		Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
	}

	metrics := buildSomaraMetrics(input)

	assert.Equal(t, 120, metrics.KPIs.TotalUsers)
	assert.Equal(t, 45, metrics.KPIs.ActiveUsers)
	assert.Equal(t, 987654, metrics.KPIs.TokensUsed)

	// Séries densas: três dias no intervalo, dias sem linha zerados
	assert.Len(t, metrics.ActivityOverTime, 3)
	assert.Equal(t, 100, metrics.ActivityOverTime[0].Messages)
	assert.Equal(t, 0, metrics.ActivityOverTime[2].Messages)
	assert.Len(t, metrics.SignupsOverTime, 3)
	assert.Equal(t, 3, metrics.SignupsOverTime[1].Signups)
	assert.Len(t, metrics.TokenUsageOverTime, 3)

	// Quebras categóricas preservam a ordem do provedor
	assert.Equal(t, []domain.OrgBillingBreakdown{
		{BillingType: "organization", Count: 12},
		{BillingType: "user", Count: 30},
	}, metrics.OrgBillingBreakdown)
	assert.Equal(t, "gpt-4o", metrics.TopModels[0].ModelID)
	assert.Equal(t, 600.0, metrics.CreditsOverview[0].TotalRemaining)
}
