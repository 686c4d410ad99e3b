package aggregating

import (
	"time"

	somaradomain "github.com/gfvieira/metrics-dashboard-api/infrastructure/integrator/somara/domain"
	"github.com/gfvieira/metrics-dashboard-api/internal/domain"
)

type somaraInput struct {
	KPIs       somaradomain.KPIRow
	Activity   []somaradomain.ActivityRow
	Signups    []somaradomain.SignupRow
	Tokens     []somaradomain.TokensRow
	OrgBilling []somaradomain.OrgBillingRow
	TopModels  []somaradomain.ModelUsageRow
	Credits    []somaradomain.CreditsRow
	Start      time.Time
	End        time.Time
}

func fillActivityOverTime(sparse []somaradomain.ActivityRow, allDates []string) []domain.DailyActivity {
	byDate := make(map[string]somaradomain.ActivityRow, len(sparse))
	for _, row := range sparse {
		byDate[row.Date] = row
	}

	filled := make([]domain.DailyActivity, 0, len(allDates))
	for _, date := range allDates {
		row := byDate[date]
		filled = append(filled, domain.DailyActivity{
			Date:        date,
			Messages:    row.Messages.Int(),
			ActiveUsers: row.ActiveUsers.Int(),
		})
	}

	return filled
}

func fillSomaraSignupsOverTime(sparse []somaradomain.SignupRow, allDates []string) []domain.DailySignups {
	byDate := make(map[string]int, len(sparse))
	for _, row := range sparse {
		byDate[row.Date] = row.Count.Int()
	}

	filled := make([]domain.DailySignups, 0, len(allDates))
	for _, date := range allDates {
		filled = append(filled, domain.DailySignups{
			Date:    date,
			Signups: byDate[date],
		})
	}

	return filled
}

func fillTokensOverTime(sparse []somaradomain.TokensRow, allDates []string) []domain.DailyTokens {
	byDate := make(map[string]int, len(sparse))
	for _, row := range sparse {
		byDate[row.Date] = row.Tokens.Int()
	}

	filled := make([]domain.DailyTokens, 0, len(allDates))
	for _, date := range allDates {
		filled = append(filled, domain.DailyTokens{
			Date:   date,
			Tokens: byDate[date],
		})
	}

	return filled
}

func transformOrgBilling(raw []somaradomain.OrgBillingRow) []domain.OrgBillingBreakdown {
	breakdown := make([]domain.OrgBillingBreakdown, 0, len(raw))
	for _, row := range raw {
		breakdown = append(breakdown, domain.OrgBillingBreakdown{
			BillingType: row.OwnerType,
			Count:       row.Count.Int(),
		})
	}

	return breakdown
}

func transformTopModels(raw []somaradomain.ModelUsageRow) []domain.ModelUsage {
	models := make([]domain.ModelUsage, 0, len(raw))
	for _, row := range raw {
		models = append(models, domain.ModelUsage{
			ModelID:        row.ModelID,
			Provider:       row.Provider,
			AssistantCount: row.AssistantCount.Int(),
		})
	}

	return models
}

func transformCredits(raw []somaradomain.CreditsRow) []domain.CreditsOverview {
	credits := make([]domain.CreditsOverview, 0, len(raw))
	for _, row := range raw {
		credits = append(credits, domain.CreditsOverview{
			Source:         row.Source,
			TotalGranted:   row.TotalGranted.Float(),
			TotalConsumed:  row.TotalConsumed.Float(),
			TotalRemaining: row.TotalRemaining.Float(),
		})
	}

	return credits
}

func buildSomaraMetrics(input somaraInput) *domain.SomaraMetrics {
	allDates := generateDateRange(input.Start, input.End)

	return &domain.SomaraMetrics{
		KPIs: domain.SomaraKPIs{
			TotalUsers:    input.KPIs.TotalUsers.Int(),
			ActiveUsers:   input.KPIs.ActiveUsers.Int(),
			NewSignups:    input.KPIs.NewSignups.Int(),
			TotalMessages: input.KPIs.TotalMessages.Int(),
			TotalChats:    input.KPIs.TotalChats.Int(),
			TokensUsed:    input.KPIs.TokensUsed.Int(),
		},
		ActivityOverTime:    fillActivityOverTime(input.Activity, allDates),
		SignupsOverTime:     fillSomaraSignupsOverTime(input.Signups, allDates),
		TokenUsageOverTime:  fillTokensOverTime(input.Tokens, allDates),
		OrgBillingBreakdown: transformOrgBilling(input.OrgBilling),
		TopModels:           transformTopModels(input.TopModels),
		CreditsOverview:     transformCredits(input.Credits),
	}
}
