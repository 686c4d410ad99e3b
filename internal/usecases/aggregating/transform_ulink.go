package aggregating

import (
	"sort"
	"time"

	ulinkdomain "github.com/gfvieira/metrics-dashboard-api/infrastructure/integrator/ulink/domain"
	"github.com/gfvieira/metrics-dashboard-api/internal/domain"
	"github.com/gfvieira/metrics-dashboard-api/pkg/utils"
)

type ulinkBusinessInput struct {
	SignupsDaily   []ulinkdomain.SignupRow
	TotalSignups   int
	Subscriptions  []ulinkdomain.SubscriptionRow
	TotalPaidUsers int
	MRROverTime    []ulinkdomain.MRRRow
	ActiveProjects int
	AnalyticsUsers int
	Start          time.Time
	End            time.Time
}

// calculateMRR soma o preço mensal de tabela das assinaturas ativas,
// independente do intervalo de cobrança contratado
func calculateMRR(subscriptions []ulinkdomain.SubscriptionRow) float64 {
	var total float64
	for _, sub := range subscriptions {
		total += sub.PriceMonthly.Float()
	}

	return utils.RoundWithTwoDecimalPlace(total)
}

// fillSignupsOverTime densifica a série com zero nos dias sem cadastro
func fillSignupsOverTime(sparse []ulinkdomain.SignupRow, allDates []string) []domain.DailySignups {
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

// fillMRROverTime densifica a série propagando o último valor conhecido
func fillMRROverTime(sparse []ulinkdomain.MRRRow, allDates []string) []domain.DailyMRR {
	byDate := make(map[string]float64, len(sparse))
	for _, row := range sparse {
		byDate[row.Date] = row.MRR.Float()
	}

	var lastMRR float64
	filled := make([]domain.DailyMRR, 0, len(allDates))
	for _, date := range allDates {
		if mrr, ok := byDate[date]; ok {
			lastMRR = mrr
		}
		filled = append(filled, domain.DailyMRR{
			Date: date,
			MRR:  lastMRR,
		})
	}

	return filled
}

func buildULinkBusinessMetrics(input ulinkBusinessInput) *domain.ULinkBusinessMetrics {
	allDates := generateDateRange(input.Start, input.End)

	return &domain.ULinkBusinessMetrics{
		MRR:            calculateMRR(input.Subscriptions),
		TotalSignups:   input.TotalSignups,
		TotalPaidUsers: input.TotalPaidUsers,
		ActiveProjects: input.ActiveProjects,
		// As taxas de conversão usam o total bruto do provedor, nunca a soma
		// da série densificada
		VisitorToSignupRate: safeRate(float64(input.TotalSignups), float64(input.AnalyticsUsers)),
		SignupToPaidRate:    safeRate(float64(input.TotalPaidUsers), float64(input.TotalSignups)),
		SignupsOverTime:     fillSignupsOverTime(input.SignupsDaily, allDates),
		MRROverTime:         fillMRROverTime(input.MRROverTime, allDates),
	}
}

// computeHealthScore classifica o projeto:
//   - healthy: tem links, tem cliques recentes e onboarding >= 4 etapas
//   - at-risk: tem links ou onboarding >= 2 etapas, mas falta algum critério
//   - inactive: sem links e onboarding < 2 etapas
func computeHealthScore(linksCreated, recentClicks, onboardingProgress int) domain.HealthScore {
	hasLinks := linksCreated > 0
	hasRecentClicks := recentClicks > 0
	goodOnboarding := onboardingProgress >= 4

	if hasLinks && hasRecentClicks && goodOnboarding {
		return domain.HealthScoreHealthy
	}
	if hasLinks || onboardingProgress >= 2 {
		return domain.HealthScoreAtRisk
	}

	return domain.HealthScoreInactive
}

func toOnboardingSteps(row ulinkdomain.ProjectHealthRow) domain.OnboardingSteps {
	return domain.OnboardingSteps{
		DomainSetup:                  row.DomainSetup,
		PlatformSelection:            row.PlatformSelection,
		PlatformConfig:               row.PlatformConfig,
		CLIVerified:                  row.CLIVerified,
		SDKSetupViewed:               row.SDKSetupViewed,
		PlatformImplementationViewed: row.PlatformImplementationViewed,
	}
}

func countOnboardingProgress(steps domain.OnboardingSteps) int {
	progress := 0
	for _, done := range []bool{
		steps.DomainSetup,
		steps.PlatformSelection,
		steps.PlatformConfig,
		steps.CLIVerified,
		steps.SDKSetupViewed,
		steps.PlatformImplementationViewed,
	} {
		if done {
			progress++
		}
	}

	return progress
}

func buildULinkClientHealth(raw []ulinkdomain.ProjectHealthRow) *domain.ULinkClientHealth {
	projects := make([]domain.ProjectHealthSummary, 0, len(raw))
	for _, row := range raw {
		steps := toOnboardingSteps(row)
		progress := countOnboardingProgress(steps)

		projects = append(projects, domain.ProjectHealthSummary{
			ProjectID:          row.ProjectID,
			ProjectName:        row.ProjectName,
			CreatedAt:          row.ProjectCreatedAt,
			MemberCount:        row.MemberCount.Int(),
			OnboardingSteps:    steps,
			OnboardingProgress: progress,
			IsConfigured:       row.IsConfigured,
			LinksCreated:       row.LinksCreated.Int(),
			TotalClicks:        row.TotalClicks.Int(),
			RecentClicks:       row.RecentClicks.Int(),
			HealthScore:        computeHealthScore(row.LinksCreated.Int(), row.RecentClicks.Int(), progress),
		})
	}

	// Projetos que precisam de atenção primeiro: inactive, at-risk, healthy
	sort.SliceStable(projects, func(i, j int) bool {
		return domain.HealthScoreOrder[projects[i].HealthScore] > domain.HealthScoreOrder[projects[j].HealthScore]
	})

	var healthyCount, atRiskCount, inactiveCount int
	var totalOnboarding, configuredCount, projectsWithLinks int
	for _, project := range projects {
		switch project.HealthScore {
		case domain.HealthScoreHealthy:
			healthyCount++
		case domain.HealthScoreAtRisk:
			atRiskCount++
		case domain.HealthScoreInactive:
			inactiveCount++
		}

		totalOnboarding += project.OnboardingProgress
		if project.IsConfigured {
			configuredCount++
		}
		if project.LinksCreated > 0 {
			projectsWithLinks++
		}
	}

	total := len(projects)

	return &domain.ULinkClientHealth{
		TotalProjects:         total,
		HealthyCount:          healthyCount,
		AtRiskCount:           atRiskCount,
		InactiveCount:         inactiveCount,
		AvgOnboardingProgress: safeRate(float64(totalOnboarding), float64(total*domain.OnboardingStepCount)),
		ConfiguredRate:        safeRate(float64(configuredCount), float64(total)),
		ProjectsWithLinks:     projectsWithLinks,
		Projects:              projects,
	}
}
