package domain

// DailySignups é um ponto da série diária de cadastros (zero-fill)
type DailySignups struct {
	Date    string `json:"date"` // YYYY-MM-DD
	Signups int    `json:"signups"`
}

// DailyMRR é um ponto da série diária de receita recorrente (forward-fill)
type DailyMRR struct {
	Date string  `json:"date"`
	MRR  float64 `json:"mrr"`
}

// ULinkBusinessMetrics reúne os indicadores de negócio do ULink
type ULinkBusinessMetrics struct {
	MRR                 float64        `json:"mrr"`
	TotalSignups        int            `json:"totalSignups"`
	TotalPaidUsers      int            `json:"totalPaidUsers"`
	ActiveProjects      int            `json:"activeProjects"`
	VisitorToSignupRate float64        `json:"visitorToSignupRate"`
	SignupToPaidRate    float64        `json:"signupToPaidRate"`
	SignupsOverTime     []DailySignups `json:"signupsOverTime"`
	MRROverTime         []DailyMRR     `json:"mrrOverTime"`
}

// HealthScore classifica a saúde de um projeto cliente
type HealthScore string

const (
	HealthScoreHealthy  HealthScore = "healthy"
	HealthScoreAtRisk   HealthScore = "at-risk"
	HealthScoreInactive HealthScore = "inactive"
)

// HealthScoreOrder define a ordenação fixa usada na listagem de projetos
var HealthScoreOrder = map[HealthScore]int{
	HealthScoreHealthy:  0,
	HealthScoreAtRisk:   1,
	HealthScoreInactive: 2,
}

// OnboardingSteps são as seis etapas de onboarding de um projeto ULink
type OnboardingSteps struct {
	DomainSetup                  bool `json:"domainSetup"`
	PlatformSelection            bool `json:"platformSelection"`
	PlatformConfig               bool `json:"platformConfig"`
	CLIVerified                  bool `json:"cliVerified"`
	SDKSetupViewed               bool `json:"sdkSetupViewed"`
	PlatformImplementationViewed bool `json:"platformImplementationViewed"`
}

// OnboardingStepCount é o total de etapas de onboarding consideradas no score
const OnboardingStepCount = 6

// ProjectHealthSummary é derivado a cada requisição, nunca persistido
type ProjectHealthSummary struct {
	ProjectID          string          `json:"projectId"`
	ProjectName        string          `json:"projectName"`
	CreatedAt          string          `json:"createdAt"`
	MemberCount        int             `json:"memberCount"`
	OnboardingSteps    OnboardingSteps `json:"onboardingSteps"`
	OnboardingProgress int             `json:"onboardingProgress"` // 0-6
	IsConfigured       bool            `json:"isConfigured"`
	LinksCreated       int             `json:"linksCreated"`
	TotalClicks        int             `json:"totalClicks"`
	RecentClicks       int             `json:"recentClicks"` // cliques dentro do intervalo solicitado
	HealthScore        HealthScore     `json:"healthScore"`
}

// ULinkClientHealth agrega a saúde de todos os projetos clientes do ULink
type ULinkClientHealth struct {
	TotalProjects         int                    `json:"totalProjects"`
	HealthyCount          int                    `json:"healthyCount"`
	AtRiskCount           int                    `json:"atRiskCount"`
	InactiveCount         int                    `json:"inactiveCount"`
	AvgOnboardingProgress float64                `json:"avgOnboardingProgress"` // 0-1
	ConfiguredRate        float64                `json:"configuredRate"`        // 0-1
	ProjectsWithLinks     int                    `json:"projectsWithLinks"`
	Projects              []ProjectHealthSummary `json:"projects"`
}
