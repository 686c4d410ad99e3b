package domain

// SomaraKPIs são os indicadores de plataforma do Somara
type SomaraKPIs struct {
	TotalUsers    int `json:"totalUsers"`
	ActiveUsers   int `json:"activeUsers"`
	NewSignups    int `json:"newSignups"`
	TotalMessages int `json:"totalMessages"`
	TotalChats    int `json:"totalChats"`
	TokensUsed    int `json:"tokensUsed"`
}

// DailyActivity é um ponto da série diária de mensagens e usuários ativos
type DailyActivity struct {
	Date        string `json:"date"` // YYYY-MM-DD
	Messages    int    `json:"messages"`
	ActiveUsers int    `json:"activeUsers"`
}

type DailyTokens struct {
	Date   string `json:"date"`
	Tokens int    `json:"tokens"`
}

type OrgBillingBreakdown struct {
	BillingType string `json:"billingType"` // usage_based | byok_user | byok_enterprise | internal
	Count       int    `json:"count"`
}

type ModelUsage struct {
	ModelID        string `json:"modelId"`
	Provider       string `json:"provider"`
	AssistantCount int    `json:"assistantCount"`
}

type CreditsOverview struct {
	Source         string  `json:"source"` // subscription | purchase | bonus | rollover
	TotalGranted   float64 `json:"totalGranted"`
	TotalConsumed  float64 `json:"totalConsumed"`
	TotalRemaining float64 `json:"totalRemaining"`
}

// SomaraMetrics reúne todas as facetas de plataforma do Somara
type SomaraMetrics struct {
	KPIs                SomaraKPIs            `json:"kpis"`
	ActivityOverTime    []DailyActivity       `json:"activityOverTime"`
	SignupsOverTime     []DailySignups        `json:"signupsOverTime"`
	TokenUsageOverTime  []DailyTokens         `json:"tokenUsageOverTime"`
	OrgBillingBreakdown []OrgBillingBreakdown `json:"orgBillingBreakdown"`
	TopModels           []ModelUsage          `json:"topModels"`
	CreditsOverview     []CreditsOverview     `json:"creditsOverview"`
}
