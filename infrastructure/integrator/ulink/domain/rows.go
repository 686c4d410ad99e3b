// Package domain define as linhas brutas retornadas pelo banco do ULink,
// antes de qualquer transformação.
package domain

import "github.com/gfvieira/metrics-dashboard-api/infrastructure/integrator/rpcclient"

type SignupRow struct {
	Date  string            `json:"date"`
	Count rpcclient.FlexInt `json:"count"`
}

type CountRow struct {
	Count rpcclient.FlexInt `json:"count"`
}

type SubscriptionRow struct {
	ID                 string              `json:"id"`
	Status             string              `json:"status"`
	PriceMonthly       rpcclient.FlexFloat `json:"price_monthly"`
	PriceYearly        rpcclient.FlexFloat `json:"price_yearly"`
	CurrentPeriodStart string              `json:"current_period_start"`
	CurrentPeriodEnd   string              `json:"current_period_end"`
	CreatedAt          string              `json:"created_at"`
}

type MRRRow struct {
	Date string              `json:"date"`
	MRR  rpcclient.FlexFloat `json:"mrr"`
}

type ProjectHealthRow struct {
	ProjectID                    string            `json:"project_id"`
	ProjectName                  string            `json:"project_name"`
	ProjectCreatedAt             string            `json:"project_created_at"`
	MemberCount                  rpcclient.FlexInt `json:"member_count"`
	DomainSetup                  bool              `json:"domain_setup"`
	PlatformSelection            bool              `json:"platform_selection"`
	PlatformConfig               bool              `json:"platform_config"`
	CLIVerified                  bool              `json:"cli_verified"`
	SDKSetupViewed               bool              `json:"sdk_setup_viewed"`
	PlatformImplementationViewed bool              `json:"platform_implementation_viewed"`
	IsConfigured                 bool              `json:"is_configured"`
	LinksCreated                 rpcclient.FlexInt `json:"links_created"`
	TotalClicks                  rpcclient.FlexInt `json:"total_clicks"`
	RecentClicks                 rpcclient.FlexInt `json:"recent_clicks"`
}
