// Package domain define as linhas brutas retornadas pelo banco do Somara.
package domain

import "github.com/gfvieira/metrics-dashboard-api/infrastructure/integrator/rpcclient"

type KPIRow struct {
	TotalUsers    rpcclient.FlexInt `json:"total_users"`
	ActiveUsers   rpcclient.FlexInt `json:"active_users"`
	NewSignups    rpcclient.FlexInt `json:"new_signups"`
	TotalMessages rpcclient.FlexInt `json:"total_messages"`
	TotalChats    rpcclient.FlexInt `json:"total_chats"`
	TokensUsed    rpcclient.FlexInt `json:"tokens_used"`
}

type ActivityRow struct {
	Date        string            `json:"date"`
	Messages    rpcclient.FlexInt `json:"messages"`
	ActiveUsers rpcclient.FlexInt `json:"active_users"`
}

type SignupRow struct {
	Date  string            `json:"date"`
	Count rpcclient.FlexInt `json:"count"`
}

type TokensRow struct {
	Date   string            `json:"date"`
	Tokens rpcclient.FlexInt `json:"tokens"`
}

type OrgBillingRow struct {
	OwnerType string            `json:"owner_type"`
	Count     rpcclient.FlexInt `json:"count"`
}

type ModelUsageRow struct {
	ModelID        string            `json:"model_id"`
	Provider       string            `json:"provider"`
	AssistantCount rpcclient.FlexInt `json:"assistant_count"`
}

type CreditsRow struct {
	Source         string              `json:"source"`
	TotalGranted   rpcclient.FlexFloat `json:"total_granted"`
	TotalConsumed  rpcclient.FlexFloat `json:"total_consumed"`
	TotalRemaining rpcclient.FlexFloat `json:"total_remaining"`
}
