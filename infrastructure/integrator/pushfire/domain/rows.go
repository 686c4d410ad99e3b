// Package domain define as linhas brutas retornadas pelo banco do PushFire.
package domain

import "github.com/gfvieira/metrics-dashboard-api/infrastructure/integrator/rpcclient"

type PlatformKPIRow struct {
	TotalUsers          rpcclient.FlexInt   `json:"total_users"`
	TotalProjects       rpcclient.FlexInt   `json:"total_projects"`
	TotalSubscribers    rpcclient.FlexInt   `json:"total_subscribers"`
	TotalDevices        rpcclient.FlexInt   `json:"total_devices"`
	NotificationsSent   rpcclient.FlexInt   `json:"notifications_sent"`
	DeliverySuccessRate rpcclient.FlexFloat `json:"delivery_success_rate"`
}

type BusinessKPIRow struct {
	MRR           rpcclient.FlexFloat `json:"mrr"`
	PaidProjects  rpcclient.FlexInt   `json:"paid_projects"`
	TotalProjects rpcclient.FlexInt   `json:"total_projects"`
}

type SubscriberRow struct {
	Date  string            `json:"date"`
	Count rpcclient.FlexInt `json:"count"`
}

type NotificationRow struct {
	Date  string            `json:"date"`
	Push  rpcclient.FlexInt `json:"push"`
	Email rpcclient.FlexInt `json:"email"`
}

type ExecutionRow struct {
	Date       string            `json:"date"`
	Executions rpcclient.FlexInt `json:"executions"`
}

type DeviceOSRow struct {
	OS    string            `json:"os"`
	Count rpcclient.FlexInt `json:"count"`
}
