package domain

// PushFireKPIs são os indicadores de plataforma do PushFire
type PushFireKPIs struct {
	TotalUsers          int     `json:"totalUsers"`
	TotalProjects       int     `json:"totalProjects"`
	TotalSubscribers    int     `json:"totalSubscribers"`
	TotalDevices        int     `json:"totalDevices"`
	NotificationsSent   int     `json:"notificationsSent"`
	DeliverySuccessRate float64 `json:"deliverySuccessRate"` // 0-1
}

// PushFireBusinessKPIs são os indicadores de negócio do PushFire
type PushFireBusinessKPIs struct {
	MRR              float64 `json:"mrr"`
	PaidProjects     int     `json:"paidProjects"`
	SignupToPaidRate float64 `json:"signupToPaidRate"` // 0-1
}

type DailyNewSubscribers struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int    `json:"count"`
}

type DailyNotifications struct {
	Date  string `json:"date"`
	Push  int    `json:"push"`
	Email int    `json:"email"`
}

type DailyExecutions struct {
	Date       string `json:"date"`
	Executions int    `json:"executions"`
}

type DeviceOSBreakdown struct {
	OS    string `json:"os"`
	Count int    `json:"count"`
}

// PushFireMetrics reúne todas as facetas de plataforma do PushFire
type PushFireMetrics struct {
	KPIs                  PushFireKPIs          `json:"kpis"`
	BusinessKPIs          PushFireBusinessKPIs  `json:"businessKpis"`
	SubscribersOverTime   []DailyNewSubscribers `json:"subscribersOverTime"`
	NotificationsOverTime []DailyNotifications  `json:"notificationsOverTime"`
	ExecutionsOverTime    []DailyExecutions     `json:"executionsOverTime"`
	DeviceBreakdown       []DeviceOSBreakdown   `json:"deviceBreakdown"`
}
