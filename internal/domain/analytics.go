package domain

// AnalyticsKPIs são os indicadores agregados de tráfego web de um produto
type AnalyticsKPIs struct {
	TotalUsers         int     `json:"totalUsers"`
	NewUsers           int     `json:"newUsers"`
	Sessions           int     `json:"sessions"`
	Pageviews          int     `json:"pageviews"`
	AvgSessionDuration float64 `json:"avgSessionDuration"` // segundos
	BounceRate         float64 `json:"bounceRate"`         // 0-1
}

// DailyVisitors é um ponto da série diária de visitantes
type DailyVisitors struct {
	Date        string `json:"date"` // YYYYMMDD (formato do provedor de analytics)
	ActiveUsers int    `json:"activeUsers"`
	NewUsers    int    `json:"newUsers"`
	Sessions    int    `json:"sessions"`
}

type TopPage struct {
	PagePath  string `json:"pagePath"`
	PageTitle string `json:"pageTitle"`
	Pageviews int    `json:"pageviews"`
	Users     int    `json:"users"`
}

type ReferrerSource struct {
	Source   string `json:"source"`
	Medium   string `json:"medium"`
	Sessions int    `json:"sessions"`
	Users    int    `json:"users"`
}

type CountryBreakdown struct {
	Country   string `json:"country"`
	CountryID string `json:"countryId"`
	Users     int    `json:"users"`
}

type DeviceBreakdown struct {
	DeviceCategory string `json:"deviceCategory"`
	Users          int    `json:"users"`
}

// AnalyticsBundle reúne todas as facetas de tráfego web de um produto
// para um intervalo de datas
type AnalyticsBundle struct {
	KPIs             AnalyticsKPIs      `json:"kpis"`
	VisitorsOverTime []DailyVisitors    `json:"visitorsOverTime"`
	TopPages         []TopPage          `json:"topPages"`
	Referrers        []ReferrerSource   `json:"referrers"`
	Countries        []CountryBreakdown `json:"countries"`
	Devices          []DeviceBreakdown  `json:"devices"`
}
