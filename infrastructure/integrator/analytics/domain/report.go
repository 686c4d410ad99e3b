// Package domain contém os tipos crus da API de relatórios de analytics.
// Os valores chegam como strings e são coagidos para números na borda,
// isolando o resto do sistema de variações de schema do provedor.
package domain

import "strconv"

type DateRange struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type Dimension struct {
	Name string `json:"name"`
}

type Metric struct {
	Name string `json:"name"`
}

type StringFilter struct {
	MatchType string `json:"matchType"`
	Value     string `json:"value"`
}

type Filter struct {
	FieldName    string        `json:"fieldName"`
	StringFilter *StringFilter `json:"stringFilter,omitempty"`
}

// FilterExpression suporta filtro simples e sua negação, que é o subconjunto
// usado pelos recortes de site/dashboard do ULink
type FilterExpression struct {
	Filter        *Filter           `json:"filter,omitempty"`
	NotExpression *FilterExpression `json:"notExpression,omitempty"`
}

type OrderByDimension struct {
	DimensionName string `json:"dimensionName"`
	OrderType     string `json:"orderType,omitempty"`
}

type OrderByMetric struct {
	MetricName string `json:"metricName"`
}

type OrderBy struct {
	Dimension *OrderByDimension `json:"dimension,omitempty"`
	Metric    *OrderByMetric    `json:"metric,omitempty"`
	Desc      bool              `json:"desc,omitempty"`
}

type RunReportRequest struct {
	DateRanges      []DateRange       `json:"dateRanges"`
	Dimensions      []Dimension       `json:"dimensions,omitempty"`
	Metrics         []Metric          `json:"metrics"`
	OrderBys        []OrderBy         `json:"orderBys,omitempty"`
	DimensionFilter *FilterExpression `json:"dimensionFilter,omitempty"`
	Limit           int               `json:"limit,omitempty"`
}

type Value struct {
	Value string `json:"value"`
}

type Row struct {
	DimensionValues []Value `json:"dimensionValues"`
	MetricValues    []Value `json:"metricValues"`
}

// RunReportResponse é a resposta crua do provedor; Rows pode vir vazio ou
// ausente quando não há dados no período
type RunReportResponse struct {
	Rows []Row `json:"rows"`
}

// MetricInt retorna a métrica de índice i coagida para inteiro, 0 se ausente
func (r Row) MetricInt(i int) int {
	if i < 0 || i >= len(r.MetricValues) {
		return 0
	}
	value, err := strconv.ParseFloat(r.MetricValues[i].Value, 64)
	if err != nil {
		return 0
	}
	return int(value)
}

// MetricFloat retorna a métrica de índice i coagida para float, 0 se ausente
func (r Row) MetricFloat(i int) float64 {
	if i < 0 || i >= len(r.MetricValues) {
		return 0
	}
	value, err := strconv.ParseFloat(r.MetricValues[i].Value, 64)
	if err != nil {
		return 0
	}
	return value
}

// DimensionValue retorna a dimensão de índice i, string vazia se ausente
func (r Row) DimensionValue(i int) string {
	if i < 0 || i >= len(r.DimensionValues) {
		return ""
	}
	return r.DimensionValues[i].Value
}
