package domain

import "time"

// InsightFilters são os filtros de período e agregação dos insights de anúncios.
// DatePreset, quando presente, tem precedência sobre StartDate/EndDate.
type InsightFilters struct {
	StartDate     *time.Time
	EndDate       *time.Time
	DatePreset    string
	Level         string
	TimeIncrement string
	Fields        []string
}

// MetricQuery descreve uma consulta de métricas de página ou de conta do Instagram
type MetricQuery struct {
	Metrics   []string
	Period    string
	Since     *time.Time
	Until     *time.Time
	Timeframe string
	Breakdown string
}
