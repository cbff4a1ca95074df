package domain

// DashboardStat is a single headline metric shown on the dashboard page.
type DashboardStat struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Delta string  `json:"delta"`
}
