package model

// DailyStat is one day's completion summary.
type DailyStat struct {
	Date       string `json:"date"`
	Total      int    `json:"total"`
	Completed  int    `json:"completed"`
	Percentage int    `json:"percentage"`
}

type WeeklyStats struct {
	WeekStartDate string `json:"week_start_date"`
	Total         int    `json:"total"`
	Completed     int    `json:"completed"`
	Percentage    int    `json:"percentage"`
}

type MonthlyStats struct {
	Month      string `json:"month"`
	Total      int    `json:"total"`
	Completed  int    `json:"completed"`
	Percentage int    `json:"percentage"`
}

// CompletionStats is a derived view over the daily entry collection. It is
// recomputed on demand and never persisted in the primary store.
type CompletionStats struct {
	Daily   []DailyStat  `json:"daily"`
	Weekly  WeeklyStats  `json:"weekly"`
	Monthly MonthlyStats `json:"monthly"`
}
