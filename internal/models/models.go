package models

// Dashboard carries the per-panel selections for one infographic run.
type Dashboard struct {
	PopulationGrowth []SliceValue `json:"population_growth"`
	NetMigration     []Series     `json:"net_migration"`
	CO2Emission      Series       `json:"co2_emission"`
	Unemployment     []SliceValue `json:"unemployment"`
}

// SliceValue is one entity's value for a single year plus its share of
// the selection total.
type SliceValue struct {
	Entity string  `json:"entity"`
	Value  float64 `json:"value"`
	Share  float64 `json:"share_pct"`
}

// Series is one entity's values over a year range. Years with no
// measurement are simply not present.
type Series struct {
	Entity string        `json:"entity"`
	Points []SeriesPoint `json:"points"`
}

type SeriesPoint struct {
	Year  int     `json:"year"`
	Value float64 `json:"value"`
}
