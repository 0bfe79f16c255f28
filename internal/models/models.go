package models

// DashboardData is the JSON payload behind the chart endpoints. Values carry
// the same scaling the rendered charts display: line values are the raw cell
// divided by ten, bar values are in billions, pie values are the raw shares.
// A nil value marks a cell that did not parse as a number.
type DashboardData struct {
	Title   string      `json:"title"`
	Line    RegionChart `json:"line"`
	Bar     RegionChart `json:"bar"`
	Exports PieChart    `json:"exports_pie"`
	Imports PieChart    `json:"imports_pie"`
}

type RegionChart struct {
	Indicator string       `json:"indicator"`
	Region    string       `json:"region"`
	Countries []string     `json:"countries"`
	Series    []YearSeries `json:"series"`
}

// YearSeries is one year's worth of values across the country axis.
type YearSeries struct {
	Year   string     `json:"year"`
	Values []*float64 `json:"values"`
}

type PieChart struct {
	Indicator string     `json:"indicator"`
	Year      string     `json:"year"`
	Kind      string     `json:"kind"` // exports or imports
	Countries []string   `json:"countries"`
	Values    []*float64 `json:"values"`
	Shares    []float64  `json:"shares"` // percent of the wedge total, one decimal
}
