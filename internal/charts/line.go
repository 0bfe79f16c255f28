package charts

import (
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// lineScale divides the raw values for display, matching the source report's
// "Value (in 10^10)" axis.
const lineScale = 10

var lineColors = opts.Colors{"red", "dodgerblue", "lawngreen", "black"}

// NewLineChart plots one series per year across the country axis with
// diamond markers, one fixed color per year, legend keyed by year.
// series[i] holds the raw values for years[i], aligned with countries.
func NewLineChart(title string, countries, years []string, series [][]float64) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(chartInit),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithLegendOpts(opts.Legend{Show: true, Top: "30"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Country"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Value (in 10^10)"}),
		charts.WithColorsOpts(lineColors),
	)
	line.SetXAxis(countries)
	for yi, year := range years {
		data := make([]opts.LineData, len(series[yi]))
		for i, v := range series[yi] {
			data[i] = opts.LineData{
				Value:      chartValue(v / lineScale),
				Symbol:     "diamond",
				SymbolSize: 10,
			}
		}
		line.AddSeries(year, data)
	}
	return line
}
