package charts

import (
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Four stops from the viridis colormap, one per year.
var barColors = opts.Colors{"#440154", "#31688E", "#35B779", "#FDE725"}

// NewBarChart draws grouped horizontal bars, one group per country and one
// bar per year. Values are shown in billions and every bar carries its
// FormatBillions annotation. series[i] holds the raw values for years[i].
func NewBarChart(title string, countries, years []string, series [][]float64) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(chartInit),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithLegendOpts(opts.Legend{Show: true, Top: "30"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Value (in Billions)"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Country"}),
		charts.WithColorsOpts(barColors),
	)
	bar.SetXAxis(countries)
	for yi, year := range years {
		data := make([]opts.BarData, len(series[yi]))
		for i, v := range series[yi] {
			billions := v / 1e9
			if math.IsNaN(v) {
				data[i] = opts.BarData{Value: "-"}
				continue
			}
			data[i] = opts.BarData{
				Value: billions,
				Label: &opts.Label{Show: true, Position: "right", Formatter: FormatBillions(v)},
			}
		}
		bar.AddSeries(year, data)
	}
	bar.XYReversal()
	return bar
}
