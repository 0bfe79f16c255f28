package charts

import (
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

var (
	// Set3-style pastels for the exports pie.
	exportColors = opts.Colors{"#8DD3C7", "#FFFFB3", "#BEBADA", "#FB8072", "#80B1D3", "#FDB462"}
	// Prism-style primaries for the imports pie.
	importColors = opts.Colors{"#FF0000", "#FFFF00", "#00FF00", "#00FFFF", "#0000FF", "#FF00FF"}
)

// NewPieChart draws the Arab World share donut for one indicator and year.
// kind is "exports" or "imports" and selects the palette; it also names the
// series, which is as close as ECharts gets to the source report's text in
// the donut hole. Countries whose cell never parsed are left out of the pie.
func NewPieChart(title, kind string, countries []string, values []float64) *charts.Pie {
	colors := importColors
	if kind == "exports" {
		colors = exportColors
	}
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithInitializationOpts(chartInit),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Formatter: "{a}<br/>{b}: {d}%"}),
		charts.WithColorsOpts(colors),
	)
	data := make([]opts.PieData, 0, len(countries))
	for i, country := range countries {
		if math.IsNaN(values[i]) {
			continue
		}
		data = append(data, opts.PieData{Name: country, Value: values[i]})
	}
	pie.AddSeries(titleCase(kind), data,
		charts.WithPieChartOpts(opts.PieChart{Radius: []string{"40%", "75%"}}),
		charts.WithLabelOpts(opts.Label{Show: true, Formatter: "{b}: {d}%"}),
	)
	return pie
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]&^0x20) + s[1:]
}
