package charts

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"math"
	"os"
	"strings"
	"time"

	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"go.uber.org/zap"

	"merchdash/internal/config"
	"merchdash/internal/dataset"
	"merchdash/internal/models"
)

// backgroundColor is plum, the figure background of the source report.
const backgroundColor = "#DDA0DD"

// chartInit sizes every cell so the flex page wraps into a 2x2 grid.
var chartInit = opts.Initialization{
	Width:           "660px",
	Height:          "430px",
	BackgroundColor: backgroundColor,
}

// Dashboard is the composed four-chart page plus the JSON payload the API
// serves and the caption blocks injected under the grid.
type Dashboard struct {
	Data *models.DashboardData

	page     *components.Page
	charts   []components.Charter
	title    string
	captions config.Captions
}

// Build wires the fixed report: exports over American countries as a line,
// imports over Asian countries as horizontal bars, and the two Arab World
// share donuts. Selection happens up front so a country/row mismatch fails
// here with a real error instead of inside a chart call.
func Build(t *dataset.Table, cfg *config.Config, log *zap.Logger) (*Dashboard, error) {
	if log == nil {
		log = zap.NewNop()
	}
	start := time.Now()

	lineValues, err := selectYears(t, cfg.Indicators.Exports, cfg.Groups.American, cfg.Years)
	if err != nil {
		return nil, err
	}
	barValues, err := selectYears(t, cfg.Indicators.Imports, cfg.Groups.Asian, cfg.Years)
	if err != nil {
		return nil, err
	}
	exportShares, err := t.SelectYear(cfg.Indicators.ArabExports, cfg.Groups.Arab, cfg.PieYear)
	if err != nil {
		return nil, err
	}
	importShares, err := t.SelectYear(cfg.Indicators.ArabImports, cfg.Groups.Arab, cfg.PieYear)
	if err != nil {
		return nil, err
	}

	line := NewLineChart(
		fmt.Sprintf("%s (American Countries)", cfg.Indicators.Exports),
		cfg.Groups.American, cfg.Years, lineValues)
	bar := NewBarChart(
		fmt.Sprintf("%s (Asian Countries)", cfg.Indicators.Imports),
		cfg.Groups.Asian, cfg.Years, barValues)
	exportPie := NewPieChart(
		fmt.Sprintf("Exports to economies in the Arab World in %s", cfg.PieYear),
		"exports", cfg.Groups.Arab, exportShares)
	importPie := NewPieChart(
		fmt.Sprintf("Imports from economies in the Arab World in %s", cfg.PieYear),
		"imports", cfg.Groups.Arab, importShares)

	page := components.NewPage()
	page.PageTitle = cfg.Title
	page.SetLayout(components.PageFlexLayout)
	page.AddCharts(line, bar, exportPie, importPie)

	data := &models.DashboardData{
		Title: cfg.Title,
		Line: models.RegionChart{
			Indicator: cfg.Indicators.Exports,
			Region:    "American",
			Countries: cfg.Groups.American,
			Series:    scaledSeries(cfg.Years, lineValues, lineScale),
		},
		Bar: models.RegionChart{
			Indicator: cfg.Indicators.Imports,
			Region:    "Asian",
			Countries: cfg.Groups.Asian,
			Series:    scaledSeries(cfg.Years, barValues, 1e9),
		},
		Exports: models.PieChart{
			Indicator: cfg.Indicators.ArabExports,
			Year:      cfg.PieYear,
			Kind:      "exports",
			Countries: cfg.Groups.Arab,
			Values:    toPointers(exportShares),
			Shares:    Shares(exportShares),
		},
		Imports: models.PieChart{
			Indicator: cfg.Indicators.ArabImports,
			Year:      cfg.PieYear,
			Kind:      "imports",
			Countries: cfg.Groups.Arab,
			Values:    toPointers(importShares),
			Shares:    Shares(importShares),
		},
	}

	d := &Dashboard{
		Data:     data,
		page:     page,
		charts:   []components.Charter{line, bar, exportPie, importPie},
		title:    cfg.Title,
		captions: cfg.Captions,
	}

	log.Info("dashboard built",
		zap.Int("charts", len(d.charts)),
		zap.Int("table_rows", t.Len()),
		zap.Duration("elapsed", time.Since(start)))
	return d, nil
}

// Charts returns the four composed charts in paint order.
func (d *Dashboard) Charts() []components.Charter { return d.charts }

// Render writes the full dashboard HTML: the chart grid plus the suptitle
// and the two caption blocks.
func (d *Dashboard) Render(w io.Writer) error {
	var buf bytes.Buffer
	if err := d.page.Render(&buf); err != nil {
		return fmt.Errorf("render dashboard: %w", err)
	}
	out := buf.Bytes()
	out = bytes.Replace(out, []byte("<body>"), []byte("<body>\n"+d.suptitle()), 1)
	if bytes.Contains(out, []byte("</body>")) {
		out = bytes.Replace(out, []byte("</body>"), []byte(d.footer()+"</body>"), 1)
	} else {
		out = append(out, d.footer()...)
	}
	_, err := w.Write(out)
	return err
}

// WriteFile renders to memory first, so a failing render never leaves a
// partial file behind.
func (d *Dashboard) WriteFile(path string) error {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func (d *Dashboard) suptitle() string {
	return fmt.Sprintf(
		"<h1 style=\"text-align:center;font-family:sans-serif;font-weight:bold;background-color:%s;margin:0;padding:16px;\">%s</h1>\n",
		backgroundColor, html.EscapeString(d.title))
}

func (d *Dashboard) footer() string {
	var b strings.Builder
	b.WriteString("<div style=\"font-family:sans-serif;background-color:" + backgroundColor + ";padding:16px;\">\n")
	b.WriteString("<div style=\"white-space:pre-wrap;font-weight:bold;max-width:70em;\">")
	b.WriteString(html.EscapeString(d.captions.Narrative))
	b.WriteString("</div>\n")
	b.WriteString("<div style=\"white-space:pre-wrap;font-weight:bold;display:inline-block;margin-top:1em;padding:1em;border:1px solid black;border-radius:8px;background-color:#ADD8E6;\">")
	b.WriteString(html.EscapeString(d.captions.Attribution))
	b.WriteString("</div>\n</div>\n")
	return b.String()
}

func selectYears(t *dataset.Table, indicator string, countries, years []string) ([][]float64, error) {
	out := make([][]float64, len(years))
	for i, year := range years {
		values, err := t.SelectYear(indicator, countries, year)
		if err != nil {
			return nil, err
		}
		out[i] = values
	}
	return out, nil
}

func scaledSeries(years []string, values [][]float64, scale float64) []models.YearSeries {
	series := make([]models.YearSeries, len(years))
	for i, year := range years {
		scaled := make([]float64, len(values[i]))
		for j, v := range values[i] {
			scaled[j] = v / scale
		}
		series[i] = models.YearSeries{Year: year, Values: toPointers(scaled)}
	}
	return series
}

func toPointers(values []float64) []*float64 {
	out := make([]*float64, len(values))
	for i, v := range values {
		if math.IsNaN(v) {
			continue
		}
		v := v
		out[i] = &v
	}
	return out
}
