package charts

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"merchdash/internal/config"
	"merchdash/internal/dataset"
)

// fixtureTable covers the four fixed selections of the dashboard: exports
// over the American group, imports over the Asian group, and the Arab World
// share indicators for the pie year.
func fixtureTable(cfg *config.Config) *dataset.Table {
	cols := []string{"Country", "Series", "2010", "2011", "2012", "2013", "2014", "2015"}
	var rows [][]string
	for _, c := range cfg.Groups.American {
		row := []string{c, cfg.Indicators.Exports, "70000000000", "120000000000", "200000000000", "300000000000", "..", ".."}
		if c == "Canada" {
			row[2] = "387481000000"
			row[5] = "458000000000"
		}
		if c == "Argentina" {
			row[4] = "N/A"
		}
		rows = append(rows, row)
	}
	for _, c := range cfg.Groups.Asian {
		row := []string{c, cfg.Indicators.Imports, "400000000000", "500000000000", "600000000000", "700000000000", "..", ".."}
		if c == "China" {
			row[2] = "1369000000000"
			row[5] = "1950000000000"
		}
		rows = append(rows, row)
	}
	for _, c := range cfg.Groups.Arab {
		rows = append(rows, []string{c, cfg.Indicators.ArabExports, "..", "..", "..", "..", "..", "16.67"})
		rows = append(rows, []string{c, cfg.Indicators.ArabImports, "..", "..", "..", "..", "..", "10.5"})
	}
	return dataset.NewTable(cols, rows)
}

func TestBuild(t *testing.T) {
	cfg := config.Default()
	dash, err := Build(fixtureTable(cfg), cfg, nil)
	require.NoError(t, err)

	assert.Len(t, dash.Charts(), 4)

	// Line values are the raw cell / 10; Canada is index 2 of the group.
	line2010 := dash.Data.Line.Series[0]
	require.Equal(t, "2010", line2010.Year)
	require.NotNil(t, line2010.Values[2])
	assert.InDelta(t, 38748100000.0, *line2010.Values[2], 1)

	// The N/A cell (Argentina, 2012) must come through as null, not zero.
	line2012 := dash.Data.Line.Series[2]
	assert.Nil(t, line2012.Values[4])

	// Bar values are in billions; China is index 0 of the Asian group.
	bar2010 := dash.Data.Bar.Series[0]
	require.NotNil(t, bar2010.Values[0])
	assert.InDelta(t, 1369.0, *bar2010.Values[0], 0.001)

	// Six equal wedges of 16.67 each label as 16.7.
	require.Len(t, dash.Data.Exports.Shares, 6)
	for _, s := range dash.Data.Exports.Shares {
		assert.Equal(t, 16.7, s)
	}
}

func TestBuildMissingCountry(t *testing.T) {
	cfg := config.Default()
	table := fixtureTable(cfg)

	// Drop Brazil's exports row: the build must fail fast with a
	// descriptive error, not fall through to the chart layer.
	var rows [][]string
	for _, row := range table.Rows {
		if row[0] == "Brazil" && row[1] == cfg.Indicators.Exports {
			continue
		}
		rows = append(rows, row)
	}
	_, err := Build(dataset.NewTable(table.Columns, rows), cfg, nil)
	require.Error(t, err)

	var mismatch *dataset.MismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Contains(t, err.Error(), "Brazil")
}

func TestRender(t *testing.T) {
	cfg := config.Default()
	dash, err := Build(fixtureTable(cfg), cfg, nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, dash.Render(&buf))
	html := buf.String()

	assert.Contains(t, html, cfg.Title)
	assert.Contains(t, html, "American Countries")
	assert.Contains(t, html, "Asian Countries")
	assert.Contains(t, html, "Arab World")
	assert.Contains(t, html, "Data Source: World Bank")
}

func TestWriteFile(t *testing.T) {
	cfg := config.Default()
	dash, err := Build(fixtureTable(cfg), cfg, nil)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "dashboard.html")
	require.NoError(t, dash.WriteFile(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "<html")
}

func TestLoadErrorLeavesNothingBehind(t *testing.T) {
	dir := t.TempDir()
	_, err := dataset.Load(filepath.Join(dir, "absent.csv"), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
