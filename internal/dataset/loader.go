package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Columns dropped during load. The year values are keyed by country and
// series name; the code columns carry nothing the charts need.
const (
	countryCodeHeader = "Country Code"
	seriesCodeHeader  = "Series Code"
)

// Load reads a World Bank merchandise CSV and shapes it for the charts:
// the trailing metadata footer is trimmed, the two code columns are dropped,
// and every remaining header is truncated at its first whitespace token
// ("Country Name" -> "Country", "2010 [YR2010]" -> "2010").
//
// Malformed numeric cells are tolerated here; they surface as NaN when a
// chart selects them.
func Load(path string, log *zap.Logger) (*Table, error) {
	if log == nil {
		log = zap.NewNop()
	}
	start := time.Now()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open data file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // footer rows are ragged
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) < 1 {
		return nil, fmt.Errorf("read %s: no header row", path)
	}

	header := records[0]
	rows := records[1:]

	ccIdx, scIdx := -1, -1
	for i, h := range header {
		switch strings.TrimSpace(h) {
		case countryCodeHeader:
			ccIdx = i
		case seriesCodeHeader:
			scIdx = i
		}
	}
	if ccIdx < 0 || scIdx < 0 {
		return nil, fmt.Errorf("read %s: missing %q/%q columns", path, countryCodeHeader, seriesCodeHeader)
	}

	trimmed := trimFooter(rows, ccIdx, scIdx)

	columns := make([]string, 0, len(header)-2)
	keep := make([]int, 0, len(header)-2)
	for i, h := range header {
		if i == ccIdx || i == scIdx {
			continue
		}
		keep = append(keep, i)
		columns = append(columns, firstToken(h))
	}

	out := make([][]string, len(trimmed))
	for ri, row := range trimmed {
		cells := make([]string, len(keep))
		for ci, src := range keep {
			if src < len(row) {
				cells[ci] = row[src]
			}
		}
		out[ri] = cells
	}

	log.Info("data loaded",
		zap.String("file", path),
		zap.Int("rows", len(out)),
		zap.Int("footer_rows", len(rows)-len(trimmed)),
		zap.Duration("elapsed", time.Since(start)))

	return NewTable(columns, out), nil
}

// trimFooter drops the metadata block World Bank exports append after the
// data: blank rows, "Data from database:" / "Last Updated:" lines, and any
// trailing row without country and series codes. Only trailing rows are
// considered; a gap inside the data is left alone.
func trimFooter(rows [][]string, ccIdx, scIdx int) [][]string {
	end := len(rows)
	for end > 0 && isFooterRow(rows[end-1], ccIdx, scIdx) {
		end--
	}
	return rows[:end]
}

func isFooterRow(row []string, ccIdx, scIdx int) bool {
	blank := true
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			blank = false
			break
		}
	}
	if blank {
		return true
	}
	first := strings.TrimSpace(row[0])
	if strings.HasPrefix(first, "Data from database") || strings.HasPrefix(first, "Last Updated") {
		return true
	}
	if ccIdx >= len(row) || scIdx >= len(row) {
		return true
	}
	return strings.TrimSpace(row[ccIdx]) == "" || strings.TrimSpace(row[scIdx]) == ""
}

func firstToken(header string) string {
	fields := strings.Fields(header)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
