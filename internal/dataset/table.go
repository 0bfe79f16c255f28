package dataset

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Table is the loaded merchandise data: shared header plus string cells.
// Cells stay strings until a chart asks for a year column; numeric coercion
// happens in SelectYear. A Table is read-only after Load.
type Table struct {
	Columns []string
	Rows    [][]string

	index map[string]int
}

func NewTable(columns []string, rows [][]string) *Table {
	index := make(map[string]int, len(columns))
	for i, c := range columns {
		index[c] = i
	}
	return &Table{Columns: columns, Rows: rows, index: index}
}

func (t *Table) Len() int { return len(t.Rows) }

// Col returns the index of a named column.
func (t *Table) Col(name string) (int, bool) {
	i, ok := t.index[name]
	return i, ok
}

// MismatchError reports a selection that did not line up one-to-one with the
// requested country list. It replaces the dimension error a chart call would
// otherwise blow up with.
type MismatchError struct {
	Indicator  string
	Year       string
	Missing    []string
	Duplicated []string
}

func (e *MismatchError) Error() string {
	if len(e.Duplicated) > 0 {
		return fmt.Sprintf("select %q (%s): duplicate rows for %s",
			e.Indicator, e.Year, strings.Join(e.Duplicated, ", "))
	}
	return fmt.Sprintf("select %q (%s): no row for %s",
		e.Indicator, e.Year, strings.Join(e.Missing, ", "))
}

// ParseValue coerces one cell to a float64. Non-numeric cells (the World
// Bank export uses ".." and "N/A") come back as NaN rather than an error.
func ParseValue(cell string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// SelectYear picks the rows whose Series equals indicator and whose Country
// is in countries, and returns the year column as numbers in country-list
// order. Every country must match exactly one row; anything else is a
// *MismatchError.
func (t *Table) SelectYear(indicator string, countries []string, year string) ([]float64, error) {
	yearCol, ok := t.Col(year)
	if !ok {
		return nil, fmt.Errorf("select %q: no %q column in table", indicator, year)
	}
	countryCol, ok := t.Col("Country")
	if !ok {
		return nil, fmt.Errorf("select %q: no Country column in table", indicator)
	}
	seriesCol, ok := t.Col("Series")
	if !ok {
		return nil, fmt.Errorf("select %q: no Series column in table", indicator)
	}

	matched := make(map[string]int, len(countries))
	for _, c := range countries {
		matched[c] = -1
	}

	var duplicated []string
	for i, row := range t.Rows {
		if row[seriesCol] != indicator {
			continue
		}
		country := row[countryCol]
		prev, wanted := matched[country]
		if !wanted {
			continue
		}
		if prev >= 0 {
			duplicated = append(duplicated, country)
			continue
		}
		matched[country] = i
	}

	var missing []string
	for _, c := range countries {
		if matched[c] < 0 {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 || len(duplicated) > 0 {
		return nil, &MismatchError{Indicator: indicator, Year: year, Missing: missing, Duplicated: duplicated}
	}

	values := make([]float64, len(countries))
	for i, c := range countries {
		values[i] = ParseValue(t.Rows[matched[c]][yearCol])
	}
	return values, nil
}
