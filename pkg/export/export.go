// Package export turns dashboard selections into CSV files and JSON reports.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/SumitKSinghDev/india-growth-dashboard/pkg/catalog"
)

// Fixed leading columns of every export.
var fixedColumns = []string{"city_id", "City", "State"}

var (
	// ErrBadHeader is returned when a CSV header does not start with the
	// fixed columns or names an unknown metric.
	ErrBadHeader = errors.New("export: bad header")
	// ErrBadRow is returned for a CSV row of the wrong width or with a
	// non-numeric value.
	ErrBadRow = errors.New("export: bad row")
)

// Row is one city's line in an export.
type Row struct {
	CityID string
	City   string
	State  string
	Values []float64 // parallel to Table.MetricIDs
}

// Table is a city × metric selection ready to be written.
type Table struct {
	MetricIDs []string
	Header    []string
	Rows      []Row
}

// ValueFunc returns a city's value for a metric, 0 when missing.
type ValueFunc func(cityID, metricID string) float64

// NewTable builds a table of value for every city and metric, in the given
// order.
func NewTable(cities []catalog.City, metrics []catalog.Metric, value ValueFunc) Table {
	t := Table{
		MetricIDs: make([]string, len(metrics)),
		Header:    append([]string(nil), fixedColumns...),
		Rows:      make([]Row, len(cities)),
	}
	for i, m := range metrics {
		t.MetricIDs[i] = m.ID
		t.Header = append(t.Header, m.Name)
	}
	for i, c := range cities {
		row := Row{CityID: c.ID, City: c.Name, State: c.State, Values: make([]float64, len(metrics))}
		for j, m := range metrics {
			row.Values[j] = value(c.ID, m.ID)
		}
		t.Rows[i] = row
	}
	return t
}

// Value returns the exported value for a city and metric.
func (t Table) Value(cityID, metricID string) (float64, bool) {
	col := -1
	for i, id := range t.MetricIDs {
		if id == metricID {
			col = i
			break
		}
	}
	if col < 0 {
		return 0, false
	}
	for _, r := range t.Rows {
		if r.CityID == cityID {
			return r.Values[col], true
		}
	}
	return 0, false
}

// WriteCSV writes the header and rows. Values are written with the
// shortest representation that parses back to the same float64.
func WriteCSV(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, r := range t.Rows {
		rec := make([]string, 0, len(fixedColumns)+len(r.Values))
		rec = append(rec, r.CityID, r.City, r.State)
		for _, v := range r.Values {
			rec = append(rec, strconv.FormatFloat(v, 'f', -1, 64))
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("writing row %s: %w", r.CityID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV parses a file written by WriteCSV. Metric names in the header are
// resolved back to ids through metrics.
func ReadCSV(r io.Reader, metrics []catalog.Metric) (Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return Table{}, fmt.Errorf("reading csv: %w", err)
	}
	if len(records) == 0 {
		return Table{}, fmt.Errorf("%w: empty file", ErrBadHeader)
	}

	header := records[0]
	if len(header) < len(fixedColumns) {
		return Table{}, fmt.Errorf("%w: %d columns", ErrBadHeader, len(header))
	}
	for i, col := range fixedColumns {
		if header[i] != col {
			return Table{}, fmt.Errorf("%w: column %d is %q, want %q", ErrBadHeader, i+1, header[i], col)
		}
	}

	byName := make(map[string]string, len(metrics))
	for _, m := range metrics {
		byName[m.Name] = m.ID
	}

	t := Table{Header: header}
	for _, name := range header[len(fixedColumns):] {
		id, ok := byName[name]
		if !ok {
			return Table{}, fmt.Errorf("%w: unknown metric %q", ErrBadHeader, name)
		}
		t.MetricIDs = append(t.MetricIDs, id)
	}

	for n, rec := range records[1:] {
		if len(rec) != len(header) {
			return Table{}, fmt.Errorf("%w: line %d has %d fields, want %d", ErrBadRow, n+2, len(rec), len(header))
		}
		row := Row{CityID: rec[0], City: rec[1], State: rec[2], Values: make([]float64, len(t.MetricIDs))}
		for i, s := range rec[len(fixedColumns):] {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return Table{}, fmt.Errorf("%w: line %d column %q: %v", ErrBadRow, n+2, header[len(fixedColumns)+i], err)
			}
			row.Values[i] = v
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// Filename is the default CSV download name for day now.
func Filename(now time.Time) string {
	return "india_growth_data_" + now.Format("2006-01-02") + ".csv"
}
