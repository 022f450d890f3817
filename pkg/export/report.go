package export

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
)

// DefaultTitle is used when a report is requested without one.
const DefaultTitle = "India Growth Dashboard Report"

// Report is the comprehensive JSON export of a selection.
type Report struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	GeneratedAt string      `json:"generated_at"`
	Cities      []string    `json:"cities"`
	Metrics     []string    `json:"metrics"`
	Data        []ReportRow `json:"data"`
}

// ReportRow holds one city's values keyed by metric id.
type ReportRow struct {
	CityID  string             `json:"city_id"`
	City    string             `json:"city"`
	State   string             `json:"state"`
	Metrics map[string]float64 `json:"metrics"`
}

// NewReport wraps t in a report stamped with a fresh id and now in RFC 3339.
func NewReport(title string, t Table, now time.Time) Report {
	if title == "" {
		title = DefaultTitle
	}
	r := Report{
		ID:          uuid.NewString(),
		Title:       title,
		GeneratedAt: now.UTC().Format(time.RFC3339),
		Cities:      make([]string, len(t.Rows)),
		Metrics:     []string{},
		Data:        make([]ReportRow, len(t.Rows)),
	}
	if len(t.Header) > len(fixedColumns) {
		r.Metrics = append(r.Metrics, t.Header[len(fixedColumns):]...)
	}
	for i, row := range t.Rows {
		r.Cities[i] = row.City + ", " + row.State
		values := make(map[string]float64, len(t.MetricIDs))
		for j, id := range t.MetricIDs {
			values[id] = row.Values[j]
		}
		r.Data[i] = ReportRow{CityID: row.CityID, City: row.City, State: row.State, Metrics: values}
	}
	return r
}

// WriteJSON writes the report as indented JSON.
func (r Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return nil
}
