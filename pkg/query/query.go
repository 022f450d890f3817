// Package query filters and orders catalog data for display.
package query

import (
	"fmt"
	"sort"
	"strings"

	"github.com/SumitKSinghDev/india-growth-dashboard/pkg/catalog"
)

// Order is a ranking direction.
type Order string

const (
	Desc Order = "desc"
	Asc  Order = "asc"
)

// ParseOrder accepts "asc" or "desc" in any case. An empty string means Desc.
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "desc":
		return Desc, nil
	case "asc":
		return Asc, nil
	default:
		return "", fmt.Errorf("unknown sort order %q (want asc or desc)", s)
	}
}

// FilterCities keeps cities whose name or state contains term,
// ignoring case. An empty term returns cities unchanged.
func FilterCities(cities []catalog.City, term string) []catalog.City {
	term = normalize(term)
	if term == "" {
		return cities
	}
	out := make([]catalog.City, 0, len(cities))
	for _, c := range cities {
		if contains(c.Name, term) || contains(c.State, term) {
			out = append(out, c)
		}
	}
	return out
}

// FilterMetrics keeps metrics in category (CategoryAll keeps every
// category) whose name or description contains term, ignoring case.
func FilterMetrics(metrics []catalog.Metric, category catalog.Category, term string) []catalog.Metric {
	term = normalize(term)
	out := make([]catalog.Metric, 0, len(metrics))
	for _, m := range metrics {
		if category != catalog.CategoryAll && category != "" && m.Category != category {
			continue
		}
		if term != "" && !contains(m.Name, term) && !contains(m.Description, term) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// RankedRow is one city's position in a metric ranking.
type RankedRow struct {
	Position int     `json:"position"`
	CityID   string  `json:"city_id"`
	Name     string  `json:"name"`
	State    string  `json:"state"`
	Value    float64 `json:"value"`
}

// ValueFunc returns a city's value for the metric being ranked.
type ValueFunc func(cityID string) float64

// Rank orders cities by value. The sort is stable: cities with equal values
// keep their input order. Positions start at 1.
func Rank(cities []catalog.City, value ValueFunc, order Order) []RankedRow {
	rows := make([]RankedRow, len(cities))
	for i, c := range cities {
		rows[i] = RankedRow{
			CityID: c.ID,
			Name:   c.Name,
			State:  c.State,
			Value:  value(c.ID),
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if order == Asc {
			return rows[i].Value < rows[j].Value
		}
		return rows[i].Value > rows[j].Value
	})

	for i := range rows {
		rows[i].Position = i + 1
	}
	return rows
}

// TopN returns the first n items of list. n larger than the list returns
// the whole list; n <= 0 returns an empty slice.
func TopN[T any](list []T, n int) []T {
	if n <= 0 {
		return []T{}
	}
	if n > len(list) {
		n = len(list)
	}
	return list[:n]
}

// BottomN returns the last n items of list, last item first.
func BottomN[T any](list []T, n int) []T {
	if n <= 0 {
		return []T{}
	}
	if n > len(list) {
		n = len(list)
	}
	out := make([]T, n)
	for i := 0; i < n; i++ {
		out[i] = list[len(list)-1-i]
	}
	return out
}

func normalize(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}

func contains(s, lowerTerm string) bool {
	return strings.Contains(strings.ToLower(s), lowerTerm)
}
