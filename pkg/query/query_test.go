package query

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/SumitKSinghDev/india-growth-dashboard/pkg/catalog"
)

func cityIDs(cities []catalog.City) []string {
	ids := make([]string, len(cities))
	for i, c := range cities {
		ids[i] = c.ID
	}
	return ids
}

func TestFilterCities(t *testing.T) {
	cities := catalog.Default().Cities

	tests := []struct {
		term string
		want []string
	}{
		{"", cityIDs(cities)},
		{"   ", cityIDs(cities)},
		{"maha", []string{"mumbai", "pune"}},
		{"MUMBAI", []string{"mumbai"}},
		{"bengal", []string{"kolkata"}},
		{"pradesh", []string{"lucknow"}},
		{"zzz", []string{}},
	}
	for _, tt := range tests {
		got := cityIDs(FilterCities(cities, tt.term))
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("FilterCities(%q) mismatch (-want +got):\n%s", tt.term, diff)
		}
	}
}

func TestFilterMetrics(t *testing.T) {
	metrics := catalog.Default().Metrics

	if got := FilterMetrics(metrics, catalog.CategoryAll, ""); len(got) != len(metrics) {
		t.Errorf("All with empty term = %d metrics, want %d", len(got), len(metrics))
	}

	health := FilterMetrics(metrics, catalog.CategoryHealth, "")
	if len(health) != 5 {
		t.Errorf("Health = %d metrics, want 5", len(health))
	}
	for _, m := range health {
		if m.Category != catalog.CategoryHealth {
			t.Errorf("Health filter returned %s (%s)", m.ID, m.Category)
		}
	}

	// "index" matches names and descriptions across categories.
	social := FilterMetrics(metrics, catalog.CategorySocial, "INDEX")
	var ids []string
	for _, m := range social {
		ids = append(ids, m.ID)
	}
	want := []string{"hdi", "education_index", "gender_inequality"}
	if diff := cmp.Diff(want, ids); diff != "" {
		t.Errorf("Social/index mismatch (-want +got):\n%s", diff)
	}

	// Description match.
	got := FilterMetrics(metrics, catalog.CategoryAll, "unemployed")
	if len(got) != 1 || got[0].ID != "unemployment" {
		t.Errorf("description search = %+v, want unemployment", got)
	}
}

func TestRankDescendingDefault(t *testing.T) {
	cities := []catalog.City{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	values := map[string]float64{"a": 1, "b": 3, "c": 2}

	order, err := ParseOrder("")
	if err != nil {
		t.Fatal(err)
	}
	rows := Rank(cities, func(id string) float64 { return values[id] }, order)

	var got []string
	for i, r := range rows {
		got = append(got, r.CityID)
		if r.Position != i+1 {
			t.Errorf("row %d position = %d", i, r.Position)
		}
	}
	if diff := cmp.Diff([]string{"b", "c", "a"}, got); diff != "" {
		t.Errorf("rank mismatch (-want +got):\n%s", diff)
	}
}

func TestRankStable(t *testing.T) {
	cities := catalog.Default().Cities
	// Every city ties except kolkata.
	value := func(id string) float64 {
		if id == "kolkata" {
			return 5
		}
		return 1
	}

	for _, order := range []Order{Desc, Asc} {
		rows := Rank(cities, value, order)

		var tied []string
		for _, r := range rows {
			if r.CityID != "kolkata" {
				tied = append(tied, r.CityID)
			}
		}
		var want []string
		for _, c := range cities {
			if c.ID != "kolkata" {
				want = append(want, c.ID)
			}
		}
		if diff := cmp.Diff(want, tied); diff != "" {
			t.Errorf("%s: tied cities lost catalog order (-want +got):\n%s", order, diff)
		}

		wantFirst := "kolkata"
		if order == Asc {
			wantFirst = "mumbai"
		}
		if rows[0].CityID != wantFirst {
			t.Errorf("%s: first = %s, want %s", order, rows[0].CityID, wantFirst)
		}
	}
}

func TestParseOrder(t *testing.T) {
	tests := []struct {
		in      string
		want    Order
		wantErr bool
	}{
		{"asc", Asc, false},
		{"ASC", Asc, false},
		{"desc", Desc, false},
		{"", Desc, false},
		{"sideways", "", true},
	}
	for _, tt := range tests {
		got, err := ParseOrder(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseOrder(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseOrder(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTopBottomN(t *testing.T) {
	list := []int{5, 4, 3, 2, 1}

	if diff := cmp.Diff([]int{5, 4, 3}, TopN(list, 3)); diff != "" {
		t.Errorf("TopN mismatch:\n%s", diff)
	}
	if diff := cmp.Diff(list, TopN(list, 10)); diff != "" {
		t.Errorf("TopN over length mismatch:\n%s", diff)
	}
	if got := TopN(list, 0); len(got) != 0 {
		t.Errorf("TopN(0) = %v, want empty", got)
	}
	if diff := cmp.Diff([]int{1, 2, 3}, BottomN(list, 3)); diff != "" {
		t.Errorf("BottomN mismatch:\n%s", diff)
	}
	if got := BottomN(list, -1); len(got) != 0 {
		t.Errorf("BottomN(-1) = %v, want empty", got)
	}
}
