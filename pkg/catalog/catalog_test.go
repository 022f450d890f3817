package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	c := Default()

	if len(c.Cities) != 10 {
		t.Errorf("cities = %d, want 10", len(c.Cities))
	}
	if len(c.Metrics) != 34 {
		t.Errorf("metrics = %d, want 34", len(c.Metrics))
	}
	if c.Cities[0].ID != "mumbai" {
		t.Errorf("first city = %q, want mumbai", c.Cities[0].ID)
	}

	perCategory := map[Category]int{}
	for _, m := range c.Metrics {
		if !m.Category.Valid() {
			t.Errorf("metric %s has unknown category %q", m.ID, m.Category)
		}
		perCategory[m.Category]++
	}
	want := map[Category]int{
		CategoryEconomic:    8,
		CategorySocial:      8,
		CategoryHealth:      5,
		CategoryEnvironment: 5,
		CategoryGovernance:  5,
		CategoryEquality:    3,
	}
	for cat, n := range want {
		if perCategory[cat] != n {
			t.Errorf("%s metrics = %d, want %d", cat, perCategory[cat], n)
		}
	}

	if len(c.Clusters) != 6 {
		t.Errorf("clusters = %d, want 6", len(c.Clusters))
	}
	if len(c.Stories) != 3 {
		t.Errorf("success stories = %d, want 3", len(c.Stories))
	}
	if s, ok := c.Scenario("Healthcare Boost"); !ok {
		t.Error("missing Healthcare Boost scenario")
	} else if s.Impact["healthcare_expenditure"] != 30 {
		t.Errorf("healthcare_expenditure impact = %v, want 30", s.Impact["healthcare_expenditure"])
	}
}

func TestDefaultReturnsCopy(t *testing.T) {
	a := Default()
	a.Cities[0].Name = "changed"

	b := Default()
	if b.Cities[0].Name != "Mumbai" {
		t.Errorf("Default shared state across calls: got %q", b.Cities[0].Name)
	}
}

func TestLookup(t *testing.T) {
	c := Default()

	city, ok := c.City("pune")
	if !ok || city.State != "Maharashtra" {
		t.Errorf("City(pune) = %+v, %v", city, ok)
	}
	if city.Label() != "Pune, Maharashtra" {
		t.Errorf("Label = %q", city.Label())
	}
	if _, ok := c.City("atlantis"); ok {
		t.Error("City(atlantis) should not be found")
	}

	m, ok := c.Metric("hdi")
	if !ok || m.Category != CategorySocial {
		t.Errorf("Metric(hdi) = %+v, %v", m, ok)
	}
	if _, ok := c.Metric("nope"); ok {
		t.Error("Metric(nope) should not be found")
	}
}

func TestBoundForUnit(t *testing.T) {
	tests := []struct {
		unit    string
		bounded bool
		min     float64
		max     float64
	}{
		{"%", true, 0, 100},
		{"% of GDP", true, 0, 100},
		{"Index (0-1)", true, 0, 1},
		{"Index (0-100)", true, 0, 100},
		{"Index (1-7)", false, 0, 0},
		{"Index (-2.5 to 2.5)", false, 0, 0},
		{"INR Crores", false, 0, 0},
		{"tons per capita", false, 0, 0},
	}
	for _, tt := range tests {
		b := BoundForUnit(tt.unit)
		if b.Bounded != tt.bounded {
			t.Errorf("%q bounded = %v, want %v", tt.unit, b.Bounded, tt.bounded)
			continue
		}
		if tt.bounded && (b.Min != tt.min || b.Max != tt.max) {
			t.Errorf("%q = [%v,%v], want [%v,%v]", tt.unit, b.Min, b.Max, tt.min, tt.max)
		}
	}
}

func TestBoundClamp(t *testing.T) {
	pct := BoundForUnit("%")
	if got := pct.Clamp(120); got != 100 {
		t.Errorf("Clamp(120) = %v, want 100", got)
	}
	if got := pct.Clamp(-3); got != 0 {
		t.Errorf("Clamp(-3) = %v, want 0", got)
	}
	if !pct.Contains(42) || pct.Contains(101) {
		t.Error("Contains disagrees with [0,100]")
	}

	free := BoundForUnit("Years")
	if got := free.Clamp(1e9); got != 1e9 {
		t.Errorf("unbounded Clamp changed value: %v", got)
	}
}

func TestLoadProject(t *testing.T) {
	dir := t.TempDir()
	data := []byte(`version: "test"
cities:
  - { id: x, name: Xville, state: Nowhere }
metrics:
  - id: m
    name: Metric M
    category: Health
    unit: "%"
`)
	if err := os.WriteFile(filepath.Join(dir, "catalog.yaml"), data, 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadProject(dir)
	if err != nil {
		t.Fatalf("LoadProject failed: %v", err)
	}
	if c.Version != "test" || len(c.Cities) != 1 || len(c.Metrics) != 1 {
		t.Errorf("unexpected catalog: %+v", c)
	}
	if c.Metrics[0].Bound().Max != 100 {
		t.Errorf("metric bound = %+v, want percent", c.Metrics[0].Bound())
	}
}

func TestLoadProjectMissing(t *testing.T) {
	_, err := LoadProject("/nonexistent/path")
	if err == nil {
		t.Error("expected error for missing project directory")
	}
}

func TestParseInvalid(t *testing.T) {
	if _, err := Parse([]byte("cities: [unterminated")); err == nil {
		t.Error("expected error for malformed YAML")
	}
}
