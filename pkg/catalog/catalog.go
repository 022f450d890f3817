package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Default returns the built-in catalog of ten Indian cities and 34 metrics.
// Each call returns a fresh copy.
func Default() *Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog is invalid: %v", err))
	}
	return c
}

// Parse decodes a catalog from YAML.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing catalog YAML: %w", err)
	}
	return &c, nil
}

// Load reads a catalog from a YAML file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}
	return Parse(data)
}

// LoadProject loads a catalog from a project directory.
// It looks for catalog.yaml in the given directory.
func LoadProject(projectDir string) (*Catalog, error) {
	return Load(filepath.Join(projectDir, "catalog.yaml"))
}

// City returns the city with the given id, or false if unknown.
func (c *Catalog) City(id string) (City, bool) {
	for _, city := range c.Cities {
		if city.ID == id {
			return city, true
		}
	}
	return City{}, false
}

// Metric returns the metric with the given id, or false if unknown.
func (c *Catalog) Metric(id string) (Metric, bool) {
	for _, m := range c.Metrics {
		if m.ID == id {
			return m, true
		}
	}
	return Metric{}, false
}

// CityIDs returns the city ids in catalog order.
func (c *Catalog) CityIDs() []string {
	ids := make([]string, len(c.Cities))
	for i, city := range c.Cities {
		ids[i] = city.ID
	}
	return ids
}

// MetricIDs returns the metric ids in catalog order.
func (c *Catalog) MetricIDs() []string {
	ids := make([]string, len(c.Metrics))
	for i, m := range c.Metrics {
		ids[i] = m.ID
	}
	return ids
}

// Scenario returns the scenario with the given name, or false if unknown.
func (c *Catalog) Scenario(name string) (Scenario, bool) {
	for _, s := range c.Scenarios {
		if s.Name == name {
			return s, true
		}
	}
	return Scenario{}, false
}
