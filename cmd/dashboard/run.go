package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/SumitKSinghDev/india-growth-dashboard/internal/config"
	"github.com/SumitKSinghDev/india-growth-dashboard/internal/format"
	"github.com/SumitKSinghDev/india-growth-dashboard/internal/logging"
	"github.com/SumitKSinghDev/india-growth-dashboard/pkg/anomaly"
	"github.com/SumitKSinghDev/india-growth-dashboard/pkg/catalog"
	"github.com/SumitKSinghDev/india-growth-dashboard/pkg/dashboard"
	"github.com/SumitKSinghDev/india-growth-dashboard/pkg/export"
	"github.com/SumitKSinghDev/india-growth-dashboard/pkg/generator"
	"github.com/SumitKSinghDev/india-growth-dashboard/pkg/query"
	"github.com/SumitKSinghDev/india-growth-dashboard/pkg/validation"
)

var errInvalid = errors.New("validation failed")

// globalOptions holds the persistent flags and the environment built from
// them before any subcommand runs.
type globalOptions struct {
	configPath  string
	catalogPath string
	seed        int64
	logLevel    string
	logFormat   string
	markdown    bool
	json        bool

	env *app
}

// app is what every subcommand runs against.
type app struct {
	cfg   config.Config
	store *dashboard.Store
	mode  format.Mode
	json  bool
	out   io.Writer
}

func (o *globalOptions) resolve(cmd *cobra.Command) error {
	cfg := config.Default()
	if o.configPath != "" {
		loaded, err := config.Load(o.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = o.seed
	}
	if flags.Changed("catalog") {
		cfg.Catalog = o.catalogPath
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	if o.logFormat != "" {
		cfg.Log.Format = o.logFormat
	}
	if o.markdown {
		cfg.Output = "markdown"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, _ := logging.ParseLevel(cfg.Log.Level)
	logging.Init(level, cfg.Log.Format, cmd.ErrOrStderr())

	cat := catalog.Default()
	if cfg.Catalog != "" {
		loaded, err := catalog.Load(cfg.Catalog)
		if err != nil {
			return err
		}
		cat = loaded
	}

	gen := generator.NewUnseeded()
	if cfg.Seed != 0 {
		gen = generator.NewSeeded(cfg.Seed)
	}
	store := dashboard.New(cat, gen, dashboard.WithYears(cfg.YearList()))
	store.Load()

	mode, _ := format.ParseMode(cfg.Output)
	o.env = &app{cfg: cfg, store: store, mode: mode, json: o.json}
	return nil
}

func (o *globalOptions) app(cmd *cobra.Command) *app {
	a := *o.env
	a.out = cmd.OutOrStdout()
	return &a
}

func (a *app) writeJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (a *app) metric(id string) (catalog.Metric, error) {
	m, ok := a.store.Catalog().Metric(id)
	if !ok {
		return catalog.Metric{}, fmt.Errorf("unknown metric %q (see 'dashboard metrics')", id)
	}
	return m, nil
}

func (a *app) city(id string) (catalog.City, error) {
	c, ok := a.store.Catalog().City(id)
	if !ok {
		return catalog.City{}, fmt.Errorf("unknown city %q (see 'dashboard cities')", id)
	}
	return c, nil
}

func runCities(a *app, search string) error {
	cities := query.FilterCities(a.store.Cities(), search)
	if a.json {
		return a.writeJSON(cities)
	}
	printCities(a, cities)
	return nil
}

func runMetrics(a *app, category, search string) error {
	cat := catalog.Category(category)
	if !cat.Valid() && cat != catalog.CategoryAll {
		return fmt.Errorf("unknown category %q", category)
	}
	metrics := query.FilterMetrics(a.store.Metrics(), cat, search)
	if a.json {
		return a.writeJSON(metrics)
	}
	printMetrics(a, metrics)
	return nil
}

func runRank(a *app, metricID, order string, top int) error {
	m, err := a.metric(metricID)
	if err != nil {
		return err
	}
	o, err := query.ParseOrder(order)
	if err != nil {
		return err
	}
	rows := a.store.Rank(metricID, o)
	if top > 0 {
		rows = query.TopN(rows, top)
	}
	if a.json {
		return a.writeJSON(rows)
	}
	printRanking(a, m, rows)
	return nil
}

func runSeries(a *app, metricID string, cityIDs []string) error {
	m, err := a.metric(metricID)
	if err != nil {
		return err
	}
	cities := make([]catalog.City, 0, len(cityIDs))
	series := make(map[string][]generator.Point, len(cityIDs))
	for _, id := range cityIDs {
		c, err := a.city(id)
		if err != nil {
			return err
		}
		cities = append(cities, c)
		series[id] = a.store.Series(id, metricID)
	}
	if a.json {
		return a.writeJSON(series)
	}
	printSeries(a, m, cities, series, a.store.Years())
	return nil
}

func runPredict(a *app, metricID string, cityIDs []string, horizon int) error {
	m, err := a.metric(metricID)
	if err != nil {
		return err
	}
	var predictions []dashboard.Prediction
	for _, id := range cityIDs {
		c, err := a.city(id)
		if err != nil {
			return err
		}
		p, ok := a.store.Predict(id, metricID, horizon)
		if !ok {
			fmt.Fprintf(a.out, "%s: not enough data to predict %s (need %d years)\n",
				c.Label(), m.Name, dashboard.MinPredictionPoints)
			continue
		}
		predictions = append(predictions, p)
	}
	if a.json {
		return a.writeJSON(predictions)
	}
	for _, p := range predictions {
		c, _ := a.store.Catalog().City(p.CityID)
		printPrediction(a, c, m, p)
	}
	return nil
}

func runAnomalies(a *app, severity string) error {
	found := a.store.DetectAnomalies()
	if severity != "" {
		sev := anomaly.Severity(severity)
		kept := found[:0]
		for _, an := range found {
			if an.Severity == sev {
				kept = append(kept, an)
			}
		}
		found = kept
	}
	if a.json {
		return a.writeJSON(struct {
			Summary   anomaly.Summary   `json:"summary"`
			Anomalies []anomaly.Anomaly `json:"anomalies"`
		}{anomaly.Summarize(found), found})
	}
	printAnomalies(a, found)
	return nil
}

func runInsights(a *app) error {
	panel := a.store.Insights()
	if a.json {
		return a.writeJSON(panel)
	}
	printInsights(a, panel)
	return nil
}

func runScenario(a *app, name string) error {
	if name == "" {
		scenarios := a.store.Catalog().Scenarios
		if a.json {
			return a.writeJSON(scenarios)
		}
		printScenarioList(a, scenarios)
		return nil
	}
	proj, ok := a.store.ApplyScenario(name)
	if !ok {
		return fmt.Errorf("unknown scenario %q", name)
	}
	if a.json {
		return a.writeJSON(proj)
	}
	printProjections(a, name, proj)
	return nil
}

func runHeatmap(a *app, cities, metrics []string) error {
	h := a.store.Heatmap(cities, metrics)
	if a.json {
		return a.writeJSON(h)
	}
	printHeatmap(a, h)
	return nil
}

func runCorrelate(a *app, mx, my string, cities []string) error {
	x, err := a.metric(mx)
	if err != nil {
		return err
	}
	y, err := a.metric(my)
	if err != nil {
		return err
	}
	c := a.store.Correlation(mx, my, cities)
	if a.json {
		return a.writeJSON(c)
	}
	printCorrelation(a, x, y, c)
	return nil
}

type exportOptions struct {
	cities  []string
	metrics []string
	format  string
	title   string
	out     string
}

func runExport(a *app, e exportOptions) error {
	tbl := a.store.ExportRows(e.cities, e.metrics)

	w := a.out
	if e.out != "" {
		f, err := os.Create(e.out)
		if err != nil {
			return fmt.Errorf("creating export file: %w", err)
		}
		defer f.Close()
		w = f
	}

	log := logging.New("export")
	switch e.format {
	case "csv":
		if err := export.WriteCSV(w, tbl); err != nil {
			return err
		}
	case "json":
		if err := export.NewReport(e.title, tbl, time.Now()).WriteJSON(w); err != nil {
			return err
		}
	case "table":
		printExportTable(&app{mode: a.mode, out: w}, tbl)
	default:
		return fmt.Errorf("unknown export format %q (want csv, json or table)", e.format)
	}
	log.Info("export written",
		"format", e.format,
		"cities", len(tbl.Rows),
		"metrics", len(tbl.MetricIDs),
		"file", e.out,
	)
	return nil
}

func runValidate(a *app) error {
	cat := a.store.Catalog()
	report := validation.ValidateCatalog(cat)
	report.Merge(validation.ValidateValues(cat, a.store.Lookup))

	if a.json {
		if err := a.writeJSON(report); err != nil {
			return err
		}
	} else {
		printValidationReport(a.out, report)
	}
	if !report.Valid {
		return errInvalid
	}
	return nil
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
