package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/SumitKSinghDev/india-growth-dashboard/internal/format"
	"github.com/SumitKSinghDev/india-growth-dashboard/pkg/anomaly"
	"github.com/SumitKSinghDev/india-growth-dashboard/pkg/catalog"
	"github.com/SumitKSinghDev/india-growth-dashboard/pkg/dashboard"
	"github.com/SumitKSinghDev/india-growth-dashboard/pkg/export"
	"github.com/SumitKSinghDev/india-growth-dashboard/pkg/generator"
	"github.com/SumitKSinghDev/india-growth-dashboard/pkg/insights"
	"github.com/SumitKSinghDev/india-growth-dashboard/pkg/query"
	"github.com/SumitKSinghDev/india-growth-dashboard/pkg/validation"
)

func (a *app) print(t *format.Table) {
	fmt.Fprintln(a.out, t.String())
}

func printCities(a *app, cities []catalog.City) {
	t := format.NewTable(a.mode)
	t.Header("ID", "City", "State")
	for _, c := range cities {
		t.Row(c.ID, c.Name, c.State)
	}
	t.Footer("", fmt.Sprintf("%d cities", len(cities)), "")
	a.print(t)
}

func printMetrics(a *app, metrics []catalog.Metric) {
	t := format.NewTable(a.mode)
	t.Header("ID", "Name", "Category", "Unit", "Source")
	t.Columns(format.Column{Number: 2, MaxWidth: 40})
	for _, m := range metrics {
		t.Row(m.ID, m.Name, m.Category, m.Unit, m.Source)
	}
	a.print(t)
}

func printRanking(a *app, m catalog.Metric, rows []query.RankedRow) {
	t := format.NewTable(a.mode)
	t.Title(m.Name)
	t.Header("#", "City", "State", "Value")
	t.Columns(format.Column{Number: 1, Align: format.AlignRight}, format.Column{Number: 4, Align: format.AlignRight})
	for _, r := range rows {
		t.Row(r.Position, r.Name, r.State, format.Value(r.Value, m.Unit))
	}
	a.print(t)
}

func printSeries(a *app, m catalog.Metric, cities []catalog.City, series map[string][]generator.Point, years []int) {
	t := format.NewTable(a.mode)
	t.Title(m.Name + " (" + m.Unit + ")")
	header := []string{"City"}
	for _, y := range years {
		header = append(header, fmt.Sprint(y))
	}
	t.Header(header...)
	for _, c := range cities {
		row := []any{c.Label()}
		for _, p := range series[c.ID] {
			row = append(row, format.Value(p.Value, m.Unit))
		}
		t.Row(row...)
	}
	a.print(t)
}

func printPrediction(a *app, c catalog.City, m catalog.Metric, p dashboard.Prediction) {
	t := format.NewTable(a.mode)
	t.Title(fmt.Sprintf("%s: %s (%s)", c.Label(), m.Name, p.Trend))
	t.Header("Year", "Actual", "Predicted", "Confidence")
	for _, pt := range p.Points {
		actual, predicted := "", ""
		if pt.Actual != nil {
			actual = format.Value(*pt.Actual, m.Unit)
		}
		if pt.Predicted != nil {
			predicted = format.Value(*pt.Predicted, m.Unit)
		}
		t.Row(pt.Year, actual, predicted, format.Percent(pt.Confidence))
	}
	t.Footer("slope", format.Signed(p.Line.Slope), "r²", fmt.Sprintf("%.3f", p.RSquared))
	a.print(t)
}

func printAnomalies(a *app, found []anomaly.Anomaly) {
	sum := anomaly.Summarize(found)
	if sum.Total == 0 {
		fmt.Fprintln(a.out, "No anomalies detected.")
		return
	}

	cat := a.store.Catalog()
	t := format.NewTable(a.mode)
	t.Header("Severity", "Type", "City", "Metric", "Value", "Expected", "Description")
	t.Columns(format.Column{Number: 7, MaxWidth: 45})
	for _, an := range found {
		c, _ := cat.City(an.CityID)
		m, _ := cat.Metric(an.MetricID)
		t.Row(
			strings.ToUpper(string(an.Severity)),
			an.Type,
			c.Label(),
			m.Name,
			format.Value(an.Value, m.Unit),
			fmt.Sprintf("%.2f to %.2f", an.ExpectedRange[0], an.ExpectedRange[1]),
			an.Description,
		)
	}
	a.print(t)
	fmt.Fprintf(a.out, "%d anomalies: %d high, %d medium, %d low\n", sum.Total, sum.High, sum.Medium, sum.Low)
}

func printBoard(a *app, title, unit string, rows []query.RankedRow) {
	t := format.NewTable(a.mode)
	t.Title(title)
	t.Header("#", "City", "Score")
	for i, r := range rows {
		value := fmt.Sprintf("%.2f", r.Value)
		if unit != "" {
			value = format.Value(r.Value, unit)
		}
		t.Row(i+1, r.Name+", "+r.State, value)
	}
	a.print(t)
}

func printInsights(a *app, p insights.Panel) {
	lb := p.Leaderboards
	printBoard(a, "Top cities by HDI", "Index (0-1)", lb.TopHDI)
	printBoard(a, "Highest inequality (Gini)", "Index (0-1)", lb.HighestInequality)
	printBoard(a, "Best healthcare", "", lb.BestHealthcare)
	printBoard(a, "Environmental leaders", "", lb.EnvironmentalLeaders)
	printBoard(a, "Environmental laggards", "", lb.EnvironmentalLaggards)

	cat := a.store.Catalog()
	if len(p.Recommendations) > 0 {
		t := format.NewTable(a.mode)
		t.Title("Policy recommendations")
		t.Header("Priority", "City", "Category", "Issue", "Recommendation")
		t.Columns(format.Column{Number: 5, MaxWidth: 50})
		for _, pr := range []insights.Priority{insights.PriorityHigh, insights.PriorityMedium, insights.PriorityLow} {
			for _, r := range insights.ByPriority(p.Recommendations, pr, 0) {
				c, _ := cat.City(r.CityID)
				t.Row(strings.ToUpper(string(r.Priority)), c.Label(), r.Category, r.Issue, r.Recommendation)
			}
		}
		a.print(t)
	}

	if len(p.Clusters) > 0 {
		t := format.NewTable(a.mode)
		t.Title("City clusters")
		t.Header("Cluster", "Cities", "Characteristics")
		t.Columns(format.Column{Number: 3, MaxWidth: 50})
		for _, cl := range p.Clusters {
			t.Row(cl.Name, strings.Join(cl.Cities, ", "), strings.Join(cl.Characteristics, "; "))
		}
		a.print(t)
	}

	for _, s := range p.Stories {
		c, _ := cat.City(s.CityID)
		fmt.Fprintf(a.out, "* %s (%s): %s\n", c.Label(), s.Category, s.Story)
	}
}

func printScenarioList(a *app, scenarios []catalog.Scenario) {
	t := format.NewTable(a.mode)
	t.Header("Scenario", "Description", "Impact")
	for _, s := range scenarios {
		var parts []string
		for _, id := range sortedKeys(s.Impact) {
			parts = append(parts, fmt.Sprintf("%s %+.0f%%", id, s.Impact[id]))
		}
		t.Row(s.Name, s.Description, strings.Join(parts, ", "))
	}
	a.print(t)
}

func printProjections(a *app, name string, proj []insights.Projection) {
	cat := a.store.Catalog()
	t := format.NewTable(a.mode)
	t.Title(name)
	t.Header("City", "Metric", "Current", "Projected", "Change")
	for _, p := range proj {
		c, _ := cat.City(p.CityID)
		m, _ := cat.Metric(p.MetricID)
		t.Row(c.Label(), m.Name, format.Value(p.Current, m.Unit), format.Value(p.Projected, m.Unit), fmt.Sprintf("%+.0f%%", p.ChangePct))
	}
	a.print(t)
}

// shades maps intensity to a five-step block ramp.
var shades = []string{"░", "▒", "▓", "█", "█"}

func printHeatmap(a *app, h dashboard.Heatmap) {
	t := format.NewTable(a.mode)
	header := []string{"City"}
	for _, m := range h.Metrics {
		header = append(header, format.Truncate(m.Name, 18))
	}
	t.Header(header...)
	for i, c := range h.Cities {
		row := []any{c.Label()}
		for j, m := range h.Metrics {
			cell := h.Cells[i][j]
			shade := shades[int(cell.Intensity*float64(len(shades)-1))]
			row = append(row, shade+" "+format.Value(cell.Value, m.Unit))
		}
		t.Row(row...)
	}
	a.print(t)
}

func printCorrelation(a *app, x, y catalog.Metric, c dashboard.Correlation) {
	t := format.NewTable(a.mode)
	t.Title(fmt.Sprintf("%s vs %s", x.Name, y.Name))
	t.Header("City", x.Name, y.Name)
	for _, p := range c.Points {
		t.Row(p.Label, format.Value(p.X, x.Unit), format.Value(p.Y, y.Unit))
	}
	t.Footer("Pearson r", fmt.Sprintf("%.3f", c.R), "")
	a.print(t)
}

func printExportTable(a *app, tbl export.Table) {
	t := format.NewTable(a.mode)
	t.Header(tbl.Header...)
	for _, r := range tbl.Rows {
		row := []any{r.CityID, r.City, r.State}
		for _, v := range r.Values {
			row = append(row, v)
		}
		t.Row(row...)
	}
	a.print(t)
}

func printValidationReport(w io.Writer, r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Fprintf(w, "ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			printResult(w, e)
			if e.ConflictWith != "" {
				fmt.Fprintf(w, "    conflicts with: %s\n", e.ConflictWith)
			}
		}
		fmt.Fprintln(w)
	}

	if len(r.Warnings) > 0 {
		fmt.Fprintf(w, "WARNINGS (%d):\n", len(r.Warnings))
		for _, res := range r.Warnings {
			printResult(w, res)
		}
		fmt.Fprintln(w)
	}

	if len(r.Info) > 0 {
		fmt.Fprintf(w, "INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Fprintf(w, "  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Fprintln(w)
	}

	summary := r.Summary
	if summary == "" {
		summary = "0 errors, 0 warnings, 0 info"
	}
	if r.Valid {
		fmt.Fprintf(w, "Result: VALID (%s)\n", summary)
	} else {
		fmt.Fprintf(w, "Result: INVALID (%s)\n", summary)
	}
}

func printResult(w io.Writer, res validation.Result) {
	fmt.Fprintf(w, "  [%s] %s\n", res.Level, res.Message)
	if res.Path != "" {
		if res.ActualValue != nil {
			fmt.Fprintf(w, "    -> %s = %v\n", res.Path, res.ActualValue)
		} else {
			fmt.Fprintf(w, "    -> %s\n", res.Path)
		}
	}
	if res.Expected != "" {
		fmt.Fprintf(w, "    expected: %s\n", res.Expected)
	}
	for _, s := range res.Suggestions {
		fmt.Fprintf(w, "    * %s\n", s)
	}
}
