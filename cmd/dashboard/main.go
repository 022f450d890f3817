package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts globalOptions

	rootCmd := &cobra.Command{
		Use:          "dashboard",
		Short:        "Synthetic socio-economic indicators for Indian cities",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.resolve(cmd)
		},
	}

	f := rootCmd.PersistentFlags()
	f.StringVarP(&opts.configPath, "config", "c", "", "YAML config file")
	f.StringVar(&opts.catalogPath, "catalog", "", "catalog YAML (default: built-in)")
	f.Int64Var(&opts.seed, "seed", 0, "generator seed (0 = random)")
	f.StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error")
	f.StringVar(&opts.logFormat, "log-format", "", "text or json")
	f.BoolVar(&opts.markdown, "markdown", false, "render tables as Markdown")
	f.BoolVar(&opts.json, "json", false, "print JSON instead of tables")

	rootCmd.AddCommand(citiesCmd(&opts))
	rootCmd.AddCommand(metricsCmd(&opts))
	rootCmd.AddCommand(rankCmd(&opts))
	rootCmd.AddCommand(seriesCmd(&opts))
	rootCmd.AddCommand(predictCmd(&opts))
	rootCmd.AddCommand(anomaliesCmd(&opts))
	rootCmd.AddCommand(insightsCmd(&opts))
	rootCmd.AddCommand(scenarioCmd(&opts))
	rootCmd.AddCommand(heatmapCmd(&opts))
	rootCmd.AddCommand(correlateCmd(&opts))
	rootCmd.AddCommand(exportCmd(&opts))
	rootCmd.AddCommand(validateCmd(&opts))

	return rootCmd
}

func citiesCmd(opts *globalOptions) *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "cities",
		Short: "List cities, optionally filtered by name or state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCities(opts.app(cmd), search)
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "case-insensitive name or state filter")
	return cmd
}

func metricsCmd(opts *globalOptions) *cobra.Command {
	var search, category string

	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "List metrics by category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMetrics(opts.app(cmd), category, search)
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "case-insensitive name or description filter")
	cmd.Flags().StringVar(&category, "category", "All", "Economic, Social, Health, Environment, Governance, Equality or All")
	return cmd
}

func rankCmd(opts *globalOptions) *cobra.Command {
	var order string
	var top int

	cmd := &cobra.Command{
		Use:   "rank <metric>",
		Short: "Rank every city by a metric's current value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRank(opts.app(cmd), args[0], order, top)
		},
	}

	cmd.Flags().StringVar(&order, "order", "desc", "asc or desc")
	cmd.Flags().IntVarP(&top, "top", "n", 0, "show only the first n cities (0 = all)")
	return cmd
}

func seriesCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "series <metric> <city>...",
		Short: "Show yearly values of a metric for one or more cities",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeries(opts.app(cmd), args[0], args[1:])
		},
	}
}

func predictCmd(opts *globalOptions) *cobra.Command {
	var horizon int

	cmd := &cobra.Command{
		Use:   "predict <metric> <city>...",
		Short: "Extend a metric's linear trend into future years",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := opts.app(cmd)
			if !cmd.Flags().Changed("horizon") {
				horizon = a.cfg.Horizon
			}
			return runPredict(a, args[0], args[1:], horizon)
		},
	}

	cmd.Flags().IntVar(&horizon, "horizon", 3, "years to predict past the last observation")
	return cmd
}

func anomaliesCmd(opts *globalOptions) *cobra.Command {
	var severity string

	cmd := &cobra.Command{
		Use:   "anomalies",
		Short: "Flag statistical outliers and performance concerns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAnomalies(opts.app(cmd), severity)
		},
	}

	cmd.Flags().StringVar(&severity, "severity", "", "only show high, medium or low")
	return cmd
}

func insightsCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "insights",
		Short: "Leaderboards, policy recommendations and city clusters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInsights(opts.app(cmd))
		},
	}
}

func scenarioCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "scenario [name]",
		Short: "List scenarios, or project one onto current values",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			return runScenario(opts.app(cmd), name)
		},
	}
}

func heatmapCmd(opts *globalOptions) *cobra.Command {
	var cities, metrics []string

	cmd := &cobra.Command{
		Use:   "heatmap",
		Short: "City × metric grid with per-metric intensity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runHeatmap(opts.app(cmd), cities, metrics)
		},
	}

	cmd.Flags().StringSliceVar(&cities, "cities", nil, "city ids (default: first 10)")
	cmd.Flags().StringSliceVar(&metrics, "metrics", nil, "metric ids (default: first 8)")
	return cmd
}

func correlateCmd(opts *globalOptions) *cobra.Command {
	var cities []string

	cmd := &cobra.Command{
		Use:   "correlate <x-metric> <y-metric>",
		Short: "Scatter two metrics across cities with Pearson's r",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCorrelate(opts.app(cmd), args[0], args[1], cities)
		},
	}

	cmd.Flags().StringSliceVar(&cities, "cities", nil, "city ids (default: all)")
	return cmd
}

func exportCmd(opts *globalOptions) *cobra.Command {
	var e exportOptions

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write selected cities and metrics as CSV or a JSON report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExport(opts.app(cmd), e)
		},
	}

	cmd.Flags().StringSliceVar(&e.cities, "cities", nil, "city ids (default: all)")
	cmd.Flags().StringSliceVar(&e.metrics, "metrics", nil, "metric ids (default: all)")
	cmd.Flags().StringVarP(&e.format, "format", "f", "csv", "csv, json or table")
	cmd.Flags().StringVar(&e.title, "title", "", "report title for json output")
	cmd.Flags().StringVarP(&e.out, "out", "o", "", "output file (default: stdout)")
	return cmd
}

func validateCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the catalog and the generated values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidate(opts.app(cmd))
		},
	}
}
