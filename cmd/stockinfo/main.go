// stockinfo prints quotes, price history, corporate actions, financial
// statements and analyst figures for a ticker symbol.
//
// Main CLI entrypoint using cobra command framework.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/seenimoa/stockinfo/api"
	"github.com/seenimoa/stockinfo/internal/config"
	"github.com/seenimoa/stockinfo/internal/logging"
	"github.com/seenimoa/stockinfo/internal/marketdata"
	"github.com/seenimoa/stockinfo/internal/provider"
	"github.com/seenimoa/stockinfo/internal/providers"
	"github.com/seenimoa/stockinfo/internal/report"
	"github.com/seenimoa/stockinfo/pkg/models"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Global state, set up by the root PersistentPreRunE.
var (
	cfg      *config.Config
	registry *provider.Registry
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "stockinfo [symbol]",
	Short: "Stock information from Yahoo Finance",
	Long: `stockinfo prints a report for a ticker symbol: quote, one year of daily
prices, dividends, splits, financial statements and analyst figures.
Without a symbol it prompts for one.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		configFile, _ := cmd.Flags().GetString("config")
		if configFile != "" {
			cfg, err = config.LoadFromFile(configFile)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
			cfg.Logging.Level = lvl
		}
		if timeout, _ := cmd.Flags().GetInt("timeout"); timeout > 0 {
			cfg.Provider.TimeoutSec = timeout
		}
		if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
			cfg.Report.Color = false
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		logger, err := logging.New(cfg.Logging, os.Stderr)
		if err != nil {
			return err
		}
		cmd.SetContext(logging.WithLogger(cmd.Context(), logger))

		if err := providers.RegisterAll(cfg.Provider); err != nil {
			return err
		}
		registry = provider.Global()
		return registry.SetDefault(cfg.Provider.Name)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient("")
		if err != nil {
			return err
		}
		rc := report.DefaultReportConfig()
		rc.Period = models.Period(cfg.History.Period)
		rc.Interval = models.Interval(cfg.History.Interval)
		if cfg.Report.IncludeNews {
			rc.Sections = append(rc.Sections, report.SectionNews)
			rc.NewsLimit = cfg.Report.NewsLimit
		}

		run := func(symbol string) error {
			return runReport(cmd, client, symbol, rc)
		}
		if len(args) == 1 {
			return run(args[0])
		}
		return promptLoop(cmd.InOrStdin(), cmd.OutOrStdout(), run)
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path (default: ./config/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	rootCmd.PersistentFlags().Int("timeout", 0, "per-request timeout in seconds (default from config)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(sectionCmd("quote", "Show the quote snapshot", report.SectionQuote))
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(sectionCmd("dividends", "Show the dividend history", report.SectionDividends))
	rootCmd.AddCommand(sectionCmd("splits", "Show the stock split history", report.SectionSplits))
	rootCmd.AddCommand(financialsCmd)
	rootCmd.AddCommand(sectionCmd("analysts", "Show analyst figures", report.SectionAnalysts))
	rootCmd.AddCommand(newsCmd)
	rootCmd.AddCommand(serveCmd)
}

// newClient returns a market-data client over the configured provider.
// An empty frequency takes the configured one.
func newClient(frequency string) (*marketdata.Client, error) {
	p, err := registry.Get("")
	if err != nil {
		return nil, err
	}
	if frequency == "" {
		frequency = cfg.Financials.Frequency
	}
	return marketdata.New(p,
		marketdata.WithTimeout(time.Duration(cfg.Provider.TimeoutSec)*time.Second),
		marketdata.WithFrequency(models.Frequency(frequency)),
	), nil
}

func newRenderer(cmd *cobra.Command) *report.Renderer {
	return report.NewRenderer(cmd.OutOrStdout(), report.Options{
		Style:       report.NewStyle(cfg.Report.Color && !color.NoColor),
		Placeholder: cfg.Report.Placeholder,
		MaxRows:     cfg.Report.MaxRows,
	})
}

// runReport collects rc's sections for symbol and prints them.
func runReport(cmd *cobra.Command, src report.Source, symbol string, rc report.ReportConfig) error {
	rep, err := report.Collect(cmd.Context(), src, symbol, rc)
	if err != nil {
		return err
	}
	return newRenderer(cmd).Render(rep)
}

// --- Version Command ---

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "stockinfo %s\n", version)
		fmt.Fprintf(out, "  commit:  %s\n", commit)
		fmt.Fprintf(out, "  built:   %s\n", date)
	},
}

// --- Section Commands ---

func sectionCmd(use, short string, section report.Section) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <symbol>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient("")
			if err != nil {
				return err
			}
			rc := report.ReportConfig{Sections: []report.Section{section}}
			return runReport(cmd, client, args[0], rc)
		},
	}
}

var historyCmd = &cobra.Command{
	Use:   "history <symbol>",
	Short: "Show OHLCV price history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient("")
		if err != nil {
			return err
		}
		period, _ := cmd.Flags().GetString("period")
		interval, _ := cmd.Flags().GetString("interval")
		if period == "" {
			period = cfg.History.Period
		}
		if interval == "" {
			interval = cfg.History.Interval
		}
		rc := report.ReportConfig{
			Sections: []report.Section{report.SectionHistory},
			Period:   models.Period(period),
			Interval: models.Interval(interval),
		}
		return runReport(cmd, client, args[0], rc)
	},
}

var financialsCmd = &cobra.Command{
	Use:   "financials <symbol>",
	Short: "Show income statement, balance sheet and cash flow",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		frequency, _ := cmd.Flags().GetString("frequency")
		client, err := newClient(frequency)
		if err != nil {
			return err
		}
		rc := report.ReportConfig{Sections: []report.Section{report.SectionFinancials}}
		return runReport(cmd, client, args[0], rc)
	},
}

var newsCmd = &cobra.Command{
	Use:   "news <symbol>",
	Short: "Show recent headlines",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient("")
		if err != nil {
			return err
		}
		limit, _ := cmd.Flags().GetInt("limit")
		if !cmd.Flags().Changed("limit") {
			limit = cfg.Report.NewsLimit
		}
		rc := report.ReportConfig{Sections: []report.Section{report.SectionNews}, NewsLimit: limit}
		return runReport(cmd, client, args[0], rc)
	},
}

func init() {
	historyCmd.Flags().String("period", "", "look-back window: 1d,5d,1mo,3mo,6mo,1y,2y,5y,10y,ytd,max")
	historyCmd.Flags().String("interval", "", "bar size: 1m,2m,5m,15m,30m,60m,90m,1h,1d,5d,1wk,1mo,3mo")
	financialsCmd.Flags().String("frequency", "", "statement frequency: quarterly or annual")
	newsCmd.Flags().Int("limit", 0, "max headlines, 0 for all")
}

// --- Status Command ---

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show configuration and provider connectivity",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "═══════════════════════════════════════")
		fmt.Fprintln(out, "  stockinfo status")
		fmt.Fprintln(out, "═══════════════════════════════════════")
		fmt.Fprintf(out, "  Version:  %s (%s)\n", version, commit)
		fmt.Fprintln(out)

		fmt.Fprintln(out, "  Configuration:")
		for _, s := range config.CheckSettings(cfg) {
			fmt.Fprintf(out, "    %-22s %-50s (%s)\n", s.Key+":", s.Value, s.Source)
		}
		fmt.Fprintln(out)

		fmt.Fprintln(out, "  Providers:")
		writeProviders(out, registry)
		fmt.Fprintln(out)

		client, err := newClient("")
		if err != nil {
			return err
		}
		info := client.ProviderInfo()
		fmt.Fprintf(out, "  Provider: %s (%s)\n", info.Name, info.Website)
		start := time.Now()
		if err := client.Ping(cmd.Context()); err != nil {
			fmt.Fprintf(out, "    reachable: no (%v)\n", err)
		} else {
			fmt.Fprintf(out, "    reachable: yes (%s)\n", time.Since(start).Round(time.Millisecond))
		}
		fmt.Fprintln(out, "═══════════════════════════════════════")
		return nil
	},
}

// writeProviders lists the registered providers with their capabilities,
// marking the default with an asterisk.
func writeProviders(out io.Writer, reg *provider.Registry) {
	def, _ := reg.Default()
	for _, info := range reg.List() {
		mark := " "
		if info.Name == def {
			mark = "*"
		}
		caps := make([]string, len(info.Capabilities))
		for i, c := range info.Capabilities {
			caps[i] = string(c)
		}
		fmt.Fprintf(out, "    %s %-12s %s\n", mark, info.Name, strings.Join(caps, ", "))
	}
}

// --- Serve Command (API Server) ---

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP JSON API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		if host, _ := cmd.Flags().GetString("host"); host != "" {
			cfg.API.Host = host
		}
		if port, _ := cmd.Flags().GetInt("port"); port > 0 {
			cfg.API.Port = port
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		client, err := newClient("")
		if err != nil {
			return err
		}
		logger := logging.FromContext(cmd.Context())
		srv := api.NewServer(cfg, client, *logger, version)
		fmt.Fprintf(cmd.OutOrStdout(), "Serving stockinfo API on http://%s\n", srv.Addr())
		return srv.ListenAndServe(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().String("host", "", "listen host (default from config)")
	serveCmd.Flags().Int("port", 0, "listen port (default from config)")
}
