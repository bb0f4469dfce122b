// Command dqagent runs the daily data-quality checks over one dated sales
// file and writes the JSON/Markdown report files.
//
// Usage:
//
//	dqagent              # check today's file
//	dqagent 2025-10-31   # check a specific date
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"dqagent/internal/app"
	"dqagent/internal/config"
	"dqagent/internal/infrastructure"
	"dqagent/internal/reporting"
)

func main() {
	configFile := flag.String("config", "config.yaml", "path to the YAML config file")
	dateFlag := flag.String("date", "", "report date as YYYY-MM-DD (defaults to today)")
	dataDir := flag.String("data-dir", "", "override the sales data directory")
	reportsDir := flag.String("reports-dir", "", "override the report output directory")
	flag.Parse()

	dt, err := resolveRunDate(*dateFlag, flag.Args(), time.Now())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *dataDir != "" {
		cfg.Paths.DataDir = *dataDir
	}
	if *reportsDir != "" {
		cfg.Paths.ReportsDir = *reportsDir
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx := infrastructure.WithRunID(context.Background(), infrastructure.NewRunID())
	logger.InfoContext(ctx, "starting quality run", slog.String("date", dt.Format("2006-01-02")))

	report, err := app.New(logger, cfg).RunForDate(ctx, dt)
	if err != nil {
		logger.ErrorContext(ctx, "quality run failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// A missing file is a reported outcome, not a tool failure: exit 0.
	data, err := reporting.JSON(report)
	if err != nil {
		logger.ErrorContext(ctx, "failed to render report", slog.String("error", err.Error()))
		os.Exit(1)
	}
	fmt.Println(string(data))
}

// resolveRunDate picks the report date from the -date flag or the first
// positional argument, falling back to now. The flag wins when both are
// given.
func resolveRunDate(dateFlag string, args []string, now time.Time) (time.Time, error) {
	dateArg := dateFlag
	if dateArg == "" && len(args) > 0 {
		dateArg = args[0]
	}
	if dateArg == "" {
		return now, nil
	}
	parsed, err := time.Parse("2006-01-02", dateArg)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", dateArg)
	}
	return parsed, nil
}
