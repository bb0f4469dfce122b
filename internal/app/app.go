// Package app wires the loader, the quality engine, the report writer, and
// the optional narrative client into one runnable agent.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"dqagent/internal/ai"
	"dqagent/internal/config"
	"dqagent/internal/dataset"
	"dqagent/internal/errors"
	"dqagent/internal/quality"
	"dqagent/internal/reporting"
)

// App runs one quality check per invocation: load the dated sales file, run
// every check, persist the report files.
type App struct {
	logger    *slog.Logger
	cfg       *config.Config
	engine    *quality.Engine
	writer    *reporting.Writer
	narrative *ai.Client
}

// New wires an agent from configuration.
func New(logger *slog.Logger, cfg *config.Config) *App {
	if logger == nil {
		logger = slog.Default()
	}

	engine := quality.NewEngine(logger, quality.Options{
		RequiredColumns: cfg.Schema.RequiredColumns,
		NumericColumns:  cfg.Schema.NumericColumns,
		DatetimeColumns: cfg.Schema.DatetimeColumns,
		KeyColumn:       cfg.Schema.KeyColumn,
		DateColumn:      cfg.Schema.DateColumn,
		IQRMultiplier:   cfg.Outlier.IQRMultiplier,
	})

	renderer := reporting.NewRenderer(cfg.Report.MaxRowsPerCategory)
	writer := reporting.NewWriter(logger, cfg.Paths, renderer, cfg.Report.HTML)

	var narrative *ai.Client
	if cfg.AI.Enabled {
		narrative = ai.NewClient(logger, cfg.AI)
	}

	return &App{
		logger:    logger,
		cfg:       cfg,
		engine:    engine,
		writer:    writer,
		narrative: narrative,
	}
}

// RunForDate checks the sales file for the given date and writes the report
// files. The returned report is never nil on success: a missing or
// unreadable file comes back as a has_file=false report, not an error. The
// run date doubles as the base date for the date-consistency rule.
func (a *App) RunForDate(ctx context.Context, dt time.Time) (*quality.Report, error) {
	report := a.check(ctx, dt)

	narrative := ""
	if a.narrative != nil && report.HasFile {
		text, err := a.narrative.Narrative(ctx, report)
		if err != nil {
			// Degrade to an inline note; the narrative never fails the run.
			a.logger.WarnContext(ctx, "narrative generation failed", slog.String("error", err.Error()))
			narrative = fmt.Sprintf("_AI narrative unavailable: %v_", err)
		} else {
			narrative = text
		}
	}

	if _, err := a.writer.Save(report, dt, narrative); err != nil {
		return nil, err
	}
	return report, nil
}

func (a *App) check(ctx context.Context, dt time.Time) *quality.Report {
	csvPath := a.cfg.Paths.SalesCSVPath(dt)
	xlsxPath := a.cfg.Paths.SalesXLSXPath(dt)

	table, err := dataset.Load(csvPath)
	if errors.IsCode(err, errors.CodeFileNotFound) {
		table, err = dataset.Load(xlsxPath)
		if errors.IsCode(err, errors.CodeFileNotFound) {
			a.logger.InfoContext(ctx, "no sales file for date", slog.String("date", dt.Format("2006-01-02")))
			return quality.NewLoadFailureReport(
				fmt.Sprintf("no sales file for %s: expected %s or %s", dt.Format("2006-01-02"), csvPath, xlsxPath))
		}
	}
	if err != nil {
		a.logger.ErrorContext(ctx, "failed to load sales file", slog.String("error", err.Error()))
		return quality.NewLoadFailureReport(fmt.Sprintf("failed to read sales file: %v", err))
	}

	return a.engine.Run(table, dt)
}
